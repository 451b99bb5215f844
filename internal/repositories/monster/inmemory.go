package monster

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"github.com/KirkDiggler/statblock-importer/internal/entities/drawsteel"
	"github.com/KirkDiggler/statblock-importer/internal/errors"
)

// InMemoryRepository implements Repository using in-memory storage.
// Records are stored as JSON so callers never share pointers with the store.
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string][]byte
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string][]byte),
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// Create stores a monster
func (r *InMemoryRepository) Create(_ context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Monster == nil {
		return nil, errors.InvalidArgument(errMonsterNil)
	}
	if input.Monster.ID == "" {
		return nil, errors.InvalidArgument(errMonsterIDEmpty)
	}

	data, err := json.Marshal(input.Monster)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal monster")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.Monster.ID]; exists {
		return nil, errors.AlreadyExistsf("monster with ID %s already exists", input.Monster.ID)
	}
	r.store[input.Monster.ID] = data

	return &CreateOutput{Monster: input.Monster}, nil
}

// Get retrieves a monster by ID
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errMonsterIDEmpty)
	}

	r.mu.RLock()
	data, exists := r.store[input.ID]
	r.mu.RUnlock()

	if !exists {
		return nil, errors.NotFoundf("monster with ID %s not found", input.ID)
	}

	m, err := decode(data)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Monster: m}, nil
}

// List returns all monsters ordered by name
func (r *InMemoryRepository) List(_ context.Context, input ListInput) (*ListOutput, error) {
	r.mu.RLock()
	monsters := make([]*drawsteel.Monster, 0, len(r.store))
	for _, data := range r.store {
		m, err := decode(data)
		if err != nil {
			r.mu.RUnlock()
			return nil, err
		}
		monsters = append(monsters, m)
	}
	r.mu.RUnlock()

	return &ListOutput{Monsters: sortAndLimit(monsters, input.Limit)}, nil
}

// Delete removes a monster by ID
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errMonsterIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.ID]; !exists {
		return nil, errors.NotFoundf("monster with ID %s not found", input.ID)
	}
	delete(r.store, input.ID)

	return &DeleteOutput{}, nil
}

func decode(data []byte) (*drawsteel.Monster, error) {
	var m drawsteel.Monster
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal monster")
	}
	return &m, nil
}

func sortAndLimit(monsters []*drawsteel.Monster, limit int) []*drawsteel.Monster {
	sort.SliceStable(monsters, func(i, j int) bool {
		if monsters[i].Name == monsters[j].Name {
			return monsters[i].ID < monsters[j].ID
		}
		return monsters[i].Name < monsters[j].Name
	})
	if limit > 0 && len(monsters) > limit {
		monsters = monsters[:limit]
	}
	return monsters
}
