// Package importer implements the orchestrator that turns statblock exports
// and malice prose into stored monster records.
package importer

//go:generate mockgen -destination=mock/mock_service.go -package=importermock github.com/KirkDiggler/statblock-importer/internal/orchestrators/importer Service

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/statblock-importer/internal/entities/drawsteel"
	"github.com/KirkDiggler/statblock-importer/internal/errors"
	"github.com/KirkDiggler/statblock-importer/internal/pkg/clock"
	"github.com/KirkDiggler/statblock-importer/internal/pkg/idgen"
	"github.com/KirkDiggler/statblock-importer/internal/pkg/telemetry"
	"github.com/KirkDiggler/statblock-importer/internal/repositories/monster"
	"github.com/KirkDiggler/statblock-importer/internal/services/effects"
	"github.com/KirkDiggler/statblock-importer/internal/services/segmenter"
)

// Service defines the interface for statblock import operations
type Service interface {
	// ImportMonster decodes, assembles, validates and stores one export
	// Returns errors.InvalidArgument for undecodable or incomplete exports
	ImportMonster(ctx context.Context, input *ImportMonsterInput) (*ImportMonsterOutput, error)

	// ImportBatch imports many exports concurrently. Per-file failures are
	// reported in the output and never fail the batch.
	ImportBatch(ctx context.Context, input *ImportBatchInput) (*ImportBatchOutput, error)

	// ParseMaliceText scans malice prose into ability items
	ParseMaliceText(ctx context.Context, input *ParseMaliceTextInput) (*ParseMaliceTextOutput, error)

	GetMonster(ctx context.Context, input *GetMonsterInput) (*GetMonsterOutput, error)
	ListMonsters(ctx context.Context, input *ListMonstersInput) (*ListMonstersOutput, error)
	DeleteMonster(ctx context.Context, input *DeleteMonsterInput) (*DeleteMonsterOutput, error)
}

// Config holds the dependencies for the import orchestrator
type Config struct {
	MonsterRepo monster.Repository
	Builder     *effects.Builder
	Segmenter   *segmenter.Segmenter
	IDGenerator idgen.Generator
	Clock       clock.Clock
	EventBus    events.EventBus    // optional
	Metrics     *telemetry.Metrics // optional, defaults to the global provider
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.MonsterRepo == nil {
		vb.RequiredField("MonsterRepo")
	}
	if c.Builder == nil {
		vb.RequiredField("Builder")
	}
	if c.Segmenter == nil {
		vb.RequiredField("Segmenter")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type orchestrator struct {
	monsterRepo monster.Repository
	assembler   *assembler
	segmenter   *segmenter.Segmenter
	idGen       idgen.Generator
	clock       clock.Clock
	eventBus    events.EventBus
	metrics     *telemetry.Metrics
}

// NewOrchestrator creates a new import orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	metrics := cfg.Metrics
	if metrics == nil {
		metrics = telemetry.Default()
	}

	return &orchestrator{
		monsterRepo: cfg.MonsterRepo,
		assembler:   &assembler{builder: cfg.Builder},
		segmenter:   cfg.Segmenter,
		idGen:       cfg.IDGenerator,
		clock:       cfg.Clock,
		eventBus:    cfg.EventBus,
		metrics:     metrics,
	}, nil
}

// ImportMonster imports a single statblock export
func (o *orchestrator) ImportMonster(ctx context.Context, input *ImportMonsterInput) (out *ImportMonsterOutput, err error) {
	ctx, span := telemetry.StartSpan(ctx, "importer.ImportMonster")
	start := o.clock.Now()
	defer func() {
		o.metrics.RecordImport(ctx, o.clock.Now().Sub(start).Seconds(), err)
		telemetry.EndSpan(span, err)
	}()

	return o.importMonster(ctx, input)
}

func (o *orchestrator) importMonster(ctx context.Context, input *ImportMonsterInput) (*ImportMonsterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if len(input.Data) == 0 {
		return nil, errors.InvalidArgument("data is required").WithSource(input.Source)
	}

	var data drawsteel.MonsterData
	if err := json.Unmarshal(input.Data, &data); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid statblock json").
			WithSource(input.Source)
	}

	m := o.assembler.assemble(&data)
	m.SourceFile = input.Source

	if err := validateMonster(m); err != nil {
		return nil, errors.Wrap(err, "invalid monster").WithSource(input.Source)
	}

	m.ID = o.idGen.Generate()
	m.ImportedAt = o.clock.Now()
	trace.SpanFromContext(ctx).SetAttributes(
		attribute.String("monster.id", m.ID),
		attribute.String("monster.name", m.Name),
		attribute.Bool("dry_run", input.DryRun),
	)

	if input.DryRun {
		return &ImportMonsterOutput{Monster: m}, nil
	}

	createOutput, err := o.monsterRepo.Create(ctx, monster.CreateInput{Monster: m})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store monster")
	}

	o.publish(ctx, createOutput.Monster)

	slog.InfoContext(ctx, "Monster imported",
		"monster_id", createOutput.Monster.ID,
		"name", createOutput.Monster.Name,
		"items", len(createOutput.Monster.Items),
		"source", input.Source,
	)

	return &ImportMonsterOutput{Monster: createOutput.Monster}, nil
}

// publish announces a stored monster. A failing bus never fails the import.
func (o *orchestrator) publish(ctx context.Context, m *drawsteel.Monster) {
	if o.eventBus == nil {
		return
	}
	if err := o.eventBus.Publish(ctx, events.NewGameEvent(EventMonsterImported, m, nil)); err != nil {
		slog.WarnContext(ctx, "Failed to publish import event",
			"monster_id", m.ID,
			"error", err,
		)
	}
}

// validateMonster checks the fields the host needs to create an actor
func validateMonster(m *drawsteel.Monster) error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("name", m.Name, vb)
	for i, item := range m.Items {
		errors.ValidateRequired(errors.ItemField(i, "name"), item.Name, vb)
		switch item.Type {
		case drawsteel.ItemTypeAbility:
			if item.Ability == nil {
				vb.RequiredField(errors.ItemField(i, "ability"))
			}
		case drawsteel.ItemTypeFeature:
			if item.Feature == nil {
				vb.RequiredField(errors.ItemField(i, "feature"))
			}
		default:
			vb.InvalidField(errors.ItemField(i, "type"), "must be feature or ability")
		}
	}

	return vb.Build()
}

// ImportBatch imports every file with at most Workers imports in flight
func (o *orchestrator) ImportBatch(ctx context.Context, input *ImportBatchInput) (*ImportBatchOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	workers := input.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}

	ctx, span := telemetry.StartSpan(ctx, "importer.ImportBatch",
		attribute.Int("files", len(input.Files)),
		attribute.Int("workers", workers),
	)
	defer span.End()

	results := make([]BatchResult, len(input.Files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, file := range input.Files {
		results[i].File = file.Name

		if gctx.Err() != nil {
			results[i].Err = errors.Canceledf("import of %s not started", file.Name)
			continue
		}

		g.Go(func() error {
			out, err := o.ImportMonster(gctx, &ImportMonsterInput{
				Data:   file.Data,
				Source: file.Name,
				DryRun: input.DryRun,
			})
			if err != nil {
				slog.WarnContext(gctx, "Failed to import file",
					"file", file.Name,
					"error", err,
				)
				results[i].Err = err
				return nil
			}
			results[i].Monster = out.Monster
			return nil
		})
	}

	// Workers never return errors; failures live in results
	_ = g.Wait()

	output := &ImportBatchOutput{Results: results}
	for _, r := range results {
		if r.Err != nil {
			output.Failed++
		} else {
			output.Imported++
		}
	}

	span.SetAttributes(attribute.Int("failed", output.Failed))

	slog.InfoContext(ctx, "Batch import finished",
		"files", len(input.Files),
		"imported", output.Imported,
		"failed", output.Failed,
	)

	return output, nil
}

// ParseMaliceText scans malice prose into ability items
func (o *orchestrator) ParseMaliceText(_ context.Context, input *ParseMaliceTextInput) (*ParseMaliceTextOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	highest := input.Highest
	if highest == "" {
		highest = drawsteel.CharacteristicMight
	}

	allowed := make([]string, len(drawsteel.CanonicalCharacteristics))
	for i, c := range drawsteel.CanonicalCharacteristics {
		allowed[i] = string(c)
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("highest", string(highest), allowed, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	out := o.segmenter.Parse(&segmenter.Input{Text: input.Text, Highest: highest})

	return &ParseMaliceTextOutput{
		TypeKey: out.TypeKey,
		Items:   out.Items,
	}, nil
}

// GetMonster retrieves a stored monster
func (o *orchestrator) GetMonster(ctx context.Context, input *GetMonsterInput) (*GetMonsterOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("monster ID is required")
	}

	out, err := o.monsterRepo.Get(ctx, monster.GetInput{ID: input.ID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get monster")
	}

	return &GetMonsterOutput{Monster: out.Monster}, nil
}

// ListMonsters lists stored monsters by name
func (o *orchestrator) ListMonsters(ctx context.Context, input *ListMonstersInput) (*ListMonstersOutput, error) {
	limit := 0
	if input != nil {
		limit = input.Limit
	}
	if limit < 0 {
		return nil, errors.InvalidArgumentf("limit must not be negative: %d", limit)
	}

	out, err := o.monsterRepo.List(ctx, monster.ListInput{Limit: limit})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list monsters")
	}

	return &ListMonstersOutput{Monsters: out.Monsters}, nil
}

// DeleteMonster removes a stored monster
func (o *orchestrator) DeleteMonster(ctx context.Context, input *DeleteMonsterInput) (*DeleteMonsterOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("monster ID is required")
	}

	if _, err := o.monsterRepo.Delete(ctx, monster.DeleteInput{ID: input.ID}); err != nil {
		return nil, errors.Wrap(err, "failed to delete monster")
	}

	slog.InfoContext(ctx, "Monster deleted", "monster_id", input.ID)

	return &DeleteMonsterOutput{}, nil
}
