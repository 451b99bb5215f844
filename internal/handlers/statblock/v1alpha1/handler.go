// Package v1alpha1 handles the statblock importer gRPC service
package v1alpha1

import (
	"context"
	"time"

	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/KirkDiggler/statblock-importer/internal/entities/drawsteel"
	"github.com/KirkDiggler/statblock-importer/internal/errors"
	"github.com/KirkDiggler/statblock-importer/internal/orchestrators/importer"
	"github.com/KirkDiggler/statblock-importer/internal/orchestrators/power"
	rollsession "github.com/KirkDiggler/statblock-importer/internal/repositories/roll_session"
	"github.com/KirkDiggler/statblock-importer/internal/services/normalize"
)

// sourceGRPC marks monsters imported through this service
const sourceGRPC = "grpc"

// HandlerConfig holds dependencies for the importer handler
type HandlerConfig struct {
	ImporterService importer.Service
	PowerService    power.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.ImporterService == nil {
		vb.RequiredField("ImporterService")
	}
	if c.PowerService == nil {
		vb.RequiredField("PowerService")
	}

	return vb.Build()
}

// Handler implements the importer gRPC service
type Handler struct {
	importerService importer.Service
	powerService    power.Service
}

// NewHandler creates a new importer handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		importerService: cfg.ImporterService,
		powerService:    cfg.PowerService,
	}, nil
}

var _ ImporterServiceServer = (*Handler)(nil)

// ImportMonster imports the statblock export carried in the request
func (h *Handler) ImportMonster(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if req == nil || len(req.GetFields()) == 0 {
		return nil, errors.ToGRPCError(errors.InvalidArgument("statblock is required"))
	}

	data, err := structJSON(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.importerService.ImportMonster(ctx, &importer.ImportMonsterInput{
		Data:   data,
		Source: sourceGRPC,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return h.respond(out.Monster)
}

// ParseMaliceText scans malice prose into ability items. The request carries
// text and an optional characteristic used for power rolls.
func (h *Handler) ParseMaliceText(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	text := stringField(req, "text")
	if text == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("text is required"))
	}

	out, err := h.importerService.ParseMaliceText(ctx, &importer.ParseMaliceTextInput{
		Text:    text,
		Highest: drawsteel.Characteristic(stringField(req, "characteristic")),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return h.respond(struct {
		TypeKey string            `json:"type_key"`
		Items   []*drawsteel.Item `json:"items"`
	}{TypeKey: out.TypeKey, Items: out.Items})
}

// GetMonster returns a stored monster by id
func (h *Handler) GetMonster(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	if req.GetValue() == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("monster_id is required"))
	}

	out, err := h.importerService.GetMonster(ctx, &importer.GetMonsterInput{ID: req.GetValue()})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return h.respond(out.Monster)
}

// RollAbility rolls the power roll of a stored monster's ability. The request
// carries "monster_id" and "ability" (the ability name).
func (h *Handler) RollAbility(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	monsterID := stringField(req, "monster_id")
	abilityName := stringField(req, "ability")

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("monster_id", monsterID, vb)
	errors.ValidateRequired("ability", abilityName, vb)
	if err := vb.Build(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	got, err := h.importerService.GetMonster(ctx, &importer.GetMonsterInput{ID: monsterID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	item := got.Monster.FindAbility(abilityName)
	if item == nil || item.Ability == nil {
		notFound := errors.NotFoundf("ability %q not found", abilityName).
			WithMeta(errors.MetaMonsterID, monsterID)
		if suggestion, ok := normalize.Suggest(abilityName, got.Monster.AbilityNames()); ok {
			notFound = notFound.WithMeta(errors.MetaSuggestion, suggestion)
		}
		return nil, errors.ToGRPCError(notFound)
	}

	score := 0
	if chars := item.Ability.PowerRoll.Characteristics; len(chars) > 0 {
		score = got.Monster.Characteristics.Score(chars[0])
	}

	out, err := h.powerService.Roll(ctx, &power.RollInput{
		Ability:             item.Ability,
		CharacteristicScore: score,
		MonsterID:           monsterID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return h.respond(struct {
		Ability string             `json:"ability"`
		Dice    []int              `json:"dice"`
		Total   int                `json:"total"`
		Tier    drawsteel.Tier     `json:"tier"`
		Effects []power.TierEffect `json:"effects"`
	}{
		Ability: item.Name,
		Dice:    out.Dice,
		Total:   out.Total,
		Tier:    out.Tier,
		Effects: out.Effects,
	})
}

// GetRollHistory returns the recent power rolls made for a monster
func (h *Handler) GetRollHistory(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	if req.GetValue() == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("monster_id is required"))
	}

	out, err := h.powerService.History(ctx, &power.HistoryInput{MonsterID: req.GetValue()})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return h.respond(struct {
		MonsterID string             `json:"monster_id"`
		Rolls     []rollsession.Roll `json:"rolls"`
	}{
		MonsterID: req.GetValue(),
		Rolls:     out.Rolls,
	})
}

// monsterSummary is one row of a ListMonsters response
type monsterSummary struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Level      int       `json:"level"`
	Items      int       `json:"items"`
	ImportedAt time.Time `json:"imported_at"`
}

// ListMonsters lists stored monsters by name. The request may carry "limit".
func (h *Handler) ListMonsters(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	out, err := h.importerService.ListMonsters(ctx, &importer.ListMonstersInput{
		Limit: intField(req, "limit"),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	summaries := make([]monsterSummary, len(out.Monsters))
	for i, m := range out.Monsters {
		summaries[i] = monsterSummary{
			ID:         m.ID,
			Name:       m.Name,
			Level:      m.Level,
			Items:      len(m.Items),
			ImportedAt: m.ImportedAt,
		}
	}

	return h.respond(struct {
		Monsters []monsterSummary `json:"monsters"`
	}{Monsters: summaries})
}

// DeleteMonster removes a stored monster
func (h *Handler) DeleteMonster(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	if req.GetValue() == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("monster_id is required"))
	}

	if _, err := h.importerService.DeleteMonster(ctx, &importer.DeleteMonsterInput{ID: req.GetValue()}); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return h.respond(struct {
		Deleted string `json:"deleted"`
	}{Deleted: req.GetValue()})
}

func (h *Handler) respond(v interface{}) (*structpb.Struct, error) {
	out, err := toStruct(v)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return out, nil
}
