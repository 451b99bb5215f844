// Package power resolves an ability's power roll: 2d10 plus a characteristic,
// banded into one of three tiers.
package power

//go:generate mockgen -destination=mock/mock_service.go -package=powermock github.com/KirkDiggler/statblock-importer/internal/orchestrators/power Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/statblock-importer/internal/entities/drawsteel"
	"github.com/KirkDiggler/statblock-importer/internal/errors"
	"github.com/KirkDiggler/statblock-importer/internal/pkg/telemetry"
	rollsession "github.com/KirkDiggler/statblock-importer/internal/repositories/roll_session"
)

// Service defines the interface for power roll resolution
type Service interface {
	// Roll rolls 2d10 + score and returns the ability's effects at the resulting tier
	// Returns errors.InvalidArgument for a nil ability
	Roll(ctx context.Context, input *RollInput) (*RollOutput, error)

	// History returns the recent rolls made for a monster, oldest first.
	// It is empty when no session store is configured or nothing was rolled.
	// Returns errors.InvalidArgument for an empty monster ID
	History(ctx context.Context, input *HistoryInput) (*HistoryOutput, error)
}

// Config holds the dependencies for the power orchestrator
type Config struct {
	Roller   dice.Roller
	Sessions rollsession.Repository // optional
	Metrics  *telemetry.Metrics     // optional, defaults to the global provider
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Roller == nil {
		vb.RequiredField("Roller")
	}

	return vb.Build()
}

type orchestrator struct {
	roller   dice.Roller
	sessions rollsession.Repository
	metrics  *telemetry.Metrics
}

// NewOrchestrator creates a new power orchestrator with the provided dependencies
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
		roller:   cfg.Roller,
		sessions: cfg.Sessions,
		metrics:  metrics,
	}, nil
}

// ResolveTier maps a power roll total to its tier
func ResolveTier(total int) drawsteel.Tier {
	switch {
	case total <= Tier1Max:
		return drawsteel.Tier1
	case total <= Tier2Max:
		return drawsteel.Tier2
	}
	return drawsteel.Tier3
}

// Roll resolves the power roll of an ability
func (o *orchestrator) Roll(ctx context.Context, input *RollInput) (*RollOutput, error) {
	if input == nil || input.Ability == nil {
		return nil, errors.InvalidArgument("ability is required")
	}

	rolled, err := o.roller.RollN(DiceCount, DieSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll power dice")
	}

	total := input.CharacteristicScore
	for _, d := range rolled {
		total += d
	}
	tier := ResolveTier(total)

	output := &RollOutput{
		Dice:    rolled,
		Total:   total,
		Tier:    tier,
		Effects: EffectsAt(input.Ability, tier),
	}

	o.metrics.RecordRoll(ctx, string(tier))

	slog.DebugContext(ctx, "Power roll resolved",
		"ability", input.Ability.DSID,
		"dice", rolled,
		"total", total,
		"tier", tier,
	)

	o.record(ctx, input, output)

	return output, nil
}

// record appends the roll to the monster's session. A store failure does not
// fail the roll.
func (o *orchestrator) record(ctx context.Context, input *RollInput, output *RollOutput) {
	if o.sessions == nil || input.MonsterID == "" {
		return
	}

	_, err := o.sessions.Append(ctx, rollsession.AppendInput{
		MonsterID: input.MonsterID,
		Roll: rollsession.Roll{
			Ability:  input.Ability.DSID,
			Dice:     output.Dice,
			Modifier: input.CharacteristicScore,
			Total:    output.Total,
			Tier:     output.Tier,
		},
	})
	if err != nil {
		slog.WarnContext(ctx, "Failed to record power roll",
			"monster_id", input.MonsterID,
			"error", err,
		)
	}
}

// History returns the monster's recent rolls
func (o *orchestrator) History(ctx context.Context, input *HistoryInput) (*HistoryOutput, error) {
	if input == nil || input.MonsterID == "" {
		return nil, errors.InvalidArgument("monster ID is required")
	}

	if o.sessions == nil {
		return &HistoryOutput{Rolls: []rollsession.Roll{}}, nil
	}

	got, err := o.sessions.Get(ctx, rollsession.GetInput{MonsterID: input.MonsterID})
	if err != nil {
		if errors.IsNotFound(err) {
			return &HistoryOutput{Rolls: []rollsession.Roll{}}, nil
		}
		return nil, errors.Wrapf(err, "failed to load roll history for monster %s", input.MonsterID)
	}

	return &HistoryOutput{Rolls: got.Session.Rolls}, nil
}

// EffectsAt returns the payloads an ability carries at one tier, in effect order
func EffectsAt(ability *drawsteel.Ability, tier drawsteel.Tier) []TierEffect {
	var out []TierEffect
	for _, entry := range ability.OrderedEffects() {
		if !entry.HasTier(tier) {
			continue
		}
		te := TierEffect{EntryID: entry.ID, Kind: entry.Type, Name: entry.Name}
		switch entry.Type {
		case drawsteel.EffectKindDamage:
			te.Damage = entry.Damage[tier]
		case drawsteel.EffectKindApplied:
			te.Applied = entry.Applied[tier]
		case drawsteel.EffectKindForced:
			te.Forced = entry.Forced[tier]
		case drawsteel.EffectKindSpecial:
			te.Special = entry.Special[tier]
		}
		out = append(out, te)
	}
	return out
}
