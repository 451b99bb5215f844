package importer

import (
	"strconv"
	"strings"

	"github.com/KirkDiggler/statblock-importer/internal/entities/drawsteel"
	"github.com/KirkDiggler/statblock-importer/internal/services/effects"
	"github.com/KirkDiggler/statblock-importer/internal/services/narrative"
	"github.com/KirkDiggler/statblock-importer/internal/services/normalize"
)

const (
	captainName = "With Captain"
	captainDSID = "with-captain"
	captainSort = -100000
)

// assembler turns a decoded export into a monster with normalized items
type assembler struct {
	builder *effects.Builder
}

func newSource(page string) drawsteel.Source {
	return drawsteel.Source{
		Book:     drawsteel.SourceBook,
		Page:     page,
		License:  drawsteel.SourceLicense,
		Revision: 1,
	}
}

// assemble builds the monster record. It never fails; missing fields fall
// back to zero values and default names.
func (a *assembler) assemble(data *drawsteel.MonsterData) *drawsteel.Monster {
	scores := data.Characteristics()
	highest := effects.HighestCharacteristic(scores)

	m := &drawsteel.Monster{
		Name:            strings.TrimSpace(data.Name),
		Level:           int(data.Level),
		EV:              int(data.EV),
		Stamina:         int(data.Stamina),
		Speed:           int(data.Speed),
		Size:            data.Size,
		Stability:       int(data.Stability),
		FreeStrike:      int(data.FreeStrike),
		Roles:           data.Roles,
		Keywords:        data.Ancestry,
		Characteristics: scores,
		Highest:         highest,
	}

	if captain := strings.TrimSpace(data.WithCaptain); captain != "" {
		m.Items = append(m.Items, captainItem(captain))
	}
	for i := range data.Traits {
		m.Items = append(m.Items, traitItem(i, &data.Traits[i]))
	}
	for i := range data.Abilities {
		m.Items = append(m.Items, a.abilityItem(i, &data.Abilities[i], highest))
	}

	return m
}

func captainItem(text string) *drawsteel.Item {
	return &drawsteel.Item{
		Name: captainName,
		Type: drawsteel.ItemTypeFeature,
		Img:  drawsteel.ImgFeatureCaptain,
		Sort: captainSort,
		Feature: &drawsteel.Feature{
			DSID:        captainDSID,
			Description: narrative.Paragraph("<strong>" + captainName + ":</strong> " + text),
			Source:      newSource(""),
		},
	}
}

func traitItem(index int, trait *drawsteel.TraitData) *drawsteel.Item {
	name := strings.TrimSpace(trait.Name)
	if name == "" {
		name = "Trait " + strconv.Itoa(index+1)
	}

	var description strings.Builder
	for _, e := range trait.Effects {
		description.WriteString(narrative.Paragraph(e.Effect))
	}

	return &drawsteel.Item{
		Name: name,
		Type: drawsteel.ItemTypeFeature,
		Img:  drawsteel.ImgFeatureDefault,
		Feature: &drawsteel.Feature{
			DSID:        normalize.DSID(name),
			Description: description.String(),
			Source:      newSource(""),
		},
	}
}

func (a *assembler) abilityItem(index int, raw *drawsteel.AbilityData, highest drawsteel.Characteristic) *drawsteel.Item {
	name := strings.TrimSpace(raw.Name)
	if name == "" {
		name = "Ability " + strconv.Itoa(index+1)
	}

	actionType := normalize.NormalizeActionType(raw.Type, raw.Cost)

	keywords := make([]string, 0, len(raw.Keywords))
	for _, k := range raw.Keywords {
		keywords = append(keywords, strings.ToLower(strings.TrimSpace(k)))
	}

	ability := &drawsteel.Ability{
		DSID:          normalize.DSID(name),
		ActionType:    actionType,
		Category:      normalize.DetermineCategory(raw.Cost, raw.Category),
		Keywords:      keywords,
		Distance:      normalize.NormalizeDistance(raw.Distance),
		Target:        normalize.ParseTarget(raw.Target),
		DamageDisplay: string(drawsteel.DistanceMelee),
		PowerRoll: drawsteel.PowerRoll{
			Formula:         "@chr",
			Characteristics: []drawsteel.Characteristic{highest},
		},
		Effects: map[string]*drawsteel.EffectEntry{},
		Trigger: raw.Trigger,
		Source:  newSource(raw.Page),
	}
	if cost, ok := normalize.MaliceCost(raw.Cost); ok {
		ability.Resource = &cost
	}

	before, tiered, after := splitEffects(raw.Effects)

	var notes []string
	if tiered != nil {
		built := a.builder.Build(&effects.BuildInput{
			Tiers:   [3]string{tiered.T1, tiered.T2, tiered.T3},
			Highest: highest,
		})
		ability.Effects = built.Effects
		ability.EffectOrder = built.Order
		notes = built.Notes
	}

	ability.Before = narrative.FormatBlocks(before, false)
	ability.After = narrative.Paragraphs(notes) + narrative.FormatBlocks(after, true)

	return &drawsteel.Item{
		Name:    name,
		Type:    drawsteel.ItemTypeAbility,
		Img:     normalize.AbilityImage(actionType),
		Ability: ability,
	}
}

// splitEffects finds the first tiered block. Blocks ahead of it render before
// the power roll, the rest after. Without a tiered block everything renders before.
func splitEffects(blocks []drawsteel.AbilityEffectData) (before []narrative.Block, tiered *drawsteel.AbilityEffectData, after []narrative.Block) {
	for i := range blocks {
		b := &blocks[i]
		switch {
		case tiered == nil && b.IsTiered():
			tiered = b
		case tiered == nil:
			before = append(before, toBlock(b))
		default:
			after = append(after, toBlock(b))
		}
	}
	return before, tiered, after
}

func toBlock(b *drawsteel.AbilityEffectData) narrative.Block {
	return narrative.Block{Name: b.Name, Effect: b.Effect, Cost: b.Cost}
}
