// Package segmenter scans free-form malice statblock prose line by line and
// emits one ability item per header it finds.
package segmenter

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/statblock-importer/internal/entities/drawsteel"
	"github.com/KirkDiggler/statblock-importer/internal/services/effects"
	"github.com/KirkDiggler/statblock-importer/internal/services/extraction"
	"github.com/KirkDiggler/statblock-importer/internal/services/narrative"
	"github.com/KirkDiggler/statblock-importer/internal/services/normalize"
)

var (
	featuresHeader  = regexp.MustCompile(`(?i)^(.+?)\s+malice features$`)
	maliceHeader    = regexp.MustCompile(`(?i)^[a-z]\s+(.+?)\s+(\d+)\s+malice$`)
	signatureHeader = regexp.MustCompile(`(?i)^[a-z]\s+(.+?)\s+signature ability$`)
	tierRow         = regexp.MustCompile(`^([123áéí])\s+(.*)$`)
)

// Shorthand lines read "e <distance>x<target>". An ASCII x only separates when
// it sits between digits or spaces, so words like "next" stay whole.
var (
	shorthandASCII = regexp.MustCompile(`(?i)^e\s+(.*?[\d\s])x(\s.*|\d.*)$`)
	shorthandCross = regexp.MustCompile(`(?i)^e\s+(.+?)\s*×\s*(.+)$`)
)

type state int

const (
	stateNoAbility state = iota
	stateBefore
	stateTier
	statePostTier
)

func (s state) String() string {
	switch s {
	case stateNoAbility:
		return "no-ability"
	case stateBefore:
		return "before"
	case stateTier:
		return "tier"
	case statePostTier:
		return "post-tier"
	}
	return "unknown"
}

// Config holds the segmenter's collaborators
type Config struct {
	Builder    *effects.Builder
	Vocabulary *extraction.Vocabulary
}

// Segmenter turns malice prose into ability items. It is safe for
// concurrent use; all scan state lives in a per-call value.
type Segmenter struct {
	builder    *effects.Builder
	vocabulary *extraction.Vocabulary
}

// New creates a segmenter. Missing collaborators get defaults.
func New(cfg *Config) *Segmenter {
	s := &Segmenter{}
	if cfg != nil {
		s.builder = cfg.Builder
		s.vocabulary = cfg.Vocabulary
	}
	if s.builder == nil {
		s.builder = effects.NewBuilder(nil)
	}
	if s.vocabulary == nil {
		s.vocabulary = extraction.NewVocabulary()
	}
	return s
}

// Input is the prose to scan
type Input struct {
	Text    string
	Highest drawsteel.Characteristic
}

// Output is the scan result. TypeKey is the creature type named by a
// leading "<Type> Malice Features" line, if any.
type Output struct {
	TypeKey string
	Items   []*drawsteel.Item
}

// Parse scans the input. It never fails; unrecognized lines become narrative
// or are ignored when no ability is open.
func (s *Segmenter) Parse(input *Input) *Output {
	if input == nil {
		return &Output{}
	}

	sc := &scan{
		segmenter: s,
		highest:   input.Highest,
		lines:     splitLines(input.Text),
	}
	sc.run()

	return &Output{
		TypeKey: sc.typeKey,
		Items:   sc.items,
	}
}

// pending is the ability being assembled
type pending struct {
	item     *drawsteel.Item
	before   []string
	rows     []narrative.TierRow
	postTier []string
}

// scan carries all state of one Parse call
type scan struct {
	segmenter *Segmenter
	highest   drawsteel.Characteristic
	lines     []string

	state      state
	current    *pending
	tierMarker string
	tierBuffer []string

	typeKey string
	items   []*drawsteel.Item
}

func (sc *scan) run() {
	for i := 0; i < len(sc.lines); i++ {
		line := sc.lines[i]

		if i == 0 {
			if m := featuresHeader.FindStringSubmatch(line); m != nil {
				sc.typeKey = strings.TrimSpace(m[1])
				continue
			}
		}

		if name, cost, category, ok := parseHeader(line); ok {
			sc.finalize()
			sc.open(name, cost, category)
			if i+1 < len(sc.lines) {
				if kw, ok := normalize.ParseKeywordLine(sc.lines[i+1]); ok {
					sc.current.item.Ability.Keywords = kw.Keywords
					sc.current.item.Ability.ActionType = kw.ActionType
					i++
				}
			}
			continue
		}

		if sc.state == stateNoAbility {
			continue
		}

		if distance, target, ok := parseShorthand(line); ok {
			sc.current.item.Ability.Distance = normalize.NormalizeDistance(distance)
			sc.current.item.Ability.Target = normalize.ParseTarget(target)
			continue
		}

		if m := tierRow.FindStringSubmatch(line); m != nil {
			sc.flushTier()
			sc.tierMarker = m[1]
			sc.tierBuffer = []string{m[2]}
			sc.state = stateTier
			continue
		}

		sc.step(line)
	}

	sc.finalize()
}

// step handles a line that is not a header, shorthand or tier start
func (sc *scan) step(line string) {
	switch sc.state {
	case stateBefore:
		if line != "" {
			sc.current.before = append(sc.current.before, line)
		}
	case stateTier:
		if line == "" {
			sc.flushTier()
			sc.state = statePostTier
			return
		}
		if narrative.HasEffectPrefix(line) {
			sc.flushTier()
			sc.state = statePostTier
			sc.openParagraph(line)
			return
		}
		sc.tierBuffer = append(sc.tierBuffer, line)
	case statePostTier:
		switch {
		case line == "":
		case narrative.HasEffectPrefix(line):
			sc.openParagraph(line)
		case len(sc.current.postTier) == 0:
			sc.current.postTier = append(sc.current.postTier, line)
		default:
			last := len(sc.current.postTier) - 1
			sc.current.postTier[last] += " " + line
		}
	}
}

func (sc *scan) openParagraph(line string) {
	if text := narrative.StripEffectPrefix(line); text != "" {
		sc.current.postTier = append(sc.current.postTier, text)
	}
}

func (sc *scan) flushTier() {
	if sc.state != stateTier || sc.tierMarker == "" {
		return
	}
	text := strings.TrimSpace(strings.Join(sc.tierBuffer, " "))
	sc.current.rows = append(sc.current.rows, narrative.TierRow{Marker: sc.tierMarker, Text: text})
	sc.tierMarker = ""
	sc.tierBuffer = nil
}

func (sc *scan) open(name string, cost int, category string) {
	ability := &drawsteel.Ability{
		DSID:          normalize.DSID(name),
		ActionType:    drawsteel.ActionSpecial,
		Category:      category,
		Keywords:      []string{},
		Distance:      drawsteel.Distance{Type: drawsteel.DistanceSpecial},
		Target:        drawsteel.Target{Type: drawsteel.TargetSpecial},
		DamageDisplay: string(drawsteel.DistanceMelee),
		Effects:       map[string]*drawsteel.EffectEntry{},
		Source: drawsteel.Source{
			Book:     drawsteel.SourceBook,
			License:  drawsteel.SourceLicense,
			Revision: 1,
		},
	}
	if category == drawsteel.CategoryHeroic {
		resource := cost
		ability.Resource = &resource
	}
	if sc.typeKey != "" {
		ability.Trigger = "A " + strings.ToLower(sc.typeKey) + " starts its turn."
	}

	sc.current = &pending{
		item: &drawsteel.Item{
			Name:    name,
			Type:    drawsteel.ItemTypeAbility,
			Img:     drawsteel.ImgAbilityMalice,
			Ability: ability,
			Effects: []*drawsteel.StatusEffect{},
		},
	}
	sc.state = stateBefore
}

// finalize emits the open ability, if any
func (sc *scan) finalize() {
	if sc.current == nil {
		return
	}
	sc.flushTier()

	p := sc.current
	ability := p.item.Ability

	var tiers [3]string
	for _, row := range p.rows {
		tier, ok := narrative.TierForMarker(row.Marker)
		if !ok {
			continue
		}
		idx := tierIndex(tier)
		if tiers[idx] != "" {
			tiers[idx] += "; "
		}
		tiers[idx] += row.Text
	}

	var notes []string
	if len(p.rows) > 0 {
		built := sc.segmenter.builder.Build(&effects.BuildInput{Tiers: tiers, Highest: sc.highest})
		ability.Effects = built.Effects
		ability.EffectOrder = built.Order
		notes = built.Notes
		ability.PowerRoll = drawsteel.PowerRoll{
			Formula:         "@chr",
			Characteristics: []drawsteel.Characteristic{sc.highest},
		}
		p.item.Effects = sc.statusEffects(p.rows)
	}

	ability.Before = narrative.SummaryTable(p.rows) + narrative.Paragraphs(p.before)
	ability.After = narrative.Paragraphs(notes) + narrative.Paragraphs(p.postTier)

	sc.items = append(sc.items, p.item)
	sc.current = nil
	sc.state = stateNoAbility
	sc.tierMarker = ""
	sc.tierBuffer = nil
}

// statusEffects builds one status per vocabulary condition named in the tier
// rows, first mention wins.
func (sc *scan) statusEffects(rows []narrative.TierRow) []*drawsteel.StatusEffect {
	out := []*drawsteel.StatusEffect{}
	seen := make(map[string]struct{})
	for _, row := range rows {
		for _, condition := range sc.segmenter.vocabulary.FindAll(row.Text) {
			if _, ok := seen[condition]; ok {
				continue
			}
			seen[condition] = struct{}{}
			out = append(out, StatusEffect(condition, row.Text))
		}
	}
	return out
}

func parseHeader(line string) (name string, cost int, category string, ok bool) {
	if m := maliceHeader.FindStringSubmatch(line); m != nil {
		n, err := strconv.Atoi(m[2])
		if err != nil {
			return "", 0, "", false
		}
		return strings.TrimSpace(m[1]), n, drawsteel.CategoryHeroic, true
	}
	if m := signatureHeader.FindStringSubmatch(line); m != nil {
		return strings.TrimSpace(m[1]), 0, drawsteel.CategorySignature, true
	}
	return "", 0, "", false
}

func parseShorthand(line string) (distance, target string, ok bool) {
	m := shorthandCross.FindStringSubmatch(line)
	if m == nil {
		m = shorthandASCII.FindStringSubmatch(line)
	}
	if m == nil {
		return "", "", false
	}
	distance, target = strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
	if distance == "" || target == "" {
		return "", "", false
	}
	return distance, target, true
}

func tierIndex(tier drawsteel.Tier) int {
	for i, t := range drawsteel.Tiers {
		if t == tier {
			return i
		}
	}
	return 0
}

func splitLines(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	lines := make([]string, len(raw))
	for i, l := range raw {
		lines[i] = strings.TrimSpace(l)
	}
	return lines
}
