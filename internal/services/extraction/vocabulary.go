package extraction

import (
	"regexp"
	"strings"

	"github.com/KirkDiggler/statblock-importer/internal/entities/drawsteel"
)

// Vocabulary is the set of recognized condition names: the built-in
// conditions followed by any custom ones. It is immutable once built.
type Vocabulary struct {
	names    []string
	lookup   map[string]struct{}
	patterns []*regexp.Regexp
}

// NewVocabulary builds a vocabulary from the built-in conditions plus custom names.
// Custom names are lower-cased; blanks and duplicates are skipped.
func NewVocabulary(custom ...string) *Vocabulary {
	v := &Vocabulary{lookup: make(map[string]struct{})}
	for _, name := range drawsteel.DefaultConditions {
		v.add(name)
	}
	for _, name := range custom {
		v.add(name)
	}
	return v
}

func (v *Vocabulary) add(name string) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return
	}
	if _, ok := v.lookup[name]; ok {
		return
	}
	v.lookup[name] = struct{}{}
	v.names = append(v.names, name)
	v.patterns = append(v.patterns, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(name)+`\b`))
}

// Names returns all condition names in priority order
func (v *Vocabulary) Names() []string {
	out := make([]string, len(v.names))
	copy(out, v.names)
	return out
}

// Lookup reports whether word names a known condition
func (v *Vocabulary) Lookup(word string) bool {
	_, ok := v.lookup[strings.ToLower(strings.TrimSpace(word))]
	return ok
}

// Classify returns applied for condition words and special for anything else
func (v *Vocabulary) Classify(word string) drawsteel.EffectKind {
	if v.Lookup(word) {
		return drawsteel.EffectKindApplied
	}
	return drawsteel.EffectKindSpecial
}

// FindAll returns every condition mentioned in text as a whole word, in
// vocabulary order.
func (v *Vocabulary) FindAll(text string) []string {
	var found []string
	for i, p := range v.patterns {
		if p.MatchString(text) {
			found = append(found, v.names[i])
		}
	}
	return found
}
