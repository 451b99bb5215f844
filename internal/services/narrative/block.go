package narrative

import "strings"

const effectPrefix = "effect:"

// Block is a non-tiered effect paragraph of an ability
type Block struct {
	Name   string
	Effect string
	Cost   string
}

// StripEffectPrefix removes a leading "Effect:" label
func StripEffectPrefix(text string) string {
	text = strings.TrimSpace(text)
	if HasEffectPrefix(text) {
		return strings.TrimSpace(text[len(effectPrefix):])
	}
	return text
}

// HasEffectPrefix reports whether text starts with an "Effect:" label
func HasEffectPrefix(text string) bool {
	text = strings.TrimSpace(text)
	return len(text) >= len(effectPrefix) && strings.EqualFold(text[:len(effectPrefix)], effectPrefix)
}

// FormatBlock renders a block as a paragraph. A cost is shown as a bold label
// when withCost is set; a name other than "Effect" is shown as an outer bold label.
func FormatBlock(block Block, withCost bool) string {
	text := StripEffectPrefix(block.Effect)
	if text == "" {
		return ""
	}

	if withCost && strings.TrimSpace(block.Cost) != "" {
		text = "<strong>" + strings.TrimSpace(block.Cost) + ":</strong> " + text
	}

	name := strings.TrimSpace(block.Name)
	if name != "" && !strings.EqualFold(name, "effect") {
		text = "<strong>" + name + ":</strong> " + text
	}

	return Paragraph(text)
}

// FormatBlocks renders each block in order
func FormatBlocks(blocks []Block, withCost bool) string {
	var b strings.Builder
	for _, block := range blocks {
		b.WriteString(FormatBlock(block, withCost))
	}
	return b.String()
}
