// Package extract recovers labeled sections from free-form model text.
//
// The extractor is a best-effort heuristic: it never fails, and a section
// that cannot be found is simply absent from the result. Callers fall back
// to displaying the raw text when the mapping comes back empty.
package extract

import (
	"regexp"
	"strings"
)

// Section is one recovered piece of structure
type Section struct {
	// Label is the pattern label the section was matched under
	Label string
	// Text holds prose content; empty for list sections
	Text string
	// Items holds list entries with leading markers stripped; nil for
	// prose sections
	Items []string
}

// Pattern names a section and the header regexp that introduces it
type Pattern struct {
	Label  string
	Header *regexp.Regexp
}

// NewPattern compiles a case-insensitive header pattern anchored at the
// start of a line. An optional trailing colon is consumed.
func NewPattern(label, expr string) Pattern {
	return Pattern{
		Label:  label,
		Header: regexp.MustCompile(`(?i)^(?:` + expr + `)\s*:?\s*`),
	}
}

// DefaultPatterns covers the sections the apps ask for most often
func DefaultPatterns() []Pattern {
	return []Pattern{
		NewPattern("summary", `summary|overview|tl;?dr`),
		NewPattern("action items", `action\s*items?|to-?dos?|next\s*steps?`),
		NewPattern("key points", `key\s*points?|main\s*points?|highlights?|key\s*takeaways?`),
	}
}

// listMarker recognizes bulleted and numbered list lines
var listMarker = regexp.MustCompile(`^\s*(?:[-•*]|\d+[.)])\s+`)

// Extract maps section labels to their content. Pure function: same text
// and patterns always yield the same mapping. If multiple headers match
// the same label, the first occurrence wins.
func Extract(text string, patterns []Pattern) map[string]Section {
	out := make(map[string]Section)
	lines := strings.Split(text, "\n")

	i := 0
	for i < len(lines) {
		label, rest, ok := matchHeader(lines[i], patterns)
		if !ok {
			i++
			continue
		}
		if _, seen := out[label]; seen {
			i++
			continue
		}
		i++

		section, next := collectSection(label, rest, lines, i, patterns)
		if section != nil {
			out[label] = *section
		}
		i = next
	}

	return out
}

// matchHeader checks whether a line introduces a known section. It
// returns the label and any content trailing the header on the same line.
func matchHeader(line string, patterns []Pattern) (label, rest string, ok bool) {
	stripped := strings.TrimSpace(line)
	// Markdown header and bold decorations around headers are common
	stripped = strings.TrimLeft(stripped, "#> ")
	stripped = strings.Trim(stripped, "*_")

	for _, p := range patterns {
		loc := p.Header.FindStringIndex(stripped)
		if loc == nil || loc[0] != 0 {
			continue
		}
		return p.Label, strings.TrimSpace(stripped[loc[1]:]), true
	}
	return "", "", false
}

// collectSection gathers the content following a header, deciding between
// list and prose form from the first content line.
func collectSection(label, rest string, lines []string, start int, patterns []Pattern) (*Section, int) {
	i := start

	// Skip blank lines between the header and its content
	for i < len(lines) && strings.TrimSpace(lines[i]) == "" && rest == "" {
		i++
	}

	if rest == "" && i >= len(lines) {
		return nil, i
	}

	// List section: items until a blank line or the next recognized header
	if rest == "" && listMarker.MatchString(lines[i]) {
		var items []string
		for i < len(lines) {
			line := lines[i]
			if strings.TrimSpace(line) == "" {
				break
			}
			if _, _, isHeader := matchHeader(line, patterns); isHeader {
				break
			}
			if listMarker.MatchString(line) {
				items = append(items, strings.TrimSpace(listMarker.ReplaceAllString(line, "")))
			} else {
				// Continuation of the previous item
				if len(items) > 0 {
					items[len(items)-1] += " " + strings.TrimSpace(line)
				}
			}
			i++
		}
		if len(items) == 0 {
			return nil, i
		}
		return &Section{Label: label, Items: items}, i
	}

	// Prose section: runs until a blank line followed by another
	// recognized header, or end of input
	var prose []string
	if rest != "" {
		if listMarker.MatchString(rest) {
			return &Section{Label: label, Items: []string{strings.TrimSpace(listMarker.ReplaceAllString(rest, ""))}}, i
		}
		prose = append(prose, rest)
	}
	for i < len(lines) {
		line := lines[i]
		if strings.TrimSpace(line) == "" {
			if nextIsHeader(lines, i+1, patterns) {
				break
			}
			prose = append(prose, "")
			i++
			continue
		}
		if _, _, isHeader := matchHeader(line, patterns); isHeader {
			break
		}
		prose = append(prose, strings.TrimSpace(line))
		i++
	}

	text := strings.TrimSpace(strings.Join(prose, "\n"))
	if text == "" {
		return nil, i
	}
	return &Section{Label: label, Text: text}, i
}

// nextIsHeader reports whether the next non-blank line is a recognized header
func nextIsHeader(lines []string, i int, patterns []Pattern) bool {
	for ; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "" {
			continue
		}
		_, _, ok := matchHeader(lines[i], patterns)
		return ok
	}
	return false
}
