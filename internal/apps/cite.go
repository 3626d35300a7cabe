package apps

import (
	"fmt"
	"strings"

	"github.com/Clemens865/microlabs/internal/gen"
)

const citeSystem = `You are a citation generator. Given a source description or text, produce accurate citations. Respond with JSON of the shape {"citations":[{"style":"...","text":"..."}]}. Do not invent metadata; leave unknown fields out of the citation text.`

// DefaultCitationStyles are generated when the caller names none
var DefaultCitationStyles = []string{"APA", "MLA", "Chicago"}

// Citation is one formatted reference
type Citation struct {
	Style string `json:"style"`
	Text  string `json:"text"`
}

// Citer generates formatted citations from source text or metadata
type Citer struct {
	client gen.Generator
	gate   gate
}

// NewCiter creates a citation generator
func NewCiter(client gen.Generator) *Citer {
	return &Citer{client: client}
}

// Run produces citations for the source in the requested styles
func (c *Citer) Run(source string, styles []string) ([]Citation, error) {
	if err := c.gate.acquire(); err != nil {
		return nil, err
	}
	defer c.gate.release()

	if len(styles) == 0 {
		styles = DefaultCitationStyles
	}

	prompt := fmt.Sprintf("Create citations in these styles: %s.\n\nSource:\n%s",
		strings.Join(styles, ", "), truncate(source, 8000))

	result, err := c.client.Generate(gen.Request{
		Prompt:            prompt,
		SystemInstruction: citeSystem,
		Mode:              gen.ModeJSON,
	})
	if err != nil {
		return nil, err
	}

	var payload struct {
		Citations []Citation `json:"citations"`
	}
	if err := result.DecodeJSON(&payload); err != nil {
		return nil, fmt.Errorf("unexpected citation shape: %w", err)
	}

	return payload.Citations, nil
}
