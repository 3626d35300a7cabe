package apps

import (
	"fmt"

	"github.com/Clemens865/microlabs/internal/gen"
)

const researchSystem = `You are a local research assistant. Answer with current, factual information about the asked place or topic. Cover the angles the user asks about; when they ask about a neighborhood include safety, amenities, transit, and typical housing costs. Be concise and structured.`

// ResearchReport is a grounded answer with its source citations
type ResearchReport struct {
	Answer  string
	Sources []gen.Source
}

// Researcher answers neighborhood/topic questions using the grounded
// search variant, which returns source citations alongside the text.
type Researcher struct {
	client gen.Generator
	gate   gate
}

// NewResearcher creates a researcher
func NewResearcher(client gen.Generator) *Researcher {
	return &Researcher{client: client}
}

// Run asks a grounded question. An answer without sources is still a
// success; grounding is best effort on the provider side.
func (r *Researcher) Run(question string) (*ResearchReport, error) {
	if err := r.gate.acquire(); err != nil {
		return nil, err
	}
	defer r.gate.release()

	result, err := r.client.Generate(gen.Request{
		Prompt:            question,
		SystemInstruction: researchSystem,
		Mode:              gen.ModeText,
		Grounded:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("research failed: %w", err)
	}

	return &ResearchReport{Answer: result.Text, Sources: result.Sources}, nil
}
