package apps

import (
	"fmt"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/Clemens865/microlabs/internal/gen"
)

// Repurpose formats and their generation instructions
var repurposeFormats = map[string]string{
	"tweet":      "Rewrite the content as a single tweet under 280 characters. Punchy, no hashtag spam.",
	"linkedin":   "Rewrite the content as a LinkedIn post: a strong hook line, short paragraphs, a closing question.",
	"newsletter": "Rewrite the content as a newsletter section: a heading, two or three paragraphs, a takeaway line.",
}

// RepurposeFormats lists the supported output formats
func RepurposeFormats() []string {
	out := make([]string, 0, len(repurposeFormats))
	for name := range repurposeFormats {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Variant is one repurposed rendition of the source content
type Variant struct {
	Format string
	Text   string
}

// Repurposer rewrites source content into social/newsletter formats. Each
// format is one generation call; the calls for one Run are issued
// concurrently.
type Repurposer struct {
	client gen.Generator
	gate   gate
}

// NewRepurposer creates a repurposer
func NewRepurposer(client gen.Generator) *Repurposer {
	return &Repurposer{client: client}
}

// Run generates a variant per requested format. The first failing format
// fails the whole run; there is no partial result.
func (r *Repurposer) Run(content string, formats []string) ([]Variant, error) {
	if err := r.gate.acquire(); err != nil {
		return nil, err
	}
	defer r.gate.release()

	if len(formats) == 0 {
		formats = RepurposeFormats()
	}
	for _, f := range formats {
		if _, ok := repurposeFormats[f]; !ok {
			return nil, fmt.Errorf("unknown format: %s", f)
		}
	}

	content = truncate(content, 12000)

	var mu sync.Mutex
	variants := make([]Variant, 0, len(formats))

	var g errgroup.Group
	for _, format := range formats {
		g.Go(func() error {
			result, err := r.client.Generate(gen.Request{
				Prompt:            content,
				SystemInstruction: repurposeFormats[format],
				Mode:              gen.ModeText,
			})
			if err != nil {
				return fmt.Errorf("%s: %w", format, err)
			}

			mu.Lock()
			variants = append(variants, Variant{Format: format, Text: result.Text})
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(variants, func(i, j int) bool { return variants[i].Format < variants[j].Format })
	return variants, nil
}
