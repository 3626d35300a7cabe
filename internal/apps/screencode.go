package apps

import (
	"regexp"
	"strings"

	"github.com/Clemens865/microlabs/internal/gen"
)

const screenCodeSystem = `You are a frontend engineer. Recreate the UI in the screenshot as a single self-contained HTML file using Tailwind CSS classes (CDN). Match layout, spacing, and colors closely. Respond with one fenced code block and nothing else.`

var codeFence = regexp.MustCompile("(?s)```[a-zA-Z]*\n(.*?)```")

// GeneratedCode is the code recovered from a screenshot
type GeneratedCode struct {
	Code string
	// Language is the fence tag, e.g. "html"
	Language string
}

// ScreenCoder converts a UI screenshot into HTML/Tailwind code. The
// request expects a code artifact; prose-only replies surface as provider
// refusals.
type ScreenCoder struct {
	client gen.Generator
	gate   gate
}

// NewScreenCoder creates a screenshot-to-code converter
func NewScreenCoder(client gen.Generator) *ScreenCoder {
	return &ScreenCoder{client: client}
}

// Run generates code for the screenshot. Extra instructions refine the
// conversion ("use dark mode", "mobile layout", ...).
func (s *ScreenCoder) Run(screenshot []byte, mimeType, instructions string) (*GeneratedCode, error) {
	if err := s.gate.acquire(); err != nil {
		return nil, err
	}
	defer s.gate.release()

	prompt := "Convert this screenshot to code."
	if strings.TrimSpace(instructions) != "" {
		prompt += " " + instructions
	}

	result, err := s.client.Generate(gen.Request{
		Prompt:            prompt,
		SystemInstruction: screenCodeSystem,
		Mode:              gen.ModeText,
		Media:             &gen.InlineMedia{Data: screenshot, MIMEType: mimeType},
		Expect:            gen.ExpectCode,
	})
	if err != nil {
		return nil, err
	}

	return parseGeneratedCode(result.Text), nil
}

// parseGeneratedCode pulls the first fenced block out of the reply,
// falling back to the whole text when the model skipped the fence
func parseGeneratedCode(text string) *GeneratedCode {
	m := codeFence.FindStringSubmatch(text)
	if m == nil {
		return &GeneratedCode{Code: strings.TrimSpace(text)}
	}

	lang := ""
	if i := strings.Index(text, m[0]); i >= 0 {
		header := strings.SplitN(strings.TrimPrefix(text[i:], "```"), "\n", 2)[0]
		lang = strings.TrimSpace(header)
	}

	return &GeneratedCode{Code: strings.TrimSpace(m[1]), Language: lang}
}
