package apps

import (
	"fmt"
	"strings"

	"github.com/Clemens865/microlabs/internal/gen"
)

// EditedImage is the outcome of an image edit
type EditedImage struct {
	Data     []byte
	MIMEType string
	// Note is any text the model returned alongside the image
	Note string
}

// ImageEditor applies a natural-language edit to an image. The request
// expects image data back; explanatory text instead of an image surfaces
// as a provider refusal, never as a result.
type ImageEditor struct {
	client gen.Generator
	gate   gate
}

// NewImageEditor creates an image editor
func NewImageEditor(client gen.Generator) *ImageEditor {
	return &ImageEditor{client: client}
}

// Run edits the image per the instruction
func (e *ImageEditor) Run(image []byte, mimeType, instruction string) (*EditedImage, error) {
	if err := e.gate.acquire(); err != nil {
		return nil, err
	}
	defer e.gate.release()

	if strings.TrimSpace(instruction) == "" {
		return nil, fmt.Errorf("edit instruction cannot be empty")
	}

	result, err := e.client.Generate(gen.Request{
		Prompt: instruction,
		Mode:   gen.ModeText,
		Media:  &gen.InlineMedia{Data: image, MIMEType: mimeType},
		Model:  gen.ModelImage,
		Expect: gen.ExpectImage,
	})
	if err != nil {
		return nil, err
	}

	if !result.HasImages() {
		// Long explanatory text passed the refusal heuristic but still
		// carries no image
		return nil, fmt.Errorf("model returned no image data")
	}

	img := result.Images[0]
	return &EditedImage{Data: img.Data, MIMEType: img.MIMEType, Note: strings.TrimSpace(result.Text)}, nil
}
