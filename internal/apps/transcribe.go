package apps

import (
	"github.com/Clemens865/microlabs/internal/extract"
	"github.com/Clemens865/microlabs/internal/gen"
)

const transcribeSystem = `You are a precise transcription assistant. Transcribe the provided audio or PDF faithfully. After the transcript, add three sections titled "Summary:", "Key Points:" and "Action Items:". Summary is one short paragraph; the other two are bulleted lists.`

// Transcript is a transcription with its recovered sections
type Transcript struct {
	Text        string
	Summary     string
	KeyPoints   []string
	ActionItems []string
}

// Transcriber turns audio or PDF bytes into a transcript with summary,
// key points, and action items.
type Transcriber struct {
	client gen.Generator
	gate   gate
}

// NewTranscriber creates a transcriber
func NewTranscriber(client gen.Generator) *Transcriber {
	return &Transcriber{client: client}
}

// Run transcribes the media payload. The section structure is recovered
// heuristically; when no sections are found the raw text still comes back.
func (t *Transcriber) Run(data []byte, mimeType string) (*Transcript, error) {
	if err := t.gate.acquire(); err != nil {
		return nil, err
	}
	defer t.gate.release()

	result, err := t.client.Generate(gen.Request{
		Prompt:            "Transcribe this file, then summarize it as instructed.",
		SystemInstruction: transcribeSystem,
		Mode:              gen.ModeText,
		Media:             &gen.InlineMedia{Data: data, MIMEType: mimeType},
	})
	if err != nil {
		return nil, err
	}

	sections := extract.Extract(result.Text, extract.DefaultPatterns())

	transcript := &Transcript{Text: result.Text}
	if s, ok := sections["summary"]; ok {
		transcript.Summary = s.Text
	}
	if s, ok := sections["key points"]; ok {
		transcript.KeyPoints = s.Items
	}
	if s, ok := sections["action items"]; ok {
		transcript.ActionItems = s.Items
	}

	return transcript, nil
}
