package gen

import (
	"strings"

	"github.com/gabriel-vasile/mimetype"

	apierrors "github.com/Clemens865/microlabs/internal/errors"
)

// Mode controls whether the provider is asked to constrain output to JSON
type Mode int

const (
	// ModeText requests free-form text output
	ModeText Mode = iota
	// ModeJSON asks the provider to constrain output to valid JSON
	ModeJSON
)

// Expect declares the artifact kind a request requires in the response.
// Requests that expect an artifact classify short prose-only replies as
// provider refusals.
type Expect int

const (
	// ExpectAny accepts any response shape
	ExpectAny Expect = iota
	// ExpectCode requires a fenced code block in the reply
	ExpectCode
	// ExpectImage requires inline image data in the reply
	ExpectImage
)

// InlineMedia is a binary payload embedded in a request for multimodal
// understanding (image/audio/PDF bytes).
type InlineMedia struct {
	Data     []byte
	MIMEType string
}

// Request describes a single generation call
type Request struct {
	// Prompt is the user/task instruction. Required, non-empty.
	Prompt string
	// SystemInstruction is an optional persona/constraint applied ahead
	// of the prompt.
	SystemInstruction string
	// Mode selects text or JSON-constrained output
	Mode Mode
	// Media is an optional inline binary payload
	Media *InlineMedia
	// Model overrides the client's default model
	Model string
	// Grounded enables the search-grounded variant, which returns
	// source citations alongside the answer text
	Grounded bool
	// Expect declares the artifact kind required in the response
	Expect Expect
}

// Source is a citation returned by the grounded variant
type Source struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// GeneratedImage is inline image data returned by an image-capable model
type GeneratedImage struct {
	Data     []byte
	MIMEType string
}

// Result is a successful generation outcome
type Result struct {
	// Text is the concatenated text parts of the reply
	Text string
	// JSON is the parsed object when ModeJSON was requested, nil otherwise
	JSON any
	// Sources is populated by the grounded variant
	Sources []Source
	// Images holds inline image data returned by image-capable models
	Images []GeneratedImage
	// Model is the model that served the request
	Model string
}

// HasImages reports whether the reply carried inline image data
func (r *Result) HasImages() bool {
	return len(r.Images) > 0
}

// acceptedMediaType reports whether the provider accepts the MIME type
// for inline payloads: image/*, audio/*, or application/pdf.
func acceptedMediaType(mimeType string) bool {
	if strings.HasPrefix(mimeType, "image/") || strings.HasPrefix(mimeType, "audio/") {
		return true
	}
	return mimeType == "application/pdf"
}

// validate rejects malformed requests before dispatch. It also sniffs the
// media MIME type from the payload bytes when the caller left it empty.
func (req *Request) validate() error {
	if strings.TrimSpace(req.Prompt) == "" {
		return apierrors.NewValidationError("prompt", "cannot be empty")
	}

	if req.Media != nil {
		if req.Media.MIMEType == "" {
			req.Media.MIMEType = mimetype.Detect(req.Media.Data).String()
			// mimetype appends parameters like "; charset=utf-8"
			if i := strings.IndexByte(req.Media.MIMEType, ';'); i >= 0 {
				req.Media.MIMEType = strings.TrimSpace(req.Media.MIMEType[:i])
			}
		}
		if !acceptedMediaType(req.Media.MIMEType) {
			return apierrors.NewMediaTypeError(req.Media.MIMEType)
		}
	}

	return nil
}
