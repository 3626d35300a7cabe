package gen

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	http "github.com/bogdanfinn/fhttp"
	"github.com/tidwall/gjson"

	apierrors "github.com/Clemens865/microlabs/internal/errors"
)

// Wire types for the generateContent request body
type wirePart struct {
	Text       string          `json:"text,omitempty"`
	InlineData *wireInlineData `json:"inline_data,omitempty"`
}

type wireInlineData struct {
	MIMEType string `json:"mime_type"`
	Data     string `json:"data"` // base64
}

type wireContent struct {
	Role  string     `json:"role,omitempty"`
	Parts []wirePart `json:"parts"`
}

type wireGenerationConfig struct {
	ResponseMIMEType string `json:"responseMimeType,omitempty"`
}

type wireTool struct {
	GoogleSearch *struct{} `json:"google_search,omitempty"`
}

type wirePayload struct {
	Contents          []wireContent         `json:"contents"`
	SystemInstruction *wireContent          `json:"systemInstruction,omitempty"`
	GenerationConfig  *wireGenerationConfig `json:"generationConfig,omitempty"`
	Tools             []wireTool            `json:"tools,omitempty"`
}

// Generate turns a Request into a Result. Validation and the credential
// check run before any network activity; every failure crossing this
// boundary is one of the typed errors from internal/errors.
func (c *Client) Generate(req Request) (*Result, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	key := c.creds.Key()
	if key == "" {
		return nil, apierrors.NewCredentialError("run 'microlabs configure' to set one")
	}

	model := c.model
	if req.Model != "" {
		model = req.Model
	}

	payload, err := buildPayload(req)
	if err != nil {
		return nil, fmt.Errorf("failed to build payload: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, model)

	httpReq, err := http.NewRequest(http.MethodPost, endpoint, strings.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", key)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, apierrors.NewTransportError(endpoint, "generate content", err)
	}
	defer func() {
		if resp != nil && resp.Body != nil {
			_ = resp.Body.Close()
		}
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 32<<20))
	if err != nil {
		return nil, apierrors.NewTransportError(endpoint, "read response", err)
	}

	if resp.StatusCode != 200 {
		message := gjson.GetBytes(body, PathErrorMessage).String()
		if message == "" {
			message = "generate content failed"
		}
		detail := string(body)
		if len(detail) > 4096 {
			detail = detail[:4096]
		}
		return nil, apierrors.NewHTTPError(resp.StatusCode, endpoint, message, detail)
	}

	return c.parseResponse(body, req, model)
}

// buildPayload creates the JSON body for the generate request
func buildPayload(req Request) (string, error) {
	parts := []wirePart{{Text: req.Prompt}}
	if req.Media != nil {
		parts = append(parts, wirePart{
			InlineData: &wireInlineData{
				MIMEType: req.Media.MIMEType,
				Data:     base64.StdEncoding.EncodeToString(req.Media.Data),
			},
		})
	}

	payload := wirePayload{
		Contents: []wireContent{{Role: "user", Parts: parts}},
	}

	if req.SystemInstruction != "" {
		payload.SystemInstruction = &wireContent{
			Parts: []wirePart{{Text: req.SystemInstruction}},
		}
	}

	if req.Mode == ModeJSON {
		payload.GenerationConfig = &wireGenerationConfig{
			ResponseMIMEType: "application/json",
		}
	}

	if req.Grounded {
		payload.Tools = []wireTool{{GoogleSearch: &struct{}{}}}
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// parseResponse converts a 200 response body into a Result or a typed error
func (c *Client) parseResponse(body []byte, req Request, model string) (*Result, error) {
	parsed := gjson.ParseBytes(body)

	// A blocked prompt carries no candidates, only a block reason
	if block := parsed.Get(PathBlockReason); block.Exists() && block.String() != "" {
		return nil, apierrors.NewRefusalError(fmt.Sprintf("request blocked: %s", block.String()))
	}

	candidates := parsed.Get(PathCandidates)
	if !candidates.Exists() || !candidates.IsArray() || len(candidates.Array()) == 0 {
		return nil, fmt.Errorf("unexpected response shape: no candidates")
	}

	result := &Result{Model: model}

	var text strings.Builder
	parsed.Get(PathFirstContent).ForEach(func(_, part gjson.Result) bool {
		if t := part.Get(PathPartText); t.Exists() && t.String() != "" {
			if text.Len() > 0 {
				text.WriteString("\n")
			}
			text.WriteString(t.String())
		}
		if mime := part.Get(PathPartInlineMIME).String(); strings.HasPrefix(mime, "image/") {
			if raw, err := base64.StdEncoding.DecodeString(part.Get(PathPartInlineData).String()); err == nil {
				result.Images = append(result.Images, GeneratedImage{Data: raw, MIMEType: mime})
			}
		}
		return true
	})
	result.Text = text.String()

	// Safety terminations surface as refusals, with whatever text came back
	finish := parsed.Get(PathFinishReason).String()
	switch finish {
	case "SAFETY", "RECITATION", "PROHIBITED_CONTENT", "BLOCKLIST":
		return nil, apierrors.NewRefusalError(strings.TrimSpace(result.Text))
	}

	parsed.Get(PathGroundChunks).ForEach(func(_, chunk gjson.Result) bool {
		uri := chunk.Get(PathChunkURI).String()
		if uri == "" {
			return true
		}
		result.Sources = append(result.Sources, Source{
			URI:   uri,
			Title: chunk.Get(PathChunkTitle).String(),
		})
		return true
	})

	if err := c.checkExpectation(req, result); err != nil {
		return nil, err
	}

	if req.Mode == ModeJSON {
		stripped := stripCodeFence(result.Text)
		var obj any
		if err := json.Unmarshal([]byte(stripped), &obj); err != nil {
			return nil, apierrors.NewMalformedJSONError(result.Text, err)
		}
		result.JSON = obj
	}

	return result, nil
}

// checkExpectation classifies artifact-expecting requests whose reply is
// short prose with no artifact as provider refusals. The length threshold
// is a convenience heuristic, not provider behavior.
func (c *Client) checkExpectation(req Request, result *Result) error {
	trimmed := strings.TrimSpace(result.Text)

	switch req.Expect {
	case ExpectImage:
		if !result.HasImages() && len(trimmed) < c.refusalThreshold {
			return apierrors.NewRefusalError(trimmed)
		}
	case ExpectCode:
		if !strings.Contains(result.Text, "```") && len(trimmed) < c.refusalThreshold {
			return apierrors.NewRefusalError(trimmed)
		}
	}

	return nil
}

// DecodeJSON re-decodes the JSON-mode result into a caller-defined shape
func (r *Result) DecodeJSON(v any) error {
	if r.JSON == nil {
		return fmt.Errorf("result carries no JSON payload")
	}
	data, err := json.Marshal(r.JSON)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// stripCodeFence removes a surrounding markdown code fence, which some
// models emit even in JSON mode
func stripCodeFence(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	trimmed = strings.TrimPrefix(trimmed, "```")
	if i := strings.IndexByte(trimmed, '\n'); i >= 0 {
		// Drop the language tag line ("json", "html", ...)
		first := strings.TrimSpace(trimmed[:i])
		if len(first) <= 10 {
			trimmed = trimmed[i+1:]
		}
	}
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
