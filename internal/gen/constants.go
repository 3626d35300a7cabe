// Package gen implements the generation client for the Gemini REST API.
//
// It is the single choke point for turning a Request into a Result: request
// shaping, credential handling, transport, and response parsing all live
// here. The client performs exactly one HTTP call per Generate invocation,
// with no retries and no streaming.
package gen

// DefaultBaseURL is the base URL for the generative language API.
const DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Model identifiers accepted by the API
const (
	ModelFlash = "gemini-2.5-flash"
	ModelPro   = "gemini-2.5-pro"
	// ModelImage supports image output for editing tasks
	ModelImage = "gemini-2.5-flash-image"

	// DefaultModel is the baseline text/multimodal model
	DefaultModel = ModelFlash
)

// DefaultRefusalThreshold is the response length below which an
// artifact-expecting request with no artifact in the reply is classified
// as a refusal. A convenience heuristic, tunable via WithRefusalThreshold.
const DefaultRefusalThreshold = 200

// AllModels returns the model identifiers selectable from the CLI
func AllModels() []string {
	return []string{ModelFlash, ModelPro, ModelImage}
}

// gjson paths into the generateContent response
const (
	PathCandidates     = "candidates"
	PathFirstContent   = "candidates.0.content.parts"
	PathFinishReason   = "candidates.0.finishReason"
	PathBlockReason    = "promptFeedback.blockReason"
	PathGroundChunks   = "candidates.0.groundingMetadata.groundingChunks"
	PathChunkURI       = "web.uri"
	PathChunkTitle     = "web.title"
	PathPartText       = "text"
	PathPartInlineMIME = "inlineData.mimeType"
	PathPartInlineData = "inlineData.data"
	PathErrorMessage   = "error.message"
)
