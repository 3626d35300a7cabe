package errors

import "errors"

// IsCredentialError reports whether err means no API key is configured
func IsCredentialError(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrMissingCredential)
}

// IsMediaTypeError reports whether err is a rejected inline media type
func IsMediaTypeError(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrInvalidMediaType)
}

// IsRefusalError reports whether err is a provider refusal
func IsRefusalError(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrProviderRefusal)
}

// IsMalformedJSONError reports whether err is an unparseable JSON-mode response
func IsMalformedJSONError(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrMalformedJSON)
}

// IsTransportError reports whether err is a network or HTTP-level failure
func IsTransportError(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsValidationError reports whether err is a request rejected before dispatch
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// GetHTTPStatus extracts the HTTP status code from an error, or 0
func GetHTTPStatus(err error) int {
	var te *TransportError
	if errors.As(err, &te) {
		return te.StatusCode
	}
	return 0
}

// GetEndpoint extracts the endpoint from a transport error, or ""
func GetEndpoint(err error) string {
	var te *TransportError
	if errors.As(err, &te) {
		return te.Endpoint
	}
	return ""
}

// GetResponseBody extracts the raw response body from a transport error, or ""
func GetResponseBody(err error) string {
	var te *TransportError
	if errors.As(err, &te) {
		return te.Body
	}
	return ""
}

// GetRefusalText extracts the literal refusal text, or ""
func GetRefusalText(err error) string {
	var re *RefusalError
	if errors.As(err, &re) {
		return re.Text
	}
	return ""
}

// GetRawJSON extracts the unparseable raw text from a MalformedJSONError,
// or "". Callers use it to fall back to plain-text handling.
func GetRawJSON(err error) string {
	var me *MalformedJSONError
	if errors.As(err, &me) {
		return me.Raw
	}
	return ""
}
