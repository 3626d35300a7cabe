package gen

import (
	"bytes"
	"io"
	"sync"

	http "github.com/bogdanfinn/fhttp"
)

// MockClient is a mock implementation of Generator for testing apps.
// Safe for concurrent Generate calls.
type MockClient struct {
	// Mock return values
	Result *Result
	Err    error
	// Results, when set, are returned in order across calls
	Results []*Result

	// Call counters/recorders
	Calls       int
	LastRequest Request
	Requests    []Request

	mu sync.Mutex
}

// Ensure MockClient implements Generator
var _ Generator = (*MockClient)(nil)

func (m *MockClient) Generate(req Request) (*Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.LastRequest = req
	m.Requests = append(m.Requests, req)
	m.Calls++

	if m.Err != nil {
		return nil, m.Err
	}
	if len(m.Results) > 0 {
		r := m.Results[0]
		if len(m.Results) > 1 {
			m.Results = m.Results[1:]
		}
		return r, nil
	}
	return m.Result, nil
}

// MockHTTPClient is an HTTPDoer returning canned responses, for
// transport-level client tests
type MockHTTPClient struct {
	Response *http.Response
	Err      error

	Calls       int
	LastRequest *http.Request
}

// Ensure MockHTTPClient implements HTTPDoer
var _ HTTPDoer = (*MockHTTPClient)(nil)

func (m *MockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	m.Calls++
	m.LastRequest = req
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Response, nil
}

// NewMockResponse builds an *http.Response with the given status and body
func NewMockResponse(statusCode int, body []byte) *http.Response {
	return &http.Response{
		StatusCode: statusCode,
		Body:       io.NopCloser(bytes.NewReader(body)),
		Header:     make(http.Header),
	}
}
