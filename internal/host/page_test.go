package host

import (
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"strings"
	"testing"

	http "github.com/bogdanfinn/fhttp"
)

// stubDoer returns a canned response for fetcher tests
type stubDoer struct {
	resp *http.Response
	err  error

	calls   int
	lastReq *http.Request
}

func (d *stubDoer) Do(req *http.Request) (*http.Response, error) {
	d.calls++
	d.lastReq = req
	if d.err != nil {
		return nil, d.err
	}
	return d.resp, nil
}

func htmlResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewReader([]byte(body))),
		Header:     make(http.Header),
	}
}

// TestFetchExtractsPage tests title and text extraction over a stub transport
func TestFetchExtractsPage(t *testing.T) {
	doc := `<html><head><title>Example Page</title><script>var x = 1;</script></head>
<body><nav>skip this menu</nav><h1>Welcome</h1><p>Readable body text.</p>
<footer>skip the footer</footer></body></html>`

	doer := &stubDoer{resp: htmlResponse(200, doc)}
	fetcher, err := NewFetcher(WithDoer(doer))
	if err != nil {
		t.Fatalf("NewFetcher() unexpected error: %v", err)
	}

	page, err := fetcher.Fetch(context.Background(), "https://example.test/page")
	if err != nil {
		t.Fatalf("Fetch() unexpected error: %v", err)
	}

	if page.Title != "Example Page" {
		t.Errorf("Title = %q, want %q", page.Title, "Example Page")
	}
	if !strings.Contains(page.Text, "Readable body text.") {
		t.Errorf("Text = %q, want the paragraph included", page.Text)
	}
	if strings.Contains(page.Text, "skip this menu") || strings.Contains(page.Text, "skip the footer") {
		t.Errorf("Text = %q, want nav/footer stripped", page.Text)
	}
	if strings.Contains(page.Text, "var x") {
		t.Errorf("Text = %q, want script content stripped", page.Text)
	}
	if page.URL != "https://example.test/page" {
		t.Errorf("URL = %q, want the fetched URL", page.URL)
	}
}

// TestFetchStatusMapping tests HTTP statuses mapping to sentinels
func TestFetchStatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"404 is not found", 404, ErrPageNotFound},
		{"410 is not found", 410, ErrPageNotFound},
		{"401 is denied", 401, ErrFetchDenied},
		{"403 is denied", 403, ErrFetchDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doer := &stubDoer{resp: htmlResponse(tt.status, "")}
			fetcher, err := NewFetcher(WithDoer(doer))
			if err != nil {
				t.Fatalf("NewFetcher() unexpected error: %v", err)
			}

			_, err = fetcher.Fetch(context.Background(), "https://example.test/x")
			if !stderrors.Is(err, tt.wantErr) {
				t.Errorf("Fetch() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// TestFetchUnexpectedStatus tests non-sentinel statuses surfacing plainly
func TestFetchUnexpectedStatus(t *testing.T) {
	doer := &stubDoer{resp: htmlResponse(503, "")}
	fetcher, err := NewFetcher(WithDoer(doer))
	if err != nil {
		t.Fatalf("NewFetcher() unexpected error: %v", err)
	}

	_, err = fetcher.Fetch(context.Background(), "https://example.test/x")
	if err == nil {
		t.Fatal("Fetch() expected error for 503")
	}
	if !strings.Contains(err.Error(), "503") {
		t.Errorf("error = %v, want the status included", err)
	}
}

// TestFetchSendsBrowserHeaders tests the request shape
func TestFetchSendsBrowserHeaders(t *testing.T) {
	doer := &stubDoer{resp: htmlResponse(200, "<html><body>hi</body></html>")}
	fetcher, err := NewFetcher(WithDoer(doer))
	if err != nil {
		t.Fatalf("NewFetcher() unexpected error: %v", err)
	}

	if _, err := fetcher.Fetch(context.Background(), "https://example.test/x"); err != nil {
		t.Fatalf("Fetch() unexpected error: %v", err)
	}

	if doer.lastReq == nil {
		t.Fatal("no request captured")
	}
	if ua := doer.lastReq.Header.Get("User-Agent"); !strings.Contains(ua, "Mozilla") {
		t.Errorf("User-Agent = %q, want a browser UA", ua)
	}
}

// TestExtractReadableCapsText tests the size cap on extracted text
func TestExtractReadableCapsText(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("<html><body>")
	for i := 0; i < 5000; i++ {
		sb.WriteString("<p>padding paragraph with repeated words</p>")
	}
	sb.WriteString("</body></html>")

	_, text := extractReadable([]byte(sb.String()))
	if len(text) > maxPageText {
		t.Errorf("text length = %d, want at most %d", len(text), maxPageText)
	}
}

// TestExtractReadableGarbage tests that non-HTML input does not panic
func TestExtractReadableGarbage(t *testing.T) {
	title, text := extractReadable([]byte("\x00\x01 not html at all"))
	_ = title
	_ = text
}
