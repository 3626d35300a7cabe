package host

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	http "github.com/bogdanfinn/fhttp"
	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"
	"golang.org/x/net/html"
)

// maxPageText caps extracted text so prompts stay a reasonable size
const maxPageText = 12000

// DefaultFetchTimeout bounds a single page fetch
const DefaultFetchTimeout = 20 * time.Second

// Doer is the transport surface the fetcher needs
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Fetcher is the HTTP-backed PageFetcher
type Fetcher struct {
	httpClient Doer
	timeout    time.Duration
}

// Ensure Fetcher implements PageFetcher
var _ PageFetcher = (*Fetcher)(nil)

// FetcherOption configures a Fetcher
type FetcherOption func(*Fetcher)

// WithDoer injects a transport, primarily for tests
func WithDoer(d Doer) FetcherOption {
	return func(f *Fetcher) {
		f.httpClient = d
	}
}

// WithFetchTimeout bounds each fetch
func WithFetchTimeout(d time.Duration) FetcherOption {
	return func(f *Fetcher) {
		if d > 0 {
			f.timeout = d
		}
	}
}

// NewFetcher creates a page fetcher
func NewFetcher(opts ...FetcherOption) (*Fetcher, error) {
	f := &Fetcher{timeout: DefaultFetchTimeout}

	for _, opt := range opts {
		opt(f)
	}

	if f.httpClient == nil {
		options := []tls_client.HttpClientOption{
			tls_client.WithTimeoutSeconds(int(DefaultFetchTimeout / time.Second)),
			tls_client.WithClientProfile(profiles.Chrome_120),
		}
		httpClient, err := tls_client.NewHttpClient(tls_client.NewNoopLogger(), options...)
		if err != nil {
			return nil, fmt.Errorf("failed to create HTTP client: %w", err)
		}
		f.httpClient = httpClient
	}

	return f, nil
}

// Fetch retrieves a URL and extracts title and readable text
func (f *Fetcher) Fetch(ctx context.Context, url string) (*Page, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req = req.WithContext(ctx)
	req.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/133.0.0.0 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, ErrFetchTimeout
		}
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer func() {
		if resp.Body != nil {
			_ = resp.Body.Close()
		}
	}()

	switch {
	case resp.StatusCode == 404 || resp.StatusCode == 410:
		return nil, ErrPageNotFound
	case resp.StatusCode == 401 || resp.StatusCode == 403:
		return nil, ErrFetchDenied
	case resp.StatusCode != 200:
		return nil, fmt.Errorf("fetch %s: unexpected status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", url, err)
	}

	title, text := extractReadable(body)
	return &Page{URL: url, Title: title, Text: text}, nil
}

// extractReadable pulls the title and visible text out of an HTML document
func extractReadable(body []byte) (title, text string) {
	doc, err := html.Parse(strings.NewReader(string(body)))
	if err != nil {
		return "", ""
	}

	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "svg", "nav", "footer":
				return
			case "title":
				if title == "" && n.FirstChild != nil {
					title = strings.TrimSpace(n.FirstChild.Data)
				}
				return
			}
		}
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" && sb.Len() < maxPageText {
				if sb.Len() > 0 {
					sb.WriteString(" ")
				}
				sb.WriteString(t)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	text = sb.String()
	if len(text) > maxPageText {
		text = text[:maxPageText]
	}
	return title, text
}
