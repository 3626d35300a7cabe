package host

import "context"

// FakePageFetcher is a PageFetcher returning canned pages, for tests
type FakePageFetcher struct {
	Page *Page
	Err  error

	Calls   int
	LastURL string
}

// Ensure FakePageFetcher implements PageFetcher
var _ PageFetcher = (*FakePageFetcher)(nil)

func (f *FakePageFetcher) Fetch(_ context.Context, url string) (*Page, error) {
	f.Calls++
	f.LastURL = url
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Page, nil
}

// FakeClipboard is an in-memory Clipboard, for tests
type FakeClipboard struct {
	Text     string
	ReadErr  error
	WriteErr error

	Reads  int
	Writes int
}

// Ensure FakeClipboard implements Clipboard
var _ Clipboard = (*FakeClipboard)(nil)

func (f *FakeClipboard) Read() (string, error) {
	f.Reads++
	if f.ReadErr != nil {
		return "", f.ReadErr
	}
	return f.Text, nil
}

func (f *FakeClipboard) Write(text string) error {
	f.Writes++
	if f.WriteErr != nil {
		return f.WriteErr
	}
	f.Text = text
	return nil
}
