package browser

import "context"

// ClickResult reports whether a click found its target.
type ClickResult int

const (
	NotFound ClickResult = iota
	Clicked
)

func (r ClickResult) String() string {
	switch r {
	case Clicked:
		return "clicked"
	case NotFound:
		return "not found"
	default:
		return "unknown"
	}
}

// Session is a single browser tab the scraper drives. A missing click target
// is reported as NotFound, never as an error.
type Session interface {
	Navigate(ctx context.Context, url string) (string, error)
	Click(ctx context.Context, selector string) (ClickResult, error)
	HTML(ctx context.Context) (string, error)
	Close() error
}
