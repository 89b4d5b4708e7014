package rozetka

import (
	"context"
	"fmt"
	"io"
	"time"

	"rozetka-scraper/browser"
	"rozetka-scraper/utils"
)

// fakeSession serves canned pages. The first `clickable` clicks on any
// selector succeed, later ones report NotFound.
type fakeSession struct {
	pages     map[string]string
	afterTab  map[string]string
	current   string
	clickable int
	clickErr  error

	clicks    []string
	navigated []string
}

func (f *fakeSession) Navigate(_ context.Context, url string) (string, error) {
	f.navigated = append(f.navigated, url)
	html, ok := f.pages[url]
	if !ok {
		return "", fmt.Errorf("no page for %s", url)
	}
	f.current = url
	return html, nil
}

func (f *fakeSession) Click(_ context.Context, selector string) (browser.ClickResult, error) {
	f.clicks = append(f.clicks, selector)
	if f.clickErr != nil {
		return browser.NotFound, f.clickErr
	}
	if len(f.clicks) > f.clickable {
		return browser.NotFound, nil
	}
	return browser.Clicked, nil
}

func (f *fakeSession) HTML(_ context.Context) (string, error) {
	if html, ok := f.afterTab[f.current]; ok {
		return html, nil
	}
	return f.pages[f.current], nil
}

func (f *fakeSession) Close() error { return nil }

type sleepRecorder struct {
	calls []time.Duration
}

func (r *sleepRecorder) sleep(_ context.Context, d time.Duration) error {
	r.calls = append(r.calls, d)
	return nil
}

func newTestLogger() *utils.Logger { return utils.NewLoggerTo(io.Discard, "debug") }
