package browser

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"

	"rozetka-scraper/utils"
)

// Options configures the headless Chrome session.
type Options struct {
	ExecPath   string
	UserAgent  string
	NavTimeout time.Duration
	Headers    map[string]interface{}
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() *Options {
	return &Options{
		UserAgent: "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 " +
			"(KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		NavTimeout: 90 * time.Second,
		Headers: map[string]interface{}{
			"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
			"Accept-Language": "uk-UA,uk;q=0.9,ru;q=0.8,en;q=0.7",
		},
	}
}

var _ Session = (*Chrome)(nil)

// Chrome is a Session backed by one chromedp tab.
type Chrome struct {
	tabCtx      context.Context
	cancelTab   context.CancelFunc
	cancelAlloc context.CancelFunc
	navTimeout  time.Duration
	logger      *utils.Logger
}

// NewChrome launches a headless browser and opens the tab every call runs in.
func NewChrome(opts *Options, logger *utils.Logger) (*Chrome, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	execPath := opts.ExecPath
	if execPath == "" {
		execPath = findChromeBinary()
	}
	logger.Info("[browser] Using browser binary: %s", execPath)

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-setuid-sandbox", true),
	)
	if opts.UserAgent != "" {
		allocOpts = append(allocOpts, chromedp.UserAgent(opts.UserAgent))
	}
	if execPath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(execPath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(), allocOpts...)

	// Suppress chromedp log noise
	tabCtx, cancelTab := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(string, ...interface{}) {}))

	// The first Run starts the browser.
	var startup []chromedp.Action
	if len(opts.Headers) > 0 {
		startup = append(startup, network.Enable(), network.SetExtraHTTPHeaders(network.Headers(opts.Headers)))
	}
	if err := chromedp.Run(tabCtx, startup...); err != nil {
		cancelTab()
		cancelAlloc()
		return nil, fmt.Errorf("browser: start: %w", err)
	}

	navTimeout := opts.NavTimeout
	if navTimeout <= 0 {
		navTimeout = DefaultOptions().NavTimeout
	}

	return &Chrome{
		tabCtx:      tabCtx,
		cancelTab:   cancelTab,
		cancelAlloc: cancelAlloc,
		navTimeout:  navTimeout,
		logger:      logger,
	}, nil
}

// run executes actions in the tab, bounded by the navigation timeout and
// cancelled together with ctx.
func (c *Chrome) run(ctx context.Context, actions ...chromedp.Action) error {
	runCtx, cancel := context.WithTimeout(c.tabCtx, c.navTimeout)
	defer cancel()

	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	return chromedp.Run(runCtx, actions...)
}

// Navigate loads url and returns the rendered document.
func (c *Chrome) Navigate(ctx context.Context, url string) (string, error) {
	var html string
	err := c.run(ctx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)
	if err != nil {
		return "", fmt.Errorf("browser: navigate %q: %w", url, err)
	}
	return html, nil
}

// Click clicks the first element matching selector. It does not wait for the
// element to appear.
func (c *Chrome) Click(ctx context.Context, selector string) (ClickResult, error) {
	var nodes []*cdp.Node
	if err := c.run(ctx, chromedp.Nodes(selector, &nodes, chromedp.ByQuery, chromedp.AtLeast(0))); err != nil {
		return NotFound, fmt.Errorf("browser: query %q: %w", selector, err)
	}
	if len(nodes) == 0 {
		return NotFound, nil
	}

	if err := c.run(ctx, chromedp.MouseClickNode(nodes[0])); err != nil {
		return NotFound, fmt.Errorf("browser: click %q: %w", selector, err)
	}
	c.logger.Debug("[browser] Clicked %s", selector)
	return Clicked, nil
}

// HTML returns the current rendered document.
func (c *Chrome) HTML(ctx context.Context) (string, error) {
	var html string
	if err := c.run(ctx, chromedp.OuterHTML("html", &html, chromedp.ByQuery)); err != nil {
		return "", fmt.Errorf("browser: read html: %w", err)
	}
	return html, nil
}

// Close shuts the tab and the browser process down.
func (c *Chrome) Close() error {
	c.cancelTab()
	c.cancelAlloc()
	return nil
}

// chromeCandidates are tried in order: bare names through PATH, absolute
// paths as they are.
var chromeCandidates = []string{
	"google-chrome-stable",
	"google-chrome",
	"chromium",
	"chromium-browser",
	"/opt/google/chrome/google-chrome",
	"/snap/bin/chromium",
}

// findChromeBinary returns CHROME_BIN, or the first installed candidate, or ""
// to let chromedp use its own lookup.
func findChromeBinary() string {
	if bin := os.Getenv("CHROME_BIN"); bin != "" {
		return bin
	}

	for _, c := range chromeCandidates {
		if filepath.IsAbs(c) {
			if _, err := os.Stat(c); err == nil {
				return c
			}
			continue
		}
		if path, err := exec.LookPath(c); err == nil {
			return path
		}
	}
	return ""
}
