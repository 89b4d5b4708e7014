package rozetka

import (
	"context"
	"fmt"
	"time"

	"github.com/gocolly/colly/v2"

	"rozetka-scraper/browser"
	"rozetka-scraper/config"
	"rozetka-scraper/utils"
)

// Fetcher retrieves the HTML of a detail page.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// NewFetcher returns the fetcher for cfg.FetchMode. The mode holds for the
// whole run.
func NewFetcher(cfg *config.Config, session browser.Session, logger *utils.Logger) (Fetcher, error) {
	switch cfg.FetchMode {
	case config.FetchModeDriver:
		return NewDriverFetcher(session, CharacteristicsTabSelector, cfg.TabDelay, logger), nil
	case config.FetchModeRequest:
		return NewRequestFetcher(cfg.UserAgent, cfg.NavTimeout, cfg.RequestDelay, logger), nil
	default:
		return nil, fmt.Errorf("rozetka: unknown fetch mode %q", cfg.FetchMode)
	}
}

// DriverFetcher loads detail pages in the browser session, so content
// rendered by scripts is included.
type DriverFetcher struct {
	session     browser.Session
	tabSelector string
	tabDelay    time.Duration
	logger      *utils.Logger
	sleep       sleepFunc
}

// NewDriverFetcher returns a DriverFetcher. When tabSelector is not empty the
// tab it names is opened on every page before the HTML is read.
func NewDriverFetcher(session browser.Session, tabSelector string, tabDelay time.Duration, logger *utils.Logger) *DriverFetcher {
	return &DriverFetcher{
		session:     session,
		tabSelector: tabSelector,
		tabDelay:    tabDelay,
		logger:      logger,
		sleep:       sleepCtx,
	}
}

func (f *DriverFetcher) Fetch(ctx context.Context, url string) (string, error) {
	start := time.Now()

	html, err := f.session.Navigate(ctx, url)
	if err != nil {
		return "", err
	}

	if f.tabSelector != "" {
		res, err := f.session.Click(ctx, f.tabSelector)
		if err != nil {
			return "", err
		}
		if res == browser.Clicked {
			if err := f.sleep(ctx, f.tabDelay); err != nil {
				return "", err
			}
			if html, err = f.session.HTML(ctx); err != nil {
				return "", err
			}
		} else {
			f.logger.Debug("[fetcher] Characteristics tab not found on %s", url)
		}
	}

	f.logger.Info("[fetcher] Request via driver took: %v", time.Since(start))
	return html, nil
}

// RequestFetcher issues plain GET requests and pauses after each one.
// Error status pages are returned like any other page; only transport
// failures are errors.
type RequestFetcher struct {
	collector *colly.Collector
	delay     time.Duration
	logger    *utils.Logger
	sleep     sleepFunc
}

// NewRequestFetcher returns a RequestFetcher that waits delay after every
// request.
func NewRequestFetcher(userAgent string, timeout, delay time.Duration, logger *utils.Logger) *RequestFetcher {
	c := colly.NewCollector(
		colly.UserAgent(userAgent),
		colly.AllowURLRevisit(),
		colly.ParseHTTPErrorResponse(),
	)
	if timeout > 0 {
		c.SetRequestTimeout(timeout)
	}

	return &RequestFetcher{
		collector: c,
		delay:     delay,
		logger:    logger,
		sleep:     sleepCtx,
	}
}

// Fetch checks ctx before the request and during the pause after it. A
// request already in flight runs until it completes or hits the request
// timeout.
func (f *RequestFetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	start := time.Now()

	var body []byte
	c := f.collector.Clone()
	c.OnResponse(func(r *colly.Response) {
		body = r.Body
	})
	if err := c.Visit(url); err != nil {
		return "", fmt.Errorf("rozetka: get %q: %w", url, err)
	}

	f.logger.Info("[fetcher] Request took: %v", time.Since(start))

	if err := f.sleep(ctx, f.delay); err != nil {
		return "", err
	}
	return string(body), nil
}
