package rozetka

import (
	"context"
	"fmt"
	"time"

	"rozetka-scraper/browser"
	"rozetka-scraper/utils"
)

// Paginator expands a catalog page by pressing its "load more" tile.
type Paginator struct {
	delay  time.Duration
	logger *utils.Logger
	sleep  sleepFunc
}

// NewPaginator returns a Paginator that waits delay after each successful
// "load more" click.
func NewPaginator(delay time.Duration, logger *utils.Logger) *Paginator {
	return &Paginator{delay: delay, logger: logger, sleep: sleepCtx}
}

// LoadAll opens url and clicks "load more" pageCount+1 times, whatever the
// outcome of each click, then returns the accumulated listing HTML.
func (p *Paginator) LoadAll(ctx context.Context, session browser.Session, url string) (string, error) {
	html, err := session.Navigate(ctx, url)
	if err != nil {
		return "", err
	}
	p.logger.Info("[paginator] Received page into driver")

	doc, err := ParseDocument(html)
	if err != nil {
		return "", err
	}
	pageCount, err := PageCount(doc)
	if err != nil {
		return "", err
	}

	for i := 1; i <= pageCount+1; i++ {
		res, err := session.Click(ctx, LoadMoreSelector)
		if err != nil {
			return "", fmt.Errorf("rozetka: load more on page %d: %w", i, err)
		}

		if res == browser.Clicked {
			if err := p.sleep(ctx, p.delay); err != nil {
				return "", err
			}
		} else {
			p.logger.Warn(`[paginator] Button "load more" not found. Continue...`)
		}

		p.logger.Info("[paginator] Loading page %d of %d", i, pageCount)
	}

	return session.HTML(ctx)
}
