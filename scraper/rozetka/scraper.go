package rozetka

import (
	"context"
	"strings"

	"rozetka-scraper/browser"
	"rozetka-scraper/config"
	"rozetka-scraper/storage"
	"rozetka-scraper/utils"
)

// Scraper runs the catalog → detail pages → output pipeline, one page at a
// time.
type Scraper struct {
	listingURL string
	session    browser.Session
	paginator  *Paginator
	fetcher    Fetcher
	writer     storage.ProductWriter
	logger     *utils.Logger
}

// New creates a ready-to-use Scraper.
func New(cfg *config.Config, session browser.Session, fetcher Fetcher, writer storage.ProductWriter, logger *utils.Logger) *Scraper {
	return &Scraper{
		listingURL: cfg.ListingURL,
		session:    session,
		paginator:  NewPaginator(cfg.LoadMoreDelay, logger),
		fetcher:    fetcher,
		writer:     writer,
		logger:     logger,
	}
}

// Run scrapes the catalog and writes one product per detail link. It stops
// at the first failure; products written before it stay written. The number
// of written products is returned in both cases.
func (s *Scraper) Run(ctx context.Context) (int, error) {
	s.logger.Info("[scraper] Getting dynamically loaded content...")
	html, err := s.paginator.LoadAll(ctx, s.session, s.listingURL)
	if err != nil {
		return 0, err
	}

	doc, err := ParseDocument(html)
	if err != nil {
		return 0, err
	}

	s.logger.Info("[scraper] Getting items links...")
	s.logger.Info("[scraper] Total number: %d", ExtractTiles(doc, TileSelector).Length())
	links := ExtractDetailLinks(doc, s.listingURL)

	written := 0
	for i, link := range links {
		s.logger.Info("[scraper] %s", strings.Repeat("-", 50))
		s.logger.Info("[scraper] Parsing %d of %d", i+1, len(links))

		page, err := s.fetcher.Fetch(ctx, link)
		if err != nil {
			return written, err
		}

		product, err := ParseDetail(page, link)
		if err != nil {
			return written, err
		}

		if err := s.writer.Write(product); err != nil {
			return written, err
		}
		written++
	}

	return written, nil
}
