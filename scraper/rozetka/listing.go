package rozetka

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ErrBadPageMarker is returned when the paginator's last item id is not of
// the form "page<N>".
var ErrBadPageMarker = errors.New("rozetka: bad paginator marker")

// ParseDocument parses rendered HTML for selector queries.
func ParseDocument(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("rozetka: parse html: %w", err)
	}
	return doc, nil
}

// PageCount reads the number of listing pages from the paginator. A listing
// without a paginator has 0 pages.
func PageCount(doc *goquery.Document) (int, error) {
	items := doc.Find(PaginatorItemSelector)
	if items.Length() == 0 {
		return 0, nil
	}

	id := items.Last().AttrOr("id", "")
	n, err := strconv.Atoi(strings.ReplaceAll(id, "page", ""))
	if err != nil {
		return 0, fmt.Errorf("%w: id %q", ErrBadPageMarker, id)
	}
	return n, nil
}

// ExtractTiles returns every product tile matching selector.
func ExtractTiles(doc *goquery.Document, selector string) *goquery.Selection {
	return doc.Find(selector)
}

// ExtractDetailLinks returns the detail-page link of every tile that has a
// title link with a non-empty href, in page order. Relative links are resolved against base.
func ExtractDetailLinks(doc *goquery.Document, base string) []string {
	var links []string
	ExtractTiles(doc, TileSelector).Each(func(_ int, tile *goquery.Selection) {
		title := tile.Find(TileTitleLinkSelector).First()
		href, ok := title.Attr("href")
		if !ok || strings.TrimSpace(href) == "" {
			return
		}
		links = append(links, resolveURL(base, href))
	})
	return links
}

// resolveURL makes href absolute against base. href is returned unchanged
// when either does not parse.
func resolveURL(base, href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	baseURL, err := url.Parse(base)
	if err != nil || base == "" {
		return href
	}
	return baseURL.ResolveReference(u).String()
}
