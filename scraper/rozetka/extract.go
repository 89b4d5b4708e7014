package rozetka

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"rozetka-scraper/models"
)

// ExtractField returns the named attribute of the first element matching
// selector, or its trimmed text when attr is empty. It returns "" when
// nothing matches.
func ExtractField(doc *goquery.Document, selector, attr string) string {
	sel := doc.Find(selector).First()
	if sel.Length() == 0 {
		return ""
	}
	if attr != "" {
		return sel.AttrOr(attr, "")
	}
	return strings.TrimSpace(sel.Text())
}

// ExtractPrice reads the price with spaces removed. When the main price
// label is empty (it is filled in by scripts on some pages) the kit price is
// used instead, minus its currency suffix.
func ExtractPrice(doc *goquery.Document, selector string) string {
	price := strings.ReplaceAll(ExtractField(doc, selector, ""), " ", "")
	if price != "" {
		return price
	}

	kit := []rune(strings.ReplaceAll(ExtractField(doc, KitPriceSelector, ""), " ", ""))
	if len(kit) <= kitPriceSuffixLen {
		return ""
	}
	return string(kit[:len(kit)-kitPriceSuffixLen])
}

// ExtractCharacteristics reads the label/value rows of the characteristics
// table. Rows holding an "empty" cell or not made of exactly two cells are
// skipped.
func ExtractCharacteristics(doc *goquery.Document) *models.Characteristics {
	chars := models.NewCharacteristics()

	doc.Find(CharacteristicsRowSelector).Each(func(_ int, tr *goquery.Selection) {
		if tr.Find(`td[class$="empty"]`).Length() > 0 {
			return
		}
		cells := tr.Find("td")
		if cells.Length() != 2 {
			return
		}

		label := cellText(cells.Eq(0), ".chars-title")
		value := cellText(cells.Eq(1), ".chars-value")
		chars.Set(label, value)
	})

	return chars
}

// cellText returns the trimmed text of the cell's inner element (or the cell
// itself), preferring a nested glossary term.
func cellText(cell *goquery.Selection, inner string) string {
	node := cell
	if in := cell.Find(inner).First(); in.Length() > 0 {
		node = in
	}
	if term := node.Find(".glossary-term").First(); term.Length() > 0 {
		return strings.TrimSpace(term.Text())
	}
	return strings.TrimSpace(node.Text())
}

// ParseDetail builds a product record from a detail page.
func ParseDetail(html, url string) (*models.Product, error) {
	doc, err := ParseDocument(html)
	if err != nil {
		return nil, err
	}

	return &models.Product{
		URL:             url,
		Title:           ExtractField(doc, TitleSelector, ""),
		ImageSrc:        ExtractField(doc, ImageSelector, "src"),
		Price:           ExtractPrice(doc, PriceSelector),
		Characteristics: ExtractCharacteristics(doc),
	}, nil
}
