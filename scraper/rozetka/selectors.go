package rozetka

// CSS selectors for the rozetka.com.ua catalog and product pages.
const (
	PaginatorItemSelector = `ul[name=paginator] li`
	LoadMoreSelector      = `div.g-i-tile.g-i-tile-catalog.preloader-trigger`
	TileSelector          = `.g-i-tile.g-i-tile-catalog`
	TileTitleLinkSelector = `.g-i-tile-i-title a`

	TitleSelector              = `.detail-title-code h1.detail-title`
	ImageSelector              = `#basic_image img`
	PriceSelector              = `#price_label`
	KitPriceSelector           = `.g-kit-i-1 .g-price`
	CharacteristicsRowSelector = `table.chars-t tr`
	CharacteristicsTabSelector = `li.m-tabs-i[name="characteristics"]`
)

// kitPriceSuffixLen is the length of the currency suffix ("грн.") the kit
// price carries.
const kitPriceSuffixLen = 4
