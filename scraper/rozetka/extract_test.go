package rozetka

import (
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const detailHTML = `<html><body>
<div class="detail-title-code"><h1 class="detail-title">  Apple iPhone 15 128GB Black  </h1></div>
<div id="basic_image"><img src="https://content.rozetka.com.ua/iphone15.jpg" alt=""></div>
<div id="price_label"> 37 999 </div>
<table class="chars-t">
  <tr>
    <td class="chars-t-cell"><div class="chars-title"><span class="glossary-term">Екран</span> ?</div></td>
    <td class="chars-t-cell"><div class="chars-value">6.1" OLED</div></td>
  </tr>
  <tr><td class="chars-t-cell-empty"></td><td class="chars-t-cell">ignored</td></tr>
  <tr>
    <td class="chars-t-cell"><div class="chars-title"> Колір </div></td>
    <td class="chars-t-cell"><div class="chars-value"><a class="glossary-term"> Black </a></div></td>
  </tr>
</table>
</body></html>`

func mustDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := ParseDocument(html)
	require.NoError(t, err)
	return doc
}

func TestExtractField(t *testing.T) {
	doc := mustDoc(t, detailHTML)

	assert.Equal(t, "Apple iPhone 15 128GB Black", ExtractField(doc, TitleSelector, ""))
	assert.Equal(t, "https://content.rozetka.com.ua/iphone15.jpg", ExtractField(doc, ImageSelector, "src"))
	assert.Equal(t, "", ExtractField(doc, ImageSelector, "data-zoom"))
	assert.Equal(t, "", ExtractField(doc, ".no-such-thing", ""))
	assert.Equal(t, "", ExtractField(doc, ".no-such-thing", "src"))
}

func TestExtractFieldFirstMatch(t *testing.T) {
	doc := mustDoc(t, `<p class="x"> one </p><p class="x">two</p>`)
	assert.Equal(t, "one", ExtractField(doc, "p.x", ""))
}

func TestExtractPrice(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "primary label",
			html: `<div id="price_label"> 1 234 </div>`,
			want: "1234",
		},
		{
			name: "kit fallback drops currency suffix",
			html: `<div id="price_label"></div><div class="g-kit-i-1"><span class="g-price">1 234грн.</span></div>`,
			want: "1234",
		},
		{
			name: "kit fallback when label missing",
			html: `<div class="g-kit-i-1"><div class="g-price"> 25 999 грн.</div></div>`,
			want: "25999",
		},
		{
			name: "kit price shorter than suffix",
			html: `<div class="g-kit-i-1"><div class="g-price">грн</div></div>`,
			want: "",
		},
		{
			name: "no price at all",
			html: `<div></div>`,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractPrice(mustDoc(t, tt.html), PriceSelector))
		})
	}
}

func TestExtractCharacteristics(t *testing.T) {
	html := `<table class="chars-t">
		<tr><td>Color</td><td>Red</td></tr>
		<tr><td class="chars-t-cell-empty"></td><td>Blue</td></tr>
		<tr><td>Weight</td><td>Size</td><td>extra</td></tr>
	</table>`

	chars := ExtractCharacteristics(mustDoc(t, html))
	assert.Equal(t, map[string]string{"Color": "Red"}, chars.Map())
}

func TestExtractCharacteristicsGlossaryAndOverwrite(t *testing.T) {
	chars := ExtractCharacteristics(mustDoc(t, detailHTML))
	assert.Equal(t, []string{"Екран", "Колір"}, chars.Labels())
	assert.Equal(t, map[string]string{"Екран": `6.1" OLED`, "Колір": "Black"}, chars.Map())

	dup := `<table class="chars-t">
		<tr><td>RAM</td><td>6 GB</td></tr>
		<tr><td>SIM</td><td>2</td></tr>
		<tr><td> RAM </td><td>8 GB</td></tr>
	</table>`
	chars = ExtractCharacteristics(mustDoc(t, dup))
	assert.Equal(t, []string{"RAM", "SIM"}, chars.Labels())
	v, _ := chars.Get("RAM")
	assert.Equal(t, "8 GB", v)
}

func TestParseDetail(t *testing.T) {
	p, err := ParseDetail(detailHTML, "https://rozetka.com.ua/apple_iphone_15/p1/")
	require.NoError(t, err)

	assert.Equal(t, "https://rozetka.com.ua/apple_iphone_15/p1/", p.URL)
	assert.Equal(t, "Apple iPhone 15 128GB Black", p.Title)
	assert.Equal(t, "https://content.rozetka.com.ua/iphone15.jpg", p.ImageSrc)
	assert.Equal(t, "37999", p.Price)
	assert.Equal(t, `{"Екран":"6.1\" OLED","Колір":"Black"}`, p.Characteristics.String())
}

func TestParseDetailIsRepeatable(t *testing.T) {
	first, err := ParseDetail(detailHTML, "u")
	require.NoError(t, err)
	second, err := ParseDetail(detailHTML, "u")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestParseDetailEmptyPage(t *testing.T) {
	p, err := ParseDetail("", "u")
	require.NoError(t, err)

	assert.Empty(t, p.Title)
	assert.Empty(t, p.Price)
	assert.Equal(t, 0, p.Characteristics.Len())
}
