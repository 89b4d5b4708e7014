package browser

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rozetka-scraper/utils"
)

const loadMorePage = `<!DOCTYPE html>
<html><body>
<div id="tiles"><div class="tile">Apple iPhone 15</div></div>
<div class="load-more" onclick="
  var t = document.createElement('div');
  t.className = 'tile';
  t.textContent = 'Samsung Galaxy S24';
  document.getElementById('tiles').appendChild(t);
">Show more</div>
</body></html>`

func newTestChrome(t *testing.T) *Chrome {
	t.Helper()
	bin := findChromeBinary()
	if bin == "" {
		t.Skip("chrome not installed")
	}

	opts := DefaultOptions()
	opts.ExecPath = bin
	opts.NavTimeout = 30 * time.Second

	c, err := NewChrome(opts, utils.NewLoggerTo(io.Discard, "info"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestChromeSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(loadMorePage))
	}))
	defer srv.Close()

	c := newTestChrome(t)
	ctx := context.Background()

	html, err := c.Navigate(ctx, srv.URL+"/mobile-phones/")
	require.NoError(t, err)
	assert.Contains(t, html, "Apple iPhone 15")
	assert.NotContains(t, html, "Samsung Galaxy S24")

	res, err := c.Click(ctx, "div.load-more")
	require.NoError(t, err)
	assert.Equal(t, Clicked, res)

	html, err = c.HTML(ctx)
	require.NoError(t, err)
	assert.Contains(t, html, "Samsung Galaxy S24")

	start := time.Now()
	res, err = c.Click(ctx, "div.preloader-trigger")
	require.NoError(t, err)
	assert.Equal(t, NotFound, res)
	assert.Less(t, time.Since(start), 10*time.Second)
}

func TestChromeNavigateCancelled(t *testing.T) {
	c := newTestChrome(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Navigate(ctx, "http://127.0.0.1:1/")
	assert.Error(t, err)
}
