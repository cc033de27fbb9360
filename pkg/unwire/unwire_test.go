package unwire

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDate(t *testing.T) {
	t.Run("Dashed", func(t *testing.T) {
		normalized, err := NormalizeDate("2024-01-15")
		require.NoError(t, err)
		assert.Equal(t, "2024/01/15", normalized)
	})

	t.Run("Slashed", func(t *testing.T) {
		normalized, err := NormalizeDate("2024/01/15")
		require.NoError(t, err)
		assert.Equal(t, "2024/01/15", normalized)
	})

	t.Run("NotACalendarDate", func(t *testing.T) {
		_, err := NormalizeDate("2024-13-45")
		require.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := NormalizeDate("tomorrow")
		require.ErrorIs(t, err, ErrInvalidDate)
	})
}

func newArchiveServer(t *testing.T, pages map[string]string, requestCount *atomic.Int64) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if requestCount != nil {
			requestCount.Add(1)
		}

		page, ok := pages[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		fmt.Fprint(w, page)
	}))
	t.Cleanup(server.Close)

	return server
}

func TestFetcherNews(t *testing.T) {
	server := newArchiveServer(t, map[string]string{
		"/2024/01/15/": archivePageHTML,
	}, nil)

	fetcher := NewFetcher(WithBaseURL(server.URL))

	t.Run("ForDate", func(t *testing.T) {
		text, err := fetcher.News(context.Background(), "2024-01-15")
		require.NoError(t, err)

		assert.Contains(t, text, "News for 2024/01/15")
		assert.Contains(t, text, "1. 第一篇：新 iPhone 上手測試")
		assert.Contains(t, text, "2. 第二篇報導")
	})

	t.Run("InvalidDateDoesNotFetch", func(t *testing.T) {
		var requests atomic.Int64

		counted := NewFetcher(WithBaseURL(newArchiveServer(t, nil, &requests).URL))

		_, err := counted.News(context.Background(), "2024-13-45")
		require.ErrorIs(t, err, ErrInvalidDate)
		assert.Equal(t, int64(0), requests.Load())
	})

	t.Run("EmptyDay", func(t *testing.T) {
		empty := newArchiveServer(t, map[string]string{
			"/2024/01/16/": "<html><body></body></html>",
		}, nil)

		text, err := NewFetcher(WithBaseURL(empty.URL)).News(context.Background(), "2024-01-16")
		require.NoError(t, err)
		assert.Contains(t, text, "No news found for 2024/01/16")
	})
}

func TestFetcherRecent(t *testing.T) {
	now := time.Date(2024, 1, 16, 12, 0, 0, 0, time.UTC)

	server := newArchiveServer(t, map[string]string{
		"/2024/01/16/": "<html><body></body></html>",
		"/2024/01/15/": archivePageHTML,
	}, nil)

	fetcher := NewFetcher(WithBaseURL(server.URL), WithNowFunc(func() time.Time { return now }))

	text, err := fetcher.Recent(context.Background(), 2)
	require.NoError(t, err)

	assert.Contains(t, text, "Past 2 days")
	assert.Contains(t, text, "【2024-01-15】- 2 articles")
	assert.Contains(t, text, `<a href="https://unwire.hk/2024/01/15/first/">`)
}

func TestFetcherRecentNothingFound(t *testing.T) {
	now := time.Date(2024, 1, 16, 12, 0, 0, 0, time.UTC)

	fetcher := NewFetcher(
		WithBaseURL(newArchiveServer(t, nil, nil).URL),
		WithNowFunc(func() time.Time { return now }),
	)

	text, err := fetcher.Recent(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "No news found in the past 3 days.", text)
}

func TestFetcherArticle(t *testing.T) {
	server := newArchiveServer(t, map[string]string{
		"/2024/01/15/first/": articlePageHTML,
	}, nil)

	fetcher := NewFetcher(WithBaseURL(server.URL))

	text, err := fetcher.Article(context.Background(), server.URL+"/2024/01/15/first/")
	require.NoError(t, err)

	assert.Contains(t, text, "📄 新 iPhone 上手測試")
	assert.Contains(t, text, "🕐 2024-01-15T10:30:00+08:00")
	assert.Contains(t, text, "第一段內容。")
	assert.Contains(t, text, "🔗 "+server.URL+"/2024/01/15/first/")
}
