// Package unwire scrapes the unwire.hk news site: the day's article list,
// recent-day digests, and single article bodies.
package unwire

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultBaseURL = "https://unwire.hk"

// ErrInvalidDate marks a date argument that is not a real calendar date in a
// supported format.
var ErrInvalidDate = errors.New("unwire: invalid date")

const userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"

// The site occasionally redirect-loops on malformed archive paths.
var errTooManyRedirects = errors.New("unwire: too many redirects")

type Fetcher struct {
	baseURL    string
	httpClient *http.Client
	now        func() time.Time
}

type Option func(*Fetcher)

func WithBaseURL(baseURL string) Option {
	return func(f *Fetcher) {
		f.baseURL = strings.TrimRight(baseURL, "/")
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(f *Fetcher) {
		f.httpClient = client
	}
}

func WithNowFunc(now func() time.Time) Option {
	return func(f *Fetcher) {
		f.now = now
	}
}

func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return errTooManyRedirects
				}

				return nil
			},
		},
		now: time.Now,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// NormalizeDate validates a user-supplied date argument and converts it to
// the YYYY/MM/DD form the site uses in archive URLs. Both YYYY-MM-DD and
// YYYY/MM/DD are accepted.
func NormalizeDate(date string) (string, error) {
	layout := "2006/01/02"
	if strings.Contains(date, "-") {
		layout = "2006-01-02"
	}

	parsed, err := time.Parse(layout, date)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidDate, date)
	}

	return parsed.Format("2006/01/02"), nil
}

// News fetches and formats the article list for one day. An empty date means
// today.
func (f *Fetcher) News(ctx context.Context, date string) (string, error) {
	var datePath, dateLabel string

	if date == "" {
		today := f.now()
		datePath = today.Format("2006/01/02")
		dateLabel = ""
	} else {
		normalized, err := NormalizeDate(date)
		if err != nil {
			return "", err
		}

		datePath = normalized
		dateLabel = normalized
	}

	body, err := f.get(ctx, fmt.Sprintf("%s/%s/", f.baseURL, datePath))
	if err != nil {
		return "", fmt.Errorf("unwire: failed to fetch news for %s: %w", datePath, err)
	}

	items, err := ParseNewsItems(body)
	if err != nil {
		return "", err
	}

	return f.formatNewsList(items, dateLabel), nil
}

// Recent fetches up to maxArticles across the given number of past days,
// today included, and formats them grouped by date.
func (f *Fetcher) Recent(ctx context.Context, days int) (string, error) {
	const maxArticles = 50

	type datedItems struct {
		date  string
		items []NewsItem
	}

	collected := make([]datedItems, 0, days)
	total := 0

	for i := 0; i < days && total < maxArticles; i++ {
		day := f.now().AddDate(0, 0, -i)

		body, err := f.get(ctx, fmt.Sprintf("%s/%s/", f.baseURL, day.Format("2006/01/02")))
		if err != nil {
			// Days with no archive page are skipped, not fatal.
			continue
		}

		items, err := ParseNewsItems(body)
		if err != nil || len(items) == 0 {
			continue
		}

		collected = append(collected, datedItems{date: day.Format("2006-01-02"), items: items})
		total += len(items)
	}

	if total == 0 {
		return fmt.Sprintf("No news found in the past %d days.", days), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "📰 Unwire.hk Recent News (Past %d days) 📰\n\n", days)

	for _, group := range collected {
		fmt.Fprintf(&sb, "【%s】- %d articles\n", group.date, len(group.items))

		for i, item := range group.items {
			if item.URL != "" {
				fmt.Fprintf(&sb, "%d. <a href=\"%s\">%s</a>\n", i+1, item.URL, item.Title)
			} else {
				fmt.Fprintf(&sb, "%d. %s\n", i+1, item.Title)
			}
		}

		sb.WriteString("\n")
	}

	return sb.String(), nil
}

// Article fetches one article page and formats its full text.
func (f *Fetcher) Article(ctx context.Context, articleURL string) (string, error) {
	if !strings.HasPrefix(articleURL, "http://") && !strings.HasPrefix(articleURL, "https://") {
		articleURL = f.baseURL + "/" + strings.TrimPrefix(articleURL, "/")
	}

	body, err := f.get(ctx, articleURL)
	if err != nil {
		return "", fmt.Errorf("unwire: failed to fetch article: %w", err)
	}

	article, err := ParseArticle(body, articleURL)
	if err != nil {
		return "", err
	}

	return formatArticle(article), nil
}

func (f *Fetcher) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", userAgent)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return io.ReadAll(io.LimitReader(resp.Body, 2*1024*1024))
}

func (f *Fetcher) formatNewsList(items []NewsItem, dateLabel string) string {
	today := f.now().Format("2006-01-02")

	if len(items) == 0 {
		if dateLabel != "" {
			return fmt.Sprintf("No news found for %s.", dateLabel)
		}

		return fmt.Sprintf("No news found for today (%s). Unwire.hk may not have published any articles today.", today)
	}

	var sb strings.Builder
	if dateLabel != "" {
		fmt.Fprintf(&sb, "📰 News for %s\n\n", dateLabel)
	} else {
		fmt.Fprintf(&sb, "📰 News for today (%s)\n\n", today)
	}

	for i, item := range items {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, item.Title)

		if item.URL != "" {
			sb.WriteString(item.URL)
			sb.WriteString("\n")
		}
		if item.Excerpt != "" {
			excerpt := []rune(item.Excerpt)
			if len(excerpt) > 150 {
				excerpt = excerpt[:150]
			}

			fmt.Fprintf(&sb, "   %s...\n", string(excerpt))
		}

		sb.WriteString("\n")
	}

	return sb.String()
}
