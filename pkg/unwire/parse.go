package unwire

import (
	"bytes"
	"errors"
	"strings"

	"golang.org/x/net/html"
)

// NewsItem is one entry on a daily archive page.
type NewsItem struct {
	Title   string
	URL     string
	Excerpt string
}

// Article is a fully fetched article page.
type Article struct {
	Title      string
	URL        string
	Published  string
	Paragraphs []string
}

// ParseNewsItems extracts the article list from a daily archive page. Each
// post on the page is an <article> element whose heading link carries the
// title and permalink.
func ParseNewsItems(body []byte) ([]NewsItem, error) {
	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	var items []NewsItem
	seen := make(map[string]struct{})

	for _, articleNode := range findAll(doc, isElement("article")) {
		link := find(articleNode, func(n *html.Node) bool {
			if n.Type != html.ElementNode || n.Data != "a" {
				return false
			}

			parent := n.Parent

			return parent != nil && (parent.Data == "h1" || parent.Data == "h2" || parent.Data == "h3")
		})
		if link == nil {
			continue
		}

		item := NewsItem{
			Title: strings.TrimSpace(textContent(link)),
			URL:   attr(link, "href"),
		}
		if item.Title == "" {
			continue
		}
		if _, ok := seen[item.URL]; ok && item.URL != "" {
			continue
		}

		seen[item.URL] = struct{}{}

		if excerpt := find(articleNode, isElement("p")); excerpt != nil {
			item.Excerpt = strings.TrimSpace(textContent(excerpt))
		}

		items = append(items, item)
	}

	return items, nil
}

// ParseArticle extracts title, publish time, and body text from an article
// page. Body text lives under the entry-content container as paragraphs,
// sub-headings, list items, and quotes.
func ParseArticle(body []byte, url string) (*Article, error) {
	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	article := &Article{URL: url}

	if title := find(doc, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == "h1"
	}); title != nil {
		article.Title = strings.TrimSpace(textContent(title))
	}
	if article.Title == "" {
		if title := find(doc, isElement("title")); title != nil {
			article.Title = strings.TrimSpace(textContent(title))
		}
	}
	if article.Title == "" {
		return nil, errors.New("unwire: article title not found")
	}

	if published := find(doc, isElement("time")); published != nil {
		article.Published = attr(published, "datetime")
		if article.Published == "" {
			article.Published = strings.TrimSpace(textContent(published))
		}
	}

	content := find(doc, func(n *html.Node) bool {
		return n.Type == html.ElementNode && hasClass(n, "entry-content")
	})
	if content == nil {
		content = find(doc, isElement("article"))
	}
	if content == nil {
		return article, nil
	}

	for _, node := range findAll(content, func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return false
		}

		switch n.Data {
		case "p", "h2", "h3", "li", "blockquote":
			return true
		}

		return false
	}) {
		text := strings.TrimSpace(textContent(node))
		if text == "" {
			continue
		}

		article.Paragraphs = append(article.Paragraphs, text)
	}

	return article, nil
}

func isElement(name string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == name
	}
}

func find(root *html.Node, match func(*html.Node) bool) *html.Node {
	if match(root) {
		return root
	}

	for child := root.FirstChild; child != nil; child = child.NextSibling {
		if found := find(child, match); found != nil {
			return found
		}
	}

	return nil
}

func findAll(root *html.Node, match func(*html.Node) bool) []*html.Node {
	var matched []*html.Node

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if match(n) {
			matched = append(matched, n)
			// Matched subtrees are not descended into, so nested matches
			// (list items inside block quotes) are not collected twice.
			return
		}

		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}

	walk(root)

	return matched
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}

	return ""
}

func hasClass(n *html.Node, class string) bool {
	for _, field := range strings.Fields(attr(n, "class")) {
		if field == class {
			return true
		}
	}

	return false
}

func textContent(n *html.Node) string {
	var sb strings.Builder

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}

		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}

	walk(n)

	return sb.String()
}
