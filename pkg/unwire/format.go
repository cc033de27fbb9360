package unwire

import (
	"fmt"
	"strings"
)

func formatArticle(article *Article) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "📄 %s\n", article.Title)

	if article.Published != "" {
		fmt.Fprintf(&sb, "🕐 %s\n", article.Published)
	}

	sb.WriteString("\n")

	for _, paragraph := range article.Paragraphs {
		sb.WriteString(paragraph)
		sb.WriteString("\n\n")
	}

	fmt.Fprintf(&sb, "🔗 %s", article.URL)

	return sb.String()
}
