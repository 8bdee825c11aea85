package practicum

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const maxSummaryLength = 200

var replacedString = regexp.MustCompile(`\s+`)

// summarizeBody шлюзы перед API на ошибках отдают html-страницы,
// из них в текст ошибки достаточно заголовка
func summarizeBody(contentType string, body []byte) string {
	text := strings.TrimSpace(string(body))
	if text == "" {
		return "returned an empty body"
	}

	if strings.Contains(contentType, "text/html") || strings.HasPrefix(strings.ToLower(text), "<") {
		document, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
		if err == nil {
			title := strings.TrimSpace(document.Find("title").First().Text())
			if title == "" {
				title = strings.TrimSpace(document.Find("h1").First().Text())
			}
			if title != "" {
				text = title
			}
		}
	}

	text = replacedString.ReplaceAllString(text, " ")
	if len([]rune(text)) > maxSummaryLength {
		text = string([]rune(text)[:maxSummaryLength]) + "..."
	}

	return "returned: " + text
}
