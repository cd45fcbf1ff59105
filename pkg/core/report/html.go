package report

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"financial_planner/pkg/core/assumption"
	"financial_planner/pkg/core/projection"

	"github.com/PuerkitoBio/goquery"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

const reportStyle = `
body { font-family: -apple-system, "Segoe UI", sans-serif; margin: 2rem; color: #1f2933; }
table.report-table { border-collapse: collapse; margin-bottom: 1.5rem; }
table.report-table th, table.report-table td { border: 1px solid #d9e2ec; padding: 4px 8px; }
td.num { text-align: right; font-variant-numeric: tabular-nums; }
td.neg { color: #c62828; }
`

var markdown = goldmark.New(goldmark.WithExtensions(extension.Table))

// RenderHTML converts the markdown report to a standalone HTML page.
// Tables get a report-table class and numeric cells are tagged num (and
// neg when below zero) so the page can align and colour them.
func RenderHTML(a assumption.AssumptionSet, res *projection.Result) (string, error) {
	var body bytes.Buffer
	if err := markdown.Convert([]byte(RenderMarkdown(a, res)), &body); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(&body)
	if err != nil {
		return "", fmt.Errorf("failed to parse rendered report: %w", err)
	}

	doc.Find("head").AppendHtml(fmt.Sprintf(
		`<meta charset="utf-8"><title>%s</title><style>%s</style>`,
		html.EscapeString(a.Name), reportStyle))

	doc.Find("table").AddClass("report-table")
	doc.Find("td").Each(func(_ int, cell *goquery.Selection) {
		text := strings.TrimSpace(cell.Text())
		if !isNumeric(text) {
			return
		}
		class := "num"
		if strings.HasPrefix(text, "-") {
			class = "num neg"
		}
		cell.SetAttr("class", class)
	})

	out, err := doc.Html()
	if err != nil {
		return "", fmt.Errorf("failed to serialize report: %w", err)
	}
	return "<!DOCTYPE html>\n" + out, nil
}

// isNumeric matches the cell text produced by FormatAmount and ratioRow.
func isNumeric(s string) bool {
	s = strings.TrimPrefix(s, "-")
	s = strings.TrimRight(s, "%x")
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < '0' || r > '9') && r != ',' && r != '.' {
			return false
		}
	}
	return true
}
