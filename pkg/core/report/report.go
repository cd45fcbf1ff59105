// Package report renders a projection as a shareable document: a markdown
// report, the same report as HTML, or a flat CSV dump of every line.
package report

import (
	"fmt"
	"io"
	"strings"

	"financial_planner/pkg/core/assumption"
	"financial_planner/pkg/core/projection"
)

// Format is an export format.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatCSV      Format = "csv"
)

// ParseFormat accepts "markdown"/"md", "html" and "csv". Empty means markdown.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "markdown", "md":
		return FormatMarkdown, nil
	case "html":
		return FormatHTML, nil
	case "csv":
		return FormatCSV, nil
	}
	return "", fmt.Errorf("unsupported report format %q", s)
}

// ContentType returns the HTTP content type for f.
func (f Format) ContentType() string {
	switch f {
	case FormatHTML:
		return "text/html; charset=utf-8"
	case FormatCSV:
		return "text/csv; charset=utf-8"
	}
	return "text/markdown; charset=utf-8"
}

// Write renders res in format f to w.
func Write(w io.Writer, f Format, a assumption.AssumptionSet, res *projection.Result) error {
	if res == nil {
		return fmt.Errorf("no projection to render")
	}
	switch f {
	case FormatMarkdown:
		_, err := io.WriteString(w, RenderMarkdown(a, res))
		return err
	case FormatHTML:
		out, err := RenderHTML(a, res)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	case FormatCSV:
		return WriteCSV(w, res)
	}
	return fmt.Errorf("unsupported report format %q", f)
}

// FormatAmount prints n with thousands separators.
func FormatAmount(n int64) string {
	neg := n < 0
	u := uint64(n)
	if neg {
		u = uint64(-n)
	}
	digits := fmt.Sprintf("%d", u)

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 && !(neg && b.Len() == 1) {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

func yearHeader(first string) []string {
	h := []string{first}
	for y := 1; y <= assumption.HorizonYears; y++ {
		h = append(h, fmt.Sprintf("Y%d", y))
	}
	return h
}

func monthHeader(first string) []string {
	h := []string{first}
	for m := 1; m <= assumption.MonthsPerYear; m++ {
		h = append(h, fmt.Sprintf("M%d", m))
	}
	return h
}

func amountRow[S projection.Series](label string, s S) []string {
	row := []string{label}
	for _, v := range s.Values() {
		row = append(row, FormatAmount(v))
	}
	return row
}

func ratioRow(label string, vals []float64, suffix string) []string {
	row := []string{label}
	for _, v := range vals {
		row = append(row, fmt.Sprintf("%.1f%s", v, suffix))
	}
	return row
}
