package report

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"
	"testing"

	"financial_planner/pkg/core/assumption"
	"financial_planner/pkg/core/projection"

	"github.com/PuerkitoBio/goquery"
)

func fullResult(t *testing.T) (assumption.AssumptionSet, *projection.Result) {
	t.Helper()
	a := assumption.Default()
	res, err := projection.NewEngine(projection.Options{}).Calculate(a)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	return a, res
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{123456, "123,456"},
		{-100, "-100"},
		{-1234567, "-1,234,567"},
		{30000000, "30,000,000"},
	}
	for _, tt := range tests {
		if got := FormatAmount(tt.in); got != tt.want {
			t.Errorf("FormatAmount(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatMarkdown, false},
		{"md", FormatMarkdown, false},
		{"HTML", FormatHTML, false},
		{" csv ", FormatCSV, false},
		{"xlsx", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderMarkdown(t *testing.T) {
	a, res := fullResult(t)
	md := RenderMarkdown(a, res)

	for _, want := range []string{
		"# " + assumption.DefaultName + ": Financial Projection",
		"## Summary",
		"## Revenue",
		"## Operating Costs",
		"## Profit & Loss",
		"## Cash Flow",
		"## Key Metrics",
		"## Unit Economics",
		"## Scenarios",
		"## Year 1 by Month",
		"| **Total** | " + FormatAmount(res.Revenue.Annual.Total[0]) + " |",
		"- Total funding: 30,000,000",
		"| conservative |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestRenderMarkdown_PartialResult(t *testing.T) {
	a := assumption.Default()
	res, err := projection.NewEngine(projection.Options{}).CalculateRevenue(a)
	if err != nil {
		t.Fatal(err)
	}
	md := RenderMarkdown(a, res)

	if !strings.Contains(md, "## Revenue") {
		t.Error("revenue section missing")
	}
	for _, absent := range []string{"## Profit & Loss", "## Cash Flow", "## Scenarios", "Break-even"} {
		if strings.Contains(md, absent) {
			t.Errorf("unexpected %q in a revenue-only report", absent)
		}
	}
}

func TestRenderHTML(t *testing.T) {
	a, res := fullResult(t)
	a.Name = "R&D plan"

	out, err := RenderHTML(a, res)
	if err != nil {
		t.Fatalf("RenderHTML: %v", err)
	}
	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>R&amp;D plan</title>",
		`<table class="report-table">`,
		`class="num"`,
		`class="num neg"`,
		"<h2>Revenue</h2>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("html missing %q", want)
		}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(out))
	if err != nil {
		t.Fatalf("parse rendered html: %v", err)
	}
	if doc.Find("td.num.neg").Length() == 0 {
		t.Error("negative amounts should carry the num and neg classes")
	}
	doc.Find("td.num.neg").Each(func(_ int, cell *goquery.Selection) {
		if !strings.HasPrefix(strings.TrimSpace(cell.Text()), "-") {
			t.Errorf("non-negative cell %q marked neg", cell.Text())
		}
	})
	if doc.Find("td.num").Length() <= doc.Find("td.num.neg").Length() {
		t.Error("expected positive numeric cells as well")
	}
}

func TestWriteCSV(t *testing.T) {
	_, res := fullResult(t)

	var buf bytes.Buffer
	if err := WriteCSV(&buf, res); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	r := csv.NewReader(&buf)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		t.Fatalf("reading csv back: %v", err)
	}

	if got := strings.Join(rows[0], ","); got != "section,line,Y1,Y2,Y3,Y4,Y5" {
		t.Errorf("unexpected header %q", got)
	}

	var total, monthlyHeader []string
	for _, row := range rows {
		if total == nil && len(row) == 7 && row[0] == "revenue" && row[1] == "total" {
			total = row
		}
		if len(row) == 14 && row[0] == "section" {
			monthlyHeader = row
		}
	}
	if total == nil {
		t.Fatal("annual revenue total row missing")
	}
	for i, v := range res.Revenue.Annual.Total {
		if total[i+2] != strconv.FormatInt(v, 10) {
			t.Errorf("Y%d total = %s, want %d", i+1, total[i+2], v)
		}
	}
	if monthlyHeader == nil || monthlyHeader[13] != "M12" {
		t.Error("monthly block missing")
	}
}

func TestWrite_Dispatch(t *testing.T) {
	a, res := fullResult(t)
	for _, f := range []Format{FormatMarkdown, FormatHTML, FormatCSV} {
		var buf bytes.Buffer
		if err := Write(&buf, f, a, res); err != nil {
			t.Errorf("%s: %v", f, err)
		}
		if buf.Len() == 0 {
			t.Errorf("%s: empty output", f)
		}
	}
	if err := Write(&bytes.Buffer{}, FormatMarkdown, a, nil); err == nil {
		t.Error("expected error for nil result")
	}
}
