package report

import (
	"strings"
	"testing"

	"proforma/pkg/core/pipeline"
)

func buildModel(t *testing.T, years int) *pipeline.FinancialModel {
	t.Helper()
	m, err := pipeline.Build(years)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return m
}

func TestRenderText_StatementOrder(t *testing.T) {
	out := RenderText(buildModel(t, 5))

	order := []string{"Income Statement", "Balance Sheet", "Cash Flow Statement", "Key Ratios"}
	last := -1
	for _, title := range order {
		idx := strings.Index(out, title+":")
		if idx < 0 {
			t.Fatalf("missing table %q", title)
		}
		if idx < last {
			t.Errorf("table %q out of order", title)
		}
		last = idx
	}

	if !strings.Contains(out, "Year 5") {
		t.Error("expected a Year 5 column")
	}
	if strings.Contains(out, "Year 6") {
		t.Error("unexpected Year 6 column")
	}
	if !strings.Contains(out, "Ending Cash") {
		t.Error("expected an Ending Cash row")
	}
}

func TestRenderMarkdown(t *testing.T) {
	out, err := RenderMarkdown(buildModel(t, 3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out, "## Income Statement") {
		t.Error("missing income statement heading")
	}
	if !strings.Contains(out, "| Revenue |") {
		t.Error("missing revenue row")
	}
	if !strings.Contains(out, "| Net Profit Margin |") {
		t.Error("missing ratio row")
	}
	// One value column per forecast year
	if !strings.Contains(out, " Year 3 |") || strings.Contains(out, " Year 4 |") {
		t.Error("year columns do not match the horizon")
	}
}
