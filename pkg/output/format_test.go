package output

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/leftover-labs/freedom-rate/internal/scenario"
	"github.com/leftover-labs/freedom-rate/pkg/costs"
)

func testComparison() scenario.Comparison {
	relocation := scenario.Result{
		Name:                      "relocation",
		Breakdown:                 costs.Breakdown{Net: 2200, Housing: 850, Leftover: 394},
		FreedomPerHour:            1.83,
		Tier:                      "constrained",
		CommuteHoursSavedPerMonth: 11,
	}
	return scenario.Comparison{
		CurrencySymbol: "£",
		Current: scenario.Result{
			Name:           "current",
			Breakdown:      costs.Breakdown{Net: 2200, Housing: 1200, Commute: 180, Leftover: 44},
			HoursPerMonth:  215,
			FreedomPerHour: 0.20,
			Tier:           "breakeven",
			MaintenancePct: 20.5,
			Efficiency:     24,
		},
		Baseline: scenario.Result{
			Name:           "baseline",
			Breakdown:      costs.Breakdown{Net: 2200, Housing: 1200, Commute: 180, Leftover: 74},
			HoursPerMonth:  215,
			FreedomPerHour: 0.34,
			Tier:           "breakeven",
		},
		Relocation: &relocation,
		WhatIf: scenario.Result{
			Name:           "what-if",
			Breakdown:      costs.Breakdown{Net: 2200, Leftover: 320},
			FreedomPerHour: 1.49,
			Tier:           "constrained",
		},
		Deltas: map[string]scenario.Delta{
			"currentVsBaseline":   {Leftover: -30, FreedomPerHour: -0.14},
			"whatIfVsBaseline":    {Leftover: 246, FreedomPerHour: 1.15},
			"relocationVsCurrent": {Leftover: 350, FreedomPerHour: 1.63},
		},
		PercentileRank: 23,
	}
}

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

func TestPrettyFormat(t *testing.T) {
	output := captureStdout(t, func() {
		PrettyFormat(testComparison())
	})

	for _, want := range []string{
		"--- Scenario: current ---",
		"--- Scenario: baseline ---",
		"--- Scenario: relocation ---",
		"--- Scenario: what-if ---",
		"£1,200.00",
		"£44.00",
		"0.20/hr (breakeven)",
		"Commute saved",
		"--- Deltas ---",
		"currentVsBaseline",
		"-£30.00",
		"-0.14/hr",
		"+1.15/hr",
		"p23",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("PrettyFormat missing %q in output:\n%s", want, output)
		}
	}
}

func TestPrettyFormatSkipsMissingRelocation(t *testing.T) {
	comparison := testComparison()
	comparison.Relocation = nil

	output := captureStdout(t, func() {
		PrettyFormat(comparison)
	})

	if strings.Contains(output, "--- Scenario: relocation ---") {
		t.Errorf("PrettyFormat rendered a relocation block without a relocation result")
	}
}

func TestPrettyFormatOmitsZeroCommuteSavings(t *testing.T) {
	comparison := testComparison()
	comparison.Relocation.CommuteHoursSavedPerMonth = 0

	output := captureStdout(t, func() {
		PrettyFormat(comparison)
	})

	if strings.Contains(output, "Commute saved") {
		t.Errorf("PrettyFormat rendered a commute-saved row for zero savings")
	}
}

func TestCsvFormat(t *testing.T) {
	output := captureStdout(t, func() {
		CsvFormat(testComparison())
	})

	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) < 2 {
		t.Fatalf("CsvFormat produced %d lines", len(lines))
	}

	header := lines[0]
	if header != `"metric","current","baseline","relocation","what-if"` {
		t.Errorf("CsvFormat header = %s", header)
	}

	columns := strings.Count(header, ",")
	for i, line := range lines {
		if strings.Count(line, ",") != columns {
			t.Errorf("CsvFormat line %d has mismatched columns: %s", i, line)
		}
	}

	if !strings.Contains(output, `"Leftover","44.00"`) {
		t.Errorf("CsvFormat missing the leftover row:\n%s", output)
	}
	if !strings.Contains(output, `"tier","breakeven"`) {
		t.Errorf("CsvFormat missing the tier row:\n%s", output)
	}
}

func TestTierSummary(t *testing.T) {
	tests := []struct {
		name   string
		result scenario.Result
		want   string
	}{
		{
			name:   "Positive rate",
			result: scenario.Result{Tier: "breakeven", FreedomPerHour: 0.20},
			want:   "breakeven: 0.20 of freedom per hour worked",
		},
		{
			name:   "Negative rate",
			result: scenario.Result{Tier: "unsustainable", FreedomPerHour: -0.47},
			want:   "unsustainable: losing 0.47 per hour worked",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TierSummary(tt.result); got != tt.want {
				t.Errorf("TierSummary() = %q, want %q", got, tt.want)
			}
		})
	}
}
