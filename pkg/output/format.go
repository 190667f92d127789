// Package output provides utilities for formatting and displaying scenario
// comparisons.
package output

import (
	"fmt"
	"sort"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/leftover-labs/freedom-rate/internal/scenario"
	"github.com/leftover-labs/freedom-rate/pkg/format"
	"github.com/leftover-labs/freedom-rate/pkg/mathutil"
)

type row struct {
	label  string
	amount func(scenario.Result) float64
}

var breakdownRows = []row{
	{"Net income", func(r scenario.Result) float64 { return r.Net }},
	{"Housing", func(r scenario.Result) float64 { return r.Housing }},
	{"Commute", func(r scenario.Result) float64 { return r.Commute }},
	{"Dependents", func(r scenario.Result) float64 { return r.Dependents }},
	{"Healthcare", func(r scenario.Result) float64 { return r.Healthcare }},
	{"Debt service", func(r scenario.Result) float64 { return r.DebtService }},
	{"Savings", func(r scenario.Result) float64 { return r.Savings }},
	{"Maintenance", func(r scenario.Result) float64 { return r.Maintenance }},
	{"Total outgoings", func(r scenario.Result) float64 { return r.TotalOutgoings }},
	{"Leftover", func(r scenario.Result) float64 { return r.Leftover }},
}

func orderedResults(comparison scenario.Comparison) []scenario.Result {
	results := []scenario.Result{comparison.Current, comparison.Baseline}
	if comparison.Relocation != nil {
		results = append(results, *comparison.Relocation)
	}
	return append(results, comparison.WhatIf)
}

// PrettyFormat outputs a human-readable comparison table.
func PrettyFormat(comparison scenario.Comparison) {
	p := message.NewPrinter(language.English)
	symbol := comparison.CurrencySymbol

	for _, result := range orderedResults(comparison) {
		fmt.Printf("--- Scenario: %s ---\n", result.Name)
		for _, r := range breakdownRows {
			_, _ = p.Printf("%-16s | %s\n", r.label, format.Currency(symbol, r.amount(result)))
		}
		_, _ = p.Printf("%-16s | %.0f\n", "Job hours/month", result.HoursPerMonth)
		_, _ = p.Printf("%-16s | %s (%s)\n", "Freedom rate",
			fmt.Sprintf("%.2f/hr", result.FreedomPerHour), result.Tier)
		_, _ = p.Printf("%-16s | %.1f%% of net\n", "Maintenance", result.MaintenancePct)
		_, _ = p.Printf("%-16s | %d/100\n", "Efficiency", result.Efficiency)
		if !mathutil.IsZero(result.CommuteHoursSavedPerMonth) {
			_, _ = p.Printf("%-16s | %.1f hours/month\n", "Commute saved", result.CommuteHoursSavedPerMonth)
		}
		for _, warning := range result.Warnings {
			fmt.Printf("note: %s\n", warning)
		}
		fmt.Printf("\n")
	}

	fmt.Printf("--- Deltas ---\n")
	for _, name := range sortedDeltaNames(comparison.Deltas) {
		delta := comparison.Deltas[name]
		fmt.Printf("%-22s | leftover %s | rate %s\n", name,
			format.SignedCurrency(symbol, delta.Leftover),
			format.SignedRate(delta.FreedomPerHour))
	}
	fmt.Printf("Leftover percentile (region): p%d\n", comparison.PercentileRank)
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(comparison scenario.Comparison) {
	results := orderedResults(comparison)

	fmt.Printf(`"metric"`)
	for _, result := range results {
		fmt.Printf(`,"%s"`, result.Name)
	}
	fmt.Printf("\n")

	for _, r := range breakdownRows {
		fmt.Printf(`"%s"`, r.label)
		for _, result := range results {
			fmt.Printf(`,"%.2f"`, r.amount(result))
		}
		fmt.Printf("\n")
	}

	fmt.Printf(`"job hours/month"`)
	for _, result := range results {
		fmt.Printf(`,"%.0f"`, result.HoursPerMonth)
	}
	fmt.Printf("\n")

	fmt.Printf(`"freedom rate/hr"`)
	for _, result := range results {
		fmt.Printf(`,"%.2f"`, result.FreedomPerHour)
	}
	fmt.Printf("\n")

	fmt.Printf(`"tier"`)
	for _, result := range results {
		fmt.Printf(`,"%s"`, result.Tier)
	}
	fmt.Printf("\n")

	fmt.Printf(`"efficiency"`)
	for _, result := range results {
		fmt.Printf(`,"%d"`, result.Efficiency)
	}
	fmt.Printf("\n")
}

func sortedDeltaNames(deltas map[string]scenario.Delta) []string {
	names := make([]string, 0, len(deltas))
	for name := range deltas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TierSummary renders a one-line severity statement for the headline
// scenario, distinguishing the net-losing state from a merely low rate.
func TierSummary(result scenario.Result) string {
	if result.Tier == "unsustainable" {
		return fmt.Sprintf("unsustainable: losing %.2f per hour worked", -result.FreedomPerHour)
	}
	return fmt.Sprintf("%s: %.2f of freedom per hour worked", result.Tier, result.FreedomPerHour)
}
