package score

import (
	"math"
	"testing"
)

func TestFreedomPerHour(t *testing.T) {
	tests := []struct {
		name     string
		leftover float64
		hours    float64
		expected float64
	}{
		{"Reference example", 44, 215, 0.20},
		{"Negative leftover yields negative rate", -430, 215, -2.0},
		{"Zero hours guarded by unit floor", 100, 0, 100},
		{"Fractional hours guarded", 100, 0.5, 100},
		{"Zero leftover", 0, 180, 0},
		{"NaN leftover normalized", math.NaN(), 215, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FreedomPerHour(tt.leftover, tt.hours)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("FreedomPerHour(%v, %v) = %v, expected %v",
					tt.leftover, tt.hours, result, tt.expected)
			}
		})
	}
}

func TestFreedomPerHourSignMatchesLeftover(t *testing.T) {
	for _, leftover := range []float64{-2500, -44, -0.5, 0.5, 44, 2500} {
		rate := FreedomPerHour(leftover, 215)
		if leftover > 0 && rate < 0 || leftover < 0 && rate > 0 {
			t.Errorf("sign mismatch: leftover %v, rate %v", leftover, rate)
		}
	}
}

func TestFreedomPerHourAlwaysFinite(t *testing.T) {
	inputs := []struct{ leftover, hours float64 }{
		{math.Inf(1), 0}, {math.NaN(), math.NaN()}, {1e15, 1e-15}, {-1e15, 0},
	}
	for _, in := range inputs {
		rate := FreedomPerHour(in.leftover, in.hours)
		if math.IsNaN(rate) || math.IsInf(rate, 0) {
			t.Errorf("FreedomPerHour(%v, %v) = %v, expected finite", in.leftover, in.hours, rate)
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		rate     float64
		expected Tier
	}{
		{-5, TierUnsustainable},
		{-0.01, TierUnsustainable},
		{0, TierBreakeven},
		{0.99, TierBreakeven},
		{1, TierConstrained},
		{4.99, TierConstrained},
		{5, TierComfortable},
		{11.99, TierComfortable},
		{12, TierAbundant},
		{40, TierAbundant},
	}

	for _, tt := range tests {
		if got := Classify(tt.rate); got != tt.expected {
			t.Errorf("Classify(%v) = %v, expected %v", tt.rate, got, tt.expected)
		}
	}
}

func TestEfficiency(t *testing.T) {
	tests := []struct {
		name            string
		rate            float64
		leftover        float64
		net             float64
		maintenancePct  float64
		weeklyWorkHours float64
		expected        int
	}{
		{
			// rate 15/15 -> 40, ratio 0.30/0.30 -> 25, retained 0.95 -> 20,
			// hours at reference -> 15
			name: "Every factor at its reference bound",
			rate: 15, leftover: 660, net: 2200, maintenancePct: 5, weeklyWorkHours: 37.5,
			expected: 100,
		},
		{
			name: "All factors floored",
			rate: -2, leftover: -500, net: 2200, maintenancePct: 60, weeklyWorkHours: 90,
			expected: 0,
		},
		{
			// rate 0.2/15*40 = 0.53, ratio (44/2200)/0.3*25 = 1.67,
			// retained 1-0.2045 = 0.7955 -> (0.1955/0.35)*20 = 11.17,
			// hours |45-37.5|/25 -> (1-0.3)*15 = 10.5 => round(23.87) = 24
			name: "Reference commuter",
			rate: 0.20, leftover: 44, net: 2200, maintenancePct: 20.45, weeklyWorkHours: 45,
			expected: 24,
		},
		{
			name: "Zero net guarded",
			rate: 0, leftover: 0, net: 0, maintenancePct: 0, weeklyWorkHours: 37.5,
			expected: 35, // maintenance 20 + hours 15
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Efficiency(tt.rate, tt.leftover, tt.net, tt.maintenancePct, tt.weeklyWorkHours)
			if result != tt.expected {
				t.Errorf("Efficiency = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestEfficiencyBounded(t *testing.T) {
	extremes := []struct{ rate, leftover, net, pct, hours float64 }{
		{1e9, 1e9, 1, -100, 37.5},
		{-1e9, -1e9, 0, 200, 0},
		{math.NaN(), math.NaN(), math.NaN(), math.NaN(), math.NaN()},
	}
	for _, e := range extremes {
		score := Efficiency(e.rate, e.leftover, e.net, e.pct, e.hours)
		if score < 0 || score > 100 {
			t.Errorf("Efficiency out of range: %v", score)
		}
	}
}

func TestMaintenancePct(t *testing.T) {
	tests := []struct {
		name        string
		maintenance float64
		net         float64
		expected    float64
	}{
		{"Reference", 450, 2200, 20.45},
		{"Zero net guarded", 450, 0, 45000},
		{"Zero maintenance", 0, 2200, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MaintenancePct(tt.maintenance, tt.net)
			if math.Abs(result-tt.expected) > 0.01 {
				t.Errorf("MaintenancePct(%v, %v) = %v, expected %v",
					tt.maintenance, tt.net, result, tt.expected)
			}
		})
	}
}
