// Package constants provides shared constants for the freedom-rate engine.
package constants

// Income estimation constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DefaultEffectiveNetRate is the flat net rate applied for unknown
	// regions; it is the most conservative of the per-region rates.
	DefaultEffectiveNetRate = 0.68

	// BracketAllowance is the zero-rate allowance band of the annual
	// bracket-mode estimator.
	BracketAllowance = 12570.0

	// BracketBasicWidth is the taxable width of the basic-rate band.
	BracketBasicWidth = 37700.0

	// BracketHigherWidth is the taxable width of the higher-rate band.
	BracketHigherWidth = 74870.0

	// BracketBasicRate is the marginal rate of the basic band.
	BracketBasicRate = 0.20

	// BracketHigherRate is the marginal rate of the higher band.
	BracketHigherRate = 0.40

	// BracketTopRate is the marginal rate above the higher band.
	BracketTopRate = 0.45

	// SecondaryContributionRate is the flat secondary contribution applied
	// to income above the allowance threshold.
	SecondaryContributionRate = 0.08
)

// Time model constants
const (
	// WeeksPerMonth approximates the average number of weeks in a month.
	WeeksPerMonth = 4.3

	// DefaultOfficeDaysPerWeek is the commute-day count assumed when the
	// caller does not supply one.
	DefaultOfficeDaysPerWeek = 5

	// RelocationWorkdaysPerMonth is the workday count used by the
	// commute-hours-saved calculation in relocation comparisons.
	RelocationWorkdaysPerMonth = 22

	// MinimumHoursDenominator guards rate divisions against a zero or
	// near-zero denominator.
	MinimumHoursDenominator = 1.0
)

// Dependent cost multipliers
const (
	// NurseryAgeMultiplier scales the regional base child cost for
	// pre-school children.
	NurseryAgeMultiplier = 1.5

	// SchoolAgeMultiplier is the neutral multiplier for school-age children.
	SchoolAgeMultiplier = 1.0

	// OneChildMultiplier, TwoChildMultiplier, and ThreePlusChildMultiplier
	// express the deliberately sub-linear cost of additional children.
	OneChildMultiplier       = 1.0
	TwoChildMultiplier       = 1.9
	ThreePlusChildMultiplier = 2.6
)

// Healthcare plan monthly defaults; healthcare is modeled only for the US
// region and these are acknowledged rough placeholders.
const (
	HealthcareEmployerDefault    = 200.0
	HealthcareUninsuredDefault   = 300.0
	HealthcareMarketplaceDefault = 450.0
	HealthcareGenericDefault     = 300.0
)

// CoreUrbanBillsFactor inflates the regional bills base in the densest
// urbanicity tier.
const CoreUrbanBillsFactor = 1.2

// Efficiency score tunables. The four-factor structure and the weights are
// fixed for reproducibility; the reference bounds are tunable.
const (
	// FreedomRateWeight through WorkedHoursWeight sum to 100.
	FreedomRateWeight   = 40.0
	LeftoverRatioWeight = 25.0
	MaintenanceWeight   = 20.0
	WorkedHoursWeight   = 15.0

	// FreedomRateReferenceMax is the per-hour rate that earns a full
	// freedom-rate sub-score.
	FreedomRateReferenceMax = 15.0

	// LeftoverRatioReferenceMax is the leftover/net ratio that earns a full
	// leftover sub-score.
	LeftoverRatioReferenceMax = 0.30

	// MaintenanceBandFloor and MaintenanceBandWidth define the band that
	// (1 - maintenancePct/100) is normalized into.
	MaintenanceBandFloor = 0.60
	MaintenanceBandWidth = 0.35

	// ReferenceWeeklyHours is the moderate hours target rewarded by the
	// worked-hours sub-score; HoursBandHalfWidth is the distance from the
	// target at which the sub-score reaches zero.
	ReferenceWeeklyHours = 37.5
	HoursBandHalfWidth   = 25.0
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatPDF is the PDF report output format
	OutputFormatPDF = "pdf"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default profile file name
	DefaultConfigFile = "profile.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size (256 KB)
	DefaultMaxBodySizeBytes int64 = 256 * 1024
)

// Financial comparison constants
const (
	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)
