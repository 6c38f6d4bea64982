// Package constants provides shared constants for the loan engine.
package constants

// DateLayout is the format expected for all dates in config files, portfolio
// snapshots, and CLI flags, and is also the output date format.
const DateLayout = "2006-01-02"

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DaysPerYear is the day-count convention used for daily interest rates
	DaysPerYear = 365

	// DaysPerMonth is the commercial 30-day month used by the flat-method
	// accrual proration
	DaysPerMonth = 30

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)

// Term bounds
const (
	// MinInstallments is the smallest permitted number of installments
	MinInstallments = 1

	// MaxInstallments is the largest permitted number of installments (40
	// years of monthly payments)
	MaxInstallments = 480
)

// Classification day thresholds. A loan with daysInArrears at or below a
// threshold falls into that tier; above the doubtful threshold it is a loss.
const (
	PerformingMaxArrearsDays  = 30
	WatchMaxArrearsDays       = 90
	SubstandardMaxArrearsDays = 180
	DoubtfulMaxArrearsDays    = 365
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"
)
