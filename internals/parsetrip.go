package internals

import (
	"regexp"
	"strconv"
	"strings"
)

// fixed exchange rate for $-tagged costs in the log [CZK per USD]
const CZKPerUSD = 23.0

// used when a vehicle efficiency label carries no l/100km figure; trips priced
// with it are counted separately so reports can tell measured from assumed
const FallbackConsumptionPer100Km = 7.0

var (
	leadingFloatRegex = regexp.MustCompile(`\d+(?:[.,]\d+)?`)
	hoursRegex        = regexp.MustCompile(`(\d+)\s*h`)
	minutesRegex      = regexp.MustCompile(`(\d+)\s*min`)
	efficiencyRegex   = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*(?:l|kwh)\s*/\s*100\s*km`)
	consumptionRegex  = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*l\s*/\s*100\s*km`)
)

// The historical log stores human-readable labels rather than raw numbers, so
// every parser here is total: malformed input degrades to zero or a documented
// fallback and never aborts an aggregation.

func parseLeadingFloat(s string) float64 {
	match := leadingFloatRegex.FindString(s)
	if match == "" {
		return 0
	}
	value, err := strconv.ParseFloat(strings.ReplaceAll(match, ",", "."), 64)
	if err != nil {
		return 0
	}
	return value
}

// ParseDistanceKm reads the leading float of a distance label, 0 if unparsable.
func ParseDistanceKm(s string) float64 {
	return parseLeadingFloat(s)
}

// ParseDurationSeconds reads labels like "1h 2 min", "45 min" or "2h". A missing
// hours or minutes group contributes 0.
func ParseDurationSeconds(s string) int {
	hours := 0
	minutes := 0
	if m := hoursRegex.FindStringSubmatch(s); m != nil {
		hours, _ = strconv.Atoi(m[1])
	}
	if m := minutesRegex.FindStringSubmatch(s); m != nil {
		minutes, _ = strconv.Atoi(m[1])
	}
	return (hours*60 + minutes) * 60
}

// ParseCO2Kg reads an emission label and normalizes to kilograms; gram-tagged
// values are divided by 1000, untagged values are taken as kilograms.
func ParseCO2Kg(s string) float64 {
	value := parseLeadingFloat(s)
	lower := strings.ToLower(s)
	if strings.Contains(lower, "kg") {
		return value
	}
	if strings.Contains(lower, "g") {
		return value / 1000
	}
	return value
}

// ParseCostCZK reads a cost label and normalizes to CZK; "$"/"USD"-tagged values
// are converted at the fixed CZKPerUSD rate.
func ParseCostCZK(s string) float64 {
	value := parseLeadingFloat(s)
	if strings.Contains(s, "$") || strings.Contains(strings.ToUpper(s), "USD") {
		return value * CZKPerUSD
	}
	return value
}

// ParseEfficiency is the strict parse used by the cost model: the label must
// carry an l/100km or kWh/100km figure, otherwise the cost is unavailable.
func ParseEfficiency(label string) (float64, bool) {
	m := efficiencyRegex.FindStringSubmatch(label)
	if m == nil {
		return 0, false
	}
	value, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// ParseConsumption reads the liters-per-100km figure used for fuel aggregation.
// Labels without one (including kWh labels of electric vehicles) get the
// documented fallback; the second result reports that the fallback was used.
func ParseConsumption(label string) (float64, bool) {
	m := consumptionRegex.FindStringSubmatch(label)
	if m == nil {
		return FallbackConsumptionPer100Km, true
	}
	value, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64)
	if err != nil {
		return FallbackConsumptionPer100Km, true
	}
	return value, false
}
