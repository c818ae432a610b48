package gatekeeper

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Per-role and total caps keep junk date ranges from producing absurd
// experience figures.
const (
	maxYearsPerRole = 10
	maxYearsTotal   = 50
)

var explicitYearPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+\.?\d*)\+?\s*(?:years?|yrs?)\s+(?:of\s+)?(?:professional\s+)?experience`),
	regexp.MustCompile(`(?i)(\d+\.?\d*)\+?\s*(?:years?|yrs?)\s+in`),
	regexp.MustCompile(`(?i)experience[:\s]+(\d+\.?\d*)\s*(?:years?|yrs?)`),
}

var dateRangePattern = regexp.MustCompile(`(?i)(\d{4})\s*[-–]\s*(\d{4}|present|current|now)`)

// ExtractYears estimates total professional experience. Explicit "N years"
// statements win; otherwise experience is summed from date ranges.
func ExtractYears(text string, now time.Time) float64 {
	var maxYears float64
	for _, pattern := range explicitYearPatterns {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			if years, err := strconv.ParseFloat(match[1], 64); err == nil && years > maxYears {
				maxYears = years
			}
		}
	}
	if maxYears == 0 {
		maxYears = yearsFromDateRanges(text, now)
	}
	if maxYears > maxYearsTotal {
		maxYears = maxYearsTotal
	}
	return maxYears
}

func yearsFromDateRanges(text string, now time.Time) float64 {
	currentYear := now.Year()
	var total float64
	for _, match := range dateRangePattern.FindAllStringSubmatch(text, -1) {
		startYear, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		endYear := currentYear
		if y, err := strconv.Atoi(match[2]); err == nil {
			endYear = y
		}
		if startYear < 1980 || startYear > currentYear || startYear > endYear {
			continue
		}
		years := float64(endYear - startYear)
		if years > maxYearsPerRole {
			years = maxYearsPerRole
		}
		total += years
	}
	if total > maxYearsTotal {
		total = maxYearsTotal
	}
	return total
}

// CheckEligibility compares extracted experience against the minimum.
func CheckEligibility(years, minYears float64) (bool, string) {
	if years >= minYears {
		return true, fmt.Sprintf("%.1f years experience meets requirement (%.1fy minimum)", years, minYears)
	}
	return false, fmt.Sprintf("%.1f years experience below required %.1f years", years, minYears)
}
