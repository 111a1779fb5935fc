package server

import (
	"strconv"
	"strings"
	"time"

	"github.com/smallbiznis/smartdairy/pkg/date"
)

func parseOptionalDate(value string) (*date.Date, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil, nil
	}
	parsed, err := date.Parse(trimmed)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func parseOptionalInt(value string) (*int, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil, nil
	}
	parsed, err := strconv.Atoi(trimmed)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func parseID(value string) (int64, error) {
	parsed, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil || parsed <= 0 {
		return 0, newValidationError("id", "invalid_id", "invalid id")
	}
	return parsed, nil
}

func parsePeriod(yearValue, monthValue string) (int, time.Month, error) {
	year, err := strconv.Atoi(strings.TrimSpace(yearValue))
	if err != nil || year < 1 {
		return 0, 0, newValidationError("year", "invalid_year", "invalid year")
	}
	month, err := strconv.Atoi(strings.TrimSpace(monthValue))
	if err != nil || month < 1 || month > 12 {
		return 0, 0, newValidationError("month", "invalid_month", "month must be 1-12")
	}
	return year, time.Month(month), nil
}
