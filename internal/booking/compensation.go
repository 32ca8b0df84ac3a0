package booking

import (
	"math"
	"strconv"
	"strings"
)

// NormalizeCompensation turns a loosely formatted money string ("$450.00",
// "1,200") into a finite number. Unparseable or non-finite input yields nil,
// treating the value as absent rather than zero, so a bad compensation field
// never blocks an otherwise valid acceptance.
func NormalizeCompensation(raw string) *float64 {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "$")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return nil
	}
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return nil
	}
	return &value
}
