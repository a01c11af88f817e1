package pricing

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"fukuro_studio/internal/domain/entities"
)

var (
	// A number is whole or decimal ("1.5", "2,5") and must not start inside
	// another number.
	minuteToken = regexp.MustCompile(`(?i)(?:^|[^\d.,])(\d+(?:[.,]\d+)?)\s*(?:minutos|minuto|minutes|minute|mins|min|m)(?:[^a-z]|$)`)
	secondToken = regexp.MustCompile(`(?i)(?:^|[^\d.,])(\d+(?:[.,]\d+)?)\s*(?:segundos|segundo|seconds|second|segs|seg|secs|sec|s)(?:[^a-z]|$)`)
	bareNumber  = regexp.MustCompile(`\d+(?:[.,]\d+)?`)
)

// ParseDuration normalizes a free-form duration ("1:30", "2 min", "45 seg",
// "1 minuto 20 segundos", "1.5 min") into minutes and seconds. Decimal
// minutes are converted to seconds, so "1.5 min" is 1:30.
//
// It never fails: unparseable text yields a zero Duration and callers decide
// whether zero is acceptable. A lone number without unit is read as seconds.
func ParseDuration(text string) entities.Duration {
	s := strings.TrimSpace(text)
	if s == "" {
		return entities.Duration{}
	}

	if parts := strings.Split(s, ":"); len(parts) == 2 {
		m, errM := strconv.Atoi(strings.TrimSpace(parts[0]))
		sec, errS := strconv.Atoi(strings.TrimSpace(parts[1]))
		if errM == nil && errS == nil {
			return entities.NewDuration(m, sec)
		}
	}

	minutes, hasMinutes := firstNumber(minuteToken, s)
	seconds, hasSeconds := firstNumber(secondToken, s)
	if hasMinutes || hasSeconds {
		return entities.NewDuration(0, roundSeconds(minutes*60+seconds))
	}

	if raw := bareNumber.FindString(s); raw != "" {
		if n, ok := parseNumber(raw); ok {
			return entities.NewDuration(0, roundSeconds(n))
		}
	}
	return entities.Duration{}
}

func firstNumber(re *regexp.Regexp, s string) (float64, bool) {
	m := re.FindStringSubmatch(s)
	if len(m) < 2 {
		return 0, false
	}
	return parseNumber(m[1])
}

// parseNumber accepts a decimal comma as well as a point.
func parseNumber(raw string) (float64, bool) {
	n, err := strconv.ParseFloat(strings.Replace(raw, ",", ".", 1), 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func roundSeconds(v float64) int {
	return int(math.Round(v))
}
