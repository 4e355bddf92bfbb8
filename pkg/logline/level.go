package logline

import "strings"

// Level is a normalized log severity.
type Level string

// Canonical severity levels, from least to most severe.
const (
	LevelDebug    Level = "DEBUG"
	LevelInfo     Level = "INFO"
	LevelWarn     Level = "WARN"
	LevelError    Level = "ERROR"
	LevelCritical Level = "CRITICAL"
)

// Levels returns the canonical severity set in ascending order.
func Levels() []Level {
	return []Level{LevelDebug, LevelInfo, LevelWarn, LevelError, LevelCritical}
}

// detectOrder is the token scan order for DetectLevel. WARN precedes
// WARNING so lines carrying either spelling normalize the same way;
// WARNING and FATAL are kept for completeness.
var detectOrder = []string{"DEBUG", "INFO", "WARN", "WARNING", "ERROR", "CRITICAL", "FATAL"}

// NormalizeLevel maps a severity token to the canonical five-level set.
// Near-synonyms collapse: WARNING becomes WARN, FATAL becomes CRITICAL.
// Unknown tokens map to the empty Level. Normalization is idempotent.
func NormalizeLevel(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug
	case "INFO":
		return LevelInfo
	case "WARN", "WARNING":
		return LevelWarn
	case "ERROR":
		return LevelError
	case "CRITICAL", "FATAL":
		return LevelCritical
	default:
		return ""
	}
}

// DetectLevel scans a line for a severity token, bracketed or bare,
// case-insensitively. The first token in scan order wins; no match
// returns the empty Level.
func DetectLevel(line string) Level {
	upper := strings.ToUpper(line)
	for _, token := range detectOrder {
		if strings.Contains(upper, token) {
			return NormalizeLevel(token)
		}
	}
	return ""
}
