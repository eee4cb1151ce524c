package weather

import "strings"

// Canonical condition labels produced by Normalize.
const (
	ConditionRain         = "Rain"
	ConditionClouds       = "Clouds"
	ConditionSnow         = "Snow"
	ConditionThunderstorm = "Thunderstorm"
	ConditionClear        = "Clear"
)

// Normalize maps a free-text weather description to a canonical condition
// label. Keywords are matched by substring in fixed priority order, so
// "rain" wins when several keywords appear. Empty or unmatched input falls
// back to Clear rather than erroring.
func Normalize(condition string) string {
	condition = strings.ToLower(condition)
	switch {
	case strings.Contains(condition, "rain"):
		return ConditionRain
	case strings.Contains(condition, "cloud"):
		return ConditionClouds
	case strings.Contains(condition, "snow"):
		return ConditionSnow
	case strings.Contains(condition, "thunder"):
		return ConditionThunderstorm
	default:
		return ConditionClear
	}
}
