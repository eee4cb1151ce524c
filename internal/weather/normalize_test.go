package weather

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain rain", "Rain", ConditionRain},
		{"descriptive rain", "light rain", ConditionRain},
		{"rain wins over thunder", "thunderstorm with heavy rain", ConditionRain},
		{"rain wins over clouds", "Rainy Clouds", ConditionRain},
		{"case insensitive", "RAIN", ConditionRain},
		{"clouds", "broken clouds", ConditionClouds},
		{"snow", "Snow", ConditionSnow},
		{"thunder", "thunderstorm", ConditionThunderstorm},
		{"clear", "clear sky", ConditionClear},
		{"empty input defaults to clear", "", ConditionClear},
		{"unmatched input defaults to clear", "Haze", ConditionClear},
		{"drizzle is not rain", "Drizzle", ConditionClear},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
