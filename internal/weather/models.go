package weather

import "math"

// Snapshot is the current weather for one location, in imperial units.
// Every numeric field has already been rounded up to a whole number.
type Snapshot struct {
	City        string `json:"city"`
	Description string `json:"description"`
	Temperature int    `json:"temperatureF"`
	Humidity    int    `json:"humidityPercent"`
	TempMin     int    `json:"tempMinF"`
	TempMax     int    `json:"tempMaxF"`
}

// Ceil rounds a raw provider reading up to the nearest whole degree.
// Borderline readings must not fall back into a colder bracket, so this is
// never round-to-nearest.
func Ceil(v float64) int {
	return int(math.Ceil(v))
}
