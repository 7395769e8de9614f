package skill

import (
	"fmt"

	"github.com/i474232898/what-to-wear/internal/wardrobe"
	"github.com/i474232898/what-to-wear/internal/weather"
)

// Recommendation is everything the spoken answer is built from.
type Recommendation struct {
	Weather weather.Snapshot
	Outfit  wardrobe.Outfit
	Advice  wardrobe.Advice
}

// newRecommendation applies the clothing table and the layering rules to a snapshot.
func newRecommendation(snap weather.Snapshot) Recommendation {
	return Recommendation{
		Weather: snap,
		Outfit:  wardrobe.Recommend(snap.Temperature),
		Advice:  wardrobe.Advise(snap.Temperature, snap.TempMin, snap.TempMax),
	}
}

// Speech renders the recommendation as one spoken paragraph.
func (r Recommendation) Speech() string {
	w := r.Weather
	speech := fmt.Sprintf(
		"Today's weather in the %s area is %d with %s. The high for today is %d and the low is %d. We would recommend wearing %s.",
		w.City, w.Temperature, w.Description, w.TempMax, w.TempMin, r.Outfit.Text,
	)
	if advice := r.Advice.String(); advice != "" {
		speech += " " + advice
	}
	return speech
}
