// Package wardrobe maps a temperature reading to clothing advice.
package wardrobe

// Outfit is the recommendation for one temperature bracket.
type Outfit struct {
	Text     string
	ImageURL string
}

// bracket covers (previous max, Max].
type bracket struct {
	Max    int
	Outfit Outfit
}

// brackets are ordered by Max; anything warmer than the last one gets hotWeather.
var brackets = []bracket{
	{Max: 45, Outfit: Outfit{
		Text:     "a winter coat and long pants",
		ImageURL: "https://upload.wikimedia.org/wikipedia/commons/4/42/FMIB_41384_Winter_traveling_dress%2C_common_throughout_the_Yukon_Valley.jpeg",
	}},
	{Max: 55, Outfit: Outfit{
		Text:     "a light coat and long pants",
		ImageURL: "https://img.buzzfeed.com/buzzfeed-static/static/2013-10/enhanced/webdr03/19/3/enhanced-buzz-6188-1382168152-22.jpg?downsize=800:*&output-format=auto&output-quality=auto",
	}},
	{Max: 70, Outfit: Outfit{
		Text:     "a sweater or sweat shirt and long pants",
		ImageURL: "https://storage.googleapis.com/relevant-magazine/2018/08/What-Mr.-Rogers-Can-Still-Teach-Us-1-720x720.jpg",
	}},
	{Max: 75, Outfit: Outfit{
		Text:     "a sleeved shirt and long pants",
		ImageURL: "https://www.hotflick.net/flicks/2001_Ocean_s_Eleven/001OEL_George_Clooney_033.jpg",
	}},
	{Max: 80, Outfit: Outfit{
		Text:     "a short sleeved shirt and long pants",
		ImageURL: "https://d1q0twczwkl2ie.cloudfront.net/wp-content/uploads/2018/02/ryan-gosling-rachel-mcadams-the-notebook.jpg",
	}},
}

var hotWeather = Outfit{
	Text:     "a short sleeved shirt or tank top with shorts",
	ImageURL: "https://m.media-amazon.com/images/M/MV5BY2VkNmIwYTQtMDgzZi00NzNiLWEwOWYtMjg5OWMxOTc1YWJiXkEyXkFqcGdeQXVyNTk4MDczMzI@._V1_SY1000_CR0,0,569,1000_AL_.jpg",
}

// Recommend returns the outfit for a temperature in °F. Boundary values
// belong to the lower bracket: 45 is still winter coat weather.
func Recommend(temp int) Outfit {
	for _, b := range brackets {
		if temp <= b.Max {
			return b.Outfit
		}
	}
	return hotWeather
}

// Advice is the supplementary layering hint.
type Advice int

const (
	AdviceNone Advice = iota
	AdviceWarming
	AdviceCooling
	AdviceFluctuating
)

// swing is how far the day's high or low may stray before layers are suggested.
const swing = 5

// Advise compares the current temperature with the day's range. A warmer
// high and a colder low together collapse into a single fluctuating hint.
func Advise(temp, tempMin, tempMax int) Advice {
	warming := tempMax-temp > swing
	cooling := temp-tempMin > swing

	switch {
	case warming && cooling:
		return AdviceFluctuating
	case warming:
		return AdviceWarming
	case cooling:
		return AdviceCooling
	default:
		return AdviceNone
	}
}

// String returns the spoken sentence, empty for AdviceNone.
func (a Advice) String() string {
	switch a {
	case AdviceWarming:
		return "It's going to get pretty warm later so it might be worth wearing layers that can come off."
	case AdviceCooling:
		return "It's going to get colder later so it might be worth bringing some extra layers."
	case AdviceFluctuating:
		return "Today's weather is going to fluctuate a good amount so be sure to wear layers!"
	default:
		return ""
	}
}
