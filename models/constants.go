package models

// Genders
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// Seeking preference ("both" disables the gender predicate at the query layer)
const (
	SeekingMale   = "male"
	SeekingFemale = "female"
	SeekingBoth   = "both"
)

// Swipe actions
const (
	ActionLike = "like"
	ActionPass = "pass"
)

// IsValidSwipeAction reports whether action is one of the supported decisions
func IsValidSwipeAction(action string) bool {
	return action == ActionLike || action == ActionPass
}

// InterestLabels maps stored interest keys to their display labels. Keys are
// what goes to the database, labels are what the UI renders.
var InterestLabels = map[string]string{
	"music":       "🎵 Music",
	"movies":      "🎬 Movies",
	"reading":     "📚 Reading",
	"sports":      "🏃 Sports",
	"cooking":     "🍳 Cooking",
	"travel":      "✈️ Travel",
	"art":         "🎨 Art",
	"gaming":      "🎮 Gaming",
	"photography": "📸 Photography",
	"yoga":        "🧘 Yoga",
	"fitness":     "🏋️ Fitness",
	"theater":     "🎭 Theater",
	"wine":        "🍷 Wine",
	"coffee":      "☕ Coffee",
	"nature":      "🌿 Nature",
	"pets":        "🐕 Pets",
	"dancing":     "💃 Dancing",
	"karaoke":     "🎤 Karaoke",
	"beach":       "🏖️ Beach",
	"hiking":      "⛰️ Hiking",
}

// IsValidInterest reports whether key belongs to the interest vocabulary
func IsValidInterest(key string) bool {
	_, ok := InterestLabels[key]
	return ok
}
