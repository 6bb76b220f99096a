package models

// MatchCandidate is the transient projection of a candidate profile shown to
// a viewer on the swipe screen. It is computed per request and never stored.
type MatchCandidate struct {
	UserID     string   `json:"userId"`
	Name       string   `json:"name"`
	Age        int      `json:"age"`
	AvatarURL  string   `json:"avatarUrl,omitempty"`
	Bio        string   `json:"bio,omitempty"`
	Interests  []string `json:"interests,omitempty"`
	Address    string   `json:"address,omitempty"`
	DistanceKm float64  `json:"distanceKm,omitempty"`
	Gender     string   `json:"gender,omitempty"`
}

// MatchFilters is the viewer's preference set applied to raw candidates.
// Only the viewer's preferences toward candidates are checked; the reverse
// direction is not verified.
type MatchFilters struct {
	SeekingGender string
	AgeMin        int
	AgeMax        int
	MaxDistance   float64
	Interests     []string
	Latitude      float64
	Longitude     float64
	ViewerGender  string
	ViewerAge     int
}
