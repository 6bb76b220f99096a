package models

// Profile defines the structure for user dating profiles.
// Preference fields (seekingGender, ageMin, ageMax, distanceKm, interests)
// drive candidate selection for the owner of the profile.
type Profile struct {
	UserID        string   `dynamodbav:"userId" json:"userId"` // Partition Key
	Name          string   `dynamodbav:"name,omitempty" json:"name,omitempty"`
	FullName      string   `dynamodbav:"fullName,omitempty" json:"fullName,omitempty"`
	Bio           string   `dynamodbav:"bio,omitempty" json:"bio,omitempty"`
	Birthdate     string   `dynamodbav:"birthdate,omitempty" json:"birthdate,omitempty"` // ISO date (2006-01-02)
	Gender        string   `dynamodbav:"gender,omitempty" json:"gender,omitempty"`
	Phone         string   `dynamodbav:"phone,omitempty" json:"phone,omitempty"`
	AvatarURL     string   `dynamodbav:"avatarUrl,omitempty" json:"avatarUrl,omitempty"`
	Address       string   `dynamodbav:"address,omitempty" json:"address,omitempty"`
	Latitude      float64  `dynamodbav:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude     float64  `dynamodbav:"longitude,omitempty" json:"longitude,omitempty"`
	SeekingGender string   `dynamodbav:"seekingGender,omitempty" json:"seekingGender,omitempty"` // male, female or both
	AgeMin        int      `dynamodbav:"ageMin,omitempty" json:"ageMin,omitempty"`
	AgeMax        int      `dynamodbav:"ageMax,omitempty" json:"ageMax,omitempty"`
	DistanceKm    float64  `dynamodbav:"distanceKm,omitempty" json:"distanceKm,omitempty"` // max search radius
	Interests     []string `dynamodbav:"interests,omitempty" json:"interests,omitempty"`
	IsComplete    bool     `dynamodbav:"isComplete" json:"isComplete"` // setup flow finished
	CreatedAt     string   `dynamodbav:"createdAt,omitempty" json:"createdAt,omitempty"`

	DistanceBetween float64 `dynamodbav:"-" json:"distanceBetween,omitempty"` // Computed distance (not stored in DB)
}

// ProfilesTable is the DynamoDB table name for user profiles
const ProfilesTable = "Profiles"
