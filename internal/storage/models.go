package storage

import "time"

type User struct {
	Key             string
	Nickname        string
	Level           int
	SocialExp       int
	CourageExp      int
	TotalQuests     int
	CompletedQuests int
	Achievements    []string
	CreatedAt       time.Time
}

type Quest struct {
	ID          string
	Title       string
	Description string
	Category    string
	Difficulty  int

	Latitude      *float64
	Longitude     *float64
	Address       *string
	PlaceName     *string
	PlaceCategory *string

	RewardCourage int
	RewardSocial  int

	Status           string
	CreatedAt        time.Time
	CompletedAt      *time.Time
	TimeLimitMinutes *int
}

type EmotionRecord struct {
	ID        string
	QuestID   string
	Emotion   string
	Note      string
	Feedback  string
	CreatedAt time.Time
}
