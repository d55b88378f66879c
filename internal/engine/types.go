package engine

import (
	"strings"
	"time"
)

// Category is a quest category. Categories unlock as the user levels up and
// are never taken away.
type Category string

const (
	CategoryNearby      Category = "nearby"
	CategoryInteraction Category = "interaction"
	CategoryCourage     Category = "courage"
	CategorySocial      Category = "social"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryNearby, CategoryInteraction, CategoryCourage, CategorySocial:
		return true
	default:
		return false
	}
}

// AllCategories returns every category in unlock order.
func AllCategories() []Category {
	return []Category{CategoryNearby, CategoryInteraction, CategoryCourage, CategorySocial}
}

// ParseCategory parses user input to a Category.
func ParseCategory(input string) (Category, bool) {
	c := Category(strings.TrimSpace(strings.ToLower(input)))
	if !c.IsValid() {
		return "", false
	}
	return c, true
}

type Difficulty int

const (
	DifficultyEasy   Difficulty = 1
	DifficultyMedium Difficulty = 2
	DifficultyHard   Difficulty = 3
	DifficultyExpert Difficulty = 4
)

// MaxDifficulty caps the template filter regardless of user level.
const MaxDifficulty = DifficultyExpert

func (d Difficulty) IsValid() bool {
	return d >= DifficultyEasy && d <= DifficultyExpert
}

// Emotion is the six-value journal emotion set.
type Emotion string

const (
	EmotionExcited   Emotion = "excited"
	EmotionHappy     Emotion = "happy"
	EmotionConfident Emotion = "confident"
	EmotionNervous   Emotion = "nervous"
	EmotionDifficult Emotion = "difficult"
	EmotionAnxious   Emotion = "anxious"
)

func (e Emotion) IsValid() bool {
	switch e {
	case EmotionExcited, EmotionHappy, EmotionConfident, EmotionNervous, EmotionDifficult, EmotionAnxious:
		return true
	default:
		return false
	}
}

func AllEmotions() []Emotion {
	return []Emotion{EmotionExcited, EmotionHappy, EmotionConfident, EmotionNervous, EmotionDifficult, EmotionAnxious}
}

// ParseEmotion parses user input to an Emotion.
func ParseEmotion(input string) (Emotion, bool) {
	e := Emotion(strings.TrimSpace(strings.ToLower(input)))
	if !e.IsValid() {
		return "", false
	}
	return e, true
}

// Location is a resolved place, from config or from a place lookup.
type Location struct {
	Latitude  float64
	Longitude float64
	Address   string
	PlaceName string
	Category  string
}

// Reward is the experience awarded on quest completion, split across the two
// tracks.
type Reward struct {
	CourageExp int
	SocialExp  int
}

func (r Reward) Total() int { return r.CourageExp + r.SocialExp }

type Quest struct {
	ID          string
	Title       string
	Description string
	Category    Category
	Difficulty  Difficulty
	Location    *Location
	Reward      Reward
	Completed   bool
	CompletedAt *time.Time
	// TimeLimitMinutes is how long the quest stays fresh, in minutes.
	TimeLimitMinutes int
}

type User struct {
	ID              string
	Nickname        string
	Level           int // derived from experience, never set independently
	SocialExp       int
	CourageExp      int
	TotalQuests     int
	CompletedQuests int
	Achievements    []string // unlocked achievement ids
	CreatedAt       time.Time
}

// TotalExp is the combined experience across both tracks.
func (u *User) TotalExp() int { return u.SocialExp + u.CourageExp }

// EmotionRecord is a journal entry written after a quest completion. Records
// are insert-only; they are never mutated or deleted.
type EmotionRecord struct {
	ID        string
	QuestID   string
	Emotion   Emotion
	Note      string
	Feedback  string
	CreatedAt time.Time
}

// ChatMessage is one turn of a practice conversation.
type ChatMessage struct {
	ID        string
	Text      string
	FromUser  bool
	Timestamp time.Time
}

// Simulation is an AI-guided conversation practice session.
type Simulation struct {
	ID         string
	ScenarioID string
	Character  string
	Messages   []ChatMessage
	Completed  bool
	Feedback   string
	StartedAt  time.Time
}
