package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"stepquest/internal/engine"
)

// StepQuest theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconQuest   = "🎯"
	IconSparkle = "✨"
	IconDone    = "✅"
	IconTrophy  = "🏆"
	IconBolt    = "⚡"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconJournal = "📝"
	IconPin     = "📍"
	IconChat    = "💬"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// CategoryName returns the user-facing Korean name of a quest category.
func CategoryName(c engine.Category) string {
	switch c {
	case engine.CategoryNearby:
		return "집 근처"
	case engine.CategoryInteraction:
		return "상호작용"
	case engine.CategoryCourage:
		return "용기 내기"
	case engine.CategorySocial:
		return "사회성"
	default:
		return string(c)
	}
}

func CategoryIcon(c engine.Category) string {
	switch c {
	case engine.CategoryNearby:
		return "🏠"
	case engine.CategoryInteraction:
		return "💬"
	case engine.CategoryCourage:
		return "💪"
	case engine.CategorySocial:
		return "👥"
	default:
		return IconQuest
	}
}

// EmotionLabel returns the user-facing Korean label for an emotion.
func EmotionLabel(e engine.Emotion) string {
	switch e {
	case engine.EmotionExcited:
		return "뿌듯해요"
	case engine.EmotionHappy:
		return "기뻐요"
	case engine.EmotionConfident:
		return "자신있어요"
	case engine.EmotionNervous:
		return "떨려요"
	case engine.EmotionDifficult:
		return "힘들어요"
	case engine.EmotionAnxious:
		return "불안해요"
	default:
		return string(e)
	}
}

func EmotionEmoji(e engine.Emotion) string {
	switch e {
	case engine.EmotionExcited:
		return "🤩"
	case engine.EmotionHappy:
		return "😊"
	case engine.EmotionConfident:
		return "😎"
	case engine.EmotionNervous:
		return "😅"
	case engine.EmotionDifficult:
		return "😤"
	case engine.EmotionAnxious:
		return "😰"
	default:
		return "🙂"
	}
}

// DifficultyStars renders difficulty as 1-4 stars.
func DifficultyStars(d engine.Difficulty) string {
	n := int(d)
	if n < 1 {
		n = 1
	}
	if n > int(engine.MaxDifficulty) {
		n = int(engine.MaxDifficulty)
	}
	return strings.Repeat("⭐", n)
}

// FormatReward renders a reward in the app's compact two-track form.
func FormatReward(r engine.Reward) string {
	return fmt.Sprintf("💪 %d | 🤝 %d", r.CourageExp, r.SocialExp)
}
