package engine

// Achievement is a badge the user can earn. The catalog is static; earned
// state is derived from the aggregate and the unlocked set is denormalized
// onto the user after completion events.
type Achievement struct {
	ID          string
	Title       string
	Description string
	Icon        string
	Earned      bool
}

// AchievementChecker derives earned achievements from a snapshot of the
// aggregate.
type AchievementChecker struct {
	user      *User
	completed []Quest
	records   []EmotionRecord
}

func NewAchievementChecker(user *User, completed []Quest, records []EmotionRecord) *AchievementChecker {
	return &AchievementChecker{user: user, completed: completed, records: records}
}

// Achievements returns the full catalog with earned status.
func (c *AchievementChecker) Achievements() []Achievement {
	return []Achievement{
		c.questCount("first_steps", "첫 걸음", "첫 번째 퀘스트 완료", "🎯", 1),
		c.categoryCount("brave_challenger", "용감한 도전자", "용기 카테고리 5개 완료", "💪", CategoryCourage, 5),
		c.recordCount("journal_keeper", "감정 기록가", "감정 일기 10회 작성", "📝", 10),
		c.socialExp("social_butterfly", "사교왕", "사회성 경험치 100 달성", "👑", 100),
		c.level("growing_up", "성장하는 중", "레벨 3 달성", "🌿", 3),
		c.level("confidence_master", "자신감 마스터", "레벨 5 달성", "⭐", 5),
		c.allCategories("well_rounded", "소통의 고수", "모든 카테고리 경험", "🌟"),
		c.questCount("quest_veteran", "퀘스트 베테랑", "퀘스트 20개 완료", "🏆", 20),
	}
}

func (c *AchievementChecker) CountEarned() int {
	n := 0
	for _, a := range c.Achievements() {
		if a.Earned {
			n++
		}
	}
	return n
}

func (c *AchievementChecker) CountTotal() int {
	return len(c.Achievements())
}

func (c *AchievementChecker) level(id, title, desc, icon string, level int) Achievement {
	earned := Level(c.user.TotalExp()) >= level
	return Achievement{ID: id, Title: title, Description: desc, Icon: icon, Earned: earned}
}

func (c *AchievementChecker) questCount(id, title, desc, icon string, count int) Achievement {
	return Achievement{ID: id, Title: title, Description: desc, Icon: icon, Earned: len(c.completed) >= count}
}

func (c *AchievementChecker) categoryCount(id, title, desc, icon string, cat Category, count int) Achievement {
	n := 0
	for _, q := range c.completed {
		if q.Category == cat {
			n++
		}
	}
	return Achievement{ID: id, Title: title, Description: desc, Icon: icon, Earned: n >= count}
}

func (c *AchievementChecker) recordCount(id, title, desc, icon string, count int) Achievement {
	return Achievement{ID: id, Title: title, Description: desc, Icon: icon, Earned: len(c.records) >= count}
}

func (c *AchievementChecker) socialExp(id, title, desc, icon string, exp int) Achievement {
	return Achievement{ID: id, Title: title, Description: desc, Icon: icon, Earned: c.user.SocialExp >= exp}
}

func (c *AchievementChecker) allCategories(id, title, desc, icon string) Achievement {
	seen := map[Category]bool{}
	for _, q := range c.completed {
		seen[q.Category] = true
	}
	return Achievement{ID: id, Title: title, Description: desc, Icon: icon, Earned: len(seen) == len(AllCategories())}
}

// EvaluateAchievements unlocks newly earned achievements on the user and
// returns their ids. Already-unlocked achievements are never revoked.
func EvaluateAchievements(user *User, completed []Quest, records []EmotionRecord) []string {
	checker := NewAchievementChecker(user, completed, records)
	have := map[string]bool{}
	for _, id := range user.Achievements {
		have[id] = true
	}

	var unlocked []string
	for _, a := range checker.Achievements() {
		if a.Earned && !have[a.ID] {
			user.Achievements = append(user.Achievements, a.ID)
			unlocked = append(unlocked, a.ID)
		}
	}
	return unlocked
}
