package engine

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type CompleteResult struct {
	Outcome     CompleteOutcome
	Quest       *Quest
	ExpAwarded  Reward
	LevelBefore int
	LevelAfter  int
	LevelUp     bool
	// NewAchievements lists achievement ids unlocked by this completion.
	NewAchievements []string
}

// CompleteQuest moves a quest from active to completed, awards its reward,
// and recomputes the user's level. Completing an unknown or already-completed
// id is a no-op: the result carries the tagged outcome so callers can log the
// anomaly, but no error is raised and no state changes.
//
// The DB writes happen before the store transition: the in-memory aggregate
// only advances once disk has the change, so a persistence failure never
// leaves the screen ahead of what a restart would load.
func (s *Service) CompleteQuest(ctx context.Context, questID string) (*CompleteResult, error) {
	before := s.store.Snapshot()
	if before.User == nil {
		return nil, &ValidationError{Field: "user", Reason: "no user loaded"}
	}
	levelBefore := before.User.Level

	var quest *Quest
	for i := range before.Active {
		if before.Active[i].ID == questID {
			q := before.Active[i]
			quest = &q
			break
		}
	}
	if quest == nil {
		outcome := OutcomeNotFound
		if containsQuest(before.Completed, questID) {
			outcome = OutcomeAlreadyCompleted
		}
		s.log.Warn("quest completion ignored",
			zap.String("quest_id", questID),
			zap.String("outcome", outcome.String()))
		return &CompleteResult{
			Outcome:     outcome,
			LevelBefore: levelBefore,
			LevelAfter:  levelBefore,
		}, nil
	}

	now := time.Now().UTC()
	quest.Completed = true
	quest.CompletedAt = &now

	user := *before.User
	user.CourageExp += quest.Reward.CourageExp
	user.SocialExp += quest.Reward.SocialExp
	user.CompletedQuests++
	user.Level = Level(user.TotalExp())
	completed := append(copyQuests(before.Completed), *quest)
	unlocked := EvaluateAchievements(&user, completed, before.Records)

	if err := s.quests.MarkCompleted(ctx, questID, now); err != nil {
		return nil, err
	}
	if err := s.persistUser(ctx, &user); err != nil {
		return nil, err
	}

	s.store.Complete(questID, now)
	s.store.Dispatch(SetUser{User: &user})

	res := &CompleteResult{
		Outcome:         OutcomeCompleted,
		Quest:           quest,
		LevelBefore:     levelBefore,
		LevelAfter:      user.Level,
		LevelUp:         user.Level > levelBefore,
		NewAchievements: unlocked,
		ExpAwarded:      quest.Reward,
	}

	s.log.Info("quest completed",
		zap.String("quest_id", questID),
		zap.Int("courage_exp", res.ExpAwarded.CourageExp),
		zap.Int("social_exp", res.ExpAwarded.SocialExp),
		zap.Bool("level_up", res.LevelUp))
	return res, nil
}
