package engine

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RecordEmotion writes a journal entry for a completed quest. Feedback comes
// from the configured client when one is set; any generation failure degrades
// to the built-in per-emotion message and is logged, never surfaced.
//
// The only hard failure is validation: a missing or unknown emotion returns a
// ValidationError so the UI can prompt the user.
func (s *Service) RecordEmotion(ctx context.Context, questID string, emotion Emotion, note string) (*EmotionRecord, error) {
	if !emotion.IsValid() {
		return nil, &ValidationError{Field: "emotion", Reason: "select one of the six emotions"}
	}

	feedback := s.generateFeedback(ctx, emotion)

	rec := EmotionRecord{
		ID:        uuid.NewString(),
		QuestID:   questID,
		Emotion:   emotion,
		Note:      note,
		Feedback:  feedback,
		CreatedAt: time.Now().UTC(),
	}

	// Insert first; the store only sees records that made it to disk.
	if err := s.records.Insert(ctx, recordRow(rec)); err != nil {
		return nil, err
	}
	s.store.Dispatch(AddEmotionRecord{Record: rec})
	return &rec, nil
}

func (s *Service) generateFeedback(ctx context.Context, emotion Emotion) string {
	if s.feedback == nil {
		return DefaultFeedback(emotion)
	}
	msg, err := s.feedback.GenerateEmotionFeedback(ctx, emotion, "퀘스트를 완료했습니다")
	if err != nil {
		s.log.Warn("feedback generation failed, using default",
			zap.String("emotion", string(emotion)),
			zap.Error(err))
		return DefaultFeedback(emotion)
	}
	return msg
}
