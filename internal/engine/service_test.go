package engine

import (
	"context"
	"errors"
	"math/rand"
	"path/filepath"
	"testing"

	"stepquest/internal/storage"
)

func newTestService(t *testing.T, opts ...Option) (*Service, func()) {
	t.Helper()
	ctx := context.Background()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")
	db, err := storage.Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	svc := NewService(db, opts...)
	if _, err := svc.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	cleanup := func() {
		_ = db.Close()
	}
	return svc, cleanup
}

func seededOpts(seed int64) []Option {
	return []Option{WithGenerator(NewGenerator(rand.New(rand.NewSource(seed)), nil, nil))}
}

func TestLoadCreatesMainUser(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()

	state := svc.Store().Snapshot()
	if state.User == nil {
		t.Fatalf("no user after load")
	}
	if state.User.Level != 1 {
		t.Fatalf("fresh user level=%d, want 1", state.User.Level)
	}
	if len(state.Active) != 0 || len(state.Completed) != 0 {
		t.Fatalf("fresh user has quests: active=%d completed=%d", len(state.Active), len(state.Completed))
	}
}

func TestNewDayGeneratesAndPersists(t *testing.T) {
	svc, cleanup := newTestService(t, seededOpts(1)...)
	defer cleanup()
	ctx := context.Background()

	quests, err := svc.NewDay(ctx, nil)
	if err != nil {
		t.Fatalf("NewDay: %v", err)
	}
	if len(quests) == 0 {
		t.Fatalf("no quests generated")
	}

	state := svc.Store().Snapshot()
	if len(state.Active) != len(quests) {
		t.Fatalf("store active=%d, want %d", len(state.Active), len(quests))
	}
	if state.User.TotalQuests != len(quests) {
		t.Fatalf("totalQuests=%d, want %d", state.User.TotalQuests, len(quests))
	}

	rows, err := svc.QuestRepo().ListActive(ctx)
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if len(rows) != len(quests) {
		t.Fatalf("db active=%d, want %d", len(rows), len(quests))
	}
}

func TestNewDayReplacesActiveKeepsCompleted(t *testing.T) {
	svc, cleanup := newTestService(t, seededOpts(2)...)
	defer cleanup()
	ctx := context.Background()

	first, err := svc.NewDay(ctx, nil)
	if err != nil {
		t.Fatalf("first NewDay: %v", err)
	}
	if _, err := svc.CompleteQuest(ctx, first[0].ID); err != nil {
		t.Fatalf("complete: %v", err)
	}

	if _, err := svc.NewDay(ctx, nil); err != nil {
		t.Fatalf("second NewDay: %v", err)
	}

	state := svc.Store().Snapshot()
	if len(state.Completed) != 1 || state.Completed[0].ID != first[0].ID {
		t.Fatalf("completed quest lost across NewDay: %v", state.Completed)
	}
	for _, q := range state.Active {
		if q.ID == first[0].ID {
			t.Fatalf("completed quest resurrected into active set")
		}
	}
}

func TestCompleteQuestFullFlow(t *testing.T) {
	svc, cleanup := newTestService(t, seededOpts(3)...)
	defer cleanup()
	ctx := context.Background()

	quests, err := svc.NewDay(ctx, nil)
	if err != nil {
		t.Fatalf("NewDay: %v", err)
	}
	q := quests[0]

	res, err := svc.CompleteQuest(ctx, q.ID)
	if err != nil {
		t.Fatalf("CompleteQuest: %v", err)
	}
	if res.Outcome != OutcomeCompleted {
		t.Fatalf("outcome=%v, want completed", res.Outcome)
	}
	if res.ExpAwarded != q.Reward {
		t.Fatalf("awarded=%+v, want %+v", res.ExpAwarded, q.Reward)
	}
	found := false
	for _, id := range res.NewAchievements {
		if id == "first_steps" {
			found = true
		}
	}
	if !found {
		t.Fatalf("first completion did not unlock first_steps: %v", res.NewAchievements)
	}

	row, err := svc.QuestRepo().Get(ctx, q.ID)
	if err != nil {
		t.Fatalf("get quest: %v", err)
	}
	if row.Status != storage.QuestStatusCompleted || row.CompletedAt == nil {
		t.Fatalf("row not persisted as completed: %+v", row)
	}

	u, err := svc.UserRepo().Get(ctx, storage.MainUserKey)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if u.SocialExp != q.Reward.SocialExp || u.CourageExp != q.Reward.CourageExp {
		t.Fatalf("persisted exp=%d/%d, want %d/%d", u.SocialExp, u.CourageExp, q.Reward.SocialExp, q.Reward.CourageExp)
	}
	if u.CompletedQuests != 1 {
		t.Fatalf("persisted completedQuests=%d, want 1", u.CompletedQuests)
	}
}

func TestCompleteQuestUnknownIDIsLenient(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()

	res, err := svc.CompleteQuest(context.Background(), "missing")
	if err != nil {
		t.Fatalf("CompleteQuest returned error: %v", err)
	}
	if res.Outcome != OutcomeNotFound {
		t.Fatalf("outcome=%v, want not_found", res.Outcome)
	}
	if res.LevelBefore != res.LevelAfter {
		t.Fatalf("no-op changed level: %d -> %d", res.LevelBefore, res.LevelAfter)
	}
}

func TestCompleteQuestDoubleCompleteNoDoubleAward(t *testing.T) {
	svc, cleanup := newTestService(t, seededOpts(4)...)
	defer cleanup()
	ctx := context.Background()

	quests, err := svc.NewDay(ctx, nil)
	if err != nil {
		t.Fatalf("NewDay: %v", err)
	}
	q := quests[0]

	if _, err := svc.CompleteQuest(ctx, q.ID); err != nil {
		t.Fatalf("first complete: %v", err)
	}
	res, err := svc.CompleteQuest(ctx, q.ID)
	if err != nil {
		t.Fatalf("second complete: %v", err)
	}
	if res.Outcome != OutcomeAlreadyCompleted {
		t.Fatalf("outcome=%v, want already_completed", res.Outcome)
	}

	state := svc.Store().Snapshot()
	if got := state.User.TotalExp(); got != q.Reward.Total() {
		t.Fatalf("totalExp=%d, want %d (single award)", got, q.Reward.Total())
	}
}

type failingFeedback struct{}

func (failingFeedback) GenerateEmotionFeedback(ctx context.Context, emotion Emotion, contextText string) (string, error) {
	return "", errors.New("model unavailable")
}

func TestRecordEmotionValidatesAndDegrades(t *testing.T) {
	svc, cleanup := newTestService(t, WithFeedbackClient(failingFeedback{}))
	defer cleanup()
	ctx := context.Background()

	if _, err := svc.RecordEmotion(ctx, "q1", Emotion("rage"), ""); err == nil {
		t.Fatalf("expected validation error for unknown emotion")
	} else {
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("error type=%T, want *ValidationError", err)
		}
	}

	rec, err := svc.RecordEmotion(ctx, "q1", EmotionConfident, "해냈다")
	if err != nil {
		t.Fatalf("RecordEmotion: %v", err)
	}
	if rec.Feedback != DefaultFeedback(EmotionConfident) {
		t.Fatalf("feedback=%q, want default fallback", rec.Feedback)
	}

	rows, err := svc.RecordRepo().ListAll(ctx)
	if err != nil {
		t.Fatalf("list records: %v", err)
	}
	if len(rows) != 1 || rows[0].Note != "해냈다" {
		t.Fatalf("record not persisted: %v", rows)
	}
}

func TestPersistFailureLeavesStoreUnchanged(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "test.db")

	db, err := storage.Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	svc := NewService(db, seededOpts(6)...)
	if _, err := svc.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	quests, err := svc.NewDay(ctx, nil)
	if err != nil {
		t.Fatalf("NewDay: %v", err)
	}
	before := svc.Store().Snapshot()

	// Kill the DB so every write fails.
	_ = db.Close()

	if _, err := svc.CompleteQuest(ctx, quests[0].ID); err == nil {
		t.Fatalf("expected error completing with closed db")
	}
	after := svc.Store().Snapshot()
	if len(after.Active) != len(before.Active) || len(after.Completed) != 0 {
		t.Fatalf("store moved quest despite failed write: active=%d completed=%d", len(after.Active), len(after.Completed))
	}
	if after.User.TotalExp() != before.User.TotalExp() {
		t.Fatalf("store awarded exp despite failed write: %d -> %d", before.User.TotalExp(), after.User.TotalExp())
	}

	if _, err := svc.RecordEmotion(ctx, quests[0].ID, EmotionHappy, "메모"); err == nil {
		t.Fatalf("expected error recording with closed db")
	}
	if got := len(svc.Store().Snapshot().Records); got != 0 {
		t.Fatalf("store kept record despite failed write: %d", got)
	}

	if _, err := svc.NewDay(ctx, nil); err == nil {
		t.Fatalf("expected error generating with closed db")
	}
	after = svc.Store().Snapshot()
	if len(after.Active) != len(before.Active) || after.User.TotalQuests != before.User.TotalQuests {
		t.Fatalf("store replaced quests despite failed write")
	}
}

func TestStateSurvivesReload(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")

	db, err := storage.Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	svc := NewService(db, seededOpts(5)...)
	if _, err := svc.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}

	quests, err := svc.NewDay(ctx, nil)
	if err != nil {
		t.Fatalf("NewDay: %v", err)
	}
	if _, err := svc.CompleteQuest(ctx, quests[0].ID); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if _, err := svc.RecordEmotion(ctx, quests[0].ID, EmotionHappy, "좋았다"); err != nil {
		t.Fatalf("record: %v", err)
	}
	_ = db.Close()

	db2, err := storage.Open(ctx, path)
	if err != nil {
		t.Fatalf("reopen db: %v", err)
	}
	defer db2.Close()
	svc2 := NewService(db2)
	state, err := svc2.Load(ctx)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}

	if len(state.Completed) != 1 || state.Completed[0].ID != quests[0].ID {
		t.Fatalf("completed not restored: %v", state.Completed)
	}
	if len(state.Active) != len(quests)-1 {
		t.Fatalf("active=%d, want %d", len(state.Active), len(quests)-1)
	}
	if len(state.Records) != 1 || state.Records[0].Emotion != EmotionHappy {
		t.Fatalf("records not restored: %v", state.Records)
	}
	if state.User.TotalExp() != quests[0].Reward.Total() {
		t.Fatalf("exp not restored: %d, want %d", state.User.TotalExp(), quests[0].Reward.Total())
	}
	if state.User.Level != Level(state.User.TotalExp()) {
		t.Fatalf("level %d inconsistent with exp %d", state.User.Level, state.User.TotalExp())
	}
}
