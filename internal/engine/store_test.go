package engine

import (
	"testing"
	"time"
)

func newTestUser(social, courage int) *User {
	return &User{
		ID:         "u1",
		Nickname:   "용감한 모험가",
		SocialExp:  social,
		CourageExp: courage,
		Level:      Level(social + courage),
	}
}

func testQuest(id string, cat Category, r Reward) Quest {
	return Quest{
		ID:         id,
		Title:      "quest " + id,
		Category:   cat,
		Difficulty: DifficultyEasy,
		Reward:     r,
	}
}

func TestCompleteMovesQuestAndAwardsReward(t *testing.T) {
	st := NewStore()
	st.Dispatch(SetUser{User: newTestUser(0, 0)})
	st.Dispatch(SetActiveQuests{Quests: []Quest{
		testQuest("a", CategoryNearby, Reward{SocialExp: 10, CourageExp: 5}),
		testQuest("b", CategoryNearby, Reward{SocialExp: 15, CourageExp: 5}),
	}})

	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	out, state := st.Complete("a", at)
	if out != OutcomeCompleted {
		t.Fatalf("outcome=%v, want completed", out)
	}
	if len(state.Active) != 1 || state.Active[0].ID != "b" {
		t.Fatalf("active=%v, want only b", state.Active)
	}
	if len(state.Completed) != 1 || state.Completed[0].ID != "a" {
		t.Fatalf("completed=%v, want only a", state.Completed)
	}
	if !state.Completed[0].Completed || state.Completed[0].CompletedAt == nil || !state.Completed[0].CompletedAt.Equal(at) {
		t.Fatalf("completed quest not stamped: %+v", state.Completed[0])
	}
	if state.User.SocialExp != 10 || state.User.CourageExp != 5 {
		t.Fatalf("exp=%d/%d, want 10/5", state.User.SocialExp, state.User.CourageExp)
	}
	if state.User.CompletedQuests != 1 {
		t.Fatalf("completedQuests=%d, want 1", state.User.CompletedQuests)
	}
}

func TestCompleteTwiceAwardsOnce(t *testing.T) {
	st := NewStore()
	st.Dispatch(SetUser{User: newTestUser(0, 0)})
	st.Dispatch(AddQuest{Quest: testQuest("a", CategoryCourage, Reward{SocialExp: 5, CourageExp: 20})})

	out, _ := st.Complete("a", time.Time{})
	if out != OutcomeCompleted {
		t.Fatalf("first outcome=%v, want completed", out)
	}
	out, state := st.Complete("a", time.Time{})
	if out != OutcomeAlreadyCompleted {
		t.Fatalf("second outcome=%v, want already_completed", out)
	}
	if got := state.User.TotalExp(); got != 25 {
		t.Fatalf("totalExp=%d, want 25 (single award)", got)
	}
	if len(state.Completed) != 1 {
		t.Fatalf("completed count=%d, want 1", len(state.Completed))
	}
}

func TestCompleteUnknownIDIsNoOp(t *testing.T) {
	st := NewStore()
	st.Dispatch(SetUser{User: newTestUser(40, 0)})
	st.Dispatch(AddQuest{Quest: testQuest("a", CategoryNearby, Reward{SocialExp: 10})})

	before := st.Snapshot()
	out, after := st.Complete("nope", time.Time{})
	if out != OutcomeNotFound {
		t.Fatalf("outcome=%v, want not_found", out)
	}
	if after.User.TotalExp() != before.User.TotalExp() {
		t.Fatalf("exp changed on not_found: %d -> %d", before.User.TotalExp(), after.User.TotalExp())
	}
	if len(after.Active) != 1 || len(after.Completed) != 0 {
		t.Fatalf("membership changed on not_found: active=%d completed=%d", len(after.Active), len(after.Completed))
	}
}

func TestCompleteCrossesLevelBoundary(t *testing.T) {
	st := NewStore()
	st.Dispatch(SetUser{User: newTestUser(60, 30)})
	st.Dispatch(AddQuest{Quest: testQuest("a", CategorySocial, Reward{SocialExp: 15, CourageExp: 10})})

	if lvl := st.Snapshot().User.Level; lvl != 1 {
		t.Fatalf("level before=%d, want 1", lvl)
	}
	_, state := st.Complete("a", time.Time{})
	if state.User.Level != 2 {
		t.Fatalf("level after=%d, want 2", state.User.Level)
	}
	if got := CurrentLevelExp(state.User.TotalExp()); got != 15 {
		t.Fatalf("currentLevelExp=%d, want 15", got)
	}
}

func TestAwardExperienceNeverMovesQuests(t *testing.T) {
	st := NewStore()
	st.Dispatch(SetUser{User: newTestUser(0, 0)})
	st.Dispatch(SetActiveQuests{Quests: []Quest{testQuest("a", CategoryNearby, Reward{})}})

	state := st.Dispatch(AwardExperience{SocialExp: 250, CourageExp: 50})
	if len(state.Active) != 1 || len(state.Completed) != 0 {
		t.Fatalf("membership changed: active=%d completed=%d", len(state.Active), len(state.Completed))
	}
	if state.User.Level != 4 {
		t.Fatalf("level=%d, want 4 for 300 exp", state.User.Level)
	}
}

func TestSetActiveQuestsLeavesCompletedAlone(t *testing.T) {
	st := NewStore()
	st.Dispatch(SetUser{User: newTestUser(0, 0)})
	st.Dispatch(AddQuest{Quest: testQuest("old", CategoryNearby, Reward{SocialExp: 10})})
	st.Complete("old", time.Time{})

	state := st.Dispatch(SetActiveQuests{Quests: []Quest{testQuest("new", CategoryNearby, Reward{})}})
	if len(state.Completed) != 1 || state.Completed[0].ID != "old" {
		t.Fatalf("completed=%v, want old preserved", state.Completed)
	}
	if len(state.Active) != 1 || state.Active[0].ID != "new" {
		t.Fatalf("active=%v, want new", state.Active)
	}
}

func TestCollectionsStayDisjoint(t *testing.T) {
	st := NewStore()
	st.Dispatch(SetUser{User: newTestUser(0, 0)})
	q := testQuest("a", CategoryNearby, Reward{SocialExp: 10, CourageExp: 5})
	st.Dispatch(AddQuest{Quest: q})
	st.Complete("a", time.Time{})

	// Re-adding a completed id must not revive it.
	state := st.Dispatch(AddQuest{Quest: q})
	if containsQuest(state.Active, "a") {
		t.Fatalf("completed quest revived into active by AddQuest")
	}

	// A wholesale replace carrying a completed id must drop it.
	state = st.Dispatch(SetActiveQuests{Quests: []Quest{q, testQuest("b", CategoryNearby, Reward{})}})
	if containsQuest(state.Active, "a") {
		t.Fatalf("completed quest revived into active by SetActiveQuests")
	}
	if !containsQuest(state.Active, "b") {
		t.Fatalf("fresh quest dropped by SetActiveQuests")
	}

	// Completing again goes through the already-completed path, no re-award.
	out, state := st.Complete("a", time.Time{})
	if out != OutcomeAlreadyCompleted {
		t.Fatalf("outcome=%v, want already_completed", out)
	}
	if got := state.User.TotalExp(); got != 15 {
		t.Fatalf("totalExp=%d, want 15 (single award)", got)
	}
	if len(state.Completed) != 1 {
		t.Fatalf("completed count=%d, want 1", len(state.Completed))
	}
}

func TestAddQuestIgnoresDuplicateActiveID(t *testing.T) {
	st := NewStore()
	st.Dispatch(AddQuest{Quest: testQuest("a", CategoryNearby, Reward{})})
	state := st.Dispatch(AddQuest{Quest: testQuest("a", CategoryNearby, Reward{})})
	if len(state.Active) != 1 {
		t.Fatalf("active count=%d, want 1", len(state.Active))
	}
}

func TestSetUserRepairsStaleLevel(t *testing.T) {
	st := NewStore()
	u := newTestUser(150, 60)
	u.Level = 1 // stale persisted value
	state := st.Dispatch(SetUser{User: u})
	if state.User.Level != 3 {
		t.Fatalf("level=%d, want 3 recomputed from 210 exp", state.User.Level)
	}
}

func TestSnapshotIsIsolatedCopy(t *testing.T) {
	st := NewStore()
	st.Dispatch(SetUser{User: newTestUser(0, 0)})
	st.Dispatch(AddQuest{Quest: testQuest("a", CategoryNearby, Reward{})})

	snap := st.Snapshot()
	snap.Active[0].Title = "mutated"
	snap.User.SocialExp = 999

	fresh := st.Snapshot()
	if fresh.Active[0].Title == "mutated" {
		t.Fatalf("snapshot mutation leaked into store")
	}
	if fresh.User.SocialExp != 0 {
		t.Fatalf("snapshot user mutation leaked into store")
	}
}

func TestLoadingAndErrorFlags(t *testing.T) {
	st := NewStore()
	state := st.Dispatch(SetLoading{Loading: true})
	if !state.Loading {
		t.Fatalf("loading not set")
	}
	state = st.Dispatch(SetError{Err: "boom"})
	if state.Err != "boom" {
		t.Fatalf("err=%q, want boom", state.Err)
	}
	state = st.Dispatch(SetLoading{Loading: false})
	if state.Loading {
		t.Fatalf("loading not cleared")
	}
}

func TestCompleteOutcomeString(t *testing.T) {
	if OutcomeCompleted.String() != "completed" ||
		OutcomeNotFound.String() != "not_found" ||
		OutcomeAlreadyCompleted.String() != "already_completed" {
		t.Fatalf("unexpected outcome strings")
	}
}
