package engine

import (
	"sync"
	"time"
)

// State is the progression aggregate: the current user, the two disjoint
// quest collections, the journal, and transient UI flags. A quest id appears
// in at most one of Active/Completed at any time.
type State struct {
	User       *User
	Active     []Quest
	Completed  []Quest
	Records    []EmotionRecord
	Simulation *Simulation
	Loading    bool
	Err        string
}

// Msg is the closed set of store transitions. The marker method seals the
// set so every transition is written in one place.
type Msg interface{ isMsg() }

type SetUser struct{ User *User }

// SetActiveQuests replaces the active collection wholesale. Quests already
// completed stay where they are; an incoming quest whose id is already in the
// completed collection is dropped so no id lives in both.
type SetActiveQuests struct{ Quests []Quest }

// AddQuest appends one quest to the active collection. Ids already present
// in either collection are ignored.
type AddQuest struct{ Quest Quest }

type CompleteQuest struct {
	ID string
	At time.Time
}

type SetSimulation struct{ Simulation *Simulation }

type AddEmotionRecord struct{ Record EmotionRecord }

type SetLoading struct{ Loading bool }

type SetError struct{ Err string }

// AwardExperience adjusts experience only. It never moves a quest between
// collections; CompleteQuest is the sole membership transition.
type AwardExperience struct {
	SocialExp  int
	CourageExp int
}

// seedCompletedQuests replaces the completed collection during state
// hydration. Only the service's Load path uses it.
type seedCompletedQuests struct{ Quests []Quest }

func (SetUser) isMsg()          {}
func (SetActiveQuests) isMsg()  {}
func (AddQuest) isMsg()         {}
func (CompleteQuest) isMsg()    {}
func (SetSimulation) isMsg()    {}
func (AddEmotionRecord) isMsg() {}
func (SetLoading) isMsg()       {}
func (SetError) isMsg()         {}
func (AwardExperience) isMsg()  {}

func (seedCompletedQuests) isMsg() {}

// CompleteOutcome tags the result of a CompleteQuest transition. NotFound and
// AlreadyCompleted are observable no-ops: state is unchanged and callers may
// log the anomaly without interrupting the user.
type CompleteOutcome int

const (
	OutcomeCompleted CompleteOutcome = iota
	OutcomeNotFound
	OutcomeAlreadyCompleted
)

func (o CompleteOutcome) String() string {
	switch o {
	case OutcomeCompleted:
		return "completed"
	case OutcomeNotFound:
		return "not_found"
	case OutcomeAlreadyCompleted:
		return "already_completed"
	default:
		return "unknown"
	}
}

// Store is the single-writer progression state container. All mutation goes
// through Dispatch; transitions are total, applied atomically under the lock,
// and never error. Construct one per process with NewStore — there is no
// ambient instance.
type Store struct {
	mu    sync.Mutex
	state State
}

func NewStore() *Store {
	return &Store{}
}

// Snapshot returns a copy of the current state safe to read while other
// goroutines dispatch.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyState(s.state)
}

// Dispatch applies one transition and returns the resulting state. Unknown
// message types are a no-op.
func (s *Store) Dispatch(msg Msg) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state, _ = apply(s.state, msg)
	return copyState(s.state)
}

// Complete applies the CompleteQuest transition and reports its tagged
// outcome alongside the resulting state.
func (s *Store) Complete(questID string, at time.Time) (CompleteOutcome, State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out CompleteOutcome
	s.state, out = apply(s.state, CompleteQuest{ID: questID, At: at})
	return out, copyState(s.state)
}

// apply is the reducer: a total function from (state, message) to the next
// state. It never panics and never partially applies.
func apply(st State, msg Msg) (State, CompleteOutcome) {
	switch m := msg.(type) {
	case SetUser:
		st.User = m.User
		if st.User != nil {
			st.User.Level = Level(st.User.TotalExp())
		}
	case SetActiveQuests:
		active := make([]Quest, 0, len(m.Quests))
		for _, q := range m.Quests {
			if !containsQuest(st.Completed, q.ID) {
				active = append(active, q)
			}
		}
		st.Active = active
	case AddQuest:
		if containsQuest(st.Active, m.Quest.ID) || containsQuest(st.Completed, m.Quest.ID) {
			break
		}
		st.Active = append(copyQuests(st.Active), m.Quest)
	case CompleteQuest:
		return applyComplete(st, m)
	case SetSimulation:
		st.Simulation = m.Simulation
	case AddEmotionRecord:
		st.Records = append(copyRecords(st.Records), m.Record)
	case SetLoading:
		st.Loading = m.Loading
	case SetError:
		st.Err = m.Err
	case seedCompletedQuests:
		st.Completed = append([]Quest(nil), m.Quests...)
	case AwardExperience:
		if st.User != nil {
			u := *st.User
			u.SocialExp += m.SocialExp
			u.CourageExp += m.CourageExp
			u.Level = Level(u.TotalExp())
			st.User = &u
		}
	}
	return st, OutcomeCompleted
}

func applyComplete(st State, m CompleteQuest) (State, CompleteOutcome) {
	idx := -1
	for i := range st.Active {
		if st.Active[i].ID == m.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		for i := range st.Completed {
			if st.Completed[i].ID == m.ID {
				return st, OutcomeAlreadyCompleted
			}
		}
		return st, OutcomeNotFound
	}

	q := st.Active[idx]
	at := m.At
	if at.IsZero() {
		at = time.Now().UTC()
	}
	q.Completed = true
	q.CompletedAt = &at

	active := make([]Quest, 0, len(st.Active)-1)
	active = append(active, st.Active[:idx]...)
	active = append(active, st.Active[idx+1:]...)
	st.Active = active
	st.Completed = append(copyQuests(st.Completed), q)

	if st.User != nil {
		u := *st.User
		u.CourageExp += q.Reward.CourageExp
		u.SocialExp += q.Reward.SocialExp
		u.CompletedQuests++
		u.Level = Level(u.TotalExp())
		st.User = &u
	}
	return st, OutcomeCompleted
}

func copyState(st State) State {
	out := st
	out.Active = copyQuests(st.Active)
	out.Completed = copyQuests(st.Completed)
	out.Records = copyRecords(st.Records)
	if st.User != nil {
		u := *st.User
		u.Achievements = append([]string(nil), st.User.Achievements...)
		out.User = &u
	}
	return out
}

func containsQuest(qs []Quest, id string) bool {
	for i := range qs {
		if qs[i].ID == id {
			return true
		}
	}
	return false
}

func copyQuests(qs []Quest) []Quest {
	return append([]Quest(nil), qs...)
}

func copyRecords(rs []EmotionRecord) []EmotionRecord {
	return append([]EmotionRecord(nil), rs...)
}
