package engine

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"stepquest/internal/storage"
)

// Service ties the in-memory progression store to its SQLite persistence and
// to the external collaborators (quest generator, feedback client). All
// mutation flows through the store's transition protocol; the service writes
// to SQLite first and dispatches the transition only after the write lands,
// so the store never runs ahead of disk.
type Service struct {
	db       *sql.DB
	store    *Store
	users    *storage.UserRepo
	quests   *storage.QuestRepo
	records  *storage.RecordRepo
	gen      *Generator
	feedback FeedbackClient
	log      *zap.Logger
}

// Option configures optional Service collaborators.
type Option func(*Service)

func WithGenerator(g *Generator) Option {
	return func(s *Service) { s.gen = g }
}

func WithFeedbackClient(c FeedbackClient) Option {
	return func(s *Service) { s.feedback = c }
}

func WithLogger(log *zap.Logger) Option {
	return func(s *Service) { s.log = log }
}

func NewService(db *sql.DB, opts ...Option) *Service {
	s := &Service{
		db:      db,
		store:   NewStore(),
		users:   storage.NewUserRepo(db),
		quests:  storage.NewQuestRepo(db),
		records: storage.NewRecordRepo(db),
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.gen == nil {
		s.gen = NewGenerator(nil, nil, s.log)
	}
	return s
}

func (s *Service) Store() *Store                   { return s.store }
func (s *Service) UserRepo() *storage.UserRepo     { return s.users }
func (s *Service) QuestRepo() *storage.QuestRepo   { return s.quests }
func (s *Service) RecordRepo() *storage.RecordRepo { return s.records }

// Load hydrates the store from SQLite. Level is always recomputed from
// experience here; the persisted level column is only a cache.
func (s *Service) Load(ctx context.Context) (State, error) {
	u, err := s.users.GetOrCreateMain(ctx)
	if err != nil {
		return State{}, err
	}
	user := userFromRow(u)

	active, err := s.quests.ListActive(ctx)
	if err != nil {
		return State{}, err
	}
	completed, err := s.quests.ListCompleted(ctx)
	if err != nil {
		return State{}, err
	}
	records, err := s.records.ListAll(ctx)
	if err != nil {
		return State{}, err
	}

	s.store.Dispatch(SetUser{User: user})
	s.store.Dispatch(SetActiveQuests{Quests: questsFromRows(active)})
	s.store.Dispatch(seedCompletedQuests{Quests: questsFromRows(completed)})
	for _, rec := range records {
		s.store.Dispatch(AddEmotionRecord{Record: recordFromRow(rec)})
	}

	if user.Level != u.Level {
		// Repair a stale persisted level.
		if err := s.persistUser(ctx, user); err != nil {
			return State{}, err
		}
	}
	return s.store.Snapshot(), nil
}

// NewDay generates a fresh daily quest set for the user's level and replaces
// the active collection wholesale.
func (s *Service) NewDay(ctx context.Context, current *Location) ([]Quest, error) {
	st := s.store.Snapshot()
	if st.User == nil {
		return nil, fmt.Errorf("no user loaded")
	}

	quests := s.gen.GenerateDailyQuests(ctx, st.User.Level, current)
	u := *st.User
	u.TotalQuests += len(quests)

	// Persist first so a write failure leaves the store matching disk.
	if err := s.quests.ReplaceActive(ctx, questRows(quests, storage.QuestStatusActive)); err != nil {
		return nil, err
	}
	if err := s.persistUser(ctx, &u); err != nil {
		return nil, err
	}

	s.store.Dispatch(SetActiveQuests{Quests: quests})
	s.store.Dispatch(SetUser{User: &u})

	s.log.Info("daily quests generated",
		zap.Int("level", u.Level),
		zap.Int("count", len(quests)))
	return quests, nil
}

func (s *Service) persistUser(ctx context.Context, u *User) error {
	return s.users.Update(ctx, userRow(u))
}

// --- mapping between engine and storage types ---

func userFromRow(u *storage.User) *User {
	out := &User{
		ID:              u.Key,
		Nickname:        u.Nickname,
		SocialExp:       u.SocialExp,
		CourageExp:      u.CourageExp,
		TotalQuests:     u.TotalQuests,
		CompletedQuests: u.CompletedQuests,
		Achievements:    append([]string(nil), u.Achievements...),
		CreatedAt:       u.CreatedAt,
	}
	out.Level = Level(out.TotalExp())
	return out
}

func userRow(u *User) *storage.User {
	return &storage.User{
		Key:             u.ID,
		Nickname:        u.Nickname,
		Level:           u.Level,
		SocialExp:       u.SocialExp,
		CourageExp:      u.CourageExp,
		TotalQuests:     u.TotalQuests,
		CompletedQuests: u.CompletedQuests,
		Achievements:    append([]string(nil), u.Achievements...),
		CreatedAt:       u.CreatedAt,
	}
}

func questFromRow(q storage.Quest) Quest {
	out := Quest{
		ID:          q.ID,
		Title:       q.Title,
		Description: q.Description,
		Category:    Category(q.Category),
		Difficulty:  Difficulty(q.Difficulty),
		Reward:      Reward{CourageExp: q.RewardCourage, SocialExp: q.RewardSocial},
		Completed:   q.Status == storage.QuestStatusCompleted,
		CompletedAt: q.CompletedAt,
	}
	if q.TimeLimitMinutes != nil {
		out.TimeLimitMinutes = *q.TimeLimitMinutes
	}
	if q.Latitude != nil && q.Longitude != nil {
		loc := Location{Latitude: *q.Latitude, Longitude: *q.Longitude}
		if q.Address != nil {
			loc.Address = *q.Address
		}
		if q.PlaceName != nil {
			loc.PlaceName = *q.PlaceName
		}
		if q.PlaceCategory != nil {
			loc.Category = *q.PlaceCategory
		}
		out.Location = &loc
	}
	return out
}

func questsFromRows(rows []storage.Quest) []Quest {
	out := make([]Quest, 0, len(rows))
	for _, q := range rows {
		out = append(out, questFromRow(q))
	}
	return out
}

func questRow(q Quest, status string) storage.Quest {
	row := storage.Quest{
		ID:            q.ID,
		Title:         q.Title,
		Description:   q.Description,
		Category:      string(q.Category),
		Difficulty:    int(q.Difficulty),
		RewardCourage: q.Reward.CourageExp,
		RewardSocial:  q.Reward.SocialExp,
		Status:        status,
		CompletedAt:   q.CompletedAt,
	}
	if q.TimeLimitMinutes > 0 {
		v := q.TimeLimitMinutes
		row.TimeLimitMinutes = &v
	}
	if q.Location != nil {
		lat, lng := q.Location.Latitude, q.Location.Longitude
		row.Latitude = &lat
		row.Longitude = &lng
		if q.Location.Address != "" {
			v := q.Location.Address
			row.Address = &v
		}
		if q.Location.PlaceName != "" {
			v := q.Location.PlaceName
			row.PlaceName = &v
		}
		if q.Location.Category != "" {
			v := q.Location.Category
			row.PlaceCategory = &v
		}
	}
	return row
}

func questRows(qs []Quest, status string) []storage.Quest {
	out := make([]storage.Quest, 0, len(qs))
	for _, q := range qs {
		out = append(out, questRow(q, status))
	}
	return out
}

func recordRow(rec EmotionRecord) storage.EmotionRecord {
	return storage.EmotionRecord{
		ID:        rec.ID,
		QuestID:   rec.QuestID,
		Emotion:   string(rec.Emotion),
		Note:      rec.Note,
		Feedback:  rec.Feedback,
		CreatedAt: rec.CreatedAt,
	}
}

func recordFromRow(rec storage.EmotionRecord) EmotionRecord {
	return EmotionRecord{
		ID:        rec.ID,
		QuestID:   rec.QuestID,
		Emotion:   Emotion(rec.Emotion),
		Note:      rec.Note,
		Feedback:  rec.Feedback,
		CreatedAt: rec.CreatedAt,
	}
}
