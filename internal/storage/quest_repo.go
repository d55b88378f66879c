package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

const (
	QuestStatusActive    = "active"
	QuestStatusCompleted = "completed"
)

type QuestRepo struct {
	db *sql.DB
}

func NewQuestRepo(db *sql.DB) *QuestRepo {
	return &QuestRepo{db: db}
}

const questColumns = `id, title, description, category, difficulty,
	latitude, longitude, address, place_name, place_category,
	reward_courage, reward_social,
	status, created_at, completed_at, time_limit_minutes`

func (r *QuestRepo) Insert(ctx context.Context, q Quest) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO quests (
			id, title, description, category, difficulty,
			latitude, longitude, address, place_name, place_category,
			reward_courage, reward_social,
			status, completed_at, time_limit_minutes
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, q.ID, q.Title, q.Description, q.Category, q.Difficulty,
		q.Latitude, q.Longitude, q.Address, q.PlaceName, q.PlaceCategory,
		q.RewardCourage, q.RewardSocial,
		q.Status, q.CompletedAt, q.TimeLimitMinutes)
	if err != nil {
		return fmt.Errorf("quest insert: %w", err)
	}
	return nil
}

// ReplaceActive deletes the current active set and inserts the given quests
// in one transaction. Completed quests are untouched.
func (r *QuestRepo) ReplaceActive(ctx context.Context, quests []Quest) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM quests WHERE status = ?`, QuestStatusActive); err != nil {
		return fmt.Errorf("clear active quests: %w", err)
	}
	for _, q := range quests {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO quests (
				id, title, description, category, difficulty,
				latitude, longitude, address, place_name, place_category,
				reward_courage, reward_social,
				status, completed_at, time_limit_minutes
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, q.ID, q.Title, q.Description, q.Category, q.Difficulty,
			q.Latitude, q.Longitude, q.Address, q.PlaceName, q.PlaceCategory,
			q.RewardCourage, q.RewardSocial,
			QuestStatusActive, nil, q.TimeLimitMinutes); err != nil {
			return fmt.Errorf("insert active quest: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	committed = true
	return nil
}

func (r *QuestRepo) MarkCompleted(ctx context.Context, id string, completedAt time.Time) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE quests SET status = ?, completed_at = ? WHERE id = ?
	`, QuestStatusCompleted, completedAt, id)
	if err != nil {
		return fmt.Errorf("quest mark completed: %w", err)
	}
	return nil
}

func (r *QuestRepo) Get(ctx context.Context, id string) (*Quest, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+questColumns+` FROM quests WHERE id = ?`, id)
	return scanQuestRow(row)
}

func (r *QuestRepo) ListByStatus(ctx context.Context, status string) ([]Quest, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+questColumns+` FROM quests WHERE status = ? ORDER BY created_at ASC, id ASC
	`, status)
	if err != nil {
		return nil, fmt.Errorf("quest list: %w", err)
	}
	defer rows.Close()

	var out []Quest
	for rows.Next() {
		q, err := scanQuestRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("quest list rows: %w", err)
	}
	return out, nil
}

func (r *QuestRepo) ListActive(ctx context.Context) ([]Quest, error) {
	return r.ListByStatus(ctx, QuestStatusActive)
}

func (r *QuestRepo) ListCompleted(ctx context.Context) ([]Quest, error) {
	return r.ListByStatus(ctx, QuestStatusCompleted)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanQuestRow(row scanner) (*Quest, error) {
	var (
		q             Quest
		description   sql.NullString
		latitude      sql.NullFloat64
		longitude     sql.NullFloat64
		address       sql.NullString
		placeName     sql.NullString
		placeCategory sql.NullString
		completedAt   sql.NullTime
		timeLimit     sql.NullInt64
	)

	if err := row.Scan(
		&q.ID, &q.Title, &description, &q.Category, &q.Difficulty,
		&latitude, &longitude, &address, &placeName, &placeCategory,
		&q.RewardCourage, &q.RewardSocial,
		&q.Status, &q.CreatedAt, &completedAt, &timeLimit,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("quest scan: %w", err)
	}

	if description.Valid {
		q.Description = description.String
	}
	if latitude.Valid {
		v := latitude.Float64
		q.Latitude = &v
	}
	if longitude.Valid {
		v := longitude.Float64
		q.Longitude = &v
	}
	if address.Valid {
		v := address.String
		q.Address = &v
	}
	if placeName.Valid {
		v := placeName.String
		q.PlaceName = &v
	}
	if placeCategory.Valid {
		v := placeCategory.String
		q.PlaceCategory = &v
	}
	if completedAt.Valid {
		v := completedAt.Time
		q.CompletedAt = &v
	}
	if timeLimit.Valid {
		v := int(timeLimit.Int64)
		q.TimeLimitMinutes = &v
	}
	return &q, nil
}
