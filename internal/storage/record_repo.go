package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// RecordRepo stores emotion journal entries. Records are insert-only; there
// is deliberately no update or delete.
type RecordRepo struct {
	db *sql.DB
}

func NewRecordRepo(db *sql.DB) *RecordRepo {
	return &RecordRepo{db: db}
}

func (r *RecordRepo) Insert(ctx context.Context, rec EmotionRecord) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO emotion_records (id, quest_id, emotion, note, feedback, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.QuestID, rec.Emotion, rec.Note, rec.Feedback, rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("record insert: %w", err)
	}
	return nil
}

func (r *RecordRepo) ListAll(ctx context.Context) ([]EmotionRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, quest_id, emotion, note, feedback, created_at
		FROM emotion_records
		ORDER BY created_at ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("record list: %w", err)
	}
	defer rows.Close()

	var out []EmotionRecord
	for rows.Next() {
		var rec EmotionRecord
		var note, feedback sql.NullString
		if err := rows.Scan(&rec.ID, &rec.QuestID, &rec.Emotion, &note, &feedback, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("record scan: %w", err)
		}
		rec.Note = note.String
		rec.Feedback = feedback.String
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("record rows: %w", err)
	}
	return out, nil
}

func (r *RecordRepo) CountByQuest(ctx context.Context, questID string) (int, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM emotion_records WHERE quest_id = ?
	`, questID)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("record count: %w", err)
	}
	return n, nil
}
