package storage

import (
	"context"
	"database/sql"
	"fmt"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			key TEXT PRIMARY KEY,
			nickname TEXT NOT NULL DEFAULT '',
			level INTEGER DEFAULT 1,
			social_exp INTEGER DEFAULT 0,
			courage_exp INTEGER DEFAULT 0,
			total_quests INTEGER DEFAULT 0,
			completed_quests INTEGER DEFAULT 0,
			achievements TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS quests (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT,
			category TEXT NOT NULL,
			difficulty INTEGER DEFAULT 1,

			latitude REAL,
			longitude REAL,
			address TEXT,
			place_name TEXT,
			place_category TEXT,

			reward_courage INTEGER NOT NULL,
			reward_social INTEGER NOT NULL,

			status TEXT DEFAULT 'active',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			completed_at DATETIME,
			time_limit_minutes INTEGER
		);`,
		`CREATE TABLE IF NOT EXISTS emotion_records (
			id TEXT PRIMARY KEY,
			quest_id TEXT NOT NULL,
			emotion TEXT NOT NULL,
			note TEXT,
			feedback TEXT,
			created_at DATETIME NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_quests_status ON quests(status);`,
		`CREATE INDEX IF NOT EXISTS idx_quests_category ON quests(category);`,
		`CREATE INDEX IF NOT EXISTS idx_emotion_records_quest_id ON emotion_records(quest_id);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
