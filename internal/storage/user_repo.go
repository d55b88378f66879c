package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

const MainUserKey = "main_user"

type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) Get(ctx context.Context, key string) (*User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT key, nickname, level, social_exp, courage_exp,
			total_quests, completed_quests, achievements, created_at
		FROM users WHERE key = ?
	`, key)

	var u User
	var achievementsRaw sql.NullString
	if err := row.Scan(&u.Key, &u.Nickname, &u.Level, &u.SocialExp, &u.CourageExp,
		&u.TotalQuests, &u.CompletedQuests, &achievementsRaw, &u.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("user get: %w", err)
	}
	if achievementsRaw.Valid && achievementsRaw.String != "" {
		if err := json.Unmarshal([]byte(achievementsRaw.String), &u.Achievements); err != nil {
			return nil, fmt.Errorf("unmarshal achievements: %w", err)
		}
	}
	return &u, nil
}

func (r *UserRepo) GetOrCreateMain(ctx context.Context) (*User, error) {
	u, err := r.Get(ctx, MainUserKey)
	if err != nil {
		return nil, err
	}
	if u != nil {
		return u, nil
	}

	if _, err := r.db.ExecContext(ctx, `INSERT INTO users (key, nickname) VALUES (?, '모험가')`, MainUserKey); err != nil {
		return nil, fmt.Errorf("user insert: %w", err)
	}
	return r.Get(ctx, MainUserKey)
}

func (r *UserRepo) Update(ctx context.Context, u *User) error {
	var achievementsJSON *string
	if len(u.Achievements) > 0 {
		data, err := json.Marshal(u.Achievements)
		if err != nil {
			return fmt.Errorf("marshal achievements: %w", err)
		}
		s := string(data)
		achievementsJSON = &s
	}

	_, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET nickname = ?, level = ?, social_exp = ?, courage_exp = ?,
			total_quests = ?, completed_quests = ?, achievements = ?
		WHERE key = ?
	`, u.Nickname, u.Level, u.SocialExp, u.CourageExp,
		u.TotalQuests, u.CompletedQuests, achievementsJSON, u.Key)
	if err != nil {
		return fmt.Errorf("user update: %w", err)
	}
	return nil
}
