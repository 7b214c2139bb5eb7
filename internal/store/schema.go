package store

import (
	"context"
	"strings"
)

// Uniqueness lives in the schema: users.email, subscribers.email and the
// (user_id, game_id) pair on picks. Two concurrent submissions for the same
// pair race down to a single insert; the loser gets a 1062.
const schema = `
CREATE TABLE IF NOT EXISTS games (
	id BIGINT PRIMARY KEY,
	season INT NOT NULL,
	week INT NOT NULL,
	home_team VARCHAR(128) NOT NULL,
	away_team VARCHAR(128) NOT NULL,
	home_conference VARCHAR(64) NOT NULL DEFAULT '',
	away_conference VARCHAR(64) NOT NULL DEFAULT '',
	home_points INT NULL,
	away_points INT NULL,
	spread DOUBLE NULL,
	over_under DOUBLE NULL,
	start_date DATETIME NULL,
	venue VARCHAR(255) NOT NULL DEFAULT '',
	INDEX idx_games_season_week (season, week)
);

CREATE TABLE IF NOT EXISTS users (
	id CHAR(36) PRIMARY KEY,
	email VARCHAR(255) NOT NULL,
	password_hash VARCHAR(72) NOT NULL,
	name VARCHAR(128) NOT NULL DEFAULT '',
	favorite_team VARCHAR(128) NOT NULL DEFAULT '',
	created_at DATETIME NOT NULL,
	UNIQUE KEY uq_users_email (email)
);

CREATE TABLE IF NOT EXISTS picks (
	id CHAR(36) PRIMARY KEY,
	user_id CHAR(36) NOT NULL,
	game_id BIGINT NOT NULL,
	side ENUM('home','away') NOT NULL,
	spread DOUBLE NOT NULL,
	week INT NOT NULL,
	season INT NOT NULL,
	created_at DATETIME NOT NULL,
	UNIQUE KEY uq_picks_user_game (user_id, game_id),
	INDEX idx_picks_user (user_id)
);

CREATE TABLE IF NOT EXISTS subscribers (
	id CHAR(36) PRIMARY KEY,
	email VARCHAR(255) NOT NULL,
	created_at DATETIME NOT NULL,
	UNIQUE KEY uq_subscribers_email (email)
);
`

func (m *Mysql) CreateSchema(ctx context.Context) error {
	for _, stmt := range strings.Split(schema, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := m.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
