package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/nextgenscores/ngsapi/internal/config"
	"github.com/nextgenscores/ngsapi/pkg/model/v1model"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

type Mysql struct {
	db *sqlx.DB
}

func NewMySQL(cfg *config.Config) (*Mysql, error) {
	// MySQL Database setup
	myconf := mysql.Config{
		User:                 cfg.Mysql.User,
		Passwd:               cfg.Mysql.Passwd,
		Net:                  "tcp",
		Addr:                 cfg.Mysql.Host,
		DBName:               cfg.Mysql.DBName,
		AllowNativePasswords: true,
		ParseTime:            true,
	}

	db, err := sqlx.Open("mysql", myconf.FormatDSN())
	if err != nil {
		return nil, err
	}

	return &Mysql{db: db}, nil
}

func (m *Mysql) Close() error {
	return m.db.Close()
}

func (m *Mysql) Ping(ctx context.Context) error {
	return m.db.PingContext(ctx)
}

// ReplaceSeasonGames clears a season and upserts the fetched rows in one
// transaction. Upserting by id keeps repeated refreshes from duplicating
// games when the upstream data has not changed.
func (m *Mysql) ReplaceSeasonGames(ctx context.Context, season int, games []v1model.Game) error {
	tx, err := m.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM games WHERE season = ?`, season); err != nil {
		return err
	}

	stmt, err := tx.PrepareNamedContext(ctx, `
		INSERT INTO games (id, season, week, home_team, away_team, home_conference, away_conference,
			home_points, away_points, spread, over_under, start_date, venue)
		VALUES (:id, :season, :week, :home_team, :away_team, :home_conference, :away_conference,
			:home_points, :away_points, :spread, :over_under, :start_date, :venue)
		ON DUPLICATE KEY UPDATE
			season = VALUES(season), week = VALUES(week),
			home_team = VALUES(home_team), away_team = VALUES(away_team),
			home_conference = VALUES(home_conference), away_conference = VALUES(away_conference),
			home_points = VALUES(home_points), away_points = VALUES(away_points),
			spread = VALUES(spread), over_under = VALUES(over_under),
			start_date = VALUES(start_date), venue = VALUES(venue)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, game := range games {
		if _, err := stmt.ExecContext(ctx, game); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetGames lists games sorted by week. Zero season/week mean no filter.
func (m *Mysql) GetGames(ctx context.Context, season, week int) ([]v1model.Game, error) {
	query := `SELECT * FROM games WHERE 1=1`
	args := []interface{}{}
	if season != 0 {
		query += ` AND season = ?`
		args = append(args, season)
	}
	if week != 0 {
		query += ` AND week = ?`
		args = append(args, week)
	}
	query += ` ORDER BY week ASC, start_date ASC`

	var games []v1model.Game
	if err := m.db.SelectContext(ctx, &games, query, args...); err != nil {
		return nil, err
	}
	return games, nil
}

func (m *Mysql) GetGame(ctx context.Context, id int64) (v1model.Game, error) {
	var game v1model.Game
	err := m.db.GetContext(ctx, &game, `SELECT * FROM games WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return v1model.Game{}, ErrNotFound
	}
	return game, err
}

// GetGamesByConference returns games where either side belongs to the
// conference, sorted by week.
func (m *Mysql) GetGamesByConference(ctx context.Context, conference string) ([]v1model.Game, error) {
	var games []v1model.Game
	err := m.db.SelectContext(ctx, &games,
		`SELECT * FROM games WHERE home_conference = ? OR away_conference = ? ORDER BY week ASC, start_date ASC`,
		conference, conference)
	if err != nil {
		return nil, err
	}
	return games, nil
}

func (m *Mysql) CreateUser(ctx context.Context, user v1model.User) error {
	_, err := m.db.NamedExecContext(ctx, `
		INSERT INTO users (id, email, password_hash, name, favorite_team, created_at)
		VALUES (:id, :email, :password_hash, :name, :favorite_team, :created_at)`, user)
	if isDuplicateKey(err) {
		return ErrDuplicateEmail
	}
	return err
}

func (m *Mysql) GetUserByEmail(ctx context.Context, email string) (v1model.User, error) {
	var user v1model.User
	err := m.db.GetContext(ctx, &user, `SELECT * FROM users WHERE email = ?`, email)
	if errors.Is(err, sql.ErrNoRows) {
		return v1model.User{}, ErrNotFound
	}
	return user, err
}

func (m *Mysql) GetUserByID(ctx context.Context, id string) (v1model.User, error) {
	var user v1model.User
	err := m.db.GetContext(ctx, &user, `SELECT * FROM users WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return v1model.User{}, ErrNotFound
	}
	return user, err
}

func (m *Mysql) GetUsers(ctx context.Context) ([]v1model.User, error) {
	var users []v1model.User
	if err := m.db.SelectContext(ctx, &users, `SELECT * FROM users`); err != nil {
		return nil, err
	}
	return users, nil
}

// SavePick is a single conditional insert. The unique key on
// (user_id, game_id) rejects a second pick for the same pair, so there is no
// check-then-insert window.
func (m *Mysql) SavePick(ctx context.Context, pick v1model.Pick) error {
	_, err := m.db.NamedExecContext(ctx, `
		INSERT INTO picks (id, user_id, game_id, side, spread, week, season, created_at)
		VALUES (:id, :user_id, :game_id, :side, :spread, :week, :season, :created_at)`, pick)
	if isDuplicateKey(err) {
		return ErrDuplicatePick
	}
	return err
}

func (m *Mysql) GetPicksByUser(ctx context.Context, userID string) ([]v1model.Pick, error) {
	var picks []v1model.Pick
	err := m.db.SelectContext(ctx, &picks,
		`SELECT * FROM picks WHERE user_id = ? ORDER BY created_at ASC`, userID)
	if err != nil {
		return nil, err
	}
	return picks, nil
}

func (m *Mysql) GetPicks(ctx context.Context) ([]v1model.Pick, error) {
	var picks []v1model.Pick
	if err := m.db.SelectContext(ctx, &picks, `SELECT * FROM picks`); err != nil {
		return nil, err
	}
	return picks, nil
}

func (m *Mysql) CreateSubscriber(ctx context.Context, sub v1model.Subscriber) error {
	_, err := m.db.NamedExecContext(ctx, `
		INSERT INTO subscribers (id, email, created_at)
		VALUES (:id, :email, :created_at)`, sub)
	if isDuplicateKey(err) {
		return ErrDuplicateSubscriber
	}
	return err
}

func (m *Mysql) GetSubscribers(ctx context.Context) ([]v1model.Subscriber, error) {
	var subs []v1model.Subscriber
	if err := m.db.SelectContext(ctx, &subs, `SELECT * FROM subscribers`); err != nil {
		return nil, err
	}
	return subs, nil
}
