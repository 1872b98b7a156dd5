package score

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for game history.
type Store struct {
	db *sql.DB
}

// OpenStore opens or creates the database and applies migrations.
func OpenStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS games (
			id INTEGER PRIMARY KEY,
			started_at TEXT NOT NULL,
			ended_at TEXT NOT NULL,
			strategy TEXT NOT NULL,
			score INTEGER NOT NULL,
			words INTEGER NOT NULL,
			best_word TEXT NOT NULL,
			best_word_points INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS game_letters (
			game_id INTEGER NOT NULL,
			letter TEXT NOT NULL,
			spawned INTEGER NOT NULL,
			used INTEGER NOT NULL,
			PRIMARY KEY (game_id, letter)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_games_ended_at ON games(ended_at);`,
		`CREATE INDEX IF NOT EXISTS idx_games_score ON games(score);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertGame stores a finished game and its per-letter traffic.
func (s *Store) InsertGame(ctx context.Context, rec GameRecord, counts []LetterCount) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO games (started_at, ended_at, strategy, score, words, best_word, best_word_points, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.StartedAt.Format(time.RFC3339Nano),
		rec.EndedAt.Format(time.RFC3339Nano),
		rec.Strategy,
		rec.Score,
		rec.Words,
		rec.BestWord,
		rec.BestWordPoints,
		rec.DurationMs,
	)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	if len(counts) > 0 {
		stmt, err := tx.PrepareContext(ctx,
			`INSERT INTO game_letters (game_id, letter, spawned, used)
			 VALUES (?, ?, ?, ?)`)
		if err != nil {
			return 0, err
		}
		defer func() {
			if cerr := stmt.Close(); cerr != nil {
				// Best-effort statement close.
				_ = cerr
			}
		}()
		for _, lc := range counts {
			if _, err := stmt.ExecContext(ctx, id, lc.Letter, lc.Spawned, lc.Used); err != nil {
				return 0, err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// ListGames returns games in chronological order. A positive limit
// keeps only the most recent games (still oldest first).
func (s *Store) ListGames(ctx context.Context, limit int) ([]GameRecord, error) {
	query := `SELECT id, started_at, ended_at, strategy, score, words, best_word, best_word_points, duration_ms
		FROM games ORDER BY ended_at ASC`
	args := []any{}
	if limit > 0 {
		query = `SELECT * FROM (
			SELECT id, started_at, ended_at, strategy, score, words, best_word, best_word_points, duration_ms
			FROM games ORDER BY ended_at DESC LIMIT ?
		) ORDER BY ended_at ASC`
		args = append(args, limit)
	}
	return s.queryGames(ctx, query, args...)
}

// TopGames returns the best games by score.
func (s *Store) TopGames(ctx context.Context, n int) ([]GameRecord, error) {
	if n <= 0 {
		return nil, nil
	}
	query := `SELECT id, started_at, ended_at, strategy, score, words, best_word, best_word_points, duration_ms
		FROM games ORDER BY score DESC, ended_at ASC LIMIT ?`
	return s.queryGames(ctx, query, n)
}

func (s *Store) queryGames(ctx context.Context, query string, args ...any) ([]GameRecord, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var games []GameRecord
	for rows.Next() {
		var rec GameRecord
		var startedAt, endedAt string
		if err := rows.Scan(&rec.ID, &startedAt, &endedAt, &rec.Strategy, &rec.Score,
			&rec.Words, &rec.BestWord, &rec.BestWordPoints, &rec.DurationMs); err != nil {
			return nil, err
		}
		if rec.StartedAt, err = time.Parse(time.RFC3339Nano, startedAt); err != nil {
			return nil, err
		}
		if rec.EndedAt, err = time.Parse(time.RFC3339Nano, endedAt); err != nil {
			return nil, err
		}
		games = append(games, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return games, nil
}

// LetterAggregates sums per-letter traffic over the most recent
// window games. Window <= 0 means all games.
func (s *Store) LetterAggregates(ctx context.Context, window int) ([]LetterAggregate, error) {
	query := `SELECT letter, SUM(spawned) AS spawned, SUM(used) AS used
		FROM game_letters GROUP BY letter ORDER BY letter ASC`
	args := []any{}
	if window > 0 {
		query = `WITH recent_games AS (
			SELECT id FROM games ORDER BY ended_at DESC LIMIT ?
		)
		SELECT gl.letter, SUM(gl.spawned) AS spawned, SUM(gl.used) AS used
		FROM game_letters gl
		JOIN recent_games r ON r.id = gl.game_id
		GROUP BY gl.letter ORDER BY gl.letter ASC`
		args = append(args, window)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []LetterAggregate
	for rows.Next() {
		var agg LetterAggregate
		if err := rows.Scan(&agg.Letter, &agg.Spawned, &agg.Used); err != nil {
			return nil, err
		}
		result = append(result, agg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
