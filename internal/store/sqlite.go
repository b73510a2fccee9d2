package store

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"

	"github.com/dmitrijs2005/cali/internal/filex"
	"github.com/dmitrijs2005/cali/internal/logging"
	"github.com/dmitrijs2005/cali/internal/nutrition"
	"github.com/dmitrijs2005/cali/internal/store/migrations"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// SQLiteFileName is the database file of the SQLite backend.
const SQLiteFileName = "cali_data.db"

// SQLiteStore keeps one row per date in the daily_records table.
type SQLiteStore struct {
	db *sql.DB
}

// RunMigrations brings the schema up to date using the embedded migrations.
func RunMigrations(ctx context.Context, db *sql.DB, log logging.Logger) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(newGooseLogger(log))

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// NewSQLiteStore opens (creating if needed) dir/cali_data.db and migrates it.
func NewSQLiteStore(ctx context.Context, dir string, log logging.Logger) (*SQLiteStore, error) {
	abs, err := filex.EnsureDir(dir)
	if err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(abs, SQLiteFileName))
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := RunMigrations(ctx, db, log); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Load(ctx context.Context) ([]nutrition.DailyRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT date, calories, water, protein, carbs, fat FROM daily_records ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to select records: %w", err)
	}
	defer rows.Close()

	result := []nutrition.DailyRecord{}
	for rows.Next() {
		var r nutrition.DailyRecord
		if err := rows.Scan(&r.Date, &r.Calories, &r.Water, &r.Protein, &r.Carbs, &r.Fat); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		result = append(result, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate records: %w", err)
	}
	return result, nil
}

// Save replaces the table contents in one transaction. A date repeated in
// records keeps its last occurrence.
func (s *SQLiteStore) Save(ctx context.Context, records []nutrition.DailyRecord) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM daily_records`); err != nil {
			return fmt.Errorf("failed to clear records: %w", err)
		}

		const query = `INSERT INTO daily_records (date, calories, water, protein, carbs, fat)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT(date) DO UPDATE SET calories = excluded.calories,
				water = excluded.water,
				protein = excluded.protein,
				carbs = excluded.carbs,
				fat = excluded.fat`

		for _, r := range records {
			if _, err := tx.ExecContext(ctx, query, r.Date, r.Calories, r.Water, r.Protein, r.Carbs, r.Fat); err != nil {
				return fmt.Errorf("failed to insert record %s: %w", r.Date, err)
			}
		}
		return nil
	})
}

// withTx commits when fn succeeds and rolls back on error or panic.
func (s *SQLiteStore) withTx(ctx context.Context, fn func(tx *sql.Tx) error) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	return fn(tx)
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
