package storage

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"svw.info/sudoku-engine/internal/domain"
)

//go:embed schema.sql
var schemaSQL string

// SQLite persists puzzles in a single-file database.
// WAL mode allows concurrent reads while one writer is active.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite creates or opens the database at path and applies the schema.
// Safe to call repeatedly.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	// SQLite supports one writer at a time; keep the pool at one connection
	// to avoid SQLITE_BUSY errors.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("execute %q: %w", pragma, err)
		}
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Save inserts or replaces the puzzle row. Saving the same ID twice
// overwrites the earlier row.
func (s *SQLite) Save(ctx context.Context, p *domain.Puzzle) error {
	if p == nil || p.ID == "" {
		return errors.New("invalid puzzle: missing ID")
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO puzzles (id, name, notes, grid, fixed, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			notes = excluded.notes,
			grid = excluded.grid,
			fixed = excluded.fixed
	`, p.ID, p.Name, p.Notes, encodeGrid(&p.Board), encodeFixed(&p.Board), p.CreatedAt)
	if err != nil {
		return fmt.Errorf("save puzzle %s: %w", p.ID, err)
	}
	return nil
}

func (s *SQLite) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, notes, grid, fixed, created_at FROM puzzles WHERE id = ?
	`, id)

	var p domain.Puzzle
	var grid, fixed string
	if err := row.Scan(&p.ID, &p.Name, &p.Notes, &grid, &fixed, &p.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("puzzle %s: %w", id, sql.ErrNoRows)
		}
		return nil, fmt.Errorf("load puzzle %s: %w", id, err)
	}
	b, err := decodeGrid(grid, fixed)
	if err != nil {
		return nil, fmt.Errorf("load puzzle %s: %w", id, err)
	}
	p.Board = *b
	return &p, nil
}

func (s *SQLite) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, created_at FROM puzzles ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list puzzles: %w", err)
	}
	defer rows.Close()

	var out []domain.PuzzleMeta
	for rows.Next() {
		var m domain.PuzzleMeta
		if err := rows.Scan(&m.ID, &m.Name, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("list puzzles: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list puzzles: %w", err)
	}
	return out, nil
}

// encodeGrid flattens the board into 81 row-major characters.
func encodeGrid(b *domain.Board) string {
	return strings.Join(b.Rows(), "")
}

func encodeFixed(b *domain.Board) string {
	var sb strings.Builder
	sb.Grow(81)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Fixed[r][c] {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
	}
	return sb.String()
}

func decodeGrid(grid, fixed string) (*domain.Board, error) {
	if len(grid) != 81 {
		return nil, fmt.Errorf("grid column is %d chars, want 81", len(grid))
	}
	rows := make([]string, 9)
	for r := 0; r < 9; r++ {
		rows[r] = grid[r*9 : r*9+9]
	}
	b, err := domain.ParseRows(rows)
	if err != nil {
		return nil, err
	}
	// The fixed mask from the database wins over the parser's inference.
	if len(fixed) == 81 {
		for r := 0; r < 9; r++ {
			for c := 0; c < 9; c++ {
				b.Fixed[r][c] = fixed[r*9+c] == '1'
			}
		}
	}
	return b, nil
}
