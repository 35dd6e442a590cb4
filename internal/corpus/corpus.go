// Package corpus stores generated fixtures in a sqlite database so
// interesting programs (and the verdicts they earned) survive across fuzzing
// runs and can be replayed against later compiler builds.
package corpus

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS fixtures (
	id         TEXT PRIMARY KEY,
	seed       INTEGER NOT NULL,
	profile    TEXT NOT NULL,
	program    TEXT NOT NULL,
	verdict    TEXT NOT NULL DEFAULT '',
	created_at INTEGER NOT NULL
);
`

// Fixture is one stored generated program.
type Fixture struct {
	ID        string
	Seed      int64
	Profile   string
	Program   string
	Verdict   string
	CreatedAt time.Time
}

// Store is a sqlite-backed fixture corpus.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) a corpus database. Use ":memory:" for
// an ephemeral store.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening corpus: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing corpus schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save stores a fixture and returns its generated id.
func (s *Store) Save(ctx context.Context, f Fixture) (string, error) {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO fixtures (id, seed, profile, program, verdict, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		f.ID, f.Seed, f.Profile, f.Program, f.Verdict, f.CreatedAt.Unix())
	if err != nil {
		return "", fmt.Errorf("saving fixture: %w", err)
	}
	return f.ID, nil
}

// Get fetches one fixture by id.
func (s *Store) Get(ctx context.Context, id string) (Fixture, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, seed, profile, program, verdict, created_at
		 FROM fixtures WHERE id = ?`, id)
	return scanFixture(row)
}

// List returns all fixtures, newest first.
func (s *Store) List(ctx context.Context) ([]Fixture, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, seed, profile, program, verdict, created_at
		 FROM fixtures ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("listing fixtures: %w", err)
	}
	defer rows.Close()

	var out []Fixture
	for rows.Next() {
		f, err := scanFixture(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing fixtures: %w", err)
	}
	return out, nil
}

// SetVerdict attaches a grading verdict to a stored fixture.
func (s *Store) SetVerdict(ctx context.Context, id, verdict string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE fixtures SET verdict = ? WHERE id = ?`, verdict, id)
	if err != nil {
		return fmt.Errorf("updating verdict: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating verdict: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("no fixture with id %s", id)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFixture(row rowScanner) (Fixture, error) {
	var f Fixture
	var created int64
	if err := row.Scan(&f.ID, &f.Seed, &f.Profile, &f.Program, &f.Verdict, &created); err != nil {
		return Fixture{}, fmt.Errorf("scanning fixture: %w", err)
	}
	f.CreatedAt = time.Unix(created, 0)
	return f, nil
}
