package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/chriserin/ftlint/internal/report"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// LoadSpellCache reads every cached word with its suggestions. An empty list
// marks a word known to be correct.
func (s *Store) LoadSpellCache() (map[string][]string, error) {
	rows, err := s.db.Query(`SELECT word, suggestions FROM spell_cache`)
	if err != nil {
		return nil, fmt.Errorf("querying spell cache: %w", err)
	}
	defer rows.Close()

	entries := make(map[string][]string)
	for rows.Next() {
		var word, raw string
		if err := rows.Scan(&word, &raw); err != nil {
			return nil, fmt.Errorf("scanning spell cache row: %w", err)
		}
		var suggestions []string
		if err := json.Unmarshal([]byte(raw), &suggestions); err != nil {
			return nil, fmt.Errorf("decoding suggestions for %q: %w", word, err)
		}
		if suggestions == nil {
			suggestions = []string{}
		}
		entries[word] = suggestions
	}
	return entries, rows.Err()
}

// SaveSpellCache upserts entries in a single transaction.
func (s *Store) SaveSpellCache(entries map[string][]string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning spell cache save: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO spell_cache (word, suggestions) VALUES (?, ?)
		ON CONFLICT(word) DO UPDATE SET suggestions = excluded.suggestions, updated_at = datetime('now')`)
	if err != nil {
		return fmt.Errorf("preparing spell cache insert: %w", err)
	}
	defer stmt.Close()

	for word, suggestions := range entries {
		if suggestions == nil {
			suggestions = []string{}
		}
		raw, err := json.Marshal(suggestions)
		if err != nil {
			return fmt.Errorf("encoding suggestions for %q: %w", word, err)
		}
		if _, err := stmt.Exec(word, string(raw)); err != nil {
			return fmt.Errorf("saving %q: %w", word, err)
		}
	}
	return tx.Commit()
}

// ClearSpellCache removes every cached word and returns how many there were.
func (s *Store) ClearSpellCache() (int64, error) {
	res, err := s.db.Exec(`DELETE FROM spell_cache`)
	if err != nil {
		return 0, fmt.Errorf("clearing spell cache: %w", err)
	}
	return res.RowsAffected()
}

// AddCustomWords stores words lowercased and trimmed, ignoring blanks and
// words already present. It returns the number of words added.
func (s *Store) AddCustomWords(words ...string) (int, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning custom word insert: %w", err)
	}
	defer tx.Rollback()

	added := 0
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		res, err := tx.Exec(`INSERT OR IGNORE INTO custom_words (word) VALUES (?)`, w)
		if err != nil {
			return 0, fmt.Errorf("inserting %q: %w", w, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("inserting %q: %w", w, err)
		}
		added += int(n)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing custom words: %w", err)
	}
	return added, nil
}

// CustomWords returns the custom dictionary in alphabetical order.
func (s *Store) CustomWords() ([]string, error) {
	rows, err := s.db.Query(`SELECT word FROM custom_words ORDER BY word`)
	if err != nil {
		return nil, fmt.Errorf("querying custom words: %w", err)
	}
	defer rows.Close()

	var words []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, fmt.Errorf("scanning custom word: %w", err)
		}
		words = append(words, w)
	}
	return words, rows.Err()
}

// Run is one analysed file of one check invocation.
type Run struct {
	RunID       string
	FilePath    string
	FeatureType string
	TotalErrors int
	CreatedAt   string
}

// RecordRun stores one history row per report under runID.
func (s *Store) RecordRun(runID string, reports []*report.Report) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning run insert: %w", err)
	}
	defer tx.Rollback()

	for _, r := range reports {
		_, err := tx.Exec(`INSERT INTO runs (run_id, file_path, feature_type, total_errors) VALUES (?, ?, ?, ?)`,
			runID, r.Filename, string(r.FeatureType), r.TotalErrors())
		if err != nil {
			return fmt.Errorf("inserting run for %s: %w", r.Filename, err)
		}
	}
	return tx.Commit()
}

// Runs returns up to limit history rows, newest first. A limit of zero or
// less returns everything.
func (s *Store) Runs(limit int) ([]Run, error) {
	query := `SELECT run_id, file_path, feature_type, total_errors, created_at FROM runs ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.RunID, &r.FilePath, &r.FeatureType, &r.TotalErrors, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning run row: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

type Stats struct {
	CachedWords int
	Misspelled  int
	CustomWords int
	Runs        int
}

func (s *Store) Stats() (Stats, error) {
	var st Stats
	queries := []struct {
		dst *int
		sql string
	}{
		{&st.CachedWords, `SELECT COUNT(*) FROM spell_cache`},
		{&st.Misspelled, `SELECT COUNT(*) FROM spell_cache WHERE suggestions <> '[]'`},
		{&st.CustomWords, `SELECT COUNT(*) FROM custom_words`},
		{&st.Runs, `SELECT COUNT(DISTINCT run_id) FROM runs`},
	}
	for _, q := range queries {
		if err := s.db.QueryRow(q.sql).Scan(q.dst); err != nil {
			return Stats{}, fmt.Errorf("counting: %w", err)
		}
	}
	return st, nil
}
