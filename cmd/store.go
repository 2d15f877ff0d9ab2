package cmd

import (
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/chriserin/ftlint/internal/db"
)

var errNotInitialized = errors.New("run `ftlint init` first")

// openStore opens an existing database; it never creates one.
func openStore(path string) (*sql.DB, *db.Store, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil, errNotInitialized
	}
	sqlDB, err := db.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}
	return sqlDB, db.NewStore(sqlDB), nil
}
