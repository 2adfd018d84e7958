// CLI tool to run pending database migrations from db/ (or MIGRATIONS_DIR).
// Checks the migrations table to skip already-applied files.
// Wraps each migration + record insert in a single transaction.
// Usage: go run ./cmd/migrate
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

var datePrefix = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}-\d{3}-`)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("no .env loaded, using process environment")
	}

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, os.Getenv("DB_URL"))
	if err != nil {
		log.Fatal().Err(err).Msg("unable to connect to database")
	}
	defer conn.Close(ctx)

	dbDir := os.Getenv("MIGRATIONS_DIR")
	if dbDir == "" {
		dbDir = "db"
	}

	ran, err := migrate(ctx, conn, dbDir, log)
	if err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}
	if ran == 0 {
		log.Info().Msg("no pending migrations")
	} else {
		log.Info().Int("applied", ran).Msg("migrations applied")
	}
}

// migrate applies every file in dbDir not yet recorded in the migrations
// table, in filename order, and returns how many ran.
func migrate(ctx context.Context, conn *pgx.Conn, dbDir string, log zerolog.Logger) (int, error) {
	files, err := filepath.Glob(filepath.Join(dbDir, "*.sql"))
	if err != nil {
		return 0, err
	}
	if len(files) == 0 {
		return 0, fmt.Errorf("no migration files found in %s", dbDir)
	}

	applied, err := appliedMigrations(ctx, conn)
	if err != nil {
		return 0, err
	}

	ran := 0
	for _, f := range pending(files, applied) {
		filename := filepath.Base(f)
		content, err := os.ReadFile(f)
		if err != nil {
			return ran, fmt.Errorf("reading %s: %w", filename, err)
		}
		if err := apply(ctx, conn, filename, string(content)); err != nil {
			return ran, err
		}
		log.Info().Str("file", filename).Msg("applied")
		ran++
	}
	return ran, nil
}

// appliedMigrations returns the recorded migration filenames. A fresh
// database has no migrations table yet and yields an empty set.
func appliedMigrations(ctx context.Context, conn *pgx.Conn) (map[string]bool, error) {
	applied := make(map[string]bool)
	var exists bool
	if err := conn.QueryRow(ctx, "SELECT to_regclass('migrations') IS NOT NULL").Scan(&exists); err != nil {
		return nil, fmt.Errorf("checking migrations table: %w", err)
	}
	if !exists {
		return applied, nil
	}

	rows, err := conn.Query(ctx, "SELECT migration FROM migrations")
	if err != nil {
		return nil, fmt.Errorf("reading applied migrations: %w", err)
	}
	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("reading applied migrations: %w", err)
	}
	for _, name := range names {
		applied[name] = true
	}
	return applied, nil
}

// pending returns the files whose base name isn't in applied, sorted.
func pending(files []string, applied map[string]bool) []string {
	sorted := append([]string(nil), files...)
	sort.Strings(sorted)
	out := make([]string, 0, len(sorted))
	for _, f := range sorted {
		if !applied[filepath.Base(f)] {
			out = append(out, f)
		}
	}
	return out
}

// apply runs one migration and records it in the same transaction.
func apply(ctx context.Context, conn *pgx.Conn, filename, sql string) error {
	tx, err := conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, sql); err != nil {
		return fmt.Errorf("running %s: %w", filename, err)
	}
	if _, err := tx.Exec(ctx,
		"INSERT INTO migrations (migration, description) VALUES ($1, $2)",
		filename, descriptionFromFilename(filename)); err != nil {
		return fmt.Errorf("recording %s: %w", filename, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing %s: %w", filename, err)
	}
	return nil
}

// descriptionFromFilename strips the YYYY-MM-DD-NNN- prefix and .sql suffix.
func descriptionFromFilename(filename string) string {
	name := strings.TrimSuffix(filename, ".sql")
	name = datePrefix.ReplaceAllString(name, "")
	return strings.ReplaceAll(name, "-", " ")
}
