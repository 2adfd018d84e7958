// CLI tool to create a user with a bcrypt-hashed password and an empty profile.
// Usage: go run ./cmd/create-user
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"lg/stride-fitness-api/nutrition"
)

type newUser struct {
	Username string
	Email    string
	Password string
	Units    string
}

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

	u, err := prompt(bufio.NewReader(os.Stdin), os.Stdout)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid input")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("error hashing password")
	}
	authToken := uuid.New().String()

	tx, err := conn.Begin(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("error starting transaction")
	}
	defer tx.Rollback(ctx)

	var userID int
	err = tx.QueryRow(ctx,
		`INSERT INTO users (username, email, password, auth_token)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		u.Username, u.Email, string(hash), authToken,
	).Scan(&userID)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating user")
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO profiles (user_id, units) VALUES ($1, $2)`, userID, u.Units); err != nil {
		log.Fatal().Err(err).Msg("error creating profile")
	}
	if err := tx.Commit(ctx); err != nil {
		log.Fatal().Err(err).Msg("error committing user")
	}

	fmt.Printf("\nUser created successfully!\n")
	fmt.Printf("  ID:         %d\n", userID)
	fmt.Printf("  Username:   %s\n", u.Username)
	fmt.Printf("  Units:      %s\n", u.Units)
	fmt.Printf("  Auth Token: %s\n", authToken)
}

// prompt reads the new user's details line by line from r, writing prompts to w.
func prompt(r *bufio.Reader, w io.Writer) (newUser, error) {
	ask := func(label string) string {
		fmt.Fprint(w, label)
		line, _ := r.ReadString('\n')
		return strings.TrimSpace(line)
	}

	u := newUser{
		Username: ask("Username: "),
		Email:    ask("Email: "),
		Password: ask("Password: "),
	}
	if u.Username == "" || u.Password == "" {
		return newUser{}, fmt.Errorf("username and password are required")
	}

	units, err := parseUnits(ask("Units (metric/imperial) [metric]: "))
	if err != nil {
		return newUser{}, err
	}
	u.Units = units
	return u, nil
}

// parseUnits maps the units answer to a unit system; blank means metric.
func parseUnits(answer string) (string, error) {
	switch strings.ToLower(answer) {
	case "", "m", nutrition.Metric:
		return nutrition.Metric, nil
	case "i", nutrition.Imperial:
		return nutrition.Imperial, nil
	default:
		return "", fmt.Errorf("units must be metric or imperial, got %q", answer)
	}
}
