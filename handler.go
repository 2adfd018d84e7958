package main

import (
	"context"
	"errors"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// Handler holds shared dependencies (db pool, logger) for all route handlers.
// Calculation routes never touch db, so tests construct Handler without one.
type Handler struct {
	db  *pgxpool.Pool
	log zerolog.Logger
}

// userIDKey is the gin context key set by authMiddleware.
const userIDKey = "user_id"

/* ─── Database helpers ────────────────────────────────────────────────── */

// queryOne runs a query and scans the first row into T using RowToStructByName.
// Scan errors usually mean a struct/column mismatch, so they are logged with the SQL.
func queryOne[T any](h *Handler, c *gin.Context, sql string, args pgx.NamedArgs) (T, error) {
	rows, err := h.db.Query(c, sql, args)
	if err != nil {
		h.log.Error().Err(err).Str("sql", sql).Msg("queryOne: query failed")
		var zero T
		return zero, err
	}
	result, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		h.log.Error().Err(err).Str("sql", sql).Msg("queryOne: scan failed")
	}
	return result, err
}

// queryMany runs a query and scans all rows into []T using RowToStructByName.
func queryMany[T any](h *Handler, c *gin.Context, sql string, args pgx.NamedArgs) ([]T, error) {
	rows, err := h.db.Query(c, sql, args)
	if err != nil {
		h.log.Error().Err(err).Str("sql", sql).Msg("queryMany: query failed")
		return nil, err
	}
	results, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		h.log.Error().Err(err).Str("sql", sql).Msg("queryMany: scan failed")
	}
	return results, err
}

// apiError returns a consistent JSON error response: {"error": "message"}.
func apiError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// requestLogger returns a sub-logger tagged with the route and the caller,
// handed to the nutrition engine for its diagnostics.
func (h *Handler) requestLogger(c *gin.Context) zerolog.Logger {
	return h.log.With().
		Str("route", c.FullPath()).
		Int(userIDKey, c.GetInt(userIDKey)).
		Logger()
}

/* ─── Server setup ────────────────────────────────────────────────────── */

// getDBPool creates a connection pool. We use a pool (not a single conn) because
// Neon closes idle connections after ~5 minutes.
func getDBPool(log zerolog.Logger) *pgxpool.Pool {
	config, err := pgxpool.ParseConfig(os.Getenv("DB_URL"))
	if err != nil {
		log.Fatal().Err(err).Msg("unable to parse DB_URL")
	}
	// Simple protocol avoids "cached plan must not change result type" after
	// migrations change a table the server has already prepared against.
	config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal().Err(err).Msg("unable to connect to database")
	}
	log.Info().Msg("DB pool ready")
	return pool
}

// registerRoutes registers all API routes on the router.
func (h *Handler) registerRoutes(router *gin.Engine) {
	// Public routes
	router.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.POST("/api/login", h.login)

	// Authenticated routes
	api := router.Group("/api", h.authMiddleware())
	api.GET("/profile", h.getProfile)
	api.PATCH("/profile", h.patchProfile)

	api.POST("/nutrition/bmr", h.calculateBMR)
	api.POST("/nutrition/tdee", h.calculateTDEE)
	api.POST("/nutrition/macros", h.calculateMacros)
	api.POST("/nutrition/plan", h.calculatePlan)
	api.POST("/convert/height", h.convertHeight)
	api.POST("/convert/weight", h.convertWeight)

	api.GET("/weight-log", h.getWeightLog)
	api.POST("/weight-log", h.upsertWeightEntry)
	api.PUT("/weight-log/:id", h.updateWeightEntry)
	api.DELETE("/weight-log/:id", h.deleteWeightEntry)
}
