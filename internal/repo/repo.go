package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

// Run is one stored analysis: the request and result as submitted, so
// past calculations can be reopened exactly as they were run.
type Run struct {
	ID        int             `json:"id"`
	UserID    int             `json:"user_id"`
	Label     string          `json:"label"`
	Request   json.RawMessage `json:"request"`
	Result    json.RawMessage `json:"result"`
	CreatedAt time.Time       `json:"created_at"`
}

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetBylogin(ctx context.Context, login string) (int, string, error)

	SaveRun(ctx context.Context, userID int, label string, request, result json.RawMessage) (int, error)
	ListRuns(ctx context.Context, userID, limit int) ([]Run, error)
	GetRun(ctx context.Context, userID, runID int) (Run, error)
	DeleteRun(ctx context.Context, userID, runID int) error
}

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresDB(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

func (r *PostgresRepository) GetBylogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string

	query := "SELECT id, password FROM users WHERE login=$1"

	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, "", nil
		}
		return 0, "", err
	}
	return id, hash, nil
}

func (r *PostgresRepository) SaveRun(ctx context.Context, userID int, label string, request, result json.RawMessage) (int, error) {
	var id int
	query := `INSERT INTO analysis_runs (user_id, label, request, result, created_at)
	          VALUES ($1, $2, $3, $4, NOW()) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, userID, label, request, result).Scan(&id)
	return id, err
}

func (r *PostgresRepository) ListRuns(ctx context.Context, userID, limit int) ([]Run, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	query := `SELECT id, user_id, label, request, result, created_at
	          FROM analysis_runs WHERE user_id=$1
	          ORDER BY created_at DESC LIMIT $2`
	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.UserID, &run.Label, &run.Request, &run.Result, &run.CreatedAt); err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

func (r *PostgresRepository) GetRun(ctx context.Context, userID, runID int) (Run, error) {
	var run Run
	query := `SELECT id, user_id, label, request, result, created_at
	          FROM analysis_runs WHERE id=$1 AND user_id=$2`
	err := r.db.QueryRowContext(ctx, query, runID, userID).
		Scan(&run.ID, &run.UserID, &run.Label, &run.Request, &run.Result, &run.CreatedAt)
	return run, err
}

func (r *PostgresRepository) DeleteRun(ctx context.Context, userID, runID int) error {
	query := "DELETE FROM analysis_runs WHERE id=$1 AND user_id=$2"
	_, err := r.db.ExecContext(ctx, query, runID, userID)
	return err
}
