package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/voltline/backend/internal/models"
	"github.com/voltline/backend/internal/store"
)

type Store struct {
	Pool *pgxpool.Pool
}

var _ store.Store = (*Store)(nil)

func New(ctx context.Context, databaseURL string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &Store{Pool: pool}, nil
}

func (s *Store) Close() {
	s.Pool.Close()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.Pool.Ping(ctx)
}

// EnsureSchema creates the tables at process start if they are absent. There
// is no migration mechanism; the DDL is idempotent.
func (s *Store) EnsureSchema(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS service_requests (
			id BIGSERIAL PRIMARY KEY,
			full_name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT NOT NULL,
			address TEXT NOT NULL,
			service_type TEXT NOT NULL CHECK (service_type IN ('electrical','solar','both')),
			description TEXT NOT NULL,
			urgency TEXT NOT NULL DEFAULT '',
			customer_id TEXT NOT NULL DEFAULT '',
			technician_id TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending','in_progress','completed','cancelled')),
			lat DOUBLE PRECISION,
			lon DOUBLE PRECISION,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS technician_applications (
			id BIGSERIAL PRIMARY KEY,
			full_name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT NOT NULL,
			specialization TEXT NOT NULL CHECK (specialization IN ('electrical','solar','both')),
			years_experience INTEGER NOT NULL CHECK (years_experience >= 0),
			certifications TEXT NOT NULL DEFAULT '',
			cover_letter TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending','reviewing','accepted','rejected')),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS quotes (
			id BIGSERIAL PRIMARY KEY,
			request_id BIGINT NOT NULL,
			technician_id TEXT NOT NULL,
			amount DOUBLE PRECISION NOT NULL CHECK (amount > 0),
			labor_cost DOUBLE PRECISION,
			material_cost DOUBLE PRECISION,
			description TEXT NOT NULL,
			valid_until TIMESTAMPTZ NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending','accepted','rejected')),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}
	for _, stmt := range stmts {
		if _, err := s.Pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

const requestColumns = `id, full_name, email, phone, address, service_type, description, urgency, customer_id, technician_id, status, lat, lon, created_at`

func scanRequest(row pgx.Row) (models.ServiceRequest, error) {
	var r models.ServiceRequest
	err := row.Scan(&r.ID, &r.FullName, &r.Email, &r.Phone, &r.Address, &r.ServiceType, &r.Description,
		&r.Urgency, &r.CustomerID, &r.TechnicianID, &r.Status, &r.Lat, &r.Lon, &r.CreatedAt)
	return r, err
}

func (s *Store) CreateServiceRequest(ctx context.Context, r *models.ServiceRequest) error {
	return s.Pool.QueryRow(ctx, `
		INSERT INTO service_requests (full_name, email, phone, address, service_type, description, urgency, customer_id, technician_id, status, lat, lon, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
		RETURNING id
	`, r.FullName, r.Email, r.Phone, r.Address, r.ServiceType, r.Description, r.Urgency, r.CustomerID, r.TechnicianID, r.Status, r.Lat, r.Lon, r.CreatedAt).Scan(&r.ID)
}

func (s *Store) ListServiceRequests(ctx context.Context, f store.RequestFilter) ([]models.ServiceRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM service_requests`
	var args []any
	var wheres []string
	if f.CustomerID != "" {
		args = append(args, f.CustomerID)
		wheres = append(wheres, fmt.Sprintf("customer_id = $%d", len(args)))
	}
	if f.TechnicianID != "" {
		args = append(args, f.TechnicianID)
		wheres = append(wheres, fmt.Sprintf("technician_id = $%d", len(args)))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		wheres = append(wheres, fmt.Sprintf("status = $%d", len(args)))
	}
	if len(wheres) > 0 {
		query += " WHERE " + strings.Join(wheres, " AND ")
	}
	query += " ORDER BY created_at DESC, id DESC"

	rows, err := s.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.ServiceRequest
	for rows.Next() {
		r, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) GetServiceRequest(ctx context.Context, id int64) (models.ServiceRequest, error) {
	r, err := scanRequest(s.Pool.QueryRow(ctx, `SELECT `+requestColumns+` FROM service_requests WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.ServiceRequest{}, store.ErrNotFound
	}
	return r, err
}

func (s *Store) UpdateServiceRequestStatus(ctx context.Context, id int64, status string) (models.ServiceRequest, error) {
	r, err := scanRequest(s.Pool.QueryRow(ctx, `
		UPDATE service_requests SET status = $1 WHERE id = $2
		RETURNING `+requestColumns, status, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.ServiceRequest{}, store.ErrNotFound
	}
	return r, err
}

const applicationColumns = `id, full_name, email, phone, specialization, years_experience, certifications, cover_letter, status, created_at`

func scanApplication(row pgx.Row) (models.TechnicianApplication, error) {
	var a models.TechnicianApplication
	err := row.Scan(&a.ID, &a.FullName, &a.Email, &a.Phone, &a.Specialization, &a.YearsExperience,
		&a.Certifications, &a.CoverLetter, &a.Status, &a.CreatedAt)
	return a, err
}

func (s *Store) CreateApplication(ctx context.Context, a *models.TechnicianApplication) error {
	return s.Pool.QueryRow(ctx, `
		INSERT INTO technician_applications (full_name, email, phone, specialization, years_experience, certifications, cover_letter, status, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING id
	`, a.FullName, a.Email, a.Phone, a.Specialization, a.YearsExperience, a.Certifications, a.CoverLetter, a.Status, a.CreatedAt).Scan(&a.ID)
}

func (s *Store) ListApplications(ctx context.Context) ([]models.TechnicianApplication, error) {
	rows, err := s.Pool.Query(ctx, `SELECT `+applicationColumns+` FROM technician_applications ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.TechnicianApplication
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *Store) GetApplication(ctx context.Context, id int64) (models.TechnicianApplication, error) {
	a, err := scanApplication(s.Pool.QueryRow(ctx, `SELECT `+applicationColumns+` FROM technician_applications WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.TechnicianApplication{}, store.ErrNotFound
	}
	return a, err
}

func (s *Store) UpdateApplicationStatus(ctx context.Context, id int64, status string) (models.TechnicianApplication, error) {
	a, err := scanApplication(s.Pool.QueryRow(ctx, `
		UPDATE technician_applications SET status = $1 WHERE id = $2
		RETURNING `+applicationColumns, status, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.TechnicianApplication{}, store.ErrNotFound
	}
	return a, err
}

const quoteColumns = `id, request_id, technician_id, amount, labor_cost, material_cost, description, valid_until, status, created_at`

func scanQuote(row pgx.Row) (models.Quote, error) {
	var q models.Quote
	err := row.Scan(&q.ID, &q.RequestID, &q.TechnicianID, &q.Amount, &q.LaborCost, &q.MaterialCost,
		&q.Description, &q.ValidUntil, &q.Status, &q.CreatedAt)
	return q, err
}

func (s *Store) CreateQuote(ctx context.Context, q *models.Quote) error {
	return s.Pool.QueryRow(ctx, `
		INSERT INTO quotes (request_id, technician_id, amount, labor_cost, material_cost, description, valid_until, status, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING id
	`, q.RequestID, q.TechnicianID, q.Amount, q.LaborCost, q.MaterialCost, q.Description, q.ValidUntil, q.Status, q.CreatedAt).Scan(&q.ID)
}

func (s *Store) ListQuotes(ctx context.Context, f store.QuoteFilter) ([]models.Quote, error) {
	query := `SELECT ` + quoteColumns + ` FROM quotes`
	var args []any
	var wheres []string
	if f.RequestID != 0 {
		args = append(args, f.RequestID)
		wheres = append(wheres, fmt.Sprintf("request_id = $%d", len(args)))
	}
	if f.TechnicianID != "" {
		args = append(args, f.TechnicianID)
		wheres = append(wheres, fmt.Sprintf("technician_id = $%d", len(args)))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		wheres = append(wheres, fmt.Sprintf("status = $%d", len(args)))
	}
	if len(wheres) > 0 {
		query += " WHERE " + strings.Join(wheres, " AND ")
	}
	query += " ORDER BY created_at DESC, id DESC"

	rows, err := s.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Quote
	for rows.Next() {
		q, err := scanQuote(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

func (s *Store) GetQuote(ctx context.Context, id int64) (models.Quote, error) {
	q, err := scanQuote(s.Pool.QueryRow(ctx, `SELECT `+quoteColumns+` FROM quotes WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Quote{}, store.ErrNotFound
	}
	return q, err
}

func (s *Store) UpdateQuoteStatus(ctx context.Context, id int64, status string) (models.Quote, error) {
	q, err := scanQuote(s.Pool.QueryRow(ctx, `
		UPDATE quotes SET status = $1 WHERE id = $2
		RETURNING `+quoteColumns, status, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Quote{}, store.ErrNotFound
	}
	return q, err
}
