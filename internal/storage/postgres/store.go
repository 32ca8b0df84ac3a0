package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gigbook/gigbook-be/internal/models"
	"github.com/gigbook/gigbook-be/internal/storage"
)

// Ensure Store satisfies the storage.Store interface at compile time.
var _ storage.Store = (*Store)(nil)

const uniqueViolation = "23505"

// Store provides Postgres-backed persistence for the marketplace.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore creates a new Store and runs migrations.
func NewStore(ctx context.Context, databaseURL string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	s := &Store{pool: pool}
	if err := s.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return s, nil
}

// Close releases database resources.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *Store) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS profiles (
			id TEXT PRIMARY KEY,
			username TEXT UNIQUE NOT NULL,
			email TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT '',
			account_type TEXT NOT NULL DEFAULT 'unassigned',
			is_suspended BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE TABLE IF NOT EXISTS gigs (
			id TEXT PRIMARY KEY,
			client_id TEXT NOT NULL REFERENCES profiles(id),
			title TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'open',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE INDEX IF NOT EXISTS gigs_client_idx ON gigs (client_id);`,
		`CREATE TABLE IF NOT EXISTS applications (
			id TEXT PRIMARY KEY,
			gig_id TEXT NOT NULL REFERENCES gigs(id),
			talent_id TEXT NOT NULL REFERENCES profiles(id),
			status TEXT NOT NULL DEFAULT 'new',
			admin_notes TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE INDEX IF NOT EXISTS applications_gig_idx ON applications (gig_id);`,
		`CREATE INDEX IF NOT EXISTS applications_talent_idx ON applications (talent_id);`,
		`CREATE TABLE IF NOT EXISTS bookings (
			id TEXT PRIMARY KEY,
			application_id TEXT UNIQUE NOT NULL REFERENCES applications(id),
			gig_id TEXT NOT NULL REFERENCES gigs(id),
			talent_id TEXT NOT NULL REFERENCES profiles(id),
			client_id TEXT NOT NULL REFERENCES profiles(id),
			booking_date TEXT NOT NULL DEFAULT '',
			compensation NUMERIC(12,2),
			notes TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT 'confirmed',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE INDEX IF NOT EXISTS bookings_pair_idx ON bookings (client_id, talent_id);`,
	}
	for _, stmt := range stmts {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
	}
	return nil
}

// CreateProfile inserts a new profile row.
func (s *Store) CreateProfile(ctx context.Context, profile models.Profile) (models.Profile, error) {
	const query = `
	INSERT INTO profiles (id, username, email, password_hash, role, account_type, is_suspended)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING id, username, email, password_hash, role, account_type, is_suspended, created_at;
	`
	row := s.pool.QueryRow(ctx, query,
		profile.ID, profile.Username, profile.Email, profile.PasswordHash,
		profile.Role, profile.AccountType, profile.IsSuspended)
	created, err := scanProfile(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return models.Profile{}, storage.ErrAlreadyExists
		}
		return models.Profile{}, err
	}
	return created, nil
}

// ProfileByID fetches a profile by id.
func (s *Store) ProfileByID(ctx context.Context, id string) (models.Profile, error) {
	const query = `
	SELECT id, username, email, password_hash, role, account_type, is_suspended, created_at
	FROM profiles WHERE id = $1;
	`
	return scanProfile(s.pool.QueryRow(ctx, query, id))
}

// ProfileByUsernameOrEmail fetches the first profile matching the identifier.
func (s *Store) ProfileByUsernameOrEmail(ctx context.Context, identifier string) (models.Profile, error) {
	const query = `
	SELECT id, username, email, password_hash, role, account_type, is_suspended, created_at
	FROM profiles WHERE username = $1 OR email = $1
	LIMIT 1;
	`
	return scanProfile(s.pool.QueryRow(ctx, query, identifier))
}

// GigByID fetches a gig by id.
func (s *Store) GigByID(ctx context.Context, id string) (models.Gig, error) {
	const query = `SELECT id, client_id, title, status, created_at FROM gigs WHERE id = $1;`
	var gig models.Gig
	err := s.pool.QueryRow(ctx, query, id).Scan(&gig.ID, &gig.ClientID, &gig.Title, &gig.Status, &gig.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Gig{}, storage.ErrNotFound
		}
		return models.Gig{}, err
	}
	return gig, nil
}

// ApplicationByID fetches an application by id.
func (s *Store) ApplicationByID(ctx context.Context, id string) (models.Application, error) {
	const query = `
	SELECT id, gig_id, talent_id, status, admin_notes, created_at
	FROM applications WHERE id = $1;
	`
	var app models.Application
	err := s.pool.QueryRow(ctx, query, id).Scan(&app.ID, &app.GigID, &app.TalentID, &app.Status, &app.AdminNotes, &app.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Application{}, storage.ErrNotFound
		}
		return models.Application{}, err
	}
	return app, nil
}

// UpdateApplicationStatus sets the status of a non-terminal application.
// The WHERE clause is the guard: a terminal row is never touched, and the
// zero-row case is resolved by re-reading which terminal state holds.
func (s *Store) UpdateApplicationStatus(ctx context.Context, id, status string) error {
	const query = `
	UPDATE applications SET status = $2
	WHERE id = $1 AND status NOT IN ($3, $4);
	`
	tag, err := s.pool.Exec(ctx, query, id, status, models.StatusAccepted, models.StatusRejected)
	if err != nil {
		return fmt.Errorf("update application status: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}
	return s.terminalStateError(ctx, s.pool, id)
}

// AcceptApplication runs the accept transaction: a status update guarded to
// fire only from a non-terminal state, plus the booking insert, in one
// transaction. Concurrent accepts serialize on the row; the loser observes
// zero rows updated and reports which terminal state won.
func (s *Store) AcceptApplication(ctx context.Context, applicationID string, booking models.Booking) (models.Booking, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return models.Booking{}, fmt.Errorf("begin accept transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	const update = `
	UPDATE applications SET status = $2
	WHERE id = $1 AND status NOT IN ($2, $3);
	`
	tag, err := tx.Exec(ctx, update, applicationID, models.StatusAccepted, models.StatusRejected)
	if err != nil {
		return models.Booking{}, fmt.Errorf("transition application: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.Booking{}, s.terminalStateError(ctx, tx, applicationID)
	}

	const insert = `
	INSERT INTO bookings (id, application_id, gig_id, talent_id, client_id, booking_date, compensation, notes, status)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	RETURNING created_at;
	`
	err = tx.QueryRow(ctx, insert,
		booking.ID, booking.ApplicationID, booking.GigID, booking.TalentID,
		booking.ClientID, booking.Date, booking.Compensation, booking.Notes, booking.Status,
	).Scan(&booking.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return models.Booking{}, storage.ErrAlreadyAccepted
		}
		return models.Booking{}, fmt.Errorf("insert booking: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return models.Booking{}, fmt.Errorf("commit accept transaction: %w", err)
	}
	return booking, nil
}

// BookingByApplication fetches the booking created for an application.
func (s *Store) BookingByApplication(ctx context.Context, applicationID string) (models.Booking, error) {
	const query = `
	SELECT id, application_id, gig_id, talent_id, client_id, booking_date, compensation, notes, status, created_at
	FROM bookings WHERE application_id = $1;
	`
	var b models.Booking
	err := s.pool.QueryRow(ctx, query, applicationID).Scan(
		&b.ID, &b.ApplicationID, &b.GigID, &b.TalentID, &b.ClientID,
		&b.Date, &b.Compensation, &b.Notes, &b.Status, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Booking{}, storage.ErrNotFound
		}
		return models.Booking{}, err
	}
	return b, nil
}

// HasBookingBetween reports whether any booking pairs the client and talent.
func (s *Store) HasBookingBetween(ctx context.Context, clientID, talentID string) (bool, error) {
	const query = `SELECT 1 FROM bookings WHERE client_id = $1 AND talent_id = $2 LIMIT 1;`
	return s.exists(ctx, query, clientID, talentID)
}

// HasApplicationToClientGigs reports whether the talent has applied to any
// gig owned by the client.
func (s *Store) HasApplicationToClientGigs(ctx context.Context, clientID, talentID string) (bool, error) {
	const query = `
	SELECT 1 FROM applications a
	JOIN gigs g ON a.gig_id = g.id
	WHERE g.client_id = $1 AND a.talent_id = $2
	LIMIT 1;
	`
	return s.exists(ctx, query, clientID, talentID)
}

type queryRower interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// terminalStateError re-reads an application whose guarded update matched
// zero rows and maps the observed state to the matching sentinel.
func (s *Store) terminalStateError(ctx context.Context, q queryRower, id string) error {
	var status string
	err := q.QueryRow(ctx, `SELECT status FROM applications WHERE id = $1;`, id).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return storage.ErrNotFound
		}
		return fmt.Errorf("read application status: %w", err)
	}
	switch status {
	case models.StatusRejected:
		return storage.ErrApplicationRejected
	case models.StatusAccepted:
		return storage.ErrAlreadyAccepted
	}
	return fmt.Errorf("application %s: guarded update matched no rows in status %q", id, status)
}

func (s *Store) exists(ctx context.Context, query string, args ...any) (bool, error) {
	var one int
	err := s.pool.QueryRow(ctx, query, args...).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func scanProfile(row pgx.Row) (models.Profile, error) {
	var p models.Profile
	err := row.Scan(&p.ID, &p.Username, &p.Email, &p.PasswordHash, &p.Role, &p.AccountType, &p.IsSuspended, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Profile{}, storage.ErrNotFound
		}
		return models.Profile{}, err
	}
	return p, nil
}
