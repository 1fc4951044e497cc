package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/connorhpbrn/findtravel/internal/domain"
)

// ErrTripNotFound is returned when a trip id does not exist.
var ErrTripNotFound = errors.New("trip not found")

// ErrAmbiguousTripID is returned when an id prefix matches more than
// one trip.
var ErrAmbiguousTripID = errors.New("trip id prefix is ambiguous")

// SQLiteTripRepo implements TripRepo using a SQLite database. The
// document fields (destination, plan, answers) are stored as JSON text;
// ordering is an explicit position column so that upserting an existing
// trip never moves it.
type SQLiteTripRepo struct {
	db *sql.DB
}

// NewSQLiteTripRepo creates a new SQLiteTripRepo.
func NewSQLiteTripRepo(db *sql.DB) *SQLiteTripRepo {
	return &SQLiteTripRepo{db: db}
}

const tripColumns = `id, travel_style, destination, plan, answers, created_at`

func (r *SQLiteTripRepo) List(ctx context.Context) ([]*domain.SavedTrip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips ORDER BY position`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing trips: %w", err)
	}
	defer rows.Close()

	var trips []*domain.SavedTrip
	for rows.Next() {
		trip, err := scanTrip(rows)
		if err != nil {
			return nil, err
		}
		trips = append(trips, trip)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating trips: %w", err)
	}
	return trips, nil
}

func (r *SQLiteTripRepo) GetByID(ctx context.Context, id string) (*domain.SavedTrip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE id = ?`
	trip, err := scanTrip(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrTripNotFound, id)
	}
	return trip, err
}

func (r *SQLiteTripRepo) GetByPrefix(ctx context.Context, prefix string) (*domain.SavedTrip, error) {
	if prefix == "" {
		return nil, fmt.Errorf("%w: empty prefix", ErrTripNotFound)
	}

	// substr avoids LIKE wildcard escaping for user-typed prefixes.
	query := `SELECT ` + tripColumns + ` FROM trips WHERE substr(id, 1, length(?)) = ? LIMIT 2`
	rows, err := r.db.QueryContext(ctx, query, prefix, prefix)
	if err != nil {
		return nil, fmt.Errorf("looking up trip by prefix: %w", err)
	}
	defer rows.Close()

	var matches []*domain.SavedTrip
	for rows.Next() {
		trip, err := scanTrip(rows)
		if err != nil {
			return nil, err
		}
		matches = append(matches, trip)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating trips: %w", err)
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: %s", ErrTripNotFound, prefix)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrAmbiguousTripID, prefix)
	}
}

func (r *SQLiteTripRepo) Upsert(ctx context.Context, trip *domain.SavedTrip) error {
	destJSON, err := json.Marshal(trip.Destination)
	if err != nil {
		return fmt.Errorf("encoding destination: %w", err)
	}
	planJSON, err := json.Marshal(trip.Plan)
	if err != nil {
		return fmt.Errorf("encoding plan: %w", err)
	}
	answersJSON, err := json.Marshal(trip.Answers)
	if err != nil {
		return fmt.Errorf("encoding answers: %w", err)
	}

	// New ids take the front position; existing ids keep theirs.
	query := `INSERT INTO trips (id, position, travel_style, destination, plan, answers, created_at)
		VALUES (?, (SELECT COALESCE(MIN(position), 0) - 1 FROM trips), ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			travel_style = excluded.travel_style,
			destination  = excluded.destination,
			plan         = excluded.plan,
			answers      = excluded.answers,
			created_at   = excluded.created_at`
	_, err = r.db.ExecContext(ctx, query,
		trip.ID,
		trip.TravelStyle,
		string(destJSON),
		string(planJSON),
		string(answersJSON),
		trip.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting trip: %w", err)
	}
	return nil
}

func (r *SQLiteTripRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM trips WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting trip: %w", err)
	}
	return nil
}

// scanner abstracts *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanTrip(s scanner) (*domain.SavedTrip, error) {
	var (
		trip                            domain.SavedTrip
		destJSON, planJSON, answersJSON string
		createdAt                       string
	)
	if err := s.Scan(&trip.ID, &trip.TravelStyle, &destJSON, &planJSON, &answersJSON, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning trip: %w", err)
	}

	if err := json.Unmarshal([]byte(destJSON), &trip.Destination); err != nil {
		return nil, fmt.Errorf("decoding destination: %w", err)
	}
	if err := json.Unmarshal([]byte(planJSON), &trip.Plan); err != nil {
		return nil, fmt.Errorf("decoding plan: %w", err)
	}
	if err := json.Unmarshal([]byte(answersJSON), &trip.Answers); err != nil {
		return nil, fmt.Errorf("decoding answers: %w", err)
	}

	ts, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	trip.CreatedAt = ts

	return &trip, nil
}
