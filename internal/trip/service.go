package trip

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/CyberFocus2410/toursphere-backend/internal/apperr"
	"github.com/CyberFocus2410/toursphere-backend/internal/db"
	"github.com/CyberFocus2410/toursphere-backend/internal/stream"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type Service struct {
	db  db.Querier
	hub *stream.Hub
}

func NewService(db db.Querier, hub *stream.Hub) *Service {
	return &Service{db: db, hub: hub}
}

func (s *Service) CreateTrip(ctx context.Context, ownerID string, req CreateRequest) (Trip, error) {
	if ownerID == "" || req.Origin == "" || req.Destination == "" || req.ModeOfTransport == "" {
		return Trip{}, apperr.ErrValidation
	}

	t := Trip{
		ID:              uuid.NewString(),
		UserID:          ownerID,
		Origin:          req.Origin,
		Destination:     req.Destination,
		ModeOfTransport: req.ModeOfTransport,
	}
	row := s.db.QueryRow(ctx, `
		INSERT INTO trips (id, user_id, origin, destination, mode_of_transport)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING created_at
	`, t.ID, t.UserID, t.Origin, t.Destination, t.ModeOfTransport)
	if err := row.Scan(&t.CreatedAt); err != nil {
		return Trip{}, err
	}
	return t, nil
}

func (s *Service) GetTrip(ctx context.Context, id string) (Trip, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, user_id, origin, destination, mode_of_transport,
		       COALESCE(fare,0), COALESCE(distance,0), COALESCE(duration,''), created_at
		FROM trips WHERE id=$1
	`, id)
	var t Trip
	if err := row.Scan(&t.ID, &t.UserID, &t.Origin, &t.Destination, &t.ModeOfTransport,
		&t.Fare, &t.Distance, &t.Duration, &t.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Trip{}, apperr.ErrNotFound
		}
		return Trip{}, err
	}
	return t, nil
}

// UpdateTripData fills in the quoted fields. Repeated calls overwrite the
// previous quote. Non-admin callers may only touch their own trips.
func (s *Service) UpdateTripData(ctx context.Context, tripID, callerID string, admin bool, req DataRequest) (Trip, error) {
	t, err := s.GetTrip(ctx, tripID)
	if err != nil {
		return Trip{}, err
	}
	if !admin && t.UserID != callerID {
		return Trip{}, apperr.ErrPermissionDenied
	}

	t.Fare = req.Fare
	t.Distance = req.Distance
	t.Duration = req.Duration

	_, err = s.db.Exec(ctx, `
		UPDATE trips
		SET fare=$2, distance=$3, duration=$4
		WHERE id=$1
	`, t.ID, t.Fare, t.Distance, t.Duration)
	if err != nil {
		return Trip{}, err
	}

	if s.hub != nil {
		payload, _ := json.Marshal(t)
		s.hub.Broadcast(t.ID, payload)
	}
	return t, nil
}
