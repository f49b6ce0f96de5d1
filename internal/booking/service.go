package booking

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/CyberFocus2410/toursphere-backend/internal/apperr"
	"github.com/CyberFocus2410/toursphere-backend/internal/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
)

type Service struct {
	db       db.Querier
	redis    *redis.Client
	cacheTTL time.Duration
}

func NewService(db db.Querier, redisClient *redis.Client, cacheTTL time.Duration) *Service {
	return &Service{db: db, redis: redisClient, cacheTTL: cacheTTL}
}

// SearchProviders returns quotes for a trip request, cheapest first.
// Results are cached in redis per (origin, destination, mode); the cache is
// best-effort and a missing or failing redis falls through to the catalog.
func (s *Service) SearchProviders(ctx context.Context, origin, destination, mode string) ([]Quote, error) {
	if origin == "" || destination == "" || mode == "" {
		return nil, apperr.ErrValidation
	}

	key := quoteCacheKey(origin, destination, mode)
	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, key).Result(); err == nil {
			var quotes []Quote
			if err := json.Unmarshal([]byte(cached), &quotes); err == nil {
				return quotes, nil
			}
		}
	}

	quotes := quotesForMode(mode)

	if s.redis != nil && len(quotes) > 0 {
		if payload, err := json.Marshal(quotes); err == nil {
			_ = s.redis.Set(ctx, key, payload, s.cacheTTL).Err()
		}
	}
	return quotes, nil
}

// CreateBooking records the caller's pick of a quote for an existing trip.
// The matched quote is stored alongside the booking as its details.
func (s *Service) CreateBooking(ctx context.Context, userID string, req CreateBookingRequest) (Booking, error) {
	if req.TripID == "" || req.Provider == "" {
		return Booking{}, apperr.ErrValidation
	}

	var mode string
	row := s.db.QueryRow(ctx, `SELECT mode_of_transport FROM trips WHERE id=$1`, req.TripID)
	if err := row.Scan(&mode); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Booking{}, apperr.ErrNotFound
		}
		return Booking{}, err
	}

	quote, ok := matchQuote(mode, req.Provider)
	if !ok {
		return Booking{}, apperr.ErrValidation
	}

	b := Booking{
		ID:       uuid.NewString(),
		UserID:   userID,
		TripID:   req.TripID,
		Provider: quote.Provider,
		Status:   "pending",
		Details:  quote,
	}
	details, err := json.Marshal(quote)
	if err != nil {
		return Booking{}, err
	}

	insert := s.db.QueryRow(ctx, `
		INSERT INTO bookings (id, user_id, trip_id, provider, status, details)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING created_at
	`, b.ID, b.UserID, b.TripID, b.Provider, b.Status, details)
	if err := insert.Scan(&b.CreatedAt); err != nil {
		return Booking{}, err
	}
	return b, nil
}

func matchQuote(mode, provider string) (Quote, bool) {
	for _, q := range quotesForMode(mode) {
		if q.Provider == provider {
			return q, true
		}
	}
	return Quote{}, false
}

func quoteCacheKey(origin, destination, mode string) string {
	return "quotes:" + origin + ":" + destination + ":" + mode
}
