package booking

import "time"

// Quote is one provider's offer for a trip request. The provider set is a
// stub boundary; a real deployment would fan out to the providers' APIs.
type Quote struct {
	Provider   string  `json:"provider"`
	Fare       float64 `json:"fare"`
	ETAMinutes int     `json:"eta_minutes"`
	BookingURL string  `json:"booking_url"`
}

type Booking struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	TripID    string    `json:"trip_id"`
	Provider  string    `json:"provider"`
	Status    string    `json:"status"`
	Details   Quote     `json:"details"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateBookingRequest struct {
	TripID   string `json:"trip_id"`
	Provider string `json:"provider"`
}
