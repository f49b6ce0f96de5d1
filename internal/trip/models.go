package trip

import "time"

type Trip struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Origin          string    `json:"origin"`
	Destination     string    `json:"destination"`
	ModeOfTransport string    `json:"mode_of_transport"`
	Fare            float64   `json:"fare"`
	Distance        float64   `json:"distance"`
	Duration        string    `json:"duration"`
	CreatedAt       time.Time `json:"created_at"`
}

type CreateRequest struct {
	Origin          string `json:"origin"`
	Destination     string `json:"destination"`
	ModeOfTransport string `json:"mode_of_transport"`
}

type DataRequest struct {
	Fare     float64 `json:"fare"`
	Distance float64 `json:"distance"`
	Duration string  `json:"duration"`
}
