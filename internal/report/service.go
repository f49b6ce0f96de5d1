package report

import (
	"context"

	"github.com/CyberFocus2410/toursphere-backend/internal/db"
)

type Service struct {
	db db.Querier
}

type TripReport struct {
	TotalTrips  int            `json:"total_trips"`
	TripsByMode map[string]int `json:"trips_by_mode"`
}

func NewService(db db.Querier) *Service {
	return &Service{db: db}
}

// TripReport counts trips grouped by mode of transport. Full-table scan;
// acceptable at current volumes, no pagination or time window.
func (s *Service) TripReport(ctx context.Context) (TripReport, error) {
	rows, err := s.db.Query(ctx, `
		SELECT mode_of_transport, COUNT(*)
		FROM trips
		GROUP BY mode_of_transport
	`)
	if err != nil {
		return TripReport{}, err
	}
	defer rows.Close()

	rep := TripReport{TripsByMode: map[string]int{}}
	for rows.Next() {
		var mode string
		var count int
		if err := rows.Scan(&mode, &count); err != nil {
			return TripReport{}, err
		}
		rep.TripsByMode[mode] = count
		rep.TotalTrips += count
	}
	if err := rows.Err(); err != nil {
		return TripReport{}, err
	}
	return rep, nil
}
