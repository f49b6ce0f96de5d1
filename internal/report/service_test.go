package report

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
)

func TestTripReportAggregation(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`SELECT mode_of_transport, COUNT`).
		WillReturnRows(pgxmock.NewRows([]string{"mode_of_transport", "count"}).
			AddRow("car", 2).
			AddRow("bike", 1))

	svc := NewService(mock)
	rep, err := svc.TripReport(context.Background())
	if err != nil {
		t.Fatalf("trip report: %v", err)
	}
	if rep.TotalTrips != 3 {
		t.Fatalf("expected 3 total trips, got %d", rep.TotalTrips)
	}
	if rep.TripsByMode["car"] != 2 || rep.TripsByMode["bike"] != 1 {
		t.Fatalf("unexpected per-mode counts: %+v", rep.TripsByMode)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTripReportEmpty(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`SELECT mode_of_transport, COUNT`).
		WillReturnRows(pgxmock.NewRows([]string{"mode_of_transport", "count"}))

	svc := NewService(mock)
	rep, err := svc.TripReport(context.Background())
	if err != nil {
		t.Fatalf("trip report: %v", err)
	}
	if rep.TotalTrips != 0 || len(rep.TripsByMode) != 0 {
		t.Fatalf("expected empty report")
	}
}

func TestTripReportQueryError(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`SELECT mode_of_transport, COUNT`).WillReturnError(errQuery)

	svc := NewService(mock)
	if _, err := svc.TripReport(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
}

var errQuery = errors.New("query error")
