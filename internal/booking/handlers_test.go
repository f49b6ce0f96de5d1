package booking

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/CyberFocus2410/toursphere-backend/internal/apperr"
	"github.com/CyberFocus2410/toursphere-backend/internal/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/pashagolub/pgxmock/v3"
)

const testSecret = "test-secret"

func bookingApp(svc *Service) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: apperr.Handler})
	RegisterRoutes(app.Group("/bookings"), svc, auth.JWTMiddleware(testSecret))
	return app
}

func bearer(t *testing.T) string {
	t.Helper()
	token, err := auth.NewService(testSecret, time.Hour, nil).IssueToken("user-1", auth.RoleUser)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return "Bearer " + token
}

func TestSearchHandler(t *testing.T) {
	app := bookingApp(NewService(nil, nil, time.Minute))

	req := httptest.NewRequest(http.MethodGet, "/bookings/search?origin=Airport&destination=Downtown&mode=cab", nil)
	req.Header.Set("Authorization", bearer(t))
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("expected ok, got %d", resp.StatusCode)
	}

	var body struct {
		Results []Quote `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Results) == 0 {
		t.Fatalf("expected quotes in response")
	}
	for _, q := range body.Results {
		if q.Provider == "" || q.BookingURL == "" {
			t.Fatalf("incomplete quote: %+v", q)
		}
	}
}

func TestSearchHandlerUnauthenticated(t *testing.T) {
	app := bookingApp(NewService(nil, nil, time.Minute))

	req := httptest.NewRequest(http.MethodGet, "/bookings/search?origin=A&destination=B&mode=cab", nil)
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected unauthorized")
	}
}

func TestSearchHandlerMissingParams(t *testing.T) {
	app := bookingApp(NewService(nil, nil, time.Minute))

	req := httptest.NewRequest(http.MethodGet, "/bookings/search?origin=A", nil)
	req.Header.Set("Authorization", bearer(t))
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected bad request")
	}
}

func TestCreateBookingHandler(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`SELECT mode_of_transport FROM trips`).
		WithArgs("trip-1").
		WillReturnRows(pgxmock.NewRows([]string{"mode_of_transport"}).AddRow("cab"))
	mock.ExpectQuery(`INSERT INTO bookings`).
		WithArgs(pgxmock.AnyArg(), "user-1", "trip-1", "Rapido", "pending", pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(time.Now()))

	app := bookingApp(NewService(mock, nil, time.Minute))

	body, _ := json.Marshal(CreateBookingRequest{TripID: "trip-1", Provider: "Rapido"})
	req := httptest.NewRequest(http.MethodPost, "/bookings/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearer(t))
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected created, got %d", resp.StatusCode)
	}

	var b Booking
	if err := json.NewDecoder(resp.Body).Decode(&b); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b.Status != "pending" || b.Provider != "Rapido" {
		t.Fatalf("unexpected booking: %+v", b)
	}
}

func TestCreateBookingHandlerBadPayload(t *testing.T) {
	app := bookingApp(NewService(nil, nil, time.Minute))

	req := httptest.NewRequest(http.MethodPost, "/bookings/", bytes.NewReader([]byte("{bad")))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearer(t))
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected bad request")
	}
}
