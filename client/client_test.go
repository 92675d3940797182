package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envelopeJSON(success bool, message string, data any) []byte {
	raw, _ := json.Marshal(map[string]any{
		"success": success,
		"message": message,
		"data":    data,
	})
	return raw
}

func TestLoginStoresTokenAndNotifies(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/login", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "user@example.com", body["email"])

		w.Header().Set("Content-Type", "application/json")
		w.Write(envelopeJSON(true, "login successful", map[string]any{
			"token": "jwt-token",
			"user":  map[string]any{"id": 7, "email": "user@example.com", "name": "Asha", "role": "USER"},
		}))
	}))
	defer srv.Close()

	c := New(srv.URL)

	var notified []*Identity
	c.Session().Subscribe(func(id *Identity) { notified = append(notified, id) })

	user, err := c.Login(context.Background(), "user@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, uint64(7), user.ID)
	assert.Equal(t, "USER", user.Role)

	assert.True(t, c.Session().SignedIn())
	assert.Equal(t, "jwt-token", c.Session().Token())
	require.Len(t, notified, 1)
	assert.Equal(t, "Asha", notified[0].Name)

	c.Logout()
	assert.False(t, c.Session().SignedIn())
	require.Len(t, notified, 2)
	assert.Nil(t, notified[1])
}

func TestBearerTokenAttached(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write(envelopeJSON(true, "bookings", []any{}))
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.Session().Set("tok-123", Identity{ID: 1})

	_, err := c.MyBookings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestAPIErrorFromEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write(envelopeJSON(false, "one or more seats are no longer available", nil))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.CreateOrder(context.Background(), BookingRequest{ShowID: 1, SeatNumbers: []string{"A1"}})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "one or more seats are no longer available", apiErr.Message)
}

func TestVerifyPaymentTransportFailureIsUnconfirmed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := New(srv.URL)
	_, err := c.VerifyPayment(context.Background(), "order_1", "pay_1", "sig")
	assert.ErrorIs(t, err, ErrVerifyUnconfirmed)
}

func TestVerifyPaymentRejectionIsAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write(envelopeJSON(false, "payment verification failed", nil))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.VerifyPayment(context.Background(), "order_1", "pay_1", "bad-sig")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.NotErrorIs(t, err, ErrVerifyUnconfirmed)
}

func TestCatalogDecoding(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/movies":
			w.Write(envelopeJSON(true, "movies", []map[string]any{
				{"movieId": 1, "title": "Interstellar", "isActive": true},
			}))
		case "/api/shows/event/3":
			require.Equal(t, "2026-09-01", r.URL.Query().Get("date"))
			w.Write(envelopeJSON(true, "shows", map[string]any{
				"regularShows":   []map[string]any{{"showId": 9, "basePrice": 200}},
				"openEventShows": []map[string]any{{"openShowId": 4}},
			}))
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)

	movies, err := c.Movies(context.Background())
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, "Interstellar", movies[0].Title)

	shows, err := c.EventShowsOn(context.Background(), 3, "2026-09-01")
	require.NoError(t, err)
	require.Len(t, shows.RegularShows, 1)
	require.Len(t, shows.OpenEventShows, 1)
	assert.Equal(t, int64(200), shows.RegularShows[0].BasePrice)
}
