package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/restaurant-reservation/internal/config"
	"github.com/iliyamo/restaurant-reservation/internal/repository"
	"github.com/iliyamo/restaurant-reservation/internal/service"
)

func testRestaurant() config.Restaurant {
	return config.Restaurant{
		Name:          "MyHome",
		Address:       "Dharmavaram",
		TotalTables:   15,
		SeatsPerTable: 4,
		TimeSlots: []string{
			"11:00", "11:30", "12:00", "12:30", "13:00", "13:30", "14:00",
			"18:00", "18:30", "19:00", "19:30", "20:00", "20:30", "21:00",
		},
	}
}

func newBookingHandler() *BookingHandler {
	store := repository.NewMemoryReservationStore()
	avail := service.NewAvailability(store, testRestaurant())
	lc := service.NewLifecycle(store, avail, testRestaurant())
	return NewBookingHandler(lc, avail, testRestaurant())
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func registerBookingRoutes(h *BookingHandler) *echo.Echo {
	e := echo.New()
	e.GET("/v1/slots", h.Slots)
	e.GET("/v1/availability", h.Availability)
	e.POST("/v1/reservations", h.CreateReservation)
	return e
}

func TestCreateReservationEndpoint(t *testing.T) {
	t.Run("valid booking returns 201 and pending status", func(t *testing.T) {
		e := registerBookingRoutes(newBookingHandler())
		rec := doJSON(e, http.MethodPost, "/v1/reservations",
			`{"name":"Asha Rao","phone":"9876543210","guests":4,"date":"2030-01-01","time":"19:00"}`)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var resp reservationResp
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.ID)
		assert.Equal(t, "Pending", resp.Status)
		assert.Equal(t, 4, resp.Guests)
	})

	t.Run("validation failures return 400", func(t *testing.T) {
		tests := []struct {
			name string
			body string
		}{
			{"missing name", `{"phone":"98765","guests":2,"date":"2030-01-01","time":"19:00"}`},
			{"zero guests", `{"name":"A","phone":"98765","guests":0,"date":"2030-01-01","time":"19:00"}`},
			{"past date", `{"name":"A","phone":"98765","guests":2,"date":"2020-01-01","time":"19:00"}`},
			{"unknown slot", `{"name":"A","phone":"98765","guests":2,"date":"2030-01-01","time":"16:45"}`},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				e := registerBookingRoutes(newBookingHandler())
				rec := doJSON(e, http.MethodPost, "/v1/reservations", tt.body)
				assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
			})
		}
	})

	t.Run("full slot returns 409", func(t *testing.T) {
		e := registerBookingRoutes(newBookingHandler())
		for i := 0; i < 15; i++ {
			rec := doJSON(e, http.MethodPost, "/v1/reservations",
				fmt.Sprintf(`{"name":"Guest %d","phone":"98765","guests":4,"date":"2030-01-01","time":"19:00"}`, i))
			require.Equal(t, http.StatusCreated, rec.Code)
		}
		rec := doJSON(e, http.MethodPost, "/v1/reservations",
			`{"name":"Late Guest","phone":"98765","guests":1,"date":"2030-01-01","time":"19:00"}`)
		assert.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())
	})
}

func TestAvailabilityEndpoint(t *testing.T) {
	t.Run("single slot", func(t *testing.T) {
		e := registerBookingRoutes(newBookingHandler())
		rec := doJSON(e, http.MethodPost, "/v1/reservations",
			`{"name":"Asha","phone":"98765","guests":4,"date":"2030-01-01","time":"19:00"}`)
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = doJSON(e, http.MethodGet, "/v1/availability?date=2030-01-01&time=19:00", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			TablesAvailable int `json:"tables_available"`
			SeatsAvailable  int `json:"seats_available"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 14, resp.TablesAvailable)
		assert.Equal(t, 56, resp.SeatsAvailable)
	})

	t.Run("all slots for a date", func(t *testing.T) {
		e := registerBookingRoutes(newBookingHandler())
		rec := doJSON(e, http.MethodGet, "/v1/availability?date=2030-01-01", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Slots []service.SlotAvailability `json:"slots"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Slots, 14)
		for _, s := range resp.Slots {
			assert.Equal(t, 15, s.TablesAvailable)
		}
	})

	t.Run("missing date and unknown slot are rejected", func(t *testing.T) {
		e := registerBookingRoutes(newBookingHandler())
		rec := doJSON(e, http.MethodGet, "/v1/availability", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec = doJSON(e, http.MethodGet, "/v1/availability?date=2030-01-01&time=03:00", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSlotsEndpoint(t *testing.T) {
	e := registerBookingRoutes(newBookingHandler())
	rec := doJSON(e, http.MethodGet, "/v1/slots", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		TotalTables   int      `json:"total_tables"`
		SeatsPerTable int      `json:"seats_per_table"`
		TimeSlots     []string `json:"time_slots"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 15, resp.TotalTables)
	assert.Equal(t, 4, resp.SeatsPerTable)
	assert.Equal(t, testRestaurant().TimeSlots, resp.TimeSlots)
}
