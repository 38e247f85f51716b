package wire_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"wedding-planner/internal/data/repository/repotest"
	"wedding-planner/internal/wire"
	"wedding-planner/pkg/utils"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type envelope struct {
	Status  bool              `json:"status"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`
}

type client struct {
	t      *testing.T
	router http.Handler
	token  string
}

func newRouter(t *testing.T) http.Handler {
	t.Helper()

	config := &utils.Config{
		Session: utils.SessionConfig{ExpiryHours: 1},
		CORS:    utils.CORSConfig{AllowedOrigins: []string{"*"}},
	}
	app := wire.Wiring(repotest.NewStore().Repository(), config, zaptest.NewLogger(t))
	return app.Router
}

func (c *client) do(method, path string, body any) (int, envelope) {
	c.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	rec := httptest.NewRecorder()
	c.router.ServeHTTP(rec, req)

	var env envelope
	if rec.Header().Get("Content-Type") == "application/json" {
		require.NoError(c.t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec.Code, env
}

// data decodes the envelope payload into a generic map.
func (c *client) data(env envelope) map[string]any {
	c.t.Helper()

	var out map[string]any
	require.NoError(c.t, json.Unmarshal(env.Data, &out))
	return out
}

func (c *client) create(path string, body any) string {
	c.t.Helper()

	code, env := c.do(http.MethodPost, path, body)
	require.Equal(c.t, http.StatusCreated, code, env.Message)
	return c.data(env)["id"].(string)
}

func register(t *testing.T, router http.Handler, email string) *client {
	t.Helper()

	c := &client{t: t, router: router}
	code, env := c.do(http.MethodPost, "/api/register", map[string]string{
		"email":    email,
		"name":     "Planner",
		"password": "correct-horse",
	})
	require.Equal(t, http.StatusCreated, code, env.Message)

	c.token = c.data(env)["token"].(string)
	return c
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "OK", rec.Body.String())
}

func TestProtectedRoutesRequireSession(t *testing.T) {
	router := newRouter(t)
	anon := &client{t: t, router: router}

	code, _ := anon.do(http.MethodGet, "/api/weddings", nil)
	require.Equal(t, http.StatusUnauthorized, code)

	anon.token = "not-a-uuid"
	code, _ = anon.do(http.MethodGet, "/api/weddings", nil)
	require.Equal(t, http.StatusUnauthorized, code)
}

func TestLoginAndLogout(t *testing.T) {
	router := newRouter(t)
	register(t, router, "pat@example.com")

	c := &client{t: t, router: router}
	code, _ := c.do(http.MethodPost, "/api/login", map[string]string{"email": "pat@example.com", "password": "nope-nope"})
	require.Equal(t, http.StatusUnauthorized, code)

	code, env := c.do(http.MethodPost, "/api/login", map[string]string{"email": "pat@example.com", "password": "correct-horse"})
	require.Equal(t, http.StatusOK, code)
	c.token = c.data(env)["token"].(string)

	code, _ = c.do(http.MethodPost, "/api/logout", nil)
	require.Equal(t, http.StatusOK, code)

	code, _ = c.do(http.MethodGet, "/api/weddings", nil)
	require.Equal(t, http.StatusUnauthorized, code)

	code, _ = c.do(http.MethodPost, "/api/register", map[string]string{
		"email": "pat@example.com", "name": "Again", "password": "correct-horse",
	})
	require.Equal(t, http.StatusConflict, code)
}

func TestSeatingFlow(t *testing.T) {
	c := register(t, newRouter(t), "owner@example.com")

	weddingID := c.create("/api/weddings", map[string]any{"title": "Ana & Ben", "event_date": "2027-05-01"})
	tableID := c.create("/api/weddings/"+weddingID+"/tables", map[string]any{"name": "Table 1", "capacity": 2})

	guests := make([]string, 3)
	for i := range guests {
		guests[i] = c.create("/api/weddings/"+weddingID+"/guests", map[string]any{
			"name":        fmt.Sprintf("Guest %d", i+1),
			"rsvp_status": "confirmed",
		})
	}

	assign := "/api/tables/" + tableID + "/assign"
	code, env := c.do(http.MethodPost, assign, map[string]any{"guest_id": guests[0], "seat_number": 1})
	require.Equal(t, http.StatusOK, code, env.Message)

	code, _ = c.do(http.MethodPost, assign, map[string]any{"guest_id": guests[1], "seat_number": 1})
	require.Equal(t, http.StatusConflict, code)

	code, _ = c.do(http.MethodPost, assign, map[string]any{"guest_id": guests[1]})
	require.Equal(t, http.StatusOK, code)

	code, env = c.do(http.MethodPost, assign, map[string]any{"guest_id": guests[2]})
	require.Equal(t, http.StatusConflict, code)
	require.Equal(t, "Table is full", env.Message)

	code, env = c.do(http.MethodGet, "/api/tables/"+tableID+"/occupancy", nil)
	require.Equal(t, http.StatusOK, code)
	require.EqualValues(t, 2, c.data(env)["count"])

	code, _ = c.do(http.MethodPatch, "/api/tables/"+tableID, map[string]any{"capacity": 1})
	require.Equal(t, http.StatusConflict, code)

	code, _ = c.do(http.MethodDelete, "/api/guests/"+guests[1]+"/seat", nil)
	require.Equal(t, http.StatusOK, code)

	code, env = c.do(http.MethodPost, "/api/auto-assign", map[string]any{"wedding_id": weddingID})
	require.Equal(t, http.StatusOK, code)
	result := c.data(env)
	require.Len(t, result["seated"], 1)
	require.Len(t, result["unseated"], 1)

	code, env = c.do(http.MethodGet, "/api/weddings/"+weddingID+"/tables", nil)
	require.Equal(t, http.StatusOK, code)
	var tables []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &tables))
	require.Len(t, tables, 1)
	require.EqualValues(t, 2, tables[0]["occupied"])
	require.EqualValues(t, 0, tables[0]["available"])

	code, env = c.do(http.MethodDelete, "/api/tables/"+tableID, nil)
	require.Equal(t, http.StatusOK, code)
	require.EqualValues(t, 2, c.data(env)["unassigned"])

	code, env = c.do(http.MethodGet, "/api/weddings/"+weddingID+"/guests/unassigned", nil)
	require.Equal(t, http.StatusOK, code)
	var unassigned []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &unassigned))
	require.Len(t, unassigned, 3)
}

func TestValidationErrors(t *testing.T) {
	c := register(t, newRouter(t), "owner@example.com")
	weddingID := c.create("/api/weddings", map[string]any{"title": "Ana & Ben"})

	code, env := c.do(http.MethodPost, "/api/weddings/"+weddingID+"/tables", map[string]any{"name": " ", "capacity": 0})
	require.Equal(t, http.StatusBadRequest, code)
	require.Contains(t, env.Errors, "name")
	require.Contains(t, env.Errors, "capacity")

	tableID := c.create("/api/weddings/"+weddingID+"/tables", map[string]any{"name": "T", "capacity": 4})
	guestID := c.create("/api/weddings/"+weddingID+"/guests", map[string]any{"name": "G"})

	code, env = c.do(http.MethodPost, "/api/tables/"+tableID+"/assign", map[string]any{"guest_id": guestID, "seat_number": 9})
	require.Equal(t, http.StatusBadRequest, code)
	require.Contains(t, env.Errors, "seat_number")

	code, _ = c.do(http.MethodGet, "/api/tables/not-a-uuid/occupancy", nil)
	require.Equal(t, http.StatusBadRequest, code)
}

func TestTenantBoundaries(t *testing.T) {
	router := newRouter(t)
	owner := register(t, router, "owner@example.com")
	other := register(t, router, "other@example.com")

	weddingID := owner.create("/api/weddings", map[string]any{"title": "Ana & Ben"})
	tableID := owner.create("/api/weddings/"+weddingID+"/tables", map[string]any{"name": "T", "capacity": 4})
	guestID := owner.create("/api/weddings/"+weddingID+"/guests", map[string]any{"name": "G"})

	code, _ := other.do(http.MethodGet, "/api/weddings/"+weddingID+"/tables", nil)
	require.Equal(t, http.StatusNotFound, code)

	code, _ = other.do(http.MethodPost, "/api/tables/"+tableID+"/assign", map[string]any{"guest_id": guestID})
	require.Equal(t, http.StatusNotFound, code)

	// Same owner, different weddings.
	secondWedding := owner.create("/api/weddings", map[string]any{"title": "Dana & Eli"})
	strangerID := owner.create("/api/weddings/"+secondWedding+"/guests", map[string]any{"name": "Stranger"})

	code, env := owner.do(http.MethodPost, "/api/tables/"+tableID+"/assign", map[string]any{"guest_id": strangerID})
	require.Equal(t, http.StatusNotFound, code)
	require.Equal(t, "Resource not found", env.Message)
}

func TestUpdatePositions(t *testing.T) {
	c := register(t, newRouter(t), "owner@example.com")
	weddingID := c.create("/api/weddings", map[string]any{"title": "Ana & Ben"})
	a := c.create("/api/weddings/"+weddingID+"/tables", map[string]any{"name": "A", "capacity": 4})
	b := c.create("/api/weddings/"+weddingID+"/tables", map[string]any{"name": "B", "capacity": 4})

	code, env := c.do(http.MethodPost, "/api/positions", map[string]any{
		"positions": []map[string]any{
			{"table_id": a, "x": 10, "y": 20},
			{"table_id": b, "x": 30, "y": 40},
		},
	})
	require.Equal(t, http.StatusOK, code, env.Message)
	require.EqualValues(t, 2, c.data(env)["updated"])

	code, env = c.do(http.MethodGet, "/api/weddings/"+weddingID+"/tables", nil)
	require.Equal(t, http.StatusOK, code)
	var tables []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &tables))
	require.Equal(t, map[string]any{"x": 30.0, "y": 40.0}, tables[1]["position"])
}
