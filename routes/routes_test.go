package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"moodcast.app/backend/config"
)

func TestMethodNotAllowedIsJSON(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	router := CreateMoodRoutes(db, nil, &config.Config{Timezone: "UTC"}, mux.NewRouter())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/save-mood", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.JSONEq(t, `{"error":"Method not allowed"}`, rec.Body.String())
}

func TestRoutesAreRegistered(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, user_name, weather`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "user_name", "weather", "comment", "entry_date", "created_at"}))

	router := CreateMoodRoutes(db, nil, &config.Config{Timezone: "UTC"}, mux.NewRouter())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/get-moods", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/config", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
