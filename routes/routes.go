package routes

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"moodcast.app/backend/config"
	"moodcast.app/backend/handlers"
	"moodcast.app/backend/services"
)

func CreateMoodRoutes(db *sql.DB, notifier services.Notifier, cfg *config.Config, router *mux.Router) *mux.Router {
	loc := cfg.Location()

	router.HandleFunc("/api/config", handlers.GetConfig(cfg)).Methods("GET")
	router.HandleFunc("/api/get-moods", handlers.GetMoods(db)).Methods("GET")
	router.HandleFunc("/api/save-mood", handlers.SaveMood(db, notifier, loc)).Methods("POST")
	router.HandleFunc("/api/reminder", handlers.Reminder(db, notifier, cfg)).Methods("POST")
	router.HandleFunc("/api/test-reminder", handlers.TestReminder(notifier, cfg)).Methods("POST")

	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusMethodNotAllowed)
		json.NewEncoder(w).Encode(map[string]string{"error": "Method not allowed"})
	})

	return router
}
