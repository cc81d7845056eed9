package handlers

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"moodcast.app/backend/models"
	"moodcast.app/backend/services"
)

// SaveMood records today's mood for one participant and notifies the other.
// The one-mood-per-day rule is enforced by a single conditional insert
// against the unique (user_name, entry_date) constraint, so two concurrent
// submissions cannot both land.
func SaveMood(db *sql.DB, notifier services.Notifier, loc *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			User    string `json:"user"`
			Weather string `json:"weather"`
			Comment string `json:"comment"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if req.User == "" || req.Weather == "" {
			writeError(w, http.StatusBadRequest, "User and weather are required")
			return
		}
		if !models.IsValidUser(req.User) {
			writeError(w, http.StatusBadRequest, "Unknown user")
			return
		}
		if !models.IsValidWeather(req.Weather) {
			writeError(w, http.StatusBadRequest, "Unknown weather")
			return
		}

		now := time.Now().In(loc)
		today := now.Format(models.DateFormat)

		var m models.Mood
		var entryDate time.Time
		err := db.QueryRow(`
			INSERT INTO moods (user_name, weather, comment, entry_date, created_at)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (user_name, entry_date) DO NOTHING
			RETURNING id, user_name, weather, comment, entry_date, created_at`,
			req.User, req.Weather, req.Comment, today, now,
		).Scan(&m.ID, &m.User, &m.Weather, &m.Comment, &entryDate, &m.CreatedAt)

		if err == sql.ErrNoRows {
			writeError(w, http.StatusBadRequest, "Mood already shared today")
			return
		}
		if err != nil {
			log.Printf("[SaveMood] Insert error: %v", err)
			writeError(w, http.StatusInternalServerError, "Database error")
			return
		}
		m.Date = entryDate.Format(models.DateFormat)

		notificationSent := notifyCounterpart(notifier, req.User, req.Weather)

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success":          true,
			"mood":             m,
			"notificationSent": notificationSent,
		})
	}
}

// notifyCounterpart sends the "new mood" push to the other participant's
// device. Failures are logged and reported as a boolean, never as a request
// failure: the mood is already persisted at this point.
func notifyCounterpart(notifier services.Notifier, user, weather string) bool {
	if notifier == nil {
		return false
	}

	submitter, _ := models.GetParticipant(user)
	counterpart, ok := models.Counterpart(user)
	if !ok {
		return false
	}

	n := services.Notification{
		Title: "Moodcast - Nouvelle météo",
		Message: fmt.Sprintf("%s a une météo %s %s aujourd'hui !",
			submitter.DisplayName, models.WeatherEmoji(weather), models.WeatherPhrase(weather)),
		Device: counterpart.Device,
	}
	if err := notifier.Send(n); err != nil {
		log.Printf("[SaveMood] Notification to %s failed: %v", counterpart.Name, err)
		return false
	}
	return true
}

// GetMoods returns the 10 most recent moods, newest first.
func GetMoods(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := db.Query(`
			SELECT id, user_name, weather, comment, entry_date, created_at
			FROM moods
			ORDER BY created_at DESC
			LIMIT 10`)
		if err != nil {
			log.Printf("[GetMoods] Query error: %v", err)
			writeError(w, http.StatusInternalServerError, "Database error")
			return
		}
		defer rows.Close()

		moods := []models.Mood{}
		for rows.Next() {
			var m models.Mood
			var entryDate time.Time
			if err := rows.Scan(&m.ID, &m.User, &m.Weather, &m.Comment, &entryDate, &m.CreatedAt); err != nil {
				log.Printf("[GetMoods] Scan error: %v", err)
				writeError(w, http.StatusInternalServerError, "Database error")
				return
			}
			m.Date = entryDate.Format(models.DateFormat)
			moods = append(moods, m)
		}
		if err := rows.Err(); err != nil {
			log.Printf("[GetMoods] Rows error: %v", err)
			writeError(w, http.StatusInternalServerError, "Database error")
			return
		}

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"moods":   moods,
		})
	}
}
