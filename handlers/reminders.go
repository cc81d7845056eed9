package handlers

import (
	"database/sql"
	"log"
	"net/http"
	"time"

	"moodcast.app/backend/config"
	"moodcast.app/backend/models"
	"moodcast.app/backend/services"
)

// reminderWindowDays is how long the board may stay silent before both
// participants get a reminder.
const reminderWindowDays = 3

const reminderMessage = `🌤️ Cela fait plus de 3 jours sans nouvelles de vos météos intérieures !

N'oubliez pas de partager comment vous vous sentez aujourd'hui. 💙`

const testReminderMessage = `🧪 TEST - N'oubliez pas de partager votre météo intérieure aujourd'hui !

Rendez-vous sur votre Moodcast pour dire comment vous vous sentez. 💙`

type reminderResult struct {
	User    string `json:"user"`
	Device  string `json:"device"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Reminder is the scheduler-invoked endpoint. It only fans out when no mood
// has been posted inside the trailing window; otherwise it reports what it
// found and sends nothing.
func Reminder(db *sql.DB, notifier services.Notifier, cfg *config.Config) http.HandlerFunc {
	loc := cfg.Location()
	return func(w http.ResponseWriter, r *http.Request) {
		if !authorizeCron(r, cfg.CronSecret) {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		if !cfg.HasPushoverCredentials() {
			log.Println("[Reminder] Pushover configuration missing")
			writeError(w, http.StatusInternalServerError, "Pushover configuration missing")
			return
		}

		summary, err := dispatchReminders(db, notifier, loc)
		if err != nil {
			log.Printf("[Reminder] Database error: %v", err)
			writeError(w, http.StatusInternalServerError, "Database error")
			return
		}

		writeJSON(w, http.StatusOK, summary)
	}
}

// TestReminder fans out unconditionally so delivery can be checked by hand.
// It is protected by the same bearer secret as the scheduled variant.
func TestReminder(notifier services.Notifier, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authorizeCron(r, cfg.CronSecret) {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		if !cfg.HasPushoverCredentials() {
			writeError(w, http.StatusInternalServerError, "Pushover configuration missing")
			return
		}

		results, sent := fanOutReminders(notifier, services.Notification{
			Title:   "TEST - Moodcast Rappel",
			Message: testReminderMessage,
		})

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"message": "Test des rappels quotidiens",
			"sent":    sent,
			"total":   len(results),
			"results": results,
		})
	}
}

// RunReminderJob runs the same dispatch logic as the HTTP endpoint, for
// schedulers that exec a process instead of calling the API.
func RunReminderJob(db *sql.DB, notifier services.Notifier, loc *time.Location) error {
	summary, err := dispatchReminders(db, notifier, loc)
	if err != nil {
		return err
	}
	log.Printf("[Reminder] Job finished | %v", summary["message"])
	return nil
}

func dispatchReminders(db *sql.DB, notifier services.Notifier, loc *time.Location) (map[string]interface{}, error) {
	boundary := time.Now().In(loc).AddDate(0, 0, -reminderWindowDays).Format(models.DateFormat)

	var count int
	var lastDate sql.NullTime
	err := db.QueryRow(`
		SELECT COUNT(*), MAX(entry_date)
		FROM moods
		WHERE entry_date >= $1`,
		boundary).Scan(&count, &lastDate)
	if err != nil {
		return nil, err
	}

	if count > 0 {
		last := ""
		if lastDate.Valid {
			last = lastDate.Time.Format(models.DateFormat)
		}
		log.Printf("[Reminder] No reminder needed | recentMoods=%d lastMoodDate=%s", count, last)
		return map[string]interface{}{
			"message":          "Pas de rappel nécessaire",
			"reason":           "Humeurs récentes trouvées",
			"recentMoodsCount": count,
			"lastMoodDate":     last,
		}, nil
	}

	results, sent := fanOutReminders(notifier, services.Notification{
		Title:        "Moodcast - Rappel de météo (3+ jours)",
		Message:      reminderMessage,
		HighPriority: true,
	})

	return map[string]interface{}{
		"message":      "Rappels envoyés (3+ jours sans humeur)",
		"sent":         sent,
		"total":        len(results),
		"results":      results,
		"lastMoodDate": nil,
	}, nil
}

// fanOutReminders attempts one send per participant. A failure for one
// recipient is recorded and does not stop the other's attempt.
func fanOutReminders(notifier services.Notifier, template services.Notification) ([]reminderResult, int) {
	var results []reminderResult
	sent := 0

	for _, p := range models.AllParticipants() {
		n := template
		n.Device = p.Device

		result := reminderResult{User: p.DisplayName, Device: p.Device}
		if err := notifier.Send(n); err != nil {
			result.Error = err.Error()
			log.Printf("[Reminder] Send failed | user=%s device=%s: %v", p.DisplayName, p.Device, err)
		} else {
			result.Success = true
			sent++
			log.Printf("[Reminder] Sent | user=%s device=%s", p.DisplayName, p.Device)
		}
		results = append(results, result)
	}

	return results, sent
}

func authorizeCron(r *http.Request, secret string) bool {
	return r.Header.Get("Authorization") == "Bearer "+secret
}
