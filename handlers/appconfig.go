package handlers

import (
	"net/http"

	"moodcast.app/backend/config"
)

// GetConfig exposes the Pushover identifiers to the front end, empty strings
// when unset. Notification delivery itself is proxied server-side, so
// deployments can leave these blank for the client.
func GetConfig(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"pushoverApiToken": cfg.PushoverAPIToken,
			"pushoverUserKey":  cfg.PushoverUserKey,
		})
	}
}
