package main

import (
	"log"
	"net/http"
	"os"

	ghandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"moodcast.app/backend/config"
	"moodcast.app/backend/database"
	"moodcast.app/backend/routes"
	"moodcast.app/backend/services"
)

func main() {
	cfg := config.Load()

	db, err := database.ConnectDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Server: DB connection failed: ", err)
	}
	defer db.Close()

	if err := database.EnsureSchema(db); err != nil {
		log.Fatal("Server: schema setup failed: ", err)
	}

	var notifier services.Notifier
	if cfg.HasPushoverCredentials() {
		notifier = services.NewPushoverNotifier(cfg.PushoverAPIToken, cfg.PushoverUserKey)
	} else {
		log.Println("[Server] Pushover credentials not set, notifications disabled")
	}

	router := routes.CreateMoodRoutes(db, notifier, cfg, mux.NewRouter())

	cors := ghandlers.CORS(
		ghandlers.AllowedOrigins([]string{"*"}),
		ghandlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		ghandlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	log.Printf("🚀 Moodcast server listening on :%s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, cors(ghandlers.LoggingHandler(os.Stdout, router))))
}
