package models

import "time"

// DateFormat is the day-granularity format used for entry_date values and
// the reminder window boundary.
const DateFormat = "2006-01-02"

type Mood struct {
	ID        int       `json:"id"`
	User      string    `json:"user"`
	Weather   string    `json:"weather"`
	Comment   string    `json:"comment,omitempty"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}

// Weather categories form a closed set; anything else is rejected at
// submission time.
var weatherEmojis = map[string]string{
	"sunny":        "☀️",
	"partly_sunny": "🌤️",
	"cloudy":       "☁️",
	"overcast":     "🌫️",
	"rainy":        "🌧️",
	"stormy":       "⛈️",
	"snowy":        "❄️",
	"windy":        "💨",
	"foggy":        "🌁",
}

var weatherNames = map[string]string{
	"sunny":        "ensoleillée",
	"partly_sunny": "avec éclaircies",
	"cloudy":       "nuageuse",
	"overcast":     "couverte",
	"rainy":        "pluvieuse",
	"stormy":       "orageuse",
	"snowy":        "neigeuse",
	"windy":        "venteuse",
	"foggy":        "brumeuse",
}

func IsValidWeather(weather string) bool {
	_, ok := weatherEmojis[weather]
	return ok
}

func WeatherEmoji(weather string) string {
	return weatherEmojis[weather]
}

// WeatherPhrase returns the French description used in notification texts.
func WeatherPhrase(weather string) string {
	return weatherNames[weather]
}

// Participant is one of the two fixed people sharing the board. Device is
// the Pushover device name their reminders and counterpart notifications
// are targeted at.
type Participant struct {
	Name        string
	DisplayName string
	Device      string
}

var participants = map[string]Participant{
	"clemence": {Name: "clemence", DisplayName: "Clémence", Device: "iphone"},
	"franklin": {Name: "franklin", DisplayName: "Franklin", Device: "iphoneF"},
}

func IsValidUser(user string) bool {
	_, ok := participants[user]
	return ok
}

func GetParticipant(user string) (Participant, bool) {
	p, ok := participants[user]
	return p, ok
}

// Counterpart returns the other participant, the one who gets notified when
// user posts a mood.
func Counterpart(user string) (Participant, bool) {
	for name, p := range participants {
		if name != user {
			return p, true
		}
	}
	return Participant{}, false
}

// AllParticipants returns both participants in a stable order, used by the
// reminder fan-out so results are itemized deterministically.
func AllParticipants() []Participant {
	return []Participant{participants["clemence"], participants["franklin"]}
}
