package services

import (
	"log"

	"github.com/gregdel/pushover"
)

// Notification is one outbound push message, already composed and targeted
// at a single device.
type Notification struct {
	Title        string
	Message      string
	Device       string
	HighPriority bool
}

// Notifier sends a single push notification. Handlers depend on this
// interface so tests can observe sends without hitting the Pushover API.
type Notifier interface {
	Send(n Notification) error
}

// PushoverNotifier delivers notifications through the Pushover message API
// using one shared application token and user key; individual devices are
// addressed per message.
type PushoverNotifier struct {
	app       *pushover.Pushover
	recipient *pushover.Recipient
}

func NewPushoverNotifier(apiToken, userKey string) *PushoverNotifier {
	return &PushoverNotifier{
		app:       pushover.New(apiToken),
		recipient: pushover.NewRecipient(userKey),
	}
}

func (p *PushoverNotifier) Send(n Notification) error {
	message := &pushover.Message{
		Message:    n.Message,
		Title:      n.Title,
		DeviceName: n.Device,
		Sound:      pushover.SoundPushover,
	}
	if n.HighPriority {
		message.Priority = pushover.PriorityHigh
	}

	response, err := p.app.SendMessage(message, p.recipient)
	if err != nil {
		log.Printf("[Pushover] Send failed | device=%s title=%q: %v", n.Device, n.Title, err)
		return err
	}

	log.Printf("[Pushover] Sent | device=%s title=%q status=%d", n.Device, n.Title, response.Status)
	return nil
}
