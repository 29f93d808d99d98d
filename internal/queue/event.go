// Package queue defines the message payloads exchanged over the broker
// and the background consumer that turns them into notification
// dispatches.
package queue

import (
	"os"
	"strings"
)

// Channels flags which reminder channels a notification should go out on.
type Channels struct {
	SMS      bool `json:"sms"`
	Email    bool `json:"email"`
	WhatsApp bool `json:"whatsapp"`
}

// ChannelsFromEnv reads the NOTIFY_SMS / NOTIFY_EMAIL / NOTIFY_WHATSAPP
// flags.  SMS and email default on, WhatsApp off.
func ChannelsFromEnv() Channels {
	return Channels{
		SMS:      envFlag("NOTIFY_SMS", true),
		Email:    envFlag("NOTIFY_EMAIL", true),
		WhatsApp: envFlag("NOTIFY_WHATSAPP", false),
	}
}

func envFlag(key string, def bool) bool {
	v := strings.ToLower(os.Getenv(key))
	if v == "" {
		return def
	}
	return v == "1" || v == "true" || v == "yes" || v == "on"
}

// ReservationConfirmedEvent is published when staff confirm a
// reservation.  It carries enough information for downstream consumers
// to send reminders without querying the primary store.
type ReservationConfirmedEvent struct {
	ReservationID string   `json:"reservation_id"`
	Name          string   `json:"name"`
	Phone         string   `json:"phone"`
	Guests        int      `json:"guests"`
	Date          string   `json:"date"`
	Time          string   `json:"time"`
	Tables        int      `json:"tables"`
	Message       string   `json:"message"`
	Channels      Channels `json:"channels"`
	ConfirmedAt   string   `json:"confirmed_at"`
}
