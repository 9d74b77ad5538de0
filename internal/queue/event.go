// Package queue defines the booking-click event and the consumer that
// records it.
package queue

// BookingClickedQueue is the durable queue booking clicks are published to.
const BookingClickedQueue = "booking.clicked"

// BookingClickedEvent is published when a visitor follows a showtime's
// booking link.  It carries enough context for downstream consumers to log
// or count clicks without calling the movie API.
type BookingClickedEvent struct {
	MovieID    int    `json:"movie_id"`
	ShowtimeID int    `json:"showtime_id"`
	Cinema     string `json:"cinema"`
	Location   string `json:"location,omitempty"`
	Link       string `json:"link"`
	ClientIP   string `json:"client_ip,omitempty"`
	ClickedAt  string `json:"clicked_at"`
}
