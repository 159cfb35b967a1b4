package model

import "time"

// Event is a single scheduled marketing action. Date is a calendar date in
// YYYY-MM-DD form and Time a local time-of-day in HH:MM form; both are
// validated at the API boundary so lexicographic order matches chronological
// order in the store.
type Event struct {
	ID        int64     `json:"id"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Title     string    `json:"title"`
	Channel   *string   `json:"channel"`
	Platform  *string   `json:"platform"`
	Notes     *string   `json:"notes"`
	CreatedBy *string   `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

// EventInput carries the mutable fields shared by create and update.
type EventInput struct {
	Date      string
	Time      string
	Title     string
	Channel   *string
	Platform  *string
	Notes     *string
	CreatedBy *string
}
