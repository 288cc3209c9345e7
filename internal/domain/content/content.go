package content

import "time"

// About and Contact are singleton resources: the store holds at most one
// row of each, created on first update.

type About struct {
	ID          int64
	Title       string
	Content     string
	LastUpdated time.Time
}

type Contact struct {
	ID           int64
	Email        string
	Phone        string
	Address      string
	WhatsappLink string
	LastUpdated  time.Time
}
