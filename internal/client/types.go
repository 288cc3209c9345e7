package client

import (
	"errors"
	"io"
	"time"
)

var ErrProductNotFound = errors.New("product not found")

type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"image_url"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"created_at"`
}

type About struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	LastUpdated time.Time `json:"lastUpdated"`
}

type Contact struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	WhatsappLink string    `json:"whatsappLink"`
	LastUpdated  time.Time `json:"lastUpdated"`
}

// File is a pending image upload: the client streams it into the
// multipart body as-is, no intermediate encoding.
type File struct {
	Name   string
	Reader io.Reader
}

// Draft is the payload for product create and update calls. On update,
// empty fields are left out of the request so the backend keeps the
// stored values; Featured is always sent.
type Draft struct {
	Name        string
	Description string
	Price       float64
	Category    string
	Image       *File
	Featured    bool
}
