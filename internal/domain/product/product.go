package product

import "time"

type Product struct {
	ID          int64
	Name        string
	Description string
	Price       float64
	Category    string
	ImagePath   string
	Featured    bool
	CreatedAt   time.Time
}

type ListFilter struct {
	Category string
	Search   string
}
