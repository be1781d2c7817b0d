package domain

import (
	"errors"
	"time"
)

var ErrSweetNotFound = errors.New("sweet not found")
var ErrOutOfStock = errors.New("sweet is out of stock")
var ErrInvalidInput = errors.New("invalid input")

// Sweet is a single catalog item. Quantity is never negative: every stock
// mutation goes through a conditional atomic update at the store level.
type Sweet struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Price     float64   `json:"price"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
