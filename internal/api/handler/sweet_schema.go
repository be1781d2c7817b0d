package handler

import "time"

type createSweetRequest struct {
	Name     string   `json:"name"     validate:"required"`
	Category string   `json:"category" validate:"required"`
	Price    *float64 `json:"price"    validate:"required,gte=0"`
	Quantity *int     `json:"quantity" validate:"required,gte=0"`
}

// updateSweetRequest is the allow-listed partial update. Pointers distinguish
// "absent" from zero values; unknown JSON keys are simply dropped at bind
// time and can never reach the store.
type updateSweetRequest struct {
	Name     *string  `json:"name"`
	Category *string  `json:"category"`
	Price    *float64 `json:"price"`
	Quantity *int     `json:"quantity"`
}

type restockRequest struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

type sweetResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Price     float64   `json:"price"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type messageResponse struct {
	Message string `json:"message"`
}
