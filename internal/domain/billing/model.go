package billing

import "time"

// Payment is an append-only record of a card payment the client reported as
// successful.
type Payment struct {
	ID            string    `json:"_id"`
	BookingID     string    `json:"bookingId"`
	TransactionID string    `json:"transactionId"`
	Price         float64   `json:"price"`
	Email         string    `json:"email,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

type IntentRequest struct {
	Price float64 `json:"price" validate:"gt=0"`
}

type IntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}
