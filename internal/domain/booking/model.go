package booking

import "github.com/doctorsportal/portal/internal/platform/store"

// Booking is one patient's reservation of a slot for a service on a date.
// (AppointName, AppointmentDate, PatientName) is unique across bookings.
type Booking struct {
	ID              string  `json:"_id"`
	AppointName     string  `json:"appointName" validate:"required"`
	AppointmentDate string  `json:"appointmentDate" validate:"required"`
	PatientName     string  `json:"patientName" validate:"required"`
	PatientIdentify string  `json:"patientIdentify,omitempty" validate:"omitempty,email"`
	Slot            string  `json:"slot" validate:"required"`
	Price           float64 `json:"price,omitempty" validate:"gte=0"`
	Phone           string  `json:"phone,omitempty"`
	Paid            bool    `json:"paid"`
	TransactionID   string  `json:"transactionId,omitempty"`
}

// CreateResult reports the outcome of a booking request. Exactly one of
// Result and Booking is set: Result when a new booking was stored, Booking
// when the triple was already taken.
type CreateResult struct {
	Success bool                `json:"success"`
	Result  *store.InsertResult `json:"result,omitempty"`
	Booking *Booking            `json:"booking,omitempty"`
}

// PaymentSubmission is the body a client sends after the processor has
// confirmed a card payment.
type PaymentSubmission struct {
	TransactionID string  `json:"transactionId" validate:"required"`
	Price         float64 `json:"price" validate:"gte=0"`
	Email         string  `json:"email,omitempty" validate:"omitempty,email"`
}
