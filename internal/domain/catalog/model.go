package catalog

// AppointmentType is a bookable service and its full daily slot catalog.
// Slots keep their catalog order.
type AppointmentType struct {
	ID    string   `json:"_id"`
	Name  string   `json:"name" validate:"required"`
	Slots []string `json:"slots" validate:"required,min=1,dive,required"`
	Price float64  `json:"price,omitempty" validate:"gte=0"`
}

// Summary is the id/name projection served by GET /services.
type Summary struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}
