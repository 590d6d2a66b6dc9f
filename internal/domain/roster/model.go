package roster

// Doctor is a roster entry. Entries are added and removed by admins and
// never edited in place.
type Doctor struct {
	ID        string `json:"_id"`
	Email     string `json:"email" validate:"required,email"`
	Name      string `json:"name" validate:"required,max=200"`
	Specialty string `json:"specialty,omitempty" validate:"max=200"`
	Image     string `json:"image,omitempty" validate:"max=2048"`
}
