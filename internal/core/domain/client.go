package domain

// Client is a restaurant customer record.
type Client struct {
	ID        int64  `json:"id"`
	FirstName string `json:"nombre"`
	LastName  string `json:"apellidos"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"telefono,omitempty"`
	Address   string `json:"direccion,omitempty"`
}

// Employee is a restaurant staff record.
type Employee struct {
	ID       int64  `json:"id"`
	Name     string `json:"nombre"`
	Email    string `json:"email,omitempty"`
	Position string `json:"puesto,omitempty"`
}
