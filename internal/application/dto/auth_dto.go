package dto

// RegisterRequest entrada para registro (password en texto, se hashea en el use case).
// Roles son tokens de rol ("admin", "manager", "employee"); cualquier otro token
// o la ausencia de tokens resuelve a CUSTOMER.
type RegisterRequest struct {
	Username  string   `json:"username" validate:"required,min=3,max=50"`
	Email     string   `json:"email" validate:"required,email"`
	Password  string   `json:"password" validate:"required,min=8"`
	FirstName string   `json:"firstName" validate:"required,max=100"`
	LastName  string   `json:"lastName" validate:"required,max=100"`
	Roles     []string `json:"roles"`
}

// UserSummary salida del registro: resumen sin password.
type UserSummary struct {
	ID       int64    `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	FullName string   `json:"fullName"`
	Roles    []string `json:"roles"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// JwtResponse salida del login: token firmado más los claims para uso inmediato
// del cliente.
type JwtResponse struct {
	Token    string   `json:"token"`
	Type     string   `json:"type"` // siempre "Bearer"
	ID       int64    `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Roles    []string `json:"roles"`
}
