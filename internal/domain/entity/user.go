package entity

import "time"

// User representa un usuario de la tienda. PasswordHash es bcrypt, nunca se
// devuelve al cliente. Roles se carga de forma explícita (join user_roles).
type User struct {
	ID           int64
	Username     string // único
	Email        string // único
	PasswordHash string
	FirstName    string
	LastName     string
	Active       bool
	Roles        []Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName devuelve "FirstName LastName" para las respuestas de registro.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// RoleNames devuelve el set de nombres de rol del usuario.
func (u *User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		names = append(names, r.Name)
	}
	return names
}

// HasRole indica si el usuario tiene el rol canónico dado.
func (u *User) HasRole(name string) bool {
	for _, r := range u.Roles {
		if r.Name == name {
			return true
		}
	}
	return false
}
