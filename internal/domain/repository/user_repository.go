package repository

import "github.com/jhoicas/store-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// La asociación muchos-a-muchos con Role se materializa en user_roles; los
// métodos Get* devuelven el usuario con sus roles ya cargados (carga explícita).
type UserRepository interface {
	// Create persiste el usuario y sus filas en user_roles en la misma unidad
	// (usar dentro de TxRunner). Escribe el ID asignado en user.ID.
	Create(user *entity.User, roleIDs []int64) error
	GetByID(id int64) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	ExistsByUsername(username string) (bool, error)
	ExistsByEmail(email string) (bool, error)
}

// RoleRepository da acceso a los roles canónicos (datos de referencia sembrados).
type RoleRepository interface {
	GetByName(name string) (*entity.Role, error)
	ListByUser(userID int64) ([]entity.Role, error)
}
