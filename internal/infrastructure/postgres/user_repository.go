package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/store-api/internal/domain"
	"github.com/jhoicas/store-api/internal/domain/entity"
	"github.com/jhoicas/store-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL (usable con pool o tx).
// La asociación con roles vive en user_roles y se carga con una segunda consulta explícita.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste el usuario y sus filas user_roles. Debe invocarse dentro de
// una transacción (TxRunner) para que usuario y roles queden en la misma unidad.
func (r *UserRepo) Create(user *entity.User, roleIDs []int64) error {
	query := `
		INSERT INTO store_users (username, email, password, first_name, last_name, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		user.Username, user.Email, user.PasswordHash, user.FirstName,
		user.LastName, user.Active, user.CreatedAt, user.UpdatedAt,
	).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			if strings.Contains(err.Error(), "email") {
				return domain.AlreadyExists("Usuario", "email", user.Email)
			}
			return domain.AlreadyExists("Usuario", "username", user.Username)
		}
		return fmt.Errorf("insert user: %w", err)
	}
	for _, roleID := range roleIDs {
		_, err := r.q.Exec(context.Background(),
			`INSERT INTO user_roles (user_id, role_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			user.ID, roleID,
		)
		if err != nil {
			return fmt.Errorf("insert user role: %w", err)
		}
	}
	return nil
}

// GetByID obtiene un usuario por ID, con sus roles cargados.
func (r *UserRepo) GetByID(id int64) (*entity.User, error) {
	query := `
		SELECT id, username, email, password, first_name, last_name, active, created_at, updated_at
		FROM store_users WHERE id = $1`
	return r.getOne(query, "get user", id)
}

// GetByUsername obtiene un usuario por username, con sus roles cargados.
func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	query := `
		SELECT id, username, email, password, first_name, last_name, active, created_at, updated_at
		FROM store_users WHERE username = $1`
	return r.getOne(query, "get user by username", username)
}

// ExistsByUsername verifica si el username ya está tomado.
func (r *UserRepo) ExistsByUsername(username string) (bool, error) {
	return r.exists(`SELECT EXISTS (SELECT 1 FROM store_users WHERE username = $1)`, username)
}

// ExistsByEmail verifica si el email ya está registrado.
func (r *UserRepo) ExistsByEmail(email string) (bool, error) {
	return r.exists(`SELECT EXISTS (SELECT 1 FROM store_users WHERE email = $1)`, email)
}

func (r *UserRepo) exists(query string, arg any) (bool, error) {
	var exists bool
	if err := r.q.QueryRow(context.Background(), query, arg).Scan(&exists); err != nil {
		return false, fmt.Errorf("exists user: %w", err)
	}
	return exists, nil
}

func (r *UserRepo) getOne(query, op string, arg any) (*entity.User, error) {
	var u entity.User
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.FirstName,
		&u.LastName, &u.Active, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	roles, err := NewRoleRepository(r.q).ListByUser(u.ID)
	if err != nil {
		return nil, err
	}
	u.Roles = roles
	return &u, nil
}
