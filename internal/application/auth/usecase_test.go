package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/store-api/internal/application/auth"
	"github.com/jhoicas/store-api/internal/application/dto"
	"github.com/jhoicas/store-api/internal/domain"
	"github.com/jhoicas/store-api/internal/domain/entity"
	"github.com/jhoicas/store-api/internal/domain/repository"
	pkgjwt "github.com/jhoicas/store-api/pkg/jwt"
	"github.com/jhoicas/store-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	seq   int64
	users map[int64]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*entity.User)}
}

func (f *fakeUserRepo) Create(user *entity.User, roleIDs []int64) error {
	f.seq++
	user.ID = f.seq
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(id int64) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) ExistsByUsername(username string) (bool, error) {
	u, _ := f.GetByUsername(username)
	return u != nil, nil
}

func (f *fakeUserRepo) ExistsByEmail(email string) (bool, error) {
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// fakeRoleRepo simula la tabla roles; quitar un rol del map simula un seed incompleto.
type fakeRoleRepo struct {
	roles map[string]entity.Role
}

func newFakeRoleRepo() *fakeRoleRepo {
	return &fakeRoleRepo{roles: map[string]entity.Role{
		entity.RoleAdmin:    {ID: 1, Name: entity.RoleAdmin},
		entity.RoleManager:  {ID: 2, Name: entity.RoleManager},
		entity.RoleEmployee: {ID: 3, Name: entity.RoleEmployee},
		entity.RoleCustomer: {ID: 4, Name: entity.RoleCustomer},
	}}
}

func (f *fakeRoleRepo) GetByName(name string) (*entity.Role, error) {
	r, ok := f.roles[name]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

func (f *fakeRoleRepo) ListByUser(userID int64) ([]entity.Role, error) {
	return nil, nil
}

type fakeIdentityTx struct {
	users *fakeUserRepo
	roles *fakeRoleRepo
}

func (f *fakeIdentityTx) RunIdentity(ctx context.Context, fn func(
	users repository.UserRepository,
	roles repository.RoleRepository,
) error) error {
	return fn(f.users, f.roles)
}

const testSecret = "test-secret-key-for-unit-tests"

func newAuthUC() (*auth.AuthUseCase, *fakeUserRepo, *fakeRoleRepo) {
	users := newFakeUserRepo()
	roles := newFakeRoleRepo()
	uc := auth.NewAuthUseCase(users, &fakeIdentityTx{users: users, roles: roles}, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "store-api-test",
	}, logger.Nop())
	return uc, users, roles
}

func registerRequest() dto.RegisterRequest {
	return dto.RegisterRequest{
		Username:  "jdoe",
		Email:     "jdoe@example.com",
		Password:  "super-secreta-1",
		FirstName: "John",
		LastName:  "Doe",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_SinRolesAsignaCustomer(t *testing.T) {
	uc, _, _ := newAuthUC()

	out, err := uc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	assert.Equal(t, []string{entity.RoleCustomer}, out.Roles)
	assert.Equal(t, "jdoe", out.Username)
	assert.Equal(t, "John Doe", out.FullName)
	assert.NotZero(t, out.ID)
}

func TestRegister_AdminMasTokenDesconocido(t *testing.T) {
	uc, _, _ := newAuthUC()

	in := registerRequest()
	in.Roles = []string{"admin", "bogus"}
	out, err := uc.Register(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, []string{entity.RoleAdmin, entity.RoleCustomer}, out.Roles,
		"el token desconocido debe caer al rol por defecto")
}

func TestRegister_PasswordSeGuardaHasheado(t *testing.T) {
	uc, users, _ := newAuthUC()

	out, err := uc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	stored := users.users[out.ID]
	assert.NotEqual(t, "super-secreta-1", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("super-secreta-1")))
}

func TestRegister_UsernameDuplicadoFalla(t *testing.T) {
	uc, _, _ := newAuthUC()

	_, err := uc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	in := registerRequest()
	in.Email = "otro@example.com"
	_, err = uc.Register(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestRegister_EmailDuplicadoFalla(t *testing.T) {
	uc, _, _ := newAuthUC()

	_, err := uc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	in := registerRequest()
	in.Username = "otrousuario"
	_, err = uc.Register(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestRegister_SeedDeRolesIncompletoEsFatal(t *testing.T) {
	uc, users, roles := newAuthUC()
	delete(roles.roles, entity.RoleCustomer)

	_, err := uc.Register(context.Background(), registerRequest())
	require.ErrorIs(t, err, domain.ErrRoleSeedMissing)
	assert.Empty(t, users.users, "el usuario no debe persistirse si falta el rol")
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_EmiteCredencialConClaims(t *testing.T) {
	uc, _, _ := newAuthUC()

	in := registerRequest()
	in.Roles = []string{"manager"}
	reg, err := uc.Register(context.Background(), in)
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Username: "jdoe", Password: "super-secreta-1"})
	require.NoError(t, err)

	assert.Equal(t, "Bearer", out.Type)
	assert.Equal(t, reg.ID, out.ID)
	assert.Equal(t, "jdoe@example.com", out.Email)
	assert.Equal(t, []string{entity.RoleManager}, out.Roles)

	id, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.ID, id.UserID)
	assert.Equal(t, "jdoe", id.Username)
	assert.Equal(t, []string{entity.RoleManager}, id.Roles)
}

func TestLogin_UsuarioDesconocidoYPasswordIncorrectoSonIndistinguibles(t *testing.T) {
	uc, _, _ := newAuthUC()

	_, err := uc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	_, errUnknown := uc.Login(dto.LoginRequest{Username: "nadie", Password: "super-secreta-1"})
	_, errWrongPass := uc.Login(dto.LoginRequest{Username: "jdoe", Password: "incorrecta"})

	assert.ErrorIs(t, errUnknown, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPass, domain.ErrInvalidCredentials)
	assert.Equal(t, errUnknown, errWrongPass, "el cliente no debe poder enumerar usuarios")
}

func TestLogin_UsuarioInactivoEsRechazado(t *testing.T) {
	uc, users, _ := newAuthUC()

	out, err := uc.Register(context.Background(), registerRequest())
	require.NoError(t, err)
	users.users[out.ID].Active = false

	_, err = uc.Login(dto.LoginRequest{Username: "jdoe", Password: "super-secreta-1"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
