package auth

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/store-api/internal/application/dto"
	"github.com/jhoicas/store-api/internal/domain"
	"github.com/jhoicas/store-api/internal/domain/entity"
	"github.com/jhoicas/store-api/internal/domain/repository"
	"github.com/jhoicas/store-api/pkg/jwt"
	"github.com/jhoicas/store-api/pkg/logger"
)

// IdentityTxRunner ejecuta fn dentro de una transacción con los repos de
// usuarios y roles atados a ella. Lo implementa postgres.TxRunner.
type IdentityTxRunner interface {
	RunIdentity(ctx context.Context, fn func(
		users repository.UserRepository,
		roles repository.RoleRepository,
	) error) error
}

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// dummyHash se compara cuando el username no existe, para que el tiempo de
// respuesta de un usuario desconocido se parezca al de un password incorrecto.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("store-api-dummy"), bcrypt.DefaultCost)

// AuthUseCase casos de uso de autenticación: registro con resolución de roles y login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	tx       IdentityTxRunner
	jwtCfg   JWTConfig
	log      *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, tx IdentityTxRunner, jwtCfg JWTConfig, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, tx: tx, jwtCfg: jwtCfg, log: log}
}

// Register valida unicidad de username y email, resuelve los tokens de rol a
// roles canónicos (sin tokens o token desconocido -> CUSTOMER) y persiste el
// usuario con su set de roles en una sola transacción. Devuelve el resumen sin
// password.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserSummary, error) {
	uc.log.Info().Str("username", in.Username).Msg("registrando usuario")

	if taken, err := uc.userRepo.ExistsByUsername(in.Username); err != nil {
		return nil, err
	} else if taken {
		return nil, domain.AlreadyExists("Usuario", "username", in.Username)
	}
	if taken, err := uc.userRepo.ExistsByEmail(in.Email); err != nil {
		return nil, err
	} else if taken {
		return nil, domain.AlreadyExists("Usuario", "email", in.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	roleNames := entity.ResolveRoleTokens(in.Roles)
	now := time.Now()
	user := &entity.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = uc.tx.RunIdentity(ctx, func(users repository.UserRepository, roles repository.RoleRepository) error {
		roleIDs := make([]int64, 0, len(roleNames))
		for _, name := range roleNames {
			role, err := roles.GetByName(name)
			if err != nil {
				return err
			}
			if role == nil {
				// Seed incompleto: fallo de configuración, no de validación.
				return domain.ErrRoleSeedMissing
			}
			roleIDs = append(roleIDs, role.ID)
			user.Roles = append(user.Roles, *role)
		}
		return users.Create(user, roleIDs)
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().Int64("id", user.ID).Str("username", user.Username).Msg("usuario registrado")
	return &dto.UserSummary{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		FullName: user.FullName(),
		Roles:    roleNames,
	}, nil
}

// Login verifica username/password y emite la credencial firmada. Usuario
// desconocido y password incorrecto son indistinguibles para el cliente.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.JwtResponse, error) {
	uc.log.Info().Str("username", in.Username).Msg("autenticando usuario")

	user, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// Comparación contra un hash fijo para no delatar por tiempo que el
		// username no existe.
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(in.Password))
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !user.Active {
		return nil, domain.ErrForbidden
	}

	roleNames := user.RoleNames()
	token, err := jwt.Generate(uc.jwtCfg.Secret, jwt.Identity{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		Roles:    roleNames,
	}, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("username", in.Username).Msg("autenticación exitosa")
	return &dto.JwtResponse{
		Token:    token,
		Type:     "Bearer",
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Roles:    roleNames,
	}, nil
}
