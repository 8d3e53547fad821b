package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/inventario-kardex/internal/application/dto"
	"github.com/tu-usuario/inventario-kardex/internal/domain"
	"github.com/tu-usuario/inventario-kardex/internal/domain/repository"
	"github.com/tu-usuario/inventario-kardex/pkg/jwt"
)

// Config parámetros de emisión de tokens.
type Config struct {
	Secret     string
	Issuer     string
	Expiration int // minutos
}

// UseCase autenticación por username + password con emisión de JWT.
type UseCase struct {
	users repository.UserRepository
	cfg   Config
}

// NewUseCase construye el caso de uso de autenticación.
func NewUseCase(users repository.UserRepository, cfg Config) *UseCase {
	return &UseCase{users: users, cfg: cfg}
}

// Login valida las credenciales y devuelve un token firmado. Una cuenta
// inactiva no puede iniciar sesión aunque la contraseña sea correcta.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}

	user, err := uc.users.FindByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// mismo error que contraseña incorrecta: no revelamos si existe
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.Active {
		return nil, domain.ErrForbidden
	}

	token, err := jwt.Generate(uc.cfg.Secret, user.ID, user.Username, user.Role, uc.cfg.Issuer, uc.cfg.Expiration)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			ID:        user.ID,
			Username:  user.Username,
			Email:     user.Email,
			Role:      user.Role,
			Active:    user.Active,
			CreatedAt: user.CreatedAt,
			UpdatedAt: user.UpdatedAt,
		},
	}, nil
}
