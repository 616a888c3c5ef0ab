package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/embalse/deposito-api/internal/application/dto"
	"github.com/embalse/deposito-api/internal/domain"
	"github.com/embalse/deposito-api/internal/domain/repository"
	"github.com/embalse/deposito-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase caso de uso de autenticación: login con email/password.
// El alta de usuarios vive en usecase.UserUseCase (solo ADMIN).
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica email/password contra el hash bcrypt, genera el JWT con
// usuario, rol y depósito asignado, y devuelve token + usuario. Usuarios
// inactivos no pueden ingresar.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Active {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	depotID := ""
	if user.DepotID != nil {
		depotID = *user.DepotID
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, depotID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			ID:        user.ID,
			Name:      user.Name,
			Email:     user.Email,
			Role:      user.Role,
			DepotID:   user.DepotID,
			Active:    user.Active,
			CreatedAt: user.CreatedAt,
			UpdatedAt: user.UpdatedAt,
		},
	}, nil
}
