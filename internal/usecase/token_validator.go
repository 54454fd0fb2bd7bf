package usecase

import (
	"apothecary/internal/domain/user"
	"apothecary/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator is what the auth middleware needs from the token layer:
// a raw bearer token in, the caller's identity out.
type TokenValidator interface {
	ValidateToken(raw string) (uuid.UUID, user.Role, error)
}

type tokenValidator struct {
	jwt *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidator{jwt: jwtService}
}

func (v *tokenValidator) ValidateToken(raw string) (uuid.UUID, user.Role, error) {
	claims, err := v.jwt.ValidateToken(raw)
	if err != nil {
		return uuid.Nil, "", err
	}
	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", err
	}
	return claims.UserID, role, nil
}
