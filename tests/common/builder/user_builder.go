//go:build unit || e2e

package builder

import (
	"github.com/google/uuid"

	"apothecary/internal/domain/user"
	"apothecary/internal/handler/dto/request"
)

type UserBuilder struct {
	ID       uuid.UUID
	Name     string
	Email    string
	Password string
	Role     string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:       uuid.New(),
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "password123",
		Role:     "user",
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) BuildDomain() (*user.User, error) {
	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}
	return &user.User{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: "hashed_password",
		Role:         role,
	}, nil
}

func (u *UserBuilder) BuildRegisterRequestDTO() request.RegisterRequest {
	return request.RegisterRequest{
		Name:     u.Name,
		Email:    u.Email,
		Password: u.Password,
	}
}

func (u *UserBuilder) BuildLoginRequestDTO() request.LoginRequest {
	return request.LoginRequest{
		Email:    u.Email,
		Password: u.Password,
	}
}
