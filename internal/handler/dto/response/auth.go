package response

import (
	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"apothecary/internal/domain/user"
)

type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

func FromUser(u user.User) UserResponse {
	var resp UserResponse
	_ = copier.Copy(&resp, &u)
	resp.Role = u.Role.String()
	return resp
}
