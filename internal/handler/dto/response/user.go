package response

import (
	"petconnect/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID      uuid.UUID `json:"id"`
	Email   string    `json:"email"`
	Name    string    `json:"name"`
	Role    string    `json:"role"`
	Address string    `json:"address,omitempty"`
}

func FromUserView(v *queries.UserView) *UserResponse {
	return &UserResponse{
		ID:      v.ID,
		Email:   v.Email,
		Name:    v.Name,
		Role:    v.Role,
		Address: v.Address,
	}
}
