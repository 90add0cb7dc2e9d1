package converter

import (
	"medimatch/internal/delivery/dto"
	"medimatch/internal/domain/entity"
)

// SessionUserToCurrentUser converts the owner of a session to CurrentUser DTO
func SessionUserToCurrentUser(user *entity.SessionUser) *dto.CurrentUser {
	if user == nil {
		return nil
	}

	return &dto.CurrentUser{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  string(user.Role),
	}
}
