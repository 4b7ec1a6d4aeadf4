package models

import db "github.com/MartPlace/MartPlace-Backend/db/sqlc"

func (u UserResponse) ToUserResponse(user *db.User) *UserResponse {
	return &UserResponse{
		ID:          user.ID,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		Role:        user.Role,
		Verified:    user.Verified,
		CreatedAt:   user.CreatedAt,
	}
}
