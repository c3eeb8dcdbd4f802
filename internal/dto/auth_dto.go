package dto

import (
	"time"

	"github.com/aquamate-app/aquamate-backend/internal/models"
	"github.com/google/uuid"
)

type RegisterRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Gender   string `json:"gender"`
	DOB      string `json:"dob"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	Message string    `json:"message"`
	UserID  uuid.UUID `json:"userId"`
}

type LoginResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

// UserResponse is the sanitized identity projection. It is the only shape a
// user record ever leaves the service in; the password hash has no field here.
type UserResponse struct {
	ID             uuid.UUID `json:"id"`
	FullName       string    `json:"fullName"`
	Email          string    `json:"email"`
	Gender         string    `json:"gender"`
	DOB            string    `json:"dob"`
	ProfilePicture string    `json:"profilePicture"`
	CreatedAt      time.Time `json:"createdAt"`
}

func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		FullName:       u.FullName,
		Email:          u.Email,
		Gender:         u.Gender,
		DOB:            time.Time(u.DOB).Format("2006-01-02"),
		ProfilePicture: u.ProfilePicture,
		CreatedAt:      u.CreatedAt,
	}
}
