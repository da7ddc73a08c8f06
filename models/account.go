package models

type Account struct {
	ID        int64  `json:"id"`
	UserName  string `json:"userName"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	Available bool   `json:"available"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	UserName        string `json:"userName" binding:"required,min=2"`
	Email           string `json:"email" binding:"required,email"`
	CurrentPassword string `json:"currentPassword" binding:"required,min=8"`
	NewPassword     string `json:"newPassword"`
	IsAvailable     bool   `json:"isAvailable"`
}

// UpdateAccountRequest mirrors the backend account command payload; also used
// for admin block/unblock, which flips IsAvailable.
type UpdateAccountRequest struct {
	ID              int64  `json:"id"`
	UserName        string `json:"userName"`
	Email           string `json:"email"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	IsAvailable     bool   `json:"isAvailable"`
}
