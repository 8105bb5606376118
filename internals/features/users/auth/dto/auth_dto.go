package dto

type RegisterRequest struct {
	UserName     string `json:"user_name" validate:"required,max=255"`
	UserEmail    string `json:"user_email" validate:"required,email,max=255"`
	UserPassword string `json:"user_password" validate:"required,min=6"`
}

type LoginRequest struct {
	UserEmail    string `json:"user_email" validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

type ForgotPasswordRequest struct {
	UserEmail   string `json:"user_email" validate:"required,email"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}
