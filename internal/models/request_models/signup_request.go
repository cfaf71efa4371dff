package request_models

// SignUpRequest is the registration payload. Passwords are capped at bcrypt's 72-byte input.
type SignUpRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}
