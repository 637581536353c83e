package dto

// CredentialsRequest describes email/password payload of register and login.
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateAccountRequest carries optional replacement fields.
type UpdateAccountRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// AccountResponse is the public view of an account. It never carries credentials.
type AccountResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// MessageResponse wraps a human readable success message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse wraps a human readable failure message.
type ErrorResponse struct {
	Error string `json:"error"`
}
