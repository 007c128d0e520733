package models

// ErrorResponse represents basic error response structure
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error" example:"Invalid request body"`
}

// ValidationErrorResponse represents validation error response
type ValidationErrorResponse struct {
	Success bool        `json:"success" example:"false"`
	Errors  interface{} `json:"errors"`
}

// MessageResponse represents a generic success response
type MessageResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Employee created"`
}

// LoginSuccessResponse represents successful login response
type LoginSuccessResponse struct {
	Success bool       `json:"success" example:"true"`
	Message string     `json:"message" example:"Login successful"`
	Token   string     `json:"token" example:"v2.local.Ft9QcxZhJXEYyb7-bMM..."`
	User    PublicUser `json:"user"`
}

// VerifySuccessResponse represents successful token verification response
type VerifySuccessResponse struct {
	Success bool       `json:"success" example:"true"`
	User    PublicUser `json:"user"`
}

// NotificationsResponse represents the leave notification inbox
type NotificationsResponse struct {
	Success       bool    `json:"success" example:"true"`
	Notifications []Leave `json:"notifications"`
	UnreadCount   int     `json:"unreadCount" example:"1"`
}
