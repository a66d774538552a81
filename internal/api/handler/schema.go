package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth request / response types ---

type signUpRequest struct {
	Email    string `json:"email"     validate:"required,email"`
	Password string `json:"password"  validate:"required,min=8"`
	UserName string `json:"user_name" validate:"required"`
}

type signInRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type externalSignInRequest struct {
	Email       string `json:"email"        validate:"required,email"`
	UserName    string `json:"user_name"    validate:"required"`
	AccessToken string `json:"access_token" validate:"required"`
}

type userResponse struct {
	ID       string    `json:"id"`
	Email    string    `json:"email"`
	UserName string    `json:"user_name"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joined_at"`
}

type authResponse struct {
	Token string        `json:"token,omitempty"`
	User  *userResponse `json:"user,omitempty"`
}

type emailCheckResponse struct {
	Email string `json:"email"`
	Taken bool   `json:"taken"`
}

// --- Task request / response types ---

type createTaskRequest struct {
	Title string `json:"title" validate:"required,max=200"`
}

type modifyTaskRequest struct {
	ID   string `json:"id"   validate:"required"`
	Done bool   `json:"done"`
}

type taskResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"created_at"`
}

type taskListResponse struct {
	Tasks []taskResponse `json:"tasks"`
}
