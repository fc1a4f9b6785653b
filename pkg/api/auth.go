package api

// SignInRequest is the payload for POST /auth/login
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignInUser wraps the profile nesting the backend uses on sign-in
type SignInUser struct {
	Profile UserProfile `json:"profile"`
}

// SignInResponse is returned on successful sign-in.
// Access token expiry is carried inside the JWT itself, not as a field.
type SignInResponse struct {
	AccessToken  string     `json:"accessToken"`
	RefreshToken string     `json:"refreshToken"`
	User         SignInUser `json:"user"`
}

// SignUpRequest is the payload for POST /auth/sign-up
type SignUpRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// SignUpResponse is returned on successful sign-up
type SignUpResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// TokenResponse is returned by POST /auth/new-access-token.
// The pair replaces the stored one wholesale.
type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// UserProfile is the user snapshot carried in session state
type UserProfile struct {
	ID        string  `json:"id"`
	Email     string  `json:"email,omitempty"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	AvatarURL *string `json:"avatarUrl"`
}

// MeResponse is returned by GET /profile
type MeResponse struct {
	ID     string  `json:"id"`
	Email  string  `json:"email"`
	Name   string  `json:"name"`
	Avatar *string `json:"avatar,omitempty"`
}

// UpdateProfileRequest is the payload for POST /profile/update
type UpdateProfileRequest struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
}

// ErrorResponse is the backend error envelope
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
