package types

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// User is the identity the client keeps for the logged-in account.
type User struct {
	ID         int64  `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	FirstLogin bool   `json:"first_login,omitempty"`
}

type AuthResponse struct {
	Token string `json:"token"`
}
