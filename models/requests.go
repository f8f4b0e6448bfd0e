package models

// RegisterRequest is the body of POST /api/users/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// User converts the request into a not yet persisted user.
func (r RegisterRequest) User() User {
	return User{Name: r.Name, Email: r.Email, Password: r.Password}
}

// LoginRequest is the body of POST /api/users/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) User() User {
	return User{Email: r.Email, Password: r.Password}
}
