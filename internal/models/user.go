package models

// User is a registered account. Password holds whatever the configured
// credential scheme sealed, which is the raw password for the plaintext scheme.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"`
}

// PublicUser is the view of a User that leaves the process.
type PublicUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Email: u.Email}
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Message string     `json:"message"`
	User    PublicUser `json:"user"`
	Token   string     `json:"token,omitempty"`
}
