package entity

// Role is the account role issued by the backend at signup.
type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleProvider Role = "PROVIDER"
	RoleAdmin    Role = "ADMIN"
)

// Session is the identity context for the current client. A session with an
// empty AuthToken is anonymous. The role never changes for the lifetime of a
// session; login and signup replace the whole session, logout clears it.
type Session struct {
	UserID      string `json:"user_id"`
	Role        Role   `json:"role"`
	DisplayName string `json:"display_name"`
	AuthToken   string `json:"auth_token"`
}

func (s *Session) IsAnonymous() bool {
	return s == nil || s.AuthToken == ""
}

// Credentials is the login request payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// SignupForm is the registration request payload. Latitude/Longitude/Address
// are optional; when unset they are omitted from the request.
type SignupForm struct {
	UserName        string   `json:"userName"`
	Email           string   `json:"email"`
	Password        string   `json:"password"`
	ConfirmPassword string   `json:"confirmPassword"`
	Role            Role     `json:"role"`
	Latitude        *float64 `json:"latitude,omitempty"`
	Longitude       *float64 `json:"longitude,omitempty"`
	Address         string   `json:"address,omitempty"`
}

// AuthResult is the backend's response to login and signup.
type AuthResult struct {
	Token string `json:"token"`
	Role  Role   `json:"role"`
}
