package user

// UserOutput never carries the password hash; the token only appears on
// login responses.
type UserOutput struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Token    string `json:"token,omitempty"`
}
