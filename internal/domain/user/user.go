package user

// User is an account. Username is the immutable identity key every owned
// contact joins on. Token, when set, is the single active session credential
// for the account; login replaces it and logout clears it.
type User struct {
	Username string
	Password string
	Name     string
	Token    *string
}
