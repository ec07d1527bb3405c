package models

// Account is the full stored record for a registered shopper. Passwords are
// kept in plaintext: this is a demo storefront with no real credentials.
type Account struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session is the public projection of an Account — what the rest of the app
// is allowed to see about the signed-in shopper. Never carries the password.
type Session struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Session builds the public projection for this account.
func (a Account) Session() Session {
	return Session{ID: a.ID, Username: a.Username, Email: a.Email}
}
