package domain

// Chef is a registered user of the service. The zero ID marks a record that
// has not been persisted yet; the repository writes the generated ID back on
// create.
type Chef struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	IsAdmin  bool   `json:"isAdmin"`
}

// Saved reports whether the chef has been assigned a storage ID.
// Callers must use this instead of comparing ID against zero.
func (c *Chef) Saved() bool {
	return c.ID != 0
}

// LoginRequest carries the credentials presented at login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
