// Package models defines the account and session records the client
// persists in its local store.
package models

// User is a registered account as kept in the local user collection.
// The password is stored as entered; the client performs no hashing.
type User struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Profile is the signed-in identity: a User without its password.
type Profile struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Profile projects u to the identity stored as the current session.
func (u User) Profile() Profile {
	return Profile{
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

// Valid reports whether p carries an identity. A decoded session with an
// empty email is treated as corrupt.
func (p Profile) Valid() bool {
	return p.Email != ""
}
