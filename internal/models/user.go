package models

// UserCredential is one users.json record; the collection is an object keyed
// by username. Password holds the digest, never the plaintext.
type UserCredential struct {
	Password string `json:"password"`
	IsAdmin  bool   `json:"is_admin"`
	Points   int    `json:"points"`
	Status   Status `json:"status"`
}
