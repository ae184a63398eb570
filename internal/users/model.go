// Package users manages the durable directory of registered accounts.
package users

// User is a registered account.
//
// The password is stored in the clear: this vault is a local demonstration
// app, not a security boundary, and the persisted format keeps fidelity with
// what a reader of the store file would expect to find.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
}
