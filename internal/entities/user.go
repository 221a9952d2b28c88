// Package entities contains core business entities.
package entities

import "time"

// User is a row of the remote users table. ID and CreatedAt are assigned by the
// table and never set locally.
type User struct {
	ID        int64
	Name      string
	Age       string
	CreatedAt time.Time
}

// UserDraft is the name/age payload sent on insert and update.
type UserDraft struct {
	Name string
	Age  string
}

// Draft returns the editable fields of u.
func (u User) Draft() UserDraft {
	return UserDraft{Name: u.Name, Age: u.Age}
}
