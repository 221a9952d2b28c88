// Package view renders the users screen as HTML with templ components.
package view

import (
	"strconv"

	"github.com/a-h/templ"
)

//go:generate templ generate -f page.templ

// PageView provides data for the users screen.
type PageView struct {
	Title     string
	Users     []UserRow
	DraftName string
	DraftAge  string
	EditMode  bool
}

// UserRow represents a row in the users table.
type UserRow struct {
	ID        int64
	Name      string
	Age       string
	CreatedAt string
}

// SubmitLabel is the form button caption.
func (v PageView) SubmitLabel() string {
	if v.EditMode {
		return "Update User"
	}
	return "Add User"
}

func (u UserRow) key() string {
	return strconv.FormatInt(u.ID, 10)
}

func (u UserRow) editURL() templ.SafeURL {
	return templ.URL("/users/" + u.key() + "/edit")
}

func (u UserRow) deleteURL() templ.SafeURL {
	return templ.URL("/users/" + u.key() + "/delete")
}
