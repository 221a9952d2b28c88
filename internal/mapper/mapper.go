// Package mapper converts between domain models and view models.
package mapper

import (
	"time"

	"users-management/internal/entities"
	"users-management/internal/screen"
	"users-management/internal/view"
)

// ToUserRow maps entities.User to a table row.
func ToUserRow(u entities.User, locale view.Locale, loc *time.Location) view.UserRow {
	return view.UserRow{
		ID:        u.ID,
		Name:      u.Name,
		Age:       u.Age,
		CreatedAt: locale.FormatTimestamp(u.CreatedAt, loc),
	}
}

// ToUserRows maps a user list to table rows, preserving order.
func ToUserRows(users []entities.User, locale view.Locale, loc *time.Location) []view.UserRow {
	rows := make([]view.UserRow, 0, len(users))
	for _, u := range users {
		rows = append(rows, ToUserRow(u, locale, loc))
	}
	return rows
}

// ToPageView maps a screen snapshot to the page model.
func ToPageView(st screen.State, title string, locale view.Locale, loc *time.Location) view.PageView {
	return view.PageView{
		Title:     title,
		Users:     ToUserRows(st.Users, locale, loc),
		DraftName: st.Draft.Name,
		DraftAge:  st.Draft.Age,
		EditMode:  st.EditMode,
	}
}
