package view

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/require"
)

func renderString(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func TestScreenRendersOneRowPerUser(t *testing.T) {
	html := renderString(t, Screen(PageView{
		Title: "Users",
		Users: []UserRow{
			{ID: 3, Name: "Alice", Age: "30", CreatedAt: "3/1/2024, 9:30:00 AM"},
			{ID: 7, Name: "Bob", Age: "25", CreatedAt: "3/1/2024, 10:30:00 AM"},
		},
	}))

	require.Equal(t, 2, strings.Count(html, `<tr data-user-id=`))
	require.Contains(t, html, `<tr data-user-id="7"><td>Bob</td><td>25</td><td>3/1/2024, 10:30:00 AM</td>`)
	require.Contains(t, html, `action="/users/7/edit"`)
	require.Contains(t, html, `action="/users/7/delete"`)
	require.NotContains(t, html, "No users found.")
	require.Contains(t, html, ">Add User</button>")
}

func TestScreenEmptyPlaceholder(t *testing.T) {
	html := renderString(t, Screen(PageView{Title: "Users"}))

	require.Contains(t, html, `<td colspan="4">No users found.</td>`)
	require.Zero(t, strings.Count(html, `<tr data-user-id=`))
}

func TestScreenEditModeShowsDraft(t *testing.T) {
	html := renderString(t, Screen(PageView{
		Title:     "Users",
		DraftName: "Bob",
		DraftAge:  "25",
		EditMode:  true,
	}))

	require.Contains(t, html, `name="name" placeholder="Name" class="input" value="Bob"`)
	require.Contains(t, html, `name="age" placeholder="Age" class="input" value="25"`)
	require.Contains(t, html, ">Update User</button>")
}

func TestScreenEscapesUserInput(t *testing.T) {
	html := renderString(t, Screen(PageView{
		Title:     "Users",
		DraftName: `"><script>`,
		Users:     []UserRow{{ID: 1, Name: "<b>x</b>"}},
	}))

	require.NotContains(t, html, "<script>")
	require.NotContains(t, html, "<b>x</b>")
	require.Contains(t, html, "&lt;b&gt;x&lt;/b&gt;")
}

func TestFailureIsSoleContent(t *testing.T) {
	html := renderString(t, Failure("connection refused"))

	require.Equal(t, "<p>Error: connection refused</p>", html)
}

func TestLayoutWrapsFragment(t *testing.T) {
	html := renderString(t, Layout("Users", Loading()))

	require.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	require.Contains(t, html, "<title>Users</title>")
	require.Contains(t, html, `<main id="screen" class="container"><p hx-get="/"`)
	require.Contains(t, html, `Loading users... <a href="/">Refresh</a></p></main>`)
}

func TestLoadingLinksBackForPlainBrowsers(t *testing.T) {
	html := renderString(t, Loading())

	require.Contains(t, html, `hx-get="/" hx-trigger="load delay:500ms"`)
	require.Contains(t, html, `<a href="/">Refresh</a>`)
}

func TestRowActionsPostToUserRoutes(t *testing.T) {
	html := renderString(t, Screen(PageView{
		Title: "Users",
		Users: []UserRow{{ID: 42, Name: "Ann"}},
	}))

	require.Contains(t, html, `action="/users/42/edit" hx-post="/users/42/edit" hx-target="#screen"`)
	require.Contains(t, html, `<button type="submit" class="btn btn-delete">Delete</button>`)
}
