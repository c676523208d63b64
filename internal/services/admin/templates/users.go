package templates

import (
	"context"

	"github.com/a-h/templ"
	"github.com/aopps/admin-console/internal/services/admin/routepath"
)

// UserIDField is the form field naming the user to delete.
const UserIDField = "user_id"

// UserRow represents a row in the users table.
type UserRow struct {
	ID     string
	Name   string
	Email  string
	Joined string
}

// UsersView provides data for the users page.
type UsersView struct {
	Rows   []UserRow
	Notice string
}

// UsersPage renders the full users document.
func UsersPage(view UsersView, page PageContext) templ.Component {
	loc := page.Loc
	heading := T(loc, "users.title")
	return Layout(page, heading, component(func(_ context.Context, m *markup) {
		pageHeader(m, heading)
		m.raw(`<div class="card"><div id="usersTable">`)
		switch {
		case view.Notice != "":
			m.notice("", view.Notice)
		case len(view.Rows) == 0:
			m.notice("users-slash", T(loc, "users.empty"))
		default:
			m.tableHead(loc, "col.user_id", "col.name", "col.email", "col.joined", "col.actions")
			for _, row := range view.Rows {
				m.raw("<tr>")
				m.codeCell(row.ID)
				m.textCell(row.Name)
				m.textCell(row.Email)
				m.textCell(row.Joined)
				m.raw(`<td><div class="action-buttons">`)
				m.postButton(routepath.UsersDelete, UserIDField, row.ID, T(loc, "users.confirm_delete", row.Name), "btn-icon delete", "trash", T(loc, "action.delete"), false)
				m.raw(`</div></td></tr>`)
			}
			m.tableEnd()
		}
		m.raw(`</div></div>`)
	}))
}
