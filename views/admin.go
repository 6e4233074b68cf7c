package views

import (
	"context"
	"strconv"

	"github.com/a-h/templ"

	"github.com/eringen/folio/contact"
)

// AdminLogin renders the inbox password form.
func AdminLogin(meta SiteMeta, showError bool, csrfToken string) templ.Component {
	return component(func(ctx context.Context, b *builder) {
		head(b, meta, PageMeta{Title: "Admin | " + meta.Name})
		b.raw(`<main class="admin max-w-md mx-auto py-24 px-6">`)
		b.element("h1", "Inbox", "class", "text-3xl font-bold mb-6")
		if showError {
			b.element("p", "Invalid password.", "class", "admin-error mb-4", "role", "alert")
		}
		b.open("form", "method", "post", "action", "/admin/login/", "class", "space-y-4")
		b.open("input", "type", "hidden", "name", "_csrf", "value", csrfToken)
		b.element("label", "Password", "for", "password", "class", "text-sm font-medium")
		b.open("input", "id", "password", "name", "password", "type", "password", "class", "input", "required", "required", "autocomplete", "current-password")
		b.element("button", "Sign in", "type", "submit", "class", "button-hover w-full bg-primary text-primary-foreground")
		b.close("form")
		b.raw("</main>")
		foot(b)
	})
}

// AdminInbox lists received contact messages, newest first.
func AdminInbox(meta SiteMeta, msgs []contact.Message, flash string, csrfToken string) templ.Component {
	return component(func(ctx context.Context, b *builder) {
		head(b, meta, PageMeta{Title: "Inbox | " + meta.Name})
		b.open("main", "class", "admin max-w-5xl mx-auto py-24 px-6", "data-csrf", csrfToken)
		b.raw(`<div class="flex items-center justify-between mb-8">`)
		b.element("h1", "Inbox ("+strconv.Itoa(len(msgs))+")", "class", "text-3xl font-bold")
		b.open("form", "method", "post", "action", "/admin/logout/")
		b.open("input", "type", "hidden", "name", "_csrf", "value", csrfToken)
		b.element("button", "Sign out", "type", "submit", "class", "button-outline")
		b.close("form")
		b.raw("</div>")
		if flash != "" {
			b.element("p", flash, "class", "admin-flash mb-4", "role", "status")
		}
		if len(msgs) == 0 {
			b.element("p", "No messages yet.", "class", "text-muted-foreground")
		}
		b.raw(`<ul class="space-y-6">`)
		for _, m := range msgs {
			class := "inbox-message border rounded-xl p-6"
			if !m.Read {
				class += " inbox-unread"
			}
			b.open("li", "id", "message-"+m.ID, "class", class)
			b.raw(`<div class="flex justify-between items-start gap-4"><div>`)
			b.element("h2", m.Draft.Subject, "class", "text-xl font-semibold")
			b.open("p", "class", "text-sm text-muted-foreground")
			b.text(m.Draft.Name + " <" + m.Draft.Email + "> · " + m.ReceivedAt.Format("2006-01-02 15:04"))
			b.close("p")
			b.raw("</div>")
			b.element("button", "Delete", "type", "button", "class", "button-outline", "data-delete-url", "/admin/message/"+m.ID+"/")
			b.raw("</div>")
			b.element("p", m.Draft.Message, "class", "mt-4 whitespace-pre-line")
			b.close("li")
		}
		b.raw("</ul></main>")
		foot(b)
	})
}
