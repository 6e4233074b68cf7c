package views

import (
	"context"
	"strings"

	"github.com/a-h/templ"

	"github.com/eringen/folio/contact"
)

// Toast renders one notification as a fragment for the toaster.
func Toast(n contact.Notification) templ.Component {
	return component(func(ctx context.Context, b *builder) {
		variant := n.Variant
		if variant == "" {
			variant = "default"
		}
		b.open("div", "class", "toast toast-"+variant, "role", "status", "data-variant", variant)
		b.element("p", n.Title, "class", "toast-title")
		if n.Description != "" {
			b.element("p", n.Description, "class", "toast-description")
		}
		b.close("div")
	})
}

// fieldLabels maps form field names to the labels shown next to them.
var fieldLabels = map[string]string{
	"name":    "Seu nome",
	"email":   "E-mail",
	"subject": "Assunto",
	"message": "Sua mensagem",
}

// InvalidNotification describes rejected form fields.
func InvalidNotification(fields []string) contact.Notification {
	labels := make([]string, 0, len(fields))
	for _, f := range fields {
		if l, ok := fieldLabels[f]; ok {
			labels = append(labels, l)
		} else {
			labels = append(labels, f)
		}
	}
	return contact.Notification{
		Title:       "Verifique os campos do formulário",
		Description: "Preencha corretamente: " + strings.Join(labels, ", ") + ".",
		Variant:     "destructive",
	}
}

func statusPage(b *builder, meta SiteMeta, badge, title, lead string) {
	head(b, meta, PageMeta{Title: title + " | " + meta.Name})
	b.raw(`<div class="min-h-screen flex flex-col items-center justify-center px-6 py-24 bg-background">`)
	b.raw(`<div class="text-center max-w-md mx-auto">`)
	b.element("span", badge, "class", badgeClass)
	b.element("h1", title, "class", "text-5xl font-bold tracking-tight mb-6 animate-fade-up")
	b.element("p", lead, "class", "text-lg text-muted-foreground mb-8 animate-fade-up", "style", "animation-delay: 100ms")
	b.element("a", "Return Home", "href", "/", "class", "button-hover inline-flex items-center justify-center rounded-lg bg-primary text-primary-foreground px-8 py-3 animate-fade-up", "style", "animation-delay: 200ms")
	b.raw("</div>")
	b.raw(`<div class="absolute top-1/3 left-1/3 w-64 h-64 bg-primary/5 rounded-full blur-3xl -z-10"></div>`)
	b.raw(`<div class="absolute bottom-1/3 right-1/3 w-96 h-96 bg-primary/5 rounded-full blur-3xl -z-10"></div>`)
	b.raw("</div>")
	foot(b)
}

// NotFound is the fallback page for undefined paths.
func NotFound(meta SiteMeta) templ.Component {
	return component(func(ctx context.Context, b *builder) {
		statusPage(b, meta, "404 Error", "Page Not Found", "The page you're looking for doesn't exist or has been moved.")
	})
}

// ServerError is shown for 5xx responses.
func ServerError(meta SiteMeta) templ.Component {
	return component(func(ctx context.Context, b *builder) {
		statusPage(b, meta, "500 Error", "Something Went Wrong", "An unexpected error occurred. Please try again in a moment.")
	})
}
