package views

import (
	"strconv"

	"github.com/eringen/folio/contact"
	"github.com/eringen/folio/content"
	"github.com/eringen/folio/navbar"
	"github.com/eringen/folio/reveal"
)

const badgeClass = "inline-block rounded-full bg-secondary dark:bg-secondary/20 px-4 py-1.5 text-sm font-medium mb-6"

func navbarSection(b *builder, brand string) {
	var menu navbar.Menu
	b.open("header",
		"id", "site-header",
		"class", navbar.BarStyle(false),
		"data-scroll-threshold", strconv.Itoa(navbar.ScrollThreshold),
		"data-compact-classes", navbar.CompactClasses,
		"data-top-classes", navbar.TopClasses,
	)
	b.raw(`<div class="max-w-7xl mx-auto flex items-center justify-between">`)
	b.element("a", brand, "href", "#", "class", "relative z-10 text-xl font-medium tracking-tight")

	b.raw(`<nav class="hidden md:flex items-center space-x-10">`)
	for _, l := range navbar.Links {
		b.open("a", "href", l.Href, "class", "text-sm font-medium relative overflow-hidden group")
		b.text(l.Name)
		b.raw(`<span class="absolute bottom-0 left-0 w-0 h-0.5 bg-primary transition-all duration-300 group-hover:w-full"></span>`)
		b.close("a")
	}
	b.raw("</nav>")

	b.open("button",
		"type", "button",
		"id", "menu-toggle",
		"class", "md:hidden z-10 p-2 text-primary",
		"aria-label", "Toggle menu",
		"aria-controls", "mobile-menu",
		"aria-expanded", strconv.FormatBool(menu.IsOpen()),
	)
	b.raw(`<div class="w-6 flex flex-col gap-1.5 justify-center items-end">`,
		`<span class="menu-bar h-px bg-current transition-all duration-300 w-6"></span>`,
		`<span class="menu-bar h-px bg-current transition-all duration-300 w-4"></span>`,
		`<span class="menu-bar h-px bg-current transition-all duration-300 w-5"></span>`,
		`</div>`)
	b.close("button")

	b.open("div",
		"id", "mobile-menu",
		"class", reveal.ClassList("fixed inset-0 bg-background/95 backdrop-blur-sm flex flex-col items-center justify-center transition-all duration-500 ease-in-out md:hidden", menu.OverlayClasses()),
		"data-open-classes", navbar.OverlayOpenClasses,
		"data-closed-classes", navbar.OverlayClosedClasses,
		"data-state", menu.State().String(),
	)
	b.raw(`<nav class="flex flex-col items-center space-y-8">`)
	for _, l := range navbar.Links {
		b.element("a", l.Name, "href", l.Href, "class", "text-xl font-medium", "data-menu-link", "")
	}
	b.raw("</nav></div>")
	b.raw("</div>")
	b.close("header")
}

func heroSection(b *builder, h content.Hero, l *Layout) {
	b.raw(`<section id="home" class="relative min-h-[90vh] flex items-center justify-center pt-28 px-6">`)
	b.openSection("div", l.Hero, "max-w-7xl mx-auto text-center space-y-8 transition-opacity duration-1000")
	b.element("span", h.Badge, "class", badgeClass+" animate-fade-up")
	b.element("h1", h.Headline,
		"class", "text-4xl md:text-6xl lg:text-7xl font-bold tracking-tight text-balance mx-auto max-w-5xl leading-tight animate-fade-up",
		"style", "animation-delay: 100ms")
	b.element("p", h.Lead,
		"class", "text-lg md:text-xl text-muted-foreground max-w-3xl mx-auto animate-fade-up",
		"style", "animation-delay: 200ms")
	b.raw(`<div class="flex flex-col sm:flex-row items-center justify-center gap-4 pt-6 animate-fade-up" style="animation-delay: 300ms">`)
	b.element("a", h.PrimaryCTA, "href", "#projects", "class", "button-hover rounded-lg bg-primary text-primary-foreground px-8 py-3 transition-all hover:shadow-lg")
	b.element("a", h.SecondaryCTA, "href", "#contact", "class", "button-hover rounded-lg bg-secondary text-secondary-foreground px-8 py-3 transition-all hover:shadow-md")
	b.raw("</div></div>")
	b.raw(`<div class="absolute top-1/4 left-1/4 w-64 h-64 bg-primary/5 rounded-full blur-3xl -z-10"></div>`,
		`<div class="absolute bottom-1/4 right-1/4 w-96 h-96 bg-primary/5 rounded-full blur-3xl -z-10"></div>`)
	b.raw("</section>")
}

func sectionHeading(b *builder, s content.Section, centered bool) {
	if centered {
		b.raw(`<div class="text-center mb-16">`)
	} else {
		b.raw(`<div>`)
	}
	b.element("span", s.Badge, "class", badgeClass)
	b.element("h2", s.Heading, "class", "text-3xl md:text-4xl font-bold tracking-tight mb-4")
	leadClass := "text-muted-foreground max-w-2xl"
	if centered {
		leadClass += " mx-auto"
	}
	b.element("p", s.Lead, "class", leadClass)
	b.raw("</div>")
}

const arrowIcon = `<svg class="ml-2 w-4 h-4" xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round"><path d="M5 12h14"></path><path d="m12 5 7 7-7 7"></path></svg>`

func projectsSection(b *builder, site content.Site, l *Layout) {
	b.openSection("section", l.Projects, "py-24 px-6 transition-opacity duration-1000")
	b.raw(`<div class="max-w-7xl mx-auto">`)
	sectionHeading(b, site.Showcase, true)
	b.raw(`<div class="grid grid-cols-1 md:grid-cols-2 gap-8 md:gap-12">`)
	for i, p := range site.Projects {
		projectCard(b, p, l.Cards[i])
	}
	b.raw("</div></div></section>")
}

func projectCard(b *builder, p content.Project, el *reveal.Element) {
	base := "project-card transition-all duration-700 ease-out bg-card border rounded-2xl overflow-hidden"
	if p.Pending() {
		base += " project-pending"
	}
	b.openRevealed("div", el, SlideOptions, base, "data-status", string(p.Status))
	b.open("a", "href", p.Link, "class", "block")
	b.raw(`<div class="aspect-video w-full overflow-hidden relative">`)
	imgClass := "w-full h-full object-cover transition-transform duration-500 ease-out"
	if p.Completed() {
		imgClass += " hover:scale-105"
	} else {
		imgClass += " filter grayscale"
	}
	b.open("img", "src", p.ImageURL, "alt", p.Title, "class", imgClass, "loading", "lazy")
	if p.Pending() {
		b.raw(`<div class="absolute inset-0 flex items-center justify-center bg-black/40">`)
		b.element("span", "Em Desenvolvimento", "class", "px-3 py-1 bg-yellow-500/90 text-black text-sm font-medium rounded")
		b.raw("</div>")
	}
	b.raw("</div>")
	b.raw(`<div class="p-6 md:p-8"><div class="flex justify-between items-center">`)
	b.element("span", p.Category, "class", "text-xs font-medium uppercase tracking-wider text-muted-foreground")
	if p.Completed() {
		b.element("span", "Concluído", "class", "text-xs bg-green-500/20 text-green-600 px-2 py-1 rounded")
	}
	b.raw("</div>")
	b.element("h3", p.Title, "class", "text-xl md:text-2xl font-semibold mt-2")
	b.rich("p", p.Description, "class", "mt-3 text-muted-foreground")
	b.raw(`<div class="mt-6 inline-flex items-center text-sm font-medium">`)
	if p.Completed() {
		b.text("Ver Detalhes")
	} else {
		b.text("Acompanhar Progresso")
	}
	b.raw(arrowIcon, "</div></div>")
	b.close("a")
	b.close("div")
}

func aboutSection(b *builder, a content.About, l *Layout) {
	b.openSection("section", l.About, "py-24 px-6 transition-opacity duration-1000 bg-secondary/30")
	b.raw(`<div class="max-w-7xl mx-auto"><div class="grid grid-cols-1 lg:grid-cols-2 gap-12 lg:gap-20 items-center">`)

	b.openRevealed("div", l.AboutText, SlideOptions, "transition-all duration-1000 ease-out")
	b.element("span", a.Badge, "class", badgeClass)
	b.element("h2", a.Name, "class", "text-3xl md:text-4xl font-bold tracking-tight mb-6")
	b.raw(`<div class="space-y-5 text-muted-foreground">`)
	for _, p := range a.Paragraphs {
		b.rich("p", p)
	}
	b.raw(`</div><div class="mt-8">`)
	b.element("h3", a.SkillsHead, "class", "text-lg font-semibold mb-4")
	b.raw(`<div class="flex flex-wrap gap-2">`)
	for _, s := range a.Skills {
		b.element("span", s, "class", "px-4 py-2 bg-background border rounded-lg text-sm font-medium")
	}
	b.raw("</div></div></div>")

	b.openRevealed("div", l.AboutImage, SlideOptions, "transition-all duration-1000 ease-out")
	b.raw(`<div class="rounded-2xl overflow-hidden bg-card shadow-lg relative aspect-[4/5]">`)
	b.open("img", "src", a.ImageURL, "alt", a.ImageAlt, "class", "w-full h-full object-cover", "loading", "lazy")
	b.raw("</div></div>")

	b.raw("</div></div></section>")
}

func alternateSection(b *builder, site content.Site, l *Layout) {
	b.openSection("section", l.Alternate, "py-24 px-6 transition-opacity duration-1000 bg-secondary/10")
	b.raw(`<div class="max-w-7xl mx-auto">`)
	b.raw(`<div class="flex flex-col md:flex-row md:items-end justify-between mb-16">`)
	sectionHeading(b, site.Featured, false)
	b.raw(`<a href="#projects" class="button-outline mt-6 md:mt-0 self-start md:self-auto group">Ver todos os projetos</a>`)
	b.raw("</div>")
	b.raw(`<div class="space-y-20">`)
	for i, p := range site.Alternate {
		alternateItem(b, p, i, l.AlternateItems[i])
	}
	b.raw("</div></div></section>")
}

func alternateItem(b *builder, p content.Project, index int, el *reveal.Element) {
	imageOrder, textOrder := "lg:order-1", "lg:order-2"
	if index%2 == 1 {
		imageOrder, textOrder = "lg:order-2", "lg:order-1"
	}
	b.openRevealed("div", el, SlideOptions, "transition-all duration-700 ease-out grid grid-cols-1 lg:grid-cols-12 gap-8 items-center")
	b.open("div", "class", "lg:col-span-7 "+imageOrder)
	b.raw(`<div class="rounded-xl overflow-hidden bg-background border shadow-sm">`)
	b.open("img", "src", p.ImageURL, "alt", p.Title, "class", "w-full aspect-[16/9] object-cover transition-transform duration-500 ease-out hover:scale-105", "loading", "lazy")
	b.raw("</div></div>")
	b.open("div", "class", "lg:col-span-5 "+textOrder)
	b.raw(`<div class="space-y-4"><div class="flex flex-wrap gap-2">`)
	for _, t := range p.Tags {
		b.element("span", t, "class", "badge badge-secondary font-normal")
	}
	b.raw("</div>")
	b.element("h3", p.Title, "class", "text-2xl md:text-3xl font-bold")
	b.rich("p", p.Description, "class", "text-muted-foreground")
	b.open("a", "href", p.Link, "class", "mt-2 inline-flex items-center font-medium group")
	b.text("Ver detalhes do projeto")
	b.raw(arrowIcon)
	b.close("a")
	b.raw("</div></div></div>")
}

var contactFields = []struct {
	id, label, kind, placeholder string
}{
	{"name", "Seu nome", "text", "Coloque seu nome"},
	{"email", "E-mail", "email", "fulano@example.com"},
	{"subject", "Assunto", "text", "Qual é o assunto?"},
}

func contactSection(b *builder, c content.Contact, l *Layout, csrf string) {
	b.openSection("section", l.Contact, "py-24 px-6 transition-opacity duration-1000")
	b.raw(`<div class="max-w-5xl mx-auto"><div class="text-center mb-12">`)
	b.element("span", c.Badge, "class", badgeClass)
	b.element("h2", c.Heading, "class", "text-3xl md:text-4xl font-bold tracking-tight mb-4")
	b.element("p", c.Lead, "class", "text-muted-foreground max-w-2xl mx-auto")
	b.raw("</div>")
	b.raw(`<div class="glassmorphism rounded-2xl p-6 md:p-10 max-w-3xl mx-auto">`)
	b.open("form",
		"id", "contact-form",
		"action", "/contact/",
		"method", "post",
		"class", "space-y-6",
		"data-idle-label", contact.Label(contact.Idle),
		"data-submitting-label", contact.Label(contact.Submitting),
	)
	b.open("input", "type", "hidden", "name", "_csrf", "value", csrf)
	b.raw(`<div class="grid grid-cols-1 md:grid-cols-2 gap-6">`)
	for i, f := range contactFields {
		if i == 2 {
			b.raw("</div>")
		}
		b.raw(`<div class="space-y-2">`)
		b.element("label", f.label, "for", f.id, "class", "text-sm font-medium")
		b.open("input", "id", f.id, "name", f.id, "type", f.kind, "placeholder", f.placeholder, "class", "input", "required", "required")
		b.raw("</div>")
	}
	b.raw(`<div class="space-y-2">`)
	b.element("label", "Sua mensagem", "for", "message", "class", "text-sm font-medium")
	b.element("textarea", "", "id", "message", "name", "message", "placeholder", "Mensagem", "class", "input min-h-[150px]", "required", "required")
	b.raw("</div>")
	b.element("button", contact.Label(contact.Idle), "type", "submit", "class", "button-hover w-full bg-primary text-primary-foreground transition-all duration-300 hover:shadow-lg")
	b.close("form")
	b.raw("</div></div></section>")
}

var socialIcons = map[string]string{
	"github":   `<path d="M15 22v-4a4.8 4.8 0 0 0-1-3.5c3 0 6-2 6-5.5.08-1.25-.27-2.48-1-3.5.28-1.15.28-2.35 0-3.5 0 0-1 0-3 1.5-2.64-.5-5.36-.5-8 0C6 2 5 2 5 2c-.3 1.15-.3 2.35 0 3.5A5.403 5.403 0 0 0 4 9c0 3.5 3 5.5 6 5.5-.39.49-.68 1.05-.85 1.65-.17.6-.22 1.23-.15 1.85v4"></path><path d="M9 18c-4.51 2-5-2-7-2"></path>`,
	"twitter":  `<path d="M22 4s-.7 2.1-2 3.4c1.6 10-9.4 17.3-18 11.6 2.2.1 4.4-.6 6-2C3 15.5.5 9.6 3 5c2.2 2.6 5.6 4.1 9 4-.9-4.2 4-6.6 7-3.8 1.1 0 3-1.2 3-1.2z"></path>`,
	"linkedin": `<path d="M16 8a6 6 0 0 1 6 6v7h-4v-7a2 2 0 0 0-2-2 2 2 0 0 0-2 2v7h-4v-7a6 6 0 0 1 6-6z"></path><rect width="4" height="12" x="2" y="9"></rect><circle cx="4" cy="4" r="2"></circle>`,
	"dribbble": `<circle cx="12" cy="12" r="10"></circle><path d="M19.13 5.09C15.22 9.14 10 10.44 2.25 10.94"></path><path d="M21.75 12.84c-6.62-1.41-12.14 1-16.38 6.32"></path><path d="M8.56 2.75c4.37 6 6 9.42 8 17.72"></path>`,
}

func footerSection(b *builder, f content.Footer, year int) {
	b.raw(`<footer class="bg-secondary/30 py-12 px-6"><div class="max-w-7xl mx-auto">`)
	b.raw(`<div class="grid grid-cols-1 md:grid-cols-4 gap-8 md:gap-12"><div class="md:col-span-2">`)
	b.element("a", f.Brand, "href", "#", "class", "text-xl font-medium inline-block mb-4")
	b.element("p", f.Tagline, "class", "text-muted-foreground max-w-md")
	b.raw(`<div class="flex space-x-4 mt-6">`)
	for _, s := range f.Social {
		b.open("a", "href", s.Href, "aria-label", "Follow on "+s.Name, "class", "p-2 rounded-full bg-background/80 border border-border/50 hover:bg-primary hover:text-primary-foreground transition-colors duration-200")
		b.raw(`<svg xmlns="http://www.w3.org/2000/svg" width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round">`)
		b.raw(socialIcons[s.Icon])
		b.raw("</svg>")
		b.close("a")
	}
	b.raw("</div></div>")

	b.raw(`<div><h3 class="font-medium mb-4">Navigation</h3><ul class="space-y-3">`)
	for _, l := range navbar.Links {
		b.raw("<li>")
		b.element("a", l.Name, "href", l.Href, "class", "text-muted-foreground hover:text-foreground transition-colors duration-200")
		b.raw("</li>")
	}
	b.raw("</ul></div>")

	b.raw(`<div><h3 class="font-medium mb-4">Contact</h3><ul class="space-y-3 text-muted-foreground">`)
	for _, line := range f.Contact {
		b.element("li", line)
	}
	b.raw("</ul></div></div>")

	b.raw(`<div class="border-t border-border/50 mt-12 pt-8 flex flex-col md:flex-row justify-between items-center">`)
	b.element("p", "© "+strconv.Itoa(year)+" "+f.Brand+". All rights reserved.", "class", "text-sm text-muted-foreground")
	b.raw(`<div class="flex space-x-6 mt-4 md:mt-0">`,
		`<a href="#" class="text-sm text-muted-foreground hover:text-foreground">Privacy Policy</a>`,
		`<a href="#" class="text-sm text-muted-foreground hover:text-foreground">Terms of Service</a>`,
		"</div></div>")
	b.raw("</div></footer>")
}
