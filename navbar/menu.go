package navbar

// MenuState is the mobile overlay state.
type MenuState int

const (
	Closed MenuState = iota
	Open
)

func (s MenuState) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// Link is a section anchor in the navigation.
type Link struct {
	Name string
	Href string
}

// Links are the section anchors shown in both the desktop bar and the overlay.
var Links = []Link{
	{Name: "Home", Href: "#home"},
	{Name: "Projects", Href: "#projects"},
	{Name: "About", Href: "#about"},
	{Name: "Contact", Href: "#contact"},
}

// Menu is the mobile overlay. The zero value is Closed.
type Menu struct {
	state MenuState
}

// State returns the current state.
func (m *Menu) State() MenuState { return m.state }

// IsOpen reports whether the overlay is shown.
func (m *Menu) IsOpen() bool { return m.state == Open }

// Toggle flips the overlay, as the hamburger button does.
func (m *Menu) Toggle() MenuState {
	if m.state == Open {
		m.state = Closed
	} else {
		m.state = Open
	}
	return m.state
}

// Follow closes the overlay and returns the link target.
func (m *Menu) Follow(l Link) string {
	m.state = Closed
	return l.Href
}

// OverlayClasses returns the overlay visibility classes for the state.
func (m *Menu) OverlayClasses() string {
	if m.state == Open {
		return OverlayOpenClasses
	}
	return OverlayClosedClasses
}

const (
	OverlayOpenClasses   = "opacity-100 pointer-events-auto"
	OverlayClosedClasses = "opacity-0 pointer-events-none"
)
