package nav

// Screen is one entry of the navigation stack.
type Screen interface {
	// Title returns the generic display title of the screen.
	Title() string
}

// CrumbTitler is implemented by screens that want a different label in the
// breadcrumb bar than their display title.
type CrumbTitler interface {
	CrumbTitle() string
}

// TopInsetter is implemented by screens that reserve room for the crumb bar
// above their content.
type TopInsetter interface {
	SetTopInset(inset float64)
}

// BackTitler is implemented by screens that show a back-button label.
type BackTitler interface {
	SetBackButtonTitle(title string)
}

// CrumbTitle resolves the crumb label of a screen: the CrumbTitler value when
// implemented, otherwise the display title, otherwise empty.
func CrumbTitle(s Screen) string {
	if s == nil {
		return ""
	}
	if ct, ok := s.(CrumbTitler); ok {
		return ct.CrumbTitle()
	}
	return s.Title()
}

func setTopInset(s Screen, inset float64) {
	if ti, ok := s.(TopInsetter); ok {
		ti.SetTopInset(inset)
	}
}

func displayTitle(s Screen) string {
	if s == nil {
		return "<nil>"
	}
	if title := s.Title(); title != "" {
		return title
	}
	return "<???>"
}
