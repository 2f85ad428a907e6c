package nav

// Host is the navigation container the controller drives.
type Host interface {
	// Screens returns the stack bottom to top.
	Screens() []Screen

	// PushScreen makes s the new top.
	PushScreen(s Screen, animated bool)

	// PopScreen removes the top screen and returns it, or nil when nothing
	// can be popped.
	PopScreen(animated bool) Screen
}

// Stack is an in-memory Host. The root screen is never popped.
type Stack struct {
	screens []Screen
	pops    []bool
}

// NewStack creates a stack holding the given screens, bottom first.
func NewStack(screens ...Screen) *Stack {
	s := &Stack{
		screens: make([]Screen, 0, len(screens)),
		pops:    make([]bool, 0),
	}
	s.screens = append(s.screens, screens...)
	return s
}

// Screens returns a copy of the stack, bottom first.
func (s *Stack) Screens() []Screen {
	screens := make([]Screen, len(s.screens))
	copy(screens, s.screens)
	return screens
}

// PushScreen adds a screen on top.
func (s *Stack) PushScreen(screen Screen, animated bool) {
	s.screens = append(s.screens, screen)
}

// PopScreen removes and returns the top screen. Returns nil when only the
// root (or nothing) is left.
func (s *Stack) PopScreen(animated bool) Screen {
	if len(s.screens) <= 1 {
		return nil
	}
	top := s.screens[len(s.screens)-1]
	s.screens = s.screens[:len(s.screens)-1]
	s.pops = append(s.pops, animated)
	return top
}

// Top returns the top screen without removing it.
func (s *Stack) Top() Screen {
	if len(s.screens) == 0 {
		return nil
	}
	return s.screens[len(s.screens)-1]
}

// Len returns the stack depth.
func (s *Stack) Len() int {
	return len(s.screens)
}

// PopLog returns the animated flag of every successful pop, oldest first.
func (s *Stack) PopLog() []bool {
	log := make([]bool, len(s.pops))
	copy(log, s.pops)
	return log
}

// ResetPopLog forgets recorded pops.
func (s *Stack) ResetPopLog() {
	s.pops = s.pops[:0]
}
