package nav

import (
	"reflect"
	"testing"
)

func TestNewStack(t *testing.T) {
	s := NewStack()
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
	if s.Top() != nil {
		t.Error("Top() on empty stack should be nil")
	}
	if s.PopScreen(true) != nil {
		t.Error("PopScreen() on empty stack should be nil")
	}
}

func TestStackPushPop(t *testing.T) {
	root, a, b := plainScreen("Root"), plainScreen("A"), plainScreen("B")
	s := NewStack(root)

	s.PushScreen(a, true)
	s.PushScreen(b, false)

	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}
	if s.Top() != Screen(b) {
		t.Errorf("Top() = %v, want B", s.Top())
	}

	if got := s.PopScreen(true); got != Screen(b) {
		t.Errorf("PopScreen() = %v, want B", got)
	}
	if got := s.PopScreen(false); got != Screen(a) {
		t.Errorf("PopScreen() = %v, want A", got)
	}

	// The root stays.
	if got := s.PopScreen(true); got != nil {
		t.Errorf("PopScreen() at root = %v, want nil", got)
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}

	if got := s.PopLog(); !reflect.DeepEqual(got, []bool{true, false}) {
		t.Errorf("PopLog() = %v, want [true false]", got)
	}

	s.ResetPopLog()
	if len(s.PopLog()) != 0 {
		t.Error("ResetPopLog() should clear the log")
	}
}

func TestStackScreensIsCopy(t *testing.T) {
	s := NewStack(plainScreen("Root"), plainScreen("A"))

	screens := s.Screens()
	screens[0] = plainScreen("changed")

	if s.Screens()[0] != Screen(plainScreen("Root")) {
		t.Error("Screens() exposed the internal slice")
	}
}
