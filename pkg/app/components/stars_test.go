package components

import (
	"strings"
	"testing"
)

func TestStarPickerSet(t *testing.T) {
	s := NewStarPicker()

	s.Set(3)
	if s.Value != 3 {
		t.Errorf("expected 3, got %d", s.Value)
	}

	s.Set(6)
	if s.Value != 3 {
		t.Errorf("out-of-range set changed value to %d", s.Value)
	}

	s.Set(-1)
	if s.Value != 3 {
		t.Errorf("negative set changed value to %d", s.Value)
	}
}

func TestStarPickerReset(t *testing.T) {
	s := NewStarPicker()
	s.Set(5)
	s.Reset()
	if s.Value != 0 {
		t.Errorf("expected 0 after reset, got %d", s.Value)
	}
}

func TestStarPickerView(t *testing.T) {
	s := NewStarPicker()
	s.Set(2)

	view := s.View()
	if strings.Count(view, "★") != 2 {
		t.Errorf("expected 2 filled stars, got %q", view)
	}
	if strings.Count(view, "☆") != 3 {
		t.Errorf("expected 3 empty stars, got %q", view)
	}
}
