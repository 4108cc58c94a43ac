package lymphnode

import (
	"strings"
	"testing"

	"github.com/abhisek/hemepath/internal/screen/screentest"
)

func TestFirstZoneShown(t *testing.T) {
	s := New(screentest.Deps())
	if s.Zone().ID != "follicle" {
		t.Fatalf("first zone = %s", s.Zone().ID)
	}
	view := s.View(100, 60)
	if !strings.Contains(view, "Centroblasts") {
		t.Error("view should list cell types for the follicle")
	}
}

func TestNavigateZones(t *testing.T) {
	s := New(screentest.Deps())
	screentest.Press(s, "down")
	if s.Zone().ID != "mantle" {
		t.Errorf("zone = %s, want mantle", s.Zone().ID)
	}
	if !strings.Contains(s.View(100, 60), "Small naive B cells") {
		t.Error("view should follow the selection")
	}
}
