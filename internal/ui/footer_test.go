package ui

import (
	"strings"
	"testing"
	"time"
)

func TestNewFooter(t *testing.T) {
	footer := NewFooter()

	if footer == nil {
		t.Fatal("NewFooter() returned nil")
	}

	if footer.HasFlash() {
		t.Error("Expected no flash message initially")
	}
}

func TestFooter_SetWidth(t *testing.T) {
	footer := NewFooter()

	footer.SetWidth(100)

	if footer.width != 100 {
		t.Errorf("Expected width 100, got %d", footer.width)
	}
}

func TestFooter_View_RoomsFocus(t *testing.T) {
	footer := NewFooter()
	footer.SetWidth(120)
	footer.SetContext(FocusRooms, false, false)

	view := stripANSI(footer.View())

	if !strings.Contains(view, "select room") {
		t.Errorf("Rooms footer should mention room selection, got: %q", view)
	}

	if !strings.Contains(view, "open") {
		t.Errorf("Rooms footer should mention open, got: %q", view)
	}

	if !strings.Contains(view, "quit") {
		t.Errorf("Rooms footer should mention quit, got: %q", view)
	}

	// No room open yet, so no pane to switch to
	if strings.Contains(view, "switch pane") {
		t.Errorf("Rooms footer should not offer pane switch without a room, got: %q", view)
	}
}

func TestFooter_View_RoomsFocusWithRoom(t *testing.T) {
	footer := NewFooter()
	footer.SetWidth(120)
	footer.SetContext(FocusRooms, true, false)

	view := stripANSI(footer.View())

	if !strings.Contains(view, "switch pane") {
		t.Errorf("Rooms footer should offer pane switch with a room open, got: %q", view)
	}
}

func TestFooter_View_TranscriptFocus(t *testing.T) {
	footer := NewFooter()
	footer.SetWidth(160)
	footer.SetContext(FocusTranscript, true, false)

	view := stripANSI(footer.View())

	for _, want := range []string{"select", "first/last", "detail", "compose", "settings", "quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("Transcript footer should mention %q, got: %q", want, view)
		}
	}
}

func TestFooter_View_ComposerFocus(t *testing.T) {
	footer := NewFooter()
	footer.SetWidth(120)
	footer.SetContext(FocusComposer, true, false)

	view := stripANSI(footer.View())

	if !strings.Contains(view, "send") {
		t.Errorf("Composer footer should mention send, got: %q", view)
	}

	if !strings.Contains(view, "back") {
		t.Errorf("Composer footer should mention back, got: %q", view)
	}
}

func TestFooter_View_ModalFocus(t *testing.T) {
	footer := NewFooter()
	footer.SetWidth(120)
	footer.SetContext(FocusModal, true, false)

	view := stripANSI(footer.View())

	if !strings.Contains(view, "save") {
		t.Errorf("Modal footer should mention save, got: %q", view)
	}

	if !strings.Contains(view, "cancel") {
		t.Errorf("Modal footer should mention cancel, got: %q", view)
	}
}

func TestFooter_View_DetailOpen(t *testing.T) {
	footer := NewFooter()
	footer.SetWidth(120)
	// Detail hints win regardless of focus
	footer.SetContext(FocusTranscript, true, true)

	view := stripANSI(footer.View())

	if !strings.Contains(view, "close") {
		t.Errorf("Detail footer should mention close, got: %q", view)
	}

	if !strings.Contains(view, "scroll") {
		t.Errorf("Detail footer should mention scroll, got: %q", view)
	}

	if strings.Contains(view, "settings") {
		t.Errorf("Detail footer should not show transcript hints, got: %q", view)
	}
}

func TestFooter_Flash(t *testing.T) {
	footer := NewFooter()
	footer.SetWidth(120)
	footer.SetContext(FocusTranscript, true, false)

	footer.SetFlash("room not found: xyz", true)

	if !footer.HasFlash() {
		t.Error("Expected HasFlash after SetFlash")
	}

	view := stripANSI(footer.View())

	if !strings.Contains(view, "room not found: xyz") {
		t.Errorf("Footer should show the flash message, got: %q", view)
	}

	if strings.Contains(view, "quit") {
		t.Errorf("Flash should replace key hints, got: %q", view)
	}
}

func TestFooter_ClearFlash(t *testing.T) {
	footer := NewFooter()
	footer.SetWidth(120)
	footer.SetContext(FocusTranscript, true, false)

	footer.SetFlash("copied", false)
	footer.ClearFlash()

	if footer.HasFlash() {
		t.Error("Expected no flash after ClearFlash")
	}

	view := stripANSI(footer.View())

	if strings.Contains(view, "copied") {
		t.Errorf("Cleared flash should not render, got: %q", view)
	}

	if !strings.Contains(view, "quit") {
		t.Errorf("Key hints should return after clearing the flash, got: %q", view)
	}
}

func TestFooter_ClearIfExpired(t *testing.T) {
	footer := NewFooter()
	footer.SetFlash("copied", false)

	if footer.ClearIfExpired() {
		t.Error("Fresh flash should not be cleared")
	}
	if !footer.HasFlash() {
		t.Error("Flash should survive an early expiry check")
	}

	// Backdate the flash past its lifetime
	footer.flashSetAt = time.Now().Add(-DefaultFlashDuration - time.Second)

	if !footer.ClearIfExpired() {
		t.Error("Expired flash should be cleared")
	}
	if footer.HasFlash() {
		t.Error("Expected no flash after expiry")
	}
}

func TestFooter_ClearIfExpired_NoFlash(t *testing.T) {
	footer := NewFooter()

	if footer.ClearIfExpired() {
		t.Error("ClearIfExpired() without a flash should return false")
	}
}

func TestFlashTick(t *testing.T) {
	cmd := FlashTick()

	if cmd == nil {
		t.Error("FlashTick() should return a command")
	}
}

func TestFooter_BindingsSeparator(t *testing.T) {
	footer := NewFooter()
	footer.SetWidth(120)
	footer.SetContext(FocusComposer, true, false)

	view := stripANSI(footer.View())

	if !strings.Contains(view, "|") {
		t.Errorf("Footer should separate hints with pipes, got: %q", view)
	}
}
