package mode

import (
	"testing"

	"github.com/dshills/linedit/internal/input/key"
)

func TestDefaultManagerStartsInNormal(t *testing.T) {
	m := NewDefaultManager()

	if got := m.CurrentName(); got != ModeNormal {
		t.Errorf("CurrentName() = %q, want %q", got, ModeNormal)
	}
	if m.Previous() != nil {
		t.Error("Previous() should be nil before any switch")
	}
	modes := m.Modes()
	if len(modes) != 2 || modes[0] != ModeInsert || modes[1] != ModeNormal {
		t.Errorf("Modes() = %v", modes)
	}
}

func TestManagerSwitch(t *testing.T) {
	m := NewDefaultManager()

	var from, to string
	calls := 0
	m.OnChange(func(prev, next Mode) {
		calls++
		from, to = prev.Name(), next.Name()
	})

	if err := m.Switch(ModeInsert); err != nil {
		t.Fatalf("Switch() error = %v", err)
	}
	if !m.IsMode(ModeInsert) {
		t.Error("expected insert mode")
	}
	if calls != 1 || from != ModeNormal || to != ModeInsert {
		t.Errorf("callback got %d calls %s->%s", calls, from, to)
	}
	if m.Previous().Name() != ModeNormal {
		t.Errorf("Previous() = %s", m.Previous().Name())
	}

	// Same mode is a no-op.
	if err := m.Switch(ModeInsert); err != nil {
		t.Fatalf("Switch() error = %v", err)
	}
	if calls != 1 {
		t.Errorf("callback called %d times, want 1", calls)
	}
}

func TestManagerSwitchUnknown(t *testing.T) {
	m := NewDefaultManager()
	if err := m.Switch("visual"); err == nil {
		t.Error("expected error for unknown mode")
	}
	if !m.IsMode(ModeNormal) {
		t.Error("failed switch should keep current mode")
	}
}

func TestManagerOnChangeUnregister(t *testing.T) {
	m := NewDefaultManager()
	calls := 0
	unregister := m.OnChange(func(_, _ Mode) { calls++ })

	_ = m.Switch(ModeInsert)
	unregister()
	_ = m.Switch(ModeNormal)

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestModeDisplayNames(t *testing.T) {
	if got := NewNormalMode().DisplayName(); got != "NORMAL" {
		t.Errorf("normal DisplayName() = %q", got)
	}
	if got := NewInsertMode().DisplayName(); got != "INSERT" {
		t.Errorf("insert DisplayName() = %q", got)
	}
	if NewInsertMode().CursorStyle() != CursorBar {
		t.Error("insert mode should use bar cursor")
	}
}

func TestNormalHandleUnmapped(t *testing.T) {
	m := NewNormalMode()
	tests := []struct {
		name string
		ev   key.Event
		hint bool
	}{
		{"rune", key.NewRuneEvent('z'), true},
		{"enter", key.NewSpecialEvent(key.KeyEnter), true},
		{"backspace", key.NewSpecialEvent(key.KeyBackspace), true},
		{"delete", key.NewSpecialEvent(key.KeyDelete), true},
		{"tab", key.NewSpecialEvent(key.KeyTab), false},
		{"click", key.NewClickEvent(1, 1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := m.HandleUnmapped(tt.ev)
			if tt.hint {
				if res == nil || res.Action != ActionInsertHint {
					t.Errorf("HandleUnmapped() = %+v, want insert hint", res)
				}
				return
			}
			if res != nil {
				t.Errorf("HandleUnmapped() = %+v, want nil", res)
			}
		})
	}
}

func TestInsertHandleUnmapped(t *testing.T) {
	m := NewInsertMode()
	res := m.HandleUnmapped(key.NewRuneEvent('é'))
	if res == nil || res.InsertText != "é" || !res.Consumed {
		t.Errorf("HandleUnmapped() = %+v", res)
	}
	if res := m.HandleUnmapped(key.NewSpecialEvent(key.KeyHome)); res != nil {
		t.Errorf("HandleUnmapped(Home) = %+v, want nil", res)
	}
}
