package input

import (
	"image"
	"testing"

	"gioui.org/f32"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/io/system"
	"github.com/google/go-cmp/cmp"
)

func TestGioTranslator_KeyEvents(t *testing.T) {
	tr := NewGioTranslator(0)

	var got []Event
	got = append(got, tr.Translate(key.Event{Name: key.NameEscape, State: key.Press})...)
	got = append(got, tr.Translate(key.Event{Name: key.NameEscape, State: key.Release})...)

	want := []Event{
		KeyEvent{Key: KeyEscape, State: Pressed},
		KeyEvent{Key: KeyEscape, State: Released},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected events (-want +got):\n%s", diff)
	}
}

func TestGioTranslator_ButtonSetShouldSplitIntoButtons(t *testing.T) {
	tr := NewGioTranslator(0)

	var got []Event
	got = append(got, tr.Translate(pointer.Event{Type: pointer.Press, Buttons: pointer.ButtonPrimary})...)
	got = append(got, tr.Translate(pointer.Event{Type: pointer.Press, Buttons: pointer.ButtonPrimary | pointer.ButtonSecondary})...)
	got = append(got, tr.Translate(pointer.Event{Type: pointer.Release, Buttons: pointer.ButtonSecondary})...)
	got = append(got, tr.Translate(pointer.Event{Type: pointer.Cancel})...)

	want := []Event{
		MouseButtonEvent{Button: ButtonLeft, State: Pressed},
		MouseButtonEvent{Button: ButtonRight, State: Pressed},
		MouseButtonEvent{Button: ButtonLeft, State: Released},
		MouseButtonEvent{Button: ButtonRight, State: Released},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected events (-want +got):\n%s", diff)
	}
}

func TestGioTranslator_MoveShouldDeriveMotion(t *testing.T) {
	tr := NewGioTranslator(0)

	var got []Event
	got = append(got, tr.Translate(pointer.Event{Type: pointer.Move, Position: f32.Pt(10, 10)})...)
	got = append(got, tr.Translate(pointer.Event{Type: pointer.Drag, Position: f32.Pt(12.4, 7)})...)
	got = append(got, tr.Translate(pointer.Event{Type: pointer.Leave})...)
	got = append(got, tr.Translate(pointer.Event{Type: pointer.Enter, Position: f32.Pt(0, 0)})...)

	want := []Event{
		CursorMovedEvent{Position: image.Pt(10, 10)},
		MouseMotionEvent{DX: float64(float32(12.4) - 10), DY: -3},
		CursorMovedEvent{Position: image.Pt(12, 7)},
		CursorMovedEvent{Position: image.Pt(0, 0)},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected events (-want +got):\n%s", diff)
	}
}

func TestGioTranslator_ScrollShouldUseLineHeight(t *testing.T) {
	lines := NewGioTranslator(20)
	got := lines.Translate(pointer.Event{Type: pointer.Scroll, Scroll: f32.Pt(0, 40)})
	if diff := cmp.Diff([]Event{MouseWheelEvent{Delta: LineDelta{X: 0, Y: -2}}}, got); diff != "" {
		t.Errorf("unexpected events (-want +got):\n%s", diff)
	}

	pixels := NewGioTranslator(0)
	got = pixels.Translate(pointer.Event{Type: pointer.Scroll, Scroll: f32.Pt(5, 0)})
	if diff := cmp.Diff([]Event{MouseWheelEvent{Delta: PixelDelta{X: -5, Y: 0}}}, got); diff != "" {
		t.Errorf("unexpected events (-want +got):\n%s", diff)
	}
}

func TestGioTranslator_SystemEvents(t *testing.T) {
	tr := NewGioTranslator(0)

	var got []Event
	got = append(got, tr.Translate(system.FrameEvent{Size: image.Pt(640, 480)})...)
	got = append(got, tr.Translate(system.FrameEvent{Size: image.Pt(640, 480)})...)
	got = append(got, tr.Translate(system.StageEvent{Stage: system.StagePaused})...)
	got = append(got, tr.Translate(system.StageEvent{Stage: system.StageRunning})...)
	got = append(got, tr.Translate(system.DestroyEvent{})...)

	want := []Event{
		ResizeEvent{Size: image.Pt(640, 480)},
		FocusEvent{Focused: false},
		FocusEvent{Focused: true},
		CloseEvent{},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected events (-want +got):\n%s", diff)
	}
}
