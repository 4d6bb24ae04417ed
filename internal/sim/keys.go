//go:build !test
// +build !test

package sim

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// InputHandler tracks held and freshly-pressed keys from GLFW callbacks
// and decodes them into the per-frame InputSnapshot the integrator
// consumes.
type InputHandler struct {
	keys       map[glfw.Key]bool
	keyPressed map[glfw.Key]bool
}

func NewInputHandler() *InputHandler {
	return &InputHandler{
		keys:       make(map[glfw.Key]bool),
		keyPressed: make(map[glfw.Key]bool),
	}
}

func (i *InputHandler) SetupCallbacks(window *glfw.Window) {
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action == glfw.Press {
			i.keys[key] = true
			i.keyPressed[key] = true
		} else if action == glfw.Release {
			i.keys[key] = false
		}
	})
}

func (i *InputHandler) IsKeyHeld(key glfw.Key) bool {
	return i.keys[key]
}

// WasKeyPressed reports a press since the last call and consumes it.
func (i *InputHandler) WasKeyPressed(key glfw.Key) bool {
	if i.keyPressed[key] {
		i.keyPressed[key] = false
		return true
	}
	return false
}

// Snapshot decodes the currently-held keys: arrows steer, either Shift
// engages speed mode.
func (i *InputHandler) Snapshot() InputSnapshot {
	return InputSnapshot{
		Up:        i.keys[glfw.KeyUp],
		Down:      i.keys[glfw.KeyDown],
		Left:      i.keys[glfw.KeyLeft],
		Right:     i.keys[glfw.KeyRight],
		SpeedMode: i.keys[glfw.KeyLeftShift] || i.keys[glfw.KeyRightShift],
	}
}
