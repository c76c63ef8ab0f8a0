package glint

import "log/slog"

type MouseButton uint32

const (
	MouseButtonLeft   MouseButton = 0
	MouseButtonRight  MouseButton = 1
	MouseButtonMiddle MouseButton = 2
)

type KeysState struct {
	// the keys that are currently marked as "pressed"
	Pressed map[Key]bool

	// keys that were just pressed after the last call to nextTick()
	JustPressed map[Key]bool

	// keys that were just released after the last call to nextTick()
	JustReleased map[Key]bool
}

func (k *KeysState) press(key Key) {
	slog.Debug("Key just pressed", slog.String("key", key.String()))

	setTrue(&k.Pressed, key)
	setTrue(&k.JustPressed, key)
}

func (k *KeysState) release(key Key) {
	setFalse(&k.Pressed, key)
	setTrue(&k.JustReleased, key)
}

func (k *KeysState) nextTick() {
	clear(k.JustPressed)
	clear(k.JustReleased)
}

type MouseState struct {
	CursorX, CursorY float32

	// cursor movement since the last tick
	DeltaX, DeltaY float32

	// accumulated scroll wheel movement since the last tick
	WheelX, WheelY float32

	Pressed map[MouseButton]bool

	// mouse buttons that were just clicked after the last call to nextTick()
	JustPressed map[MouseButton]bool

	// mouse buttons that were just released after the last call to nextTick()
	JustReleased map[MouseButton]bool

	prevX, prevY float32
}

func (m *MouseState) press(button MouseButton) {
	setTrue(&m.Pressed, button)
	setTrue(&m.JustPressed, button)
}

func (m *MouseState) release(button MouseButton) {
	setFalse(&m.Pressed, button)
	setTrue(&m.JustReleased, button)
}

func (m *MouseState) position(x, y float32) {
	m.CursorX = x
	m.CursorY = y

	m.DeltaX += x - m.prevX
	m.DeltaY += y - m.prevY

	m.prevX = x
	m.prevY = y
}

func (m *MouseState) scroll(x, y float32) {
	m.WheelX += x
	m.WheelY += y
}

func (m *MouseState) nextTick() {
	clear(m.JustPressed)
	clear(m.JustReleased)

	m.DeltaX = 0
	m.DeltaY = 0
	m.WheelX = 0
	m.WheelY = 0
}

// InputState is the per window keyboard and mouse state. It is updated
// while the Runner polls events and must only be read between polls.
type InputState struct {
	Keys  KeysState
	Mouse MouseState
}

func (s *InputState) nextTick() {
	s.Keys.nextTick()
	s.Mouse.nextTick()
}

func setTrue[K comparable](m *map[K]bool, key K) {
	if *m == nil {
		*m = map[K]bool{}
	}

	(*m)[key] = true
}

func setFalse[K comparable](m *map[K]bool, key K) {
	if *m == nil {
		*m = map[K]bool{}
	}

	(*m)[key] = false
}
