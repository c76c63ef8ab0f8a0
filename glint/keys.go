package glint

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/glfw/v3.3/glfw"
)

type Key int

const (
	KeyUnknown Key = iota
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeySpace
	KeyEnter
	KeyEscape
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown
	KeyShiftLeft
	KeyShiftRight
	KeyControlLeft
	KeyControlRight
	KeyAltLeft
	KeyAltRight
	KeySuperLeft
	KeySuperRight
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

var keyNames = map[Key]string{
	KeySpace:        "Space",
	KeyEnter:        "Enter",
	KeyEscape:       "Escape",
	KeyTab:          "Tab",
	KeyBackspace:    "Backspace",
	KeyDelete:       "Delete",
	KeyInsert:       "Insert",
	KeyHome:         "Home",
	KeyEnd:          "End",
	KeyPageUp:       "PageUp",
	KeyPageDown:     "PageDown",
	KeyArrowLeft:    "ArrowLeft",
	KeyArrowRight:   "ArrowRight",
	KeyArrowUp:      "ArrowUp",
	KeyArrowDown:    "ArrowDown",
	KeyShiftLeft:    "ShiftLeft",
	KeyShiftRight:   "ShiftRight",
	KeyControlLeft:  "ControlLeft",
	KeyControlRight: "ControlRight",
	KeyAltLeft:      "AltLeft",
	KeyAltRight:     "AltRight",
	KeySuperLeft:    "SuperLeft",
	KeySuperRight:   "SuperRight",
}

func (k Key) String() string {
	switch {
	case k >= KeyA && k <= KeyZ:
		return string(rune('A' + (k - KeyA)))
	case k >= Key0 && k <= Key9:
		return string(rune('0' + (k - Key0)))
	case k >= KeyF1 && k <= KeyF12:
		return fmt.Sprintf("F%d", int(k-KeyF1)+1)
	}

	if name, ok := keyNames[k]; ok {
		return name
	}

	return "Unknown"
}

var glfwToKey = map[glfw.Key]Key{
	glfw.KeySpace:        KeySpace,
	glfw.KeyEnter:        KeyEnter,
	glfw.KeyEscape:       KeyEscape,
	glfw.KeyTab:          KeyTab,
	glfw.KeyBackspace:    KeyBackspace,
	glfw.KeyDelete:       KeyDelete,
	glfw.KeyInsert:       KeyInsert,
	glfw.KeyHome:         KeyHome,
	glfw.KeyEnd:          KeyEnd,
	glfw.KeyPageUp:       KeyPageUp,
	glfw.KeyPageDown:     KeyPageDown,
	glfw.KeyLeft:         KeyArrowLeft,
	glfw.KeyRight:        KeyArrowRight,
	glfw.KeyUp:           KeyArrowUp,
	glfw.KeyDown:         KeyArrowDown,
	glfw.KeyLeftShift:    KeyShiftLeft,
	glfw.KeyRightShift:   KeyShiftRight,
	glfw.KeyLeftControl:  KeyControlLeft,
	glfw.KeyRightControl: KeyControlRight,
	glfw.KeyLeftAlt:      KeyAltLeft,
	glfw.KeyRightAlt:     KeyAltRight,
	glfw.KeyLeftSuper:    KeySuperLeft,
	glfw.KeyRightSuper:   KeySuperRight,
}

func keyOf(glfwKey glfw.Key) (key Key, ok bool) {
	switch {
	case glfwKey >= glfw.KeyA && glfwKey <= glfw.KeyZ:
		return KeyA + Key(glfwKey-glfw.KeyA), true
	case glfwKey >= glfw.Key0 && glfwKey <= glfw.Key9:
		return Key0 + Key(glfwKey-glfw.Key0), true
	case glfwKey >= glfw.KeyF1 && glfwKey <= glfw.KeyF12:
		return KeyF1 + Key(glfwKey-glfw.KeyF1), true
	}

	key, ok = glfwToKey[glfwKey]
	if !ok {
		slog.Warn(
			"Unknown key code",
			slog.String("key", glfw.GetKeyName(glfwKey, 0)),
		)
	}

	return
}
