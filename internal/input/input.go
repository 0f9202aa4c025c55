package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action is a viewer command, not a physical key
type Action int

const (
	ActionQuit Action = iota
	ActionPause
	ActionProfile
	ActionCount // sentinel for array sizing
)

// Manager maps physical keys to viewer actions and tracks press edges between frames.
// Key events arrive from GLFW callbacks; frame code reads with JustPressed.
type Manager struct {
	mu sync.RWMutex

	keyToActions map[glfw.Key][]Action

	held        [ActionCount]bool
	justPressed [ActionCount]bool
}

// NewManager creates a Manager with the default bindings:
// Escape/Q quit, Space pauses animation, P logs frame timings.
func NewManager() *Manager {
	m := &Manager{keyToActions: make(map[glfw.Key][]Action)}

	m.BindKey(glfw.KeyEscape, ActionQuit)
	m.BindKey(glfw.KeyQ, ActionQuit)
	m.BindKey(glfw.KeySpace, ActionPause)
	m.BindKey(glfw.KeyP, ActionProfile)

	return m
}

// BindKey binds a key to an action. A key may drive several actions.
func (m *Manager) BindKey(key glfw.Key, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keyToActions[key] = append(m.keyToActions[key], action)
}

// UnbindKey removes all action bindings for a key
func (m *Manager) UnbindKey(key glfw.Key) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.keyToActions, key)
}

// HandleKeyEvent updates state for one key event.
func (m *Manager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	m.mu.Lock()
	defer m.mu.Unlock()

	actions, ok := m.keyToActions[key]
	if !ok {
		return
	}

	pressed := action == glfw.Press || action == glfw.Repeat
	for _, act := range actions {
		if pressed && !m.held[act] {
			m.justPressed[act] = true
		}
		m.held[act] = pressed
	}
}

// Attach installs the key callback on window.
func (m *Manager) Attach(window *glfw.Window) {
	window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		m.HandleKeyEvent(key, action)
	})
}

// JustPressed reports whether the action was pressed since the last PostUpdate
func (m *Manager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.justPressed[action]
}

// PostUpdate clears press edges. Call once at the end of each frame.
func (m *Manager) PostUpdate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	clear(m.justPressed[:])
}
