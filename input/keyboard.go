package input

// Keyboard keeps the held and changed-this-frame state of every key seen so far.
type Keyboard struct {
	keys      map[Key]bool
	thisFrame map[Key]bool
}

// NewKeyboard returns a Keyboard with no key held.
func NewKeyboard() *Keyboard {
	return &Keyboard{
		keys:      make(map[Key]bool),
		thisFrame: make(map[Key]bool),
	}
}

func (k *Keyboard) press(key Key) {
	k.keys[key] = true
	k.thisFrame[key] = true
}

func (k *Keyboard) release(key Key) {
	k.keys[key] = false
	k.thisFrame[key] = true
}

// HandleEvent updates the keyboard state. Events other than KeyEvent,
// and key events without a resolvable key, are ignored.
func (k *Keyboard) HandleEvent(e Event) {
	ke, ok := e.(KeyEvent)
	if !ok || ke.Key == "" {
		return
	}
	if ke.State == Pressed {
		k.press(ke.Key)
	} else {
		k.release(ke.Key)
	}
}

// PressedThisFrame reports whether key went down during the current frame.
// Auto-repeat makes this true again on every repeat of a held key.
func (k *Keyboard) PressedThisFrame(key Key) bool {
	return k.keys[key] && k.thisFrame[key]
}

// ReleasedThisFrame reports whether key went up during the current frame.
func (k *Keyboard) ReleasedThisFrame(key Key) bool {
	return !k.keys[key] && k.thisFrame[key]
}

// IsPressed reports whether key is currently held down.
func (k *Keyboard) IsPressed(key Key) bool {
	return k.keys[key]
}

// NextFrame forgets every transition of the current frame. It must be called
// once per tick, after the update phase.
func (k *Keyboard) NextFrame() {
	clear(k.thisFrame)
}
