package core

// Directions holds the four independent movement flags sampled for one frame.
// The flags are not mutually exclusive; opposing flags may be set together.
type Directions struct {
	Right bool
	Left  bool
	Up    bool
	Down  bool
}

// Any reports whether at least one direction flag is set.
func (d Directions) Any() bool {
	return d.Right || d.Left || d.Up || d.Down
}

// PointerRelease is a discrete pointer-released event in world coordinates.
type PointerRelease struct {
	Pos Vec
}

// InputSnapshot is the abstracted input state for a single simulation frame.
// The platform builds one per tick from keyboard and mouse events; the
// simulation never sees raw devices.
type InputSnapshot struct {
	Move Directions

	// PrimaryHeld is the fire control (left mouse button or fire key).
	PrimaryHeld bool
	// SecondaryHeld is the right mouse button. The simulation carries it but
	// no action is bound to it.
	SecondaryHeld bool

	// Release is set on the frame a pointer button was released.
	Release *PointerRelease
	// Pointer is the last known pointer position, used for hover feedback.
	Pointer Vec

	// DT is the elapsed time for this frame in seconds.
	// Zero means "use the configured tick interval".
	DT float64
}

// NewInputSnapshot creates an empty snapshot.
func NewInputSnapshot() InputSnapshot {
	return InputSnapshot{}
}

// Click returns a snapshot containing only a pointer release at (x, y).
func Click(x, y float64) InputSnapshot {
	return InputSnapshot{
		Release: &PointerRelease{Pos: V(x, y)},
		Pointer: V(x, y),
	}
}

// Clear resets the per-frame events while keeping the pointer position.
func (s *InputSnapshot) Clear() {
	pointer := s.Pointer
	*s = InputSnapshot{Pointer: pointer}
}
