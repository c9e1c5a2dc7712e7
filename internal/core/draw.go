package core

// EntityKind identifies what a draw request depicts.
type EntityKind int

const (
	KindBackground EntityKind = iota
	KindShip
	KindEnemy
	KindProjectile
	KindAmmo
	KindScore
	KindWave
	KindTitle
	KindButton
	KindPanel
)

// String returns a human-readable name for the kind.
func (k EntityKind) String() string {
	switch k {
	case KindBackground:
		return "background"
	case KindShip:
		return "ship"
	case KindEnemy:
		return "enemy"
	case KindProjectile:
		return "projectile"
	case KindAmmo:
		return "ammo"
	case KindScore:
		return "score"
	case KindWave:
		return "wave"
	case KindTitle:
		return "title"
	case KindButton:
		return "button"
	case KindPanel:
		return "panel"
	default:
		return "unknown"
	}
}

// DrawRequest is one abstract item the render collaborator should draw.
// The simulation never touches pixels; it only describes what is visible.
type DrawRequest struct {
	Kind  EntityKind
	Pos   Vec    // Top-left corner in world units
	Size  Vec    // Extent in world units (zero for HUD text)
	Tag   string // Visual state: facing, enemy type, button id
	Value int    // Numeric payload (ammo count, score, wave number)
	Label string // Text for titles and buttons
	Hover bool   // Pointer is over this item
}

// DrawList is the ordered list of draw requests for one frame, back to front.
type DrawList []DrawRequest

// Count returns the number of requests of the given kind.
func (l DrawList) Count(kind EntityKind) int {
	n := 0
	for _, r := range l {
		if r.Kind == kind {
			n++
		}
	}
	return n
}

// Find returns the first request of the given kind and tag.
func (l DrawList) Find(kind EntityKind, tag string) (DrawRequest, bool) {
	for _, r := range l {
		if r.Kind == kind && r.Tag == tag {
			return r, true
		}
	}
	return DrawRequest{}, false
}
