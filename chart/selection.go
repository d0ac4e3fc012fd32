package chart

// Selection is the in-progress drag range. It only exists between pointer-down and pointer-up.
type Selection struct {
	Anchor    int
	Cursor    int
	HasCursor bool
}

// Bounds returns the ordered range covered by the selection; ok is false until the cursor moves.
func (s Selection) Bounds() (lo, hi int, ok bool) {
	if !s.HasCursor {
		return 0, 0, false
	}
	return min(s.Anchor, s.Cursor), max(s.Anchor, s.Cursor), true
}

type dragState int

const (
	dragIdle dragState = iota
	dragSelecting
)

func (d dragState) String() string {
	if d == dragSelecting {
		return "selecting"
	}
	return "idle"
}
