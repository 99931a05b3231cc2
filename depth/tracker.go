package depth

// Tracker follows the player's position along the stairwell and the furthest point they reached.
// Max never decreases.
type Tracker struct {
	current float32
	max     float32
}

func (t *Tracker) Update(pos float32) {

	t.current = pos
	if pos > t.max {
		t.max = pos
	}
}

func (t *Tracker) Current() float32 {
	return t.current
}

func (t *Tracker) Max() float32 {
	return t.max
}
