package depth

// Trigger is one row of the event table. Action runs the first time the
// max depth goes strictly past Threshold and never again.
type Trigger struct {
	Name      string
	Threshold float32
	Action    func()

	fired bool
}

// Sequencer evaluates an ordered table of depth triggers
type Sequencer struct {
	triggers []Trigger
}

func NewSequencer(triggers ...Trigger) *Sequencer {

	s := &Sequencer{
		triggers: make([]Trigger, 0, len(triggers)),
	}

	for i := 0; i < len(triggers); i++ {
		s.AddTrigger(triggers[i])
	}

	return s
}

func (s *Sequencer) AddTrigger(t Trigger) {
	t.fired = false
	s.triggers = append(s.triggers, t)
}

// Evaluate fires, in table order, every pending trigger whose threshold maxDepth exceeds.
// It returns how many fired.
func (s *Sequencer) Evaluate(maxDepth float32) (fired int) {

	for i := 0; i < len(s.triggers); i++ {

		t := &s.triggers[i]
		if t.fired || maxDepth <= t.Threshold {
			continue
		}

		t.fired = true
		fired++

		if t.Action != nil {
			t.Action()
		}
	}

	return fired
}

// Fired reports whether the trigger with the given name already ran
func (s *Sequencer) Fired(name string) bool {

	for i := 0; i < len(s.triggers); i++ {
		if s.triggers[i].Name == name {
			return s.triggers[i].fired
		}
	}

	return false
}

func (s *Sequencer) Pending() int {

	pending := 0
	for i := 0; i < len(s.triggers); i++ {
		if !s.triggers[i].fired {
			pending++
		}
	}

	return pending
}

func (s *Sequencer) Len() int {
	return len(s.triggers)
}
