package wizard

// StepDefinition is one page of a wizard. Steps are numbered from 1.
type StepDefinition struct {
	ID             int        `json:"id"`
	Title          string     `json:"title"`
	RequiredFields []FieldKey `json:"required_fields"`
}

// Sequencer tracks the current step. Out-of-range moves clamp into [1, N].
type Sequencer struct {
	steps   []StepDefinition
	current int
}

func NewSequencer(steps []StepDefinition) *Sequencer {
	return &Sequencer{steps: steps, current: 1}
}

func (s *Sequencer) Current() int { return s.current }

func (s *Sequencer) Total() int { return len(s.steps) }

func (s *Sequencer) IsTerminal() bool { return s.current == len(s.steps) }

// Step returns the definition of the current step.
func (s *Sequencer) Step() StepDefinition { return s.steps[s.current-1] }

func (s *Sequencer) Steps() []StepDefinition { return s.steps }

func (s *Sequencer) Advance() { s.JumpTo(s.current + 1) }

func (s *Sequencer) Retreat() { s.JumpTo(s.current - 1) }

// JumpTo moves straight to step k without checking the steps in between.
func (s *Sequencer) JumpTo(k int) {
	switch {
	case k < 1:
		k = 1
	case k > len(s.steps):
		k = len(s.steps)
	}
	s.current = k
}
