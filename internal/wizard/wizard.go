// Package wizard implements a linear multi-step form: a step sequencer,
// a form state store, a presence-only validation gate and a submission
// handler, driven through typed commands.
package wizard

import (
	"context"
	"fmt"
)

// Wizard is a single form instance. It is not safe for concurrent use;
// callers serialize commands per instance.
type Wizard struct {
	def       Definition
	seq       *Sequencer
	store     *Store
	submitter Submitter
	auth      Authenticator

	submitted bool
	result    Result
	banner    string
}

type Option func(*Wizard)

func WithSubmitter(s Submitter) Option {
	return func(w *Wizard) { w.submitter = s }
}

func WithAuthenticator(a Authenticator) Option {
	return func(w *Wizard) { w.auth = a }
}

func New(def Definition, opts ...Option) (*Wizard, error) {
	if err := def.Validate(); err != nil {
		return nil, err
	}
	w := &Wizard{
		def:   def,
		seq:   NewSequencer(def.Steps),
		store: NewStore(def.Fields),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

func (w *Wizard) Name() string { return w.def.Name }

func (w *Wizard) Definition() Definition { return w.def }

func (w *Wizard) CurrentStep() int { return w.seq.Current() }

func (w *Wizard) Store() *Store { return w.store }

func (w *Wizard) Submitted() bool { return w.submitted }

func (w *Wizard) Banner() string { return w.banner }

func (w *Wizard) SetBanner(msg string) { w.banner = msg }

// CanAdvance reports whether "Next" is enabled on the current step.
func (w *Wizard) CanAdvance() bool {
	return !w.submitted && !w.seq.IsTerminal() && Passes(w.seq.Step(), w.store)
}

// CanSubmit reports whether "Submit" is enabled.
func (w *Wizard) CanSubmit() bool {
	return !w.submitted && w.seq.IsTerminal() && len(MissingAll(w.def.Steps, w.store)) == 0
}

// Dispatch applies one command. The banner is cleared first so it only
// ever describes the outcome of the latest command.
func (w *Wizard) Dispatch(ctx context.Context, cmd Command) error {
	if w.submitted {
		return ErrAlreadySubmitted
	}
	w.banner = ""

	switch c := cmd.(type) {
	case Advance:
		if Passes(w.seq.Step(), w.store) {
			w.seq.Advance()
		}
		return nil
	case Retreat:
		w.seq.Retreat()
		return nil
	case JumpTo:
		w.seq.JumpTo(c.Step)
		return nil
	case SetField:
		return w.store.Set(c.Key, c.Value)
	case AddItem:
		return w.store.AddItem(c.Key, c.Item)
	case RemoveItem:
		return w.store.RemoveItem(c.Key, c.Item)
	case AppendRecord:
		return w.store.AppendRecord(c.Key, c.Record)
	case RemoveRecord:
		return w.store.RemoveRecord(c.Key, c.Index)
	case Submit:
		return w.submit(ctx)
	}
	return fmt.Errorf("unsupported command %T", cmd)
}

func (w *Wizard) submit(ctx context.Context) error {
	if !w.seq.IsTerminal() {
		return ErrNotTerminalStep
	}
	if missing := MissingAll(w.def.Steps, w.store); len(missing) > 0 {
		return fmt.Errorf("%w: %v", ErrIncomplete, missing)
	}
	if w.def.RequiresAuth && (w.auth == nil || !w.auth.Authenticated()) {
		w.banner = ErrUnauthenticated.Error()
		return ErrUnauthenticated
	}
	if w.def.Check != nil {
		if err := w.def.Check(w.store); err != nil {
			w.banner = err.Error()
			return err
		}
	}
	payload, err := w.def.Encode(w.store)
	if err != nil {
		w.banner = err.Error()
		return err
	}
	if w.submitter == nil {
		w.banner = ErrNoSubmitter.Error()
		return ErrNoSubmitter
	}

	res, err := w.submitter.Submit(ctx, w.def.Name, payload)
	if err != nil {
		w.banner = "submission failed: " + err.Error()
		return fmt.Errorf("submit %s: %w", w.def.Name, err)
	}
	w.submitted = true
	w.result = res
	return nil
}

// View is the renderable state of a wizard.
type View struct {
	Flow        string             `json:"flow"`
	CurrentStep int                `json:"current_step"`
	TotalSteps  int                `json:"total_steps"`
	Steps       []StepDefinition   `json:"steps"`
	Fields      map[FieldKey]Value `json:"fields"`
	CanAdvance  bool               `json:"can_advance"`
	CanSubmit   bool               `json:"can_submit"`
	Missing     []FieldKey         `json:"missing,omitempty"`
	Submitted   bool               `json:"submitted"`
	Result      *Result            `json:"result,omitempty"`
	Banner      string             `json:"banner,omitempty"`
}

func (w *Wizard) View() View {
	v := View{
		Flow:        w.def.Name,
		CurrentStep: w.seq.Current(),
		TotalSteps:  w.seq.Total(),
		Steps:       w.def.Steps,
		Fields:      w.store.Snapshot(),
		CanAdvance:  w.CanAdvance(),
		CanSubmit:   w.CanSubmit(),
		Submitted:   w.submitted,
		Banner:      w.banner,
	}
	if !w.submitted {
		v.Missing = Missing(w.seq.Step(), w.store)
	} else {
		res := w.result
		v.Result = &res
	}
	return v
}
