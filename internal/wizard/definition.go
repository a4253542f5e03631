package wizard

import (
	"context"
	"fmt"
)

// Definition describes one flow: its steps, its fields and how the
// collected fields become a request payload.
type Definition struct {
	Name         string
	Steps        []StepDefinition
	Fields       []FieldDefinition
	RequiresAuth bool

	// Check runs at submit time after the gate, e.g. password confirmation.
	Check func(*Store) error

	// Encode turns the fields into the payload handed to the Submitter.
	Encode func(*Store) (any, error)
}

// Validate checks that steps are numbered 1..N and only require declared fields.
func (d Definition) Validate() error {
	if len(d.Steps) == 0 {
		return fmt.Errorf("%w: %s has no steps", ErrInvalidDefinition, d.Name)
	}
	if d.Encode == nil {
		return fmt.Errorf("%w: %s has no encoder", ErrInvalidDefinition, d.Name)
	}
	declared := make(map[FieldKey]bool, len(d.Fields))
	for _, f := range d.Fields {
		if declared[f.Key] {
			return fmt.Errorf("%w: %s declares %q twice", ErrInvalidDefinition, d.Name, f.Key)
		}
		declared[f.Key] = true
	}
	for i, step := range d.Steps {
		if step.ID != i+1 {
			return fmt.Errorf("%w: %s step %d has id %d", ErrInvalidDefinition, d.Name, i+1, step.ID)
		}
		for _, key := range step.RequiredFields {
			if !declared[key] {
				return fmt.Errorf("%w: %s step %d requires undeclared %q", ErrInvalidDefinition, d.Name, step.ID, key)
			}
		}
	}
	return nil
}

// Result identifies what a successful submission created.
type Result struct {
	ID       string `json:"id,omitempty"`
	Resource string `json:"resource,omitempty"`
}

// Submitter delivers an encoded payload to wherever the flow's data lives.
type Submitter interface {
	Submit(ctx context.Context, flow string, payload any) (Result, error)
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(ctx context.Context, flow string, payload any) (Result, error)

func (f SubmitterFunc) Submit(ctx context.Context, flow string, payload any) (Result, error) {
	return f(ctx, flow, payload)
}

// Authenticator reports whether the wizard's user has a session token.
type Authenticator interface {
	Authenticated() bool
}
