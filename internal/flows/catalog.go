// Package flows declares the wizards of the job board: job posting,
// candidate profile and signup.
package flows

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/gin-gonic/gin/binding"

	"github.com/justsurfingit/jobboard/internal/wizard"
)

var (
	ErrUnknownFlow    = errors.New("unknown flow")
	ErrInvalidPayload = errors.New("invalid submission")
)

// Catalog builds wizards by flow name, all wired to the same submitter.
type Catalog struct {
	definitions map[string]func() wizard.Definition
	submitter   wizard.Submitter
}

func NewCatalog(submitter wizard.Submitter) *Catalog {
	return &Catalog{
		definitions: map[string]func() wizard.Definition{
			JobPosting: JobPostingDefinition,
			Profile:    ProfileDefinition,
			Signup:     SignupDefinition,
		},
		submitter: submitter,
	}
}

func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.definitions))
	for name := range c.definitions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build creates a fresh wizard for flow.
func (c *Catalog) Build(flow string, auth wizard.Authenticator) (*wizard.Wizard, error) {
	def, ok := c.definitions[flow]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFlow, flow)
	}
	return wizard.New(def(), wizard.WithSubmitter(c.submitter), wizard.WithAuthenticator(auth))
}

// validated runs the binding tags of an encoded payload, the same checks
// gin applies to request bodies.
func validated(payload any) (any, error) {
	if err := binding.Validator.ValidateStruct(payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return payload, nil
}

func trimmed(s *wizard.Store, key wizard.FieldKey) string {
	return strings.TrimSpace(s.String(key))
}

func appendString(cmds []wizard.Command, key wizard.FieldKey, v string) []wizard.Command {
	v = strings.TrimSpace(v)
	if v == "" || strings.EqualFold(v, "null") {
		return cmds
	}
	return append(cmds, wizard.SetField{Key: key, Value: wizard.String(v)})
}

func isRemote(location string) bool {
	return strings.Contains(strings.ToLower(location), "remote")
}
