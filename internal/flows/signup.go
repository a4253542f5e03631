package flows

import (
	"errors"
	"strings"

	"github.com/justsurfingit/jobboard/internal/dtos"
	"github.com/justsurfingit/jobboard/internal/wizard"
)

const Signup = "signup"

var ErrPasswordMismatch = errors.New("passwords do not match")

const (
	SignupEmail           wizard.FieldKey = "email"
	SignupPassword        wizard.FieldKey = "password"
	SignupConfirmPassword wizard.FieldKey = "confirm_password"
	SignupRole            wizard.FieldKey = "role"
	SignupFullName        wizard.FieldKey = "full_name"
	SignupAcceptTerms     wizard.FieldKey = "accept_terms"
)

func SignupDefinition() wizard.Definition {
	return wizard.Definition{
		Name: Signup,
		Steps: []wizard.StepDefinition{
			{ID: 1, Title: "Account", RequiredFields: []wizard.FieldKey{SignupEmail, SignupPassword, SignupConfirmPassword}},
			{ID: 2, Title: "Role", RequiredFields: []wizard.FieldKey{SignupRole, SignupFullName}},
			{ID: 3, Title: "Terms", RequiredFields: []wizard.FieldKey{SignupAcceptTerms}},
		},
		Fields: []wizard.FieldDefinition{
			{Key: SignupEmail, Kind: wizard.KindString},
			{Key: SignupPassword, Kind: wizard.KindString},
			{Key: SignupConfirmPassword, Kind: wizard.KindString},
			{Key: SignupRole, Kind: wizard.KindString},
			{Key: SignupFullName, Kind: wizard.KindString},
			{Key: SignupAcceptTerms, Kind: wizard.KindBool},
		},
		Check:  checkPasswords,
		Encode: encodeSignup,
	}
}

func checkPasswords(s *wizard.Store) error {
	if s.String(SignupPassword) != s.String(SignupConfirmPassword) {
		return ErrPasswordMismatch
	}
	return nil
}

func encodeSignup(s *wizard.Store) (any, error) {
	return validated(&dtos.SignupRequest{
		SignupAccount: dtos.SignupAccount{
			Email:    trimmed(s, SignupEmail),
			Password: s.String(SignupPassword),
		},
		SignupRoleChoice: dtos.SignupRoleChoice{
			Role:     strings.ToLower(trimmed(s, SignupRole)),
			FullName: trimmed(s, SignupFullName),
		},
		SignupTerms: dtos.SignupTerms{AcceptTerms: s.Bool(SignupAcceptTerms)},
	})
}
