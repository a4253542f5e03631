package wizard

import "errors"

var (
	ErrUnknownField      = errors.New("unknown field")
	ErrFieldKind         = errors.New("wrong field kind")
	ErrNotTerminalStep   = errors.New("submission is only allowed from the last step")
	ErrIncomplete        = errors.New("required fields are missing")
	ErrAlreadySubmitted  = errors.New("wizard already submitted")
	ErrUnauthenticated   = errors.New("please log in to continue")
	ErrNoSubmitter       = errors.New("no submitter configured")
	ErrInvalidDefinition = errors.New("invalid wizard definition")
)
