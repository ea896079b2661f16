package script

import "errors"

var (
	// ErrUnknownInstruction indicates a line starting with an unknown verb.
	ErrUnknownInstruction = errors.New("script: unknown instruction")

	// ErrBadArity indicates an instruction with the wrong number of arguments.
	ErrBadArity = errors.New("script: wrong number of arguments")

	// ErrDuplicateLabel indicates an element label that was already defined.
	ErrDuplicateLabel = errors.New("script: duplicate element label")

	// ErrUnknownLabel indicates a reference to a label that was never defined.
	ErrUnknownLabel = errors.New("script: unknown label")
)
