package reflection

import "errors"

var (
	ErrRegistrySealed = errors.New("reflection: registry is sealed")
	ErrRegistryClosed = errors.New("reflection: registry is closed")
	ErrDuplicate      = errors.New("reflection: duplicate registration")
	ErrInvalidEntry   = errors.New("reflection: invalid registry entry")
	ErrNotFound       = errors.New("reflection: type not registered")
	ErrTypeMismatch   = errors.New("reflection: instance type mismatch")
)
