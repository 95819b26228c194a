package penguins

import (
	"errors"
	"fmt"
)

// ErrorKind clasifica las fallas que pueden salir del store o del service.
// Los handlers deciden el status HTTP solo a partir del kind.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindValidation
	KindNotFound
	KindInvalidID
	KindStore
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindInvalidID:
		return "invalid_id"
	case KindStore:
		return "store"
	default:
		return "unknown"
	}
}

var (
	ErrNotFound  = errors.New("penguin not found")
	ErrInvalidID = errors.New("invalid penguin id")
)

// Error envuelve una falla del store con su kind, la operación y el id involucrado.
type Error struct {
	Kind ErrorKind
	Op   string
	ID   string
	Err  error
}

func (e *Error) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.ID, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func NotFound(op, id string) error {
	return &Error{Kind: KindNotFound, Op: op, ID: id, Err: ErrNotFound}
}

func InvalidID(op, id string) error {
	return &Error{Kind: KindInvalidID, Op: op, ID: id, Err: ErrInvalidID}
}

// StoreError marca un error inesperado del backend (conexión caída, SQL inválido, etc).
func StoreError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: KindStore, Op: op, Err: err}
}

// KindOf devuelve el kind de err, recorriendo la cadena de wrapping.
// Un error que no trae kind se considera KindUnknown (el handler responde 500).
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindUnknown
	}

	var ve ValidationErrors
	if errors.As(err, &ve) {
		return KindValidation
	}

	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	switch {
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrInvalidID):
		return KindInvalidID
	}
	return KindUnknown
}
