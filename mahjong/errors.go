package mahjong

import (
	"errors"
	"fmt"
)

// ErrorKind 错误分类
type ErrorKind int

const (
	KindInvalidTile ErrorKind = iota + 1
	KindParse
	KindInvalidHand
	KindInternalConsistency
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidTile:
		return "invalid tile"
	case KindParse:
		return "parse error"
	case KindInvalidHand:
		return "invalid hand"
	case KindInternalConsistency:
		return "internal consistency"
	}
	return "unknown"
}

// Error 引擎错误
type Error struct {
	Kind    ErrorKind
	Message string
	Cause   error
	Context map[string]any
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is 按分类比较, 用于 errors.Is(err, ErrParse) 这类判断
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	if t.Message != "" && t.Message != e.Message {
		return false
	}
	return t.Kind == e.Kind
}

func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

func newError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

var (
	ErrInvalidTile         = &Error{Kind: KindInvalidTile}
	ErrParse               = &Error{Kind: KindParse}
	ErrInvalidHand         = &Error{Kind: KindInvalidHand}
	ErrInternalConsistency = &Error{Kind: KindInternalConsistency}
	ErrNotComplete         = &Error{Kind: KindInvalidHand, Message: "hand has no winning decomposition"}
)
