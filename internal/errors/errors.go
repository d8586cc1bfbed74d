// Package errors holds the domain error taxonomy returned by the
// authorization pipeline. Every failure is either NotFound or Unauthorized.
package errors

import (
	stderrors "errors"
	"fmt"
)

type Kind string

const (
	KindNotFound     Kind = "NOT_FOUND"
	KindUnauthorized Kind = "UNAUTHORIZED"
)

// DomainError is a terminal, non-retryable failure with its kind and reason preserved.
type DomainError struct {
	Code    Kind
	Message string
}

func (e *DomainError) Error() string {
	if e.Code == KindNotFound {
		return fmt.Sprintf("%s not found", e.Message)
	}
	return fmt.Sprintf("unauthorized: %s", e.Message)
}

// Is matches on kind and message so wrapped sentinels compare equal.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
}

// NotFound reports that an entity lookup produced no match.
func NotFound(entity string) *DomainError {
	return &DomainError{Code: KindNotFound, Message: entity}
}

// Unauthorized reports a rejected authorization with the given reason.
func Unauthorized(reason string) *DomainError {
	return &DomainError{Code: KindUnauthorized, Message: reason}
}

var (
	ErrCardNotFound     = NotFound("Card")
	ErrBusinessNotFound = NotFound("Business")

	ErrVirtualCardAtPOS    = Unauthorized("virtual card not allowed at point of sale")
	ErrCardExpired         = Unauthorized("expired")
	ErrCardBlocked         = Unauthorized("blocked")
	ErrInvalidCredential   = Unauthorized("invalid credential")
	ErrTypeMismatch        = Unauthorized("type mismatch")
	ErrInsufficientFunds   = Unauthorized("insufficient funds")
	ErrVirtualCardRecharge = Unauthorized("virtual card cannot be recharged")
	ErrCardNotActivated    = Unauthorized("card not activated")
)

// KindOf returns the kind of the first DomainError in err's chain.
func KindOf(err error) (Kind, bool) {
	var de *DomainError
	if stderrors.As(err, &de) {
		return de.Code, true
	}
	return "", false
}

func IsNotFound(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindNotFound
}

func IsUnauthorized(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindUnauthorized
}
