package domain

import (
	"errors"
	"fmt"

	m "opaq.dev/pkg/opaq/internal/model"
)

// GuardLength is the number of instructions one entry guard adds.
const GuardLength = 5

// MalformedBodyError reports a method whose body cannot be transformed safely.
type MalformedBodyError struct {
	Method string
	Reason error
}

func (e *MalformedBodyError) Error() string {
	return fmt.Sprintf("malformed body in %s: %v", e.Method, e.Reason)
}

func (e *MalformedBodyError) Unwrap() error {
	return e.Reason
}

// Injector rewrites a single method body.
type Injector interface {
	Inject(method *m.Method) error
}

// Validate checks the preconditions of InsertOpaquePredicate without
// touching the method.
func Validate(method *m.Method) error {
	if method == nil {
		return &MalformedBodyError{Method: "<nil>", Reason: errors.New("nil method")}
	}

	if !method.HasBody() || len(method.Body.Instructions) == 0 {
		return &MalformedBodyError{Method: method.FullName(), Reason: errors.New("no instructions")}
	}

	if err := method.Body.Validate(); err != nil {
		return &MalformedBodyError{Method: method.FullName(), Reason: err}
	}

	return nil
}

// InsertOpaquePredicate prefixes the method with a dead entry guard:
//
//	ldc.i4.0
//	stloc    g
//	ldloc    g
//	brtrue.s E
//	nop
//	E: ...
//
// g always holds false when tested, so the branch is never taken and
// execution falls through into the original entry E. Branches that already
// targeted E keep targeting E. Applying the transform twice stacks two guards.
func InsertOpaquePredicate(method *m.Method) error {
	if err := Validate(method); err != nil {
		return err
	}

	body := method.Body
	entry := body.Instructions[0]

	guard := body.AddLocal(m.BooleanType)
	body.InitLocals = true

	if body.MaxStack < 1 {
		body.MaxStack = 1
	}

	// Validate guarantees entry belongs to the body.
	_ = body.InsertBefore(entry,
		m.NewInstruction(m.LdcI40, nil),
		m.NewInstruction(m.Stloc, guard),
		m.NewInstruction(m.Ldloc, guard),
		m.NewInstruction(m.BrtrueS, entry),
		m.NewInstruction(m.Nop, nil),
	)

	return nil
}

// OpaquePredicateInjector is the Injector applying InsertOpaquePredicate.
type OpaquePredicateInjector struct{}

// NewOpaquePredicateInjector constructs the entry-guard injector.
func NewOpaquePredicateInjector() Injector {
	return &OpaquePredicateInjector{}
}

// Inject applies InsertOpaquePredicate.
func (OpaquePredicateInjector) Inject(method *m.Method) error {
	return InsertOpaquePredicate(method)
}
