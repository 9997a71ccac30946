package model

import (
	"errors"
	"fmt"
	"slices"
)

// ErrTargetNotFound is returned when an insertion anchor is not part of the body.
var ErrTargetNotFound = errors.New("instruction not found in body")

// Local is one slot of a method's local-variable table.
type Local struct {
	Index int
	Type  TypeRef
	Name  string
}

// DisplayName returns the slot name, falling back to the V_n convention.
func (l *Local) DisplayName() string {
	if l.Name != "" {
		return l.Name
	}

	return fmt.Sprintf("V_%d", l.Index)
}

// HandlerKind identifies the kind of protected region handler.
type HandlerKind string

// Available HandlerKind values.
const (
	HandlerCatch   HandlerKind = "catch"
	HandlerFinally HandlerKind = "finally"
	HandlerFault   HandlerKind = "fault"
)

// ExceptionHandler describes a protected region. Boundaries reference
// instructions by identity; a nil HandlerEnd means the end of the body.
type ExceptionHandler struct {
	Kind         HandlerKind
	TryStart     *Instruction
	TryEnd       *Instruction
	HandlerStart *Instruction
	HandlerEnd   *Instruction
	CatchType    TypeRef
}

// Body is the concrete implementation of a method.
type Body struct {
	InitLocals   bool
	MaxStack     int
	Locals       []*Local
	Instructions []*Instruction
	Handlers     []*ExceptionHandler
}

// AddLocal appends a new slot to the local table. Existing slots keep their index.
func (b *Body) AddLocal(typ TypeRef) *Local {
	local := &Local{Index: len(b.Locals), Type: typ}
	b.Locals = append(b.Locals, local)

	return local
}

// Append adds instructions to the end of the body.
func (b *Body) Append(instrs ...*Instruction) {
	b.Instructions = append(b.Instructions, instrs...)
}

// IndexOf returns the position of instr in the body, or -1.
func (b *Body) IndexOf(instr *Instruction) int {
	return slices.Index(b.Instructions, instr)
}

// InsertBefore inserts instrs immediately before target, preserving their order.
// Branches and handlers keep pointing at the same instruction objects.
func (b *Body) InsertBefore(target *Instruction, instrs ...*Instruction) error {
	at := b.IndexOf(target)
	if at < 0 {
		return ErrTargetNotFound
	}

	b.Instructions = slices.Insert(b.Instructions, at, instrs...)

	return nil
}

// Offsets computes the byte offset of every instruction.
func (b *Body) Offsets() map[*Instruction]int {
	offsets := make(map[*Instruction]int, len(b.Instructions))
	offset := 0

	for _, instr := range b.Instructions {
		if instr == nil {
			continue
		}

		offsets[instr] = offset
		offset += instr.Size()
	}

	return offsets
}

// CodeSize returns the encoded size of the instruction stream.
func (b *Body) CodeSize() int {
	size := 0

	for _, instr := range b.Instructions {
		if instr != nil {
			size += instr.Size()
		}
	}

	return size
}

// Validate checks that the body is internally consistent: no missing
// instructions, a dense local table, and operands that only reference slots
// and instructions owned by this body.
func (b *Body) Validate() error {
	if len(b.Instructions) > 0 && b.Instructions[0] == nil {
		return errors.New("missing first instruction")
	}

	locals := make(map[*Local]struct{}, len(b.Locals))

	for i, local := range b.Locals {
		if local == nil {
			return fmt.Errorf("local slot %d is nil", i)
		}

		if local.Index != i {
			return fmt.Errorf("local slot %d has index %d", i, local.Index)
		}

		locals[local] = struct{}{}
	}

	owned := make(map[*Instruction]struct{}, len(b.Instructions))

	for i, instr := range b.Instructions {
		if instr == nil {
			return fmt.Errorf("instruction %d is nil", i)
		}

		owned[instr] = struct{}{}
	}

	for i, instr := range b.Instructions {
		if err := validateOperand(instr, locals, owned); err != nil {
			return fmt.Errorf("instruction %d (%s): %w", i, instr.OpCode.Name, err)
		}
	}

	for i, handler := range b.Handlers {
		if err := validateHandler(handler, owned); err != nil {
			return fmt.Errorf("handler %d: %w", i, err)
		}
	}

	return nil
}

func validateOperand(instr *Instruction, locals map[*Local]struct{}, owned map[*Instruction]struct{}) error {
	if local, ok := instr.Operand.(*Local); ok {
		if _, found := locals[local]; !found {
			return errors.New("references a local outside the slot table")
		}
	}

	if instr.OpCode.IsBranch() && len(instr.Targets()) == 0 && instr.OpCode.Operand != OperandSwitch {
		return errors.New("branch without target")
	}

	for _, target := range instr.Targets() {
		if _, found := owned[target]; !found {
			return errors.New("branches outside the body")
		}
	}

	return nil
}

func validateHandler(handler *ExceptionHandler, owned map[*Instruction]struct{}) error {
	if handler == nil {
		return errors.New("nil handler")
	}

	required := []*Instruction{handler.TryStart, handler.TryEnd, handler.HandlerStart}
	for _, boundary := range required {
		if _, found := owned[boundary]; !found {
			return errors.New("boundary outside the body")
		}
	}

	if handler.HandlerEnd != nil {
		if _, found := owned[handler.HandlerEnd]; !found {
			return errors.New("handler end outside the body")
		}
	}

	return nil
}
