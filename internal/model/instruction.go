package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Token is an opaque metadata reference such as a method, field or type signature.
type Token string

// TypeRef names a type by its fully qualified name.
type TypeRef string

// BooleanType is the runtime boolean type used for guard locals.
const BooleanType TypeRef = "System.Boolean"

// Instruction is one operation of a method body.
//
// Operand is nil or one of int32, int64, float64, string, Token, *Local,
// *Instruction or []*Instruction. Branch operands hold the identity of the
// target instruction, so inserting code in front of a target never requires
// patching the branches that point at it.
type Instruction struct {
	OpCode  OpCode
	Operand any
}

// NewInstruction creates an instruction with an optional operand.
func NewInstruction(op OpCode, operand any) *Instruction {
	return &Instruction{OpCode: op, Operand: operand}
}

// Targets returns the branch targets of the instruction, if any.
func (i *Instruction) Targets() []*Instruction {
	switch operand := i.Operand.(type) {
	case *Instruction:
		return []*Instruction{operand}
	case []*Instruction:
		return operand
	}

	return nil
}

// Size returns the encoded size of the instruction in bytes.
func (i *Instruction) Size() int {
	size := i.OpCode.Size() + i.OpCode.Operand.operandSize()
	if i.OpCode.Operand == OperandSwitch {
		size += 4 * len(i.Targets())
	}

	return size
}

// Label formats an instruction offset the way listings print it.
func Label(offset int) string {
	return fmt.Sprintf("IL_%04x", offset)
}

// Format renders the instruction using offsets to resolve branch targets.
func (i *Instruction) Format(offsets map[*Instruction]int) string {
	operand := formatOperand(i.Operand, offsets)
	if operand == "" {
		return i.OpCode.Name
	}

	return i.OpCode.Name + " " + operand
}

func formatOperand(operand any, offsets map[*Instruction]int) string {
	switch v := operand.(type) {
	case nil:
		return ""
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case string:
		return strconv.Quote(v)
	case Token:
		return string(v)
	case *Local:
		return v.DisplayName()
	case *Instruction:
		return formatTarget(v, offsets)
	case []*Instruction:
		labels := make([]string, 0, len(v))
		for _, target := range v {
			labels = append(labels, formatTarget(target, offsets))
		}

		return "(" + strings.Join(labels, ", ") + ")"
	}

	return fmt.Sprintf("%v", operand)
}

func formatTarget(target *Instruction, offsets map[*Instruction]int) string {
	offset, ok := offsets[target]
	if !ok {
		return "IL_????"
	}

	return Label(offset)
}
