package model

import "fmt"

// OperandKind describes the inline operand carried by an opcode.
type OperandKind uint8

const (
	// OperandNone means the opcode has no inline operand.
	OperandNone OperandKind = iota
	// OperandShortInt is a signed 8-bit constant (ldc.i4.s).
	OperandShortInt
	// OperandInt32 is a 32-bit constant.
	OperandInt32
	// OperandInt64 is a 64-bit constant.
	OperandInt64
	// OperandFloat64 is a 64-bit floating point constant.
	OperandFloat64
	// OperandString is a user string literal.
	OperandString
	// OperandToken is a metadata reference (method, field or type).
	OperandToken
	// OperandShortArg is an 8-bit argument index.
	OperandShortArg
	// OperandArg is a 16-bit argument index.
	OperandArg
	// OperandShortLocal is a local slot addressed with an 8-bit index.
	OperandShortLocal
	// OperandLocal is a local slot addressed with a 16-bit index.
	OperandLocal
	// OperandShortBranch is a branch target encoded with an 8-bit displacement.
	OperandShortBranch
	// OperandBranch is a branch target encoded with a 32-bit displacement.
	OperandBranch
	// OperandSwitch is a jump table of branch targets.
	OperandSwitch
)

// FlowControl describes how an opcode affects control flow.
type FlowControl uint8

// Available FlowControl values.
const (
	FlowNext FlowControl = iota
	FlowBranch
	FlowCondBranch
	FlowCall
	FlowReturn
	FlowThrow
)

// OpCode is a single entry of the instruction set.
type OpCode struct {
	Name    string
	Value   uint16
	Operand OperandKind
	Flow    FlowControl
}

// String returns the assembler mnemonic.
func (op OpCode) String() string {
	return op.Name
}

// IsBranch reports whether the opcode carries one or more branch targets.
func (op OpCode) IsBranch() bool {
	return op.Operand == OperandShortBranch || op.Operand == OperandBranch || op.Operand == OperandSwitch
}

// Size returns the encoded size of the opcode itself, without its operand.
func (op OpCode) Size() int {
	if op.Value > 0xFF {
		return 2
	}

	return 1
}

// operandSize returns the encoded size of an operand of this kind.
// Switch tables depend on their target count and are handled by the caller.
func (k OperandKind) operandSize() int {
	switch k {
	case OperandShortInt, OperandShortArg, OperandShortLocal, OperandShortBranch:
		return 1
	case OperandArg, OperandLocal:
		return 2
	case OperandInt32, OperandString, OperandToken, OperandBranch, OperandSwitch:
		return 4
	case OperandInt64, OperandFloat64:
		return 8
	case OperandNone:
		return 0
	}

	return 0
}

//nolint:gochecknoglobals // The instruction set is a fixed table.
var (
	Nop        = OpCode{"nop", 0x00, OperandNone, FlowNext}
	Ldarg0     = OpCode{"ldarg.0", 0x02, OperandNone, FlowNext}
	Ldarg1     = OpCode{"ldarg.1", 0x03, OperandNone, FlowNext}
	Ldarg2     = OpCode{"ldarg.2", 0x04, OperandNone, FlowNext}
	Ldarg3     = OpCode{"ldarg.3", 0x05, OperandNone, FlowNext}
	Ldloc0     = OpCode{"ldloc.0", 0x06, OperandNone, FlowNext}
	Ldloc1     = OpCode{"ldloc.1", 0x07, OperandNone, FlowNext}
	Ldloc2     = OpCode{"ldloc.2", 0x08, OperandNone, FlowNext}
	Ldloc3     = OpCode{"ldloc.3", 0x09, OperandNone, FlowNext}
	Stloc0     = OpCode{"stloc.0", 0x0A, OperandNone, FlowNext}
	Stloc1     = OpCode{"stloc.1", 0x0B, OperandNone, FlowNext}
	Stloc2     = OpCode{"stloc.2", 0x0C, OperandNone, FlowNext}
	Stloc3     = OpCode{"stloc.3", 0x0D, OperandNone, FlowNext}
	LdargS     = OpCode{"ldarg.s", 0x0E, OperandShortArg, FlowNext}
	StargS     = OpCode{"starg.s", 0x10, OperandShortArg, FlowNext}
	LdlocS     = OpCode{"ldloc.s", 0x11, OperandShortLocal, FlowNext}
	StlocS     = OpCode{"stloc.s", 0x13, OperandShortLocal, FlowNext}
	Ldnull     = OpCode{"ldnull", 0x14, OperandNone, FlowNext}
	LdcI4M1    = OpCode{"ldc.i4.m1", 0x15, OperandNone, FlowNext}
	LdcI40     = OpCode{"ldc.i4.0", 0x16, OperandNone, FlowNext}
	LdcI41     = OpCode{"ldc.i4.1", 0x17, OperandNone, FlowNext}
	LdcI42     = OpCode{"ldc.i4.2", 0x18, OperandNone, FlowNext}
	LdcI43     = OpCode{"ldc.i4.3", 0x19, OperandNone, FlowNext}
	LdcI44     = OpCode{"ldc.i4.4", 0x1A, OperandNone, FlowNext}
	LdcI45     = OpCode{"ldc.i4.5", 0x1B, OperandNone, FlowNext}
	LdcI46     = OpCode{"ldc.i4.6", 0x1C, OperandNone, FlowNext}
	LdcI47     = OpCode{"ldc.i4.7", 0x1D, OperandNone, FlowNext}
	LdcI48     = OpCode{"ldc.i4.8", 0x1E, OperandNone, FlowNext}
	LdcI4S     = OpCode{"ldc.i4.s", 0x1F, OperandShortInt, FlowNext}
	LdcI4      = OpCode{"ldc.i4", 0x20, OperandInt32, FlowNext}
	LdcI8      = OpCode{"ldc.i8", 0x21, OperandInt64, FlowNext}
	LdcR8      = OpCode{"ldc.r8", 0x23, OperandFloat64, FlowNext}
	Dup        = OpCode{"dup", 0x25, OperandNone, FlowNext}
	Pop        = OpCode{"pop", 0x26, OperandNone, FlowNext}
	Call       = OpCode{"call", 0x28, OperandToken, FlowCall}
	Ret        = OpCode{"ret", 0x2A, OperandNone, FlowReturn}
	BrS        = OpCode{"br.s", 0x2B, OperandShortBranch, FlowBranch}
	BrfalseS   = OpCode{"brfalse.s", 0x2C, OperandShortBranch, FlowCondBranch}
	BrtrueS    = OpCode{"brtrue.s", 0x2D, OperandShortBranch, FlowCondBranch}
	BeqS       = OpCode{"beq.s", 0x2E, OperandShortBranch, FlowCondBranch}
	BgeS       = OpCode{"bge.s", 0x2F, OperandShortBranch, FlowCondBranch}
	BgtS       = OpCode{"bgt.s", 0x30, OperandShortBranch, FlowCondBranch}
	BleS       = OpCode{"ble.s", 0x31, OperandShortBranch, FlowCondBranch}
	BltS       = OpCode{"blt.s", 0x32, OperandShortBranch, FlowCondBranch}
	BneUnS     = OpCode{"bne.un.s", 0x33, OperandShortBranch, FlowCondBranch}
	Br         = OpCode{"br", 0x38, OperandBranch, FlowBranch}
	Brfalse    = OpCode{"brfalse", 0x39, OperandBranch, FlowCondBranch}
	Brtrue     = OpCode{"brtrue", 0x3A, OperandBranch, FlowCondBranch}
	Beq        = OpCode{"beq", 0x3B, OperandBranch, FlowCondBranch}
	Bge        = OpCode{"bge", 0x3C, OperandBranch, FlowCondBranch}
	Bgt        = OpCode{"bgt", 0x3D, OperandBranch, FlowCondBranch}
	Ble        = OpCode{"ble", 0x3E, OperandBranch, FlowCondBranch}
	Blt        = OpCode{"blt", 0x3F, OperandBranch, FlowCondBranch}
	BneUn      = OpCode{"bne.un", 0x40, OperandBranch, FlowCondBranch}
	Switch     = OpCode{"switch", 0x45, OperandSwitch, FlowCondBranch}
	Add        = OpCode{"add", 0x58, OperandNone, FlowNext}
	Sub        = OpCode{"sub", 0x59, OperandNone, FlowNext}
	Mul        = OpCode{"mul", 0x5A, OperandNone, FlowNext}
	Div        = OpCode{"div", 0x5B, OperandNone, FlowNext}
	Rem        = OpCode{"rem", 0x5D, OperandNone, FlowNext}
	And        = OpCode{"and", 0x5F, OperandNone, FlowNext}
	Or         = OpCode{"or", 0x60, OperandNone, FlowNext}
	Xor        = OpCode{"xor", 0x61, OperandNone, FlowNext}
	Neg        = OpCode{"neg", 0x65, OperandNone, FlowNext}
	Not        = OpCode{"not", 0x66, OperandNone, FlowNext}
	Callvirt   = OpCode{"callvirt", 0x6F, OperandToken, FlowCall}
	Ldstr      = OpCode{"ldstr", 0x72, OperandString, FlowNext}
	Newobj     = OpCode{"newobj", 0x73, OperandToken, FlowCall}
	Throw      = OpCode{"throw", 0x7A, OperandNone, FlowThrow}
	Ldfld      = OpCode{"ldfld", 0x7B, OperandToken, FlowNext}
	Stfld      = OpCode{"stfld", 0x7D, OperandToken, FlowNext}
	Ldsfld     = OpCode{"ldsfld", 0x7E, OperandToken, FlowNext}
	Stsfld     = OpCode{"stsfld", 0x80, OperandToken, FlowNext}
	Box        = OpCode{"box", 0x8C, OperandToken, FlowNext}
	UnboxAny   = OpCode{"unbox.any", 0xA5, OperandToken, FlowNext}
	Endfinally = OpCode{"endfinally", 0xDC, OperandNone, FlowReturn}
	Leave      = OpCode{"leave", 0xDD, OperandBranch, FlowBranch}
	LeaveS     = OpCode{"leave.s", 0xDE, OperandShortBranch, FlowBranch}
	Ceq        = OpCode{"ceq", 0xFE01, OperandNone, FlowNext}
	Cgt        = OpCode{"cgt", 0xFE02, OperandNone, FlowNext}
	Clt        = OpCode{"clt", 0xFE04, OperandNone, FlowNext}
	Ldarg      = OpCode{"ldarg", 0xFE09, OperandArg, FlowNext}
	Ldloc      = OpCode{"ldloc", 0xFE0C, OperandLocal, FlowNext}
	Stloc      = OpCode{"stloc", 0xFE0E, OperandLocal, FlowNext}
)

//nolint:gochecknoglobals // Lookup index over the fixed table.
var opCodesByValue = indexOpCodes(
	Nop, Ldarg0, Ldarg1, Ldarg2, Ldarg3, Ldloc0, Ldloc1, Ldloc2, Ldloc3,
	Stloc0, Stloc1, Stloc2, Stloc3, LdargS, StargS, LdlocS, StlocS, Ldnull,
	LdcI4M1, LdcI40, LdcI41, LdcI42, LdcI43, LdcI44, LdcI45, LdcI46, LdcI47, LdcI48,
	LdcI4S, LdcI4, LdcI8, LdcR8, Dup, Pop, Call, Ret,
	BrS, BrfalseS, BrtrueS, BeqS, BgeS, BgtS, BleS, BltS, BneUnS,
	Br, Brfalse, Brtrue, Beq, Bge, Bgt, Ble, Blt, BneUn, Switch,
	Add, Sub, Mul, Div, Rem, And, Or, Xor, Neg, Not,
	Callvirt, Ldstr, Newobj, Throw, Ldfld, Stfld, Ldsfld, Stsfld, Box, UnboxAny,
	Endfinally, Leave, LeaveS, Ceq, Cgt, Clt, Ldarg, Ldloc, Stloc,
)

func indexOpCodes(ops ...OpCode) map[uint16]OpCode {
	index := make(map[uint16]OpCode, len(ops))
	for _, op := range ops {
		index[op.Value] = op
	}

	return index
}

// OpCodeByValue looks up an opcode by its encoded value.
func OpCodeByValue(value uint16) (OpCode, error) {
	op, ok := opCodesByValue[value]
	if !ok {
		return OpCode{}, fmt.Errorf("unknown opcode 0x%04X", value)
	}

	return op, nil
}
