package domain

import (
	"fmt"

	m "opaq.dev/pkg/opaq/internal/model"
)

// evaluate interprets the integer subset of the instruction set used by the
// tests and returns the value left on the stack by ret. It records the index
// of every executed instruction in trace.
func evaluate(body *m.Body, args []int64, maxSteps int) (result int64, trace []int, err error) {
	locals := make(map[*m.Local]int64, len(body.Locals))
	for _, local := range body.Locals {
		locals[local] = 0
	}

	index := make(map[*m.Instruction]int, len(body.Instructions))
	for i, instr := range body.Instructions {
		index[instr] = i
	}

	var stack []int64

	pop := func() int64 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		return top
	}

	jump := func(target *m.Instruction) int {
		return index[target]
	}

	pc := 0
	for steps := 0; steps < maxSteps; steps++ {
		if pc < 0 || pc >= len(body.Instructions) {
			return 0, trace, fmt.Errorf("pc %d out of range", pc)
		}

		trace = append(trace, pc)
		instr := body.Instructions[pc]
		next := pc + 1

		switch instr.OpCode {
		case m.Nop:
		case m.Ldarg0:
			stack = append(stack, args[0])
		case m.Ldarg1:
			stack = append(stack, args[1])
		case m.LdcI40, m.LdcI41, m.LdcI42, m.LdcI43:
			stack = append(stack, int64(instr.OpCode.Value-m.LdcI40.Value))
		case m.LdcI4S, m.LdcI4:
			stack = append(stack, int64(instr.Operand.(int32)))
		case m.Ldloc:
			stack = append(stack, locals[instr.Operand.(*m.Local)])
		case m.Stloc:
			locals[instr.Operand.(*m.Local)] = pop()
		case m.Dup:
			top := pop()
			stack = append(stack, top, top)
		case m.Pop:
			pop()
		case m.Add:
			b, a := pop(), pop()
			stack = append(stack, a+b)
		case m.Sub:
			b, a := pop(), pop()
			stack = append(stack, a-b)
		case m.Mul:
			b, a := pop(), pop()
			stack = append(stack, a*b)
		case m.Br, m.BrS:
			next = jump(instr.Operand.(*m.Instruction))
		case m.Brtrue, m.BrtrueS:
			if pop() != 0 {
				next = jump(instr.Operand.(*m.Instruction))
			}
		case m.Brfalse, m.BrfalseS:
			if pop() == 0 {
				next = jump(instr.Operand.(*m.Instruction))
			}
		case m.Bgt, m.BgtS:
			b, a := pop(), pop()
			if a > b {
				next = jump(instr.Operand.(*m.Instruction))
			}
		case m.Switch:
			targets := instr.Operand.([]*m.Instruction)
			if v := pop(); v >= 0 && v < int64(len(targets)) {
				next = jump(targets[v])
			}
		case m.Ret:
			return pop(), trace, nil
		default:
			return 0, trace, fmt.Errorf("unsupported opcode %s", instr.OpCode)
		}

		pc = next
	}

	return 0, trace, fmt.Errorf("no ret after %d steps", maxSteps)
}
