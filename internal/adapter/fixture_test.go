package adapter

import (
	m "opaq.dev/pkg/opaq/internal/model"
)

// sampleModule builds a module with a nested type, a loop with a backward
// branch, a switch, a protected region and a bodyless method.
func sampleModule() *m.Module {
	program := m.NewTypeDef("App", "Program")

	body := &m.Body{InitLocals: true, MaxStack: 2}
	counter := body.AddLocal("System.Int32")

	head := m.NewInstruction(m.Ldloc, counter)
	exit := m.NewInstruction(m.Ret, nil)
	body.Append(
		head,
		m.NewInstruction(m.LdcI4S, int32(1)),
		m.NewInstruction(m.Sub, nil),
		m.NewInstruction(m.Dup, nil),
		m.NewInstruction(m.Stloc, counter),
		m.NewInstruction(m.Switch, []*m.Instruction{exit, head}),
		m.NewInstruction(m.Ldstr, "done"),
		m.NewInstruction(m.Call, m.Token("void System.Console::WriteLine(string)")),
		m.NewInstruction(m.LdcR8, 1.5),
		m.NewInstruction(m.Pop, nil),
		m.NewInstruction(m.LdcI8, int64(42)),
		m.NewInstruction(m.Pop, nil),
		exit,
	)
	body.Handlers = append(body.Handlers, &m.ExceptionHandler{
		Kind:         m.HandlerCatch,
		TryStart:     head,
		TryEnd:       body.Instructions[6],
		HandlerStart: body.Instructions[6],
		HandlerEnd:   exit,
		CatchType:    "System.Exception",
	})

	program.AddMethod(&m.Method{Name: "Main", Signature: "()", Attributes: m.AttrStatic, Body: body})

	helper := program.AddNested(m.NewTypeDef("", "Helper"))
	helper.AddMethod(&m.Method{Name: "Extern", Signature: "()", Attributes: m.AttrStatic | m.AttrPInvoke})
	helper.AddMethod(&m.Method{
		Name:      "Id",
		Signature: "(int32)",
		Body: &m.Body{
			MaxStack:     1,
			Instructions: []*m.Instruction{m.NewInstruction(m.Ldarg0, nil), m.NewInstruction(m.Ret, nil)},
		},
	})

	return &m.Module{Name: "App.dll", Version: "1.0.0.0", Types: []*m.TypeDef{program}}
}
