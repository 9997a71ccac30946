package adapter

import (
	"fmt"
	"strings"

	m "opaq.dev/pkg/opaq/internal/model"
)

// RenderModule renders the whole module as an assembler-style listing.
func RenderModule(module *m.Module) string {
	var b strings.Builder

	fmt.Fprintf(&b, ".module %s\n", module.Name)

	if module.Version != "" {
		fmt.Fprintf(&b, ".ver %s\n", module.Version)
	}

	for _, typ := range module.Types {
		b.WriteString("\n")
		renderType(&b, typ, 0)
	}

	return b.String()
}

// RenderType renders one type and its nested types.
func RenderType(typ *m.TypeDef) string {
	var b strings.Builder

	renderType(&b, typ, 0)

	return b.String()
}

// renderType writes typ and its nested types in declaration order, using an
// explicit stack rather than recursion.
func renderType(b *strings.Builder, typ *m.TypeDef, depth int) {
	type frame struct {
		typ    *m.TypeDef
		depth  int
		nested int
	}

	openType(b, typ, depth)

	stack := []*frame{{typ: typ, depth: depth}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]

		if top.nested < len(top.typ.Nested) {
			child := top.typ.Nested[top.nested]
			top.nested++

			b.WriteString("\n")
			openType(b, child, top.depth+1)
			stack = append(stack, &frame{typ: child, depth: top.depth + 1})

			continue
		}

		fmt.Fprintf(b, "%s}\n", strings.Repeat("  ", top.depth))
		stack = stack[:len(stack)-1]
	}
}

// openType writes the class header and the type's own methods.
func openType(b *strings.Builder, typ *m.TypeDef, depth int) {
	indent := strings.Repeat("  ", depth)

	keyword := ".class"
	if depth > 0 {
		keyword = ".class nested"
	}

	fmt.Fprintf(b, "%s%s %s\n%s{\n", indent, keyword, typ.FullName(), indent)

	for i, method := range typ.Methods {
		if i > 0 {
			b.WriteString("\n")
		}

		renderMethod(b, method, depth+1)
	}
}

func renderMethod(b *strings.Builder, method *m.Method, depth int) {
	indent := strings.Repeat("  ", depth)

	fmt.Fprintf(b, "%s.method %s%s%s", indent, methodModifiers(method.Attributes), method.Name, method.Signature)

	if method.Body == nil {
		b.WriteString(" {}\n")
		return
	}

	fmt.Fprintf(b, "\n%s{\n", indent)

	inner := indent + "  "
	body := method.Body

	fmt.Fprintf(b, "%s.maxstack %d\n", inner, body.MaxStack)

	if len(body.Locals) > 0 {
		locals := make([]string, 0, len(body.Locals))
		for _, local := range body.Locals {
			locals = append(locals, fmt.Sprintf("[%d] %s %s", local.Index, local.Type, local.DisplayName()))
		}

		init := ""
		if body.InitLocals {
			init = "init "
		}

		fmt.Fprintf(b, "%s.locals %s(%s)\n", inner, init, strings.Join(locals, ", "))
	}

	offsets := body.Offsets()
	for _, instr := range body.Instructions {
		fmt.Fprintf(b, "%s%s: %s\n", inner, m.Label(offsets[instr]), instr.Format(offsets))
	}

	for _, handler := range body.Handlers {
		end := "end"
		if handler.HandlerEnd != nil {
			end = m.Label(offsets[handler.HandlerEnd])
		}

		fmt.Fprintf(b, "%s.try %s to %s %s %s handler %s to %s\n", inner,
			m.Label(offsets[handler.TryStart]), m.Label(offsets[handler.TryEnd]),
			handler.Kind, handler.CatchType, m.Label(offsets[handler.HandlerStart]), end)
	}

	fmt.Fprintf(b, "%s}\n", indent)
}

func methodModifiers(attrs m.MethodAttributes) string {
	var mods []string

	if attrs.Has(m.AttrStatic) {
		mods = append(mods, "static")
	}

	if attrs.Has(m.AttrVirtual) {
		mods = append(mods, "virtual")
	}

	if attrs.Has(m.AttrAbstract) {
		mods = append(mods, "abstract")
	}

	if attrs.Has(m.AttrPInvoke) {
		mods = append(mods, "pinvokeimpl")
	}

	if attrs.Has(m.AttrInternalCall) {
		mods = append(mods, "internalcall")
	}

	if len(mods) == 0 {
		return ""
	}

	return strings.Join(mods, " ") + " "
}
