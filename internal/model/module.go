package model

import "strings"

// MethodAttributes are the flags of a method definition.
type MethodAttributes uint16

// Available MethodAttributes flags.
const (
	AttrStatic MethodAttributes = 1 << iota
	AttrVirtual
	AttrAbstract
	AttrPInvoke
	AttrInternalCall
)

// Has reports whether all bits of flag are set.
func (a MethodAttributes) Has(flag MethodAttributes) bool {
	return a&flag == flag
}

// Module is a compiled unit: an ordered forest of type definitions.
type Module struct {
	Name    string
	Version string
	Types   []*TypeDef
}

// TypeDef is a type definition. Nested types form a tree under their
// declaring type.
type TypeDef struct {
	Namespace     string
	Name          string
	DeclaringType *TypeDef
	Methods       []*Method
	Nested        []*TypeDef
}

// NewTypeDef creates an empty type definition.
func NewTypeDef(namespace, name string) *TypeDef {
	return &TypeDef{Namespace: namespace, Name: name}
}

// AddMethod attaches a method to the type.
func (t *TypeDef) AddMethod(method *Method) *Method {
	method.DeclaringType = t
	t.Methods = append(t.Methods, method)

	return method
}

// AddNested attaches a nested type to the type.
func (t *TypeDef) AddNested(nested *TypeDef) *TypeDef {
	nested.DeclaringType = t
	t.Nested = append(t.Nested, nested)

	return nested
}

// FullName returns Namespace.Outer/Inner.
func (t *TypeDef) FullName() string {
	if t.DeclaringType != nil {
		return t.DeclaringType.FullName() + "/" + t.Name
	}

	if t.Namespace == "" {
		return t.Name
	}

	return t.Namespace + "." + t.Name
}

// Method is a method definition. A nil Body means the method is bodyless
// (abstract, P/Invoke or runtime-implemented).
type Method struct {
	Name          string
	Signature     string
	Attributes    MethodAttributes
	Body          *Body
	DeclaringType *TypeDef
}

// IsAbstract reports whether the method is abstract.
func (m *Method) IsAbstract() bool {
	return m.Attributes.Has(AttrAbstract)
}

// HasBody reports whether the method carries a concrete body.
func (m *Method) HasBody() bool {
	return m.Body != nil
}

// FullName returns Type::Name(signature).
func (m *Method) FullName() string {
	var b strings.Builder

	if m.DeclaringType != nil {
		b.WriteString(m.DeclaringType.FullName())
		b.WriteString("::")
	}

	b.WriteString(m.Name)

	if m.Signature != "" {
		b.WriteString(m.Signature)
	}

	return b.String()
}
