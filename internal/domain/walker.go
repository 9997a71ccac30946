// Package domain contains the obfuscation engine: the type-tree walker, the
// opaque-predicate injector, the per-module transform stage and the pipeline
// workflow that drives them.
package domain

import (
	"iter"

	m "opaq.dev/pkg/opaq/internal/model"
)

// IsEligible reports whether a method has a concrete, non-empty body.
func IsEligible(method *m.Method) bool {
	return method.HasBody() && !method.IsAbstract() && len(method.Body.Instructions) > 0
}

// Types returns every type of the module, nested ones included, in
// depth-first pre-order following declaration order.
func Types(module *m.Module) []*m.TypeDef {
	var types []*m.TypeDef

	for typ := range walkTypes(module) {
		types = append(types, typ)
	}

	return types
}

// Walk lazily yields the eligible methods of the module. Each type yields its
// own methods before its nested types are visited.
func Walk(module *m.Module) iter.Seq[*m.Method] {
	return func(yield func(*m.Method) bool) {
		for typ := range walkTypes(module) {
			for _, method := range typ.Methods {
				if !IsEligible(method) {
					continue
				}

				if !yield(method) {
					return
				}
			}
		}
	}
}

// EligibleMethods snapshots Walk so that eligibility is fixed before any
// method is mutated.
func EligibleMethods(module *m.Module) []*m.Method {
	var methods []*m.Method

	for method := range Walk(module) {
		methods = append(methods, method)
	}

	return methods
}

// walkTypes uses an explicit stack instead of recursion so nesting depth does
// not grow the goroutine stack.
func walkTypes(module *m.Module) iter.Seq[*m.TypeDef] {
	return func(yield func(*m.TypeDef) bool) {
		if module == nil {
			return
		}

		stack := make([]*m.TypeDef, 0, len(module.Types))
		stack = pushReversed(stack, module.Types)

		for len(stack) > 0 {
			typ := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if typ == nil {
				continue
			}

			if !yield(typ) {
				return
			}

			stack = pushReversed(stack, typ.Nested)
		}
	}
}

func pushReversed(stack, types []*m.TypeDef) []*m.TypeDef {
	for i := len(types) - 1; i >= 0; i-- {
		stack = append(stack, types[i])
	}

	return stack
}
