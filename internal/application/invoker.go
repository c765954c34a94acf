package application

import (
	"errors"
	"fmt"

	"clrhost-cli/internal/domain"
	"clrhost-cli/internal/ports"
)

// Invoker is the late-bound call surface over one loaded assembly. It
// resolves types on demand and routes calls through reflection with the
// binding flags appropriate to the member kind and scope.
type Invoker struct {
	assembly ports.Assembly
	releaser ports.Releaser
}

func NewInvoker(assembly ports.Assembly, releaser ports.Releaser) *Invoker {
	return &Invoker{assembly: assembly, releaser: releaser}
}

// CallStatic invokes a public static method on the named type.
func (inv *Invoker) CallStatic(typeName, method string, args []domain.Value) (domain.Value, error) {
	return inv.call(typeName, method, domain.Static, domain.Empty(), args)
}

// CallInstance invokes a public instance method on instance, which must be
// an object value previously produced by this assembly.
func (inv *Invoker) CallInstance(typeName, method string, instance domain.Value, args []domain.Value) (domain.Value, error) {
	return inv.call(typeName, method, domain.Instance, instance, args)
}

func (inv *Invoker) call(typeName, method string, scope domain.Scope, instance domain.Value, args []domain.Value) (domain.Value, error) {
	t, err := inv.assembly.Type(typeName)
	if err != nil {
		return domain.Empty(), fmt.Errorf("resolve type %q: %w", typeName, err)
	}
	flags := domain.FlagsFor(domain.MemberMethod, scope)
	result, err := t.Invoke(method, flags, instance, args)
	if err != nil {
		return domain.Empty(), fmt.Errorf("invoke %s.%s: %w", typeName, method, err)
	}
	return result, nil
}

// PropertyValue reads a public property on the named type. A nil error with
// an empty value means the property is genuinely empty, not missing; a
// missing property reports domain.ErrPropertyNotFound.
func (inv *Invoker) PropertyValue(typeName, property string, instance domain.Value) (domain.Value, error) {
	t, err := inv.assembly.Type(typeName)
	if err != nil {
		return domain.Empty(), fmt.Errorf("resolve type %q: %w", typeName, err)
	}
	p, err := t.Property(property)
	if err != nil {
		return domain.Empty(), fmt.Errorf("resolve property %s.%s: %w", typeName, property, err)
	}
	defer p.Release()
	value, err := p.Value(instance, nil)
	if err != nil {
		return domain.Empty(), fmt.Errorf("read property %s.%s: %w", typeName, property, err)
	}
	return value, nil
}

// Method resolves a method by plain name, falling back to a signature scan
// when the name alone is ambiguous or undiscoverable through the direct
// lookup. Signature strings use the reflection rendering, e.g.
// "Void Exit(Int32)". The caller owns the returned method and must Release
// it.
func (inv *Invoker) Method(typeName, name, signature string) (ports.Method, error) {
	t, err := inv.assembly.Type(typeName)
	if err != nil {
		return nil, fmt.Errorf("resolve type %q: %w", typeName, err)
	}
	m, err := t.Method(name)
	if err == nil {
		return m, nil
	}
	if signature == "" || !errors.Is(err, domain.ErrMethodNotFound) {
		return nil, fmt.Errorf("resolve method %s.%s: %w", typeName, name, err)
	}
	m, serr := t.MethodBySignature(signature)
	if serr != nil {
		return nil, fmt.Errorf("resolve method %s.%s by signature %q: %w", typeName, name, signature, serr)
	}
	return m, nil
}
