package scene

import "fmt"

// StructuralError reports an attempt to attach a node kind under a parent
// kind that does not allow it. The tree is left in its last valid state.
type StructuralError struct {
	Parent Kind
	Child  Kind
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("node kind %q is not a valid child of %q", e.Child, e.Parent)
}

// ParamError reports parameters that fail schema validation for a kind:
// a missing required field, an undeclared field, an out-of-enum literal,
// or a tuple of the wrong arity.
type ParamError struct {
	Kind   Kind
	Field  string
	Reason string
}

func (e *ParamError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid params for %q: %s", e.Kind, e.Reason)
	}
	return fmt.Sprintf("invalid params for %q: field %q %s", e.Kind, e.Field, e.Reason)
}

func missingField(kind Kind, field string) error {
	return &ParamError{Kind: kind, Field: field, Reason: "is required"}
}

func unknownField(kind Kind, field string) error {
	return &ParamError{Kind: kind, Field: field, Reason: "is not declared for this kind"}
}

func badEnum(kind Kind, field, got string) error {
	return &ParamError{Kind: kind, Field: field, Reason: fmt.Sprintf("has unsupported value %q", got)}
}

func badArity(kind Kind, field string, want, got int) error {
	return &ParamError{Kind: kind, Field: field, Reason: fmt.Sprintf("must have exactly %d values, got %d", want, got)}
}
