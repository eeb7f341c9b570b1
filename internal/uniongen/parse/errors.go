package parse

// ErrorKind classifies why a union declaration was rejected.
type ErrorKind int

const (
	// ErrNotAVariantType indicates the directive's type argument is not a
	// named interface declared in the target package, or the interface has no
	// case methods.
	ErrNotAVariantType ErrorKind = iota + 1

	// ErrUnsupportedGenerics indicates the union type has type parameters.
	ErrUnsupportedGenerics

	// ErrEmbeddedUnsupported indicates the union interface embeds another
	// type.
	ErrEmbeddedUnsupported

	// ErrMissingPayload indicates a case method has no parameter.
	ErrMissingPayload

	// ErrNamedFieldsUnsupported indicates a case method names its parameter.
	ErrNamedFieldsUnsupported

	// ErrTooManyFields indicates a case method has more than one parameter.
	ErrTooManyFields

	// ErrUnexpectedResults indicates a case method declares return values.
	ErrUnexpectedResults

	// ErrDuplicatePayloadType indicates two cases carry identical payload
	// types.
	ErrDuplicatePayloadType
)

func (k ErrorKind) String() string {
	switch k {
	case ErrNotAVariantType:
		return "NotAVariantType"
	case ErrUnsupportedGenerics:
		return "UnsupportedGenerics"
	case ErrEmbeddedUnsupported:
		return "EmbeddedUnsupported"
	case ErrMissingPayload:
		return "MissingPayload"
	case ErrNamedFieldsUnsupported:
		return "NamedFieldsUnsupported"
	case ErrTooManyFields:
		return "TooManyFields"
	case ErrUnexpectedResults:
		return "UnexpectedResults"
	case ErrDuplicatePayloadType:
		return "DuplicatePayloadType"
	}
	return "Unknown"
}

// SchemaError is a classified union declaration error. The wrapped error
// carries the source position.
type SchemaError struct {
	Kind ErrorKind
	err  error
}

func (e *SchemaError) Error() string { return e.err.Error() }
func (e *SchemaError) Unwrap() error { return e.err }
