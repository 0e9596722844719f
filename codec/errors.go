package codec

import "fmt"

// StructuralError reports a malformed or unsupported tag shape
// encountered during decode.
type StructuralError struct {
	Path    string // key path (e.g. "wand.spells[3]")
	Message string
}

func (e *StructuralError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("structural error at %s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("structural error: %s", e.Message)
}

// EncodingError reports a config value the tag model cannot carry.
type EncodingError struct {
	Path    string
	Index   int // offending sequence index, or -1
	GoType  string
	Message string
}

func (e *EncodingError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = fmt.Sprintf("cannot store values of type %s", e.GoType)
	}
	if e.Index >= 0 {
		msg = fmt.Sprintf("%s (element %d)", msg, e.Index)
	}
	if e.Path != "" {
		return fmt.Sprintf("encoding error at %s: %s", e.Path, msg)
	}
	return fmt.Sprintf("encoding error: %s", msg)
}

// DeserializationError reports that a marker-tagged compound could
// not be turned back into an object. It wraps the registry-level
// cause (UnknownTypeError or RehydrationError).
type DeserializationError struct {
	Alias string
	Err   error
}

func (e *DeserializationError) Error() string {
	return fmt.Sprintf("failed to deserialize object of type %q: %v", e.Alias, e.Err)
}

func (e *DeserializationError) Unwrap() error {
	return e.Err
}

// UnknownTypeError reports a type alias with no registered factory.
type UnknownTypeError struct {
	Alias string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("no factory registered for type alias %q", e.Alias)
}

// RehydrationError wraps an error returned by a registered factory.
type RehydrationError struct {
	Alias string
	Err   error
}

func (e *RehydrationError) Error() string {
	return fmt.Sprintf("factory for type alias %q failed: %v", e.Alias, e.Err)
}

func (e *RehydrationError) Unwrap() error {
	return e.Err
}

// StructureTooDeepError reports that the recursion guard tripped.
type StructureTooDeepError struct {
	Depth int
}

func (e *StructureTooDeepError) Error() string {
	return fmt.Sprintf("structure exceeds maximum nesting depth %d", e.Depth)
}
