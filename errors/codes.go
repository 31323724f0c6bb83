package errors

// ErrorCode represents a unique identifier for error types.
// Codes are organized by category:
//   - E1xxx: Parse errors
//   - E2xxx: Compile errors
//   - E3xxx: Key map errors
type ErrorCode string

const (
	// Parse errors (E1xxx)
	E1001 ErrorCode = "E1001" // Malformed line
	E1002 ErrorCode = "E1002" // Invalid duration

	// Compile errors (E2xxx)
	E2001 ErrorCode = "E2001" // Unknown key

	// Key map errors (E3xxx)
	E3001 ErrorCode = "E3001" // Invalid key descriptor
	E3002 ErrorCode = "E3002" // Invalid key name
)

// codeDescriptions maps error codes to their short descriptions.
var codeDescriptions = map[ErrorCode]string{
	E1001: "malformed line",
	E1002: "invalid duration",

	E2001: "unknown key",

	E3001: "invalid key descriptor",
	E3002: "invalid key name",
}

// Description returns the short description for an error code.
func (c ErrorCode) Description() string {
	if desc, ok := codeDescriptions[c]; ok {
		return desc
	}
	return "unknown error"
}

// String returns the error code as a string.
func (c ErrorCode) String() string {
	return string(c)
}

// Category returns the error category based on the code prefix.
func (c ErrorCode) Category() string {
	if len(c) < 2 {
		return "unknown"
	}
	switch c[1] {
	case '1':
		return "parse"
	case '2':
		return "compile"
	case '3':
		return "keymap"
	default:
		return "unknown"
	}
}
