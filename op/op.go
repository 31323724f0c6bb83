// Package op defines the instruction layout of the injection bytecode.
//
// The bytecode is a flat sequence of two byte instructions. The first byte
// selects the operation: zero means a delay whose length in milliseconds is
// the second byte; any other value is a keycode pressed with the modifier
// held in the second byte.
package op

// Code is the first byte of an instruction.
type Code byte

const (
	// Delay waits for the number of milliseconds in the operand byte.
	Delay Code = 0x00
)

// Width is the size in bytes of every instruction.
const Width = 2

// MaxDelay is the longest wait a single Delay instruction can express.
const MaxDelay = 0xff

// Info contains information about an instruction.
type Info struct {
	Code    Code
	Name    string
	Operand string // name of the operand byte
}

var (
	delayInfo = Info{Code: Delay, Name: "DELAY", Operand: "ms"}
	keyInfo   = Info{Name: "KEY", Operand: "modifier"}
)

// GetInfo returns information about the instruction starting with the given
// byte.
func GetInfo(code Code) Info {
	if code == Delay {
		return delayInfo
	}
	info := keyInfo
	info.Code = code
	return info
}

// IsDelay reports whether the code starts a Delay instruction.
func IsDelay(code Code) bool {
	return code == Delay
}
