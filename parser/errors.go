package parser

import "errors"

var errNegative = errors.New("duration must not be negative")
