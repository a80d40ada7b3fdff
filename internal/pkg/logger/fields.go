package logger

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Field is a structured log field
type Field = zap.Field

// Constructors below let callers log without importing zap

// String constructs a field that carries a string value
func String(key, val string) Field {
	return zap.String(key, val)
}

// Err constructs a field that carries an error
func Err(err error) Field {
	return zap.Error(err)
}

// Int constructs a field that carries an int value
func Int(key string, val int) Field {
	return zap.Int(key, val)
}

// Uint64 constructs a field that carries a uint64 value
func Uint64(key string, val uint64) Field {
	return zap.Uint64(key, val)
}

// Bool constructs a field that carries a boolean value
func Bool(key string, val bool) Field {
	return zap.Bool(key, val)
}

// Duration constructs a field that carries a time.Duration value
func Duration(key string, val time.Duration) Field {
	return zap.Duration(key, val)
}

// Amount constructs a field carrying a money amount with two fixed decimals
func Amount(key string, val decimal.Decimal) Field {
	return zap.String(key, val.StringFixed(2))
}

// Stringer constructs a field from a fmt.Stringer, e.g. a uuid
func Stringer(key string, val fmt.Stringer) Field {
	return zap.Stringer(key, val)
}
