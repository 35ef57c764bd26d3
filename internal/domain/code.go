package domain

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	// CodeAlphabet is alphanumeric (a-z, A-Z, 0-9), 62 case-sensitive symbols.
	CodeAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	CodeLength   = 7
	// MaxCodeAttempts bounds the generate-and-insert loop of a single creation.
	MaxCodeAttempts = 5
)

// Code is a value object representing a link short code.
type Code struct {
	value string
}

// ParseCode validates an externally supplied short code.
func ParseCode(s string) (Code, error) {
	if len(s) != CodeLength {
		return Code{}, ErrInvalidCode
	}
	for i := 0; i < len(s); i++ {
		if !isCodeSymbol(s[i]) {
			return Code{}, ErrInvalidCode
		}
	}
	return Code{value: s}, nil
}

// GenerateCode draws length symbols uniformly from CodeAlphabet using a
// cryptographically secure source. A non-positive length uses CodeLength.
func GenerateCode(length int) (Code, error) {
	if length <= 0 {
		length = CodeLength
	}
	s, err := gonanoid.Generate(CodeAlphabet, length)
	if err != nil {
		return Code{}, err
	}
	return Code{value: s}, nil
}

// String returns the string representation of the Code.
func (c Code) String() string {
	return c.value
}

func isCodeSymbol(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}
