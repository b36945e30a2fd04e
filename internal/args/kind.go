package args

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind is the semantic type of an option value.
type Kind int

const (
	KindFlag Kind = iota // presence flag, no value
	KindString
	KindPath
	KindUint
	KindUint8
	KindFloat
)

var kindNames = map[Kind]string{
	KindFlag:   "flag",
	KindString: "string",
	KindPath:   "path",
	KindUint:   "uint",
	KindUint8:  "uint8",
	KindFloat:  "float",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// MarshalText renders the kind name in schema documents.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText reads a kind name written by MarshalText.
func (k *Kind) UnmarshalText(text []byte) error {
	for kind, name := range kindNames {
		if name == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown option kind %q", text)
}

var (
	errNotUnsigned = errors.New("expected a non-negative integer")
	errNotFloat    = errors.New("expected a number")
	errNotFinite   = errors.New("expected a finite number")
)

// convert parses raw into the Go value of the kind:
// string for String/Path, uint for Uint, uint8 for Uint8,
// float64 for Float and bool for Flag.
func (k Kind) convert(raw string) (any, error) {
	switch k {
	case KindFlag:
		return true, nil
	case KindString, KindPath:
		return raw, nil
	case KindUint:
		n, err := parseUnsigned(raw, strconv.IntSize)
		if err != nil {
			return nil, err
		}
		return uint(n), nil
	case KindUint8:
		n, err := parseUnsigned(raw, 8)
		if err != nil {
			return nil, err
		}
		return uint8(n), nil
	case KindFloat:
		f, err := parseFloat(raw)
		if err != nil {
			return nil, err
		}
		return f, nil
	default:
		return nil, fmt.Errorf("unsupported kind %s", k)
	}
}

// parseUnsigned accepts an optional '+' followed by decimal digits.
func parseUnsigned(raw string, bits int) (uint64, error) {
	digits := strings.TrimPrefix(raw, "+")
	if digits == "" || strings.TrimLeft(digits, "0123456789") != "" {
		return 0, errNotUnsigned
	}
	n, err := strconv.ParseUint(digits, 10, bits)
	if err != nil {
		return 0, fmt.Errorf("out of range for %d-bit unsigned integer", bits)
	}
	return n, nil
}

// parseFloat accepts decimal notation with an optional exponent.
// Hexadecimal mantissas and non-finite values are rejected.
func parseFloat(raw string) (float64, error) {
	unsigned := strings.TrimLeft(raw, "+-")
	if len(unsigned) > 1 && unsigned[0] == '0' && (unsigned[1] == 'x' || unsigned[1] == 'X') {
		return 0, errNotFloat
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errNotFloat
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errNotFinite
	}
	return f, nil
}
