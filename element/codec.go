package element

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Codec converts values of T to and from their textual form and decides equality.
type Codec[T any] struct {
	Parse  func(raw string) (T, error)
	Format func(value T) string
	Equal  func(a, b T) bool
}

func equal[T comparable](a, b T) bool {
	return a == b
}

var IntCodec = Codec[int64]{
	Parse: func(raw string) (int64, error) {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid int %q", raw)
		}
		return v, nil
	},
	Format: func(v int64) string { return strconv.FormatInt(v, 10) },
	Equal:  equal[int64],
}

var FloatCodec = Codec[float64]{
	Parse: func(raw string) (float64, error) {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid float %q", raw)
		}
		return v, nil
	},
	Format: func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) },
	Equal:  equal[float64],
}

// StringCodec takes raw text as is. Text already in Go quoted form, as produced by Format, is unquoted.
var StringCodec = Codec[string]{
	Parse: func(raw string) (string, error) {
		if strings.HasPrefix(raw, `"`) {
			if unquoted, err := strconv.Unquote(raw); err == nil {
				return unquoted, nil
			}
		}
		return raw, nil
	},
	Format: strconv.Quote,
	Equal:  equal[string],
}

var BoolCodec = Codec[bool]{
	Parse: func(raw string) (bool, error) {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return false, fmt.Errorf("invalid bool %q", raw)
		}
		return v, nil
	},
	Format: strconv.FormatBool,
	Equal:  equal[bool],
}

var UUIDCodec = Codec[uuid.UUID]{
	Parse: func(raw string) (uuid.UUID, error) {
		if raw == "new" {
			return uuid.New(), nil
		}
		v, err := uuid.Parse(raw)
		if err != nil {
			return uuid.Nil, fmt.Errorf("invalid uuid %q", raw)
		}
		return v, nil
	},
	Format: func(v uuid.UUID) string { return v.String() },
	Equal:  equal[uuid.UUID],
}

// DecimalCodec compares numerically, so 1.50 equals 1.5 even though the structs differ.
var DecimalCodec = Codec[decimal.Decimal]{
	Parse: func(raw string) (decimal.Decimal, error) {
		v, err := decimal.NewFromString(raw)
		if err != nil {
			return decimal.Zero, fmt.Errorf("invalid decimal %q", raw)
		}
		return v, nil
	},
	Format: func(v decimal.Decimal) string { return v.String() },
	Equal:  func(a, b decimal.Decimal) bool { return a.Equal(b) },
}
