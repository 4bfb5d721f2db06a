package convert

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ToInteger converts v to an int64.
//
// Floats are truncated toward zero (-3.9 → -3), booleans become 1/0 and
// strings are parsed by parseIntegerString. nil, "" and unparseable input
// return ok == false.
func (c *Converter) ToInteger(v any) (int64, bool) {
	return c.integerOf(Of(v))
}

func (c *Converter) integerOf(val Value) (int64, bool) {
	switch val.tag {
	case TagInteger:
		return val.i, true
	case TagFloat:
		return truncate(val.f)
	case TagBoolean:
		if val.b {
			return 1, true
		}
		return 0, true
	case TagString:
		if val.s == "" {
			return 0, false
		}
		n, err := parseIntegerString(val.s)
		if err != nil {
			c.diagnose("toInteger", val.s, err)
			return 0, false
		}
		return n, true
	}
	return 0, false
}

// parseIntegerString accepts the exact literals "true"/"false", a "0x" hex
// integer literal, or any decimal/exponential number which is truncated.
func parseIntegerString(s string) (int64, error) {
	switch s {
	case "true":
		return 1, nil
	case "false":
		return 0, nil
	}
	if hex, ok := strings.CutPrefix(s, "0x"); ok {
		return strconv.ParseInt(hex, 16, 64)
	}
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	f, err := parseDecimal(s)
	if err != nil {
		return 0, err
	}
	n, ok := truncate(f)
	if !ok {
		return 0, fmt.Errorf("%q: %w", s, errNoIntegerValue)
	}
	return n, nil
}

// truncate drops the fractional part. NaN has no integer value; infinities
// and out-of-range values saturate at the int64 bounds.
func truncate(f float64) (int64, bool) {
	switch {
	case math.IsNaN(f):
		return 0, false
	case f >= math.MaxInt64:
		return math.MaxInt64, true
	case f <= math.MinInt64:
		return math.MinInt64, true
	}
	return int64(f), true
}

// ToDouble converts v to a float64.
//
// Strings are parsed by parseFloatString, where a "0x" prefix is read as the
// raw IEEE-754 bit pattern rather than a numeric value.
func (c *Converter) ToDouble(v any) (float64, bool) {
	return c.floatOf(Of(v))
}

func (c *Converter) floatOf(val Value) (float64, bool) {
	switch val.tag {
	case TagInteger:
		return float64(val.i), true
	case TagFloat:
		return val.f, true
	case TagBoolean:
		if val.b {
			return 1.0, true
		}
		return 0.0, true
	case TagString:
		if val.s == "" {
			return 0, false
		}
		f, err := parseFloatString(val.s)
		if err != nil {
			c.diagnose("toDouble", val.s, err)
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// parseFloatString accepts "true"/"false" in any case, a "0x" 64-bit bit
// pattern, or a decimal/exponential float literal.
//
// The hex rule differs from parseIntegerString: "0x3FF0000000000000"
// is 1.0 here, not 4607182418800017408.
func parseFloatString(s string) (float64, error) {
	if strings.EqualFold(s, "true") {
		return 1.0, nil
	}
	if strings.EqualFold(s, "false") {
		return 0.0, nil
	}
	if hex, ok := strings.CutPrefix(s, "0x"); ok {
		bits, err := parseBitPattern(hex)
		if err != nil {
			return 0, err
		}
		return math.Float64frombits(bits), nil
	}
	return parseDecimal(strings.TrimSpace(s))
}

var (
	errNoIntegerValue = errors.New("NaN has no integer value")
	errBadLiteral     = errors.New("invalid number literal")
)

// parseDecimal parses a float literal. Literals beyond the float64 range
// become ±Inf instead of failing. Only the spellings NaN, Infinity and
// -Infinity name special values; digit separators are rejected.
func parseDecimal(s string) (float64, error) {
	if strings.ContainsRune(s, '_') {
		return 0, fmt.Errorf("%q: %w", s, errBadLiteral)
	}
	switch strings.TrimLeft(s, "+-") {
	case "NaN", "Infinity":
	default:
		if isSpecialWord(s) {
			return 0, fmt.Errorf("%q: %w", s, errBadLiteral)
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && errors.Is(err, strconv.ErrRange) {
		return f, nil
	}
	return f, err
}

// isSpecialWord reports whether strconv would read s as inf, infinity or nan
// in some letter case.
func isSpecialWord(s string) bool {
	w := strings.ToLower(strings.TrimLeft(s, "+-"))
	return w == "inf" || w == "infinity" || w == "nan"
}

// parseBitPattern reads up to 16 hex digits as an unsigned 64-bit pattern.
// A leading sign is accepted and the signed value is taken in two's complement.
func parseBitPattern(hex string) (uint64, error) {
	if strings.HasPrefix(hex, "-") || strings.HasPrefix(hex, "+") {
		n, err := strconv.ParseInt(hex, 16, 64)
		return uint64(n), err
	}
	return strconv.ParseUint(hex, 16, 64)
}

// ToBoolean converts v to a bool.
//
// Numbers are true when non-zero. Strings match "true"/"false" in any case;
// any other string is read as a float and is true when non-zero.
func (c *Converter) ToBoolean(v any) (bool, bool) {
	return c.booleanOf(Of(v))
}

func (c *Converter) booleanOf(val Value) (bool, bool) {
	switch val.tag {
	case TagBoolean:
		return val.b, true
	case TagInteger:
		return val.i != 0, true
	case TagFloat:
		return val.f != 0, true
	case TagString:
		if val.s == "" {
			return false, false
		}
		f, err := parseFloatString(val.s)
		if err != nil {
			c.diagnose("toBoolean", val.s, err)
			return false, false
		}
		return f != 0, true
	}
	return false, false
}
