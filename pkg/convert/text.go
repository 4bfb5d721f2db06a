package convert

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
)

// ToString returns the canonical text of v. Only nil returns ok == false.
//
// Scalars use their Cypher rendering (1.0 stays "1.0"), lists render as
// "[a, b]" and maps as "{k: v}" with sorted keys. Values implementing
// fmt.Stringer, including nodes and relationships, use String().
func (c *Converter) ToString(v any) (string, bool) {
	return c.stringOf(Of(v))
}

func (c *Converter) stringOf(val Value) (string, bool) {
	if val.IsNull() {
		return "", false
	}
	var sb strings.Builder
	c.writeText(&sb, val)
	return sb.String(), true
}

func (c *Converter) writeText(sb *strings.Builder, val Value) {
	switch val.tag {
	case TagNull:
		sb.WriteString("null")
		return
	case TagString:
		sb.WriteString(val.s)
		return
	case TagBoolean:
		sb.WriteString(strconv.FormatBool(val.b))
		return
	case TagInteger:
		sb.WriteString(strconv.FormatInt(val.i, 10))
		return
	case TagFloat:
		sb.WriteString(formatFloat(val.f))
		return
	case TagDateTime:
		sb.WriteString(val.raw.(time.Time).Format(time.RFC3339Nano))
		return
	}

	if s, ok := val.raw.(fmt.Stringer); ok {
		sb.WriteString(s.String())
		return
	}

	switch val.tag {
	case TagList:
		items, _ := c.ToList(val.raw)
		sb.WriteString("[")
		for i, e := range items {
			if i > 0 {
				sb.WriteString(", ")
			}
			c.writeText(sb, Of(e))
		}
		sb.WriteString("]")
	case TagMap:
		m := stringKeyed(val.raw)
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		sb.WriteString("{")
		for i, k := range keys {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(k)
			sb.WriteString(": ")
			c.writeText(sb, Of(m[k]))
		}
		sb.WriteString("}")
	default:
		fmt.Fprint(sb, val.raw)
	}
}

// formatFloat renders floats the way Cypher prints them: plain decimal with
// at least one fractional digit for 1e-3 <= |f| < 1e7, otherwise
// scientific ("1.0E8", "1.5E-5").
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	abs := math.Abs(f)
	if abs == 0 || (abs >= 1e-3 && abs < 1e7) {
		s := strconv.FormatFloat(f, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}
	s := strconv.FormatFloat(f, 'E', -1, 64)
	mant, exp, _ := strings.Cut(s, "E")
	if !strings.Contains(mant, ".") {
		mant += ".0"
	}
	neg := strings.HasPrefix(exp, "-")
	exp = strings.TrimLeft(exp, "+-0")
	if neg {
		exp = "-" + exp
	}
	return mant + "E" + exp
}
