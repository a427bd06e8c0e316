package specialists

import (
	"strconv"
	"strings"

	"github.com/custodia-labs/counsel-cli/internal/core/domain"
)

// Float reads a numeric student fact. Strings such as "3.4" are parsed,
// since values set from the command line arrive as text. Values that are
// not finite or exceed domain.MaxContextNumber are rejected.
func Float(student domain.StudentContext, key string) (float64, bool) {
	v, ok := student.Get(key)
	if !ok {
		return 0, false
	}
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if !domain.UsableNumber(f) {
		return 0, false
	}
	return f, true
}

// Int reads a whole-number student fact, truncating fractions.
func Int(student domain.StudentContext, key string) (int, bool) {
	f, ok := Float(student, key)
	return int(f), ok
}

// Text reads a student fact as trimmed text.
func Text(student domain.StudentContext, key string) string {
	return strings.TrimSpace(student.String(key))
}

// Dollars formats a whole-dollar amount with thousands separators.
// E.g., 14436 becomes "$14,436".
func Dollars(amount int) string {
	digits := strconv.Itoa(amount)
	sign := ""
	if amount < 0 {
		sign, digits = "-", digits[1:]
	}

	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return sign + "$" + b.String()
}
