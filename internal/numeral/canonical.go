package numeral

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"unicode/utf16"

	"golang.org/x/text/unicode/norm"
)

// MarshalCanonical serializes v as canonical JSON per the RFC 8785
// subset used for content addressing:
//
//   - object keys sorted by UTF-16 code units
//   - strings NFC-normalized, minimal escaping, no HTML escaping
//   - integers only; floats and nulls are rejected
//   - no insignificant whitespace
//
// Supported value shapes are string, int, int64, bool, []int, []string,
// []any and map[string]any. Anything else is an error rather than a
// silent best-effort encoding.
func MarshalCanonical(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeCanonical(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeCanonical(buf *bytes.Buffer, v any) error {
	switch x := v.(type) {
	case nil:
		return errors.New("canonical: null is not representable")
	case bool:
		buf.WriteString(strconv.FormatBool(x))
	case string:
		return writeCanonicalString(buf, x)
	case int:
		buf.WriteString(strconv.Itoa(x))
	case int64:
		buf.WriteString(strconv.FormatInt(x, 10))
	case float32, float64:
		return fmt.Errorf("canonical: floating-point values are not representable (%v)", x)
	case []int:
		buf.WriteByte('[')
		for i, e := range x {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.WriteString(strconv.Itoa(e))
		}
		buf.WriteByte(']')
	case []string:
		buf.WriteByte('[')
		for i, e := range x {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeCanonicalString(buf, e); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case []any:
		buf.WriteByte('[')
		for i, e := range x {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeCanonical(buf, e); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool {
			return compareKeysRFC8785(keys[i], keys[j]) < 0
		})
		buf.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeCanonicalString(buf, k); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := writeCanonical(buf, x[k]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("canonical: unsupported type %T", v)
	}
	return nil
}

// writeCanonicalString encodes s with NFC normalization and without
// HTML escaping. encoding/json still escapes U+2028 and U+2029 for
// JavaScript compatibility; RFC 8785 wants the raw characters, so those
// two escapes are undone afterwards.
func writeCanonicalString(buf *bytes.Buffer, s string) error {
	var enc bytes.Buffer
	e := json.NewEncoder(&enc)
	e.SetEscapeHTML(false)
	if err := e.Encode(norm.NFC.String(s)); err != nil {
		return fmt.Errorf("canonical: encode string: %w", err)
	}
	b := bytes.TrimSuffix(enc.Bytes(), []byte("\n"))
	buf.Write(unescapeU2028U2029(b))
	return nil
}

var (
	escU2028 = []byte(`\u2028`)
	escU2029 = []byte(`\u2029`)
)

// unescapeU2028U2029 replaces the two JavaScript-safety escapes with
// their literal characters. An escape is only real when its leading
// backslash is not itself escaped, so the scan tracks backslash runs.
func unescapeU2028U2029(in []byte) []byte {
	if !bytes.Contains(in, escU2028) && !bytes.Contains(in, escU2029) {
		return in
	}
	var out bytes.Buffer
	out.Grow(len(in))
	run := 0
	for i := 0; i < len(in); {
		c := in[i]
		if c != '\\' {
			out.WriteByte(c)
			run = 0
			i++
			continue
		}
		if run%2 == 0 && i+6 <= len(in) {
			if bytes.Equal(in[i:i+6], escU2028) {
				out.WriteRune('\u2028')
				i += 6
				run = 0
				continue
			}
			if bytes.Equal(in[i:i+6], escU2029) {
				out.WriteRune('\u2029')
				i += 6
				run = 0
				continue
			}
		}
		out.WriteByte(c)
		run++
		i++
	}
	return out.Bytes()
}

// compareKeysRFC8785 orders object keys by UTF-16 code units as RFC
// 8785 requires. Plain byte comparison would misorder keys containing
// supplementary-plane characters.
func compareKeysRFC8785(a, b string) int {
	ua := utf16.Encode([]rune(a))
	ub := utf16.Encode([]rune(b))
	n := len(ua)
	if len(ub) < n {
		n = len(ub)
	}
	for i := 0; i < n; i++ {
		if ua[i] != ub[i] {
			if ua[i] < ub[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(ua) < len(ub):
		return -1
	case len(ua) > len(ub):
		return 1
	default:
		return 0
	}
}
