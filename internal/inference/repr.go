package inference

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
	"unicode"
)

// pyStr renders a JSON document the way Python's str() renders the decoded
// value: single-quoted strings, True/False/None, floats always carrying a
// fraction or exponent, object keys in document order. A top-level string is
// returned as-is.
func pyStr(doc []byte) (string, error) {
	dec := json.NewDecoder(bytes.NewReader(doc))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return "", err
	}
	if s, ok := tok.(string); ok {
		return s, nil
	}

	var b strings.Builder
	if err := writeValue(&b, dec, tok); err != nil {
		return "", err
	}
	return b.String(), nil
}

func writeValue(b *strings.Builder, dec *json.Decoder, tok json.Token) error {
	switch v := tok.(type) {
	case json.Delim:
		return writeContainer(b, dec, v)
	case string:
		b.WriteString(pyQuote(v))
	case json.Number:
		b.WriteString(pyNumber(v))
	case bool:
		if v {
			b.WriteString("True")
		} else {
			b.WriteString("False")
		}
	case nil:
		b.WriteString("None")
	default:
		return fmt.Errorf("unexpected token %v", tok)
	}
	return nil
}

func writeContainer(b *strings.Builder, dec *json.Decoder, open json.Delim) error {
	isObject := open == '{'
	if isObject {
		b.WriteByte('{')
	} else {
		b.WriteByte('[')
	}

	for i := 0; dec.More(); i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		if isObject {
			kt, err := dec.Token()
			if err != nil {
				return err
			}
			key, ok := kt.(string)
			if !ok {
				return fmt.Errorf("unexpected object key %v", kt)
			}
			b.WriteString(pyQuote(key))
			b.WriteString(": ")
		}
		vt, err := dec.Token()
		if err != nil {
			return err
		}
		if err := writeValue(b, dec, vt); err != nil {
			return err
		}
	}

	// closing delimiter
	if _, err := dec.Token(); err != nil {
		return err
	}
	if isObject {
		b.WriteByte('}')
	} else {
		b.WriteByte(']')
	}
	return nil
}

func pyQuote(s string) string {
	quote := '\''
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		quote = '"'
	}

	var b strings.Builder
	b.WriteRune(quote)
	for _, r := range s {
		switch {
		case r == quote || r == '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case r == '\t':
			b.WriteString(`\t`)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r < ' ' || r == 0x7f:
			fmt.Fprintf(&b, `\x%02x`, r)
		case r < 0x80 || unicode.IsPrint(r):
			b.WriteRune(r)
		case r <= 0xff:
			fmt.Fprintf(&b, `\x%02x`, r)
		case r <= 0xffff:
			fmt.Fprintf(&b, `\u%04x`, r)
		default:
			fmt.Fprintf(&b, `\U%08x`, r)
		}
	}
	b.WriteRune(quote)
	return b.String()
}

func pyNumber(n json.Number) string {
	s := n.String()
	if !strings.ContainsAny(s, ".eE") {
		if i, ok := new(big.Int).SetString(s, 10); ok {
			return i.String()
		}
		return s
	}
	// ParseFloat reports overflow as ±Inf alongside ErrRange.
	f, _ := strconv.ParseFloat(s, 64)
	return pyFloat(f)
}

func pyFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	sci := strconv.FormatFloat(f, 'e', -1, 64)
	exp, _ := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if exp < -4 || exp >= 16 {
		return sci
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
