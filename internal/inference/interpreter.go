package inference

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

// Interpret turns a remote status code and raw body into a Result.
//
// Any status other than 200 is a Failure embedding the status and the body
// verbatim. A 200 body is decoded as either a sequence of generations or an
// arbitrary value; a body that fits neither yields an error instead of a
// Failure.
func Interpret(status int, body []byte) (Result, error) {
	if status != http.StatusOK {
		return Failure{Message: fmt.Sprintf("HuggingFace API error: %d | %s", status, body)}, nil
	}

	if !json.Valid(body) {
		var v any
		return nil, newInvalidJSONError(json.Unmarshal(body, &v))
	}

	switch classify(body) {
	case shapeSequence:
		return fromSequence(body)
	default:
		return fromValue(body)
	}
}

type shape int

const (
	shapeSequence shape = iota
	shapeValue
)

// classify expects a valid JSON document.
func classify(body []byte) shape {
	if trimmed := bytes.TrimLeft(body, " \t\r\n"); len(trimmed) > 0 && trimmed[0] == '[' {
		return shapeSequence
	}
	return shapeValue
}

// fromSequence takes generated_text from the first element.
func fromSequence(body []byte) (Result, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, newInvalidJSONError(err)
	}
	if len(items) == 0 {
		return nil, newMalformedResponseError("empty sequence")
	}

	var first map[string]json.RawMessage
	if err := json.Unmarshal(items[0], &first); err != nil || first == nil {
		return nil, newMalformedResponseError("first element is not an object")
	}

	raw, ok := first["generated_text"]
	if !ok {
		return nil, newMalformedResponseError("missing generated_text")
	}

	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		return nil, newMalformedResponseError("generated_text is not a string")
	}
	return Success{Paraphrased: text}, nil
}

// fromValue renders the whole document as the paraphrase.
func fromValue(body []byte) (Result, error) {
	s, err := pyStr(body)
	if err != nil {
		return nil, newInvalidJSONError(err)
	}
	return Success{Paraphrased: s}, nil
}
