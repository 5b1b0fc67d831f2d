package inference

import (
	"errors"

	goerrors "github.com/agilira/go-errors"
)

// Error codes for responses that cannot be interpreted.
const (
	ErrCodeMalformedResponse = "PARAPHRASE_1001"
	ErrCodeInvalidJSON       = "PARAPHRASE_1002"
)

func newMalformedResponseError(reason string) *goerrors.Error {
	return goerrors.New(ErrCodeMalformedResponse, "Malformed inference response: "+reason).
		WithUserMessage("The inference endpoint returned an unexpected response shape").
		WithContext("reason", reason).
		WithSeverity("error")
}

func newInvalidJSONError(cause error) *goerrors.Error {
	return goerrors.Wrap(cause, ErrCodeInvalidJSON, "Inference response is not valid JSON").
		WithUserMessage("The inference endpoint returned a body that is not JSON").
		WithSeverity("error")
}

// IsMalformed reports whether err signals a 200 response whose body could
// not be interpreted.
func IsMalformed(err error) bool {
	var e *goerrors.Error
	if !errors.As(err, &e) {
		return false
	}
	code := string(e.Code)
	return code == ErrCodeMalformedResponse || code == ErrCodeInvalidJSON
}
