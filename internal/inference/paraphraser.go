package inference

import "context"

// Paraphraser is a backend that rewords text.
//
// Paraphrase returns a Result for every outcome the caller is expected to
// report back as a normal response, including remote errors. A non-nil
// error means the backend answered in a shape it could not interpret.
type Paraphraser interface {
	Name() string
	Paraphrase(ctx context.Context, text string) (Result, error)
}

// Result is either Success or Failure.
type Result interface {
	isResult()
}

// Success carries the paraphrased text.
type Success struct {
	Paraphrased string
}

// Failure carries a message describing why no paraphrase was produced.
type Failure struct {
	Message string
}

func (Success) isResult() {}
func (Failure) isResult() {}
