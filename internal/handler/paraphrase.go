package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/RupeshSangoju/new-rephrase/internal/inference"
	"github.com/RupeshSangoju/new-rephrase/internal/logging"
	"github.com/RupeshSangoju/new-rephrase/internal/metrics"
	"github.com/RupeshSangoju/new-rephrase/internal/middleware"
)

type paraphraseRequest struct {
	Text *string `json:"text"`
}

type paraphraseResponse struct {
	Original    string `json:"original"`
	Paraphrased string `json:"paraphrased"`
}

// Paraphrase trims the caller's text, hands it to p and reports the outcome.
// Remote failures are answered with 200 and an error field; a response the
// backend could not interpret is answered with a bare 500.
func Paraphrase(p inference.Paraphraser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		var req paraphraseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
				return
			}
			writeError(w, http.StatusUnprocessableEntity, "invalid JSON body")
			return
		}
		if req.Text == nil {
			writeError(w, http.StatusUnprocessableEntity, "text is required")
			return
		}

		text := strings.TrimSpace(*req.Text)
		metrics.InputChars.Observe(float64(utf8.RuneCountInString(text)))

		start := time.Now()
		res, err := p.Paraphrase(r.Context(), text)
		elapsed := time.Since(start).Seconds()

		log := logging.GetLogger().WithFields(logrus.Fields{
			"request_id": middleware.RequestIDFromContext(r.Context()),
			"backend":    p.Name(),
		})

		if err != nil {
			metrics.ParaphraseDuration.WithLabelValues("fault").Observe(elapsed)
			log.WithError(err).Error("paraphrase: uninterpretable backend response")
			writeFault(w)
			return
		}

		switch v := res.(type) {
		case inference.Success:
			metrics.ParaphraseDuration.WithLabelValues("success").Observe(elapsed)
			writeJSON(w, http.StatusOK, paraphraseResponse{
				Original:    text,
				Paraphrased: v.Paraphrased,
			})
		case inference.Failure:
			metrics.ParaphraseDuration.WithLabelValues("failure").Observe(elapsed)
			log.WithField("reason", v.Message).Warn("paraphrase: backend failure")
			writeError(w, http.StatusOK, v.Message)
		default:
			metrics.ParaphraseDuration.WithLabelValues("fault").Observe(elapsed)
			log.Errorf("paraphrase: unexpected result %T", res)
			writeFault(w)
		}
	}
}
