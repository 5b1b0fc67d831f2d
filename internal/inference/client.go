package inference

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/RupeshSangoju/new-rephrase/internal/config"
	"github.com/RupeshSangoju/new-rephrase/internal/logging"
	"github.com/RupeshSangoju/new-rephrase/internal/metrics"
)

const defaultBaseURL = config.DefaultAPIBaseURL

// HuggingFaceClient calls the Hugging Face Inference API for a single model.
type HuggingFaceClient struct {
	BaseURL string
	Model   string
	Token   string
	Client  *http.Client
}

// NewHuggingFaceClient builds a client from the startup configuration.
// A zero RequestTimeout leaves the http.Client without a timeout.
func NewHuggingFaceClient(cfg *config.Config) *HuggingFaceClient {
	return &HuggingFaceClient{
		BaseURL: cfg.APIBaseURL,
		Model:   cfg.Model,
		Token:   cfg.HFAPIToken,
		Client:  &http.Client{Timeout: cfg.RequestTimeout},
	}
}

func (c *HuggingFaceClient) Name() string {
	return fmt.Sprintf("HuggingFace (%s)", c.Model)
}

// Paraphrase posts text to the model once. Transport failures come back as
// a Failure carrying the transport error text.
func (c *HuggingFaceClient) Paraphrase(ctx context.Context, text string) (Result, error) {
	log := logging.GetLogger().WithFields(logrus.Fields{
		"model": c.Model,
		"chars": len(text),
	})

	req, err := c.newRequest(ctx, text)
	if err != nil {
		return Failure{Message: err.Error()}, nil
	}

	client := c.Client
	if client == nil {
		client = http.DefaultClient
	}

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		metrics.RemoteResponses.WithLabelValues("transport_error").Inc()
		log.WithError(err).Warn("huggingface: request failed")
		return Failure{Message: err.Error()}, nil
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	metrics.RemoteDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RemoteResponses.WithLabelValues("transport_error").Inc()
		log.WithError(err).Warn("huggingface: read response failed")
		return Failure{Message: err.Error()}, nil
	}
	metrics.RemoteResponses.WithLabelValues(strconv.Itoa(resp.StatusCode)).Inc()

	log.WithFields(logrus.Fields{
		"status":      resp.StatusCode,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Debug("huggingface: response received")

	return Interpret(resp.StatusCode, body)
}
