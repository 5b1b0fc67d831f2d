package inference

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RupeshSangoju/new-rephrase/internal/config"
	"github.com/RupeshSangoju/new-rephrase/internal/metrics"
)

const testModel = "prithivida/parrot_paraphraser_on_T5"

func newTestClient(url string) *HuggingFaceClient {
	return &HuggingFaceClient{
		BaseURL: url,
		Model:   testModel,
		Token:   "hf_test",
		Client:  &http.Client{Timeout: 5 * time.Second},
	}
}

func TestHuggingFaceClientParaphrase(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/models/"+testModel, r.URL.Path)
		assert.Equal(t, "Bearer hf_test", r.Header.Get("Authorization"))

		var p Payload
		if !assert.NoError(t, json.NewDecoder(r.Body).Decode(&p)) {
			return
		}
		assert.Equal(t, "hello world", p.Inputs)
		assert.Equal(t, 128, p.Parameters.MaxNewTokens)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"generated_text": "greetings, world"}]`))
	}))
	defer srv.Close()

	res, err := newTestClient(srv.URL).Paraphrase(context.Background(), "hello world")
	require.NoError(t, err)
	assert.Equal(t, Success{Paraphrased: "greetings, world"}, res)
	assert.EqualValues(t, 1, calls.Load())
}

func TestHuggingFaceClientServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("Service Unavailable"))
	}))
	defer srv.Close()

	before := testutil.ToFloat64(metrics.RemoteResponses.WithLabelValues("503"))

	res, err := newTestClient(srv.URL).Paraphrase(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, Failure{Message: "HuggingFace API error: 503 | Service Unavailable"}, res)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.RemoteResponses.WithLabelValues("503")))
}

func TestHuggingFaceClientNoRetry(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Paraphrase(context.Background(), "hello")
	require.NoError(t, err)
	assert.EqualValues(t, 1, calls.Load())
}

func TestHuggingFaceClientMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{}]`))
	}))
	defer srv.Close()

	res, err := newTestClient(srv.URL).Paraphrase(context.Background(), "hello")
	assert.Nil(t, res)
	assert.True(t, IsMalformed(err))
}

func TestHuggingFaceClientTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	res, err := newTestClient(url).Paraphrase(context.Background(), "hello")
	require.NoError(t, err)
	f, ok := res.(Failure)
	require.True(t, ok, "want Failure, got %T", res)
	assert.NotEmpty(t, f.Message)
}

func TestHuggingFaceClientContextCancel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := newTestClient(srv.URL).Paraphrase(ctx, "hello")
	require.NoError(t, err)
	assert.IsType(t, Failure{}, res)
}

func TestNewHuggingFaceClient(t *testing.T) {
	cfg := &config.Config{
		Model:          "a/b",
		APIBaseURL:     "http://hf.test",
		HFAPIToken:     "hf_cfg",
		RequestTimeout: 3 * time.Second,
	}

	c := NewHuggingFaceClient(cfg)
	assert.Equal(t, "a/b", c.Model)
	assert.Equal(t, "http://hf.test", c.BaseURL)
	assert.Equal(t, "hf_cfg", c.Token)
	assert.Equal(t, 3*time.Second, c.Client.Timeout)
	assert.Equal(t, "HuggingFace (a/b)", c.Name())
}
