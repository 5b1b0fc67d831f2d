package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/RupeshSangoju/new-rephrase/internal/handler"
	"github.com/RupeshSangoju/new-rephrase/internal/inference"
	"github.com/RupeshSangoju/new-rephrase/internal/middleware"
)

const (
	Title   = "Parrot Paraphraser API"
	Version = "1.0"
)

// SetupMux wires handlers with the full middleware chain. model is the
// identifier reported by /health.
func SetupMux(p inference.Paraphraser, model string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", handler.Health(model))
	mux.HandleFunc("/paraphrase", handler.Paraphrase(p))
	mux.Handle("/metrics", promhttp.Handler())

	return middleware.Chain(mux, Title+"/"+Version)
}
