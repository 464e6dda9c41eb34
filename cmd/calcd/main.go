// Command calcd serves expression evaluation over HTTP.
//
// POST /calculate with a JSON body {"expr": "1+2*3"} returns
// {"result": 7}. User-correctable failures are 422, internal stage
// mismatches are 500. Prometheus metrics are exposed on /metrics.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	calc "github.com/chris-robo/calculator"
)

var evaluations = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "calculator_evaluations_total",
	Help: "Expression evaluations by outcome.",
}, []string{"outcome"})

type calculateRequest struct {
	Expr string `json:"expr"`
}

type calculateResponse struct {
	Result any `json:"result"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func newRouter() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Post("/calculate", calculateHandler)
	r.Get("/healthz", healthzHandler)
	r.Handle("/metrics", promhttp.Handler())
	return r
}

func calculateHandler(w http.ResponseWriter, r *http.Request) {
	var req calculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	res, err := calc.Calculate(req.Expr)
	switch {
	case err != nil:
		evaluations.WithLabelValues("error").Inc()
		writeJSON(w, statusFor(err), errorResponse{Error: err.Error()})
	case res == nil:
		evaluations.WithLabelValues("invalid").Inc()
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "invalid expression: unbalanced brackets"})
	default:
		evaluations.WithLabelValues("ok").Inc()
		writeJSON(w, http.StatusOK, calculateResponse{Result: res.Value()})
	}
}

// statusFor distinguishes user-correctable failures from stage contract
// mismatches, which indicate a defect in the pipeline itself.
func statusFor(err error) int {
	var unparsable *calc.UnparsableTokenError
	var unknown *calc.UnknownTokenError
	if errors.As(err, &unparsable) || errors.As(err, &unknown) {
		return http.StatusInternalServerError
	}
	return http.StatusUnprocessableEntity
}

func healthzHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("encoding response:", err)
	}
}

func main() {
	log.SetFlags(0)
	port := flag.String("port", ":8000", "HTTP service port (e.g., ':8000')")
	flag.Parse()
	log.Printf("ready to serve on %s", *port)
	log.Fatal(http.ListenAndServe(*port, newRouter()))
}
