package middleware_test

import (
	"exercisetracker/internal/http/handler/middleware"
	"exercisetracker/internal/metrics"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var _ = Describe("Middleware", func() {
	var (
		w   *httptest.ResponseRecorder
		req *http.Request
	)

	BeforeEach(func() {
		w = httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodGet, "/api/users", nil)
	})

	Describe("RequestID", func() {
		var seen string

		BeforeEach(func() {
			seen = ""
		})

		JustBeforeEach(func() {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = middleware.GetRequestID(r.Context())
			})
			middleware.NewRequestIDMiddleware().RequestID(next).ServeHTTP(w, req)
		})

		When("the caller sends no id", func() {
			It("should generate one", func() {
				Expect(seen).NotTo(BeEmpty())
				Expect(w.Header().Get(middleware.RequestIDHeader)).To(Equal(seen))
			})
		})

		When("the caller sends an id", func() {
			BeforeEach(func() {
				req.Header.Set(middleware.RequestIDHeader, "abc-123")
			})

			It("should reuse it", func() {
				Expect(seen).To(Equal("abc-123"))
				Expect(w.Header().Get(middleware.RequestIDHeader)).To(Equal("abc-123"))
			})
		})
	})

	Describe("Logging", func() {
		It("should log method, route and status", func() {
			core, logs := observer.New(zapcore.InfoLevel)
			logger := zap.New(core).Sugar()

			mux := http.NewServeMux()
			mux.HandleFunc("GET /api/users", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTeapot)
			})

			middleware.NewLoggingMiddleware(logger).Logging(mux).ServeHTTP(w, req)

			Expect(logs.Len()).To(Equal(1))
			fields := logs.All()[0].ContextMap()
			Expect(fields["method"]).To(Equal(http.MethodGet))
			Expect(fields["route"]).To(Equal("GET /api/users"))
			Expect(fields["status"]).To(BeEquivalentTo(http.StatusTeapot))
		})
	})

	Describe("Recover", func() {
		It("should turn a panic into a 500", func() {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				panic("boom")
			})

			middleware.NewRecoveryMiddleware(zap.NewNop().Sugar()).Recover(next).ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusInternalServerError))
			Expect(w.Body.String()).To(ContainSubstring("unexpected error occurred"))
		})
	})

	Describe("CORS", func() {
		var called bool

		BeforeEach(func() {
			called = false
		})

		JustBeforeEach(func() {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
			})
			middleware.NewCORSMiddleware("").CORS(next).ServeHTTP(w, req)
		})

		When("the request is a plain request", func() {
			It("should allow any origin and pass through", func() {
				Expect(called).To(BeTrue())
				Expect(w.Header().Get("Access-Control-Allow-Origin")).To(Equal("*"))
			})
		})

		When("the request is a preflight", func() {
			BeforeEach(func() {
				req = httptest.NewRequest(http.MethodOptions, "/api/users", nil)
				req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			})

			It("should answer it directly", func() {
				Expect(called).To(BeFalse())
				Expect(w.Code).To(Equal(http.StatusNoContent))
				Expect(w.Header().Get("Access-Control-Allow-Methods")).To(ContainSubstring("POST"))
			})
		})
	})

	Describe("Instrument", func() {
		It("should count requests by route pattern and status class", func() {
			reg := prometheus.NewRegistry()
			m := metrics.NewHTTPMetrics(reg)

			mux := http.NewServeMux()
			mux.HandleFunc("GET /api/users/{id}/logs", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
			})

			req = httptest.NewRequest(http.MethodGet, "/api/users/42/logs", nil)
			middleware.NewMetricsMiddleware(m).Instrument(mux).ServeHTTP(w, req)

			Expect(testutil.ToFloat64(m.RequestsTotal.WithLabelValues(http.MethodGet, "GET /api/users/{id}/logs", "4xx"))).To(Equal(1.0))
			Expect(testutil.ToFloat64(m.InFlight)).To(BeZero())
		})

		It("should label unknown paths as unmatched", func() {
			reg := prometheus.NewRegistry()
			m := metrics.NewHTTPMetrics(reg)

			mux := http.NewServeMux()
			req = httptest.NewRequest(http.MethodGet, "/nope", nil)
			middleware.NewMetricsMiddleware(m).Instrument(mux).ServeHTTP(w, req)

			Expect(testutil.ToFloat64(m.RequestsTotal.WithLabelValues(http.MethodGet, "unmatched", "4xx"))).To(Equal(1.0))
		})
	})
})
