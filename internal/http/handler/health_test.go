package handler_test

import (
	"errors"
	"exercisetracker/internal/http/handler"
	"exercisetracker/internal/http/handler/fake"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("HealthHandler", func() {
	var (
		fakePinger *fake.Pinger
		w          *httptest.ResponseRecorder
	)

	BeforeEach(func() {
		fakePinger = new(fake.Pinger)
		w = httptest.NewRecorder()
	})

	JustBeforeEach(func() {
		h := handler.NewHealthHandler(zap.NewNop().Sugar(), fakePinger)
		h.HandleHealth(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	})

	It("should report ok", func() {
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(MatchJSON(`{"status":"ok"}`))
		Expect(fakePinger.PingCallCount()).To(Equal(1))
	})

	When("the database is unreachable", func() {
		BeforeEach(func() {
			fakePinger.PingReturns(errors.New("dial tcp: refused"))
		})

		It("should report unavailable", func() {
			Expect(w.Code).To(Equal(http.StatusServiceUnavailable))
			Expect(w.Body.String()).To(MatchJSON(`{"status":"unavailable"}`))
		})
	})
})
