package site_test

import (
	"exercisetracker/internal/http/site"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Site", func() {
	var (
		mux *http.ServeMux
		w   *httptest.ResponseRecorder
	)

	BeforeEach(func() {
		mux = http.NewServeMux()
		site.Register(mux)
		w = httptest.NewRecorder()
	})

	It("serves the landing page at the root", func() {
		mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Header().Get("Content-Type")).To(ContainSubstring("text/html"))
		Expect(w.Body.String()).To(ContainSubstring("Exercise tracker"))
	})

	It("serves public assets", func() {
		mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/public/style.css", nil))
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(ContainSubstring(".container"))
	})

	It("does not serve unknown paths as the landing page", func() {
		mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/unknown", nil))
		Expect(w.Code).To(Equal(http.StatusNotFound))
	})
})
