package handler_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"ticketpilot.app/bridge/core/config"
	"ticketpilot.app/bridge/internal/http/handler"
)

var _ = Describe("EmbedHandler", func() {
	var router *gin.Engine

	embedCfg := config.EmbedConfig{
		ProxyScheme:         "http",
		ForwardedHostHeader: "X-Forwarded-Host",
		FrameWidth:          "100%",
		FrameHeight:         "575px",
	}

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		h := handler.NewEmbedHandler(embedCfg, nil)
		router.POST("/copilot", h.Post)
		router.GET("/copilot", h.Get)
	})

	Describe("POST /copilot", func() {
		It("returns 400 without a token", func() {
			req := httptest.NewRequest(http.MethodPost, "/copilot", strings.NewReader(""))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("returns 400 when the json body has an empty token", func() {
			req := httptest.NewRequest(http.MethodPost, "/copilot", strings.NewReader(`{"token":""}`))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("replays a form token as a GET against the forwarded host", func() {
			var seen *http.Request
			upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = r.Clone(r.Context())
				w.Header().Set("Content-Type", "text/html")
				w.Write([]byte("embed page"))
			}))
			defer upstream.Close()
			upstreamHost := strings.TrimPrefix(upstream.URL, "http://")

			form := url.Values{"token": {"jwt-abc"}}
			req := httptest.NewRequest(http.MethodPost, "/copilot", strings.NewReader(form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			req.Header.Set("X-Forwarded-Host", upstreamHost)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(Equal("embed page"))
			Expect(w.Header().Get("Content-Type")).To(Equal("text/html"))

			Expect(seen).NotTo(BeNil())
			Expect(seen.Method).To(Equal(http.MethodGet))
			Expect(seen.URL.Path).To(Equal("/copilot"))
			Expect(seen.URL.Query().Get("token")).To(Equal("jwt-abc"))
		})

		It("accepts a json token when no form is present", func() {
			upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))
			defer upstream.Close()
			upstreamHost := strings.TrimPrefix(upstream.URL, "http://")

			req := httptest.NewRequest(http.MethodPost, "/copilot", strings.NewReader(`{"token":"jwt-json"}`))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("X-Forwarded-Host", upstreamHost)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
		})

		It("returns 502 when the upstream is unreachable", func() {
			form := url.Values{"token": {"jwt-abc"}}
			req := httptest.NewRequest(http.MethodPost, "/copilot", strings.NewReader(form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			req.Header.Set("X-Forwarded-Host", "127.0.0.1:1")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadGateway))
		})
	})

	Describe("GET /copilot", func() {
		It("serves the embed page with the token echoed", func() {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/copilot?token=jwt-abc", nil))

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Header().Get("Content-Type")).To(ContainSubstring("text/html"))
			Expect(w.Body.String()).To(ContainSubstring(`data-token="jwt-abc"`))
		})

		It("escapes token content in the page", func() {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, `/copilot?token=%22%3E%3Cscript%3E`, nil))

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).NotTo(ContainSubstring(`"><script>`))
		})
	})
})
