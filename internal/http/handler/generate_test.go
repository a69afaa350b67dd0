package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"promptrelay.app/relay/internal/http/handler"
	"promptrelay.app/relay/internal/service"
)

var _ = Describe("GenerateHandler", func() {
	var (
		router *gin.Engine
		svc    *mockGenerateService
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		svc = &mockGenerateService{}
		h := handler.NewGenerateHandler(svc)
		router.POST("/api/generate", h.Generate)
	})

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/generate", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	decode := func(w *httptest.ResponseRecorder) map[string]string {
		var resp map[string]string
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		return resp
	}

	It("returns 200 with the generated response", func() {
		svc.generateFn = func(_ context.Context, in service.GenerateInput) (*service.GenerateResult, error) {
			return &service.GenerateResult{Response: "Paris"}, nil
		}

		w := post(`{"question": "What is the capital of France?"}`)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(decode(w)).To(Equal(map[string]string{"response": "Paris"}))
		Expect(svc.calls).To(ConsistOf(service.GenerateInput{Question: "What is the capital of France?"}))
	})

	It("passes the role through to the service", func() {
		w := post(`{"role": "expert", "question": "Explain TCP."}`)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(svc.calls).To(ConsistOf(service.GenerateInput{Role: "expert", Question: "Explain TCP."}))
	})

	DescribeTable("treats a non-string role as no role",
		func(body string) {
			w := post(body)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(svc.calls).To(ConsistOf(service.GenerateInput{Question: "hi"}))
		},
		Entry("number", `{"question": "hi", "role": 5}`),
		Entry("null", `{"question": "hi", "role": null}`),
		Entry("object", `{"question": "hi", "role": {"name": "expert"}}`),
		Entry("array", `{"question": "hi", "role": ["expert"]}`),
	)

	It("maps ErrNoInput to 400", func() {
		svc.generateFn = func(_ context.Context, _ service.GenerateInput) (*service.GenerateResult, error) {
			return nil, service.ErrNoInput
		}

		w := post(`{"question": ""}`)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(decode(w)).To(Equal(map[string]string{"error": "No input provided"}))
	})

	DescribeTable("returns 400 for unusable bodies without calling the service",
		func(body string) {
			w := post(body)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(decode(w)).To(Equal(map[string]string{"error": "No input provided"}))
			Expect(svc.calls).To(BeEmpty())
		},
		Entry("empty body", ""),
		Entry("malformed json", `{`),
		Entry("json array", `["question"]`),
		Entry("non-string question", `{"question": 42}`),
	)

	It("returns 500 with the upstream error message", func() {
		svc.generateFn = func(_ context.Context, _ service.GenerateInput) (*service.GenerateResult, error) {
			return nil, &service.UpstreamError{Err: errors.New("gemini generate: rpc error: code = Unavailable")}
		}

		w := post(`{"question": "hi"}`)

		Expect(w.Code).To(Equal(http.StatusInternalServerError))
		Expect(decode(w)).To(Equal(map[string]string{"error": "gemini generate: rpc error: code = Unavailable"}))
	})

	It("collapses unexpected errors into 500", func() {
		svc.generateFn = func(_ context.Context, _ service.GenerateInput) (*service.GenerateResult, error) {
			return nil, errors.New("boom")
		}

		w := post(`{"question": "hi"}`)

		Expect(w.Code).To(Equal(http.StatusInternalServerError))
		Expect(decode(w)).To(Equal(map[string]string{"error": "boom"}))
	})
})
