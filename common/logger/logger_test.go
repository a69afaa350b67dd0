package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"unicode/utf8"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"promptrelay.app/relay/common/logger"
	"promptrelay.app/relay/core/config"
)

var _ = Describe("WithLogFields", func() {
	It("merges newer values over existing ones", func() {
		ctx := logger.WithLogFields(context.Background(), logger.LogFields{
			RequestID: logger.Ptr("1"),
			Component: "relay.http",
		})
		ctx = logger.WithLogFields(ctx, logger.LogFields{
			Role:      logger.Ptr("expert"),
			Component: "relay.service.generate",
		})

		fields := logger.GetLogFields(ctx)
		Expect(*fields.RequestID).To(Equal("1"))
		Expect(*fields.Role).To(Equal("expert"))
		Expect(fields.Provider).To(BeNil())
		Expect(fields.Component).To(Equal("relay.service.generate"))
	})

	It("returns empty fields for a bare context", func() {
		Expect(logger.GetLogFields(context.Background())).To(Equal(logger.LogFields{}))
	})
})

var _ = Describe("Truncate", func() {
	DescribeTable("shortens long strings",
		func(input string, maxLen int, expected string) {
			Expect(logger.Truncate(input, maxLen)).To(Equal(expected))
		},
		Entry("short string unchanged", "hello", 10, "hello"),
		Entry("exact length unchanged", "hello", 5, "hello"),
		Entry("long string cut", "hello world", 5, "hello..."),
		Entry("cut inside a rune backs off", "héllo", 2, "h..."),
		Entry("cut on a rune boundary", "héllo", 3, "hé..."),
		Entry("multi-byte only", "日本語", 4, "日..."),
	)

	It("never emits invalid UTF-8", func() {
		question := "¿Cuál es la capital de España? 日本語もどうぞ"
		for n := 0; n < len(question); n++ {
			Expect(utf8.ValidString(logger.Truncate(question, n))).To(BeTrue(), "maxLen %d", n)
		}
	})
})

var _ = Describe("TraceHandler", func() {
	It("adds context fields to every record", func() {
		var buf bytes.Buffer
		cfg := config.Config{Env: "production"}
		log := slog.New(logger.NewHandler(cfg, &buf))

		ctx := logger.WithLogFields(context.Background(), logger.LogFields{
			RequestID: logger.Ptr("42"),
			Provider:  logger.Ptr("gemini"),
			Component: "relay.test",
		})
		log.InfoContext(ctx, "hello")

		var entry map[string]any
		Expect(json.Unmarshal(buf.Bytes(), &entry)).To(Succeed())
		Expect(entry).To(HaveKeyWithValue("msg", "hello"))
		Expect(entry).To(HaveKeyWithValue("request_id", "42"))
		Expect(entry).To(HaveKeyWithValue("provider", "gemini"))
		Expect(entry).To(HaveKeyWithValue("component", "relay.test"))
		Expect(entry).NotTo(HaveKey("role"))
	})

	It("drops debug records unless debug is enabled", func() {
		var buf bytes.Buffer
		log := slog.New(logger.NewHandler(config.Config{Env: "production"}, &buf))
		log.Debug("quiet")
		Expect(buf.Len()).To(BeZero())

		log = slog.New(logger.NewHandler(config.Config{Env: "production", Debug: true}, &buf))
		log.Debug("loud")
		Expect(buf.String()).To(ContainSubstring("loud"))
	})
})
