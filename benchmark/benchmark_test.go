package benchmark

import (
	"testing"

	"github.com/philipp01105/tlog/logger"
)

func newNoopLogger(b *testing.B, level logger.Level) *logger.Logger {
	b.Helper()
	l, err := logger.NewBuilder("bench").
		WithLevel(level).
		WithHandler(newNoopHandler()).
		Build()
	if err != nil {
		b.Fatal(err)
	}
	return l
}

func BenchmarkInfoNoOverrides(b *testing.B) {
	l := newNoopLogger(b, logger.DebugLevel)
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.Info("info message")
	}
}

func BenchmarkInfoWithOverrides(b *testing.B) {
	l := newNoopLogger(b, logger.DebugLevel)
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.Info("info message",
			logger.String("user", "alice"),
			logger.Int("attempt", i),
		)
	}
}

func BenchmarkInfoLazyOverride(b *testing.B) {
	l := newNoopLogger(b, logger.DebugLevel)
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.Info("info message", logger.Lazy("snapshot", func() interface{} {
			return "computed"
		}))
	}
}

func BenchmarkDebugFiltered(b *testing.B) {
	l := newNoopLogger(b, logger.ErrorLevel)
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.Debug("filtered out", logger.Lazy("expensive", func() interface{} {
			b.Fatal("producer ran for a filtered call")
			return nil
		}))
	}
}

func BenchmarkCustomTemplate(b *testing.B) {
	l, err := logger.NewBuilder("bench").
		WithLevel(logger.DebugLevel).
		WithTemplate("{level} {name} {service} {region}: {message}").
		WithDefaults(
			logger.String("service", "payments"),
			logger.String("region", "eu-west-1"),
		).
		WithHandler(newNoopHandler()).
		Build()
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.Info("processed")
	}
}
