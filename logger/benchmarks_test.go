package logger

import (
	"io"
	"testing"
)

// BenchmarkInfo benchmarks Info() with a discard writer.
// Target: 0 allocs/op after the initial buffer growth
func BenchmarkInfo(b *testing.B) {
	logger, _ := New("bench", WithConsole(io.Discard), WithLevel(InfoLevel))

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		logger.Info("test message")
	}
}

// BenchmarkInfoRankTagged benchmarks Info() with the rank prefix enabled.
func BenchmarkInfoRankTagged(b *testing.B) {
	logger, _ := New("bench",
		WithConsole(io.Discard),
		WithLevel(InfoLevel),
		WithRankTag(true),
		WithRank(3, 64))

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		logger.Info("test message")
	}
}

// BenchmarkInfoFiltered benchmarks a message dropped by the level gate.
// Target: ~1 ns/op, 0 allocs/op
func BenchmarkInfoFiltered(b *testing.B) {
	logger, _ := New("bench", WithConsole(io.Discard), WithLevel(ErrorLevel))

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		logger.Info("dropped message")
	}
}

// BenchmarkInfoRankSuppressed benchmarks a message dropped by the
// rank gate of a non-logging rank.
func BenchmarkInfoRankSuppressed(b *testing.B) {
	logger, _ := New("bench",
		WithConsole(io.Discard),
		WithRank(3, 64),
		WithLogRank(0))

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		logger.Info("suppressed message")
	}
}

// BenchmarkPrint benchmarks raw passthrough output.
func BenchmarkPrint(b *testing.B) {
	logger, _ := New("bench", WithConsole(io.Discard))

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		logger.Print("raw message\n")
	}
}

// BenchmarkInfof benchmarks the formatted variant.
func BenchmarkInfof(b *testing.B) {
	logger, _ := New("bench", WithConsole(io.Discard), WithLevel(InfoLevel))

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		logger.Infof("step %d complete", i)
	}
}
