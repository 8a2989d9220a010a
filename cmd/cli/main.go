package main

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"gemini-provider/internal/readiness"
	"gemini-provider/pkg/log"
)

func main() {
	logger := log.NewWithCore(zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stderr),
		zapcore.InfoLevel,
	))

	if err := newRootCmd(logger, readiness.EnvResolver()).Execute(); err != nil {
		os.Exit(1)
	}
}
