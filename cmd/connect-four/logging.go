package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	logFileName = "connect-four.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging opens the debug log under dir, rotating it past maxLogSize
// Without debug the returned logger discards everything and the file is nil
// The terminal owns stdout and stderr, so nothing is ever logged there
func setupLogging(dir string, debug bool) (*zap.Logger, *os.File) {
	if !debug {
		log.SetOutput(io.Discard)
		return zap.NewNop(), nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return zap.NewNop(), nil
	}

	path := filepath.Join(dir, logFileName)
	var rotateErr error
	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		rotateErr = os.Rename(path, rotatedLogPath(dir, time.Now()))
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return zap.NewNop(), nil
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(file), zapcore.DebugLevel)
	logger := zap.New(core, zap.AddCaller())

	// Route stray stdlib log output (beep, oto) into the same file
	zap.RedirectStdLog(logger)

	if rotateErr != nil {
		logger.Warn("log rotation failed, appending to the current file", zap.Error(rotateErr))
	}
	return logger, file
}

// rotatedLogPath names the archive for a log rotated at t
var rotatedLogPath = func(dir string, t time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("connect-four-%s.log", t.Format("20060102-150405")))
}
