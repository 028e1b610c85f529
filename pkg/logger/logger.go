package logger

import (
	"go.uber.org/zap"
)

// Logger is the diagnostic sink shared by the client packages. A zero Logger
// discards everything.
type Logger struct {
	zap *zap.Logger
}

// NewLogger builds a production JSON logger writing to path ("stderr",
// "stdout" or a file).
func NewLogger(level, path string) (*Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}

	config := zap.NewProductionConfig()
	config.Level = lvl
	if path != "" {
		config.OutputPaths = []string{path}
		config.ErrorOutputPaths = []string{path}
	}
	logger, err := config.Build(zap.AddCaller(), zap.AddCallerSkip(1))
	if err != nil {
		return nil, err
	}

	return &Logger{zap: logger}, nil
}

// New wraps an already built zap logger.
func New(z *zap.Logger) *Logger {
	return &Logger{zap: z}
}

func (l Logger) Debug(msg string, fields ...zap.Field) {
	l.writer().Debug(msg, fields...)
}

func (l Logger) Info(msg string, fields ...zap.Field) {
	l.writer().Info(msg, fields...)
}

func (l Logger) Error(msg string, fields ...zap.Field) {
	l.writer().Error(msg, fields...)
}

// Sync flushes buffered entries.
func (l Logger) Sync() error {
	return l.writer().Sync()
}

func (l Logger) writer() *zap.Logger {
	if l.zap == nil {
		return zap.NewNop()
	}
	return l.zap
}
