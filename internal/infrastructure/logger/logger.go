package logger

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap for the API, the seeder and the ledger client
type Logger struct {
	zap *zap.Logger
}

// NewLogger builds a JSON logger in production and a console logger in
// every other environment. An unknown level keeps the environment default.
func NewLogger(environment string, level string) *Logger {
	config := zap.NewDevelopmentConfig()
	if environment == "production" {
		config = zap.NewProductionConfig()
	}
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	if lvl, err := zapcore.ParseLevel(level); err == nil {
		config.Level = zap.NewAtomicLevelAt(lvl)
	}

	config.EncoderConfig.TimeKey = "ts"
	config.EncoderConfig.FunctionKey = zapcore.OmitKey
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeDuration = zapcore.StringDurationEncoder

	z, err := config.Build()
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	return &Logger{zap: z}
}

// NewNop returns a logger that discards everything, used by tests
func NewNop() *Logger {
	return &Logger{zap: zap.NewNop()}
}

// RequestFields describes one served API call
type RequestFields struct {
	RequestID string
	SessionID string
	Username  string
	Method    string
	Route     string
	ClientIP  string
	Status    int
	Latency   time.Duration
	Bytes     int
}

// WithRequest returns a logger carrying the request fields. Session and
// user are omitted for anonymous calls.
func (l *Logger) WithRequest(r RequestFields) *Logger {
	fields := []zap.Field{
		zap.String("request_id", r.RequestID),
		zap.String("method", r.Method),
		zap.String("route", r.Route),
		zap.String("client_ip", r.ClientIP),
		zap.Int("status", r.Status),
		zap.Duration("latency", r.Latency),
		zap.Int("bytes", r.Bytes),
	}
	if r.SessionID != "" {
		fields = append(fields, zap.String("session_id", r.SessionID))
	}
	if r.Username != "" {
		fields = append(fields, zap.String("username", r.Username))
	}
	return &Logger{zap: l.zap.With(fields...)}
}

// Info logs an info level message
func (l *Logger) Info(msg string, fields ...zap.Field) {
	l.zap.Info(msg, fields...)
}

// Error logs an error level message
func (l *Logger) Error(msg string, fields ...zap.Field) {
	l.zap.Error(msg, fields...)
}

// Warn logs a warning level message
func (l *Logger) Warn(msg string, fields ...zap.Field) {
	l.zap.Warn(msg, fields...)
}

// Debug logs a debug level message
func (l *Logger) Debug(msg string, fields ...zap.Field) {
	l.zap.Debug(msg, fields...)
}

// Zap exposes the underlying zap logger for libraries that need one
func (l *Logger) Zap() *zap.Logger {
	return l.zap
}

// Sync flushes any buffered log entries
func (l *Logger) Sync() error {
	return l.zap.Sync()
}
