package log

import (
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// Setup builds the service-wide logger. Trace ids from the active apm
// transaction end up on every record via the otelzap bridge.
func Setup() *otelzap.Logger {
	zapLogger, err := zap.NewProduction()
	if err != nil {
		zapLogger = zap.NewNop()
	}

	return otelzap.New(zapLogger,
		otelzap.WithMinLevel(zap.InfoLevel),
		otelzap.WithStackTrace(true),
	)
}
