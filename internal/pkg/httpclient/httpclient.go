package httpclient

import (
	"time"

	"cricket-booking/config"

	circuit "github.com/rubyist/circuitbreaker"
)

// InitCircuitBreaker picks the breaker strategy for outbound calls. The
// user service sits on the booking hot path, so a flapping dependency must
// trip fast instead of queueing buyers behind timeouts.
func InitCircuitBreaker(cfg *config.HttpClientConfig, breakerType string) *circuit.Breaker {
	switch breakerType {
	case "consecutive":
		return circuit.NewConsecutiveBreaker(cfg.ConsecutiveFailures)
	case "threshold":
		return circuit.NewThresholdBreaker(cfg.ConsecutiveFailures)
	default:
		return circuit.NewRateBreaker(0.95, 100)
	}
}

func InitHttpClient(cfg *config.HttpClientConfig, cb *circuit.Breaker) *circuit.HTTPClient {
	timeout := time.Duration(cfg.Timeout) * time.Second

	client := circuit.NewHTTPClient(timeout, cfg.ConsecutiveFailures, nil)
	client.BreakerLookup = func(c *circuit.HTTPClient, val interface{}) *circuit.Breaker {
		return cb
	}

	return client
}
