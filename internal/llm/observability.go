package llm

import "go.uber.org/zap"

// CallEvent records metadata about a single completion invocation.
type CallEvent struct {
	Task        TaskType
	Model       string
	LatencyMs   int64
	TotalTokens int
	Success     bool
	ErrorCode   string
}

// Observer receives events about completion calls for logging and metrics.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// ZapObserver writes completion call events to a zap logger.
type ZapObserver struct {
	log *zap.Logger
}

// NewZapObserver creates an Observer that logs events to log.
func NewZapObserver(log *zap.Logger) *ZapObserver {
	return &ZapObserver{log: log}
}

func (o *ZapObserver) OnCallComplete(event CallEvent) {
	fields := []zap.Field{
		zap.String("task", string(event.Task)),
		zap.String("model", event.Model),
		zap.Int64("latency_ms", event.LatencyMs),
		zap.Int("total_tokens", event.TotalTokens),
	}
	if event.Success {
		o.log.Info("completion call", fields...)
		return
	}
	fields = append(fields, zap.String("error_code", event.ErrorCode))
	o.log.Warn("completion call failed", fields...)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}
