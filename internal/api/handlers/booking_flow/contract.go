package booking_flow

import (
	"context"

	bookingFlow "github.com/m04kA/SMC-LuxeBook/internal/usecase/booking_flow"
)

type FlowRegistry interface {
	Start() bookingFlow.Snapshot
	Get(id string) (bookingFlow.Snapshot, error)
	Apply(ctx context.Context, id string, event bookingFlow.Event) (bookingFlow.Snapshot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
