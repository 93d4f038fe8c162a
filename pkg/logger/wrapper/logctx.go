package wrap

import (
	"context"
)

type (
	// LogCtx holds contextual information for logging
	LogCtx struct {
		Action        string
		RequestID     string
		RideRequestID string
		DriverName    string
	}

	// logCtxKeyStruct is an unexported type for context keys defined in this package.
	logCtxKeyStruct struct{}
)

// LogCtxKey is the key for log context values
var LogCtxKey = &logCtxKeyStruct{}

// WithLogCtx returns a new context with the provided LogCtx
func WithLogCtx(ctx context.Context, newLc LogCtx) context.Context {
	// Merge with an existing LogCtx if one is present
	if lc, ok := ctx.Value(LogCtxKey).(LogCtx); ok {
		if newLc.Action == "" {
			newLc.Action = lc.Action
		}
		if newLc.RequestID == "" {
			newLc.RequestID = lc.RequestID
		}
		if newLc.RideRequestID == "" {
			newLc.RideRequestID = lc.RideRequestID
		}
		if newLc.DriverName == "" {
			newLc.DriverName = lc.DriverName
		}
	}
	return context.WithValue(ctx, LogCtxKey, newLc)
}

// WithAction adds or updates the Action in the LogCtx within the context
func WithAction(ctx context.Context, action string) context.Context {
	lc, _ := ctx.Value(LogCtxKey).(LogCtx)
	lc.Action = action
	return context.WithValue(ctx, LogCtxKey, lc)
}

// WithRequestID adds or updates the RequestID in the LogCtx within the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	lc, _ := ctx.Value(LogCtxKey).(LogCtx)
	lc.RequestID = requestID
	return context.WithValue(ctx, LogCtxKey, lc)
}

// WithRideRequestID adds or updates the ride request ID in the LogCtx within the context
func WithRideRequestID(ctx context.Context, id string) context.Context {
	lc, _ := ctx.Value(LogCtxKey).(LogCtx)
	lc.RideRequestID = id
	return context.WithValue(ctx, LogCtxKey, lc)
}

// WithDriver adds or updates the driver name in the LogCtx within the context
func WithDriver(ctx context.Context, name string) context.Context {
	lc, _ := ctx.Value(LogCtxKey).(LogCtx)
	lc.DriverName = name
	return context.WithValue(ctx, LogCtxKey, lc)
}
