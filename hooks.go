package globaltables

import "context"

type contextKey int

const (
	// OperationNameKey carries the name of the control-plane operation being
	// issued, for the benefit of RequestBuilt observers.
	OperationNameKey contextKey = 1 + iota
)

// CallHooks is a container for callbacks which can observe the requests
// issued to the AWS control plane.
type CallHooks struct {
	// RequestBuilt called with each request input prior to dispatch
	RequestBuilt func(ctx context.Context, params interface{}) context.Context
}

var defaultHooks = &CallHooks{
	RequestBuilt: func(ctx context.Context, params interface{}) context.Context {
		return ctx
	},
}

// OperationName extracts the name of the operation being handled in the given
// context. If it is not known, it returns ("", false).
func OperationName(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(OperationNameKey).(string)
	return name, ok
}

func setOperationName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, OperationNameKey, name)
}
