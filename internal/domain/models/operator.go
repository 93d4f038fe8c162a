package models

import (
	"context"

	"github.com/teleka/teleka-taxi/internal/domain/types"
)

// Operator is the console user behind the admin endpoints. There is no user
// database: the single operator is defined by configuration.
type Operator struct {
	Username string
	Role     types.UserRole
}

func AnonymousOperator() *Operator {
	return &Operator{}
}

func (o *Operator) IsAnonymous() bool {
	return o == nil || o.Username == ""
}

type operatorCtxKey struct{}

var operatorKey = operatorCtxKey{}

// WithOperator returns a context carrying the authenticated operator.
func WithOperator(ctx context.Context, op *Operator) context.Context {
	return context.WithValue(ctx, operatorKey, op)
}

// OperatorFromContext returns the operator stored in the context, or nil.
func OperatorFromContext(ctx context.Context) *Operator {
	op, ok := ctx.Value(operatorKey).(*Operator)
	if !ok {
		return nil
	}
	return op
}
