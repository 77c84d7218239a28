package output

import (
	"context"

	"github.com/Eugene-WebDev/se-ranking-node/internal/domain/entity"
)

// OperationHandler resolves, sends and normalizes a single item.
type OperationHandler interface {
	Operation() entity.Operation
	Handle(ctx context.Context, creds entity.Credentials, params entity.ItemParams) ([]entity.Record, error)
}

type OperationRegistry interface {
	Register(handler OperationHandler)
	Get(op entity.Operation) (OperationHandler, bool)
	Operations() []entity.Operation
}
