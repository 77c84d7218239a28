package input

import (
	"context"

	"github.com/Eugene-WebDev/se-ranking-node/internal/domain/entity"
)

type ExecuteResult struct {
	RunID   string
	Records []entity.Record
}

type BatchExecutor interface {
	Execute(ctx context.Context, batch entity.Batch) (*ExecuteResult, error)
}
