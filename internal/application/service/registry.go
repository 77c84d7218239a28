package service

import (
	"sort"

	"github.com/Eugene-WebDev/se-ranking-node/internal/application/port/output"
	"github.com/Eugene-WebDev/se-ranking-node/internal/domain/entity"
)

var _ output.OperationRegistry = (*OperationRegistryImpl)(nil)

type OperationRegistryImpl struct {
	handlers map[entity.Operation]output.OperationHandler
}

func NewOperationRegistry() *OperationRegistryImpl {
	return &OperationRegistryImpl{
		handlers: make(map[entity.Operation]output.OperationHandler),
	}
}

func (r *OperationRegistryImpl) Register(handler output.OperationHandler) {
	r.handlers[handler.Operation()] = handler
}

func (r *OperationRegistryImpl) Get(op entity.Operation) (output.OperationHandler, bool) {
	handler, ok := r.handlers[op]
	return handler, ok
}

func (r *OperationRegistryImpl) Operations() []entity.Operation {
	result := make([]entity.Operation, 0, len(r.handlers))
	for op := range r.handlers {
		result = append(result, op)
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}
