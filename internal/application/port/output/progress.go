package output

import "context"

type ProgressPort interface {
	ShowRunStart(ctx context.Context, runID, operation string, items int)
	ShowItemResult(ctx context.Context, index, records int, err error)
	ShowRunDone(ctx context.Context, records int, err error)
}
