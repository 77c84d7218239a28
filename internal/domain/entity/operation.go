package entity

import "fmt"

type Operation string

const (
	OperationCreateSerpTask Operation = "createSerpTask"
	OperationGetTaskStatus  Operation = "getTaskStatus"
)

func (o Operation) String() string {
	return string(o)
}

func ParseOperation(s string) (Operation, error) {
	switch op := Operation(s); op {
	case OperationCreateSerpTask, OperationGetTaskStatus:
		return op, nil
	default:
		return "", fmt.Errorf("unknown operation %q", s)
	}
}

// RunMode decides what the per-item failure boundary does with a failed item.
type RunMode int

const (
	// RunModeStrict aborts the batch on the first failed item.
	RunModeStrict RunMode = iota
	// RunModeTolerant turns a failed item into an ErrorRecord and keeps going.
	RunModeTolerant
)

func (m RunMode) String() string {
	if m == RunModeTolerant {
		return "tolerant"
	}
	return "strict"
}

func RunModeFromContinueOnFail(continueOnFail bool) RunMode {
	if continueOnFail {
		return RunModeTolerant
	}
	return RunModeStrict
}
