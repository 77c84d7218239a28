package entity

import (
	"encoding/json"
	"time"
)

type RecordKind string

const (
	RecordKindCreatedTask        RecordKind = "created_task"
	RecordKindUnexpectedResponse RecordKind = "unexpected_response"
	RecordKindRankResult         RecordKind = "rank_result"
	RecordKindProcessing         RecordKind = "processing"
	RecordKindNoResults          RecordKind = "no_results"
	RecordKindError              RecordKind = "error"
)

// Record is one element of the output stream handed back to the host.
type Record interface {
	Kind() RecordKind
}

const UnexpectedResponseMessage = "Unexpected response format"

type CreatedTaskRecord struct {
	Query     string     `json:"query"`
	TaskID    string     `json:"task_id"`
	EngineID  int        `json:"engine_id"`
	Status    TaskStatus `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
}

func (CreatedTaskRecord) Kind() RecordKind { return RecordKindCreatedTask }

// UnexpectedResponseRecord is emitted when a successful create call returns
// something other than a JSON array.
type UnexpectedResponseRecord struct {
	Error    string          `json:"error"`
	Response json.RawMessage `json:"response"`
}

func (UnexpectedResponseRecord) Kind() RecordKind { return RecordKindUnexpectedResponse }

type RankResultRecord struct {
	TaskID      string    `json:"task_id"`
	Position    int       `json:"position"`
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Snippet     string    `json:"snippet"`
	CacheURL    string    `json:"cache_url"`
	ResultIndex int       `json:"result_index"`
	RetrievedAt time.Time `json:"retrieved_at"`
}

func (RankResultRecord) Kind() RecordKind { return RecordKindRankResult }

type ProcessingRecord struct {
	TaskID    string     `json:"task_id"`
	Status    TaskStatus `json:"status"`
	CheckedAt time.Time  `json:"checked_at"`
}

func (ProcessingRecord) Kind() RecordKind { return RecordKindProcessing }

type NoResultsRecord struct {
	TaskID    string          `json:"task_id"`
	Status    TaskStatus      `json:"status"`
	Data      json.RawMessage `json:"data"`
	CheckedAt time.Time       `json:"checked_at"`
}

func (NoResultsRecord) Kind() RecordKind { return RecordKindNoResults }

type ErrorRecord struct {
	Error        bool   `json:"error"`
	ErrorMessage string `json:"errorMessage"`
	ErrorCode    string `json:"errorCode"`
	Item         int    `json:"item"`
}

func (ErrorRecord) Kind() RecordKind { return RecordKindError }
