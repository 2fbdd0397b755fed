package domain

type Operation string

const (
	OperationDescription      Operation = "description"
	OperationShortDescription Operation = "short_description"
)

// Valid reports whether op is one of the known generation operations.
func (op Operation) Valid() bool {
	return op == OperationDescription || op == OperationShortDescription
}

type BulkState string

const (
	BulkIdle       BulkState = "idle"
	BulkQueued     BulkState = "queued"
	BulkProcessing BulkState = "processing"
	BulkCompleted  BulkState = "completed"
	BulkStopped    BulkState = "stopped"
)

// BulkJob tracks one serial pass over a set of records.
type BulkJob struct {
	RecordIDs    []int64   `json:"record_ids"`
	Operation    Operation `json:"operation"`
	Cursor       int       `json:"cursor"`
	SuccessCount int       `json:"success_count"`
	ErrorCount   int       `json:"error_count"`
	State        BulkState `json:"state"`
	Message      string    `json:"message,omitempty"`
}

func (j *BulkJob) Total() int {
	return len(j.RecordIDs)
}

func (j *BulkJob) Finished() bool {
	return j.State == BulkCompleted || j.State == BulkStopped
}
