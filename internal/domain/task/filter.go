package task

// Filter holds optional criteria for listing tasks.
// A zero StatusID and a nil IsCompleted mean "no filter" for that dimension.
type Filter struct {
	StatusID    uint8
	IsCompleted *bool
}

// Statistics summarizes the task table.
type Statistics struct {
	Count       int64
	ActiveCount int64
}
