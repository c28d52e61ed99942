package scoring

// Progress is an advisory (completed, total, phase) event emitted as
// scoring proceeds. Readers that fall behind never stall a worker: sends
// are non-blocking.
type Progress struct {
	Completed int
	Total     int
	Phase     string
}
