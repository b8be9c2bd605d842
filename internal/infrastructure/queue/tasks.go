package queue

// Task types handled by cmd/worker.
const (
	// TypeHeadshotDelete retries a headshot deletion that failed inline
	// during a roster update or delete.
	TypeHeadshotDelete = "headshot:delete"

	// TypeHeadshotSweep removes bucket objects no roster row references.
	TypeHeadshotSweep = "headshot:sweep"
)

// Queue names.
const (
	QueueStorage = "storage"
)

// HeadshotDeletePayload identifies the object to remove.
type HeadshotDeletePayload struct {
	Key string `json:"key"`
}

// HeadshotSweepPayload is empty; the sweep recomputes its own work set.
type HeadshotSweepPayload struct{}
