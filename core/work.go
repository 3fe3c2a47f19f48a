package core

// QAPair is a single question/answer unit generated for a topic.
type QAPair struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// WorkItem is one independently processable unit submitted to the fan-out
// pool: a topic plus the shared read-only transcript. Items are passed by
// value so no worker can reach into another worker's scratch space.
type WorkItem struct {
	Topic      string
	Transcript string
}

// WorkResult is the outcome for one WorkItem. Either the content fields are
// populated (success) or ErrDetail carries a human-readable failure
// description. Results are keyed by topic.
type WorkResult struct {
	Topic       string   `json:"topic"`
	QAPairs     []QAPair `json:"qa_pairs,omitempty"`
	Explanation string   `json:"explanation,omitempty"`
	ErrDetail   string   `json:"error,omitempty"`
}

// Failed reports whether the work item produced a failure outcome.
func (r WorkResult) Failed() bool { return r.ErrDetail != "" }
