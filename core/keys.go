package core

// Well-known SharedState keys. Steps communicate exclusively through these
// keys; a later step may overwrite a key but concurrent writers are ruled out
// by the Finalize-only mutation convention.
const (
	// KeyVideoURL is the raw input URL seeding a run.
	KeyVideoURL = "videoURL"

	// KeyVideoID is the provider video identifier extracted from the URL.
	KeyVideoID = "videoID"

	// KeyMetadata holds the fetched video metadata (map[string]string).
	KeyMetadata = "metadata"

	// KeyTranscript holds the full transcript text shared read-only by all
	// worker tasks.
	KeyTranscript = "transcript"

	// KeyTopics holds the ordered topic list ([]string) driving the fan-out.
	KeyTopics = "topics"

	// KeyQAByTopic holds the merged question/answer content
	// (map[string][]QAPair), populated only from successful work results.
	KeyQAByTopic = "qaByTopic"

	// KeyExplanationByTopic holds the merged simplified explanations
	// (map[string]string), populated only from successful work results.
	KeyExplanationByTopic = "explanationByTopic"

	// KeyTopicErrors holds per-topic failure details (map[string]string) for
	// topics whose generation failed. Failed topics are absent from the
	// content mappings but retained here for visibility.
	KeyTopicErrors = "topicErrors"

	// KeyResults holds the full per-topic result set ([]WorkResult),
	// successes and failures alike, in original topic order.
	KeyResults = "results"

	// KeyReport holds the rendered report (the index page markdown).
	KeyReport = "report"

	// KeyError is the abort sentinel. The sequencer writes the halting error
	// here and every downstream step is skipped once it is present.
	KeyError = "error"
)
