package steps

import (
	"context"

	"github.com/hupe1980/videodigest/core"
	"github.com/hupe1980/videodigest/pipeline"
	"github.com/hupe1980/videodigest/source"
)

// ValidateInputStep checks the run's input URL and resolves it to a provider
// video identifier. It is the first step of the standard pipeline so that a
// malformed URL aborts the run before any network call is made.
type ValidateInputStep struct {
	pipeline.BaseStep

	videoID string
}

// NewValidateInputStep creates the URL validation step.
func NewValidateInputStep() *ValidateInputStep {
	return &ValidateInputStep{
		BaseStep: pipeline.NewBaseStep("ValidateInput"),
	}
}

// Prepare requires the raw video URL to be present.
func (s *ValidateInputStep) Prepare(_ context.Context, state *core.SharedState) error {
	if state.GetString(core.KeyVideoURL) == "" {
		return core.NewMissingInputError(core.KeyVideoURL)
	}
	return nil
}

// Execute parses the URL into a video identifier.
func (s *ValidateInputStep) Execute(_ context.Context, state *core.SharedState) error {
	id, err := source.ParseVideoID(state.GetString(core.KeyVideoURL))
	if err != nil {
		return err
	}
	s.videoID = id
	return nil
}

// Finalize publishes the extracted video identifier.
func (s *ValidateInputStep) Finalize(_ context.Context, state *core.SharedState) error {
	state.Set(core.KeyVideoID, s.videoID)
	return nil
}
