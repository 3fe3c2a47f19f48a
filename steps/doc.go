// Package steps provides the concrete boundary steps of the video digest
// pipeline: input validation, video retrieval, topic extraction, and report
// rendering. The fan-out step lives in package orchestrator; everything here
// runs sequentially and talks to one external collaborator each.
package steps
