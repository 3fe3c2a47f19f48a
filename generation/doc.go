// Package generation defines the content-generation collaborator consumed by
// the fan-out workers: question/answer pairs and simplified explanations for
// a single topic, plus topic extraction over a transcript. Provider-backed
// implementations live in the openai and anthropic subpackages; MockGenerator
// offers deterministic canned output for tests and examples.
package generation
