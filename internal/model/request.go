package model

// GenerationRequest carries everything the prompt builder needs for one file.
// It is constructed per call and discarded after use.
type GenerationRequest struct {
	SourcePath Path
	SourceText string
	Framework  string
}
