package model

// EntryStatus represents the outcome of generating tests for a single file.
type EntryStatus string

const (
	// StatusWritten indicates the generated test file was written to disk.
	StatusWritten EntryStatus = "written"
	// StatusFailed indicates generation or writing failed for the file.
	StatusFailed EntryStatus = "failed"
)

// BatchEntry holds the outcome for a single source file in a batch run.
type BatchEntry struct {
	Source Path        `yaml:"source"`
	Output Path        `yaml:"output,omitempty"`
	Status EntryStatus `yaml:"status"`
	Kind   string      `yaml:"kind,omitempty"`
	Reason string      `yaml:"reason,omitempty"`

	// Err carries the original error for in-process callers. It is not
	// persisted; Kind and Reason are the durable form.
	Err error `yaml:"-"`
}

// BatchReport is the ordered per-file outcome list of a directory run.
// Entries are appended in discovery order and never reordered.
type BatchReport struct {
	Root    Path         `yaml:"root"`
	Entries []BatchEntry `yaml:"entries"`
}

// Add appends an entry to the report.
func (r *BatchReport) Add(entry BatchEntry) {
	r.Entries = append(r.Entries, entry)
}

// Successes returns the entries whose test file was written.
func (r *BatchReport) Successes() []BatchEntry {
	return r.filter(StatusWritten)
}

// Failures returns the entries that failed to generate or write.
func (r *BatchReport) Failures() []BatchEntry {
	return r.filter(StatusFailed)
}

// Outputs returns the written output paths in report order.
func (r *BatchReport) Outputs() []Path {
	var paths []Path
	for _, entry := range r.Entries {
		if entry.Status == StatusWritten {
			paths = append(paths, entry.Output)
		}
	}

	return paths
}

func (r *BatchReport) filter(status EntryStatus) []BatchEntry {
	var entries []BatchEntry
	for _, entry := range r.Entries {
		if entry.Status == status {
			entries = append(entries, entry)
		}
	}

	return entries
}
