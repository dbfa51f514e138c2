package model

import (
	"errors"
	"fmt"
	"testing"
)

func TestBatchReport_Accumulation(t *testing.T) {
	var report BatchReport

	report.Add(BatchEntry{Source: "a.py", Output: "tests/test_a.py", Status: StatusWritten})
	report.Add(BatchEntry{Source: "b.py", Status: StatusFailed, Kind: KindService, Reason: "boom"})
	report.Add(BatchEntry{Source: "c.py", Output: "tests/test_c.py", Status: StatusWritten})

	if len(report.Entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(report.Entries))
	}

	if got := len(report.Successes()); got != 2 {
		t.Errorf("Successes() = %d, want 2", got)
	}

	if got := len(report.Failures()); got != 1 {
		t.Errorf("Failures() = %d, want 1", got)
	}

	outputs := report.Outputs()
	if len(outputs) != 2 || outputs[0] != "tests/test_a.py" || outputs[1] != "tests/test_c.py" {
		t.Errorf("Outputs() = %v, want [tests/test_a.py tests/test_c.py]", outputs)
	}
}

func TestBatchReport_PreservesOrder(t *testing.T) {
	var report BatchReport

	for i := 0; i < 5; i++ {
		report.Add(BatchEntry{Source: Path(fmt.Sprintf("%d.py", i)), Status: StatusWritten})
	}

	for i, entry := range report.Entries {
		want := Path(fmt.Sprintf("%d.py", i))
		if entry.Source != want {
			t.Fatalf("entry %d source = %s, want %s", i, entry.Source, want)
		}
	}
}

func TestErrorKind(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"not found", fmt.Errorf("%w: foo.py", ErrNotFound), KindNotFound},
		{"service", fmt.Errorf("%w: timed out", ErrService), KindService},
		{"write", fmt.Errorf("%w: tests/test_foo.py", ErrWrite), KindWrite},
		{"unknown", errors.New("other"), KindUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ErrorKind(tc.err); got != tc.want {
				t.Errorf("ErrorKind() = %q, want %q", got, tc.want)
			}
		})
	}
}
