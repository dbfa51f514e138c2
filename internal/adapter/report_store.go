package adapter

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	m "testforge.dev/pkg/testforge/internal/model"
)

// ReportFileName is the batch report written alongside generated tests.
const ReportFileName = ".testforge-report.yaml"

// ReportStore persists batch reports so a finished run can be re-displayed.
type ReportStore interface {
	Save(path m.Path, report m.BatchReport) error
	Load(path m.Path) (m.BatchReport, error)
}

type yamlReportStore struct{}

// NewReportStore constructs the YAML-backed report store.
func NewReportStore() ReportStore {
	return &yamlReportStore{}
}

func (s *yamlReportStore) Save(path m.Path, report m.BatchReport) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if err := os.WriteFile(string(path), data, 0o644); err != nil {
		return fmt.Errorf("save report: %w", err)
	}

	return nil
}

func (s *yamlReportStore) Load(path m.Path) (m.BatchReport, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.BatchReport{}, fmt.Errorf("load report: %w", err)
	}

	var report m.BatchReport
	if err := yaml.Unmarshal(data, &report); err != nil {
		return m.BatchReport{}, fmt.Errorf("parse report: %w", err)
	}

	return report, nil
}
