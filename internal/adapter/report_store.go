package adapter

import (
	"fmt"

	"gopkg.in/yaml.v3"

	m "opaq.dev/pkg/opaq/internal/model"
)

// DefaultReportName is the file name of the run report inside the output root.
const DefaultReportName = "opaq-report.yaml"

// ReportStore persists run reports.
type ReportStore interface {
	SaveReport(path m.Path, report m.RunReport) error
	LoadReport(path m.Path) (m.RunReport, error)
}

// YAMLReportStore stores reports as YAML documents.
type YAMLReportStore struct {
	fs ArtifactFS
}

// NewReportStore constructs a YAML-backed ReportStore.
func NewReportStore(fs ArtifactFS) *YAMLReportStore {
	return &YAMLReportStore{fs: fs}
}

// SaveReport writes report to path.
func (s *YAMLReportStore) SaveReport(path m.Path, report m.RunReport) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if err := s.fs.WriteFile(path, data); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}

	return nil
}

// LoadReport reads a report previously written by SaveReport.
func (s *YAMLReportStore) LoadReport(path m.Path) (m.RunReport, error) {
	data, err := s.fs.ReadFile(path)
	if err != nil {
		return m.RunReport{}, fmt.Errorf("read report %s: %w", path, err)
	}

	var report m.RunReport
	if err := yaml.Unmarshal(data, &report); err != nil {
		return m.RunReport{}, fmt.Errorf("parse report %s: %w", path, err)
	}

	return report, nil
}
