// Package schedulefile loads the season schedule, falling back to the
// embedded IPL 2025 fixture list when no file is configured.
package schedulefile

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/riskibarqy/ipl-fantasy-tracker/internal/domain/schedule"
)

//go:embed ipl2025.json
var embedded []byte

func Load(path string) (*schedule.Schedule, error) {
	if path == "" {
		return schedule.Parse(embedded)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schedule file: %w", err)
	}
	sched, err := schedule.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("schedule file %s: %w", path, err)
	}
	return sched, nil
}
