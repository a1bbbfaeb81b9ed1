package analyze

import (
	"github.com/abhisek/soilsense/internal/batch"
)

// progressTickMsg advances the progress bar of analysis run seq.
type progressTickMsg struct {
	seq int
}

// analysisDoneMsg carries the finished report of analysis run seq.
type analysisDoneMsg struct {
	seq    int
	report batch.Report
}
