package commands

import (
	"pwreport/internal/domain"
	"pwreport/internal/parser"
	"pwreport/internal/report"
	"pwreport/internal/storage"
)

// resultsLoader reads, parses and aggregates the results document
type resultsLoader struct {
	storage storage.Storage
	parser  parser.Parser
}

func newResultsLoader(st storage.Storage, p parser.Parser) *resultsLoader {
	return &resultsLoader{storage: st, parser: p}
}

// Load returns the aggregated summary and the run statistics (nil when the runner wrote none).
func (l *resultsLoader) Load() (domain.TestSummary, *domain.RunStats, error) {
	data, err := l.storage.LoadResults()
	if err != nil {
		return domain.TestSummary{}, nil, err
	}
	run, err := l.parser.Parse(data)
	if err != nil {
		return domain.TestSummary{}, nil, err
	}
	return report.Aggregate(*run), run.Stats, nil
}
