package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/fairwaylabs/golfdata/internal/ingest"
)

const (
	// DefaultImportBatchSize is the batch-size hint reported to the write
	// side when the caller does not supply one. It is not a concurrency
	// limit inside the importer.
	DefaultImportBatchSize = 5

	maxImportWorkers = 4
)

type ImportService struct {
	logger *slog.Logger
}

// ImportSummary reports one directory import: every file discovered, every
// file that parsed, the ordered records, and the itemized failures. Per-file
// failures never abort the batch.
type ImportSummary struct {
	TotalFiles  int
	ParsedFiles int
	BatchSize   int
	Records     []ingest.ImportRecord
	Failures    []string
}

func NewImportService(logger *slog.Logger) *ImportService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ImportService{logger: logger}
}

// ImportDirectory normalizes every export file in dir. A missing directory is
// a distinct not-found error; it is not the same as an empty directory. The
// importer performs no writes.
func (s *ImportService) ImportDirectory(ctx context.Context, dir string, batchSize int) (ImportSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImportService.ImportDirectory")
	defer span.End()

	dir = strings.TrimSpace(dir)
	if dir == "" {
		return ImportSummary{}, fmt.Errorf("%w: directory is required", ErrInvalidInput)
	}
	if batchSize <= 0 {
		batchSize = DefaultImportBatchSize
	}

	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return ImportSummary{}, fmt.Errorf("%w: directory %s does not exist", ErrNotFound, dir)
		}
		return ImportSummary{}, fmt.Errorf("stat directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return ImportSummary{}, fmt.Errorf("%w: %s is not a directory", ErrInvalidInput, dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return ImportSummary{}, fmt.Errorf("read directory %s: %w", dir, err)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.EqualFold(filepath.Ext(entry.Name()), ".json") {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}

	summary := ImportSummary{
		TotalFiles: len(files),
		BatchSize:  batchSize,
		Records:    make([]ingest.ImportRecord, 0, len(files)),
		Failures:   make([]string, 0),
	}
	if len(files) == 0 {
		return summary, nil
	}

	records, failures, err := s.normalizeFiles(files)
	if err != nil {
		return ImportSummary{}, err
	}
	summary.Records = records
	summary.ParsedFiles = len(records)
	summary.Failures = failures

	sortImportRecords(summary.Records)
	sort.Strings(summary.Failures)

	s.logger.InfoContext(ctx, "import directory processed",
		"dir", dir,
		"total_files", summary.TotalFiles,
		"parsed_files", summary.ParsedFiles,
		"failed_files", len(summary.Failures),
	)

	return summary, nil
}

type importFileOutcome struct {
	record  ingest.ImportRecord
	failure string
}

// normalizeFiles runs the normalizer per file on a small worker pool.
// Each file is independent; a failure becomes one report line.
func (s *ImportService) normalizeFiles(files []string) ([]ingest.ImportRecord, []string, error) {
	workerCount := len(files)
	if workerCount > maxImportWorkers {
		workerCount = maxImportWorkers
	}

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return nil, nil, fmt.Errorf("create import worker pool: %w", err)
	}
	defer pool.Release()

	outcomes := make(chan importFileOutcome, len(files))
	var workers sync.WaitGroup
	for _, file := range files {
		file := file
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			outcomes <- normalizeOneFile(file)
		}); err != nil {
			workers.Done()
			return nil, nil, fmt.Errorf("submit file to import worker pool: %w", err)
		}
	}

	workers.Wait()
	close(outcomes)

	records := make([]ingest.ImportRecord, 0, len(files))
	failures := make([]string, 0)
	for outcome := range outcomes {
		if outcome.failure != "" {
			failures = append(failures, outcome.failure)
			continue
		}
		records = append(records, outcome.record)
	}

	return records, failures, nil
}

func normalizeOneFile(file string) importFileOutcome {
	raw, err := os.ReadFile(file)
	if err != nil {
		return importFileOutcome{failure: fmt.Sprintf("%s: %v", filepath.Base(file), err)}
	}

	record, err := ingest.NormalizeFile(file, raw)
	if err != nil {
		return importFileOutcome{failure: fmt.Sprintf("%s: %v", filepath.Base(file), err)}
	}

	return importFileOutcome{record: record}
}

// sortImportRecords orders records alphabetically by display name using
// locale collation so downstream consumers see a deterministic order.
// Identifier breaks ties between identical names.
func sortImportRecords(records []ingest.ImportRecord) {
	collator := collate.New(language.English)
	sort.SliceStable(records, func(i, j int) bool {
		if cmp := collator.CompareString(records[i].Name, records[j].Name); cmp != 0 {
			return cmp < 0
		}
		return records[i].PlayerID < records[j].PlayerID
	})
}
