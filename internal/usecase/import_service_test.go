package usecase

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeExportFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write export file %s: %v", name, err)
	}
}

func TestImportService_ImportDirectory(t *testing.T) {
	dir := t.TempDir()
	writeExportFile(t, dir, "10140_xander_schauffele.json", `{
		"tournaments": [
			{"year": 2024, "tournament": "PGA Championship", "to_par": -21, "earnings": 330000000}
		]
	}`)
	writeExportFile(t, dir, "8793_rory_mcilroy.json", `{
		"player_id": "8793",
		"name": "Rory McIlroy",
		"tournaments": [
			{"year": 2025, "tournament": "Masters Tournament"}
		]
	}`)
	writeExportFile(t, dir, "broken.json", `{not json`)
	writeExportFile(t, dir, "notes.txt", "ignored")

	svc := NewImportService(nil)
	summary, err := svc.ImportDirectory(t.Context(), dir, 0)
	if err != nil {
		t.Fatalf("import directory failed: %v", err)
	}

	if summary.TotalFiles != 3 {
		t.Fatalf("expected 3 json files, got %d", summary.TotalFiles)
	}
	if summary.ParsedFiles != 2 {
		t.Fatalf("expected 2 parsed files, got %d", summary.ParsedFiles)
	}
	if summary.BatchSize != DefaultImportBatchSize {
		t.Fatalf("expected default batch size %d, got %d", DefaultImportBatchSize, summary.BatchSize)
	}
	if len(summary.Failures) != 1 {
		t.Fatalf("expected one failure, got %v", summary.Failures)
	}

	if len(summary.Records) != 2 {
		t.Fatalf("expected two records, got %d", len(summary.Records))
	}
	if summary.Records[0].Name != "Rory McIlroy" || summary.Records[1].Name != "Xander Schauffele" {
		t.Fatalf("records not in collated name order: %s, %s", summary.Records[0].Name, summary.Records[1].Name)
	}
}

func TestImportService_ImportDirectory_PerFileIsolation(t *testing.T) {
	dir := t.TempDir()
	writeExportFile(t, dir, "bad_one.json", `[]`)
	writeExportFile(t, dir, "10140_xander_schauffele.json", `{"tournaments": []}`)

	svc := NewImportService(nil)
	summary, err := svc.ImportDirectory(t.Context(), dir, 2)
	if err != nil {
		t.Fatalf("import directory failed: %v", err)
	}
	if summary.ParsedFiles != 1 || len(summary.Failures) != 1 {
		t.Fatalf("expected 1 parsed + 1 failed, got %d parsed %d failed", summary.ParsedFiles, len(summary.Failures))
	}
	if summary.BatchSize != 2 {
		t.Fatalf("expected batch size hint 2, got %d", summary.BatchSize)
	}
}

func TestImportService_ImportDirectory_MissingDirectory(t *testing.T) {
	svc := NewImportService(nil)
	_, err := svc.ImportDirectory(t.Context(), filepath.Join(t.TempDir(), "nope"), 0)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestImportService_ImportDirectory_EmptyDirectory(t *testing.T) {
	svc := NewImportService(nil)
	summary, err := svc.ImportDirectory(t.Context(), t.TempDir(), 0)
	if err != nil {
		t.Fatalf("empty directory must not error: %v", err)
	}
	if summary.TotalFiles != 0 || len(summary.Records) != 0 {
		t.Fatalf("expected empty summary, got %+v", summary)
	}
}
