// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/siam-trails/travel-affiliate-service/internal/catalog"
)

// TestdataPath returns the absolute path of a file in the shared test/testdata directory.
func TestdataPath(t *testing.T, filename string) string {
	t.Helper()

	// Get the path to testdata relative to this file
	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}

	// Navigate to project root (testutil is in test/testutil)
	projectRoot := filepath.Join(filepath.Dir(currentFile), "..", "..")
	return filepath.Join(projectRoot, "test", "testdata", filename)
}

// LoadTestJSON loads a JSON file from the testdata directory.
// The filename should be relative to the testdata directory.
func LoadTestJSON(t *testing.T, filename string) []byte {
	t.Helper()

	data, err := os.ReadFile(TestdataPath(t, filename))
	if err != nil {
		t.Fatalf("Failed to load test file %s: %v", filename, err)
	}
	return data
}

// LoadCatalog parses a catalog file from the testdata directory and
// fails the test unless it passes validation against partnerDomain.
func LoadCatalog(t *testing.T, filename, partnerDomain string) *catalog.RouteCatalog {
	t.Helper()

	c, err := catalog.Parse(LoadTestJSON(t, filename))
	if err != nil {
		t.Fatalf("Failed to parse catalog %s: %v", filename, err)
	}
	if err := c.Validate(partnerDomain); err != nil {
		t.Fatalf("Catalog %s is invalid: %v", filename, err)
	}
	return c
}

// MustParseTime parses a time string in RFC3339 format.
// It fails the test if parsing fails.
func MustParseTime(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, dateStr)
	if err != nil {
		t.Fatalf("Failed to parse time %s: %v", dateStr, err)
	}
	return parsed
}

// MustParseDate parses a date string in YYYY-MM-DD format.
// It fails the test if parsing fails.
func MustParseDate(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		t.Fatalf("Failed to parse date %s: %v", dateStr, err)
	}
	return parsed
}

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}
