//go:build pact
// +build pact

package pacttest

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

const (
	ProviderName = "storefront-api"
	ConsumerName = "storefront-web"

	StateCartEmpty = "the cart is empty"
)

const (
	BackpackID       int64   = 1
	BackpackTitle            = "Fjallraven Backpack"
	BackpackPrice    float64 = 109.95
	BackpackCategory         = "men's clothing"
)

// PactDir returns the workspace-level directory for generated pact files.
func PactDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "pacts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact dir: %v", err)
	}
	return dir
}

// PactFile returns the canonical pact file path for the storefront consumer.
func PactFile(t testing.TB) string {
	t.Helper()
	return filepath.Join(PactDir(t), ConsumerName+"-"+ProviderName+".json")
}

// LogDir returns the log output directory for pact-go.
func LogDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "bin", "pact-logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact log dir: %v", err)
	}
	return dir
}

// BackpackPayload provides stable product data for pact interactions.
func BackpackPayload() map[string]any {
	return map[string]any{
		"id":          BackpackID,
		"title":       BackpackTitle,
		"price":       BackpackPrice,
		"description": "Fits 15 inch laptops",
		"category":    BackpackCategory,
		"image":       "https://example.pact/products/backpack.png",
		"rating":      map[string]any{"rate": 3.9, "count": 120},
	}
}

// projectRoot walks up from this file to the workspace root.
func projectRoot(t testing.TB) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine caller for pact paths")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
}
