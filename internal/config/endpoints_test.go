package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "endpoints.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_ValidConfig(t *testing.T) {
	path := writeConfig(t, `
- name: fetch index
  url: https://example.com/
- name: post payload
  url: https://api.example.com/submit
  method: POST
  headers:
    content-type: application/json
  body: '{"foo":"bar"}'
`)
	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if errs := f.Validate(); len(errs) != 0 {
		t.Fatalf("unexpected validation errors: %v", errs)
	}

	eps := f.Endpoints()
	if len(eps) != 2 {
		t.Fatalf("want 2 endpoints, got %d", len(eps))
	}
	if eps[0].Name != "fetch index" || eps[0].URL != "https://example.com/" {
		t.Fatalf("first endpoint wrong: %+v", eps[0])
	}
	if eps[0].Method != "GET" {
		t.Fatalf("method default not applied: %q", eps[0].Method)
	}
	if eps[1].Method != "POST" {
		t.Fatalf("explicit method lost: %q", eps[1].Method)
	}
	if eps[1].Headers["content-type"] != "application/json" {
		t.Fatalf("headers wrong: %+v", eps[1].Headers)
	}
	if eps[1].Body != `{"foo":"bar"}` {
		t.Fatalf("body wrong: %+v", eps[1].Body)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("want error for missing file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("want fs.ErrNotExist in chain, got %v", err)
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "- name: x\n  url: [unclosed\n")
	if _, err := Load(path); err == nil {
		t.Fatal("want parse error")
	}
}

func TestValidate_ReportsViolationsWithoutFailingLoad(t *testing.T) {
	path := writeConfig(t, `
- name: no url here
- url: https://example.com/
  method: 7
  headers: just-a-string
  body: {nested: mapping}
`)
	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load should succeed on well-formed YAML: %v", err)
	}
	errs := f.Validate()
	if len(errs) != 5 {
		t.Fatalf("want 5 violations (url, name, method, headers, body), got %d: %v", len(errs), errs)
	}

	// Records still materialize; the broken fields are dropped.
	eps := f.Endpoints()
	if len(eps) != 2 {
		t.Fatalf("want 2 endpoints, got %d", len(eps))
	}
	if eps[0].URL != "" {
		t.Fatalf("missing url should stay empty, got %q", eps[0].URL)
	}
	if eps[1].Method != "GET" {
		t.Fatalf("mistyped method should fall back to GET, got %q", eps[1].Method)
	}
	if eps[1].Headers != nil {
		t.Fatalf("mistyped headers should be dropped, got %+v", eps[1].Headers)
	}
}

func TestLoad_NonMappingRecordIsAdvisoryNotFatal(t *testing.T) {
	path := writeConfig(t, `
- just-a-string
- name: fine
  url: https://example.com/
`)
	f, err := Load(path)
	if err != nil {
		t.Fatalf("a well-formed sequence must load even with non-mapping items: %v", err)
	}

	errs := f.Validate()
	if len(errs) != 1 {
		t.Fatalf("want 1 violation, got %d: %v", len(errs), errs)
	}
	if got := errs[0].Error(); !strings.Contains(got, "record 0") || !strings.Contains(got, "mapping") {
		t.Fatalf("violation should name record 0 and the mapping shape, got %q", got)
	}

	eps := f.Endpoints()
	if len(eps) != 2 {
		t.Fatalf("want 2 materialized records, got %d", len(eps))
	}
	if eps[0].URL != "" {
		t.Fatalf("non-mapping record should have no URL, got %q", eps[0].URL)
	}
	if eps[1].URL != "https://example.com/" {
		t.Fatalf("valid record lost: %+v", eps[1])
	}
}
