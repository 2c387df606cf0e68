package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/avolkov/postvolley/internal/config"
	"github.com/avolkov/postvolley/internal/scenario"
)

func TestPlanCallsBuiltinSuite(t *testing.T) {
	calls, err := planCalls(scenario.Builtin())
	if err != nil {
		t.Fatalf("planCalls() error = %v", err)
	}
	if len(calls) != 8 {
		t.Fatalf("len(calls) = %d, want 8", len(calls))
	}

	if calls[0].label != "POST" || calls[0].path != "/api/posts" {
		t.Errorf("calls[0] = %s %s, want POST /api/posts", calls[0].label, calls[0].path)
	}
	if got := string(calls[0].payload); got != `{"author":"Alice","content":"Hello world!"}` {
		t.Errorf("calls[0].payload = %s", got)
	}
	if calls[5].label != "LIKE" || calls[5].path != "/api/like" {
		t.Errorf("calls[5] = %s %s, want LIKE /api/like", calls[5].label, calls[5].path)
	}
	if got := string(calls[5].payload); got != `{"id":1}` {
		t.Errorf("calls[5].payload = %s", got)
	}
	if got := string(calls[6].payload); got != `{"id":"abc"}` {
		t.Errorf("calls[6].payload = %s", got)
	}

	posts, likes := 0, 0
	for _, pc := range calls {
		switch pc.label {
		case "POST":
			posts++
		case "LIKE":
			likes++
		}
	}
	if posts != 5 || likes != 3 {
		t.Errorf("suite split = %d posts / %d likes, want 5/3", posts, likes)
	}
}

func TestPlanCallsRejectsUnknownOp(t *testing.T) {
	_, err := planCalls([]scenario.Case{{Op: "delete"}})
	if err == nil {
		t.Fatal("planCalls() error = nil, want error for unknown op")
	}
	if !strings.Contains(err.Error(), "case 1") {
		t.Errorf("error %q does not name the offending case", err)
	}
}

func TestAssembleCasesDefaults(t *testing.T) {
	cases, err := assembleCases(&config.Config{})
	if err != nil {
		t.Fatalf("assembleCases() error = %v", err)
	}
	if len(cases) != 8 {
		t.Fatalf("len(cases) = %d, want 8 built-in cases", len(cases))
	}
}

func TestAssembleCasesRepeat(t *testing.T) {
	cases, err := assembleCases(&config.Config{Repeat: 3})
	if err != nil {
		t.Fatalf("assembleCases() error = %v", err)
	}
	if len(cases) != 24 {
		t.Fatalf("len(cases) = %d, want 24", len(cases))
	}
	if cases[8] != cases[0] || cases[16] != cases[0] {
		t.Error("repeated passes should restart from the first case")
	}
}

func TestAssembleCasesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cases.yaml")
	content := `- op: post
  author: Erin
  content: from a file
- op: like
  id: 7
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write case file: %v", err)
	}

	cases, err := assembleCases(&config.Config{CasesFile: path, Repeat: 2})
	if err != nil {
		t.Fatalf("assembleCases() error = %v", err)
	}
	if len(cases) != 4 {
		t.Fatalf("len(cases) = %d, want 4", len(cases))
	}
	if cases[0].Author != "Erin" {
		t.Errorf("cases[0].Author = %q, want Erin", cases[0].Author)
	}
	if cases[1].ID != 7 {
		t.Errorf("cases[1].ID = %v, want 7", cases[1].ID)
	}
}

func TestAssembleCasesDatasetExpansion(t *testing.T) {
	dir := t.TempDir()

	casesPath := filepath.Join(dir, "cases.yaml")
	casesContent := `- op: post
  author: "{{author}}"
  content: "{{content}}"
`
	if err := os.WriteFile(casesPath, []byte(casesContent), 0o600); err != nil {
		t.Fatalf("write case file: %v", err)
	}

	dataPath := filepath.Join(dir, "records.csv")
	dataContent := "author,content\nAlice,first\nBob,second\n"
	if err := os.WriteFile(dataPath, []byte(dataContent), 0o600); err != nil {
		t.Fatalf("write dataset: %v", err)
	}

	cfg := &config.Config{
		CasesFile: casesPath,
		Dataset:   config.DatasetConfig{Path: dataPath, Type: "csv"},
	}
	cases, err := assembleCases(cfg)
	if err != nil {
		t.Fatalf("assembleCases() error = %v", err)
	}
	if len(cases) != 2 {
		t.Fatalf("len(cases) = %d, want 2", len(cases))
	}
	if cases[0].Author != "Alice" || cases[0].Content != "first" {
		t.Errorf("cases[0] = %+v, want substituted Alice/first", cases[0])
	}
	if cases[1].Author != "Bob" || cases[1].Content != "second" {
		t.Errorf("cases[1] = %+v, want substituted Bob/second", cases[1])
	}
}

func TestAssembleCasesMissingFile(t *testing.T) {
	_, err := assembleCases(&config.Config{CasesFile: filepath.Join(t.TempDir(), "absent.yaml")})
	if err == nil {
		t.Fatal("assembleCases() error = nil, want error for missing case file")
	}
}
