package scenario

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadRecordsCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "users.csv")
	content := `name,message
Alice,hello
Bob,goodbye`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	records, err := LoadRecords(path, "csv")
	if err != nil {
		t.Fatalf("LoadRecords() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(records))
	}
	if records[0]["name"] != "Alice" || records[0]["message"] != "hello" {
		t.Errorf("records[0] = %v, want Alice's row", records[0])
	}
	if records[1]["name"] != "Bob" {
		t.Errorf("records[1] = %v, want Bob's row", records[1])
	}
}

func TestLoadRecordsCSVErrors(t *testing.T) {
	dir := t.TempDir()

	headerOnly := filepath.Join(dir, "header.csv")
	if err := os.WriteFile(headerOnly, []byte("name,message\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if _, err := LoadRecords(headerOnly, "csv"); err == nil {
		t.Errorf("LoadRecords(header only) error = nil, want error")
	}
}

func TestLoadRecordsJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "records.json")
	content := `[
		{"name": "Alice", "post": 42},
		{"name": "Bob", "post": 7}
	]`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	records, err := LoadRecords(path, "json")
	if err != nil {
		t.Fatalf("LoadRecords() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(records))
	}
	if records[0]["post"] != "42" {
		t.Errorf("records[0][post] = %q, want stringified 42", records[0]["post"])
	}
}

func TestLoadRecordsUnsupportedType(t *testing.T) {
	if _, err := LoadRecords("whatever.xml", "xml"); err == nil {
		t.Fatalf("LoadRecords() error = nil, want unsupported type error")
	}
}

func TestExpand(t *testing.T) {
	cases := []Case{
		Post("{{name}}", "{{message}}"),
		Like("{{post}}"),
	}
	records := []Record{
		{"name": "Alice", "message": "hi", "post": "1"},
		{"name": "Bob", "message": "bye", "post": "2"},
	}

	expanded := Expand(cases, records)
	if len(expanded) != 4 {
		t.Fatalf("len(expanded) = %d, want 4", len(expanded))
	}

	if expanded[0].Author != "Alice" || expanded[0].Content != "hi" {
		t.Errorf("expanded[0] = %+v, want Alice's substitution", expanded[0])
	}
	if expanded[1].Author != "Bob" || expanded[1].Content != "bye" {
		t.Errorf("expanded[1] = %+v, want Bob's substitution", expanded[1])
	}
	if expanded[2].ID != "1" || expanded[3].ID != "2" {
		t.Errorf("like expansion wrong: %+v %+v", expanded[2], expanded[3])
	}
}

func TestExpandKeepsPlainCasesSingle(t *testing.T) {
	cases := []Case{
		Post("Alice", "fixed greeting"),
		Post("{{name}}", "templated"),
		Like(1),
	}
	records := []Record{
		{"name": "Bob"},
		{"name": "Carol"},
	}

	expanded := Expand(cases, records)
	if len(expanded) != 4 {
		t.Fatalf("len(expanded) = %d, want 4", len(expanded))
	}
	if expanded[0].Author != "Alice" {
		t.Errorf("expanded[0] = %+v, want untouched plain case first", expanded[0])
	}
	if expanded[1].Author != "Bob" || expanded[2].Author != "Carol" {
		t.Errorf("templated case not expanded in place: %+v %+v", expanded[1], expanded[2])
	}
	if expanded[3].ID != 1 {
		t.Errorf("expanded[3] = %+v, want untouched like case last", expanded[3])
	}
}

func TestExpandWithoutRecords(t *testing.T) {
	cases := []Case{Post("Alice", "hi")}
	if got := Expand(cases, nil); len(got) != 1 || got[0].Author != "Alice" {
		t.Errorf("Expand(cases, nil) = %v, want original cases", got)
	}
}

func TestSubstitutePlaceholders(t *testing.T) {
	record := Record{"name": "Alice", "city": "Oslo"}

	got := substitutePlaceholders("{{name}} in {{city}} says {{name}}", record)
	if got != "Alice in Oslo says Alice" {
		t.Errorf("substitutePlaceholders() = %q", got)
	}

	got = substitutePlaceholders("{{unknown}} stays", record)
	if got != "{{unknown}} stays" {
		t.Errorf("unknown placeholder rewritten: %q", got)
	}

	got = substitutePlaceholders("no placeholders", record)
	if got != "no placeholders" {
		t.Errorf("plain string rewritten: %q", got)
	}
}

func TestSubstituteLeavesTypedIDs(t *testing.T) {
	c := Like(42).substitute(Record{"42": "boom"})
	if c.ID != 42 {
		t.Errorf("substitute() changed non-string id: %v", c.ID)
	}
}
