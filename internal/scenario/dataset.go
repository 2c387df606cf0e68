package scenario

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Record is one row of dataset values keyed by field name.
type Record map[string]string

// LoadRecords reads dataset records from a CSV or JSON file. CSV files need
// a header row naming the fields; JSON files hold an array of objects.
func LoadRecords(path, kind string) ([]Record, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "csv":
		return loadCSVRecords(path)
	case "json":
		return loadJSONRecords(path)
	default:
		return nil, fmt.Errorf("unsupported dataset type %q", kind)
	}
}

func loadCSVRecords(path string) ([]Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read CSV: %w", err)
	}

	if len(rows) < 2 {
		return nil, fmt.Errorf("CSV file must have a header row and at least one data row")
	}

	header := rows[0]
	dataRows := rows[1:]

	records := make([]Record, 0, len(dataRows))
	for i, row := range dataRows {
		if len(row) != len(header) {
			return nil, fmt.Errorf("row %d has %d fields, expected %d", i+2, len(row), len(header))
		}

		record := make(Record)
		for j, field := range header {
			record[field] = row[j]
		}
		records = append(records, record)
	}

	return records, nil
}

func loadJSONRecords(path string) ([]Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open JSON file: %w", err)
	}
	defer file.Close()

	var rawRecords []map[string]interface{}
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&rawRecords); err != nil {
		return nil, fmt.Errorf("decode JSON: %w", err)
	}

	if len(rawRecords) == 0 {
		return nil, fmt.Errorf("JSON file contains empty array")
	}

	records := make([]Record, 0, len(rawRecords))
	for i, rawRecord := range rawRecords {
		record := make(Record)
		for key, value := range rawRecord {
			record[key] = fmt.Sprintf("%v", value)
		}
		if len(record) == 0 {
			return nil, fmt.Errorf("record %d is empty", i)
		}
		records = append(records, record)
	}

	return records, nil
}

// Expand instantiates templated cases against dataset records: a case
// whose author, content, or string id contains a {{field}} placeholder
// becomes one case per record, substituted in record order. Cases
// without placeholders stay single, and list positions are preserved.
func Expand(cases []Case, records []Record) []Case {
	if len(records) == 0 {
		return cases
	}
	out := make([]Case, 0, len(cases))
	for _, c := range cases {
		if !c.templated() {
			out = append(out, c)
			continue
		}
		for _, record := range records {
			out = append(out, c.substitute(record))
		}
	}
	return out
}

func (c Case) templated() bool {
	if strings.Contains(c.Author, "{{") || strings.Contains(c.Content, "{{") {
		return true
	}
	id, ok := c.ID.(string)
	return ok && strings.Contains(id, "{{")
}

func (c Case) substitute(record Record) Case {
	c.Author = substitutePlaceholders(c.Author, record)
	c.Content = substitutePlaceholders(c.Content, record)
	if id, ok := c.ID.(string); ok {
		c.ID = substitutePlaceholders(id, record)
	}
	return c
}

// substitutePlaceholders replaces all occurrences of {{field}} in the
// template with the corresponding record value. Unknown fields are left
// unchanged.
func substitutePlaceholders(template string, record Record) string {
	result := template
	for key, value := range record {
		placeholder := "{{" + key + "}}"
		result = strings.ReplaceAll(result, placeholder, value)
	}
	return result
}
