// Package config loads and saves the settings+records document the tracker
// operates on.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/ottrack/ot-calculator/internal/domain"
	"github.com/ottrack/ot-calculator/internal/timeutil"
)

// SchemaVersion is the current document schema.
const SchemaVersion = 2

// InputParser handles parsing of input data files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a {settings, records[]} document from a YAML or JSON
// file. Absent settings fields keep their defaults, mirroring how the
// tracker merges stored settings over the baseline.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Document, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a document. YAML is a superset of JSON, so one
// decoder covers both formats.
func (ip *InputParser) Parse(data []byte) (*domain.Document, error) {
	doc := domain.Document{
		SchemaVersion: SchemaVersion,
		Settings:      domain.DefaultSettings(),
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}

	if err := ip.ValidateDocument(&doc); err != nil {
		return nil, fmt.Errorf("document validation failed: %w", err)
	}

	// Date identity is the record key; store the zero-padded ISO form.
	for i := range doc.Records {
		doc.Records[i].Date = timeutil.NormalizeDateStr(doc.Records[i].Date)
	}
	return &doc, nil
}

// ValidateDocument validates the loaded document. Time-of-day and numeric
// day fields are deliberately not validated here: the engine treats malformed
// entries as unset. Only structural problems that would corrupt the record
// collection are errors.
func (ip *InputParser) ValidateDocument(doc *domain.Document) error {
	if err := ip.validateSettings(&doc.Settings); err != nil {
		return fmt.Errorf("settings validation failed: %w", err)
	}

	seen := make(map[string]int, len(doc.Records))
	for i, r := range doc.Records {
		if strings.TrimSpace(r.Date) == "" {
			return fmt.Errorf("record %d: date is required", i)
		}
		if _, ok := timeutil.DateKey(r.Date); !ok {
			return fmt.Errorf("record %d: unrecognized date %q", i, r.Date)
		}
		iso := timeutil.NormalizeDateStr(r.Date)
		if prev, dup := seen[iso]; dup {
			return fmt.Errorf("record %d: duplicate date %q (first at record %d)", i, r.Date, prev)
		}
		seen[iso] = i
	}
	return nil
}

func (ip *InputParser) validateSettings(s *domain.Settings) error {
	if s.BaseSalary.LessThan(decimal.Zero) {
		return fmt.Errorf("base salary cannot be negative")
	}
	for dayType, v := range s.WorkMultipliers {
		if v.LessThan(decimal.Zero) {
			return fmt.Errorf("work multiplier for %s cannot be negative", dayType)
		}
	}
	for dayType, v := range s.OTMultipliers {
		if v.LessThan(decimal.Zero) {
			return fmt.Errorf("OT multiplier for %s cannot be negative", dayType)
		}
	}
	if s.MealAllowanceEnabled {
		if s.MealAllowanceBase.LessThan(decimal.Zero) || s.MealAllowanceOTAmount.LessThan(decimal.Zero) {
			return fmt.Errorf("meal allowance amounts cannot be negative")
		}
	}
	if s.ShiftAllowanceEnabled {
		for shift, v := range s.ShiftAllowances {
			if v.LessThan(decimal.Zero) {
				return fmt.Errorf("shift allowance for %s cannot be negative", shift)
			}
		}
	}
	return nil
}

// SaveToFile writes a document back to disk, JSON for .json files and YAML
// otherwise. The export stamp and schema version are refreshed on every save.
func SaveToFile(filename string, doc *domain.Document) error {
	doc.SchemaVersion = SchemaVersion
	doc.ExportedAt = time.Now().Format(time.RFC3339)

	var (
		data []byte
		err  error
	)
	if strings.EqualFold(filepath.Ext(filename), ".json") {
		data, err = json.MarshalIndent(doc, "", "  ")
	} else {
		data, err = yaml.Marshal(doc)
	}
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}
