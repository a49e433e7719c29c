package seeder

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/tasktracker-backend/internal/domain"
)

// Document is a seed file: accomplishments grouped by category name.
//
//	date: 2026-02-12
//	list: My List
//	entries:
//	  - category: Bugs Fixed
//	    content: Fixed the login loop
//	    date: 2026-02-10
type Document struct {
	// Date is the default entry date (YYYY-MM-DD).
	Date string `yaml:"date"`
	// List names the target list; empty means the user's first list.
	List    string `yaml:"list"`
	Entries []Item `yaml:"entries"`
}

// Item is one accomplishment. Date overrides every other date source.
type Item struct {
	Category string `yaml:"category"`
	Content  string `yaml:"content"`
	Date     string `yaml:"date"`
}

// LoadDocument reads and validates a seed file.
func LoadDocument(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("seed file: %w", err)
	}
	doc, err := ParseDocument(raw)
	if err != nil {
		return nil, fmt.Errorf("seed file %s: %w", path, err)
	}
	return doc, nil
}

// ParseDocument decodes a seed document, rejecting unknown keys.
func ParseDocument(raw []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Validate checks every item and reports all problems at once.
func (d *Document) Validate() error {
	var errs []error
	if d.Date != "" {
		if _, err := domain.ParseDate(d.Date); err != nil {
			errs = append(errs, fmt.Errorf("date: %w", err))
		}
	}
	if len(d.Entries) == 0 {
		errs = append(errs, errors.New("entries: at least one entry is required"))
	}
	for i, it := range d.Entries {
		if strings.TrimSpace(it.Category) == "" {
			errs = append(errs, fmt.Errorf("entries[%d]: category is required", i))
		} else if utf8.RuneCountInString(strings.TrimSpace(it.Category)) > domain.MaxNameLength {
			errs = append(errs, fmt.Errorf("entries[%d]: category exceeds %d characters", i, domain.MaxNameLength))
		}
		content := strings.TrimSpace(it.Content)
		if content == "" {
			errs = append(errs, fmt.Errorf("entries[%d]: content is required", i))
		} else if utf8.RuneCountInString(content) > domain.MaxContentLength {
			errs = append(errs, fmt.Errorf("entries[%d]: content exceeds %d characters", i, domain.MaxContentLength))
		}
		if it.Date != "" {
			if _, err := domain.ParseDate(it.Date); err != nil {
				errs = append(errs, fmt.Errorf("entries[%d]: %w", i, err))
			}
		}
	}
	return errors.Join(errs...)
}
