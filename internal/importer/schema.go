package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// ImportSchema is the top-level JSON structure for course import.
type ImportSchema struct {
	Course        CourseImport     `json:"course"`
	Pace          PaceImport       `json:"pace"`
	Defaults      *DefaultsImport  `json:"defaults,omitempty"`
	Modules       []ModuleImport   `json:"modules"`
	BlackoutDates []BlackoutImport `json:"blackout_dates,omitempty"`
}

// CourseImport defines the course-level fields in the import file.
type CourseImport struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Term string `json:"term,omitempty"`
}

// PaceImport defines the pacing settings in the import file.
type PaceImport struct {
	StartDate          string   `json:"start_date"`
	CalendarDays       int      `json:"calendar_days"`
	ExcludeWeekends    *bool    `json:"exclude_weekends,omitempty"`
	SelectedDaysToSkip []string `json:"selected_days_to_skip,omitempty"`
}

// DefaultsImport defines file-wide defaults that cascade to items.
type DefaultsImport struct {
	ItemDuration *int   `json:"item_duration,omitempty"`
	ItemType     string `json:"item_type,omitempty"`
}

// ModuleImport defines a pace module in the import file.
type ModuleImport struct {
	Ref   string       `json:"ref"`
	Name  string       `json:"name"`
	Items []ItemImport `json:"items"`
}

// ItemImport defines a pace item in the import file.
type ItemImport struct {
	Ref      string `json:"ref"`
	Title    string `json:"title"`
	Type     string `json:"type,omitempty"`
	Duration *int   `json:"duration,omitempty"`
}

// BlackoutImport defines a blackout interval in the import file.
type BlackoutImport struct {
	EventTitle string `json:"event_title"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}

// LoadImportSchema reads and parses a course import JSON file.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema ImportSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
