package importer

import (
	"fmt"
	"time"

	"github.com/lenaweber/paceflow/internal/domain"
)

// ValidateImportSchema checks the import schema for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error

	errs = append(errs, validateCourse(&schema.Course)...)
	errs = append(errs, validatePace(&schema.Pace)...)
	errs = append(errs, validateDefaults(schema.Defaults)...)
	errs = append(errs, validateModules(schema.Modules)...)
	errs = append(errs, validateBlackouts(schema.BlackoutDates)...)

	return errs
}

func validateCourse(c *CourseImport) []error {
	var errs []error
	if c.Code == "" {
		errs = append(errs, fmt.Errorf("course.code is required"))
	}
	if c.Name == "" {
		errs = append(errs, fmt.Errorf("course.name is required"))
	}
	return errs
}

func validatePace(p *PaceImport) []error {
	var errs []error
	if p.StartDate == "" {
		errs = append(errs, fmt.Errorf("pace.start_date is required"))
	} else if _, err := time.Parse("2006-01-02", p.StartDate); err != nil {
		errs = append(errs, fmt.Errorf("pace.start_date: invalid date format %q (expected YYYY-MM-DD)", p.StartDate))
	}
	if p.CalendarDays < 0 {
		errs = append(errs, fmt.Errorf("pace.calendar_days must not be negative"))
	}
	for _, day := range p.SelectedDaysToSkip {
		if !domain.ValidWeekdayName(day) {
			errs = append(errs, fmt.Errorf("pace.selected_days_to_skip: unknown weekday %q", day))
		}
	}
	return errs
}

func validateDefaults(d *DefaultsImport) []error {
	if d == nil {
		return nil
	}
	var errs []error
	if d.ItemDuration != nil && *d.ItemDuration < 0 {
		errs = append(errs, fmt.Errorf("defaults.item_duration must not be negative"))
	}
	if d.ItemType != "" && !domain.ValidModuleItemTypes[d.ItemType] {
		errs = append(errs, fmt.Errorf("defaults.item_type: unknown type %q", d.ItemType))
	}
	return errs
}

func validateModules(modules []ModuleImport) []error {
	var errs []error
	if len(modules) == 0 {
		errs = append(errs, fmt.Errorf("at least one module is required"))
	}

	moduleRefs := make(map[string]bool)
	itemRefs := make(map[string]bool)
	for i, m := range modules {
		if m.Ref == "" {
			errs = append(errs, fmt.Errorf("modules[%d].ref is required", i))
		} else if moduleRefs[m.Ref] {
			errs = append(errs, fmt.Errorf("duplicate module ref %q", m.Ref))
		}
		moduleRefs[m.Ref] = true

		if m.Name == "" {
			errs = append(errs, fmt.Errorf("modules[%d].name is required", i))
		}

		for j, item := range m.Items {
			if item.Ref == "" {
				errs = append(errs, fmt.Errorf("modules[%d].items[%d].ref is required", i, j))
			} else if itemRefs[item.Ref] {
				errs = append(errs, fmt.Errorf("duplicate item ref %q", item.Ref))
			}
			itemRefs[item.Ref] = true

			if item.Title == "" {
				errs = append(errs, fmt.Errorf("modules[%d].items[%d].title is required", i, j))
			}
			if item.Type != "" && !domain.ValidModuleItemTypes[item.Type] {
				errs = append(errs, fmt.Errorf("modules[%d].items[%d].type: unknown type %q", i, j, item.Type))
			}
			if item.Duration != nil && *item.Duration < 0 {
				errs = append(errs, fmt.Errorf("modules[%d].items[%d].duration must not be negative", i, j))
			}
		}
	}
	return errs
}

func validateBlackouts(blackouts []BlackoutImport) []error {
	var errs []error
	for i, b := range blackouts {
		if b.EventTitle == "" {
			errs = append(errs, fmt.Errorf("blackout_dates[%d].event_title is required", i))
		}
		start, startErr := time.Parse("2006-01-02", b.StartDate)
		if startErr != nil {
			errs = append(errs, fmt.Errorf("blackout_dates[%d].start_date: invalid date format %q (expected YYYY-MM-DD)", i, b.StartDate))
		}
		end, endErr := time.Parse("2006-01-02", b.EndDate)
		if endErr != nil {
			errs = append(errs, fmt.Errorf("blackout_dates[%d].end_date: invalid date format %q (expected YYYY-MM-DD)", i, b.EndDate))
		}
		if startErr == nil && endErr == nil && end.Before(start) {
			errs = append(errs, fmt.Errorf("blackout_dates[%d]: end_date %q is before start_date %q", i, b.EndDate, b.StartDate))
		}
	}
	return errs
}
