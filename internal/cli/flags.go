package cli

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// addExclusionFlags registers the working-day exclusion flags shared by
// pace create and the creation wizard's flag fallback.
func addExclusionFlags(fs *pflag.FlagSet, excludeWeekends *bool, skipDays *[]string) {
	fs.BoolVar(excludeWeekends, "exclude-weekends", false, "Skip Saturdays and Sundays")
	fs.StringSliceVar(skipDays, "skip", nil, "Weekday names to skip (e.g. monday,friday)")
}

// parseDateFlag parses a YYYY-MM-DD flag value, naming the flag in the error.
func parseDateFlag(value, name string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --%s date %q: use YYYY-MM-DD", name, value)
	}
	return d, nil
}
