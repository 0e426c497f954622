package domain

type ModuleItemType string

const (
	ItemAssignment ModuleItemType = "assignment"
	ItemDiscussion ModuleItemType = "discussion_topic"
	ItemQuiz       ModuleItemType = "quiz"
	ItemPage       ModuleItemType = "page"
	ItemOther      ModuleItemType = "other"
)

// ValidModuleItemTypes is the canonical set of accepted item type strings.
var ValidModuleItemTypes = map[string]bool{
	"assignment": true, "discussion_topic": true, "quiz": true,
	"page": true, "other": true,
}

type PaceWorkflowState string

const (
	PaceUnpublished PaceWorkflowState = "unpublished"
	PaceActive      PaceWorkflowState = "active"
	PaceArchived    PaceWorkflowState = "archived"
)

type CourseStatus string

const (
	CourseActive   CourseStatus = "active"
	CourseArchived CourseStatus = "archived"
)

// WeekdayNames is the canonical lowercase weekday-name set accepted in
// SelectedDaysToSkip, in calendar order starting from Sunday.
var WeekdayNames = []string{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

// ValidWeekdayName reports whether name is a canonical weekday name.
func ValidWeekdayName(name string) bool {
	for _, w := range WeekdayNames {
		if w == name {
			return true
		}
	}
	return false
}
