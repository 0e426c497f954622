package contract

// DateLayout is the wire format for all dates crossing the service boundary.
const DateLayout = "2006-01-02"

// ItemDueDate is one row of a due-date projection.
type ItemDueDate struct {
	ItemID     string
	ModuleName string
	Title      string
	ItemType   string
	Duration   int
	DueDate    string
}

// PaceProjection is the full due-date projection of a pace against its
// calendar-day budget.
type PaceProjection struct {
	PaceID           string
	CourseID         string
	StartDate        string
	ProjectedEndDate string
	CalendarDaysUsed int
	BudgetDays       int
	WithinBudget     bool
	Weeks            int
	Days             int
	Items            []ItemDueDate
}

// ValidationResult summarizes a budget check without the per-item detail.
type ValidationResult struct {
	Valid            bool
	CalendarDaysUsed int
	BudgetDays       int
	OverBy           int
}

// DistributeResult reports a budget redistribution across pace items.
type DistributeResult struct {
	Duration     int
	Remainder    int
	ItemsUpdated int
}
