package ledger

// Filter is the user's chosen time-window view.
type Filter int

const (
	FilterAll       Filter = 0
	FilterToday     Filter = 1
	FilterThisMonth Filter = 2
	FilterPastMonth Filter = 3
)

func (f Filter) String() string {
	switch f {
	case FilterAll:
		return "All"
	case FilterToday:
		return "Today"
	case FilterThisMonth:
		return "This Month"
	case FilterPastMonth:
		return "Past Months"
	}

	return "Unknown"
}

// Selection tracks the active filter and, for the past-months view, the
// chosen period. The zero value is the initial state: FilterAll.
//
// Switching away from the past-months view drops the chosen period, so
// coming back lands on the unselected state rather than the previous month.
// That matches the shipped behavior of the page and is kept on purpose.
type Selection struct {
	filter Filter
	period *Period
}

// NewSelection returns the initial selection, FilterAll.
func NewSelection() Selection {
	return Selection{filter: FilterAll}
}

// Select switches to the given filter. Any previously chosen past month is
// forgotten, including when re-selecting FilterPastMonth itself.
func (s Selection) Select(f Filter) Selection {
	return Selection{filter: f}
}

// Choose picks a past month. It is a no-op unless the past-months view is
// active.
func (s Selection) Choose(p Period) Selection {
	if s.filter != FilterPastMonth {
		return s
	}

	return Selection{filter: FilterPastMonth, period: &p}
}

// Filter returns the active filter.
func (s Selection) Filter() Filter {
	return s.filter
}

// Period returns the chosen past month, if one has been picked.
func (s Selection) Period() (Period, bool) {
	if s.period == nil {
		return Period{}, false
	}

	return *s.period, true
}
