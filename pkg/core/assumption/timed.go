package assumption

// Projection horizon. Fixed; the engine does not read Timeline.ProjectionYears.
const (
	MonthsPerYear = 12
	HorizonYears  = 5
	HorizonMonths = HorizonYears * MonthsPerYear
)

// Period is a (month, year) position on the planning calendar, both 1-based.
type Period struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// TimedLineItem is the one activation rule shared by every roster: an amount
// that starts at Start and either repeats monthly (Recurring) or lands once.
type TimedLineItem struct {
	Amount    float64
	Start     Period
	Recurring bool
}

// IsActive reports whether the item contributes in (year, month).
func (t TimedLineItem) IsActive(year, month int) bool {
	if year == t.Start.Year && month == t.Start.Month {
		return true
	}
	if !t.Recurring {
		return false
	}
	if year == t.Start.Year {
		return month >= t.Start.Month
	}
	return year > t.Start.Year
}

// ActiveMonths counts the months of the year in which the item is active.
func (t TimedLineItem) ActiveMonths(year int) int {
	n := 0
	for m := 1; m <= MonthsPerYear; m++ {
		if t.IsActive(year, m) {
			n++
		}
	}
	return n
}

// AmountFor is the item's contribution in a single month.
func (t TimedLineItem) AmountFor(year, month int) float64 {
	if t.IsActive(year, month) {
		return t.Amount
	}
	return 0
}

// AnnualAmount is the item's contribution over a whole year. The first active
// year of a recurring item is pro-rated by its active months.
func (t TimedLineItem) AnnualAmount(year int) float64 {
	return t.Amount * float64(t.ActiveMonths(year))
}

// LineItem is anything that can be expressed as a TimedLineItem.
type LineItem interface {
	Timed() TimedLineItem
}

// MonthlyTotal sums AmountFor over a roster.
func MonthlyTotal[T LineItem](items []T, year, month int) float64 {
	total := 0.0
	for _, it := range items {
		total += it.Timed().AmountFor(year, month)
	}
	return total
}

// AnnualTotal sums AnnualAmount over a roster.
func AnnualTotal[T LineItem](items []T, year int) float64 {
	total := 0.0
	for _, it := range items {
		total += it.Timed().AnnualAmount(year)
	}
	return total
}
