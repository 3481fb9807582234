package datepicker

// First and last years offered by the year list. The bounds are fixed and
// do not follow the current date.
const (
	FirstYear = 1950
	LastYear  = 2050
)

// MonthName pairs the short and full English month names.
type MonthName struct {
	Short string `json:"short"`
	Full  string `json:"full"`
}

var months = [12]MonthName{
	{"Jan", "January"},
	{"Feb", "February"},
	{"Mar", "March"},
	{"Apr", "April"},
	{"May", "May"},
	{"Jun", "June"},
	{"Jul", "July"},
	{"Aug", "August"},
	{"Sep", "September"},
	{"Oct", "October"},
	{"Nov", "November"},
	{"Dec", "December"},
}

var years = func() []int {
	out := make([]int, 0, LastYear-FirstYear+1)
	for y := FirstYear; y <= LastYear; y++ {
		out = append(out, y)
	}
	return out
}()

// Months returns the month catalog, index 0 being January.
func Months() [12]MonthName { return months }

// Years returns a copy of the year catalog.
func Years() []int {
	return append([]int(nil), years...)
}

// YearIndex returns the catalog position of year, or false when the year
// is outside the catalog.
func YearIndex(year int) (int, bool) {
	if year < FirstYear || year > LastYear {
		return 0, false
	}
	return year - FirstYear, true
}
