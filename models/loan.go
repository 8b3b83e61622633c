package models

import "time"

// Loan status values on the wire. Exactly these two exist.
const (
	StatusDipinjam     = "dipinjam"
	StatusDikembalikan = "dikembalikan"
)

// Loan as returned by the loans list endpoint: borrower/product/location come
// back denormalized as sub-objects, not bare foreign keys. Dates are plain
// date strings owned by the backend.
type Loan struct {
	ID        int          `json:"id"`
	User      LoanUser     `json:"user"`
	Product   LoanProduct  `json:"product"`
	Location  LoanLocation `json:"location"`
	Qty       int          `json:"qty"`
	StartDate string       `json:"start_date"`
	EndDate   string       `json:"end_date"`
	Status    string       `json:"status"`
	Note      string       `json:"note"`
}

type LoanUser struct {
	ID   int    `json:"id,omitempty"`
	Name string `json:"name"`
}

type LoanProduct struct {
	ID          int    `json:"id"`
	ProductName string `json:"product_name"`
}

type LoanLocation struct {
	ID           int    `json:"id"`
	LocationName string `json:"location_name"`
}

var dateLayouts = []string{"2006-01-02", time.RFC3339, "2006-01-02 15:04:05"}

// ParseDate accepts the date shapes the backend has been seen emitting.
func ParseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// IsOverdue reports whether the loan is still out past its end date.
// Overdue is derived, never stored: status dipinjam and end_date strictly
// before now. A returned loan is never overdue regardless of dates.
func (l Loan) IsOverdue(now time.Time) bool {
	if l.Status != StatusDipinjam {
		return false
	}
	end, ok := ParseDate(l.EndDate)
	return ok && end.Before(now)
}

// Contains reports whether day falls inside the loan period, inclusive on
// both ends.
func (l Loan) Contains(day time.Time) bool {
	start, ok := ParseDate(l.StartDate)
	if !ok {
		return false
	}
	end, ok := ParseDate(l.EndDate)
	if !ok {
		return false
	}
	return !start.After(day) && !end.Before(day)
}

// MonthlyCounts buckets loans by the calendar month of start_date, ignoring
// the year: January of any year lands in bucket 0. Loans with unparseable
// start dates are skipped.
func MonthlyCounts(loans []Loan) [12]int {
	var buckets [12]int
	for _, l := range loans {
		if start, ok := ParseDate(l.StartDate); ok {
			buckets[int(start.Month())-1]++
		}
	}
	return buckets
}

// RecentReturned keeps the first n returned loans in backend order. The
// backend gives no explicit sort guarantee and none is added here.
func RecentReturned(loans []Loan, n int) []Loan {
	out := make([]Loan, 0, n)
	for _, l := range loans {
		if l.Status != StatusDikembalikan {
			continue
		}
		out = append(out, l)
		if len(out) == n {
			break
		}
	}
	return out
}
