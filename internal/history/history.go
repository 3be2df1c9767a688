package history

import "time"

// Entry is one month of aggregated workload for an employee or project.
// Hours are integer minutes; GoalCompletionRate is an independent
// percentage target for the month.
type Entry struct {
	Month              string `json:"month"`
	AssignedHours      int    `json:"assignedHours"`
	ConsumedHours      int    `json:"consumedHours"`
	GoalCompletionRate int    `json:"goalCompletionRate"`
}

var monthLabels = []string{
	"Ene", "Feb", "Mar", "Abr", "May", "Jun",
	"Jul", "Ago", "Sep", "Oct", "Nov", "Dic",
}

// PastSixMonths returns the labels of the trailing six calendar months
// ending at the month of now, in chronological order.
func PastSixMonths(now time.Time) []string {
	labels := make([]string, 0, 6)
	for i := 5; i >= 0; i-- {
		d := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -i, 0)
		labels = append(labels, monthLabels[int(d.Month())-1])
	}
	return labels
}

func Clone(entries []Entry) []Entry {
	if entries == nil {
		return nil
	}
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}
