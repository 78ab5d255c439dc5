package report

import (
	"sort"

	"github.com/haulboard/haulboard/internal/entity"
)

// WeekSummary is one row of the weekly dashboard table.
type WeekSummary struct {
	Week      string  `json:"week"` // ISO week key, e.g. "2025-W38"
	Loads     int     `json:"loads"`
	Gross     float64 `json:"gross"`
	Miles     int     `json:"miles"`
	Expenses  float64 `json:"expenses"`
	Net       float64 `json:"net"`
	PerMile   float64 `json:"per_mile"` // net per mile, 0 when miles unknown
	Completed int     `json:"completed"`
}

// WeeklySummary buckets loads and expenses by ISO week. A load lands in the
// week of its delivery date, falling back to pickup; loads with no date at
// all are bucketed under "undated". Expenses bucket by their incurred date.
func WeeklySummary(loads []*entity.Load, expenses []*entity.Expense) []WeekSummary {
	byWeek := map[string]*WeekSummary{}
	week := func(key string) *WeekSummary {
		if w, ok := byWeek[key]; ok {
			return w
		}
		w := &WeekSummary{Week: key}
		byWeek[key] = w
		return w
	}

	for _, l := range loads {
		w := week(loadWeek(l))
		w.Loads++
		if l.GrossPay != nil {
			w.Gross = Round2(w.Gross + *l.GrossPay)
		}
		if l.Miles != nil {
			w.Miles += *l.Miles
		}
		if l.Status == "completed" {
			w.Completed++
		}
	}
	for _, e := range expenses {
		w := week(WeekKey(e.IncurredAt))
		w.Expenses = Round2(w.Expenses + e.Amount)
	}

	out := make([]WeekSummary, 0, len(byWeek))
	for _, w := range byWeek {
		w.Net = Round2(w.Gross - w.Expenses)
		if w.Miles > 0 {
			w.PerMile = Round2(w.Net / float64(w.Miles))
		}
		out = append(out, *w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Week < out[j].Week })
	return out
}

func loadWeek(l *entity.Load) string {
	switch {
	case l.DeliveryDate != nil:
		return WeekKey(*l.DeliveryDate)
	case l.PickupDate != nil:
		return WeekKey(*l.PickupDate)
	default:
		return "undated"
	}
}

// TotalNet is the dashboard headline: all gross minus all expenses in the
// given window.
func TotalNet(loads []*entity.Load, expenses []*entity.Expense) float64 {
	var gross, costs float64
	for _, l := range loads {
		if l.GrossPay != nil {
			gross += *l.GrossPay
		}
	}
	for _, e := range expenses {
		costs += e.Amount
	}
	return Round2(gross - costs)
}
