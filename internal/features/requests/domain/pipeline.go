package domain

import (
	"sort"
	"strings"
)

// FilterAll is the sentinel criteria value matching every size or urgency.
const FilterAll = "all"

// Criteria is the browse-view filter. All three predicates are conjunctive.
type Criteria struct {
	// SearchTerm is matched case-insensitively against title or description.
	SearchTerm string
	// Size filters by exact size unless FilterAll.
	Size string
	// Urgency filters by exact urgency unless FilterAll.
	Urgency string
}

// Matches reports whether a request satisfies all criteria.
func (c Criteria) Matches(r DeliveryRequest) bool {
	if c.SearchTerm != "" {
		term := strings.ToLower(c.SearchTerm)
		if !strings.Contains(strings.ToLower(r.Title), term) &&
			!strings.Contains(strings.ToLower(r.Description), term) {
			return false
		}
	}
	if c.Size != "" && c.Size != FilterAll && string(r.Size) != c.Size {
		return false
	}
	if c.Urgency != "" && c.Urgency != FilterAll && string(r.Urgency) != c.Urgency {
		return false
	}
	return true
}

// Select returns the subset of requests matching the criteria, preserving
// the input order.
func Select(requests []DeliveryRequest, c Criteria) []DeliveryRequest {
	matched := make([]DeliveryRequest, 0, len(requests))
	for _, r := range requests {
		if c.Matches(r) {
			matched = append(matched, r)
		}
	}
	return matched
}

// SortKey selects the browse-view ordering.
type SortKey string

const (
	// SortNewest orders by creation time, newest first. It is the default.
	SortNewest SortKey = "newest"
	// SortBudgetHigh orders by budget, highest first.
	SortBudgetHigh SortKey = "budget-high"
	// SortBudgetLow orders by budget, lowest first.
	SortBudgetLow SortKey = "budget-low"
	// SortDate orders by preferred delivery date, earliest first.
	SortDate SortKey = "date"
	// SortUrgency orders by urgency rank, most urgent first.
	SortUrgency SortKey = "urgency"
)

var urgencyRank = map[Urgency]int{
	UrgencyHigh:   3,
	UrgencyMedium: 2,
	UrgencyLow:    1,
}

// Order returns a sorted copy of the requests. The sort is stable: ties keep
// their original relative order. Unknown keys fall back to SortNewest.
func Order(requests []DeliveryRequest, key SortKey) []DeliveryRequest {
	sorted := make([]DeliveryRequest, len(requests))
	copy(sorted, requests)

	var less func(a, b DeliveryRequest) bool
	switch key {
	case SortBudgetHigh:
		less = func(a, b DeliveryRequest) bool { return a.Budget > b.Budget }
	case SortBudgetLow:
		less = func(a, b DeliveryRequest) bool { return a.Budget < b.Budget }
	case SortDate:
		// ISO dates (YYYY-MM-DD) order correctly as strings.
		less = func(a, b DeliveryRequest) bool { return a.PreferredDate < b.PreferredDate }
	case SortUrgency:
		less = func(a, b DeliveryRequest) bool { return urgencyRank[a.Urgency] > urgencyRank[b.Urgency] }
	default:
		less = func(a, b DeliveryRequest) bool { return a.CreatedAt.After(b.CreatedAt) }
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return less(sorted[i], sorted[j])
	})
	return sorted
}
