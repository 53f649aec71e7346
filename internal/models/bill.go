package models

// Bill is one month's charge breakdown and payment state for a resident.
// PaidAmount is cumulative; whether a bill is fully paid is left to the
// caller to decide against the sum of the charges.
type Bill struct {
	Month       string  `bson:"month" json:"month"`
	Year        int     `bson:"year" json:"year"`
	Rent        float64 `bson:"rent" json:"rent"`
	Electricity float64 `bson:"electricity" json:"electricity"`
	Food        float64 `bson:"food" json:"food"`
	Other       float64 `bson:"other" json:"other"`
	PaidAmount  float64 `bson:"paidAmount" json:"paidAmount"`
	DueDate     string  `bson:"dueDate" json:"dueDate"`
	PaidDate    *string `bson:"paidDate" json:"paidDate"`
}

// Validate checks the required fields and rejects negative amounts.
func (b *Bill) Validate() error {
	if b.Month == "" {
		return &ValidationError{"month", "is required"}
	}
	if b.Year == 0 {
		return &ValidationError{"year", "is required"}
	}
	if b.DueDate == "" {
		return &ValidationError{"dueDate", "is required"}
	}
	for _, amount := range []struct {
		name  string
		value float64
	}{
		{"rent", b.Rent},
		{"electricity", b.Electricity},
		{"food", b.Food},
		{"other", b.Other},
		{"paidAmount", b.PaidAmount},
	} {
		if amount.value < 0 {
			return &ValidationError{amount.name, "must not be negative"}
		}
	}
	return nil
}

// MergeBill upserts incoming into bills, keyed by (month, year): an existing
// entry for the same month and year is replaced in full, otherwise the bill
// is inserted. The touched entry always ends up first; the relative order of
// the remaining bills is preserved. The input slice is not modified.
func MergeBill(bills []Bill, incoming Bill) []Bill {
	merged := make([]Bill, 0, len(bills)+1)
	merged = append(merged, incoming)
	for _, b := range bills {
		if b.Month == incoming.Month && b.Year == incoming.Year {
			continue
		}
		merged = append(merged, b)
	}
	return merged
}
