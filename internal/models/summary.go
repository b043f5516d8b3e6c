package models

// ExpenseSummaryRow is one aggregate row of the expense summary: total spend
// per currency and category.
type ExpenseSummaryRow struct {
	Currency Currency `db:"currency" json:"currency"`
	Category string   `db:"category" json:"category"`
	Total    float64  `db:"total" json:"total"`
	Count    int64    `db:"count" json:"count"`
}
