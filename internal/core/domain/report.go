package domain

// StockRow is one line of the stock report: totals for a single category.
type StockRow struct {
	CategoryID   string  `json:"category_id" bson:"_id"`
	CategoryName string  `json:"category_name" bson:"category_name"`
	Positions    int64   `json:"positions" bson:"positions"`
	Quantity     float64 `json:"quantity" bson:"quantity"`
	Value        float64 `json:"value" bson:"value"`
}

// TaskCountRow is one line of the task report: task count for a status.
type TaskCountRow struct {
	Status TaskStatus `json:"status" bson:"_id"`
	Count  int64      `json:"count" bson:"count"`
}
