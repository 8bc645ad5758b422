package model

import "time"

// Category holds display metadata for a spending category. The name is the
// key; it must match the category field on transactions exactly,
// case-sensitively. The aggregation layer never computes on the metadata.
type Category struct {
	CreatedAt time.Time
	Name      string
	Icon      string
	Color     string
}
