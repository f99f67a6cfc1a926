package domain

// Product represents a catalog product record.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// CreateProduct carries the caller-supplied fields for a product insert.
// The ID is generated by the store.
type CreateProduct struct {
	Name        string
	Description string
	Price       float64
}

// UpdateProduct carries a partial update. Absent fields leave the stored
// value unchanged.
type UpdateProduct struct {
	Name        Optional[string]
	Description Optional[string]
	Price       Optional[float64]
}

// IsEmpty reports whether the update carries no fields at all.
func (u UpdateProduct) IsEmpty() bool {
	return !u.Name.Present && !u.Description.Present && !u.Price.Present
}

// Apply merges the update into an existing product, returning the fully
// resolved record that should be written back.
func (u UpdateProduct) Apply(existing Product) Product {
	existing.Name = u.Name.Or(existing.Name)
	existing.Description = u.Description.Or(existing.Description)
	existing.Price = u.Price.Or(existing.Price)
	return existing
}
