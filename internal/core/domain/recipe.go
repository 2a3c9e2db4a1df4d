package domain

// Recipe is authored by exactly one chef, resolved eagerly on read.
// Updates mutate instructions and author only, never the name.
type Recipe struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Instructions string `json:"instructions"`
	Author       Chef   `json:"author"`
}

// Saved reports whether the recipe has been assigned a storage ID.
func (r *Recipe) Saved() bool {
	return r.ID != 0
}
