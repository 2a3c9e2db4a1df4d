package domain

// Ingredient participates in a many-to-many relation with Recipe through the
// recipe_ingredient join table. Deleting an ingredient removes its join rows
// first.
type Ingredient struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Saved reports whether the ingredient has been assigned a storage ID.
func (i *Ingredient) Saved() bool {
	return i.ID != 0
}
