package models

// Category classifies an insurance offering. The taxonomy is fixed by
// the backend.
type Category string

const (
	CategoryHealth Category = "Health"
	CategoryLife   Category = "Life"
	CategoryAuto   Category = "Auto"
	CategoryHome   Category = "Home"
	CategoryTravel Category = "Travel"
)

// CategoryInfo pairs a category with its display metadata.
type CategoryInfo struct {
	Name Category
	Icon string
}

// Categories returns the fixed taxonomy in display order.
func Categories() []CategoryInfo {
	return []CategoryInfo{
		{Name: CategoryHealth, Icon: "heart"},
		{Name: CategoryLife, Icon: "person"},
		{Name: CategoryAuto, Icon: "car"},
		{Name: CategoryHome, Icon: "house"},
		{Name: CategoryTravel, Icon: "airplane"},
	}
}

// Insurance is an immutable offering fetched from the server.
// Price is a monthly amount without a currency attached.
type Insurance struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Price          float64  `json:"price"`
	Company        string   `json:"company"`
	Category       Category `json:"category"`
	CoverageAmount float64  `json:"coverage_amount"`
	Duration       int      `json:"duration"`
	ImageURL       *string  `json:"image_url,omitempty"`
}

// Equal reports whether two offerings are the same product (by id).
func (i Insurance) Equal(o Insurance) bool {
	return i.ID == o.ID
}

// FilterByCategory returns the offerings belonging to the given category,
// preserving order. An empty category returns the input unchanged.
func FilterByCategory(offerings []Insurance, category Category) []Insurance {
	if category == "" {
		return offerings
	}
	filtered := make([]Insurance, 0, len(offerings))
	for _, o := range offerings {
		if o.Category == category {
			filtered = append(filtered, o)
		}
	}
	return filtered
}
