package journal

import "spendlog/internal/core"

// SeedCategories returns the bundled reference dataset used to populate an
// empty category directory. The SQLite backend seeds the same set through a
// migration; file and memory stores call this directly.
func SeedCategories() []core.Category {
	return []core.Category{
		{ID: "1", Name: "Food", Description: "Groceries and eating out"},
		{ID: "2", Name: "Transport", Description: "Public transport, fuel, parking"},
		{ID: "3", Name: "Utilities", Description: "Electricity, water, internet"},
		{ID: "4", Name: "Entertainment", Description: "Movies, games, going out"},
		{ID: "5", Name: "Health", Description: "Pharmacy, doctor visits"},
		{ID: "6", Name: "Shopping", Description: "Clothes and household goods"},
		{ID: "7", Name: "Travel", Description: "Trips and holidays"},
		{ID: "8", Name: "Education", Description: "Books, courses, tuition"},
	}
}
