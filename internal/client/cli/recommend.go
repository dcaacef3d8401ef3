package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/covermate/internal/client/models"
)

// Recommend fetches personalized recommendations and prints them. A
// non-empty category restricts the listing; the fetch itself always
// retrieves the full set, so switching categories needs no round trip.
func (a *App) Recommend(ctx context.Context, category string) error {
	cat, ok := parseCategory(category)
	if !ok {
		printlnFn("Unknown category:", category)
		printlnFn("Valid categories:", categoryNames())
		return nil
	}

	a.recs.Fetch(a.auth.User())
	a.recs.Wait()

	if al := a.recs.Alert(); al != nil {
		printAlert(al)
		return nil
	}

	offerings := a.recs.FilteredRecommendations(cat)
	if len(offerings) == 0 {
		printlnFn("No offerings in category:", string(cat))
		return nil
	}

	for _, o := range offerings {
		printlnFn(fmt.Sprintf("[%s] %s — %s", o.Category, o.Name, o.Company))
		printlnFn(fmt.Sprintf("    %s", o.Description))
		printlnFn(fmt.Sprintf("    %.2f/month, covers %.0f, %d months", o.Price, o.CoverageAmount, o.Duration))
	}
	return nil
}

// parseCategory maps user input onto the fixed taxonomy,
// case-insensitively. Empty input selects all categories.
func parseCategory(s string) (models.Category, bool) {
	if s == "" {
		return "", true
	}
	for _, ci := range models.Categories() {
		if strings.EqualFold(s, string(ci.Name)) {
			return ci.Name, true
		}
	}
	return "", false
}

func categoryNames() string {
	names := make([]string, 0, len(models.Categories()))
	for _, ci := range models.Categories() {
		names = append(names, strings.ToLower(string(ci.Name)))
	}
	return strings.Join(names, ", ")
}
