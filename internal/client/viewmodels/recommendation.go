package viewmodels

import (
	"context"
	"sync"

	"github.com/example/covermate/internal/client/models"
	"github.com/example/covermate/internal/client/services"
)

// RecommendationViewModel holds the state of the recommendation screen.
// Same contract as AuthViewModel: fire-and-forget fetch, mutex-serialized
// updates, duplicate invocations ignored while one is in flight.
type RecommendationViewModel struct {
	recs services.RecommendationService

	mu sync.Mutex
	wg sync.WaitGroup

	recommendations []models.Insurance
	loading         bool
	alert           *Alert
}

// NewRecommendationViewModel constructs the view model over the
// recommendation service.
func NewRecommendationViewModel(recs services.RecommendationService) *RecommendationViewModel {
	return &RecommendationViewModel{recs: recs}
}

// Fetch requests recommendations for the user. An incomplete profile is
// rejected synchronously with an alert and no network call — the
// completeness precondition is enforced here, before the domain
// operation. An empty result raises a "no recommendations" alert, which
// is a result to surface, not an error.
func (vm *RecommendationViewModel) Fetch(user *models.User) {
	if user == nil || !user.IsProfileComplete() {
		vm.mu.Lock()
		defer vm.mu.Unlock()
		a := NewAlert("Incomplete Profile",
			"Please complete your profile to get personalized recommendations.")
		vm.alert = &a
		return
	}

	vm.mu.Lock()
	if vm.loading {
		vm.mu.Unlock()
		return
	}
	vm.loading = true
	vm.alert = nil
	vm.wg.Add(1)
	vm.mu.Unlock()

	go func() {
		defer vm.wg.Done()
		offerings, err := vm.recs.Get(context.Background(), user)

		vm.mu.Lock()
		defer vm.mu.Unlock()
		vm.loading = false
		if err != nil {
			a := recommendationAlert(err)
			vm.alert = &a
			return
		}
		vm.recommendations = offerings
		if len(offerings) == 0 {
			a := NewAlert("No Recommendations",
				"We couldn't find any insurance recommendations based on your profile. Try adjusting your profile information.")
			vm.alert = &a
		}
	}()
}

// Wait blocks until the in-flight fetch, if any, has published.
func (vm *RecommendationViewModel) Wait() { vm.wg.Wait() }

func (vm *RecommendationViewModel) IsLoading() bool {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.loading
}

// Recommendations returns the last fetched offerings.
func (vm *RecommendationViewModel) Recommendations() []models.Insurance {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.recommendations
}

// FilteredRecommendations returns the last fetched offerings restricted
// to the given category; an empty category returns everything.
func (vm *RecommendationViewModel) FilteredRecommendations(category models.Category) []models.Insurance {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return models.FilterByCategory(vm.recommendations, category)
}

func (vm *RecommendationViewModel) Alert() *Alert {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.alert
}
