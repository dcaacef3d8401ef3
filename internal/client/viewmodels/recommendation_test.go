package viewmodels

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/covermate/internal/client/api"
	"github.com/example/covermate/internal/client/models"
)

type fakeRecommendationService struct {
	mu    sync.Mutex
	calls int
	gate  chan struct{}

	offerings []models.Insurance
	err       error
}

func (f *fakeRecommendationService) Get(ctx context.Context, user *models.User) ([]models.Insurance, error) {
	f.mu.Lock()
	f.calls++
	gate := f.gate
	f.mu.Unlock()
	if gate != nil {
		<-gate
	}
	return f.offerings, f.err
}

func (f *fakeRecommendationService) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func strPtr(s string) *string   { return &s }
func intPtr(i int) *int         { return &i }
func fltPtr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool      { return &b }

func profiledUser() *models.User {
	return &models.User{
		ID:                   5,
		Name:                 "Carol",
		Email:                "carol@example.com",
		Age:                  intPtr(29),
		Gender:               strPtr("female"),
		Occupation:           strPtr("nurse"),
		Income:               fltPtr(52000),
		MaritalStatus:        strPtr("single"),
		HasChildren:          boolPtr(false),
		HasVehicle:           boolPtr(true),
		HasHome:              boolPtr(false),
		HasMedicalConditions: boolPtr(false),
		TravelFrequency:      strPtr("rarely"),
	}
}

func TestFetch_Success(t *testing.T) {
	svc := &fakeRecommendationService{offerings: []models.Insurance{
		{ID: 1, Name: "Basic Health", Category: models.CategoryHealth},
		{ID: 2, Name: "Road Cover", Category: models.CategoryAuto},
	}}
	vm := NewRecommendationViewModel(svc)

	vm.Fetch(profiledUser())
	vm.Wait()

	assert.False(t, vm.IsLoading())
	assert.Nil(t, vm.Alert())
	assert.Len(t, vm.Recommendations(), 2)
}

func TestFetch_IncompleteProfile_NoCall(t *testing.T) {
	svc := &fakeRecommendationService{}
	vm := NewRecommendationViewModel(svc)

	u := profiledUser()
	u.Occupation = nil
	vm.Fetch(u)
	vm.Wait()

	assert.Zero(t, svc.callCount())
	require.NotNil(t, vm.Alert())
	assert.Equal(t, "Incomplete Profile", vm.Alert().Title)
}

func TestFetch_NilUser_NoCall(t *testing.T) {
	svc := &fakeRecommendationService{}
	vm := NewRecommendationViewModel(svc)

	vm.Fetch(nil)
	vm.Wait()

	assert.Zero(t, svc.callCount())
	require.NotNil(t, vm.Alert())
	assert.Equal(t, "Incomplete Profile", vm.Alert().Title)
}

func TestFetch_EmptyResultRaisesInfoAlert(t *testing.T) {
	svc := &fakeRecommendationService{offerings: []models.Insurance{}}
	vm := NewRecommendationViewModel(svc)

	vm.Fetch(profiledUser())
	vm.Wait()

	assert.Empty(t, vm.Recommendations())
	require.NotNil(t, vm.Alert())
	assert.Equal(t, "No Recommendations", vm.Alert().Title)
}

func TestFetch_StaleSessionAlert(t *testing.T) {
	svc := &fakeRecommendationService{err: api.ErrUnauthorized}
	vm := NewRecommendationViewModel(svc)

	vm.Fetch(profiledUser())
	vm.Wait()

	require.NotNil(t, vm.Alert())
	assert.Equal(t, "Authentication Error", vm.Alert().Title)
	assert.Equal(t, "Your session has expired. Please log in again.", vm.Alert().Message)
}

func TestFetch_DuplicateInvocationIgnoredWhileInFlight(t *testing.T) {
	gate := make(chan struct{})
	svc := &fakeRecommendationService{gate: gate, offerings: []models.Insurance{{ID: 1}}}
	vm := NewRecommendationViewModel(svc)

	vm.Fetch(profiledUser())
	require.True(t, vm.IsLoading())
	vm.Fetch(profiledUser()) // dropped
	close(gate)
	vm.Wait()

	assert.Equal(t, 1, svc.callCount())
	assert.Len(t, vm.Recommendations(), 1)
}

func TestFilteredRecommendations(t *testing.T) {
	svc := &fakeRecommendationService{offerings: []models.Insurance{
		{ID: 1, Category: models.CategoryHealth},
		{ID: 2, Category: models.CategoryAuto},
		{ID: 3, Category: models.CategoryHealth},
	}}
	vm := NewRecommendationViewModel(svc)

	vm.Fetch(profiledUser())
	vm.Wait()

	health := vm.FilteredRecommendations(models.CategoryHealth)
	require.Len(t, health, 2)
	assert.Equal(t, 1, health[0].ID)
	assert.Equal(t, 3, health[1].ID)

	assert.Len(t, vm.FilteredRecommendations(""), 3)
}
