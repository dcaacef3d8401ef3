package services

import (
	"context"
	"net/http"

	"github.com/example/covermate/internal/client/api"
	"github.com/example/covermate/internal/client/models"
)

// RecommendationService fetches insurance offerings matched to a user
// profile. Callers must check profile completeness before invoking Get;
// the projection itself refuses incomplete profiles as a backstop.
type RecommendationService interface {
	Get(ctx context.Context, user *models.User) ([]models.Insurance, error)
}

type recommendationService struct {
	api api.Doer
}

// NewRecommendationService constructs a RecommendationService over the
// given transport client.
func NewRecommendationService(apiClient api.Doer) RecommendationService {
	return &recommendationService{api: apiClient}
}

// Get projects the profile into a recommendation request and returns the
// matched offerings. An empty list is a valid result, not an error.
func (s *recommendationService) Get(ctx context.Context, user *models.User) ([]models.Insurance, error) {
	req, err := models.NewRecommendationRequest(user)
	if err != nil {
		return nil, err
	}

	var resp models.RecommendationResponse
	if err := s.api.Send(ctx, http.MethodPost, "recommendations", req, &resp, true); err != nil {
		return nil, err
	}

	return resp.Recommendations, nil
}
