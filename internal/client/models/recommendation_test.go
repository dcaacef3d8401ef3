package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecommendationRequest_CompleteProfile(t *testing.T) {
	req, err := NewRecommendationRequest(completeUser())
	require.NoError(t, err)

	assert.Equal(t, 34, req.Age)
	assert.Equal(t, "female", req.Gender)
	assert.Equal(t, "engineer", req.Occupation)
	assert.Equal(t, float64(85000), req.Income)
	assert.Equal(t, "married", req.MaritalStatus)
	assert.True(t, req.HasChildren)
	assert.True(t, req.HasVehicle)
	assert.False(t, req.HasHome)
	assert.False(t, req.HasMedicalConditions)
	assert.Equal(t, "often", req.TravelFrequency)
}

func TestNewRecommendationRequest_IncompleteProfile(t *testing.T) {
	u := completeUser()
	u.Income = nil

	_, err := NewRecommendationRequest(u)
	require.ErrorIs(t, err, ErrProfileIncomplete)

	_, err = NewRecommendationRequest(nil)
	require.ErrorIs(t, err, ErrProfileIncomplete)
}

func TestRecommendationRequest_WireFieldNames(t *testing.T) {
	req, err := NewRecommendationRequest(completeUser())
	require.NoError(t, err)

	data, err := json.Marshal(req)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))

	for _, key := range []string{
		"age", "gender", "occupation", "income", "marital_status",
		"has_children", "has_vehicle", "has_home",
		"has_medical_conditions", "travel_frequency",
	} {
		assert.Contains(t, raw, key)
	}
	assert.Len(t, raw, 10)
}

func TestRecommendationResponse_EmptyListIsValid(t *testing.T) {
	var resp RecommendationResponse
	require.NoError(t, json.Unmarshal([]byte(`{"recommendations":[]}`), &resp))
	assert.Empty(t, resp.Recommendations)
}
