package itinerary

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/wanderplan/internal/api"
	"github.com/FACorreiaa/wanderplan/internal/types"
)

func TestHandlerImpl_ListInterests(t *testing.T) {
	h := NewHandlerImpl(new(MockItineraryService), slog.Default())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/interests", nil)
	rr := httptest.NewRecorder()
	h.ListInterests(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp api.InterestsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, types.InterestCatalogue, resp.Interests)
}

func TestHandlerImpl_GenerateItinerary(t *testing.T) {
	validBody := `{"destination":"Kyoto, Japan","duration":3,"travelers":2,"budget":"Moderate","interests":["Food","History"]}`

	tests := []struct {
		name           string
		body           string
		setupMock      func(m *MockItineraryService)
		expectedStatus int
		expectedError  string
	}{
		{
			name: "generated",
			body: validBody,
			setupMock: func(m *MockItineraryService) {
				m.On("Generate", mock.Anything, kyotoPrefs()).Return(&types.TripItinerary{
					Destination: "Kyoto, Japan",
					Days:        []types.DayPlan{{DayNumber: 1, Activities: []types.Activity{}}},
				}, nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "malformed body",
			body:           `{"destination":`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid request body",
		},
		{
			name:           "unknown field",
			body:           `{"destination":"Kyoto","days":3}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "unknown key",
		},
		{
			name:           "missing interests",
			body:           `{"destination":"Kyoto, Japan","duration":3,"travelers":2,"budget":"Moderate"}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "at least one interest",
		},
		{
			name:           "duration out of range",
			body:           `{"destination":"Kyoto","duration":15,"travelers":1,"budget":"Budget","interests":["Art"]}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "duration must be between 1 and 14",
		},
		{
			name:           "unknown budget tier",
			body:           `{"destination":"Kyoto","duration":2,"travelers":1,"budget":"Cheap","interests":["Art"]}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "budget must be one of",
		},
		{
			name: "invalid model output hides details",
			body: validBody,
			setupMock: func(m *MockItineraryService) {
				m.On("Generate", mock.Anything, mock.Anything).
					Return(nil, types.NewInvalidFormatError(errors.New("unexpected token at offset 3"))).Once()
			},
			expectedStatus: http.StatusBadGateway,
			expectedError:  types.GenericGenerationMessage,
		},
		{
			name: "service failure hides details",
			body: validBody,
			setupMock: func(m *MockItineraryService) {
				m.On("Generate", mock.Anything, mock.Anything).
					Return(nil, errors.New("dial tcp: connection refused")).Once()
			},
			expectedStatus: http.StatusBadGateway,
			expectedError:  types.GenericGenerationMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockItineraryService)
			if tt.setupMock != nil {
				tt.setupMock(svc)
			}
			h := NewHandlerImpl(svc, slog.Default())

			req := httptest.NewRequest(http.MethodPost, "/api/v1/itineraries", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()
			h.GenerateItinerary(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedError != "" {
				var resp map[string]interface{}
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, false, resp["success"])
				assert.Contains(t, resp["error"], tt.expectedError)
				assert.NotContains(t, rr.Body.String(), "connection refused")
				assert.NotContains(t, rr.Body.String(), "offset 3")
			} else {
				var it types.TripItinerary
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &it))
				assert.Equal(t, "Kyoto, Japan", it.Destination)
			}
			svc.AssertExpectations(t)
		})
	}
}
