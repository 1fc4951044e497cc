package advisor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/connorhpbrn/findtravel/internal/domain"
	"github.com/connorhpbrn/findtravel/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newAdvisorTestServer exercises the full HTTP serialization path:
// httptest server → OpenRouter client → advisor service → decoding.
// The handler receives the decoded user prompt so tests can dispatch on
// the task being performed.
func newAdvisorTestServer(t *testing.T, respond func(userPrompt string) string) (*httptest.Server, Service) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Messages, 2)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"model": "test-model",
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": respond(req.Messages[1].Content)}},
			},
		})
	}))
	t.Cleanup(srv.Close)

	cfg := llm.DefaultConfig()
	cfg.APIKey = "test-key"
	cfg.Endpoint = srv.URL
	cfg.MaxRetries = 0

	return srv, NewService(llm.NewOpenRouterClient(cfg, llm.NoopObserver{}))
}

func TestService_GenerateTravelStyle_FencedResponse(t *testing.T) {
	_, svc := newAdvisorTestServer(t, func(string) string {
		return "```json\n{\"travelStyle\": \"You're a Quiet Seeker — drawn to slow mornings.\"}\n```"
	})

	style, err := svc.GenerateTravelStyle(context.Background(), fullAnswers())
	require.NoError(t, err)
	assert.Equal(t, "You're a Quiet Seeker — drawn to slow mornings.", style)
}

func TestService_GenerateTravelStyle_MalformedResponse(t *testing.T) {
	_, svc := newAdvisorTestServer(t, func(string) string {
		return "Sorry, I can only help with travel questions."
	})

	_, err := svc.GenerateTravelStyle(context.Background(), fullAnswers())
	assert.ErrorIs(t, err, llm.ErrInvalidOutput)
}

func TestService_GenerateDestinations_AttachesImagesInOrder(t *testing.T) {
	payload := destinationsResponse{
		Destinations: []domain.Destination{
			{ID: "lake-como", Name: "Lake Como, Italy", Tagline: "Still water, old villas"},
			{ID: "ulaanbaatar", Name: "Ulaanbaatar, Mongolia", Tagline: "Open steppe"},
			{ID: "kyoto", Name: "Kyoto, Japan", Tagline: "Temples at dawn"},
			{ID: "somewhere", Name: "Somewhere Unknown", Tagline: "Off every map"},
		},
	}
	encoded, err := json.Marshal(payload)
	require.NoError(t, err)

	_, svc := newAdvisorTestServer(t, func(userPrompt string) string {
		assert.Contains(t, userPrompt, "Recommend exactly 4 destinations")
		return string(encoded)
	})

	dests, err := svc.GenerateDestinations(context.Background(), fullAnswers())
	require.NoError(t, err)
	require.Len(t, dests, 4)

	assert.Equal(t, destinationImages["lake como"], dests[0].ImageURL)
	assert.Equal(t, fallbackImages[1], dests[1].ImageURL)
	assert.Equal(t, destinationImages["kyoto"], dests[2].ImageURL)
	assert.Equal(t, fallbackImages[3], dests[3].ImageURL)
}

func TestService_GenerateDestinations_EmptyListRejected(t *testing.T) {
	_, svc := newAdvisorTestServer(t, func(string) string {
		return `{"destinations": []}`
	})

	_, err := svc.GenerateDestinations(context.Background(), fullAnswers())
	assert.ErrorIs(t, err, llm.ErrInvalidOutput)
}

func TestService_GenerateDestinations_WrongCountRejected(t *testing.T) {
	entry := func(id, name string) domain.Destination {
		return domain.Destination{ID: id, Name: name, Tagline: "t"}
	}

	tests := []struct {
		name  string
		dests []domain.Destination
	}{
		{"two entries", []domain.Destination{entry("a", "Athens"), entry("b", "Bergen")}},
		{"seven entries", []domain.Destination{
			entry("a", "Athens"), entry("b", "Bergen"), entry("c", "Cartagena"),
			entry("d", "Dublin"), entry("e", "Essaouira"), entry("f", "Fez"),
			entry("g", "Girona"),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := json.Marshal(destinationsResponse{Destinations: tt.dests})
			require.NoError(t, err)

			_, svc := newAdvisorTestServer(t, func(string) string {
				return string(encoded)
			})

			_, err = svc.GenerateDestinations(context.Background(), fullAnswers())
			assert.ErrorIs(t, err, llm.ErrInvalidOutput)
		})
	}
}

func validPlanJSON(t *testing.T) string {
	t.Helper()
	plan := domain.TripPlan{
		Overview: "Three unhurried days along the river.",
		DayByDay: []domain.DayPlan{
			{Day: 1, Title: "Arrival", Description: "Settle into Ribeira."},
			{Day: 2, Title: "Old town", Description: "Morning market, afternoon port lodges."},
		},
		FoodHighlights: []string{"Francesinha at Casa Guedes"},
		ThingsToDo:     []string{"Livraria Lello before opening"},
		WhereToStay:    []domain.Lodging{{Neighborhood: "Ribeira", Description: "Riverside, walkable"}},
		GettingAround:  "Walk; metro for the airport.",
		WhatToPack:     []string{"Comfortable shoes"},
		BudgetOverview: domain.BudgetOverview{
			Accommodation: "$90-130/night",
			Food:          "$30-50/day",
			Activities:    "$15-30/day",
			Transport:     "$5-10/day",
			Total:         "$140-220/day",
		},
	}
	encoded, err := json.Marshal(plan)
	require.NoError(t, err)
	return string(encoded)
}

func TestService_GenerateTripPlan_DecodesFullShape(t *testing.T) {
	_, svc := newAdvisorTestServer(t, func(userPrompt string) string {
		assert.Contains(t, userPrompt, "Create a detailed trip plan for Porto, Portugal")
		return validPlanJSON(t)
	})

	dest := domain.Destination{ID: "porto", Name: "Porto, Portugal", Tagline: "Slow rivers, slow wine"}
	plan, err := svc.GenerateTripPlan(context.Background(), fullAnswers(), dest)
	require.NoError(t, err)

	assert.Equal(t, "Three unhurried days along the river.", plan.Overview)
	require.Len(t, plan.DayByDay, 2)
	assert.Equal(t, 1, plan.DayByDay[0].Day)
	assert.Equal(t, "$90-130/night", plan.BudgetOverview.Accommodation)
}

func TestService_GenerateTripPlan_MissingDayByDayRejected(t *testing.T) {
	_, svc := newAdvisorTestServer(t, func(string) string {
		return `{"overview": "A trip with no days."}`
	})

	_, err := svc.GenerateTripPlan(context.Background(), fullAnswers(), domain.Destination{ID: "x", Name: "X"})
	assert.ErrorIs(t, err, llm.ErrInvalidOutput)
}

func TestService_GenerateTripPlan_CachedByDestinationID(t *testing.T) {
	var hits int32
	planJSON := validPlanJSON(t)
	_, svc := newAdvisorTestServer(t, func(string) string {
		atomic.AddInt32(&hits, 1)
		return planJSON
	})

	dest := domain.Destination{ID: "porto", Name: "Porto, Portugal"}
	first, err := svc.GenerateTripPlan(context.Background(), fullAnswers(), dest)
	require.NoError(t, err)
	second, err := svc.GenerateTripPlan(context.Background(), fullAnswers(), dest)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits), "second request must reuse the cached plan")

	// A different destination is a fresh request.
	_, err = svc.GenerateTripPlan(context.Background(), fullAnswers(), domain.Destination{ID: "kyoto", Name: "Kyoto"})
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
}

func TestGenerateProfile_FanOutJoin(t *testing.T) {
	destsJSON, err := json.Marshal(destinationsResponse{Destinations: []domain.Destination{
		{ID: "a", Name: "Athens, Greece"},
		{ID: "b", Name: "Bergen, Norway"},
		{ID: "c", Name: "Cartagena, Colombia"},
		{ID: "d", Name: "Dublin, Ireland"},
	}})
	require.NoError(t, err)

	_, svc := newAdvisorTestServer(t, func(userPrompt string) string {
		if strings.Contains(userPrompt, "Recommend exactly 4 destinations") {
			return string(destsJSON)
		}
		return `{"travelStyle": "You're a Harbor Walker — happiest near water."}`
	})

	result, err := GenerateProfile(context.Background(), svc, fullAnswers())
	require.NoError(t, err)
	assert.Equal(t, "You're a Harbor Walker — happiest near water.", result.TravelStyle)
	require.Len(t, result.Destinations, 4)
	assert.Equal(t, destinationImages["athens"], result.Destinations[0].ImageURL)
}

func TestGenerateProfile_FirstErrorWins(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("bad request"))
	}))
	t.Cleanup(srv.Close)

	cfg := llm.DefaultConfig()
	cfg.APIKey = "test-key"
	cfg.Endpoint = srv.URL
	cfg.MaxRetries = 0
	svc := NewService(llm.NewOpenRouterClient(cfg, llm.NoopObserver{}))

	_, err := GenerateProfile(context.Background(), svc, fullAnswers())
	var ue *llm.UpstreamError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, http.StatusBadRequest, ue.Status)
}
