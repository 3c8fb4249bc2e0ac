package card_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/changhyeonkim/cardmask/internal/card"
	"github.com/changhyeonkim/cardmask/internal/preset"
	sharedError "github.com/changhyeonkim/cardmask/internal/shared/error"
	"github.com/changhyeonkim/cardmask/internal/shared/testutil"
	"github.com/changhyeonkim/cardmask/pkg/cardmask"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRouter wires the card routes with a database-backed preset resolver
func setupTestRouter(t *testing.T) (*gin.Engine, *preset.PresetService) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})

	presetService := preset.NewPresetService(db, preset.NewPresetRepository())
	return newRouter(card.NewCardService(testutil.NewTestConfig(), presetService)), presetService
}

func newRouter(cardService *card.CardService) *gin.Engine {
	cardHandler := card.NewCardHandler(cardService)

	router := testutil.SetupTestRouter()
	router.POST("/api/v1/cards/mask", cardHandler.Mask)
	router.POST("/api/v1/cards/mask/batch", cardHandler.MaskBatch)
	return router
}

func intPtr(v int) *int          { return &v }
func boolPtr(v bool) *bool       { return &v }
func stringPtr(v string) *string { return &v }

func mask(t *testing.T, router *gin.Engine, request card.MaskRequest) (int, card.MaskResponse, sharedError.ErrorResponse) {
	t.Helper()

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/cards/mask",
		Body:   request,
	})

	var response card.MaskResponse
	var errResp sharedError.ErrorResponse
	if recorder.Code == http.StatusOK {
		testutil.ParseResponse(t, recorder, &response)
	} else {
		testutil.ParseResponse(t, recorder, &errResp)
	}
	return recorder.Code, response, errResp
}

func TestMask_Success(t *testing.T) {
	tests := []struct {
		name     string
		request  card.MaskRequest
		expected string
	}{
		{
			name:     "server defaults",
			request:  card.MaskRequest{Number: "4532123456789012"},
			expected: "************9012",
		},
		{
			name: "inline overrides",
			request: card.MaskRequest{
				Number: "4532123456789012",
				Options: &preset.OptionsPayload{
					UnmaskedStart: intPtr(4),
					GroupEvery:    intPtr(4),
				},
			},
			expected: "4532 **** **** 9012",
		},
		{
			name: "preserve spacing",
			request: card.MaskRequest{
				Number:  "4532-1234-5678-9012",
				Options: &preset.OptionsPayload{PreserveSpacing: boolPtr(true)},
			},
			expected: "****-****-****-9012",
		},
		{
			name: "hide length",
			request: card.MaskRequest{
				Number: "4532123456789012",
				Options: &preset.OptionsPayload{
					MaskChar:   stringPtr("•"),
					ShowLength: boolPtr(false),
				},
			},
			expected: "••••9012",
		},
		{
			name:     "no digits",
			request:  card.MaskRequest{Number: "card"},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given
			router, _ := setupTestRouter(t)

			// When
			code, response, _ := mask(t, router, tt.request)

			// Then
			require.Equal(t, http.StatusOK, code)
			assert.Equal(t, tt.expected, response.Masked)
		})
	}
}

func TestMask_InvalidCardNumber(t *testing.T) {
	// Given
	router, _ := setupTestRouter(t)

	// When
	code, _, errResp := mask(t, router, card.MaskRequest{
		Number:  "1234 5678",
		Options: &preset.OptionsPayload{ValidateInput: boolPtr(true)},
	})

	// Then
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "CARD-001", errResp.Code)
}

func TestMask_WithPreset(t *testing.T) {
	// Given: a stored preset and an inline override on top of it
	router, presetService := setupTestRouter(t)
	_, err := presetService.Create(context.Background(), 1, &preset.CreatePresetRequest{
		Name: "amex",
		OptionsPayload: preset.OptionsPayload{
			MaskChar:    stringPtr("#"),
			UnmaskedEnd: intPtr(5),
			GroupSizes:  []int{4, 6, 5},
		},
	})
	require.NoError(t, err)

	// When
	code, response, _ := mask(t, router, card.MaskRequest{
		Number:  "378282246310005",
		Preset:  "amex",
		Options: &preset.OptionsPayload{UnmaskedStart: intPtr(1)},
	})

	// Then
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "3### ###### 10005", response.Masked)
}

func TestMask_ClearPresetGrouping(t *testing.T) {
	// Given: a grouped preset
	router, presetService := setupTestRouter(t)
	_, err := presetService.Create(context.Background(), 1, &preset.CreatePresetRequest{
		Name: "amex",
		OptionsPayload: preset.OptionsPayload{
			UnmaskedEnd: intPtr(5),
			GroupSizes:  []int{4, 6, 5},
		},
	})
	require.NoError(t, err)

	// When: the request sets groupEvery to 0
	code, response, _ := mask(t, router, card.MaskRequest{
		Number:  "378282246310005",
		Preset:  "amex",
		Options: &preset.OptionsPayload{GroupEvery: intPtr(0)},
	})

	// Then
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "**********10005", response.Masked)
}

func TestMask_PresetNotFound(t *testing.T) {
	// Given
	router, _ := setupTestRouter(t)

	// When
	code, _, errResp := mask(t, router, card.MaskRequest{Number: "4532123456789012", Preset: "missing"})

	// Then
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "PRESET-001", errResp.Code)
}

func TestMask_ValidationError(t *testing.T) {
	tests := []struct {
		name string
		body map[string]any
	}{
		{name: "missing number", body: map[string]any{}},
		{name: "digit mask char", body: map[string]any{"number": "4532123456789012", "options": map[string]any{"maskChar": "0"}}},
		{name: "negative window", body: map[string]any{"number": "4532123456789012", "options": map[string]any{"unmaskedEnd": -2}}},
		{name: "bad preset name", body: map[string]any{"number": "4532123456789012", "preset": "No Spaces"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given
			router, _ := setupTestRouter(t)

			// When
			recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
				Method: http.MethodPost,
				URL:    "/api/v1/cards/mask",
				Body:   tt.body,
			})

			// Then
			assert.Equal(t, http.StatusBadRequest, recorder.Code)

			var errResp sharedError.ErrorResponse
			testutil.ParseResponse(t, recorder, &errResp)
			assert.Equal(t, sharedError.ValidationFailed.Code, errResp.Code)
		})
	}
}

type stubResolver struct {
	opts cardmask.Options
}

func (s stubResolver) Resolve(context.Context, string) (cardmask.Options, error) {
	return s.opts, nil
}

func TestMask_InvalidResolvedOptions(t *testing.T) {
	// Given: a resolver handing back options cardmask rejects
	router := newRouter(card.NewCardService(testutil.NewTestConfig(), stubResolver{
		opts: cardmask.Options{UnmaskedStart: -1},
	}))

	// When
	code, _, errResp := mask(t, router, card.MaskRequest{Number: "4532123456789012", Preset: "broken"})

	// Then
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "CARD-002", errResp.Code)
}

func TestMaskBatch_MixedResults(t *testing.T) {
	// Given
	router, _ := setupTestRouter(t)

	// When
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/cards/mask/batch",
		Body: card.BatchMaskRequest{
			Numbers: []string{"4532 1234 5678 9012", "1234", "no digits"},
			Options: &preset.OptionsPayload{ValidateInput: boolPtr(true)},
		},
	})

	// Then: failures stay in their own slot
	require.Equal(t, http.StatusOK, recorder.Code)

	var response card.BatchMaskResponse
	testutil.ParseResponse(t, recorder, &response)
	require.Len(t, response.Results, 3)

	require.NotNil(t, response.Results[0].Masked)
	assert.Equal(t, "************9012", *response.Results[0].Masked)
	assert.Nil(t, response.Results[0].Error)

	require.NotNil(t, response.Results[1].Error)
	assert.Equal(t, "CARD-001", response.Results[1].Error.Code)
	assert.Nil(t, response.Results[1].Masked)

	// Digit-free input short-circuits before validation.
	require.NotNil(t, response.Results[2].Masked)
	assert.Equal(t, "", *response.Results[2].Masked)
}

func TestMaskBatch_TooLarge(t *testing.T) {
	// Given: the test config caps batches at 5
	router, _ := setupTestRouter(t)
	numbers := strings.Split(strings.Repeat("4532123456789012,", 6), ",")[:6]

	// When
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/cards/mask/batch",
		Body:   card.BatchMaskRequest{Numbers: numbers},
	})

	// Then
	assert.Equal(t, http.StatusRequestEntityTooLarge, recorder.Code)

	var errResp sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errResp)
	assert.Equal(t, "CARD-003", errResp.Code)
}

func TestMaskBatch_Empty(t *testing.T) {
	// Given
	router, _ := setupTestRouter(t)

	// When
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/cards/mask/batch",
		Body:   map[string]any{"numbers": []string{}},
	})

	// Then
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
