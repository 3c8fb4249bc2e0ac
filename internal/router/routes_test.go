package router_test

import (
	"net/http"
	"testing"

	"github.com/changhyeonkim/cardmask/internal/auth"
	"github.com/changhyeonkim/cardmask/internal/bootstrap"
	"github.com/changhyeonkim/cardmask/internal/card"
	"github.com/changhyeonkim/cardmask/internal/operator"
	"github.com/changhyeonkim/cardmask/internal/preset"
	"github.com/changhyeonkim/cardmask/internal/router"
	"github.com/changhyeonkim/cardmask/internal/shared/database"
	"github.com/changhyeonkim/cardmask/internal/shared/testutil"
	"github.com/changhyeonkim/cardmask/internal/shared/validator"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupApp builds the full engine with a real JWT manager
func setupApp(t *testing.T) *gin.Engine {
	t.Helper()

	db := database.Wrap(testutil.SetupTestDB(t))
	t.Cleanup(func() {
		_ = db.Close()
	})

	require.NoError(t, validator.RegisterAll())

	engine := bootstrap.NewBootstrap(testutil.NewTestConfig()).SetupEngine()
	router.Setup(engine, testutil.NewTestConfig(), db)
	return engine
}

func login(t *testing.T, engine *gin.Engine) string {
	t.Helper()

	recorder := testutil.ExecuteRequest(t, engine, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/signup",
		Body: auth.SignupRequest{
			Name:     "Operator",
			Email:    "ops@example.com",
			Password: "password123",
		},
	})
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = testutil.ExecuteRequest(t, engine, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/login",
		Body: auth.LoginRequest{
			Email:    "ops@example.com",
			Password: "password123",
		},
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var response auth.LoginResponse
	testutil.ParseResponse(t, recorder, &response)
	return response.AccessToken
}

func TestRoutes_PresetThenMask(t *testing.T) {
	// Given: an authenticated operator
	engine := setupApp(t)
	accessToken := login(t, engine)

	groupEvery := 4
	unmaskedStart := 6

	// When: the operator stores a preset
	recorder := testutil.ExecuteRequest(t, engine, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/presets",
		Body: preset.CreatePresetRequest{
			Name: "bin-visible",
			OptionsPayload: preset.OptionsPayload{
				UnmaskedStart: &unmaskedStart,
				GroupEvery:    &groupEvery,
			},
		},
		Headers: testutil.BearerHeader(accessToken),
	})
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	// Then: anyone can mask with it
	recorder = testutil.ExecuteRequest(t, engine, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/cards/mask",
		Body:   card.MaskRequest{Number: "4532123456789012", Preset: "bin-visible"},
	})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var masked card.MaskResponse
	testutil.ParseResponse(t, recorder, &masked)
	assert.Equal(t, "4532 12** **** 9012", masked.Masked)
}

func TestRoutes_OperatorProfile(t *testing.T) {
	// Given
	engine := setupApp(t)
	accessToken := login(t, engine)

	// When
	recorder := testutil.ExecuteRequest(t, engine, testutil.TestRequest{
		Method:  http.MethodGet,
		URL:     "/api/v1/operators/me",
		Headers: testutil.BearerHeader(accessToken),
	})

	// Then
	require.Equal(t, http.StatusOK, recorder.Code)

	var profile operator.GetProfileResponse
	testutil.ParseResponse(t, recorder, &profile)
	assert.Equal(t, "ops@example.com", profile.Email)
}

func TestRoutes_PresetsRequireToken(t *testing.T) {
	// Given
	engine := setupApp(t)

	// When
	recorder := testutil.ExecuteRequest(t, engine, testutil.TestRequest{
		Method:  http.MethodGet,
		URL:     "/api/v1/presets",
		Headers: testutil.BearerHeader("not-a-jwt"),
	})

	// Then
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestRoutes_MetaEndpoints(t *testing.T) {
	// Given
	engine := setupApp(t)

	for _, url := range []string{"/health", "/api/v1/meta/mask-defaults"} {
		// When
		recorder := testutil.ExecuteRequest(t, engine, testutil.TestRequest{
			Method: http.MethodGet,
			URL:    url,
		})

		// Then
		assert.Equal(t, http.StatusOK, recorder.Code, url)
	}
}
