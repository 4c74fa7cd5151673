package forms

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"formdesk/core/store"
	"formdesk/core/store/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T, st store.Store) *fiber.App {
	t.Helper()
	app := fiber.New()
	feat, err := NewFeature(st, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, feat.Load(app))
	return app
}

func TestHandleForm(t *testing.T) {
	app := setupTestApp(t, store.NewMemoryStore())

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/html")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `action="/submit"`)
}

func TestHandleForm_InlineNotice(t *testing.T) {
	app := setupTestApp(t, store.NewMemoryStore())

	resp, err := app.Test(httptest.NewRequest("GET", "/?message=name+and+email+are+required", nil))

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "name and email are required")
}

func TestHandleSubmit_Valid(t *testing.T) {
	st := store.NewMemoryStore()
	app := setupTestApp(t, st)

	form := url.Values{}
	form.Set("name", "Ada")
	form.Set("email", "ada@example.com")
	req := httptest.NewRequest("POST", "/submit", strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)

	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 302, resp.StatusCode)
	assert.Equal(t, "/display", resp.Header.Get(fiber.HeaderLocation))

	subs, err := st.LoadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, "Ada", subs[0].Name)
	assert.Equal(t, "ada@example.com", subs[0].Email)
	assert.Empty(t, subs[0].Phone)
	assert.Empty(t, subs[0].Message)
	assert.NotZero(t, subs[0].ID)
	assert.NotEmpty(t, subs[0].CreatedAt)
}

func TestHandleSubmit_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		name string
		form url.Values
	}{
		{"MissingName", url.Values{"email": {"ada@example.com"}}},
		{"MissingEmail", url.Values{"name": {"Ada"}}},
		{"BlankName", url.Values{"name": {"   "}, "email": {"ada@example.com"}}},
		{"Empty", url.Values{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := store.NewMemoryStore()
			app := setupTestApp(t, st)

			req := httptest.NewRequest("POST", "/submit", strings.NewReader(tt.form.Encode()))
			req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)

			resp, err := app.Test(req)

			require.NoError(t, err)
			assert.Equal(t, 302, resp.StatusCode)
			assert.True(t, strings.HasPrefix(resp.Header.Get(fiber.HeaderLocation), "/?message="))

			subs, err := st.LoadAll(context.Background())
			require.NoError(t, err)
			assert.Empty(t, subs, "invalid submissions must not be persisted")
		})
	}
}

func TestHandleSubmit_StoreFailureStillRedirects(t *testing.T) {
	st := new(mocks.Store)
	st.On("LoadAll", mock.Anything).Return([]store.Submission{}, nil)
	st.On("AppendOne", mock.Anything, mock.Anything).Return(assert.AnError)
	app := setupTestApp(t, st)

	form := url.Values{}
	form.Set("name", "Ada")
	form.Set("email", "ada@example.com")
	req := httptest.NewRequest("POST", "/submit", strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)

	resp, err := app.Test(req)

	// The write failure is logged only; the caller still sees success
	require.NoError(t, err)
	assert.Equal(t, 302, resp.StatusCode)
	assert.Equal(t, "/display", resp.Header.Get(fiber.HeaderLocation))
}

func TestHandleDisplay_NewestFirst(t *testing.T) {
	st := store.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, st.AppendOne(ctx, store.Submission{ID: 1, Name: "Ada", Email: "ada@example.com"}))
	require.NoError(t, st.AppendOne(ctx, store.Submission{ID: 2, Name: "Grace", Email: "grace@example.com"}))
	app := setupTestApp(t, st)

	resp, err := app.Test(httptest.NewRequest("GET", "/display", nil))

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	page := string(body)
	assert.Less(t, strings.Index(page, "Grace"), strings.Index(page, "Ada"),
		"the most recent submission must render first")
}

func TestHandleDisplay_LoadFailureRendersNotice(t *testing.T) {
	st := new(mocks.Store)
	st.On("LoadAll", mock.Anything).Return(nil, assert.AnError)
	app := setupTestApp(t, st)

	resp, err := app.Test(httptest.NewRequest("GET", "/display", nil))

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode, "a load failure must not fail the request")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Could not load submissions")
}

func TestHandleAPIData_InsertionOrder(t *testing.T) {
	st := store.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, st.AppendOne(ctx, store.Submission{ID: 1, Name: "Ada", Email: "ada@example.com"}))
	require.NoError(t, st.AppendOne(ctx, store.Submission{ID: 2, Name: "Grace", Email: "grace@example.com"}))
	app := setupTestApp(t, st)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/data", nil))

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var subs []store.Submission
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&subs))
	require.Len(t, subs, 2)
	assert.Equal(t, int64(1), subs[0].ID)
	assert.Equal(t, int64(2), subs[1].ID)
}

func TestHandleAPIData_LoadFailure(t *testing.T) {
	st := new(mocks.Store)
	st.On("LoadAll", mock.Anything).Return(nil, assert.AnError)
	app := setupTestApp(t, st)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/data", nil))

	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body["error"])
}
