package monitor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kak-tus/fdpowermon/pkg/powerinfo"
	"github.com/kak-tus/fdpowermon/pkg/theme"
	"github.com/kak-tus/fdpowermon/pkg/types"
	"github.com/kak-tus/fdpowermon/pkg/version"
)

func serve(t *testing.T, m *Monitor, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	w := httptest.NewRecorder()
	m.setupRoutes().ServeHTTP(w, req)
	return w
}

func TestGetStatus(t *testing.T) {
	f := newFixture(t)
	f.source.set(75, powerinfo.Charging)
	require.NoError(t, f.monitor.Poll(context.Background()))

	w := serve(t, f.monitor, http.MethodGet, "/status", "")
	require.Equal(t, http.StatusOK, w.Code)

	var s types.Status
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &s))
	assert.True(t, s.Valid)
	assert.Equal(t, float64(75), s.Level)
	assert.Equal(t, "charging", s.Direction)
	assert.Equal(t, icon("battery-charging-080.png"), s.Icon)
}

func TestGetThemes(t *testing.T) {
	f := newFixture(t)
	f.registry.Register(theme.Builtin(), "other")

	w := serve(t, f.monitor, http.MethodGet, "/themes", "")
	require.Equal(t, http.StatusOK, w.Code)

	var themes []types.ThemeInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &themes))
	require.Len(t, themes, 2)
	assert.Equal(t, theme.BuiltinName, themes[0].Name)
	assert.Equal(t, "other", themes[1].Name)
}

func TestSetDefaultTheme(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode int
		wantName string
	}{
		{"registered", `"other"`, http.StatusCreated, "other"},
		{"not registered", `"nope"`, http.StatusNotFound, theme.BuiltinName},
		{"not a string", `{"name":"other"}`, http.StatusBadRequest, theme.BuiltinName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.registry.Register(theme.Builtin(), "other")

			w := serve(t, f.monitor, http.MethodPut, "/default-theme", tt.body)
			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, tt.wantName, f.registry.DefaultName())
		})
	}
}

func TestGetVersion(t *testing.T) {
	f := newFixture(t)

	w := serve(t, f.monitor, http.MethodGet, "/version", "")
	require.Equal(t, http.StatusOK, w.Code)

	var v string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	assert.Equal(t, version.Version, v)
}
