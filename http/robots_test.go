package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitesmith"
	sshttp "sitesmith/http"
)

func TestRobotsService_FetchRuleset(t *testing.T) {
	t.Parallel()

	t.Run("fetches and parses robots.txt", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/robots.txt", r.URL.Path)
			_, _ = w.Write([]byte("User-agent: *\nDisallow: /admin\nDisallow: /private\n"))
		}))
		defer server.Close()

		service := sshttp.NewRobotsService()
		ruleset, err := service.FetchRuleset(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, []string{"/admin", "/private"}, ruleset.Disallowed)
	})

	t.Run("missing robots.txt yields empty ruleset", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		service := sshttp.NewRobotsService()
		ruleset, err := service.FetchRuleset(context.Background(), server.URL)
		require.NoError(t, err)
		assert.True(t, ruleset.Empty())
	})

	t.Run("transport failure returns error", func(t *testing.T) {
		t.Parallel()

		service := sshttp.NewRobotsService()
		_, err := service.FetchRuleset(context.Background(), "http://non-existent-host.invalid")
		require.Error(t, err)
		assert.Equal(t, sitesmith.EUNAVAILABLE, sitesmith.ErrorCode(err))
	})
}

func TestParseRuleset(t *testing.T) {
	t.Parallel()

	t.Run("captures wildcard agent rules", func(t *testing.T) {
		t.Parallel()

		ruleset := sshttp.ParseRuleset(strings.NewReader(
			"User-agent: *\nDisallow: /admin\n\nUser-agent: googlebot\nDisallow: /secret\n"))
		assert.Equal(t, []string{"/admin"}, ruleset.Disallowed)
	})

	t.Run("captures rules addressed to this crawler", func(t *testing.T) {
		t.Parallel()

		ruleset := sshttp.ParseRuleset(strings.NewReader(
			"User-agent: sitesmith\nDisallow: /internal\n"))
		assert.Equal(t, []string{"/internal"}, ruleset.Disallowed)
	})

	t.Run("ignores other agents and empty disallows", func(t *testing.T) {
		t.Parallel()

		ruleset := sshttp.ParseRuleset(strings.NewReader(
			"User-agent: googlebot\nDisallow: /secret\n\nUser-agent: *\nDisallow:\n"))
		assert.True(t, ruleset.Empty())
	})

	t.Run("is case insensitive", func(t *testing.T) {
		t.Parallel()

		ruleset := sshttp.ParseRuleset(strings.NewReader(
			"USER-AGENT: *\nDISALLOW: /Admin\n"))
		assert.Equal(t, []string{"/admin"}, ruleset.Disallowed)
	})
}
