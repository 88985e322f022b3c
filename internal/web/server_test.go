package web_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/leighmacdonald/fpl-form/internal/fpl"
	"github.com/leighmacdonald/fpl-form/internal/session"
	"github.com/leighmacdonald/fpl-form/internal/web"
	"github.com/stretchr/testify/require"
)

const upstreamBody = `{
  "elements": [
    {"web_name": "A", "form": "5.0", "now_cost": 50, "element_type": 1, "team": 1, "status": "a",
     "goals_scored": 0, "assists": 0, "minutes": 90, "transfers_in_event": 1500, "transfers_out_event": 2, "news": ""},
    {"web_name": "B", "form": "9.0", "now_cost": 140, "element_type": 2, "team": 2, "status": "i",
     "goals_scored": 3, "assists": 1, "minutes": 450, "transfers_in_event": 10, "transfers_out_event": 25000,
     "news": "Ankle injury - 75% chance of playing"},
    {"web_name": "<script>alert(1)</script>", "form": "1.0", "now_cost": 45, "element_type": 3, "team": 1,
     "status": "s", "news": "Suspended until 12 Oct"}
  ],
  "teams": [{"id": 2, "name": "ClubY"}, {"id": 1, "name": "ClubX"}]
}`

type testEnv struct {
	server   *httptest.Server
	requests *atomic.Int32
}

func newEnv(t *testing.T, status int, body string) testEnv {
	t.Helper()

	requests := &atomic.Int32{}
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requests.Add(1)
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(upstream.Close)

	registry := session.NewRegistry(fpl.New(fpl.NewHTTPClient(time.Second), upstream.URL), time.Minute)
	server := httptest.NewServer(web.New(registry, 5*time.Second))
	t.Cleanup(server.Close)

	return testEnv{server: server, requests: requests}
}

func get(t *testing.T, url string, cookies ...*http.Cookie) (*http.Response, string) {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, string(body)
}

func sessionCookie(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()

	for _, cookie := range resp.Cookies() {
		if cookie.Name == web.SessionCookie {
			return cookie
		}
	}
	require.FailNow(t, "session cookie not set")

	return nil
}

func TestDashboard(t *testing.T) {
	env := newEnv(t, http.StatusOK, upstreamBody)

	resp, body := get(t, env.server.URL+"/")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	sessionCookie(t, resp)

	require.Contains(t, body, "FPL Form Tracker")
	require.Contains(t, body, "Top Players by Form")
	require.Contains(t, body, "<th>Price (£m)</th>")
	require.Contains(t, body, "<th>Transfers Out (GW)</th>")

	// Ordered by form, highest first.
	posB := strings.Index(body, "<td>B</td>")
	posA := strings.Index(body, "<td>A</td>")
	require.Positive(t, posB)
	require.Positive(t, posA)
	require.Less(t, posB, posA)

	require.Contains(t, body, `<tr class="row-injured"><td>1</td><td>B</td>`)
	require.Contains(t, body, `<tr class="row-none"><td>2</td><td>A</td>`)
	require.Contains(t, body, `<tr class="row-suspended"><td>3</td>`)
	require.Contains(t, body, "background-color:#FFCCCC")
	require.Contains(t, body, "<td>£5.0</td>")
	require.Contains(t, body, "<td>£14.0</td>")
	require.Contains(t, body, "<td>25,000</td>")
	require.Contains(t, body, "Ankle injury - 75% chance of playing")

	require.NotContains(t, body, "<script>alert(1)</script>")
	require.Contains(t, body, "&lt;script&gt;alert(1)&lt;/script&gt;")

	// Controls and defaults.
	require.Contains(t, body, `<option value="All" selected>All</option><option value="Goalkeeper">Goalkeeper</option>`)
	require.Contains(t, body, `<option value="All" selected>All</option><option value="ClubX">ClubX</option><option value="ClubY">ClubY</option>`)
	require.Contains(t, body, `min="4.0" max="15.0" step="0.1" value="15.0"`)
}

func TestDashboardFiltersReuseSession(t *testing.T) {
	env := newEnv(t, http.StatusOK, upstreamBody)

	resp, _ := get(t, env.server.URL+"/")
	cookie := sessionCookie(t, resp)

	resp, body := get(t, env.server.URL+"/?max_price=5.0", cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, body, `<tr class="row-none"><td>1</td><td>A</td>`)
	require.NotContains(t, body, "<td>B</td>")
	require.Contains(t, body, `value="5.0"`)

	_, body = get(t, env.server.URL+"/?position=Defender&club=ClubY", cookie)
	require.Contains(t, body, "<td>B</td>")
	require.NotContains(t, body, "<td>A</td>")
	require.Contains(t, body, `<option value="Defender" selected>Defender</option>`)
	require.Contains(t, body, `<option value="ClubY" selected>ClubY</option>`)

	_, body = get(t, env.server.URL+"/?position=Forward", cookie)
	require.Contains(t, body, "No players match the selected filters.")
	require.NotContains(t, body, "<table>")

	require.EqualValues(t, 1, env.requests.Load(), "filtering must not refetch")
}

func TestDashboardPriceBounds(t *testing.T) {
	env := newEnv(t, http.StatusOK, upstreamBody)

	for query, want := range map[string]string{
		"?max_price=99":    `value="15.0"`,
		"?max_price=1":     `value="4.0"`,
		"?max_price=lots":  `value="15.0"`,
		"?max_price=7.25":  `value="7.3"`,
		"?max_price=10.00": `value="10.0"`,
		// Huge exponents are rejected before any arithmetic.
		"?max_price=1e50000000":  `value="15.0"`,
		"?max_price=1e999999999": `value="15.0"`,
		"?max_price=1e-99999":    `value="15.0"`,
	} {
		resp, body := get(t, env.server.URL+"/"+query)
		require.Equal(t, http.StatusOK, resp.StatusCode, query)
		require.Contains(t, body, want, query)
	}
}

func TestDashboardFetchError(t *testing.T) {
	for name, tc := range map[string]struct {
		status int
		body   string
	}{
		"malformed":   {status: http.StatusOK, body: `{"elements": [`},
		"status":      {status: http.StatusServiceUnavailable, body: "updating"},
		"missing key": {status: http.StatusOK, body: `{"elements": []}`},
	} {
		t.Run(name, func(t *testing.T) {
			env := newEnv(t, tc.status, tc.body)

			resp, body := get(t, env.server.URL+"/")
			require.Equal(t, http.StatusBadGateway, resp.StatusCode)
			require.Contains(t, body, `role="alert"`)
			require.Contains(t, body, "Could not load player data")
			require.NotContains(t, body, "<table")
			require.NotContains(t, body, "<form")
			for _, cookie := range resp.Cookies() {
				require.NotEqual(t, web.SessionCookie, cookie.Name)
			}

			// No session is stored, a reload tries the upstream again.
			_, _ = get(t, env.server.URL+"/")
			require.EqualValues(t, 2, env.requests.Load())
		})
	}
}

func TestDashboardUnknownSession(t *testing.T) {
	env := newEnv(t, http.StatusOK, upstreamBody)

	resp, _ := get(t, env.server.URL+"/", &http.Cookie{Name: web.SessionCookie, Value: "stale"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEqual(t, "stale", sessionCookie(t, resp).Value)
}

func TestHealth(t *testing.T) {
	env := newEnv(t, http.StatusOK, upstreamBody)

	resp, body := get(t, env.server.URL+"/healthz")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.JSONEq(t, `{"status":"healthy"}`, body)
	require.Zero(t, env.requests.Load())
}
