package listing

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConstituents(t *testing.T) {
	var warmedUp bool
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		warmedUp = true
		http.SetCookie(w, &http.Cookie{Name: "nseappid", Value: "session-token"})
	})
	mux.HandleFunc("/api/equity-stockIndices", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "NIFTY 500", r.URL.Query().Get("index"))

		// The session cookie from the warm-up request must come back.
		cookie, err := r.Cookie("nseappid")
		require.NoError(t, err)
		require.Equal(t, "session-token", cookie.Value)

		w.Write([]byte(`{"data":[
			{"symbol":"NIFTY 500","meta":{}},
			{"symbol":"RELIANCE","meta":{"companyName":"Reliance Industries Limited"}},
			{"symbol":"TCS","meta":{"companyName":"Tata Consultancy Services Limited"}}
		]}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := NewClient(srv.URL, 0)
	listings, err := c.Constituents(DefaultIndex)
	require.NoError(t, err)
	require.True(t, warmedUp, "landing page must be hit before the API")

	// The bare index row carries no company metadata and is dropped.
	require.Len(t, listings, 2)
	require.Equal(t, "Reliance Industries Limited", listings[0].Company)
	require.Equal(t, "RELIANCE.NS", listings[0].Symbol)
	require.Equal(t, "TCS.NS", listings[1].Symbol)
}

func TestConstituentsRejectedSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" {
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 0)
	_, err := c.Constituents(DefaultIndex)
	require.Error(t, err)
	require.Contains(t, err.Error(), "status 401")
}

func TestConstituentsUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewClient(url, 0)
	_, err := c.Constituents(DefaultIndex)
	require.Error(t, err)
}
