package countries_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"orderwizard/internal/adapters/out/countries"
	"orderwizard/internal/adapters/out/httpclient"
	"orderwizard/internal/core/domain/model/kernel"
	"orderwizard/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /v3.1/all", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "name,cca2", r.URL.Query().Get("fields"))
		_, _ = w.Write([]byte(`[
			{"name":{"common":"United States"},"cca2":"US"},
			{"name":{"common":"India"},"cca2":"IN"},
			{"name":{"common":""},"cca2":"XX"}
		]`))
	})
	mux.HandleFunc("GET /v1/countries/{code}/states", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-CSCAPI-KEY") != "key" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"Unauthorized. You shouldn't be here."}`))
			return
		}
		if r.PathValue("code") != "IN" {
			_, _ = w.Write([]byte(`[]`))
			return
		}
		_, _ = w.Write([]byte(`[{"id":1,"name":"Maharashtra","iso2":"MH"},{"id":2,"name":"Delhi","iso2":"DL"}]`))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func directory(server *httptest.Server, key string) *countries.Directory {
	return countries.NewDirectory(
		httpclient.New(httpclient.Config{Service: "countries", BaseURL: server.URL}),
		httpclient.New(httpclient.Config{
			Service: "states",
			BaseURL: server.URL,
			Headers: map[string]string{"X-CSCAPI-KEY": key},
		}),
	)
}

func TestDirectory_Countries_SortedAndCleaned(t *testing.T) {
	server := newServer(t)

	got, err := directory(server, "key").Countries(t.Context())

	require.NoError(t, err)
	assert.Equal(t, []kernel.CodeLabel{
		{Code: "IN", Label: "India"},
		{Code: "US", Label: "United States"},
	}, got)
}

func TestDirectory_States_SortedByName(t *testing.T) {
	server := newServer(t)

	got, err := directory(server, "key").States(t.Context(), "in")

	require.NoError(t, err)
	assert.Equal(t, []kernel.CodeLabel{
		{Code: "DL", Label: "Delhi"},
		{Code: "MH", Label: "Maharashtra"},
	}, got)
}

func TestDirectory_States_UnknownCountryIsEmpty(t *testing.T) {
	server := newServer(t)

	got, err := directory(server, "key").States(t.Context(), "AQ")

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDirectory_States_BadKeyIsRejected(t *testing.T) {
	server := newServer(t)

	_, err := directory(server, "wrong").States(t.Context(), "IN")

	require.ErrorIs(t, err, ports.ErrServiceRejected)
	assert.Contains(t, err.Error(), "Unauthorized")
}
