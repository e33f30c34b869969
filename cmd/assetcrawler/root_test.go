package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assetcrawler/internal/crawler"
	"assetcrawler/internal/models"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCmd_ArgCount(t *testing.T) {
	for _, args := range [][]string{nil, {"https://a.com", "https://b.com"}} {
		out, err := execute(t, args...)
		assert.ErrorIs(t, err, errArgCount)
		assert.Empty(t, out)
	}
}

func TestRootCmd_InvalidFlags(t *testing.T) {
	_, err := execute(t, "--timeout", "0s", "https://a.com")
	assert.ErrorIs(t, err, models.ErrInvalidTimeout)
}

func TestRootCmd_Crawl(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = io.WriteString(w, `<html><body><img src="/a.png"><a href="/">self</a></body></html>`)
	}))
	defer srv.Close()

	out, err := execute(t, srv.URL+"/")
	require.NoError(t, err)

	var got []models.PageRecord
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, []models.PageRecord{{URL: srv.URL + "/", Assets: []string{srv.URL + "/a.png"}}}, got)
}

func TestRootCmd_UnreachableStart(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	out, err := execute(t, srv.URL)
	assert.ErrorIs(t, err, crawler.ErrStartUnreachable)
	assert.Empty(t, out)
}

func TestGetVersion(t *testing.T) {
	version = "v1.2.3"
	defer func() { version = "" }()
	assert.Equal(t, "v1.2.3", getVersion())
}
