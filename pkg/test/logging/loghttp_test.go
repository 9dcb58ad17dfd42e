package logging

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransport_bodiesStayReadable(t *testing.T) {
	assert := assert.New(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.Write([]byte("echo " + string(body)))
	}))
	defer srv.Close()

	var requested, responded string
	client := &http.Client{Transport: &Transport{
		LogRequest: func(req *http.Request) {
			requested = req.Method
			DefaultLogRequest(req)
		},
		LogResponse: func(resp *http.Response) {
			responded = resp.Status
			DefaultLogResponse(resp)
		},
	}}

	resp, err := client.Post(srv.URL, "text/plain", strings.NewReader("1//2"))
	assert.NoError(err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	assert.NoError(err)

	assert.Equal("echo 1//2", string(body))
	assert.Equal(http.MethodPost, requested)
	assert.Equal("200 OK", responded)
}

func TestNewClient(t *testing.T) {
	assert := assert.New(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	resp, err := NewClient().Get(srv.URL)
	assert.NoError(err)
	defer resp.Body.Close()
	assert.Equal(http.StatusTeapot, resp.StatusCode)
}
