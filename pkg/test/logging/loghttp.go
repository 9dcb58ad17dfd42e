// Package logging provides an http.RoundTripper for tests that logs every exchange with the
// component logger "httpclient", so failing HTTP tests show what went over the wire when the
// component level is debug.
//
// based on https://github.com/motemen/go-loghttp/blob/master/loghttp.go
package logging

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/abstratium-informatique-sarl/mtypes/pkg/logging"
)

// Transport logs requests and responses around an inner RoundTripper. No field is mandatory.
type Transport struct {
	Transport   http.RoundTripper
	LogRequest  func(req *http.Request)
	LogResponse func(resp *http.Response)
}

type contextKey struct {
	name string
}

var contextKeyRequestStart = &contextKey{"RequestStart"}

// NewClient returns a client that logs through a Transport wrapping http.DefaultTransport.
func NewClient() *http.Client {
	return &http.Client{Transport: &Transport{}, Timeout: 10 * time.Second}
}

// DefaultLogRequest logs the request line, headers and body, and leaves the body readable.
func DefaultLogRequest(req *http.Request) {
	log := logging.GetLog("httpclient")
	log.Debug().Str("method", req.Method).Stringer("url", req.URL).Msg("-->")
	for k, v := range req.Header {
		if k == "Authorization" {
			v = []string{"hidden"}
		}
		log.Debug().Strs(k, v).Msg("    > header")
	}
	if req.Body != nil {
		body := drain(&req.Body)
		log.Debug().Bytes("body", body).Msg("    >")
	}
}

// DefaultLogResponse logs the status, elapsed time, headers and body, and leaves the body readable.
func DefaultLogResponse(resp *http.Response) {
	log := logging.GetLog("httpclient")
	e := log.Debug().Int("status", resp.StatusCode).Stringer("url", resp.Request.URL)
	if start, ok := resp.Request.Context().Value(contextKeyRequestStart).(time.Time); ok {
		e = e.Dur("elapsed", time.Since(start))
	}
	e.Msg("<--")
	for k, v := range resp.Header {
		log.Debug().Strs(k, v).Msg("    < header")
	}
	if resp.Body != nil {
		body := drain(&resp.Body)
		log.Debug().Bytes("body", body).Msg("    <")
	}
}

// reads the whole body and replaces it with a fresh reader over the same bytes
func drain(body *io.ReadCloser) []byte {
	data, err := io.ReadAll(*body)
	if err != nil {
		log := logging.GetLog("httpclient")
		log.Warn().Err(err).Msg("reading body")
	}
	(*body).Close()
	*body = io.NopCloser(bytes.NewReader(data))
	return data
}

// RoundTrip implements http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := context.WithValue(req.Context(), contextKeyRequestStart, time.Now())
	req = req.WithContext(ctx)

	if t.LogRequest != nil {
		t.LogRequest(req)
	} else {
		DefaultLogRequest(req)
	}

	resp, err := t.transport().RoundTrip(req)
	if err != nil {
		return resp, err
	}

	if t.LogResponse != nil {
		t.LogResponse(resp)
	} else {
		DefaultLogResponse(resp)
	}
	return resp, nil
}

func (t *Transport) transport() http.RoundTripper {
	if t.Transport != nil {
		return t.Transport
	}
	return http.DefaultTransport
}
