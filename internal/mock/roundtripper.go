package mock

import (
	"bytes"
	"io"
	"net/http"
	"sync"
)

// RoundTripper fakes http transport.
// Responses cycle through Statuses and Bodies. If Err is set, every call fails with it.
type RoundTripper struct {
	Statuses []int
	Bodies   [][]byte
	Headers  []http.Header
	Err      error

	Requests []*http.Request

	m sync.Mutex
	i int
}

// RoundTrip fakes executing http request.
func (rt *RoundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	rt.m.Lock()
	defer rt.m.Unlock()

	defer func() {
		rt.i++
	}()
	rt.Requests = append(rt.Requests, r)

	if rt.Err != nil {
		return nil, rt.Err
	}

	status := http.StatusOK
	if len(rt.Statuses) > 0 {
		status = rt.Statuses[rt.i%len(rt.Statuses)]
	}
	var data []byte
	if len(rt.Bodies) > 0 {
		data = rt.Bodies[rt.i%len(rt.Bodies)]
	}

	header := http.Header{}
	if len(rt.Headers) > 0 {
		header = rt.Headers[rt.i%len(rt.Headers)]
	}

	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewReader(data)),
		Header:     header,
		Request:    r,
	}, nil
}

// Calls returns number of RoundTrip calls.
func (rt *RoundTripper) Calls() int {
	rt.m.Lock()
	defer rt.m.Unlock()

	return rt.i
}
