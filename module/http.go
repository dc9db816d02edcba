package module

import (
	"net/http"
	"net/netip"
	"time"
)

// Request is the request half of a Duplex.
type Request struct {
	Version string
	Method  string
	URI     string
	Headers http.Header
	Body    []byte
}

func NewRequest(version, method, uri string) *Request {
	return &Request{
		Version: version,
		Method:  method,
		URI:     uri,
		Headers: http.Header{},
	}
}

func (r *Request) String() string {
	if r == nil {
		return "<no request>"
	}
	return r.Method + " " + r.URI
}

// Response is the response half of a Duplex. Its setters return the
// response so calls can be chained.
type Response struct {
	Version string
	Status  int
	Reason  string
	Headers http.Header
	Body    []byte
}

// NewResponse returns an empty response answering req, which may be nil.
func NewResponse(req *Request) *Response {
	resp := &Response{Headers: http.Header{}}
	if req != nil {
		resp.Version = req.Version
	}
	return resp
}

func (r *Response) SetStatus(code int, reason string) *Response {
	r.Status = code
	r.Reason = reason
	return r
}

func (r *Response) AddHeader(name, value string) *Response {
	r.Headers.Add(name, value)
	return r
}

func (r *Response) AddHeaders(name string, values ...string) *Response {
	for _, v := range values {
		r.Headers.Add(name, v)
	}
	return r
}

func (r *Response) RemoveHeader(name string) *Response {
	r.Headers.Del(name)
	return r
}

func (r *Response) SetBody(body string) *Response {
	r.Body = []byte(body)
	return r
}

func (r *Response) AppendBody(body string) *Response {
	r.Body = append(r.Body, body...)
	return r
}

// NetInfo describes the client connection a request arrived on.
type NetInfo struct {
	Time  time.Time
	Start time.Time
	IP    netip.Addr
	Port  uint16
}

// Duplex carries one request and the response being built for it through
// a chain of modules.
type Duplex struct {
	Req  *Request
	Resp *Response
	Info NetInfo
}

func NewDuplex(req *Request, info NetInfo) *Duplex {
	return &Duplex{
		Req:  req,
		Resp: NewResponse(req),
		Info: info,
	}
}
