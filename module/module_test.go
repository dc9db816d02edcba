package module

import (
	"context"
	"errors"
	"net/netip"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signadot/zconf/flat"
	"github.com/signadot/zconf/ir"
)

type greeter struct {
	Base
}

func (g *greeter) Exec(d *Duplex) error {
	msg, err := g.Conf().GetPath("$.greeting")
	if err != nil {
		return err
	}
	s, err := msg.Str()
	if err != nil {
		return err
	}
	d.Resp.SetStatus(200, "OK").AppendBody(s)
	if g.Enabled("shout") {
		d.Resp.AppendBody("!")
	}
	return nil
}

func testDuplex() *Duplex {
	req := NewRequest("HTTP/1.1", "GET", "/hello")
	return NewDuplex(req, NetInfo{
		Time:  time.Unix(0, 0),
		Start: time.Unix(0, 0),
		IP:    netip.MustParseAddr("127.0.0.1"),
		Port:  8080,
	})
}

func TestChain(t *testing.T) {
	conf := flat.FromMap(map[string]flat.Value{
		"greeting": flat.FromString("hello"),
		"shout":    flat.FromBool(true),
	})
	var order []string
	tagger := Func(func(d *Duplex) error {
		order = append(order, "tag")
		d.Resp.AddHeader("X-Module", "tagger")
		return nil
	})
	chain, err := NewChain(conf, &greeter{}, tagger)
	require.NoError(t, err)
	assert.Equal(t, 2, chain.Len())

	d := testDuplex()
	require.NoError(t, chain.Run(context.Background(), d))
	assert.Equal(t, 200, d.Resp.Status)
	assert.Equal(t, "OK", d.Resp.Reason)
	assert.Equal(t, "hello!", string(d.Resp.Body))
	assert.Equal(t, "HTTP/1.1", d.Resp.Version)
	assert.Equal(t, "tagger", d.Resp.Headers.Get("X-Module"))
	assert.Equal(t, []string{"tag"}, order)
}

func TestChainConfigError(t *testing.T) {
	_, err := NewChain(flat.FromInt(1), &greeter{})
	assert.ErrorIs(t, err, ir.ErrWrongShape)
}

func TestChainExecError(t *testing.T) {
	chain, err := NewChain(flat.FromMap(nil), &greeter{})
	require.NoError(t, err)
	err = chain.Run(context.Background(), testDuplex())
	assert.ErrorIs(t, err, ir.ErrKeyNotFound)

	chain, err = NewChain(flat.FromMap(map[string]flat.Value{"greeting": flat.FromInt(1)}), &greeter{})
	require.NoError(t, err)
	err = chain.Run(context.Background(), testDuplex())
	assert.ErrorIs(t, err, ir.ErrTypeMismatch)
}

func TestChainStops(t *testing.T) {
	errBoom := errors.New("boom")
	ran := 0
	count := Func(func(*Duplex) error { ran++; return nil })
	fail := Func(func(*Duplex) error { return errBoom })
	chain, err := NewChain(flat.FromMap(nil), count, fail, count)
	require.NoError(t, err)
	err = chain.Run(context.Background(), testDuplex())
	assert.ErrorIs(t, err, errBoom)
	assert.Equal(t, 1, ran)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ran = 0
	err = chain.Run(ctx, testDuplex())
	assert.ErrorIs(t, err, ErrAborted)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, ran)
}

func TestBaseUnconfigured(t *testing.T) {
	var b Base
	assert.Equal(t, ir.MapType, b.Conf().Type())
	assert.False(t, b.Enabled("anything"))
}

func TestResponseHeaders(t *testing.T) {
	resp := NewResponse(NewRequest("HTTP/1.0", "GET", "/"))
	resp.AddHeaders("Vary", "Accept", "Origin").
		AddHeader("Server", "zconf").
		RemoveHeader("Server").
		SetBody("a").
		AppendBody("b")
	assert.Equal(t, []string{"Accept", "Origin"}, resp.Headers.Values("Vary"))
	assert.Empty(t, resp.Headers.Get("Server"))
	assert.Equal(t, "ab", string(resp.Body))
	assert.Equal(t, "HTTP/1.0", resp.Version)
}

func TestChainNilRequest(t *testing.T) {
	var req *Request
	assert.Equal(t, "<no request>", req.String())
	assert.Equal(t, "GET /hello", testDuplex().Req.String())

	d := NewDuplex(nil, NetInfo{})
	assert.Empty(t, d.Resp.Version)
	chain, err := NewChain(flat.FromMap(nil), Func(func(d *Duplex) error {
		d.Resp.SetStatus(204, "No Content")
		return nil
	}))
	require.NoError(t, err)
	require.NoError(t, chain.Run(context.Background(), d))
	assert.Equal(t, 204, d.Resp.Status)
}
