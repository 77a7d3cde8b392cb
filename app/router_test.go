package app

import (
	"context"
	"testing"

	"github.com/supreme2580/QiuckEx/errors"
	"github.com/supreme2580/QiuckEx/quickextest"
	"github.com/supreme2580/QiuckEx/quickextest/assert"
)

func TestRouterSuccess(t *testing.T) {
	r := NewRouter()

	h := &quickextest.Handler{}
	r.Handle("test/good", h)

	tx := &quickextest.Tx{Msg: &quickextest.Msg{RoutePath: "test/good"}}
	ctx := context.Background()

	if _, err := r.Check(ctx, nil, tx); err != nil {
		t.Fatalf("unexpected check error: %+v", err)
	}
	if _, err := r.Deliver(ctx, nil, tx); err != nil {
		t.Fatalf("unexpected deliver error: %+v", err)
	}
	assert.Equal(t, 1, h.CheckCallCount())
	assert.Equal(t, 1, h.DeliverCallCount())
}

func TestRouterNoSuchPath(t *testing.T) {
	r := NewRouter()
	r.Handle("test/good", &quickextest.Handler{})

	tx := &quickextest.Tx{Msg: &quickextest.Msg{RoutePath: "test/missing"}}
	ctx := context.Background()

	if _, err := r.Check(ctx, nil, tx); !errors.ErrNotFound.Is(err) {
		t.Fatalf("want not found, got %+v", err)
	}
	if _, err := r.Deliver(ctx, nil, tx); !errors.ErrNotFound.Is(err) {
		t.Fatalf("want not found, got %+v", err)
	}
}

func TestRouterRegistration(t *testing.T) {
	r := NewRouter()
	h := &quickextest.Handler{}

	r.Handle("test/good", h)

	// re-registering the same path must panic
	assert.Panics(t, func() { r.Handle("test/good", h) })
	// as must invalid paths
	assert.Panics(t, func() { r.Handle("test:bad", h) })
	assert.Panics(t, func() { r.Handle("UPPER/case", h) })
}

func TestRouterBrokenTx(t *testing.T) {
	r := NewRouter()
	r.Handle("test/good", &quickextest.Handler{})

	tx := &quickextest.Tx{Err: errors.ErrState}
	if _, err := r.Check(context.Background(), nil, tx); !errors.ErrState.Is(err) {
		t.Fatalf("want state error, got %+v", err)
	}
}
