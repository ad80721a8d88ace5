package observability

import (
	"context"
	"errors"
	"testing"
)

func TestNopTracer(t *testing.T) {
	tracer := NopTracer()
	ctx := context.Background()
	ctx2, span := tracer.StartSpan(ctx, "test")
	if ctx2 != ctx {
		t.Fatalf("nop tracer should return same context")
	}
	span.SetTag("key", "value")
	span.SetError(nil)
	span.Finish()
}

func TestFieldConstructors(t *testing.T) {
	err := errors.New("boom")
	cases := []struct {
		field Field
		key   string
		value interface{}
	}{
		{String("stage", "recognizing"), "stage", "recognizing"},
		{Int("items", 3), "items", 3},
		{Float64("confidence", 87.5), "confidence", 87.5},
		{Error("err", err), "err", err},
	}
	for _, c := range cases {
		if c.field.Key() != c.key {
			t.Fatalf("unexpected key: %s", c.field.Key())
		}
		if c.field.Value() != c.value {
			t.Fatalf("unexpected value for %s: %v", c.key, c.field.Value())
		}
	}
}
