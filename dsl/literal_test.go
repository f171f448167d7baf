package dsl_test

import (
	"context"
	"encoding/json"
	"testing"

	dekode "github.com/corefold/dekode"
	g "github.com/corefold/dekode/dsl"
)

func TestLiteral_String(t *testing.T) {
	ctx := context.Background()
	var got []string
	p := dekode.Configure(dekode.WithFailureHook(func(_ context.Context, iss *dekode.Issue) {
		got = append(got, iss.Message)
	}))
	lit := g.Literal(p, "yes")

	v, err := lit.Decode(ctx, "yes")
	if err != nil || v != "yes" {
		t.Fatalf("expected yes, got v=%q err=%v", v, err)
	}
	if _, err := lit.Decode(ctx, "no"); err == nil {
		t.Fatalf("expected failure for mismatch")
	}
	if got[0] != "Literal Decoder: Expected raw value to be yes but got: no." {
		t.Fatalf("unexpected message: %q", got[0])
	}
}

// TestLiteral_NumberCoercion checks a numeric literal matches every
// numeric-coercible representation of its value.
func TestLiteral_NumberCoercion(t *testing.T) {
	ctx := context.Background()
	p := dekode.Configure()
	lit := g.Literal(p, 10)

	for _, raw := range []any{10, 10.0, "10", json.Number("10")} {
		v, err := lit.Decode(ctx, raw)
		if err != nil || v != 10 {
			t.Fatalf("expected literal 10 for %#v, got v=%v err=%v", raw, v, err)
		}
	}
	if _, err := lit.Decode(ctx, "11"); err == nil {
		t.Fatalf("expected failure for 11")
	}
	if _, err := lit.Decode(ctx, true); err == nil {
		t.Fatalf("expected failure for bool raw")
	}
}

func TestLiteral_Bool(t *testing.T) {
	ctx := context.Background()
	p := dekode.Configure()
	lit := g.Literal(p, true)

	// coercion-equality: anything in true's truth-table row matches
	for _, raw := range []any{true, "true", 1, "1"} {
		v, err := lit.Decode(ctx, raw)
		if err != nil || v != true {
			t.Fatalf("expected literal true for %#v, got v=%v err=%v", raw, v, err)
		}
	}
	for _, raw := range []any{false, "false", 0, nil, "yep"} {
		if _, err := lit.Decode(ctx, raw); err == nil {
			t.Fatalf("expected failure for %#v", raw)
		}
	}
}

// TestLiteral_YieldsDeclaredValue checks the decoded value is the literal
// itself, not the raw input's coerced form.
func TestLiteral_YieldsDeclaredValue(t *testing.T) {
	ctx := context.Background()
	p := dekode.Configure()

	type Plan string
	lit := g.Literal(p, Plan("pro"))
	v, err := lit.Decode(ctx, "pro")
	if err != nil || v != Plan("pro") {
		t.Fatalf("expected Plan(pro), got v=%v err=%v", v, err)
	}
}

func TestLiteral_WithDefault(t *testing.T) {
	ctx := context.Background()
	calls := 0
	p := dekode.Configure(dekode.WithFailureHook(func(context.Context, *dekode.Issue) { calls++ }))

	v, err := g.Literal(p, "on").WithDefault("off").Decode(ctx, 99)
	if err != nil || v != "off" {
		t.Fatalf("expected default off, got v=%q err=%v", v, err)
	}
	if calls != 0 {
		t.Fatalf("hook must not fire, fired %d times", calls)
	}
}
