package dsl_test

import (
	"context"
	"testing"
	"time"

	dekode "github.com/corefold/dekode"
	g "github.com/corefold/dekode/dsl"
)

func TestDate_DateOnly(t *testing.T) {
	ctx := context.Background()
	p := dekode.Configure(dekode.WithDateLocation(time.UTC))

	v, err := g.Date(p).Decode(ctx, "2024-03-09")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := time.Date(2024, time.March, 9, 0, 0, 0, 0, time.UTC)
	if !v.Equal(want) {
		t.Fatalf("expected %v, got %v", want, v)
	}
}

// TestDate_TimeOfDayDiscarded checks that every accepted datetime form
// collapses to midnight of its date part.
func TestDate_TimeOfDayDiscarded(t *testing.T) {
	ctx := context.Background()
	p := dekode.Configure(dekode.WithDateLocation(time.UTC))
	d := g.Date(p)

	want := time.Date(2024, time.March, 9, 0, 0, 0, 0, time.UTC)
	for _, raw := range []string{
		"2024-03-09T15:04:05",
		"2024-03-09 15:04:05",
		"2024-03-09T15:04:05Z",
		"2024-03-09T15:04:05.123Z",
		"2024-03-09T15:04:05+09:00",
		"2024-03-09T15:04:05.999999-05:00",
	} {
		v, err := d.Decode(ctx, raw)
		if err != nil {
			t.Fatalf("unexpected err for %q: %v", raw, err)
		}
		if !v.Equal(want) {
			t.Fatalf("%q: expected %v, got %v", raw, want, v)
		}
	}
}

func TestDate_PolicyLocation(t *testing.T) {
	ctx := context.Background()
	tokyo := time.FixedZone("UTC+9", 9*60*60)
	p := dekode.Configure(dekode.WithDateLocation(tokyo))

	v, err := g.Date(p).Decode(ctx, "2024-01-01")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if v.Location() != tokyo {
		t.Fatalf("expected policy location, got %v", v.Location())
	}
	if h, m, s := v.Clock(); h != 0 || m != 0 || s != 0 {
		t.Fatalf("expected midnight, got %02d:%02d:%02d", h, m, s)
	}
}

func TestDate_RejectsOtherForms(t *testing.T) {
	ctx := context.Background()
	var got []string
	p := dekode.Configure(dekode.WithFailureHook(func(_ context.Context, iss *dekode.Issue) {
		got = append(got, iss.Message)
	}))
	d := g.Date(p)

	for _, raw := range []any{
		"2024/03/09",
		"2024-3-9",
		"2024-03-09T15:04", // seconds are required once a time appears
		"20240309",
		20240309,
		nil,
	} {
		if _, err := d.Decode(ctx, raw); err == nil {
			t.Fatalf("expected failure for %#v", raw)
		}
	}
	if got[0] != "Date Decoder: Expected raw value to be an ISO-8601 date but got: 2024/03/09." {
		t.Fatalf("unexpected message: %q", got[0])
	}
	if len(got) != 6 {
		t.Fatalf("expected one hook call per failure, got %d", len(got))
	}
}

// TestDate_ComponentNormalization documents that out-of-range components
// roll over the way time.Date rolls them.
func TestDate_ComponentNormalization(t *testing.T) {
	ctx := context.Background()
	p := dekode.Configure(dekode.WithDateLocation(time.UTC))

	v, err := g.Date(p).Decode(ctx, "2024-13-01")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	if !v.Equal(want) {
		t.Fatalf("expected rollover to %v, got %v", want, v)
	}
}

func TestDate_WithDefault(t *testing.T) {
	ctx := context.Background()
	calls := 0
	p := dekode.Configure(dekode.WithFailureHook(func(context.Context, *dekode.Issue) { calls++ }))

	fallback := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	v, err := g.Date(p).WithDefault(fallback).Decode(ctx, "not a date")
	if err != nil || !v.Equal(fallback) {
		t.Fatalf("expected fallback date, got v=%v err=%v", v, err)
	}
	if calls != 0 {
		t.Fatalf("hook must not fire, fired %d times", calls)
	}
}
