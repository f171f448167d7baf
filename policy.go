package dekode

import (
	"context"
	"time"
)

// Policy is the immutable error policy shared by a family of decoders. It is
// captured at construction time by every decoder built against it and is
// never mutated afterwards, so one Policy may serve any number of decoders
// across goroutines.
//
// The failure hook is the only side effect a decoder performs. It observes
// every failed, non-defaulted decode exactly once at each decoder level: a
// leaf reports its own issue, and a combinator wrapping that failure reports
// the framed issue as it propagates. Whether or not a hook is installed, a
// strict failure is also returned as the decode error.
type Policy struct {
	hook func(ctx context.Context, iss *Issue)
	log  Logger
	loc  *time.Location
}

// Option configures a Policy under construction.
type Option func(*Policy)

// WithFailureHook installs fn as the failure observer.
func WithFailureHook(fn func(ctx context.Context, iss *Issue)) Option {
	return func(p *Policy) { p.hook = fn }
}

// WithLogger routes a debug line for every reported failure to l.
func WithLogger(l Logger) Option {
	return func(p *Policy) { p.log = l }
}

// WithDateLocation sets the location in which date decoders construct their
// results. Defaults to time.Local.
func WithDateLocation(loc *time.Location) Option {
	return func(p *Policy) { p.loc = loc }
}

// Configure builds an immutable Policy. With no options, failures surface
// only as returned errors.
func Configure(opts ...Option) *Policy {
	p := &Policy{}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	return p
}

// Configure derives an independent Policy from p with opts applied on top.
// Decoders already built against p are unaffected.
func (p *Policy) Configure(opts ...Option) *Policy {
	np := &Policy{}
	if p != nil {
		*np = *p
	}
	for _, opt := range opts {
		if opt != nil {
			opt(np)
		}
	}
	return np
}

// DateLocation returns the location date decoders build results in.
func (p *Policy) DateLocation() *time.Location {
	if p == nil || p.loc == nil {
		return time.Local
	}
	return p.loc
}

// report delivers one failed decode to the logger and hook. Safe on nil p.
func (p *Policy) report(ctx context.Context, iss *Issue) {
	if p == nil {
		return
	}
	if p.log != nil {
		p.log.Debug("decode failed", Fields{"kind": iss.Kind, "code": iss.Code, "message": iss.Message})
	}
	if p.hook != nil {
		p.hook(ctx, iss)
	}
}

// Resolve settles a failed validity check: a declared fallback is returned
// as a successful result without touching the policy; otherwise the issue is
// reported once and returned as the error alongside the zero value.
//
// Every decoder funnels its failures through here so that strict-vs-default
// behavior stays uniform across leaves and combinators.
func Resolve[T any](ctx context.Context, p *Policy, fb Fallback[T], iss *Issue) (T, error) {
	if v, ok := fb.Value(); ok {
		return v, nil
	}
	p.report(ctx, iss)
	var zero T
	return zero, iss
}
