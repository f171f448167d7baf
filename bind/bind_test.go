package bind_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dekode "github.com/corefold/dekode"
	"github.com/corefold/dekode/bind"
	g "github.com/corefold/dekode/dsl"
)

type account struct {
	ID     float64 `mapstructure:"id"`
	Name   string  `mapstructure:"name"`
	Active bool    `mapstructure:"active"`
}

func accountDecoder(p *dekode.Policy) dekode.Decoder[account] {
	obj := g.Object(p, g.FieldMap{
		"id":     g.Prop("ID", g.Number(p)),
		"name":   g.Prop("Name", g.String(p)),
		"active": g.Prop("Active", g.Bool(p).WithDefault(false)),
	})
	return bind.Struct[account](p, obj)
}

func TestStruct_BindsDecodedObject(t *testing.T) {
	ctx := context.Background()
	p := dekode.Configure()

	v, err := dekode.DecodeFrom(ctx, accountDecoder(p), dekode.JSONBytes([]byte(`{"ID":"7","Name":"ada","Active":"1"}`)))
	require.NoError(t, err)
	assert.Equal(t, account{ID: 7, Name: "ada", Active: true}, v)
}

func TestStruct_ObjectFailurePropagates(t *testing.T) {
	ctx := context.Background()
	var got []string
	p := dekode.Configure(dekode.WithFailureHook(func(_ context.Context, iss *dekode.Issue) {
		got = append(got, iss.Message)
	}))

	_, err := accountDecoder(p).Decode(ctx, map[string]any{"ID": "x", "Name": "ada"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "property 'id' from raw key 'ID'")

	// the leaf and the object frame reported; bind added nothing
	require.Len(t, got, 2)

	iss, ok := dekode.AsIssue(err)
	require.True(t, ok)
	assert.Equal(t, dekode.CodePropertyFailed, iss.Code)
}

func TestStruct_BindMismatchReports(t *testing.T) {
	ctx := context.Background()
	var got []string
	p := dekode.Configure(dekode.WithFailureHook(func(_ context.Context, iss *dekode.Issue) {
		got = append(got, iss.Message)
	}))

	type narrow struct {
		Count int `mapstructure:"count"`
	}
	obj := g.Object(p, g.FieldMap{
		"count": g.Prop("Count", g.String(p)),
	})
	dec := bind.Struct[narrow](p, obj)

	_, err := dec.Decode(ctx, map[string]any{"Count": "nope"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Struct Decoder:")

	iss, ok := dekode.AsIssue(err)
	require.True(t, ok)
	assert.Equal(t, dekode.CodeBindFailed, iss.Code)
	require.Len(t, got, 1)
}

func TestStruct_NonObjectFollowsObjectRules(t *testing.T) {
	ctx := context.Background()
	p := dekode.Configure()

	_, err := accountDecoder(p).Decode(ctx, 42)
	require.Error(t, err)
	assert.Equal(t, "Object Decoder: Expected raw value to be an object but got: 42.", err.Error())
}
