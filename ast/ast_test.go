// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package ast_test

import (
	"testing"

	"github.com/creachadair/jnav/ast"
	"github.com/google/go-cmp/cmp"
)

func TestString(t *testing.T) {
	tests := []struct {
		input ast.Value
		want  string
	}{
		{ast.Null, "Null"},

		{ast.Bool(false), "false"},
		{ast.Bool(true), "true"},

		{ast.String(""), `""`},
		{ast.String("a b"), `"a b"`},
		{ast.String(`a "b" \n`), `"a "b" \n"`}, // not escaped

		{ast.Number(0), `0`},
		{ast.Number(15), `15`},
		{ast.Number(-25), `-25`},
		{ast.Number(3.14), `3.14`},
		{ast.Number(-0.00239), `-0.00239`},

		{ast.Array{}, `[]`},
		{ast.Array{ast.Bool(false)}, "[\n    false,\n]"},
		{ast.Array{
			ast.Bool(true),
			ast.Number(199),
		}, "[\n    true,\n    199,\n]"},

		{ast.Object{}, `{}`},
		{ast.Object{
			ast.Field("xs", ast.Null),
		}, "{\n    xs : Null,\n}"},
		{ast.Object{
			ast.Field("name", ast.String("Dennis")),
			ast.Field("age", ast.Number(37)),
		}, "{\n    name : \"Dennis\",\n    age : 37,\n}"},

		{ast.Object{
			ast.Field("values", ast.Array{
				ast.Number(5),
				ast.Object{ast.Field("ok", ast.Bool(true))},
				ast.Array{},
			}),
			ast.Field("page", ast.Object{
				ast.Field("token", ast.String("xyz-pdq-zvm")),
			}),
		}, `{
    values : [
        5,
        {
            ok : true,
        },
        [],
    ],
    page : {
        token : "xyz-pdq-zvm",
    },
}`},
	}
	for _, test := range tests {
		if got := test.input.String(); got != test.want {
			t.Errorf("Input: %#v\nGot:\n%s\nWant:\n%s", test.input, got, test.want)
		}
	}
}

func TestJSON(t *testing.T) {
	tests := []struct {
		input ast.Value
		want  string
	}{
		{ast.Null, "null"},
		{ast.Bool(true), "true"},
		{ast.Number(-6.5), "-6.5"},
		{ast.String("a\tb"), `"a\tb"`},
		{ast.String(`say "hi"`), `"say \"hi\""`},
		{ast.Array{}, `[]`},
		{ast.Object{}, `{}`},
		{ast.Array{
			ast.String("free"),
			ast.String("your"),
			ast.String("mind"),
		}, `["free","your","mind"]`},
		{ast.Object{
			ast.Field("values", ast.Array{ast.Number(5), ast.Number(10), ast.Bool(true)}),
			ast.Field("page", ast.Object{
				ast.Field("token", ast.String("xyz-pdq-zvm")),
				ast.Field("count", ast.Number(100)),
				ast.Field(`odd"key`, ast.Null),
			}),
		}, `{"values":[5,10,true],"page":{"token":"xyz-pdq-zvm","count":100,"odd\"key":null}}`},
	}
	for _, test := range tests {
		if got := test.input.JSON(); got != test.want {
			t.Errorf("Input: %#v\nGot:  %s\nWant: %s", test.input, got, test.want)
		}
	}
}

func TestIndex(t *testing.T) {
	doc := ast.Object{
		ast.Field("a", ast.Number(1)),
		ast.Field("list", ast.Array{ast.String("x"), ast.Bool(true)}),
		ast.Field("a", ast.Number(2)),
	}
	if len(doc) != 3 {
		t.Fatalf("Object has %d members, want 3", len(doc))
	}

	tests := []struct {
		name string
		got  ast.Value
		want ast.Value
	}{
		{"KeyFirstMatch", doc.Key("a"), ast.Number(1)},
		{"KeyArray", doc.Key("list"), ast.Array{ast.String("x"), ast.Bool(true)}},
		{"KeyMissing", doc.Key("nonesuch"), ast.Null},
		{"KeyEmpty", doc.Key(""), ast.Null},
		{"ArrayIndex", doc.Key("list").Index(1), ast.Bool(true)},
		{"ArrayRange", doc.Key("list").Index(2), ast.Null},
		{"ArrayNegative", doc.Key("list").Index(-1), ast.Null},

		{"IndexObject", doc.Index(0), ast.Null},
		{"KeyArrayValue", doc.Key("list").Key("a"), ast.Null},
		{"KeyString", ast.String("a").Key("a"), ast.Null},
		{"IndexString", ast.String("abc").Index(0), ast.Null},
		{"KeyNumber", ast.Number(1).Key("1"), ast.Null},
		{"IndexNumber", ast.Number(1).Index(0), ast.Null},
		{"KeyBool", ast.Bool(true).Key("true"), ast.Null},
		{"IndexBool", ast.Bool(false).Index(0), ast.Null},
		{"KeyNull", ast.Null.Key("a"), ast.Null},
		{"IndexNull", ast.Null.Index(0), ast.Null},

		{"Chain", doc.Key("x").Index(3).Key("y").Index(0), ast.Null},
		{"EmptyArray", ast.Array{}.Index(0), ast.Null},
		{"NilArray", ast.Array(nil).Index(0), ast.Null},
		{"NilObject", ast.Object(nil).Key(""), ast.Null},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, tc.got); diff != "" {
				t.Errorf("Wrong result (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestFind(t *testing.T) {
	obj := ast.Object{
		ast.Field("p", ast.Bool(true)),
		ast.Field("q", ast.Bool(false)),
		ast.Field("p", ast.Null),
	}
	if n := obj.Find("p"); n != &obj[0] {
		t.Errorf("Find(p): got %v, want first member", n)
	}
	if n := obj.Find("q"); n == nil || n.Value != ast.Bool(false) {
		t.Errorf("Find(q): got %v, want q : false", n)
	}
	if n := obj.Find("r"); n != nil {
		t.Errorf("Find(r): got %v, want nil", n)
	}
	if got, want := obj.Len(), 3; got != want {
		t.Errorf("Len: got %d, want %d", got, want)
	}
}
