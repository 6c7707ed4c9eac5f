package env

import "testing"

func TestDefineGet(t *testing.T) {
	e := New()

	if _, ok := e.Get("x"); ok {
		t.Error("expected x to be undefined")
	}

	e.Define("x", Value{Kind: Number, Raw: "123"})

	val, ok := e.Get("x")
	if !ok {
		t.Fatal("expected x to be defined")
	}

	if val.Kind != Number || val.Raw != "123" {
		t.Errorf("unexpected value %#v", val)
	}
}

func TestRedeclarationOverwrites(t *testing.T) {
	e := New()

	e.Define("x", Value{Kind: Number, Raw: "1"})
	e.Define("x", Value{Kind: String, Raw: "one"})

	val, _ := e.Get("x")
	if val.Kind != String || val.Raw != "one" {
		t.Errorf("expected the latest value, got %#v", val)
	}
}
