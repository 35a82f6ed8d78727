package registry

import (
	"reflect"
	"testing"

	mdwerror "github.com/msto63/pier/foundation/core/error"
)

func newTestRegistry(t *testing.T, scripts ...Script) *Registry {
	t.Helper()
	r := New(Options{})
	for _, s := range scripts {
		if err := r.Add(s, false); err != nil {
			t.Fatalf("setup Add(%q) error = %v", s.Alias, err)
		}
	}
	return r
}

func sampleScripts() []Script {
	return []Script{
		{Alias: "test_cmd_1", Command: "echo test_1", Tags: []string{"echo", "test"}},
		{Alias: "test_cmd_2", Command: "echo test_2", Tags: []string{"echo"}},
		{Alias: "deploy", Command: "make deploy", Description: "ship it", Reference: "https://example.com", Tags: []string{"ops", "prod"}},
	}
}

func assertCode(t *testing.T, err error, code mdwerror.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("error = nil, want %s", code)
	}
	if !mdwerror.HasCode(err, code) {
		t.Fatalf("error = %v (code %s), want %s", err, mdwerror.GetCode(err), code)
	}
}

func TestEmptyRegistry_NoScriptsExists(t *testing.T) {
	r := New(Options{})

	for _, alias := range []string{"", "anything"} {
		_, err := r.Fetch(alias)
		assertCode(t, err, mdwerror.CodeNoScriptsExists)

		assertCode(t, r.Remove(alias), mdwerror.CodeNoScriptsExists)
		assertCode(t, r.Move(alias, "other", false), mdwerror.CodeNoScriptsExists)
	}

	listCases := []ListOptions{
		{},
		{Query: "x"},
		{Tags: []string{"a"}},
		{Tags: []string{"a", "b"}, MatchAll: true},
	}
	for _, opts := range listCases {
		_, err := r.List(opts)
		assertCode(t, err, mdwerror.CodeNoScriptsExists)
	}
}

func TestAliasNotFound(t *testing.T) {
	r := newTestRegistry(t, sampleScripts()...)

	_, err := r.Fetch("non_existant")
	assertCode(t, err, mdwerror.CodeAliasNotFound)

	assertCode(t, r.Remove("non_existant"), mdwerror.CodeAliasNotFound)
	assertCode(t, r.Move("non_existant", "x", true), mdwerror.CodeAliasNotFound)

	_, err = r.Fetch("")
	assertCode(t, err, mdwerror.CodeAliasNotFound)

	if r.Len() != 3 {
		t.Errorf("Len() = %d, want 3", r.Len())
	}
}

func TestAdd(t *testing.T) {
	r := newTestRegistry(t, sampleScripts()[0])

	err := r.Add(Script{Alias: "test_cmd_1", Command: "echo something else"}, false)
	assertCode(t, err, mdwerror.CodeAliasAlreadyExists)

	got, _ := r.Fetch("test_cmd_1")
	if got.Command != "echo test_1" {
		t.Errorf("Command = %q after rejected add, want %q", got.Command, "echo test_1")
	}

	if err := r.Add(Script{Alias: "test_cmd_1", Command: "echo something else"}, true); err != nil {
		t.Fatalf("Add(overwrite) error = %v", err)
	}
	got, _ = r.Fetch("test_cmd_1")
	if got.Command != "echo something else" {
		t.Errorf("Command = %q after overwrite, want %q", got.Command, "echo something else")
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d after overwrite, want 1", r.Len())
	}
}

func TestAdd_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		script Script
	}{
		{"empty alias", Script{Alias: "", Command: "echo"}},
		{"blank alias", Script{Alias: "  ", Command: "echo"}},
		{"empty command", Script{Alias: "a", Command: ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(Options{})
			assertCode(t, r.Add(tt.script, true), mdwerror.CodeInvalidInput)
			if r.Len() != 0 {
				t.Errorf("Len() = %d after invalid add, want 0", r.Len())
			}
		})
	}
}

func TestAdd_OverwriteKeepsPosition(t *testing.T) {
	r := newTestRegistry(t, sampleScripts()...)

	if err := r.Add(Script{Alias: "test_cmd_1", Command: "true"}, true); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	want := []string{"test_cmd_1", "test_cmd_2", "deploy"}
	if got := r.Aliases(); !reflect.DeepEqual(got, want) {
		t.Errorf("Aliases() = %v, want %v", got, want)
	}
}

func TestFetch_ReturnsCopy(t *testing.T) {
	r := newTestRegistry(t, sampleScripts()...)

	got, err := r.Fetch("deploy")
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	got.Tags[0] = "mutated"
	got.Command = "rm -rf /"

	again, _ := r.Fetch("deploy")
	if again.Command != "make deploy" || again.Tags[0] != "ops" {
		t.Errorf("registry changed through fetched copy: %+v", again)
	}
	if again.Reference != "https://example.com" || again.Description != "ship it" {
		t.Errorf("metadata lost: %+v", again)
	}
}

func TestRemove(t *testing.T) {
	r := newTestRegistry(t, sampleScripts()...)

	if err := r.Remove("test_cmd_2"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}

	_, err := r.Fetch("test_cmd_2")
	assertCode(t, err, mdwerror.CodeAliasNotFound)

	want := []string{"test_cmd_1", "deploy"}
	if got := r.Aliases(); !reflect.DeepEqual(got, want) {
		t.Errorf("Aliases() = %v, want %v", got, want)
	}

	_ = r.Remove("test_cmd_1")
	_ = r.Remove("deploy")
	_, err = r.Fetch("deploy")
	assertCode(t, err, mdwerror.CodeNoScriptsExists)
}

func TestMove(t *testing.T) {
	r := newTestRegistry(t, sampleScripts()...)

	if err := r.Move("test_cmd_1", "renamed", false); err != nil {
		t.Fatalf("Move() error = %v", err)
	}

	got, err := r.Fetch("renamed")
	if err != nil {
		t.Fatalf("Fetch(renamed) error = %v", err)
	}
	if got.Alias != "renamed" {
		t.Errorf("Alias = %q, want renamed", got.Alias)
	}
	if got.Command != "echo test_1" || !reflect.DeepEqual(got.Tags, []string{"echo", "test"}) {
		t.Errorf("moved script lost fields: %+v", got)
	}

	_, err = r.Fetch("test_cmd_1")
	assertCode(t, err, mdwerror.CodeAliasNotFound)

	want := []string{"renamed", "test_cmd_2", "deploy"}
	if got := r.Aliases(); !reflect.DeepEqual(got, want) {
		t.Errorf("Aliases() = %v, want %v", got, want)
	}
}

func TestMove_AliasAlreadyExists(t *testing.T) {
	r := newTestRegistry(t, sampleScripts()...)
	before := r.Scripts()

	err := r.Move("test_cmd_1", "test_cmd_2", false)
	assertCode(t, err, mdwerror.CodeAliasAlreadyExists)

	got, err := r.Fetch("test_cmd_1")
	if err != nil {
		t.Fatalf("Fetch(test_cmd_1) error = %v", err)
	}
	if got.Command != "echo test_1" || got.Alias != "test_cmd_1" {
		t.Errorf("source changed after rejected move: %+v", got)
	}
	if after := r.Scripts(); !reflect.DeepEqual(before, after) {
		t.Errorf("registry changed after rejected move:\nbefore %+v\nafter  %+v", before, after)
	}
}

func TestMove_Overwrite(t *testing.T) {
	r := newTestRegistry(t, sampleScripts()...)

	if err := r.Move("deploy", "test_cmd_1", true); err != nil {
		t.Fatalf("Move() error = %v", err)
	}

	got, _ := r.Fetch("test_cmd_1")
	if got.Command != "make deploy" || got.Alias != "test_cmd_1" {
		t.Errorf("destination = %+v, want moved deploy script", got)
	}

	_, err := r.Fetch("deploy")
	assertCode(t, err, mdwerror.CodeAliasNotFound)

	want := []string{"test_cmd_1", "test_cmd_2"}
	if got := r.Aliases(); !reflect.DeepEqual(got, want) {
		t.Errorf("Aliases() = %v, want %v", got, want)
	}
}

func TestMove_SameAliasAndBlankTarget(t *testing.T) {
	r := newTestRegistry(t, sampleScripts()...)

	if err := r.Move("deploy", "deploy", false); err != nil {
		t.Errorf("Move(same) error = %v, want nil", err)
	}
	assertCode(t, r.Move("deploy", " ", true), mdwerror.CodeInvalidInput)

	if _, err := r.Fetch("deploy"); err != nil {
		t.Errorf("Fetch(deploy) error = %v", err)
	}
}

func TestList(t *testing.T) {
	r := newTestRegistry(t, sampleScripts()...)

	tests := []struct {
		name string
		opts ListOptions
		want []string
	}{
		{"no filters", ListOptions{}, []string{"test_cmd_1", "test_cmd_2", "deploy"}},
		{"query", ListOptions{Query: "cmd"}, []string{"test_cmd_1", "test_cmd_2"}},
		{"query is case sensitive", ListOptions{Query: "CMD"}, []string{}},
		{"single tag", ListOptions{Tags: []string{"echo"}}, []string{"test_cmd_1", "test_cmd_2"}},
		{"any of", ListOptions{Tags: []string{"test", "prod"}}, []string{"test_cmd_1", "deploy"}},
		{"all of", ListOptions{Tags: []string{"echo", "test"}, MatchAll: true}, []string{"test_cmd_1"}},
		{"all of no match", ListOptions{Tags: []string{"echo", "prod"}, MatchAll: true}, []string{}},
		{"query and tag", ListOptions{Query: "2", Tags: []string{"echo"}}, []string{"test_cmd_2"}},
		{"unknown tag", ListOptions{Tags: []string{"nope"}}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scripts, err := r.List(tt.opts)
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}
			got := make([]string, 0, len(scripts))
			for _, s := range scripts {
				got = append(got, s.Alias)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("List() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTags(t *testing.T) {
	r := newTestRegistry(t, sampleScripts()...)

	want := []string{"echo", "ops", "prod", "test"}
	if got := r.Tags(); !reflect.DeepEqual(got, want) {
		t.Errorf("Tags() = %v, want %v", got, want)
	}
}

func TestScript_HasTag(t *testing.T) {
	s := Script{Alias: "a", Command: "b", Tags: []string{"x"}}
	if !s.HasTag("x") || s.HasTag("y") {
		t.Errorf("HasTag() wrong for %v", s.Tags)
	}
}
