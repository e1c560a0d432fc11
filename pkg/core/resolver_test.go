package core_test

import (
	"reflect"
	"testing"

	"github.com/aretw0/steering/pkg/core"
)

func newTestResolver(t *testing.T) (*core.Registry, *core.Resolver) {
	t.Helper()
	r, err := core.NewRegistry([]core.Entry{blocEntry(), routerEntry()})
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}
	return r, core.NewResolver(r)
}

func TestResolve_ManualTrigger(t *testing.T) {
	_, rv := newTestResolver(t)

	got := rv.Resolve(core.RequestContext{Signal: "how do I emit a new state"}, core.NewLoadedSet())
	want := []string{"bloc-state"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestResolve_AutoTrigger(t *testing.T) {
	_, rv := newTestResolver(t)

	got := rv.Resolve(core.RequestContext{
		Signal:         "",
		WorkspacePaths: []string{"lib/features/auth/auth_cubit.dart"},
	}, core.NewLoadedSet())
	want := []string{"bloc-state"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestResolve_ManualTieBreak(t *testing.T) {
	_, rv := newTestResolver(t)

	// Both documents matched manually: lexical order by id.
	got := rv.Resolve(core.RequestContext{Signal: "cubit and routes"}, core.NewLoadedSet())
	want := []string{"bloc-state", "gorouter-navigation"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestResolve_AlreadyLoadedSuppression(t *testing.T) {
	_, rv := newTestResolver(t)

	loaded := core.NewLoadedSet("bloc-state")
	got := rv.Resolve(core.RequestContext{Signal: "emit state"}, loaded)
	if len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}

func TestResolve_NoMatches(t *testing.T) {
	_, rv := newTestResolver(t)

	got := rv.Resolve(core.RequestContext{
		Signal:         "unrelated topic",
		WorkspacePaths: []string{"README.md"},
	}, core.NewLoadedSet())
	if len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}

func TestResolve_AutoPrecedesManual(t *testing.T) {
	// Pick ids so the auto-triggered document sorts after the manual one
	// lexically; the ordering law must still put it first.
	r2, err := core.NewRegistry([]core.Entry{
		core.NewEntry("aaa-style", "aaa.md", []string{"style"}, nil),
		core.NewEntry("zzz-testing", "zzz.md", []string{"testing"}, []string{"*_test.dart"}),
	})
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}
	got := core.NewResolver(r2).Resolve(core.RequestContext{
		Signal:         "style",
		WorkspacePaths: []string{"test/auth_test.dart"},
	}, core.NewLoadedSet())
	want := []string{"zzz-testing", "aaa-style"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected auto before manual: want %v, got %v", want, got)
	}
}

func TestResolve_BothTriggersCountOnce(t *testing.T) {
	_, rv := newTestResolver(t)

	got := rv.Resolve(core.RequestContext{
		Signal:         "emit state from my cubit",
		WorkspacePaths: []string{"lib/features/auth/auth_cubit.dart"},
	}, core.NewLoadedSet())
	want := []string{"bloc-state"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestResolve_Deterministic(t *testing.T) {
	_, rv := newTestResolver(t)

	rctx := core.RequestContext{
		Signal:         "cubit routes",
		WorkspacePaths: []string{"lib/app_state.dart"},
	}
	loaded := core.NewLoadedSet()

	first := rv.Resolve(rctx, loaded)
	for i := 0; i < 10; i++ {
		if got := rv.Resolve(rctx, loaded); !reflect.DeepEqual(got, first) {
			t.Fatalf("resolve is not deterministic: %v vs %v", first, got)
		}
	}
}

func TestResolve_NeverMutatesLoadedSet(t *testing.T) {
	_, rv := newTestResolver(t)

	loaded := core.NewLoadedSet("gorouter-navigation")
	rv.Resolve(core.RequestContext{Signal: "cubit routes"}, loaded)

	if loaded.Len() != 1 || !loaded.Has("gorouter-navigation") {
		t.Errorf("resolver mutated the loaded set: %v", loaded.IDs())
	}
}

func TestResolve_OnlyCatalogIDs(t *testing.T) {
	reg, rv := newTestResolver(t)

	got := rv.Resolve(core.RequestContext{
		Signal:         "state cubit bloc emit routes navigation gorouter",
		WorkspacePaths: []string{"lib/a_state.dart", "README.md"},
	}, core.NewLoadedSet())

	for _, id := range got {
		if _, ok := reg.Entry(id); !ok {
			t.Errorf("resolve returned id not in catalog: %q", id)
		}
	}
}

func TestResolve_NilLoadedSet(t *testing.T) {
	_, rv := newTestResolver(t)

	got := rv.Resolve(core.RequestContext{Signal: "emit"}, nil)
	if len(got) != 1 || got[0] != "bloc-state" {
		t.Errorf("expected [bloc-state] with nil loaded set, got %v", got)
	}
}

func TestResolve_StandaloneSignature(t *testing.T) {
	reg, _ := newTestResolver(t)

	got := core.Resolve(reg, "emit state", nil, []string{"bloc-state"})
	if len(got) != 0 {
		t.Errorf("expected suppression through standalone form, got %v", got)
	}

	got = core.Resolve(reg, "", []string{"lib/auth_bloc.dart"}, nil)
	if len(got) != 1 || got[0] != "bloc-state" {
		t.Errorf("expected [bloc-state], got %v", got)
	}
}
