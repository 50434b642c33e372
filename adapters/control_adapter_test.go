package adapters_test

import (
	"testing"

	"github.com/momentics/hioload-threads/adapters"
	"github.com/momentics/hioload-threads/api"
)

func TestControlAdapterBasic(t *testing.T) {
	ctrl := adapters.NewControlAdapter()
	cfg := ctrl.GetConfig()
	if len(cfg) != 0 {
		t.Error("Expected empty config on init")
	}
	err := ctrl.SetConfig(map[string]any{"k": 1})
	if err != nil {
		t.Fatal(err)
	}
	if got := ctrl.GetConfig()["k"]; got != 1 {
		t.Error("SetConfig did not apply")
	}
	called := false
	ctrl.OnReload(func() { called = true })
	if err := ctrl.SetConfig(map[string]any{"x": 2}); err != nil {
		t.Fatal(err)
	}
	if !called {
		t.Error("Reload hook not called")
	}
}

// Probes registered through the narrow api.Debug contract must surface in
// the full control Stats view, and vice versa.
func TestControlAdapterDebugContract(t *testing.T) {
	ctrl := adapters.NewControlAdapter()

	var dbg api.Debug = ctrl.GetDebug()
	dbg.RegisterProbe("narrow", func() any { return 7 })
	ctrl.RegisterDebugProbe("wide", func() any { return "w" })

	state := dbg.DumpState()
	if state["narrow"] != 7 {
		t.Errorf("probe via Debug contract: got %v, want 7", state["narrow"])
	}
	if state["wide"] != "w" {
		t.Error("probe registered via Control not visible through Debug")
	}
	if got := ctrl.Stats()["debug.narrow"]; got != 7 {
		t.Errorf("Debug-registered probe not merged into Stats: %v", got)
	}
}

func TestControlAdapterStats(t *testing.T) {
	ctrl := adapters.NewControlAdapter()
	ctrl.SetMetric("threads.peak", 4)
	ctrl.AddMetric("threads.started", 2)
	ctrl.AddMetric("threads.started", 3)
	ctrl.RegisterDebugProbe("custom", func() any { return "ok" })

	stats := ctrl.Stats()
	if stats["threads.peak"] != 4 {
		t.Error("metric not exported via Stats")
	}
	if stats["threads.started"] != int64(5) {
		t.Errorf("counter not accumulated: %v", stats["threads.started"])
	}
	if stats["debug.custom"] != "ok" {
		t.Error("debug probe not merged into Stats")
	}
	if _, ok := stats["debug.runtime.cpus"]; !ok {
		t.Error("runtime probes not registered")
	}
}
