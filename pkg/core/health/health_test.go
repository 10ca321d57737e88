package health

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func TestStatus_Constants(t *testing.T) {
	if StatusHealthy != "healthy" {
		t.Errorf("StatusHealthy = %v, want healthy", StatusHealthy)
	}
	if StatusUnhealthy != "unhealthy" {
		t.Errorf("StatusUnhealthy = %v, want unhealthy", StatusUnhealthy)
	}
	if StatusDegraded != "degraded" {
		t.Errorf("StatusDegraded = %v, want degraded", StatusDegraded)
	}
}

func TestNewChecker(t *testing.T) {
	checker := NewChecker("settings-store", func(ctx context.Context) CheckResult {
		return CheckResult{Status: StatusHealthy, Message: "opened"}
	})

	if checker.Name() != "settings-store" {
		t.Errorf("Name() = %v, want settings-store", checker.Name())
	}

	result := checker.Check(context.Background())
	if result.Status != StatusHealthy || result.Message != "opened" {
		t.Errorf("Check() = %+v, want healthy/opened", result)
	}
}

func TestCheckFunc(t *testing.T) {
	fn := CheckFunc(func(ctx context.Context) CheckResult {
		return CheckResult{Status: StatusHealthy}
	})

	if fn.Name() != "unknown" {
		t.Errorf("Name() = %v, want unknown", fn.Name())
	}
	if fn.Check(context.Background()).Status != StatusHealthy {
		t.Error("Check() should be healthy")
	}
}

func TestRegistry_RegisterAndCheck(t *testing.T) {
	registry := NewRegistry("chronos", "1.0.0")

	registry.Register(NewChecker("store", func(ctx context.Context) CheckResult {
		return CheckResult{Status: StatusHealthy}
	}))
	registry.Register(NewChecker("config", func(ctx context.Context) CheckResult {
		return CheckResult{Status: StatusHealthy}
	}))

	report := registry.Check(context.Background())

	if report.Component != "chronos" {
		t.Errorf("Component = %v, want chronos", report.Component)
	}
	if report.Version != "1.0.0" {
		t.Errorf("Version = %v, want 1.0.0", report.Version)
	}
	if !report.Healthy() {
		t.Errorf("Status = %v, want healthy", report.Status)
	}
	if len(report.Checks) != 2 {
		t.Fatalf("Checks count = %v, want 2", len(report.Checks))
	}
	if report.Checks[0].Name != "config" || report.Checks[1].Name != "store" {
		t.Errorf("Checks order = %s, %s, want config, store", report.Checks[0].Name, report.Checks[1].Name)
	}
}

func TestRegistry_Unregister(t *testing.T) {
	registry := NewRegistry("chronos", "1.0.0")
	registry.RegisterFunc("temp", func(ctx context.Context) CheckResult {
		return CheckResult{Status: StatusHealthy}
	})

	if n := len(registry.Check(context.Background()).Checks); n != 1 {
		t.Errorf("Before unregister: Checks count = %v, want 1", n)
	}

	registry.Unregister("temp")

	if n := len(registry.Check(context.Background()).Checks); n != 0 {
		t.Errorf("After unregister: Checks count = %v, want 0", n)
	}
}

func TestRegistry_OverallStatus(t *testing.T) {
	tests := []struct {
		name     string
		statuses []Status
		want     Status
	}{
		{"all healthy", []Status{StatusHealthy, StatusHealthy}, StatusHealthy},
		{"one degraded", []Status{StatusHealthy, StatusDegraded}, StatusDegraded},
		{"unhealthy wins", []Status{StatusDegraded, StatusUnhealthy, StatusHealthy}, StatusUnhealthy},
		{"no checks", nil, StatusHealthy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := NewRegistry("chronos", "1.0.0")
			for i, s := range tt.statuses {
				status := s
				registry.RegisterFunc(string(rune('a'+i)), func(ctx context.Context) CheckResult {
					return CheckResult{Status: status}
				})
			}

			if got := registry.CheckWithTimeout(5 * time.Second).Status; got != tt.want {
				t.Errorf("Status = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRegistry_ConcurrentChecks(t *testing.T) {
	registry := NewRegistry("chronos", "1.0.0")

	var counter int32
	for i := 0; i < 5; i++ {
		registry.RegisterFunc("check"+string(rune('A'+i)), func(ctx context.Context) CheckResult {
			atomic.AddInt32(&counter, 1)
			time.Sleep(10 * time.Millisecond)
			return CheckResult{Status: StatusHealthy}
		})
	}

	start := time.Now()
	report := registry.Check(context.Background())
	duration := time.Since(start)

	if atomic.LoadInt32(&counter) != 5 {
		t.Errorf("Counter = %v, want 5", counter)
	}
	if duration > 100*time.Millisecond {
		t.Errorf("Duration = %v, expected concurrent execution", duration)
	}
	if len(report.Checks) != 5 {
		t.Errorf("Checks count = %v, want 5", len(report.Checks))
	}
}

func TestReport_String(t *testing.T) {
	report := &Report{
		Component: "chronos",
		Status:    StatusHealthy,
		Checks:    []CheckResult{{}, {}},
	}

	if got := report.String(); !strings.Contains(got, "chronos") || !strings.Contains(got, "Checks: 2") {
		t.Errorf("String() = %v", got)
	}
}

func TestFileCheck(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "doc.chronos")
	if err := os.WriteFile(existing, []byte("- [2020] A"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	tests := []struct {
		name     string
		path     string
		optional bool
		want     Status
	}{
		{"readable file", existing, false, StatusHealthy},
		{"missing optional", filepath.Join(dir, "none"), true, StatusDegraded},
		{"missing required", filepath.Join(dir, "none"), false, StatusUnhealthy},
		{"directory", dir, false, StatusUnhealthy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FileCheck("file", tt.path, tt.optional).Check(context.Background())
			if result.Status != tt.want {
				t.Errorf("Status = %v, want %v (%s)", result.Status, tt.want, result.Message)
			}
			if result.Details["path"] != tt.path {
				t.Errorf("Details[path] = %v, want %v", result.Details["path"], tt.path)
			}
		})
	}
}

func TestWritableDirCheck(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data", "chronos")

	result := WritableDirCheck("data-dir", dir).Check(context.Background())
	if result.Status != StatusHealthy {
		t.Errorf("Status = %v, want healthy (%s)", result.Status, result.Message)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("probe file left behind: %d entries", len(entries))
	}
}
