package service

import (
	"context"
	"os"
	"testing"

	"github.com/venman-dev/venman/internal/localstore"
)

func TestInspectAndRepair(t *testing.T) {
	env := testSetup(t)
	ctx := context.Background()

	if err := env.svc.Create(ctx, CreateRequest{Name: "alpha"}); err != nil {
		t.Fatal(err)
	}
	if err := env.store.Append("stale", localstore.Record{Description: "gone"}); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(env.store.EnvPath("orphan"), 0755); err != nil {
		t.Fatal(err)
	}
	if _, err := env.store.BeginIntent(localstore.OpDelete, "stale"); err != nil {
		t.Fatal(err)
	}

	report, err := env.svc.Inspect()
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}
	if len(report.Stale) != 1 || report.Stale[0] != "stale" {
		t.Errorf("Stale = %v, want [stale]", report.Stale)
	}
	if len(report.Unconfigured) != 1 || report.Unconfigured[0] != "orphan" {
		t.Errorf("Unconfigured = %v, want [orphan]", report.Unconfigured)
	}
	if len(report.Pending) != 1 || report.Pending[0].Name != "stale" {
		t.Errorf("Pending = %v", report.Pending)
	}
	if !report.HasChanges() {
		t.Error("HasChanges = false")
	}

	if err := env.svc.Repair(report); err != nil {
		t.Fatalf("Repair: %v", err)
	}

	if _, ok, _ := env.store.Lookup("stale"); ok {
		t.Error("stale record not removed")
	}
	if _, ok, _ := env.store.Lookup("alpha"); !ok {
		t.Error("live record removed")
	}
	if !env.store.EnvExists("orphan") {
		t.Error("unconfigured directory should be left alone")
	}

	report, err = env.svc.Inspect()
	if err != nil {
		t.Fatalf("Inspect after repair: %v", err)
	}
	if report.HasChanges() {
		t.Errorf("report after repair = %+v, want no changes", report)
	}
}

func TestInspectWithoutEnvsDir(t *testing.T) {
	env := testSetup(t)
	if err := env.store.Append("ghost", localstore.Record{}); err != nil {
		t.Fatal(err)
	}

	report, err := env.svc.Inspect()
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}
	if len(report.Stale) != 1 || len(report.Unconfigured) != 0 {
		t.Errorf("report = %+v", report)
	}
}
