package service

import (
	"context"
	"errors"
	"physics_master_backend/internal/repository"
	"testing"

	"gorm.io/gorm"
)

func newMaterialService(t *testing.T) *MaterialService {
	t.Helper()
	db := newTestDB(t)
	return NewMaterialService(repository.NewMaterialRepository(db), NewStorageService(testConfig()), nil)
}

func TestMaterialList_SubjectFilter(t *testing.T) {
	svc := newMaterialService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, &MaterialCreateRequest{Title: "kinematics notes", Subject: "physics", FileURL: "https://example.com/kinematics.pdf"}, nil); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.Create(ctx, &MaterialCreateRequest{Title: "grammar guide", Subject: "tamil", FileURL: "https://example.com/grammar.pdf"}, nil); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	all, err := svc.List(ctx, "")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 materials, got=%d", len(all))
	}

	physics, err := svc.List(ctx, "physics")
	if err != nil {
		t.Fatalf("filtered list failed: %v", err)
	}
	if len(physics) != 1 || physics[0].Title != "kinematics notes" {
		t.Fatalf("expected only the physics material, got=%+v", physics)
	}

	none, err := svc.List(ctx, "chemistry")
	if err != nil {
		t.Fatalf("filtered list failed: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no materials for unknown subject, got=%d", len(none))
	}
}

func TestMaterialCreate_Defaults(t *testing.T) {
	svc := newMaterialService(t)

	m, err := svc.Create(context.Background(), &MaterialCreateRequest{Title: "syllabus", FileURL: "https://example.com/syllabus.pdf"}, nil)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if m.FileType != "pdf" || m.Subject != "general" {
		t.Fatalf("expected pdf/general defaults, got=%+v", m)
	}
}

func TestMaterialDelete_NotFound(t *testing.T) {
	svc := newMaterialService(t)

	err := svc.Delete(context.Background(), "missing")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got=%v", err)
	}
}
