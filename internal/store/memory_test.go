package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fsonmez/windpowerlib/internal/powercurve"
)

func testCurve() powercurve.Curve {
	return powercurve.Curve{
		{WindSpeed: 3, Power: 25000},
		{WindSpeed: 4, Power: 82000},
		{WindSpeed: 5, Power: 174000},
	}
}

func TestMemoryStore_SaveAndGet(t *testing.T) {
	s := NewMemoryStore()
	defer func() { _ = s.Close() }()

	ctx := context.Background()
	saved := TurbineCurve{
		Name:      "E-126/4200",
		Curve:     testCurve(),
		UpdatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	if err := s.Save(ctx, saved); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := s.Get(ctx, "E-126/4200")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Name != saved.Name {
		t.Errorf("name = %q, want %q", got.Name, saved.Name)
	}
	if len(got.Curve) != len(saved.Curve) {
		t.Fatalf("curve length = %d, want %d", len(got.Curve), len(saved.Curve))
	}
	for i := range got.Curve {
		if got.Curve[i] != saved.Curve[i] {
			t.Errorf("point %d = %+v, want %+v", i, got.Curve[i], saved.Curve[i])
		}
	}
	if !got.UpdatedAt.Equal(saved.UpdatedAt) {
		t.Errorf("updated_at = %v, want %v", got.UpdatedAt, saved.UpdatedAt)
	}
}

func TestMemoryStore_GetNotFound(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.Get(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if err := s.Save(ctx, TurbineCurve{Name: "t1", Curve: testCurve()}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	first, _ := s.Get(ctx, "t1")
	first.Curve[0].Power = -1

	second, _ := s.Get(ctx, "t1")
	if second.Curve[0].Power == -1 {
		t.Error("mutating a returned curve should not affect the stored curve")
	}
}

func TestMemoryStore_List(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	for _, name := range []string{"zeta", "alpha", "mid"} {
		if err := s.Save(ctx, TurbineCurve{Name: name, Curve: testCurve()}); err != nil {
			t.Fatalf("Save(%s) failed: %v", name, err)
		}
	}

	names, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	expected := []string{"alpha", "mid", "zeta"}
	if len(names) != len(expected) {
		t.Fatalf("got %d names, want %d", len(names), len(expected))
	}
	for i, name := range expected {
		if names[i] != name {
			t.Errorf("names[%d] = %q, want %q", i, names[i], name)
		}
	}
}

func TestMemoryStore_Delete(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if err := s.Save(ctx, TurbineCurve{Name: "t1", Curve: testCurve()}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if err := s.Delete(ctx, "t1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if _, err := s.Get(ctx, "t1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after Delete: err = %v, want ErrNotFound", err)
	}

	if err := s.Delete(ctx, "t1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete missing: err = %v, want ErrNotFound", err)
	}
}

func TestMemoryStore_SaveOverwrites(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if err := s.Save(ctx, TurbineCurve{Name: "t1", Curve: testCurve()}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	replacement := powercurve.Curve{{WindSpeed: 10, Power: 1000}}
	if err := s.Save(ctx, TurbineCurve{Name: "t1", Curve: replacement}); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	got, err := s.Get(ctx, "t1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if len(got.Curve) != 1 || got.Curve[0].WindSpeed != 10 {
		t.Errorf("curve = %+v, want the replacement curve", got.Curve)
	}
}
