package placement

import (
	"errors"
	"testing"

	"github.com/tsawler/inlay/model"
)

func TestExplicitAssigner(t *testing.T) {
	regions := []model.PlaceholderRegion{
		{ID: "ph-001", Rect: model.RectMM{X: 10, Y: 10, Width: 80, Height: 60}},
		{ID: "ph-002", Rect: model.RectMM{X: 10, Y: 100, Width: 40, Height: 30}},
	}
	images := []model.ImageAsset{
		{Identifier: "img-a", PixelWidth: 1600, PixelHeight: 1200},
		{Identifier: "img-b", PixelWidth: 800, PixelHeight: 600},
	}

	t.Run("valid mapping", func(t *testing.T) {
		a := NewExplicitAssigner([]Mapping{
			{PlaceholderID: "ph-002", ImageIdentifier: "img-a"},
		})

		got, err := a.Assign(regions, images)
		if err != nil {
			t.Fatalf("Assign() failed: %v", err)
		}
		if len(got.Pairs) != 1 || got.Pairs[0].Placeholder.ID != "ph-002" || got.Pairs[0].Image.Identifier != "img-a" {
			t.Errorf("Pairs = %+v", got.Pairs)
		}
		if len(got.UnmatchedPlaceholders) != 1 || got.UnmatchedPlaceholders[0] != "ph-001" {
			t.Errorf("UnmatchedPlaceholders = %v, want [ph-001]", got.UnmatchedPlaceholders)
		}
		if len(got.UnmatchedImages) != 1 || got.UnmatchedImages[0] != "img-b" {
			t.Errorf("UnmatchedImages = %v, want [img-b]", got.UnmatchedImages)
		}
	})

	t.Run("unknown placeholder", func(t *testing.T) {
		a := NewExplicitAssigner([]Mapping{
			{PlaceholderID: "ph-099", ImageIdentifier: "img-a"},
		})

		_, err := a.Assign(regions, images)
		if !errors.Is(err, ErrUnknownPlaceholder) {
			t.Errorf("error = %v, want ErrUnknownPlaceholder", err)
		}
		var ae *AssignmentError
		if !errors.As(err, &ae) || ae.PlaceholderID != "ph-099" {
			t.Errorf("error should carry the offending placeholder id: %v", err)
		}
	})

	t.Run("unknown image", func(t *testing.T) {
		a := NewExplicitAssigner([]Mapping{
			{PlaceholderID: "ph-001", ImageIdentifier: "img-z"},
		})

		_, err := a.Assign(regions, images)
		if !errors.Is(err, ErrUnknownImage) {
			t.Errorf("error = %v, want ErrUnknownImage", err)
		}
	})
}

func TestAutoAssigner_Ordering(t *testing.T) {
	a := NewAutoAssigner()

	regions := []model.PlaceholderRegion{
		{ID: "ph-b", Rect: model.RectMM{X: 0, Y: 0, Width: 10, Height: 10}},
		{ID: "ph-a", Rect: model.RectMM{X: 0, Y: 0, Width: 10, Height: 10}},
		{ID: "ph-c", Rect: model.RectMM{X: 0, Y: 0, Width: 20, Height: 20}},
	}
	images := []model.ImageAsset{
		{Identifier: "img-2", PixelWidth: 100, PixelHeight: 100},
		{Identifier: "img-1", PixelWidth: 100, PixelHeight: 100},
		{Identifier: "img-3", PixelWidth: 100, PixelHeight: 100},
	}

	got, err := a.Assign(regions, images)
	if err != nil {
		t.Fatalf("Assign() failed: %v", err)
	}

	// Largest area first, then id ascending among the 10x10 tie; images
	// by identifier ascending.
	wantOrder := []struct{ ph, img string }{
		{"ph-c", "img-1"},
		{"ph-a", "img-2"},
		{"ph-b", "img-3"},
	}
	for i, want := range wantOrder {
		if got.Pairs[i].Placeholder.ID != want.ph || got.Pairs[i].Image.Identifier != want.img {
			t.Errorf("pair %d = %s/%s, want %s/%s", i,
				got.Pairs[i].Placeholder.ID, got.Pairs[i].Image.Identifier, want.ph, want.img)
		}
	}
}

func TestAutoAssigner_ExcessImagesIgnored(t *testing.T) {
	a := NewAutoAssigner()

	regions := []model.PlaceholderRegion{
		{ID: "ph-001", Rect: model.RectMM{X: 0, Y: 0, Width: 10, Height: 10}},
	}
	images := []model.ImageAsset{
		{Identifier: "img-1", PixelWidth: 100, PixelHeight: 100},
		{Identifier: "img-2", PixelWidth: 100, PixelHeight: 100},
	}

	got, err := a.Assign(regions, images)
	if err != nil {
		t.Fatalf("Assign() failed: %v", err)
	}
	if len(got.Pairs) != 1 {
		t.Fatalf("got %d pairs, want 1", len(got.Pairs))
	}
	if len(got.UnmatchedImages) != 1 || got.UnmatchedImages[0] != "img-2" {
		t.Errorf("UnmatchedImages = %v, want [img-2]", got.UnmatchedImages)
	}
	if len(got.UnmatchedPlaceholders) != 0 {
		t.Errorf("UnmatchedPlaceholders = %v, want none", got.UnmatchedPlaceholders)
	}
}

func TestMappingsForPage(t *testing.T) {
	mappings := []Mapping{
		{Page: 1, PlaceholderID: "ph-001", ImageIdentifier: "img-a"},
		{Page: 2, PlaceholderID: "ph-002", ImageIdentifier: "img-b"},
		{PlaceholderID: "ph-logo", ImageIdentifier: "img-logo"},
	}

	got := MappingsForPage(mappings, 2)
	if len(got) != 2 {
		t.Fatalf("got %d mappings for page 2, want 2", len(got))
	}
	if got[0].PlaceholderID != "ph-002" || got[1].PlaceholderID != "ph-logo" {
		t.Errorf("page 2 mappings = %+v", got)
	}

	if got := MappingsForPage(mappings, 3); len(got) != 1 || got[0].PlaceholderID != "ph-logo" {
		t.Errorf("page 3 should receive only the page-independent mapping, got %+v", got)
	}
}
