package inventory

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/tsawler/inlay/model"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}

func TestAddAndGet(t *testing.T) {
	inv := New()

	if err := inv.Add(model.ImageAsset{Identifier: "img-001.jpg", PixelWidth: 1600, PixelHeight: 1200}); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}

	got, ok := inv.Get("img-001.jpg")
	if !ok {
		t.Fatal("Get() did not find the asset")
	}
	if got.PixelWidth != 1600 || got.PixelHeight != 1200 {
		t.Errorf("asset = %+v", got)
	}

	if _, ok := inv.Get("missing.jpg"); ok {
		t.Error("Get() found an asset that was never added")
	}
}

func TestAdd_Rejects(t *testing.T) {
	inv := New()

	if err := inv.Add(model.ImageAsset{Identifier: "zero.jpg", PixelWidth: 0, PixelHeight: 100}); err == nil {
		t.Error("Add() should reject zero-width assets")
	}

	if err := inv.Add(model.ImageAsset{Identifier: "dup.jpg", PixelWidth: 10, PixelHeight: 10}); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}
	if err := inv.Add(model.ImageAsset{Identifier: "dup.jpg", PixelWidth: 20, PixelHeight: 20}); err == nil {
		t.Error("Add() should reject duplicate identifiers")
	}
}

func TestIdentifierNormalization(t *testing.T) {
	inv := New()

	// "café.jpg" in NFD (decomposed e + combining acute).
	nfd := "café.jpg"
	// The same name in NFC (precomposed é).
	nfc := "café.jpg"

	if err := inv.Add(model.ImageAsset{Identifier: nfd, PixelWidth: 100, PixelHeight: 100}); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}

	if _, ok := inv.Get(nfc); !ok {
		t.Error("NFC lookup should find the NFD-added asset")
	}
	if _, ok := inv.Get(nfd); !ok {
		t.Error("NFD lookup should find the asset too")
	}

	// Both spellings are the same asset, so the second Add must
	// collide.
	if err := inv.Add(model.ImageAsset{Identifier: nfc, PixelWidth: 100, PixelHeight: 100}); err == nil {
		t.Error("adding the NFC spelling of an existing NFD name should collide")
	}
}

func TestAssets_Sorted(t *testing.T) {
	inv := New()
	for _, id := range []string{"photo-c.jpg", "photo-a.jpg", "photo-b.jpg"} {
		if err := inv.Add(model.ImageAsset{Identifier: id, PixelWidth: 10, PixelHeight: 10}); err != nil {
			t.Fatalf("Add(%s) failed: %v", id, err)
		}
	}

	assets := inv.Assets()
	want := []string{"photo-a.jpg", "photo-b.jpg", "photo-c.jpg"}
	for i, id := range want {
		if assets[i].Identifier != id {
			t.Errorf("Assets()[%d] = %q, want %q", i, assets[i].Identifier, id)
		}
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "img-001.png"), 1600, 1200)
	writePNG(t, filepath.Join(dir, "img-002.png"), 800, 600)

	// Non-image files are ignored.
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}

	inv, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir() failed: %v", err)
	}
	if inv.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", inv.Len())
	}

	got, ok := inv.Get("img-001.png")
	if !ok {
		t.Fatal("img-001.png not loaded")
	}
	if got.PixelWidth != 1600 || got.PixelHeight != 1200 {
		t.Errorf("img-001.png = %dx%d, want 1600x1200", got.PixelWidth, got.PixelHeight)
	}
}

func TestLoadDir_Corrupt(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "broken.jpg"), []byte("not a jpeg"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadDir(dir); err == nil {
		t.Error("LoadDir() should fail on an undecodable image file")
	}
}
