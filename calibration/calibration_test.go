package calibration

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tsawler/inlay/model"
)

func samplePlacements() []model.PlacementTransform {
	return []model.PlacementTransform{
		{
			PlaceholderID:   "ph-001",
			ImageIdentifier: "img-001",
			TargetRect:      model.RectMM{X: 20, Y: 40, Width: 80, Height: 60},
			ScaleFactor:     0.59,
			CropRectPx:      model.RectPx{X: 0, Y: 0, Width: 1600, Height: 1200},
			Policy:          model.PolicyFill,
		},
		{
			PlaceholderID:   "ph-002",
			ImageIdentifier: "img-002",
			TargetRect:      model.RectMM{X: 110, Y: 150, Width: 60, Height: 80},
			ScaleFactor:     0.75,
			CropRectPx:      model.RectPx{X: 10, Y: 0, Width: 900, Height: 1200},
			Policy:          model.PolicyFill,
		},
	}
}

func TestApply_Profile(t *testing.T) {
	profile := &Profile{
		PrinterID:    "hp-envy",
		PaperType:    "A4",
		ScaleFactorX: 0.98,
		ScaleFactorY: 0.99,
		OffsetMM:     Offset{X: 2.0, Y: 1.5},
	}

	input := samplePlacements()
	result, err := Apply(input, profile)
	if err != nil {
		t.Fatalf("Apply() failed: %v", err)
	}

	if !result.Calibrated {
		t.Error("Calibrated = false, want true")
	}

	got := result.Placements[0].TargetRect
	want := model.RectMM{
		X:      20*0.98 + 2.0, // 21.6
		Y:      40*0.99 + 1.5, // 41.1
		Width:  80 * 0.98,     // 78.4
		Height: 60 * 0.99,     // 59.4
	}
	if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 ||
		math.Abs(got.Width-want.Width) > 1e-9 || math.Abs(got.Height-want.Height) > 1e-9 {
		t.Errorf("TargetRect = %+v, want %+v", got, want)
	}

	// Non-geometry fields pass through untouched.
	if result.Placements[0].ScaleFactor != input[0].ScaleFactor ||
		result.Placements[0].CropRectPx != input[0].CropRectPx {
		t.Error("calibration must only remap target rects")
	}

	// The input set is preserved for diagnostics.
	if input[0].TargetRect.X != 20 {
		t.Error("Apply() mutated its input")
	}
}

func TestApply_IdentityProfile(t *testing.T) {
	input := samplePlacements()
	result, err := Apply(input, &Profile{
		PrinterID: "hp-envy", PaperType: "A4",
		ScaleFactorX: 1.0, ScaleFactorY: 1.0,
	})
	if err != nil {
		t.Fatalf("Apply() failed: %v", err)
	}

	if !result.Calibrated {
		t.Error("explicit identity profile still counts as calibrated")
	}
	if diff := cmp.Diff(input, result.Placements); diff != "" {
		t.Errorf("identity profile changed placements:\n%s", diff)
	}
}

func TestApply_NoProfile(t *testing.T) {
	input := samplePlacements()
	result, err := Apply(input, nil)
	if err != nil {
		t.Fatalf("Apply() failed: %v", err)
	}

	if result.Calibrated {
		t.Error("missing profile must be observable as Calibrated = false")
	}
	if result.Profile != nil {
		t.Error("Profile should be nil when none was applied")
	}
	if diff := cmp.Diff(input, result.Placements); diff != "" {
		t.Errorf("no-op calibration changed placements:\n%s", diff)
	}
}

func TestApply_InvalidProfile(t *testing.T) {
	_, err := Apply(samplePlacements(), &Profile{
		PrinterID: "hp-envy", PaperType: "A4",
		ScaleFactorX: 0, ScaleFactorY: 1,
	})
	if err == nil {
		t.Fatal("Apply() with non-positive scale should fail")
	}
}

func TestFileStore_RoundTrip(t *testing.T) {
	store := NewFileStore(t.TempDir())

	want := Profile{
		PrinterID:    "hp-envy",
		PaperType:    "A4",
		ScaleFactorX: 0.98,
		ScaleFactorY: 0.99,
		OffsetMM:     Offset{X: 2.0, Y: 1.5},
	}
	if err := store.Save(want); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	got, err := store.Load("hp-envy", "A4")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch:\n%s", diff)
	}
}

func TestFileStore_NotFound(t *testing.T) {
	store := NewFileStore(t.TempDir())

	_, err := store.Load("epson-x", "A4")
	if !errors.Is(err, ErrProfileNotFound) {
		t.Errorf("Load() error = %v, want ErrProfileNotFound", err)
	}
}

func TestFileStore_KeySanitized(t *testing.T) {
	store := NewFileStore(t.TempDir())

	p := Identity("office/3rd-floor", "7x10_photo")
	if err := store.Save(p); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	got, err := store.Load("office/3rd-floor", "7x10_photo")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if got.PrinterID != "office/3rd-floor" {
		t.Errorf("PrinterID = %q", got.PrinterID)
	}
}

func TestFit_RecoversKnownError(t *testing.T) {
	// Simulate a printer that shrinks X by 2%, stretches Y by 1%, and
	// drifts by (1.0, -0.5) mm. The fitted profile must invert it.
	distort := func(p model.PointMM) model.PointMM {
		return model.PointMM{X: p.X*0.98 + 1.0, Y: p.Y*1.01 - 0.5}
	}

	var measurements []Measurement
	for _, exp := range []model.PointMM{
		{X: 10, Y: 10}, {X: 200, Y: 10}, {X: 10, Y: 287}, {X: 200, Y: 287}, {X: 105, Y: 148.5},
	} {
		measurements = append(measurements, Measurement{Expected: exp, Actual: distort(exp)})
	}

	profile, err := Fit("hp-envy", "A4", measurements)
	if err != nil {
		t.Fatalf("Fit() failed: %v", err)
	}

	// Applying the correction and then the printer's error must land
	// each mark back on its expected position.
	for _, m := range measurements {
		corrected := model.PointMM{
			X: m.Expected.X*profile.ScaleFactorX + profile.OffsetMM.X,
			Y: m.Expected.Y*profile.ScaleFactorY + profile.OffsetMM.Y,
		}
		printed := distort(corrected)
		if printed.Distance(m.Expected) > 1e-6 {
			t.Errorf("mark %+v lands at %+v after correction", m.Expected, printed)
		}
	}
}

func TestFit_IdentityMeasurements(t *testing.T) {
	var measurements []Measurement
	for _, p := range []model.PointMM{{X: 10, Y: 10}, {X: 200, Y: 287}} {
		measurements = append(measurements, Measurement{Expected: p, Actual: p})
	}

	profile, err := Fit("hp-envy", "A4", measurements)
	if err != nil {
		t.Fatalf("Fit() failed: %v", err)
	}

	if math.Abs(profile.ScaleFactorX-1) > 1e-9 || math.Abs(profile.ScaleFactorY-1) > 1e-9 ||
		math.Abs(profile.OffsetMM.X) > 1e-9 || math.Abs(profile.OffsetMM.Y) > 1e-9 {
		t.Errorf("perfect printer should fit to identity, got %+v", profile)
	}
}

func TestFit_RejectsImplausibleScale(t *testing.T) {
	// A printer off by 50% is broken, not calibratable.
	var measurements []Measurement
	for _, p := range []model.PointMM{{X: 10, Y: 10}, {X: 200, Y: 287}} {
		measurements = append(measurements, Measurement{
			Expected: p,
			Actual:   model.PointMM{X: p.X * 1.5, Y: p.Y},
		})
	}

	if _, err := Fit("hp-envy", "A4", measurements); err == nil {
		t.Fatal("Fit() should reject scale far outside the sane range")
	}
}

func TestFit_TooFewMeasurements(t *testing.T) {
	_, err := Fit("hp-envy", "A4", []Measurement{
		{Expected: model.PointMM{X: 10, Y: 10}, Actual: model.PointMM{X: 10, Y: 10}},
	})
	if err == nil {
		t.Fatal("Fit() with one measurement should fail")
	}

	// Two measurements sharing an X coordinate cannot constrain the
	// X axis.
	_, err = Fit("hp-envy", "A4", []Measurement{
		{Expected: model.PointMM{X: 10, Y: 10}, Actual: model.PointMM{X: 10, Y: 10}},
		{Expected: model.PointMM{X: 10, Y: 200}, Actual: model.PointMM{X: 10, Y: 200}},
	})
	if err == nil {
		t.Fatal("Fit() with degenerate X coordinates should fail")
	}
}
