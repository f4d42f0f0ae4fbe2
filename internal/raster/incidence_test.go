package raster

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestCorrectIncidenceValues(t *testing.T) {
	halfPi := float32(math.Pi / 2)

	vals := []float32{0, 0.5, 1.0, halfPi}
	correctIncidenceValues(vals, 0, false)

	want := []float32{halfPi, halfPi - 0.5, halfPi - 1.0, 0}
	for i := range vals {
		if vals[i] != want[i] {
			t.Errorf("vals[%d] = %g, want %g", i, vals[i], want[i])
		}
	}
}

func TestCorrectIncidenceValues_PreservesNoData(t *testing.T) {
	vals := []float32{0, 0.5, 1.0}
	correctIncidenceValues(vals, 0, true)

	if vals[0] != 0 {
		t.Errorf("no-data pixel changed: got %g, want 0", vals[0])
	}
	halfPi := float32(math.Pi / 2)
	if vals[1] != halfPi-0.5 || vals[2] != halfPi-1.0 {
		t.Errorf("valid pixels = %v, want [%g %g]", vals[1:], halfPi-0.5, halfPi-1.0)
	}
}

func TestCorrectIncidenceValues_Involution(t *testing.T) {
	// theta -> pi/2 - theta is its own inverse: applying it twice must
	// restore the original values.
	original := []float32{0.1, 0.7, 1.3}
	vals := append([]float32(nil), original...)

	correctIncidenceValues(vals, 0, false)
	correctIncidenceValues(vals, 0, false)

	for i := range vals {
		if math.Abs(float64(vals[i]-original[i])) > 1e-6 {
			t.Errorf("vals[%d] = %g after double correction, want %g", i, vals[i], original[i])
		}
	}
}

func TestCopyText(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "A.txt")
	dest := filepath.Join(dir, "copy.txt")

	content := "Reference Granule: S1A_IW_SLC__1SDV\n"
	if err := os.WriteFile(src, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := CopyText(src, dest); err != nil {
		t.Fatalf("CopyText failed: %v", err)
	}

	got, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != content {
		t.Errorf("copied content = %q, want %q", string(got), content)
	}
}

func TestCopyText_MissingSource(t *testing.T) {
	dir := t.TempDir()
	err := CopyText(filepath.Join(dir, "missing.txt"), filepath.Join(dir, "out.txt"))
	if err == nil {
		t.Fatal("Expected error for missing source, got nil")
	}
}

func TestFtoa(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{500000, "500000"},
		{7094000.5, "7094000.5"},
		{-147.25, "-147.25"},
	}

	for _, tt := range tests {
		if got := ftoa(tt.in); got != tt.want {
			t.Errorf("ftoa(%g) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
