package preview

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestLayout(t *testing.T) {
	tests := []struct {
		n        int
		wantRows int
		wantCols int
	}{
		{n: 0, wantRows: 0, wantCols: 0},
		{n: -3, wantRows: 0, wantCols: 0},
		{n: 1, wantRows: 1, wantCols: 1},
		{n: 2, wantRows: 1, wantCols: 2},
		{n: 3, wantRows: 2, wantCols: 2},
		{n: 4, wantRows: 2, wantCols: 2},
		{n: 5, wantRows: 2, wantCols: 3},
		{n: 8, wantRows: 3, wantCols: 3},
		{n: 9, wantRows: 3, wantCols: 3},
		{n: 10, wantRows: 3, wantCols: 4},
		{n: 16, wantRows: 4, wantCols: 4},
	}

	for _, tt := range tests {
		rows, cols := Layout(tt.n)
		if rows != tt.wantRows || cols != tt.wantCols {
			t.Errorf("Layout(%d) = (%d, %d), want (%d, %d)", tt.n, rows, cols, tt.wantRows, tt.wantCols)
		}
		if tt.n > 0 && rows*cols < tt.n {
			t.Errorf("Layout(%d) grid holds %d swatches", tt.n, rows*cols)
		}
	}
}

func TestNopRenderer(t *testing.T) {
	if err := (NopRenderer{}).Render([]string{"#ff0000"}, "ignored"); err != nil {
		t.Errorf("Render returned error: %v", err)
	}
}

func TestPNGRendererRender(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palette.png")
	r := &PNGRenderer{Path: path, CellSize: 40}

	palette := []string{"#ff0000", "#00ff0080", "#0000ff"}
	if err := r.Render(palette, "Test Palette"); err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("preview file was not written: %v", err)
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		t.Fatalf("preview file is not a valid PNG: %v", err)
	}

	// Three swatches lay out on a 2x2 grid plus the title bar.
	wantW, wantH := 2*40, 28+2*40
	if img.Bounds().Dx() != wantW || img.Bounds().Dy() != wantH {
		t.Errorf("preview bounds = %v, want %dx%d", img.Bounds(), wantW, wantH)
	}
}

func TestPNGRendererNoTitle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palette.png")
	r := &PNGRenderer{Path: path, CellSize: 30}

	if err := r.Render([]string{"#123456"}, ""); err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("preview file was not written: %v", err)
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		t.Fatalf("preview file is not a valid PNG: %v", err)
	}
	if img.Bounds().Dx() != 30 || img.Bounds().Dy() != 30 {
		t.Errorf("preview bounds = %v, want 30x30 without a title bar", img.Bounds())
	}
}

func TestPNGRendererErrors(t *testing.T) {
	r := &PNGRenderer{Path: filepath.Join(t.TempDir(), "palette.png")}

	if err := r.Render(nil, ""); err == nil {
		t.Error("Render succeeded with an empty palette, want error")
	}
	if err := r.Render([]string{"not-a-colour"}, ""); err == nil {
		t.Error("Render succeeded with a malformed colour, want error")
	}
}
