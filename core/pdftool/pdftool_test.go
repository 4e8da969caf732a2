package pdftool

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/jung-kurt/gofpdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writePDF creates a PDF with the given number of text pages. Each entry
// of images is embedded on the page with the same index.
func writePDF(t *testing.T, pages int, images map[int]image.Image) string {
	t.Helper()
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Helvetica", "", 12)
	for i := 0; i < pages; i++ {
		pdf.AddPage()
		pdf.Cell(40, 10, fmt.Sprintf("page %d", i+1))
		if img, ok := images[i]; ok {
			var buf bytes.Buffer
			require.NoError(t, png.Encode(&buf, img))
			name := fmt.Sprintf("img%d", i)
			opts := gofpdf.ImageOptions{ImageType: "PNG"}
			pdf.RegisterImageOptionsReader(name, opts, &buf)
			pdf.ImageOptions(name, 10, 30, 50, 0, false, opts, 0, "")
		}
	}
	path := filepath.Join(t.TempDir(), "manual.pdf")
	require.NoError(t, pdf.OutputFileAndClose(path))
	return path
}

func solid(size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.Set(x, y, color.RGBA{R: 40, G: 120, B: 200, A: 255})
		}
	}
	return img
}

func TestSplit(t *testing.T) {
	in := writePDF(t, 25, nil)
	outDir := filepath.Join(t.TempDir(), "split")

	chunks, err := Split(in, outDir, 10)
	require.NoError(t, err)
	require.Len(t, chunks, 3)

	wantRanges := [][2]int{{1, 10}, {11, 20}, {21, 25}}
	for i, c := range chunks {
		assert.Equal(t, filepath.Join(outDir, fmt.Sprintf("manual_part%d.pdf", i+1)), c.Path)
		assert.Equal(t, wantRanges[i][0], c.FirstPage)
		assert.Equal(t, wantRanges[i][1], c.LastPage)

		n, err := api.PageCountFile(c.Path)
		require.NoError(t, err)
		assert.Equal(t, c.LastPage-c.FirstPage+1, n)
	}
}

func TestSplit_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		pages int
	}{
		{name: "missing file", in: filepath.Join(t.TempDir(), "missing.pdf"), pages: 10},
		{name: "zero pages per chunk", in: writePDF(t, 1, nil), pages: 0},
		{name: "directory", in: t.TempDir(), pages: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Split(tt.in, t.TempDir(), tt.pages)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExtractImages(t *testing.T) {
	in := writePDF(t, 3, map[int]image.Image{0: solid(20), 1: solid(200)})
	outDir := filepath.Join(t.TempDir(), "img")

	paths, err := ExtractImages(in, outDir, 100)
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Equal(t, filepath.Join(outDir, "image_1.png"), paths[0])

	f, err := os.Open(paths[0])
	require.NoError(t, err)
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 200, cfg.Width)
}

func TestExtractImages_NoImages(t *testing.T) {
	paths, err := ExtractImages(writePDF(t, 2, nil), t.TempDir(), 100)
	require.NoError(t, err)
	assert.Empty(t, paths)
}
