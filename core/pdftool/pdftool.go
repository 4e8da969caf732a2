// Package pdftool splits PDF files into page chunks and extracts their
// embedded images using pdfcpu.
package pdftool

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register decoder for size checks
	_ "image/jpeg" // register decoder for size checks
	_ "image/png"  // register decoder for size checks
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

const (
	DefaultPagesPerChunk = 10
	DefaultSplitDir      = "split_pdfs"
	DefaultImageDir      = "docs/img"
	DefaultMinImageSize  = 100
)

// ErrInvalidInput is returned for a missing input file or bad parameters.
var ErrInvalidInput = errors.New("invalid input")

func init() {
	api.DisableConfigDir()
}

// Chunk describes one output file of Split.
type Chunk struct {
	Path      string
	FirstPage int
	LastPage  int
}

// Split writes inFile as consecutive chunks of pagesPerChunk pages into
// outDir, named <name>_part<k>.pdf.
func Split(inFile, outDir string, pagesPerChunk int) ([]Chunk, error) {
	if pagesPerChunk <= 0 {
		return nil, fmt.Errorf("%w: pages per chunk must be positive, got %d", ErrInvalidInput, pagesPerChunk)
	}
	if err := checkInput(inFile); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	total, err := api.PageCountFile(inFile)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", inFile, err)
	}

	name := strings.TrimSuffix(filepath.Base(inFile), filepath.Ext(inFile))
	var chunks []Chunk
	for first := 1; first <= total; first += pagesPerChunk {
		last := min(first+pagesPerChunk-1, total)
		out := filepath.Join(outDir, fmt.Sprintf("%s_part%d.pdf", name, len(chunks)+1))

		pages := []string{fmt.Sprintf("%d-%d", first, last)}
		if err := api.TrimFile(inFile, out, pages, nil); err != nil {
			return chunks, fmt.Errorf("writing %s: %w", out, err)
		}
		chunks = append(chunks, Chunk{Path: out, FirstPage: first, LastPage: last})
	}
	return chunks, nil
}

// ExtractImages saves the embedded images of inFile into outDir as
// image_<n>.<ext>, in page order. Images narrower or shorter than minSize
// pixels are skipped; images whose format cannot be decoded are kept.
func ExtractImages(inFile, outDir string, minSize int) ([]string, error) {
	if err := checkInput(inFile); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	total, err := api.PageCountFile(inFile)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", inFile, err)
	}

	staging, err := os.MkdirTemp("", "docscraper-images-")
	if err != nil {
		return nil, fmt.Errorf("creating staging directory: %w", err)
	}
	defer os.RemoveAll(staging)

	var saved []string
	for page := 1; page <= total; page++ {
		pageDir := filepath.Join(staging, strconv.Itoa(page))
		if err := os.MkdirAll(pageDir, 0o755); err != nil {
			return saved, fmt.Errorf("creating staging directory: %w", err)
		}
		if err := api.ExtractImagesFile(inFile, pageDir, []string{strconv.Itoa(page)}, nil); err != nil {
			return saved, fmt.Errorf("extracting images from page %d: %w", page, err)
		}

		entries, err := os.ReadDir(pageDir)
		if err != nil {
			return saved, fmt.Errorf("reading staging directory: %w", err)
		}
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			if !e.IsDir() {
				names = append(names, e.Name())
			}
		}
		sort.Strings(names)

		for _, n := range names {
			src := filepath.Join(pageDir, n)
			if tooSmall(src, minSize) {
				continue
			}
			dst := filepath.Join(outDir, fmt.Sprintf("image_%d%s", len(saved)+1, filepath.Ext(n)))
			if err := moveFile(src, dst); err != nil {
				return saved, err
			}
			saved = append(saved, dst)
		}
	}
	return saved, nil
}

func checkInput(inFile string) error {
	info, err := os.Stat(inFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: input file %q does not exist", ErrInvalidInput, inFile)
		}
		return fmt.Errorf("stat %s: %w", inFile, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %q is a directory", ErrInvalidInput, inFile)
	}
	return nil
}

// tooSmall reports whether the image at path is below minSize in either
// dimension.
func tooSmall(path string, minSize int) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return false
	}
	return cfg.Width < minSize || cfg.Height < minSize
}

// moveFile renames src to dst, copying when they sit on different devices.
func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("reading %s: %w", src, err)
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", dst, err)
	}
	return nil
}
