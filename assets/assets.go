package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrMissingSheet is returned when a sprite sheet cannot be found in
// the registry or on disk.
var ErrMissingSheet = errors.New("assets: missing sheet")

// DefaultDir is where sheets are loaded from when no directory is
// given.
const DefaultDir = "assets"

// Sheet is one decoded sprite sheet. Image may be nil for sheets
// registered size-only, which is enough for animation compilation.
type Sheet struct {
	Image *ebiten.Image
	W, H  int
}

// Registry caches sprite sheets by their document-relative ref,
// loading from disk on first use. Registered sheets take priority
// over disk, so tools and tests can inject sheets directly.
type Registry struct {
	root string

	mu     sync.RWMutex
	sheets map[string]*Sheet
}

// NewRegistry creates a sheet registry rooted at dir. An empty dir
// uses DefaultDir.
func NewRegistry(dir string) *Registry {
	if dir == "" {
		dir = DefaultDir
	}
	return &Registry{root: dir, sheets: map[string]*Sheet{}}
}

// Register stores a sheet under ref, replacing any cached copy.
func (r *Registry) Register(ref string, sheet *Sheet) {
	if r == nil || ref == "" || sheet == nil {
		return
	}
	r.mu.Lock()
	r.sheets[cleanRef(ref)] = sheet
	r.mu.Unlock()
}

// RegisterImage stores an image under ref, taking its size from the
// image bounds.
func (r *Registry) RegisterImage(ref string, img *ebiten.Image) {
	if img == nil {
		return
	}
	b := img.Bounds()
	r.Register(ref, &Sheet{Image: img, W: b.Dx(), H: b.Dy()})
}

// Sheet returns the sheet for ref, loading and caching it from disk
// when it is not registered yet.
func (r *Registry) Sheet(ref string) (*Sheet, error) {
	if r == nil || ref == "" {
		return nil, fmt.Errorf("%w: %q", ErrMissingSheet, ref)
	}
	clean := cleanRef(ref)

	r.mu.RLock()
	sheet, ok := r.sheets[clean]
	r.mu.RUnlock()
	if ok {
		return sheet, nil
	}

	img, err := loadImage(filepath.Join(r.root, filepath.FromSlash(clean)))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrMissingSheet, ref, err)
	}
	b := img.Bounds()
	sheet = &Sheet{Image: img, W: b.Dx(), H: b.Dy()}

	r.mu.Lock()
	r.sheets[clean] = sheet
	r.mu.Unlock()
	return sheet, nil
}

// SheetSize returns the pixel dimensions of the sheet for ref. It
// satisfies the sheet lookup needed to compile sprite animations.
func (r *Registry) SheetSize(ref string) (int, int, error) {
	sheet, err := r.Sheet(ref)
	if err != nil {
		return 0, 0, err
	}
	return sheet.W, sheet.H, nil
}

func loadImage(path string) (*ebiten.Image, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(img), nil
}

func cleanRef(ref string) string {
	s := filepath.ToSlash(ref)
	s = strings.TrimPrefix(s, "./")
	return strings.TrimPrefix(s, DefaultDir+"/")
}
