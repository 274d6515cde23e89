package main

import (
	"fmt"
	"hash/fnv"
	"image"
	"image/color"
	"image/draw"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/overworld/assets"
	"github.com/milk9111/overworld/component"
	"github.com/milk9111/overworld/prefabs"
)

// sheetCols fixes every generated sheet to the same column count so
// that layers sharing an animation block always agree on geometry.
const sheetCols = 9

// sheetSpec is the grid one placeholder sheet must provide: the frame
// cell size and how many cells the referencing blocks reach into.
type sheetSpec struct {
	frameW, frameH int
	frames         int
}

// collectSheetSpecs walks every sprite block in the document and
// works out the minimum sheet each layer ref needs.
func collectSheetSpecs(doc *prefabs.Document) (map[string]sheetSpec, error) {
	specs := map[string]sheetSpec{}
	for name, tmpl := range doc.Entities.Templates {
		cv, ok := tmpl.Components["sprite"]
		if !ok || cv.IsDefault() {
			continue
		}
		v, err := component.DecodeFor("sprite", cv.Raw)
		if err != nil {
			return nil, fmt.Errorf("template %s: %w", name, err)
		}
		for _, block := range v.(*component.Sprite).Animations {
			need := block.FrameOffset + block.FrameCount
			for _, ref := range block.Layers {
				spec, seen := specs[ref]
				if seen && (spec.frameW != block.FrameSize[0] || spec.frameH != block.FrameSize[1]) {
					return nil, fmt.Errorf("template %s: layer %s used with frame sizes %dx%d and %dx%d",
						name, ref, spec.frameW, spec.frameH, block.FrameSize[0], block.FrameSize[1])
				}
				spec.frameW = block.FrameSize[0]
				spec.frameH = block.FrameSize[1]
				if need > spec.frames {
					spec.frames = need
				}
				specs[ref] = spec
			}
		}
	}
	return specs, nil
}

// registerPlaceholderSheets generates a placeholder sheet for every
// layer ref in the document and registers it, so templates resolve and
// draw without any art on disk.
func registerPlaceholderSheets(reg *assets.Registry, doc *prefabs.Document) error {
	specs, err := collectSheetSpecs(doc)
	if err != nil {
		return err
	}
	for ref, spec := range specs {
		reg.RegisterImage(ref, generateSheet(ref, spec))
	}
	return nil
}

// generateSheet paints one placeholder sheet: a tinted silhouette per
// frame that bobs with the frame index, wrapped in a dark outline so
// stacked layers stay readable.
func generateSheet(ref string, spec sheetSpec) *ebiten.Image {
	rows := (spec.frames + sheetCols - 1) / sheetCols
	if rows < 1 {
		rows = 1
	}
	sheet := image.NewRGBA(image.Rect(0, 0, sheetCols*spec.frameW, rows*spec.frameH))

	fill := refColor(ref)
	edge := color.RGBA{R: fill.R / 3, G: fill.G / 3, B: fill.B / 3, A: 0xff}
	for i := 0; i < spec.frames; i++ {
		cell := image.NewRGBA(image.Rect(0, 0, spec.frameW, spec.frameH))
		paintFigure(cell, i, fill)
		outlined := outlineRGBA(cell, 1, edge)
		draw.Draw(outlined, outlined.Bounds(), cell, image.Point{}, draw.Over)

		col := i % sheetCols
		row := i / sheetCols
		at := image.Rect(col*spec.frameW, row*spec.frameH, (col+1)*spec.frameW, (row+1)*spec.frameH)
		draw.Draw(sheet, at, outlined, image.Point{}, draw.Over)
	}
	return ebiten.NewImageFromImage(sheet)
}

// paintFigure stacks a handful of rectangles into a rough standing
// figure. The vertical bob and foot swing follow the frame index so a
// looping animation visibly moves.
func paintFigure(dst *image.RGBA, frame int, fill color.RGBA) {
	w := dst.Bounds().Dx()
	h := dst.Bounds().Dy()
	unit := h / 8
	if unit < 1 {
		unit = 1
	}
	bob := 0
	if frame%2 == 1 {
		bob = unit / 2
	}
	swing := (frame%4 - 2) * unit / 4

	solid := func(r image.Rectangle) {
		draw.Draw(dst, r.Intersect(dst.Bounds()), &image.Uniform{fill}, image.Point{}, draw.Src)
	}

	cx := w / 2
	// head
	solid(image.Rect(cx-unit, unit+bob, cx+unit, 3*unit+bob))
	// torso
	solid(image.Rect(cx-unit-unit/2, 3*unit+bob, cx+unit+unit/2, 6*unit+bob))
	// feet
	solid(image.Rect(cx-unit-swing, 6*unit+bob, cx-swing, h-unit))
	solid(image.Rect(cx+swing, 6*unit+bob, cx+unit+swing, h-unit))
}

// outlineRGBA returns an image holding outline pixels around the
// opaque areas of src. Thickness is in pixels.
func outlineRGBA(src *image.RGBA, thickness int, outlineCol color.RGBA) *image.RGBA {
	b := src.Bounds()
	w := b.Dx()
	h := b.Dy()
	out := image.NewRGBA(image.Rect(0, 0, w, h))

	pix := src.Pix
	isOpaque := func(x, y int) bool {
		if x < 0 || y < 0 || x >= w || y >= h {
			return false
		}
		return pix[(y*w+x)*4+3] != 0
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if isOpaque(x, y) {
				continue
			}
			found := false
			for yy := y - thickness; yy <= y+thickness && !found; yy++ {
				for xx := x - thickness; xx <= x+thickness; xx++ {
					if isOpaque(xx, yy) {
						found = true
						break
					}
				}
			}
			if found {
				out.Set(x, y, outlineCol)
			}
		}
	}
	return out
}

// refColor derives a stable tint from a layer ref so each layer in a
// composite reads as its own band of color.
func refColor(ref string) color.RGBA {
	f := fnv.New32a()
	f.Write([]byte(ref))
	v := f.Sum32()
	c := color.RGBA{
		R: 0x60 + uint8(v)%0x90,
		G: 0x60 + uint8(v>>8)%0x90,
		B: 0x60 + uint8(v>>16)%0x90,
		A: 0xff,
	}
	return c
}
