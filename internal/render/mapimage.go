// Package render draws overview images of a generated world and
// exports the road network for downstream consumers.
package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"github.com/fogleman/gg"
	"golang.org/x/image/colornames"

	"github.com/fernvale/roadweaver/internal/roads"
	"github.com/fernvale/roadweaver/internal/terrain"
	"github.com/fernvale/roadweaver/pkg/geom"
)

// Scheme defines the colours used for map features.
type Scheme struct {
	Sea      color.Color
	LowLand  color.Color
	HighLand color.Color
	Bridge   color.Color
	Waypoint color.Color
	Classes  map[roads.RoadClass]color.Color
}

// DefaultScheme returns a reasonable default Scheme.
func DefaultScheme() *Scheme {
	return &Scheme{
		Sea:      colornames.Steelblue,
		LowLand:  colornames.Darkolivegreen,
		HighLand: colornames.Wheat,
		Bridge:   colornames.Darkgray,
		Waypoint: colornames.Crimson,
		Classes: map[roads.RoadClass]color.Color{
			roads.ClassHighway:  colornames.Orangered,
			roads.ClassArterial: colornames.Orange,
			roads.ClassLocal:    colornames.Khaki,
			roads.ClassLane:     colornames.Lightyellow,
		},
	}
}

// Renderer paints a heightmap with its road network at one pixel per
// terrain cell.
type Renderer struct {
	field  *terrain.Heightmap
	scheme *Scheme
}

// New returns a renderer over the given field. A nil scheme gets the
// default colours.
func New(field *terrain.Heightmap, scheme *Scheme) *Renderer {
	if scheme == nil {
		scheme = DefaultScheme()
	}
	return &Renderer{field: field, scheme: scheme}
}

// Draw renders terrain shading, roads coloured by class, and waypoint
// markers.
func (r *Renderer) Draw(roadList []*roads.Road, wps []roads.Waypoint) image.Image {
	size := r.field.Size
	ctx := gg.NewContext(size, size)

	r.drawTerrain(ctx)
	r.drawRoads(ctx, roadList)
	r.drawWaypoints(ctx, wps)

	return ctx.Image()
}

// SavePNG renders the map and writes it to disk.
func (r *Renderer) SavePNG(fpath string, roadList []*roads.Road, wps []roads.Waypoint) error {
	return savePNG(fpath, r.Draw(roadList, wps))
}

func (r *Renderer) drawTerrain(ctx *gg.Context) {
	lo, hi := heightRange(r.field)
	sea := r.field.SeaLevel

	for cz := 0; cz < r.field.Size; cz++ {
		for cx := 0; cx < r.field.Size; cx++ {
			h := r.field.At(cx, cz)

			var col color.Color
			if h < sea {
				// Deeper water shades darker.
				depth := 0.0
				if sea > lo {
					depth = (sea - h) / (sea - lo)
				}
				col = shade(r.scheme.Sea, 1-0.5*geom.Clamp(depth, 0, 1))
			} else {
				t := 0.0
				if hi > sea {
					t = (h - sea) / (hi - sea)
				}
				col = lerpColor(r.scheme.LowLand, r.scheme.HighLand, t)
			}

			ctx.SetColor(col)
			ctx.SetPixel(cx, cz)
		}
	}
}

func (r *Renderer) drawRoads(ctx *gg.Context, roadList []*roads.Road) {
	ctx.SetLineCapRound()
	ctx.SetLineJoinRound()

	for _, rd := range roadList {
		if len(rd.Path) < 2 {
			continue
		}

		col, ok := r.scheme.Classes[rd.Class]
		if !ok {
			col = colornames.Dimgray
		}
		if rd.Bridge {
			col = r.scheme.Bridge
		}

		ctx.SetColor(col)
		ctx.SetLineWidth(math.Max(1, rd.Width/r.field.CellSize))

		for i, p := range rd.Path {
			px, pz := r.worldToPixel(p.X, p.Z)
			if i == 0 {
				ctx.MoveTo(px, pz)
			} else {
				ctx.LineTo(px, pz)
			}
		}
		ctx.Stroke()
	}
}

func (r *Renderer) drawWaypoints(ctx *gg.Context, wps []roads.Waypoint) {
	ctx.SetColor(r.scheme.Waypoint)
	for _, w := range wps {
		px, pz := r.worldToPixel(w.Position.X, w.Position.Z)
		ctx.DrawCircle(px, pz, 2.5)
		ctx.Fill()
	}
}

// worldToPixel maps a world XZ position onto image coordinates.
func (r *Renderer) worldToPixel(wx, wz float64) (float64, float64) {
	return (wx + r.field.HalfExtent) / r.field.CellSize,
		(wz + r.field.HalfExtent) / r.field.CellSize
}

// heightRange scans the field for its minimum and maximum heights.
func heightRange(h *terrain.Heightmap) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range h.Heights {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}

// lerpColor blends two colours component-wise.
func lerpColor(a, b color.Color, t float64) color.Color {
	t = geom.Clamp(t, 0, 1)
	ar, ag, ab, _ := a.RGBA()
	br, bg, bb, _ := b.RGBA()
	return color.RGBA{
		R: uint8(geom.Lerp(float64(ar>>8), float64(br>>8), t)),
		G: uint8(geom.Lerp(float64(ag>>8), float64(bg>>8), t)),
		B: uint8(geom.Lerp(float64(ab>>8), float64(bb>>8), t)),
		A: 255,
	}
}

// shade multiplies a colour's channels by f in [0,1].
func shade(c color.Color, f float64) color.Color {
	f = geom.Clamp(f, 0, 1)
	cr, cg, cb, _ := c.RGBA()
	return color.RGBA{
		R: uint8(float64(cr>>8) * f),
		G: uint8(float64(cg>>8) * f),
		B: uint8(float64(cb>>8) * f),
		A: 255,
	}
}

// savePNG to disk.
func savePNG(fpath string, in image.Image) error {
	buff := new(bytes.Buffer)
	if err := png.Encode(buff, in); err != nil {
		return err
	}
	return os.WriteFile(fpath, buff.Bytes(), 0o644)
}
