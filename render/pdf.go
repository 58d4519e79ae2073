// seehuhn.de/go/raster - a 2D rendering library
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package render

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/float"
)

// WritePDF renders l as a single-page PDF at pdfPath: one point per
// layout unit, left floats in light gray, right floats in a darker
// gray, and a white rounded marker at each rectangle's origin.
func WritePDF(pdfPath string, l Layout, width, height int) error {
	paper := &pdf.Rectangle{URx: float64(width), URy: float64(height)}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// The layout's origin is top-left with Y growing downward; PDF
	// user space is bottom-left with Y growing upward.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(height)})

	for _, pl := range l.Placed {
		x0 := float64(pl.Origin.Inline)
		y0 := float64(pl.Origin.Block)
		w := float64(pl.Exclusion.Size.Inline)
		h := float64(pl.Exclusion.Size.Block)

		if pl.Exclusion.Side == float.Left {
			page.SetFillColor(color.DeviceGray(0.75))
		} else {
			page.SetFillColor(color.DeviceGray(0.45))
		}
		page.Rectangle(x0, y0, w, h)
		page.Fill()

		page.SetFillColor(color.DeviceGray(1))
		drawRoundedMarker(page, x0, y0)
	}

	return page.Close()
}

// pdfPage is the subset of *document.Page used by drawRoundedMarker;
// declared so the marker can be drawn identically for any page-like
// writer without importing document in silhouette.go.
type pdfPage interface {
	MoveTo(x, y float64)
	CurveTo(x1, y1, x2, y2, x3, y3 float64)
	LineTo(x, y float64)
	ClosePath()
	Fill()
}

func drawRoundedMarker(page pdfPage, cx, cy float64) {
	const kappa = 0.5522847498307936
	r := float64(markerRadius)
	k := r * kappa

	page.MoveTo(cx+r, cy)
	page.CurveTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
	page.LineTo(cx, cy)
	page.ClosePath()
	page.Fill()
}
