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
	"image"
	"image/png"
	"io"

	"seehuhn.de/go/geom/rect"
)

// FillGray rasterises l's silhouette into a grayscale image of the
// given pixel size, one pixel per layout unit, with full coverage
// (255) for placed rectangles and their corner markers over a black
// (0) background.
func FillGray(l Layout, width, height int) *image.Gray {
	dst := image.NewGray(image.Rect(0, 0, width, height))

	r := NewRasteriser(rect.Rect{LLx: 0, LLy: 0, URx: float64(width), URy: float64(height)})
	r.FillNonZero(Silhouette(l), func(y, xMin int, coverage []float32) {
		row := dst.Pix[y*dst.Stride+xMin:]
		for i, c := range coverage {
			row[i] = uint8(c * 255)
		}
	})

	return dst
}

// WritePNG encodes img to w as a PNG.
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
