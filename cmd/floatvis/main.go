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

// Command floatvis renders every scenario in
// seehuhn.de/go/float/scenarios to a PNG and a PDF, one pair of files
// per scenario, under an output directory.
package main

import (
	"flag"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/float"
	"seehuhn.de/go/float/scenarios"
	"seehuhn.de/go/float/render"
)

func main() {
	outDir := flag.String("out", "testdata/rendered", "output directory")
	margin := flag.Int("margin", 20, "extra block-axis margin below the last placed rectangle")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(scenarios.All)) {
		for _, sc := range scenarios.All[category] {
			name := category + "_" + sc.Name
			if err := renderScenario(*outDir, name, sc, *margin); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func renderScenario(outDir, name string, sc scenarios.Scenario, margin int) error {
	placed := float.PlaceAll(sc.InlineSize, sc.Exclusions)

	height := int(margin)
	for _, p := range placed {
		bottom := int(p.Origin.Block) + int(p.Exclusion.Size.Block) + margin
		if bottom > height {
			height = bottom
		}
	}
	width := int(sc.InlineSize)

	l := render.Layout{InlineSize: sc.InlineSize, BlockSize: float.Length(height), Placed: placed}

	pngPath := filepath.Join(outDir, name+".png")
	f, err := os.Create(pngPath)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := render.WritePNG(f, render.FillGray(l, width, height)); err != nil {
		return err
	}

	pdfPath := filepath.Join(outDir, name+".pdf")
	return render.WritePDF(pdfPath, l, width, height)
}
