/*
 * strainplot.go, part of atomstrain.
 *
 * Copyright 2024 M. Quezada <mquezada{at}pmDOTme>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

// Package strainplot produces quick-look plots from atomic strain
// result documents. Invalid particles never contribute points, so a
// mostly-degenerate frame plots only what the fit could actually
// resolve.
package strainplot

import (
	"fmt"

	strain "github.com/mquezada/atomstrain"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ShearHistogram plots a histogram of the shear strain of the valid
// particles of res with nbins bins, saved to filename. The format is
// deduced from the extension (png, pdf, svg and the other formats
// supported by gonum/plot).
func ShearHistogram(res *strain.Result, nbins int, filename string) error {
	vals := validShear(res)
	if len(vals) == 0 {
		return fmt.Errorf("strainplot.ShearHistogram: no valid particles to plot")
	}
	p := plot.New()
	p.Title.Text = "Shear strain distribution"
	p.X.Label.Text = "von Mises shear strain"
	p.Y.Label.Text = "particles"
	h, err := plotter.NewHist(plotter.Values(vals), nbins)
	if err != nil {
		return fmt.Errorf("strainplot.ShearHistogram: %v", err)
	}
	p.Add(h)
	if err := p.Save(5*vg.Inch, 4*vg.Inch, filename); err != nil {
		return fmt.Errorf("strainplot.ShearHistogram: %v", err)
	}
	return nil
}

// ShearVolumetricScatter plots, for every valid particle of res, its
// volumetric strain against its shear strain, saved to filename.
// Dilation-dominated and shear-dominated regions of a sample separate
// cleanly in this view.
func ShearVolumetricScatter(res *strain.Result, filename string) error {
	pts := make(plotter.XYs, 0, len(res.AtomicStrain))
	for i := range res.AtomicStrain {
		a := &res.AtomicStrain[i]
		if a.Invalid {
			continue
		}
		pts = append(pts, plotter.XY{X: a.ShearStrain, Y: a.VolumetricStrain})
	}
	if len(pts) == 0 {
		return fmt.Errorf("strainplot.ShearVolumetricScatter: no valid particles to plot")
	}
	p := plot.New()
	p.Title.Text = "Shear vs volumetric strain"
	p.X.Label.Text = "von Mises shear strain"
	p.Y.Label.Text = "volumetric strain"
	p.Add(plotter.NewGrid())
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("strainplot.ShearVolumetricScatter: %v", err)
	}
	p.Add(s)
	if err := p.Save(5*vg.Inch, 4*vg.Inch, filename); err != nil {
		return fmt.Errorf("strainplot.ShearVolumetricScatter: %v", err)
	}
	return nil
}

func validShear(res *strain.Result) []float64 {
	vals := make([]float64, 0, len(res.AtomicStrain))
	for i := range res.AtomicStrain {
		if res.AtomicStrain[i].Invalid {
			continue
		}
		vals = append(vals, res.AtomicStrain[i].ShearStrain)
	}
	return vals
}
