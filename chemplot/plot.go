/*
 * plot.go, part of bondangles
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
*/

//Package chemplot draws bond angle distributions using gonum/plot.
package chemplot

import (
	"fmt"
	"image/color"

	"github.com/rmera/bondangles/histo"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func basicAnglePlot(title string, normalized bool) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Angle (deg)"
	p.Y.Label.Text = "Count"
	if normalized {
		p.Y.Label.Text = "Fraction"
	}
	//Constant axes
	p.X.Min = 0
	p.X.Max = 180
	p.Y.Min = 0
	p.Add(plotter.NewGrid())
	return p
}

//PlotHisto draws the histogram D as bars and saves it to plotname.
//The format is taken from the extension of plotname (png, svg, pdf, eps...).
func PlotHisto(D *histo.Data, title, plotname string) error {
	if D.Sum() == 0 {
		return fmt.Errorf("bondangles/chemplot.PlotHisto: empty histogram")
	}
	div := D.CopyDividers()
	vals := D.View()
	bins := make([]plotter.HistogramBin, len(vals))
	for i, v := range vals {
		bins[i] = plotter.HistogramBin{Min: div[i], Max: div[i+1], Weight: v}
	}
	h := &plotter.Histogram{
		Bins:      bins,
		Width:     div[len(div)-1] - div[0],
		FillColor: color.RGBA{R: 70, G: 110, B: 190, A: 255},
		LineStyle: plotter.DefaultLineStyle,
	}
	p := basicAnglePlot(title, D.Normalized())
	p.Add(h)
	if err := p.Save(5*vg.Inch, 4*vg.Inch, plotname); err != nil {
		return fmt.Errorf("bondangles/chemplot.PlotHisto: %w", err)
	}
	return nil
}

//AngleSet is a set of angles, in degrees, with an ID, usually that of the particle
//at their vertex.
type AngleSet struct {
	ID     int
	Angles []float64
}

//AngleHistogram builds one histogram, with bins bins spanning [0,180], for each set,
//and plots the sum of them all to plotname. The sum is normalized first if normalize is true.
//It returns the sum, with ID -1, and the histogram of each set, with the ID of the set.
func AngleHistogram(sets []AngleSet, bins int, normalize bool, title, plotname string) (*histo.Data, []*histo.Data, error) {
	div := histo.AngleDividers(bins)
	total := histo.NewData(div, nil)
	each := make([]*histo.Data, len(sets))
	for i, s := range sets {
		each[i] = histo.NewData(div, s.Angles, s.ID)
		total.Add(total, each[i])
	}
	if normalize {
		total.Normalize()
	}
	return total, each, PlotHisto(total, title, plotname)
}
