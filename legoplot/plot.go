// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"image/color"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"
)

// linePlot builds a line chart of y against x.
func linePlot(t table.Grouping, x, y, title string) *gg.Plot {
	p := gg.NewPlot(t)
	p.SortBy(x)
	p.Add(gg.LayerLines{X: x, Y: y})
	p.Add(gg.AxisLabel("x", x), gg.AxisLabel("y", y))
	p.Add(gg.Title(title))
	return p
}

// releasesPlot charts sets per year and themes per year as stacked
// facets sharing the year axis. The two counts live on very
// different scales, so each facet gets its own Y scale.
func releasesPlot(combined *table.Table) *gg.Plot {
	t := table.Unpivot(combined, "metric", "count", "sets", "themes")
	p := gg.NewPlot(t)
	p.SortBy("year")
	p.Add(gg.FacetY{Col: "metric", SplitYScales: true})
	p.Add(gg.LayerLines{X: "year", Y: "count"})
	p.Add(gg.Title("releases per year"))
	return p
}

// partsPlot charts the mean part count of the sets released in each
// year, with a shaded band from the smallest to the largest set.
func partsPlot(sets *table.Table) *gg.Plot {
	p := gg.NewPlot(sets)
	p.SortBy("year")
	p.Stat(convertFloat{[]string{"num parts"}})
	p.Stat(ggstat.Agg("year")(ggstat.AggMean("num parts"), ggstat.AggMin("num parts"), ggstat.AggMax("num parts")))
	p.SetScale("y", gg.NewLinearScaler().Include(0))
	p.Add(gg.LayerArea{
		X:     "year",
		Upper: "max num parts",
		Lower: "min num parts",
		Fill:  p.Const(color.Gray{192}),
	})
	p.Add(gg.LayerLines{X: "year", Y: "mean num parts"})
	p.Add(gg.LayerPoints{X: "year", Y: "mean num parts"})
	p.Add(gg.Title("parts per set"))
	return p
}

// largestSetsPlot charts the biggest sets as part count against
// release year, labeled with set names.
func largestSetsPlot(t *table.Table) *gg.Plot {
	p := gg.NewPlot(t)
	p.Add(gg.LayerPoints{X: "year", Y: "num parts"})
	p.Add(gg.LayerTags{X: "year", Y: "num parts", Label: "name"})
	p.Add(gg.Title("largest sets"))
	return p
}

// topThemesPlot charts set counts for the most prolific themes as a
// dot plot, one theme per row.
func topThemesPlot(t *table.Table) *gg.Plot {
	p := gg.NewPlot(t)
	p.Add(gg.LayerPoints{X: "sets", Y: "theme"})
	p.Add(gg.Title("sets per theme"))
	return p
}

// convertFloat converts the named columns to []float64 so they can
// feed the ggstat aggregators.
type convertFloat struct {
	cols []string
}

func (c convertFloat) F(g table.Grouping) table.Grouping {
	return table.MapTables(g, func(_ table.GroupID, t *table.Table) *table.Table {
		b := table.NewBuilder(t)
		for _, col := range c.cols {
			var ncol []float64
			slice.Convert(&ncol, t.MustColumn(col))
			b.Add(col, ncol)
		}
		return b.Done()
	})
}
