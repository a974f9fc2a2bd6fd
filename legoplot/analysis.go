// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/aclements/go-gg/table"

	"github.com/bricklab/legostat/tabstat"
)

// setsPerYear counts the sets released in each year.
func setsPerYear(sets *table.Table) *table.Table {
	return tabstat.GroupCount(sets, "year", "sets")
}

// themesPerYear counts the distinct themes with at least one release
// in each year.
func themesPerYear(sets *table.Table) *table.Table {
	return tabstat.GroupDistinct(sets, "year", "theme id", "themes")
}

// partsPerYear computes the mean part count of the sets released in
// each year.
func partsPerYear(sets *table.Table) *table.Table {
	return tabstat.GroupMean(sets, "year", "num parts", "mean parts")
}

// firstSets returns the name and year of the sets released in the
// earliest year in the data.
func firstSets(sets *table.Table) *table.Table {
	years := sets.MustColumn("year").([]int)
	if len(years) == 0 {
		return new(table.Builder).Add("name", []string{}).Add("year", []int{}).Done()
	}
	min := years[0]
	for _, y := range years {
		if y < min {
			min = y
		}
	}
	f := table.Flatten(table.FilterEq(sets, "year", min))
	return new(table.Builder).
		Add("name", f.MustColumn("name")).
		Add("year", f.MustColumn("year")).
		Done()
}

// excludePartialYears drops the rows for the n most recent years in
// sets. The trailing years of an export cover sets announced but not
// yet fully cataloged, which would skew per-year aggregates.
func excludePartialYears(sets *table.Table, n int) *table.Table {
	if n <= 0 || sets.Len() == 0 {
		return sets
	}
	max := 0
	for _, y := range sets.MustColumn("year").([]int) {
		if y > max {
			max = y
		}
	}
	cut := max - n
	return table.Flatten(table.Filter(sets, func(y int) bool {
		return y <= cut
	}, "year"))
}

// largestSets returns the k sets with the most parts.
func largestSets(sets *table.Table, k int) *table.Table {
	return tabstat.TopKBy(sets, "num parts", k)
}

// topThemes counts sets per theme, attaches theme names, and keeps
// the k themes with the most sets. A theme id that does not appear
// in the themes table is dropped by the join.
func topThemes(sets, themes *table.Table, k int) *table.Table {
	counts := tabstat.ValueCounts(sets, "theme id", "sets")
	joined := table.Flatten(table.Join(counts, "theme id", themes, "id"))
	return tabstat.TopKBy(joined, "sets", k)
}

// colorCounts counts the distinct values in each column of the
// colors table.
func colorCounts(colors *table.Table) *table.Table {
	return tabstat.DistinctCounts(colors)
}

// transCounts counts opaque versus transparent colors.
func transCounts(colors *table.Table) *table.Table {
	return tabstat.ValueCounts(colors, "trans", "colors")
}

// releasesPerYear combines setsPerYear and themesPerYear on the year
// column.
func releasesPerYear(spy, tpy *table.Table) *table.Table {
	return table.Flatten(table.Join(spy, "year", tpy, "year"))
}
