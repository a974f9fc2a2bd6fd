// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/aclements/go-gg/table"

	"github.com/bricklab/legostat/rebrick"
)

func colorsToTable(colors []rebrick.Color) *table.Table {
	ids := make([]int, len(colors))
	names := make([]string, len(colors))
	rgbs := make([]string, len(colors))
	trans := make([]bool, len(colors))
	for i, c := range colors {
		ids[i] = c.ID
		names[i] = c.Name
		rgbs[i] = c.RGB
		trans[i] = c.Trans
	}
	return new(table.Builder).
		Add("id", ids).
		Add("name", names).
		Add("rgb", rgbs).
		Add("trans", trans).
		Done()
}

func setsToTable(sets []rebrick.Set) *table.Table {
	setNums := make([]string, len(sets))
	names := make([]string, len(sets))
	years := make([]int, len(sets))
	themeIDs := make([]int, len(sets))
	numParts := make([]int, len(sets))
	for i, s := range sets {
		setNums[i] = s.SetNum
		names[i] = s.Name
		years[i] = s.Year
		themeIDs[i] = s.ThemeID
		numParts[i] = s.NumParts
	}
	return new(table.Builder).
		Add("set num", setNums).
		Add("name", names).
		Add("year", years).
		Add("theme id", themeIDs).
		Add("num parts", numParts).
		Done()
}

func themesToTable(themes []rebrick.Theme) *table.Table {
	ids := make([]int, len(themes))
	names := make([]string, len(themes))
	parentIDs := make([]int, len(themes))
	for i, th := range themes {
		ids[i] = th.ID
		names[i] = th.Name
		parentIDs[i] = th.ParentID
	}
	return new(table.Builder).
		Add("id", ids).
		Add("theme", names).
		Add("parent id", parentIDs).
		Done()
}
