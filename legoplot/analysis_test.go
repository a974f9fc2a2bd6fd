// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"reflect"
	"testing"

	"github.com/aclements/go-gg/table"

	"github.com/bricklab/legostat/rebrick"
)

func de(x, y interface{}) bool {
	return reflect.DeepEqual(x, y)
}

func testSets() *table.Table {
	return setsToTable([]rebrick.Set{
		{SetNum: "700.1-1", Name: "Large Gift Set (ABB)", Year: 1949, ThemeID: 365, NumParts: 178},
		{SetNum: "1234-1", Name: "Town Plan", Year: 1955, ThemeID: 50, NumParts: 210},
		{SetNum: "8880-1", Name: "Super Car", Year: 1994, ThemeID: 5, NumParts: 1343},
		{SetNum: "8880-2", Name: "Super Car Mk II", Year: 1994, ThemeID: 5, NumParts: 1343},
		{SetNum: "9999-1", Name: "Preview Set", Year: 1996, ThemeID: 5, NumParts: 12},
		{SetNum: "9999-2", Name: "Unknown Theme Set", Year: 1995, ThemeID: 404, NumParts: 30},
	})
}

func testThemes() *table.Table {
	return themesToTable([]rebrick.Theme{
		{ID: 5, Name: "Model Team", ParentID: 0},
		{ID: 50, Name: "Town", ParentID: 0},
		{ID: 365, Name: "System", ParentID: 0},
	})
}

func TestFirstSets(t *testing.T) {
	got := firstSets(testSets())
	if got.Len() != 1 {
		t.Fatalf("want 1 row, got %d", got.Len())
	}
	if v := got.MustColumn("name"); !de(v, []string{"Large Gift Set (ABB)"}) {
		t.Errorf("name: got %v", v)
	}
	if v := got.MustColumn("year"); !de(v, []int{1949}) {
		t.Errorf("year: want [1949], got %v", v)
	}
}

func TestExcludePartialYears(t *testing.T) {
	sets := testSets()
	got := excludePartialYears(sets, 2)
	// Max year is 1996, so 1995 and 1996 go.
	if v := got.MustColumn("year"); !de(v, []int{1949, 1955, 1994, 1994}) {
		t.Errorf("year: got %v", v)
	}
	if got := excludePartialYears(sets, 0); got.Len() != sets.Len() {
		t.Errorf("n=0: want all %d rows, got %d", sets.Len(), got.Len())
	}
}

func TestTopThemes(t *testing.T) {
	themes := testThemes()
	got := topThemes(testSets(), themes, 10)

	// Theme 404 is absent from the themes table, so the join drops
	// it; every surviving theme id must exist in themes.
	known := make(map[int]bool)
	for _, id := range themes.MustColumn("id").([]int) {
		known[id] = true
	}
	ids := got.MustColumn("theme id").([]int)
	for _, id := range ids {
		if !known[id] {
			t.Errorf("theme id %d not in themes table", id)
		}
	}

	// Theme 5 has three sets and sorts first.
	if got.Len() != 3 {
		t.Fatalf("want 3 rows, got %d", got.Len())
	}
	if ids[0] != 5 {
		t.Errorf("first theme id = %d; want 5", ids[0])
	}
	if v := got.MustColumn("sets").([]int); v[0] != 3 {
		t.Errorf("first theme count = %d; want 3", v[0])
	}

	// Counts are non-increasing.
	counts := got.MustColumn("sets").([]int)
	for i := 1; i < len(counts); i++ {
		if counts[i] > counts[i-1] {
			t.Errorf("counts not non-increasing: %v", counts)
		}
	}
}

func TestReleasesPerYear(t *testing.T) {
	sets := testSets()
	got := releasesPerYear(setsPerYear(sets), themesPerYear(sets))
	if v := got.MustColumn("year"); !de(v, []int{1949, 1955, 1994, 1995, 1996}) {
		t.Errorf("year: got %v", v)
	}
	if v := got.MustColumn("sets"); !de(v, []int{1, 1, 2, 1, 1}) {
		t.Errorf("sets: got %v", v)
	}
	if v := got.MustColumn("themes"); !de(v, []int{1, 1, 1, 1, 1}) {
		t.Errorf("themes: got %v", v)
	}
}

func TestLargestSets(t *testing.T) {
	got := largestSets(testSets(), 2)
	if got.Len() != 2 {
		t.Fatalf("want 2 rows, got %d", got.Len())
	}
	// The two Super Cars tie; original order breaks the tie.
	if v := got.MustColumn("set num"); !de(v, []string{"8880-1", "8880-2"}) {
		t.Errorf("set num: got %v", v)
	}
}
