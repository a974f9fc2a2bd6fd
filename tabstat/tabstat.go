// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tabstat computes descriptive statistics over go-gg tables.
//
// Every function is a pure derivation: it reads its input table and
// returns a newly built table, leaving the input untouched. Running
// the same function twice over an unchanged table yields identical
// output.
package tabstat

import (
	"reflect"
	"sort"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
)

// DistinctCounts returns a one-row table that has, for each column
// of t, a same-named int column holding the number of distinct
// values in that column.
func DistinctCounts(t *table.Table) *table.Table {
	b := new(table.Builder)
	for _, col := range t.Columns() {
		b.Add(col, []int{distinct(t.Column(col))})
	}
	return b.Done()
}

// GroupCount partitions the rows of t by the values in column key
// and returns a table with one row per distinct key value, sorted by
// key, with the key column and an int column named label holding the
// number of rows in each partition.
//
// The counts over all rows of the result sum to t.Len().
func GroupCount(t *table.Table, key, label string) *table.Table {
	g, keys := groupBy(t, key)
	counts := make([]int, len(g.Tables()))
	for i, gid := range g.Tables() {
		counts[i] = g.Table(gid).Len()
	}
	return new(table.Builder).Add(key, keys).Add(label, counts).Done()
}

// GroupDistinct partitions the rows of t by the values in column key
// and returns a table with one row per distinct key value, sorted by
// key, with the key column and an int column named label holding the
// number of distinct values of column col in each partition.
func GroupDistinct(t *table.Table, key, col, label string) *table.Table {
	g, keys := groupBy(t, key)
	counts := make([]int, len(g.Tables()))
	for i, gid := range g.Tables() {
		counts[i] = distinct(g.Table(gid).MustColumn(col))
	}
	return new(table.Builder).Add(key, keys).Add(label, counts).Done()
}

// GroupMean partitions the rows of t by the values in column key and
// returns a table with one row per distinct key value, sorted by
// key, with the key column and a float64 column named label holding
// the arithmetic mean of numeric column col in each partition.
// Partitions are induced by existing rows, so no partition is empty.
func GroupMean(t *table.Table, key, col, label string) *table.Table {
	g, keys := groupBy(t, key)
	means := make([]float64, len(g.Tables()))
	for i, gid := range g.Tables() {
		var xs []float64
		slice.Convert(&xs, g.Table(gid).MustColumn(col))
		means[i] = stats.Mean(xs)
	}
	return new(table.Builder).Add(key, keys).Add(label, means).Done()
}

// TopKBy returns the first k rows of t under a stable descending
// sort on numeric column col. Rows with equal col values keep their
// original order. If t has fewer than k rows, all rows are returned.
func TopKBy(t *table.Table, col string, k int) *table.Table {
	var xs []float64
	slice.Convert(&xs, t.MustColumn(col))
	idxs := make([]int, t.Len())
	for i := range idxs {
		idxs[i] = i
	}
	sort.SliceStable(idxs, func(i, j int) bool {
		return xs[idxs[i]] > xs[idxs[j]]
	})
	if k < 0 {
		k = 0
	}
	if k < len(idxs) {
		idxs = idxs[:k]
	}
	b := new(table.Builder)
	for _, c := range t.Columns() {
		b.Add(c, slice.Select(t.Column(c), idxs))
	}
	return b.Done()
}

// ValueCounts returns a table counting the occurrences of each
// distinct value of column col in t. The result has the col column,
// one row per distinct value, and an int column named label holding
// the counts, sorted by count descending. Values with equal counts
// appear in their first-appearance order in t.
func ValueCounts(t *table.Table, col, label string) *table.Table {
	rv := reflect.ValueOf(t.MustColumn(col))
	counts := make(map[interface{}]int)
	var order []reflect.Value
	for i := 0; i < rv.Len(); i++ {
		v := rv.Index(i)
		k := v.Interface()
		if counts[k] == 0 {
			order = append(order, v)
		}
		counts[k]++
	}
	idxs := make([]int, len(order))
	for i := range idxs {
		idxs[i] = i
	}
	sort.SliceStable(idxs, func(i, j int) bool {
		return counts[order[idxs[i]].Interface()] > counts[order[idxs[j]].Interface()]
	})
	vals := reflect.MakeSlice(rv.Type(), len(order), len(order))
	out := make([]int, len(order))
	for i, j := range idxs {
		vals.Index(i).Set(order[j])
		out[i] = counts[order[j].Interface()]
	}
	return new(table.Builder).Add(col, vals.Interface()).Add(label, out).Done()
}

// groupBy sorts t by column key and groups the result by key. It
// returns the grouping and a slice of each group's key value, in the
// same order as the grouping's tables.
func groupBy(t *table.Table, key string) (table.Grouping, table.Slice) {
	g := table.GroupBy(table.SortBy(t, key), key)
	gids := g.Tables()
	keys := reflect.MakeSlice(reflect.TypeOf(t.MustColumn(key)), len(gids), len(gids))
	for i, gid := range gids {
		col := reflect.ValueOf(g.Table(gid).MustColumn(key))
		keys.Index(i).Set(col.Index(0))
	}
	return g, keys.Interface()
}

func distinct(col table.Slice) int {
	rv := reflect.ValueOf(col)
	seen := make(map[interface{}]bool)
	for i := 0; i < rv.Len(); i++ {
		seen[rv.Index(i).Interface()] = true
	}
	return len(seen)
}
