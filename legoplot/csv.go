// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"reflect"

	"github.com/aclements/go-gg/table"
)

// writeCSV writes t to path, one CSV record per row, with a header
// of column names.
func writeCSV(path string, t *table.Table) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write(t.Columns()); err != nil {
		return err
	}
	cols := make([]reflect.Value, len(t.Columns()))
	for i, col := range t.Columns() {
		cols[i] = reflect.ValueOf(t.Column(col))
	}
	rec := make([]string, len(cols))
	for i := 0; i < t.Len(); i++ {
		for j := range cols {
			rec[j] = fmt.Sprint(cols[j].Index(i).Interface())
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
