// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rebrick reads the Rebrickable LEGO database CSV exports.
//
// The exports are flat CSV files with fixed schemas, available at:
// https://rebrickable.com/downloads/
//
// Parsing is strict: a missing or reordered header, an unparseable
// field, or a record with the wrong number of fields is an error. No
// row is ever skipped or repaired.
package rebrick

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Color records a single brick color.
type Color struct {
	ID   int
	Name string

	// RGB is the color value as a six-digit hex string, without a
	// leading "#".
	RGB string

	// Trans indicates a transparent color. The export encodes
	// this as a "t"/"f" flag.
	Trans bool
}

// Set records a single purchasable product: one set number, tied to
// a theme and a release year.
type Set struct {
	SetNum   string
	Name     string
	Year     int
	ThemeID  int
	NumParts int
}

// Theme records a named product line grouping many sets. Themes form
// a hierarchy; ParentID is 0 for root themes (the export leaves the
// field empty).
type Theme struct {
	ID       int
	Name     string
	ParentID int
}

var (
	colorHeader = []string{"id", "name", "rgb", "is_trans"}
	setHeader   = []string{"set_num", "name", "year", "theme_id", "num_parts"}
	themeHeader = []string{"id", "name", "parent_id"}
)

// ParseColors parses a colors.csv export from r.
func ParseColors(r io.Reader) ([]Color, error) {
	colors := []Color{}
	err := parse(r, colorHeader, func(line int, rec []string) error {
		c := Color{Name: rec[1], RGB: rec[2]}
		var err error
		if c.ID, err = strconv.Atoi(rec[0]); err != nil {
			return fmt.Errorf("line %d: bad color id %q", line, rec[0])
		}
		switch rec[3] {
		case "t":
			c.Trans = true
		case "f":
			c.Trans = false
		default:
			return fmt.Errorf("line %d: bad is_trans flag %q", line, rec[3])
		}
		colors = append(colors, c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return colors, nil
}

// ParseSets parses a sets.csv export from r.
func ParseSets(r io.Reader) ([]Set, error) {
	sets := []Set{}
	err := parse(r, setHeader, func(line int, rec []string) error {
		s := Set{SetNum: rec[0], Name: rec[1]}
		var err error
		if s.Year, err = strconv.Atoi(rec[2]); err != nil {
			return fmt.Errorf("line %d: bad year %q", line, rec[2])
		}
		if s.ThemeID, err = strconv.Atoi(rec[3]); err != nil {
			return fmt.Errorf("line %d: bad theme_id %q", line, rec[3])
		}
		if s.NumParts, err = strconv.Atoi(rec[4]); err != nil {
			return fmt.Errorf("line %d: bad num_parts %q", line, rec[4])
		}
		sets = append(sets, s)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sets, nil
}

// ParseThemes parses a themes.csv export from r.
func ParseThemes(r io.Reader) ([]Theme, error) {
	themes := []Theme{}
	err := parse(r, themeHeader, func(line int, rec []string) error {
		th := Theme{Name: rec[1]}
		var err error
		if th.ID, err = strconv.Atoi(rec[0]); err != nil {
			return fmt.Errorf("line %d: bad theme id %q", line, rec[0])
		}
		if rec[2] != "" {
			if th.ParentID, err = strconv.Atoi(rec[2]); err != nil {
				return fmt.Errorf("line %d: bad parent_id %q", line, rec[2])
			}
		}
		themes = append(themes, th)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return themes, nil
}

// ReadColors reads a colors.csv export from path.
func ReadColors(path string) ([]Color, error) {
	var colors []Color
	err := readFile(path, func(r io.Reader) error {
		var err error
		colors, err = ParseColors(r)
		return err
	})
	return colors, err
}

// ReadSets reads a sets.csv export from path.
func ReadSets(path string) ([]Set, error) {
	var sets []Set
	err := readFile(path, func(r io.Reader) error {
		var err error
		sets, err = ParseSets(r)
		return err
	})
	return sets, err
}

// ReadThemes reads a themes.csv export from path.
func ReadThemes(path string) ([]Theme, error) {
	var themes []Theme
	err := readFile(path, func(r io.Reader) error {
		var err error
		themes, err = ParseThemes(r)
		return err
	})
	return themes, err
}

func readFile(path string, f func(io.Reader) error) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()
	if err := f(file); err != nil {
		return fmt.Errorf("%s: %v", path, err)
	}
	return nil
}

// parse reads CSV records from r, checks that the header row is
// exactly header, and calls row with each remaining record and its
// line number. The csv reader requires every record to have as many
// fields as the header.
func parse(r io.Reader, header []string, row func(line int, rec []string) error) error {
	cr := csv.NewReader(r)
	hdr, err := cr.Read()
	if err == io.EOF {
		return fmt.Errorf("missing header row")
	} else if err != nil {
		return err
	}
	if !equalStrings(hdr, header) {
		return fmt.Errorf("bad header %q; want %q", hdr, header)
	}
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
		if err := row(line, rec); err != nil {
			return err
		}
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
