// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rebrick

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseColors(t *testing.T) {
	colors, err := ParseColors(strings.NewReader(`id,name,rgb,is_trans
-1,Unknown,0033B2,f
1,Blue,0055BF,f
36,Trans-Red,C91A09,t
`))
	if err != nil {
		t.Fatal(err)
	}
	want := []Color{
		{-1, "Unknown", "0033B2", false},
		{1, "Blue", "0055BF", false},
		{36, "Trans-Red", "C91A09", true},
	}
	if !reflect.DeepEqual(colors, want) {
		t.Errorf("want %v, got %v", want, colors)
	}
}

func TestParseColorsErrors(t *testing.T) {
	for _, test := range []struct {
		name  string
		input string
	}{
		{"empty", ``},
		{"bad header", "id,name,rgb\n"},
		{"reordered header", "name,id,rgb,is_trans\n"},
		{"bad id", "id,name,rgb,is_trans\nx,Blue,0055BF,f\n"},
		{"bad flag", "id,name,rgb,is_trans\n1,Blue,0055BF,yes\n"},
		{"short record", "id,name,rgb,is_trans\n1,Blue\n"},
	} {
		if _, err := ParseColors(strings.NewReader(test.input)); err == nil {
			t.Errorf("%s: want error, got none", test.name)
		}
	}
}

func TestParseSets(t *testing.T) {
	sets, err := ParseSets(strings.NewReader(`set_num,name,year,theme_id,num_parts
700.3-1,Medium Gift Set (ABB),1949,365,142
10189-1,Taj Mahal,2008,673,5922
`))
	if err != nil {
		t.Fatal(err)
	}
	want := []Set{
		{"700.3-1", "Medium Gift Set (ABB)", 1949, 365, 142},
		{"10189-1", "Taj Mahal", 2008, 673, 5922},
	}
	if !reflect.DeepEqual(sets, want) {
		t.Errorf("want %v, got %v", want, sets)
	}
}

func TestParseSetsErrors(t *testing.T) {
	for _, test := range []struct {
		name  string
		input string
	}{
		{"bad year", "set_num,name,year,theme_id,num_parts\n1-1,X,soon,1,2\n"},
		{"bad theme", "set_num,name,year,theme_id,num_parts\n1-1,X,1949,none,2\n"},
		{"bad parts", "set_num,name,year,theme_id,num_parts\n1-1,X,1949,1,many\n"},
	} {
		if _, err := ParseSets(strings.NewReader(test.input)); err == nil {
			t.Errorf("%s: want error, got none", test.name)
		}
	}
}

func TestParseThemes(t *testing.T) {
	themes, err := ParseThemes(strings.NewReader(`id,name,parent_id
1,Technic,
22,Creator,
23,Basic Model,22
`))
	if err != nil {
		t.Fatal(err)
	}
	want := []Theme{
		{1, "Technic", 0},
		{22, "Creator", 0},
		{23, "Basic Model", 22},
	}
	if !reflect.DeepEqual(themes, want) {
		t.Errorf("want %v, got %v", want, themes)
	}
}

func TestReadMissingFile(t *testing.T) {
	if _, err := ReadSets("testdata/no-such-file.csv"); err == nil {
		t.Error("want error for missing file, got none")
	}
}

func TestParseQuotedFields(t *testing.T) {
	// Set names may contain commas; the export quotes them.
	sets, err := ParseSets(strings.NewReader(`set_num,name,theme_id,num_parts
`))
	if err == nil {
		t.Fatal("want header error, got none")
	}
	sets, err = ParseSets(strings.NewReader(`set_num,name,year,theme_id,num_parts
21108-1,"Ghostbusters Ecto-1, Collector's Edition",2014,576,508
`))
	if err != nil {
		t.Fatal(err)
	}
	if want := "Ghostbusters Ecto-1, Collector's Edition"; len(sets) != 1 || sets[0].Name != want {
		t.Errorf("want one set named %q, got %v", want, sets)
	}
}
