// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command legoplot charts the Rebrickable LEGO database.
//
// legoplot reads the colors.csv, sets.csv, and themes.csv exports
// from the Rebrickable database [1] and writes one SVG chart per
// analysis: sets released per year, distinct themes per year, mean
// part count per year, the largest sets by part count, and the
// themes with the most sets. With -table it prints the derived
// tables instead; with -csv it writes them as CSV files.
//
// The most recent years of an export are incomplete, so per-year
// charts exclude them (see -partial-years).
//
// [1] https://rebrickable.com/downloads/
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"

	"github.com/bricklab/legostat/rebrick"
)

func main() {
	log.SetPrefix("legoplot: ")
	log.SetFlags(0)

	var (
		flagCPUProfile = flag.String("cpuprofile", "", "write CPU profile to `file`")
		flagMemProfile = flag.String("memprofile", "", "write heap profile to `file`")
		flagData       = flag.String("C", ".", "read colors.csv, sets.csv, and themes.csv from `dir`")
		flagOut        = flag.String("o", ".", "write output files to `dir`")
		flagTable      = flag.Bool("table", false, "print tables instead of rendering charts")
		flagCSV        = flag.Bool("csv", false, "write tables as CSV files instead of rendering charts")
		flagTop        = flag.Int("top", 10, "keep the `k` largest sets and most prolific themes")
		flagPartial    = flag.Int("partial-years", 2, "exclude the `n` most recent years from per-year analyses")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(2)
	}

	if *flagCPUProfile != "" {
		f, err := os.Create(*flagCPUProfile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if *flagMemProfile != "" {
		defer func() {
			runtime.GC()
			f, err := os.Create(*flagMemProfile)
			if err != nil {
				log.Fatal(err)
			}
			pprof.WriteHeapProfile(f)
			f.Close()
		}()
	}

	// Load the data set.
	colors, err := rebrick.ReadColors(filepath.Join(*flagData, "colors.csv"))
	if err != nil {
		log.Fatal(err)
	}
	sets, err := rebrick.ReadSets(filepath.Join(*flagData, "sets.csv"))
	if err != nil {
		log.Fatal(err)
	}
	themes, err := rebrick.ReadThemes(filepath.Join(*flagData, "themes.csv"))
	if err != nil {
		log.Fatal(err)
	}

	colorTab := colorsToTable(colors)
	setTab := setsToTable(sets)
	themeTab := themesToTable(themes)

	// Per-year analyses run over complete years only; point-in-time
	// queries (first sets, largest sets, top themes) use everything.
	yearTab := excludePartialYears(setTab, *flagPartial)

	spy := setsPerYear(yearTab)
	tpy := themesPerYear(yearTab)
	combined := releasesPerYear(spy, tpy)
	biggest := largestSets(setTab, *flagTop)
	top := topThemes(setTab, themeTab, *flagTop)

	outputs := []struct {
		// name is the base name of the output file.
		name string
		tab  *table.Table
		plot func() *gg.Plot
	}{
		{"colors", colorCounts(colorTab), nil},
		{"trans-colors", transCounts(colorTab), nil},
		{"first-sets", firstSets(setTab), nil},
		{"sets-per-year", spy, func() *gg.Plot { return linePlot(spy, "year", "sets", "sets per year") }},
		{"themes-per-year", tpy, func() *gg.Plot { return linePlot(tpy, "year", "themes", "themes per year") }},
		{"releases-per-year", combined, func() *gg.Plot { return releasesPlot(combined) }},
		{"parts-per-year", partsPerYear(yearTab), func() *gg.Plot { return partsPlot(yearTab) }},
		{"largest-sets", biggest, func() *gg.Plot { return largestSetsPlot(biggest) }},
		{"top-themes", top, func() *gg.Plot { return topThemesPlot(top) }},
	}

	for _, out := range outputs {
		switch {
		case *flagTable:
			fmt.Printf("# %s\n", out.name)
			table.Fprint(os.Stdout, out.tab)
			fmt.Println()
		case *flagCSV:
			if err := writeCSV(filepath.Join(*flagOut, out.name+".csv"), out.tab); err != nil {
				log.Fatal(err)
			}
		default:
			if out.plot == nil {
				continue
			}
			path := filepath.Join(*flagOut, out.name+".svg")
			f, err := os.Create(path)
			if err != nil {
				log.Fatal(err)
			}
			if err := out.plot().WriteSVG(f, 600, 400); err != nil {
				f.Close()
				log.Fatal(err)
			}
			if err := f.Close(); err != nil {
				log.Fatal(err)
			}
		}
	}
}
