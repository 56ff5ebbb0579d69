// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"cogentcore.org/frames/base/errors"
	"cogentcore.org/frames/column"
	"cogentcore.org/frames/frame"
)

// demo builds the sample frames and prints them to w.
func demo(w io.Writer) error {
	fr, err := employees()
	if err != nil {
		return err
	}
	if err := fr.Print(w); err != nil {
		return err
	}
	if err := fr.Print(w, "Names", "HighScore"); err != nil {
		return err
	}
	fmt.Fprintln(w, fr.Column("Names"))

	ages, err := column.AsTyped[float64](fr.Column("Ages"))
	if err != nil {
		return err
	}
	high, err := column.AsTyped[float64](fr.Column("HighScore"))
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "average age: %g\ntotal high score: %g\n\n", mean(ages.Values()), sum(high.Values()))

	start := time.Date(2016, 9, 1, 0, 0, 0, 0, time.UTC)
	recent, err := fr.Filter(func(r frame.Row) bool {
		d, err := frame.RowValue[time.Time](r, "StartDate")
		return err == nil && !d.Before(start)
	})
	if err != nil {
		return err
	}
	if err := recent.Print(w); err != nil {
		return err
	}

	years, err := startYears(fr)
	if err != nil {
		return err
	}
	if err := years.Print(w); err != nil {
		return err
	}

	bk, au := library()
	for _, kind := range []frame.JoinKinds{frame.Inner, frame.Left, frame.Outer} {
		jf, err := frame.JoinOn(kind, bk, au, []string{"Name"}, []string{"Surname"})
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s join:\n", kind)
		if err := jf.Print(w); err != nil {
			return err
		}
	}

	sites, params := monitors()
	mf, err := frame.JoinOn(frame.Inner, sites, params, []string{"State", "Site"}, []string{"Region", "Monitor"})
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "sites and parameters:")
	if err := mf.Print(w); err != nil {
		return err
	}

	groups := factorGroups()
	if err := groups.Print(w); err != nil {
		return err
	}
	melted, err := groups.Melt([]string{"FactorA", "FactorB"}, []string{"Group1", "Group2"})
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "melted:")
	return melted.Print(w)
}

// employees returns the sample employee frame, with computed columns.
func employees() (*frame.Frame, error) {
	fr := frame.New()
	errors.Must(fr.SetValues("Names", []string{"Bob", "Mary", "Joe"}))
	errors.Must(fr.Set("StartDate", errors.Must1(column.From([3]time.Time{
		time.Date(2016, 10, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2016, 6, 8, 0, 0, 0, 0, time.UTC),
		time.Date(2017, 9, 2, 0, 0, 0, 0, time.UTC),
	}))))
	for name, vals := range map[string][]float64{
		"Ages":      {41, 28, 35},
		"LowScore":  {78, 81, 85},
		"HighScore": {90, 92, 87},
		"Hours":     {25, 30, 38},
	} {
		if err := fr.Set(name, column.New(vals)); err != nil {
			return nil, err
		}
	}

	high, err := column.AsTyped[float64](fr.Column("HighScore"))
	if err != nil {
		return nil, err
	}
	low, err := column.AsTyped[float64](fr.Column("LowScore"))
	if err != nil {
		return nil, err
	}
	hours, err := column.AsTyped[float64](fr.Column("Hours"))
	if err != nil {
		return nil, err
	}
	diff, err := column.Sub(high, low)
	if err != nil {
		return nil, err
	}
	pay, err := column.MulValues(hours, []float64{15, 20, 12})
	if err != nil {
		return nil, err
	}
	for name, c := range map[string]*column.Typed[float64]{
		"ScoreDiff": diff,
		"HighPlus1": column.AddScalar(high, 1),
		"Pay":       pay,
	} {
		if err := fr.Set(name, c.AsColumn()); err != nil {
			return nil, err
		}
	}
	slog.Info("employees", "rows", fr.NumRows(), "columns", fr.NumColumns())
	return fr.Select("Names", "StartDate", "Ages", "LowScore", "HighScore", "ScoreDiff", "HighPlus1", "Hours", "Pay")
}

// startYears returns a frame with each distinct start year of the
// employees, with their count and average age.
func startYears(fr *frame.Frame) (*frame.Frame, error) {
	var years []int
	for r := range fr.Rows() {
		d, err := frame.RowValue[time.Time](r, "StartDate")
		if err != nil {
			return nil, err
		}
		years = append(years, d.Year())
	}
	yf := frame.New()
	if err := yf.Set("Year", column.New(years)); err != nil {
		return nil, err
	}
	if err := yf.Set("Ages", fr.Column("Ages").Duplicate()); err != nil {
		return nil, err
	}
	distinct, err := yf.Distinct("Year")
	if err != nil {
		return nil, err
	}
	dy, err := column.AsTyped[int](distinct)
	if err != nil {
		return nil, err
	}
	counts := make([]int, dy.Len())
	avg := make([]float64, dy.Len())
	for i, year := range dy.Values() {
		group, err := yf.Filter(func(r frame.Row) bool {
			y, err := frame.RowValue[int](r, "Year")
			return err == nil && y == year
		})
		if err != nil {
			return nil, err
		}
		ages, err := column.AsTyped[float64](group.Column("Ages"))
		if err != nil {
			return nil, err
		}
		counts[i] = group.NumRows()
		avg[i] = mean(ages.Values())
	}
	sf := frame.New()
	if err := sf.Set("Year", distinct); err != nil {
		return nil, err
	}
	if err := sf.Set("AverageAge", column.New(avg)); err != nil {
		return nil, err
	}
	if err := sf.Set("Count", column.New(counts)); err != nil {
		return nil, err
	}
	return sf, nil
}

// library returns the sample books and authors frames.
func library() (books, authors *frame.Frame) {
	books = frame.New()
	errors.Must(books.Set("Name", column.Of("Tukey", "Venables", "Tierney", "Ripley", "Ripley", "McNeil", "R Core")))
	errors.Must(books.Set("Title", column.Of(
		"Exploratory Data Analysis",
		"Modern Applied Statistics ...",
		"LISP-STAT",
		"Spatial Statistics",
		"Stochastic Simulation",
		"Interactive Data Analysis",
		"An Introduction to R")))
	errors.Must(books.Set("OtherAuthor", column.Of(
		column.Null[string]{}, column.NullOf("Ripley"), column.Null[string]{}, column.Null[string]{},
		column.Null[string]{}, column.Null[string]{}, column.NullOf("Venables & Smith"))))

	authors = frame.New()
	errors.Must(authors.Set("Surname", column.Of("Tukey", "Venables", "Tierney", "Ripley", "McNeil", "Chambers")))
	errors.Must(authors.Set("Nationality", column.Of("US", "Australia", "US", "UK", "Australia", "US")))
	errors.Must(authors.Set("Deceased", column.Of(true, false, false, false, false, false)))
	return books, authors
}

// monitors returns the sample monitoring sites, keyed by State and Site,
// and the parameters they measure, keyed by Region and Monitor.
func monitors() (sites, params *frame.Frame) {
	sites = frame.New()
	errors.Must(sites.Set("State", column.Of("IL", "IL", "IN")))
	errors.Must(sites.Set("Site", column.Of(1, 2, 1)))
	errors.Must(sites.Set("Latitude", column.Of(42.46757, 42.04915, 41.6814)))
	errors.Must(sites.Set("Longitude", column.Of(-87.81005, -88.27303, -87.49473)))

	params = frame.New()
	errors.Must(params.Set("Region", column.Of("IL", "IN", "IL", "IL")))
	errors.Must(params.Set("Monitor", column.Of(1, 1, 2, 2)))
	errors.Must(params.Set("Parameter", column.Of("ozone", "so2", "ozone", "no2")))
	errors.Must(params.Set("Duration", column.Of("1h", "1h", "8h", "1h")))
	return sites, params
}

// factorGroups returns the sample two-factor measurements in wide form,
// with one column per group.
func factorGroups() *frame.Frame {
	fr := frame.New()
	errors.Must(fr.Set("FactorA", column.Of("Low", "Medium", "High", "Low", "Medium", "High", "Low", "Medium", "High")))
	errors.Must(fr.Set("FactorB", column.Of("Low", "Low", "Low", "Medium", "Medium", "Medium", "High", "High", "High")))
	errors.Must(fr.SetValues("Group1", []float64{-1.1616334, -0.5991478, 0.8420797, 1.6225569, -0.3450745, 1.6025044, -1.2991011, -0.49064, 0.3897769}))
	errors.Must(fr.SetValues("Group2", []float64{-0.5228371, -1.0461138, -1.5413266, -1.2706469, -1.3377985, 0.7631882, -0.2223622, -1.1802192, -0.3832142}))
	errors.Must(fr.SetValues("Group3", []float64{-0.6587093, -0.1942979, 0.6318852, -0.8026467, 1.4988363, -0.5375833, -0.6321478, 0.1235253, 0.6671101}))
	errors.Must(fr.SetValues("Group4", []float64{0.45064563, 2.47985577, -0.98948125, -0.32332181, 0.36541918, 0.85028148, -1.57284216, 0.09891793, 0.23407257}))
	return fr
}

func sum(vals []float64) float64 {
	s := 0.0
	for _, v := range vals {
		s += v
	}
	return s
}

func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	return sum(vals) / float64(len(vals))
}
