// Package catalog prints the years and months the picker offers.
package catalog

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/datepick/pkg/datepicker"
)

const perRow = 10

// Catalog prints the fixed year and month lists.
type Catalog struct {
	Out io.Writer
}

func (c *Catalog) out() io.Writer {
	if c.Out == nil {
		return color.Output
	}
	return c.Out
}

// Do renders both tables.
func (c *Catalog) Do(ctx context.Context) error {
	bold := color.New(color.Bold)

	months := uitable.New()
	months.Separator = "  "
	months.AddRow(bold.Sprint("#"), bold.Sprint("Short"), bold.Sprint("Month"))
	for i, m := range datepicker.Months() {
		months.AddRow(strconv.Itoa(i+1), m.Short, m.Full)
	}
	months.RightAlign(0)
	_, _ = fmt.Fprintln(c.out(), months)
	_, _ = fmt.Fprintln(c.out())

	years := uitable.New()
	years.Separator = " "
	years.AddRow(bold.Sprintf("Years %d-%d", datepicker.FirstYear, datepicker.LastYear))
	row := make([]interface{}, 0, perRow)
	for _, y := range datepicker.Years() {
		row = append(row, y)
		if len(row) == perRow {
			years.AddRow(row...)
			row = row[:0]
		}
	}
	if len(row) > 0 {
		years.AddRow(row...)
	}
	_, _ = fmt.Fprintln(c.out(), years)
	return nil
}

// Listing is the JSON form of the catalog.
type Listing struct {
	Years  []int                  `json:"years"`
	Months []datepicker.MonthName `json:"months"`
}

// List returns the catalog for JSON output.
func List() Listing {
	months := datepicker.Months()
	return Listing{Years: datepicker.Years(), Months: months[:]}
}
