package catalog

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func init() {
	color.NoColor = true
}

func TestCatalog(t *testing.T) {
	var buf bytes.Buffer
	c := &Catalog{Out: &buf}
	if err := c.Do(context.Background()); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	for _, want := range []string{"January", "Dec", "1950", "2050", "Years 1950-2050"} {
		if !strings.Contains(got, want) {
			t.Fatalf("catalog missing %q:\n%s", want, got)
		}
	}
}

func TestList(t *testing.T) {
	l := List()
	if len(l.Years) != 101 || len(l.Months) != 12 {
		t.Fatalf("unexpected listing sizes %d, %d", len(l.Years), len(l.Months))
	}
}
