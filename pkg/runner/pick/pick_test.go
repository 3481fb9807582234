package pick

import (
	"testing"

	"tableflip.dev/datepick/pkg/datepicker/selection"
)

func TestOptions(t *testing.T) {
	p := &Pick{Mode: selection.ModeRange, Placeholder: "Trip", Reset: true, LogFile: "trace.log"}
	opts := p.Options()
	if len(opts.Pickers) != 1 {
		t.Fatalf("expected one picker, got %d", len(opts.Pickers))
	}
	po := opts.Pickers[0].Picker
	if po.Mode != selection.ModeRange || po.Placeholder != "Trip" || !po.Resettable {
		t.Fatalf("unexpected picker options %+v", po)
	}
	if !opts.ExitOnCommit || !opts.Trace {
		t.Fatalf("unexpected app options %+v", opts)
	}
	if opts.Title != "Pick range" {
		t.Fatalf("unexpected title %q", opts.Title)
	}
}
