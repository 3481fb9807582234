package commands

import (
	"testing"
)

func TestNewRegistersCommands(t *testing.T) {
	t.Setenv("DATEPICK_CONFIG_PATH", t.TempDir())
	cmd := New()
	for _, name := range []string{"pick", "grid", "catalog", "config", "version"} {
		sub, _, err := cmd.Find([]string{name})
		if err != nil || sub.Name() != name {
			t.Fatalf("missing %q command: %v", name, err)
		}
	}
	for _, flag := range []string{"json", "interactive"} {
		if cmd.PersistentFlags().Lookup(flag) == nil {
			t.Fatalf("missing --%s", flag)
		}
	}
}

func TestPickFlagsFollowConfig(t *testing.T) {
	t.Setenv("DATEPICK_CONFIG_PATH", t.TempDir())
	t.Setenv("DATEPICK_MODE", "range")
	cmd := New()
	pick, _, err := cmd.Find([]string{"pick"})
	if err != nil {
		t.Fatal(err)
	}
	if got := pick.Flags().Lookup("mode").DefValue; got != "range" {
		t.Fatalf("--mode should default from the environment, got %q", got)
	}
}
