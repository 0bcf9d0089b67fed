package main

import (
	"strings"
	"testing"
)

func TestRootCommand(t *testing.T) {
	if rootCmd == nil {
		t.Fatal("rootCmd should be defined")
	}
	if rootCmd.Use != "tradeledger" {
		t.Fatalf("unexpected Use: %q", rootCmd.Use)
	}
	if !strings.Contains(rootCmd.Short, "trade transactions") {
		t.Fatalf("unexpected Short: %q", rootCmd.Short)
	}

	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"summary", "export"} {
		if !names[want] {
			t.Fatalf("missing subcommand %q", want)
		}
	}
}

func TestRootFlags(t *testing.T) {
	for _, name := range []string{"config", "data"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Fatalf("missing persistent flag --%s", name)
		}
	}
}
