package cli

import (
	"io"
	"slices"
	"testing"

	"github.com/spf13/cobra"
)

func TestCompleteFormats(t *testing.T) {
	tests := []struct {
		toComplete string
		want       []string
	}{
		{"", []string{"dot", "json", "pdf", "png", "svg", "txt"}},
		{"sv", []string{"dot", "json", "pdf", "png", "svg", "txt"}},
		{"svg,", []string{"svg,dot", "svg,json", "svg,pdf", "svg,png", "svg,txt"}},
		{"svg,json,p", []string{"svg,json,dot", "svg,json,pdf", "svg,json,png", "svg,json,txt"}},
	}

	for _, tt := range tests {
		t.Run(tt.toComplete, func(t *testing.T) {
			got, directive := completeFormats(nil, nil, tt.toComplete)
			if !slices.Equal(got, tt.want) {
				t.Errorf("completeFormats(%q) = %v, want %v", tt.toComplete, got, tt.want)
			}
			if directive&cobra.ShellCompDirectiveNoSpace == 0 {
				t.Error("format completion should not append a space")
			}
		})
	}
}

func TestCompleteScenarios(t *testing.T) {
	exts, directive := completeScenarios(nil, nil, "")
	if !slices.Equal(exts, []string{"toml"}) || directive != cobra.ShellCompDirectiveFilterFileExt {
		t.Errorf("completeScenarios() = %v, %v; want [toml], FilterFileExt", exts, directive)
	}
}

func TestCompletionShells(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()
	cmd, _, err := root.Find([]string{"completion"})
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(cmd.ValidArgs, []string{"bash", "fish", "powershell", "zsh"}) {
		t.Errorf("ValidArgs = %v", cmd.ValidArgs)
	}
	for name, gen := range shells {
		if err := gen(root, io.Discard); err != nil {
			t.Errorf("%s completion error: %v", name, err)
		}
	}
}
