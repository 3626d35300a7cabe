package commands

import (
	"testing"

	"github.com/Clemens865/microlabs/internal/gen"
)

// TestCommandsRegistered tests that every tool is wired into the root
func TestCommandsRegistered(t *testing.T) {
	want := []string{
		"configure", "transcribe", "cite", "repurpose", "research",
		"queue", "clips", "console", "image-edit", "screencode", "panel",
	}

	registered := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		registered[cmd.Name()] = true
	}

	for _, name := range want {
		if !registered[name] {
			t.Errorf("command %q not registered", name)
		}
	}
}

// TestGetModelFlagPrecedence tests the flag overriding the config
func TestGetModelFlagPrecedence(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	old := modelFlag
	defer func() { modelFlag = old }()

	modelFlag = ""
	if got := getModel(); got != gen.DefaultModel {
		t.Errorf("getModel() = %q, want the default without a flag", got)
	}

	modelFlag = gen.ModelPro
	if got := getModel(); got != gen.ModelPro {
		t.Errorf("getModel() = %q, want the flag value", got)
	}
}
