package ui

import (
	"os"
	"testing"
)

func TestHeadlessManager(t *testing.T) {
	t.Run("regular_file_is_headless", func(t *testing.T) {
		f, err := os.CreateTemp(t.TempDir(), "stdin")
		if err != nil {
			t.Fatal(err)
		}
		defer f.Close()

		if !NewHeadlessManagerFor(f.Fd()).IsHeadless() {
			t.Error("a regular file should not be detected as a terminal")
		}
	})

	t.Run("force_and_clear", func(t *testing.T) {
		f, err := os.CreateTemp(t.TempDir(), "stdin")
		if err != nil {
			t.Fatal(err)
		}
		defer f.Close()

		hm := NewHeadlessManagerFor(f.Fd())
		hm.ForceHeadless(false)
		if hm.IsHeadless() {
			t.Error("ForceHeadless(false) should report interactive")
		}
		hm.ClearForce()
		if !hm.IsHeadless() {
			t.Error("ClearForce should restore TTY detection")
		}
	})
}

func TestNewTheme_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if !NewTheme().NoColor {
		t.Error("NO_COLOR=1 should disable color")
	}

	t.Setenv("NO_COLOR", "")
	th := NewTheme()
	if th.NoColor {
		t.Error("empty NO_COLOR should keep color")
	}
	if th.Colors.Primary != ColorPrimary {
		t.Errorf("Primary = %q, want %q", th.Colors.Primary, ColorPrimary)
	}
}
