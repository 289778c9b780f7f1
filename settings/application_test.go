package settings

import (
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/diginatu/nagome-presence/presence"
)

func TestApplicationSettingsDefault(t *testing.T) {
	s := NewApplicationSettings()

	if !s.IsEnabled() {
		t.Fatalf("Should be enabled by default")
	}
	if s.Timeout.Minutes != 5 {
		t.Fatalf("Should be %v but %v", 5, s.Timeout.Minutes)
	}
	if s.File.Time != presence.TimeApplication {
		t.Fatalf("Should be %v but %v", presence.TimeApplication, s.File.Time)
	}
	if s.Project.Details != presence.LineProjectName {
		t.Fatalf("Should be %v but %v", presence.LineProjectName, s.Project.Details)
	}
	if s.NewProjectShow != presence.NewProjectShowAsk {
		t.Fatalf("Should be %v but %v", presence.NewProjectShowAsk, s.NewProjectShow)
	}
}

func TestApplicationSettingsChaining(t *testing.T) {
	s := NewApplicationSettings()
	got := s.SetEnabled(false).
		SetTimeOverride(true).
		SetTheme("material").
		SetApplicationType(presence.ApplicationTypeIDE)

	if got != s {
		t.Fatalf("Should return the receiver")
	}
	if s.IsEnabled() || !s.TimeOverride || s.Theme != "material" || s.ApplicationType != presence.ApplicationTypeIDE {
		t.Fatalf("Unexpected settings %+v", s)
	}
}

func TestApplicationSettingsSanitize(t *testing.T) {
	s := NewApplicationSettings()

	s.SetTimeout(Timeout{Minutes: 500})
	if s.Timeout.Minutes != timeoutMinutesMax {
		t.Fatalf("Should be %v but %v", timeoutMinutesMax, s.Timeout.Minutes)
	}
	s.SetTimeout(Timeout{Minutes: -1})
	if s.Timeout.Minutes != timeoutMinutesMin {
		t.Fatalf("Should be %v but %v", timeoutMinutesMin, s.Timeout.Minutes)
	}

	long := strings.Repeat("あ", CustomTextMaxLength+10)
	s.SetApplicationLayout(Layout{
		Details:       presence.LineFileName,
		DetailsCustom: long,
		Time:          presence.TimeFile,
	})
	if s.Application.Details != presence.LineApplicationName {
		t.Fatalf("Should be %v but %v", presence.LineApplicationName, s.Application.Details)
	}
	if s.Application.Time != presence.TimeApplication {
		t.Fatalf("Should be %v but %v", presence.TimeApplication, s.Application.Time)
	}
	if got := utf8.RuneCountInString(s.Application.DetailsCustom); got != CustomTextMaxLength {
		t.Fatalf("Should be %v but %v", CustomTextMaxLength, got)
	}

	s.SetFileLayout(Layout{Details: presence.LineFileName, Time: presence.TimeFile})
	if s.File.Details != presence.LineFileName || s.File.Time != presence.TimeFile {
		t.Fatalf("Allowed values should be kept %+v", s.File)
	}
}

func TestApplicationSettingsCloneFrom(t *testing.T) {
	src := NewApplicationSettings().
		SetEnabled(false).
		SetTimeCustom("2020-01-02 03:04:05").
		SetFilePrefix(false).
		SetNewProjectShow(presence.NewProjectShowDisable)
	src.File.StateCustom = "custom"
	dst := NewApplicationSettings()

	if got := dst.CloneFrom(src); got != dst {
		t.Fatalf("Should return the receiver")
	}
	if !reflect.DeepEqual(dst, src) {
		t.Fatalf("Should be %+v but %+v", src, dst)
	}
	if !dst.Equal(src) || dst.Hash() != src.Hash() {
		t.Fatalf("Should be equal with same hash")
	}

	src.File.StateCustom = "changed"
	if dst.File.StateCustom != "custom" {
		t.Fatalf("Should not share values")
	}
}

func TestApplicationSettingsEqual(t *testing.T) {
	tests := []struct {
		name   string
		modify func(s *ApplicationSettings)
	}{
		{"enabled", func(s *ApplicationSettings) { s.SetEnabled(false) }},
		{"timeout", func(s *ApplicationSettings) { s.Timeout.ResetTime = false }},
		{"time custom", func(s *ApplicationSettings) { s.SetTimeCustom("2000-01-01 00:00:00") }},
		{"project layout", func(s *ApplicationSettings) { s.Project.State = presence.LineCustom }},
		{"file layout", func(s *ApplicationSettings) { s.File.IconSmall = presence.IconNone }},
		{"theme", func(s *ApplicationSettings) { s.SetTheme("other") }},
		{"application type", func(s *ApplicationSettings) { s.SetApplicationType(presence.ApplicationTypeIDE) }},
	}
	for _, tt := range tests {
		x := NewApplicationSettings()
		y := Clone(NewApplicationSettings, x)
		if !x.Equal(y) || x.Hash() != y.Hash() {
			t.Fatalf("%s: clones should be equal", tt.name)
		}

		tt.modify(y)
		if x.Equal(y) || y.Equal(x) {
			t.Errorf("%s: Should not be equal", tt.name)
		}
		if x.Hash() == y.Hash() {
			t.Errorf("%s: Hash should differ", tt.name)
		}
	}
}

func TestApplicationSettingsLayoutFor(t *testing.T) {
	s := NewApplicationSettings()
	if s.LayoutFor(LayoutFile) != &s.File {
		t.Fatalf("Should be the file layout")
	}
	if s.LayoutFor(LayoutProject) != &s.Project {
		t.Fatalf("Should be the project layout")
	}
	if s.LayoutFor(LayoutApplication) != &s.Application {
		t.Fatalf("Should be the application layout")
	}
}
