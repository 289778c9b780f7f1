package settings

import (
	"time"
	"unicode/utf8"

	"github.com/diginatu/nagome-presence/presence"
)

const (
	// CustomTextMaxLength is the maximum number of characters of custom texts.
	CustomTextMaxLength = 128
	// TimestampLayout is the layout of the custom timestamp.
	TimestampLayout = "2006-01-02 15:04:05"

	timeoutMinutesMin = 1
	timeoutMinutesMax = 120

	defaultTheme = "classic"
)

var _ Settings[*ApplicationSettings] = (*ApplicationSettings)(nil)

// A Timeout represents the inactivity timeout settings.
type Timeout struct {
	Enabled   bool `yaml:"enabled"`
	Minutes   int  `yaml:"minutes"`
	ResetTime bool `yaml:"reset_time"`
}

// A Layout represents the presence layout of one render type.
type Layout struct {
	Details       presence.Line     `yaml:"details"`
	DetailsCustom string            `yaml:"details_custom"`
	State         presence.Line     `yaml:"state"`
	StateCustom   string            `yaml:"state_custom"`
	IconLarge     presence.Icon     `yaml:"icon_large"`
	IconLargeText presence.IconText `yaml:"icon_large_text"`
	IconSmall     presence.Icon     `yaml:"icon_small"`
	IconSmallText presence.IconText `yaml:"icon_small_text"`
	Time          presence.Time     `yaml:"time"`
}

// LayoutChoices are the choices of every selection in a Layout.
type LayoutChoices struct {
	Details       presence.Choice[presence.Line]
	State         presence.Choice[presence.Line]
	IconLarge     presence.Choice[presence.Icon]
	IconLargeText presence.Choice[presence.IconText]
	IconSmall     presence.Choice[presence.Icon]
	IconSmallText presence.Choice[presence.IconText]
	Time          presence.Choice[presence.Time]
}

// Choices of each layout.
var (
	ApplicationLayoutChoices = LayoutChoices{
		Details:       presence.LineApplication1,
		State:         presence.LineApplication2,
		IconLarge:     presence.IconLargeApplication,
		IconLargeText: presence.IconTextLargeApplication,
		IconSmall:     presence.IconSmallApplication,
		IconSmallText: presence.IconTextSmallApplication,
		Time:          presence.TimeChoiceApplication,
	}
	ProjectLayoutChoices = LayoutChoices{
		Details:       presence.LineProject1,
		State:         presence.LineProject2,
		IconLarge:     presence.IconLargeProject,
		IconLargeText: presence.IconTextLargeProject,
		IconSmall:     presence.IconSmallProject,
		IconSmallText: presence.IconTextSmallProject,
		Time:          presence.TimeChoiceProject,
	}
	FileLayoutChoices = LayoutChoices{
		Details:       presence.LineFile1,
		State:         presence.LineFile2,
		IconLarge:     presence.IconLargeFile,
		IconLargeText: presence.IconTextLargeFile,
		IconSmall:     presence.IconSmallFile,
		IconSmallText: presence.IconTextSmallFile,
		Time:          presence.TimeChoiceFile,
	}
)

// NewLayout creates new Layout with the defaults of c.
func (c *LayoutChoices) NewLayout() Layout {
	return Layout{
		Details:       c.Details.Default,
		State:         c.State.Default,
		IconLarge:     c.IconLarge.Default,
		IconLargeText: c.IconLargeText.Default,
		IconSmall:     c.IconSmall.Default,
		IconSmallText: c.IconSmallText.Default,
		Time:          c.Time.Default,
	}
}

// Sanitize replaces the selections of l that c does not allow with the defaults.
func (c *LayoutChoices) Sanitize(l *Layout) {
	l.Details = c.Details.Sanitize(l.Details)
	l.State = c.State.Sanitize(l.State)
	l.IconLarge = c.IconLarge.Sanitize(l.IconLarge)
	l.IconLargeText = c.IconLargeText.Sanitize(l.IconLargeText)
	l.IconSmall = c.IconSmall.Sanitize(l.IconSmall)
	l.IconSmallText = c.IconSmallText.Sanitize(l.IconSmallText)
	l.Time = c.Time.Sanitize(l.Time)
	l.DetailsCustom = truncate(l.DetailsCustom)
	l.StateCustom = truncate(l.StateCustom)
}

func (l *Layout) hashTo(h *Hasher) {
	h.WriteInt(int(l.Details))
	h.WriteString(l.DetailsCustom)
	h.WriteInt(int(l.State))
	h.WriteString(l.StateCustom)
	h.WriteInt(int(l.IconLarge))
	h.WriteInt(int(l.IconLargeText))
	h.WriteInt(int(l.IconSmall))
	h.WriteInt(int(l.IconSmallText))
	h.WriteInt(int(l.Time))
}

// An ApplicationSettings represents the application wide presence settings.
// The embedded flag tells whether the rich presence is shown at all.
type ApplicationSettings struct {
	Value `yaml:",inline"`

	Timeout      Timeout `yaml:"timeout"`
	TimeOverride bool    `yaml:"time_override"`
	TimeCustom   string  `yaml:"time_custom"`

	Application Layout `yaml:"application"`
	Project     Layout `yaml:"project"`
	File        Layout `yaml:"file"`
	FilePrefix  bool   `yaml:"file_prefix"`

	ApplicationType presence.ApplicationType `yaml:"application_type"`
	Theme           string                   `yaml:"theme"`
	NewProjectShow  presence.NewProjectShow  `yaml:"new_project_show"`
}

// NewApplicationSettings creates new ApplicationSettings with default values.
func NewApplicationSettings() *ApplicationSettings {
	return &ApplicationSettings{
		Value: NewValue(),
		Timeout: Timeout{
			Enabled:   true,
			Minutes:   5,
			ResetTime: true,
		},
		TimeOverride:    false,
		TimeCustom:      time.Now().Truncate(time.Second).Format(TimestampLayout),
		Application:     ApplicationLayoutChoices.NewLayout(),
		Project:         ProjectLayoutChoices.NewLayout(),
		File:            FileLayoutChoices.NewLayout(),
		FilePrefix:      true,
		ApplicationType: presence.ApplicationTypeIDEEdition,
		Theme:           defaultTheme,
		NewProjectShow:  presence.NewProjectShowAsk,
	}
}

// SetEnabled sets whether the rich presence is shown.
func (s *ApplicationSettings) SetEnabled(enabled bool) *ApplicationSettings {
	s.Value.SetEnabled(enabled)
	return s
}

// SetTimeout sets the timeout settings.
// Minutes are clamped to the range the timeout allows.
func (s *ApplicationSettings) SetTimeout(t Timeout) *ApplicationSettings {
	t.Minutes = clampMinutes(t.Minutes)
	s.Timeout = t
	return s
}

// SetTimeOverride sets whether the custom timestamp always replaces the start time.
func (s *ApplicationSettings) SetTimeOverride(override bool) *ApplicationSettings {
	s.TimeOverride = override
	return s
}

// SetTimeCustom sets the custom timestamp text.
func (s *ApplicationSettings) SetTimeCustom(ts string) *ApplicationSettings {
	s.TimeCustom = truncate(ts)
	return s
}

// SetApplicationLayout sets the layout used when only the application is known.
func (s *ApplicationSettings) SetApplicationLayout(l Layout) *ApplicationSettings {
	ApplicationLayoutChoices.Sanitize(&l)
	s.Application = l
	return s
}

// SetProjectLayout sets the layout used when a project is focused.
func (s *ApplicationSettings) SetProjectLayout(l Layout) *ApplicationSettings {
	ProjectLayoutChoices.Sanitize(&l)
	s.Project = l
	return s
}

// SetFileLayout sets the layout used when a file is focused.
func (s *ApplicationSettings) SetFileLayout(l Layout) *ApplicationSettings {
	FileLayoutChoices.Sanitize(&l)
	s.File = l
	return s
}

// SetFilePrefix sets whether file names are prefixed with Reading or Editing.
func (s *ApplicationSettings) SetFilePrefix(prefix bool) *ApplicationSettings {
	s.FilePrefix = prefix
	return s
}

// SetApplicationType sets how the application is named.
func (s *ApplicationSettings) SetApplicationType(t presence.ApplicationType) *ApplicationSettings {
	s.ApplicationType = t
	return s
}

// SetTheme sets the icon theme.
func (s *ApplicationSettings) SetTheme(theme string) *ApplicationSettings {
	s.Theme = theme
	return s
}

// SetNewProjectShow sets what happens when a new project is opened.
func (s *ApplicationSettings) SetNewProjectShow(n presence.NewProjectShow) *ApplicationSettings {
	s.NewProjectShow = n
	return s
}

// CloneFrom copies all settings of src to s.
func (s *ApplicationSettings) CloneFrom(src *ApplicationSettings) *ApplicationSettings {
	s.Timeout = src.Timeout
	s.TimeOverride = src.TimeOverride
	s.TimeCustom = src.TimeCustom
	s.Application = src.Application
	s.Project = src.Project
	s.File = src.File
	s.FilePrefix = src.FilePrefix
	s.ApplicationType = src.ApplicationType
	s.Theme = src.Theme
	s.NewProjectShow = src.NewProjectShow
	s.Value.CloneFrom(&src.Value)
	return s
}

// Equal reports whether s and o hold the same settings.
func (s *ApplicationSettings) Equal(o *ApplicationSettings) bool {
	if s == o {
		return true
	}
	if s == nil || o == nil {
		return false
	}
	return s.Value.Equal(&o.Value) &&
		s.Timeout == o.Timeout &&
		s.TimeOverride == o.TimeOverride &&
		s.TimeCustom == o.TimeCustom &&
		s.Application == o.Application &&
		s.Project == o.Project &&
		s.File == o.File &&
		s.FilePrefix == o.FilePrefix &&
		s.ApplicationType == o.ApplicationType &&
		s.Theme == o.Theme &&
		s.NewProjectShow == o.NewProjectShow
}

// Hash returns a hash consistent with Equal.
func (s *ApplicationSettings) Hash() uint64 {
	h := NewHasher()
	s.Value.HashTo(h)
	h.WriteBool(s.Timeout.Enabled)
	h.WriteInt(s.Timeout.Minutes)
	h.WriteBool(s.Timeout.ResetTime)
	h.WriteBool(s.TimeOverride)
	h.WriteString(s.TimeCustom)
	s.Application.hashTo(h)
	s.Project.hashTo(h)
	s.File.hashTo(h)
	h.WriteBool(s.FilePrefix)
	h.WriteInt(int(s.ApplicationType))
	h.WriteString(s.Theme)
	h.WriteInt(int(s.NewProjectShow))
	return h.Sum64()
}

// LayoutFor returns the layout used for the render type t.
func (s *ApplicationSettings) LayoutFor(t LayoutType) *Layout {
	switch t {
	case LayoutFile:
		return &s.File
	case LayoutProject:
		return &s.Project
	default:
		return &s.Application
	}
}

// LayoutType selects one of the layouts.
type LayoutType int

// Enum LayoutType
const (
	LayoutApplication LayoutType = iota
	LayoutProject
	LayoutFile
)

// UnmarshalYAML is a function for implementing yaml.Unmarshaler.
// Settings missing in the document keep their default values.
func (s *ApplicationSettings) UnmarshalYAML(unmarshal func(interface{}) error) error {
	// Using same struct type causes recursive function call.
	type plain ApplicationSettings
	ns := (*plain)(NewApplicationSettings())
	if err := unmarshal(ns); err != nil {
		return err
	}
	*s = *(*ApplicationSettings)(ns)

	s.Timeout.Minutes = clampMinutes(s.Timeout.Minutes)
	s.TimeCustom = truncate(s.TimeCustom)
	ApplicationLayoutChoices.Sanitize(&s.Application)
	ProjectLayoutChoices.Sanitize(&s.Project)
	FileLayoutChoices.Sanitize(&s.File)
	return nil
}

func clampMinutes(m int) int {
	if m < timeoutMinutesMin {
		return timeoutMinutesMin
	}
	if m > timeoutMinutesMax {
		return timeoutMinutesMax
	}
	return m
}

func truncate(s string) string {
	if utf8.RuneCountInString(s) <= CustomTextMaxLength {
		return s
	}
	return string([]rune(s)[:CustomTextMaxLength])
}
