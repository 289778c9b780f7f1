// Package render builds rich presences from the application settings.
package render

import (
	"io"
	"log"
	"strings"
	"time"

	"github.com/diginatu/nagome-presence/presence"
	"github.com/diginatu/nagome-presence/settings"
)

// Mode is a mode of rendering.
type Mode int

// Enum Mode
const (
	ModeNormal Mode = iota
	ModePreview
)

func (m Mode) String() string {
	if m == ModePreview {
		return "preview"
	}
	return "normal"
}

// Type is a type of render that selects the layout.
type Type int

// Enum Type
const (
	TypeApplication Type = iota
	TypeProject
	TypeFile
)

func (t Type) String() string {
	switch t {
	case TypeFile:
		return "file"
	case TypeProject:
		return "project"
	default:
		return "application"
	}
}

// TypeOf returns the type for the most specific data in ctx.
func TypeOf(ctx *presence.Context) Type {
	switch {
	case ctx == nil:
		return TypeApplication
	case ctx.File != nil:
		return TypeFile
	case ctx.Project != nil:
		return TypeProject
	default:
		return TypeApplication
	}
}

func (t Type) layoutType() settings.LayoutType {
	switch t {
	case TypeFile:
		return settings.LayoutFile
	case TypeProject:
		return settings.LayoutProject
	default:
		return settings.LayoutApplication
	}
}

// An Image is an image of the presence.
type Image struct {
	Key  string `json:"key"`
	Text string `json:"text,omitempty"`
}

// A RichPresence is the presence sent to the chat client.
type RichPresence struct {
	Details        string     `json:"details,omitempty"`
	State          string     `json:"state,omitempty"`
	StartTimestamp *time.Time `json:"start_timestamp,omitempty"`
	LargeImage     *Image     `json:"large_image,omitempty"`
	SmallImage     *Image     `json:"small_image,omitempty"`
	PartyID        string     `json:"party_id,omitempty"`

	Type Type `json:"-"`
	Mode Mode `json:"-"`
}

// A Renderer renders presences with the settings.
type Renderer struct {
	Settings *settings.ApplicationSettings
	Mode     Mode
	// PluginVersion is sent as the party ID when it is not empty.
	PluginVersion string

	log *log.Logger
	now func() time.Time
}

// New creates new Renderer.
// Logging is discarded if logger is nil.
func New(s *settings.ApplicationSettings, mode Mode, logger *log.Logger) *Renderer {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Renderer{
		Settings: s,
		Mode:     mode,
		log:      logger,
		now:      time.Now,
	}
}

// Render renders the presence for ctx.
// It returns nil when the presence is disabled.
func (r *Renderer) Render(ctx *presence.Context) *RichPresence {
	s := r.Settings
	if !s.IsEnabled() {
		return nil
	}

	// The context is copied to apply the render options of the settings.
	var c presence.Context
	if ctx != nil {
		c = *ctx
	}
	c.ApplicationType = s.ApplicationType
	c.FilePrefix = s.FilePrefix

	t := TypeOf(&c)
	l := s.LayoutFor(t.layoutType())

	p := &RichPresence{
		Details:    line(l.Details.Get(&c), l.DetailsCustom),
		State:      line(l.State.Get(&c), l.StateCustom),
		LargeImage: image(l.IconLarge.Get(&c), l.IconLargeText.Get(&c)),
		SmallImage: image(l.IconSmall.Get(&c), l.IconSmallText.Get(&c)),
		PartyID:    r.PluginVersion,
		Type:       t,
		Mode:       r.Mode,
	}

	custom := r.customTimestamp()
	if s.TimeOverride {
		p.StartTimestamp = custom
	} else {
		switch tr := l.Time.Get(&c); tr.Kind {
		case presence.ResultCustom:
			p.StartTimestamp = custom
		case presence.ResultValue:
			ts := time.UnixMilli(tr.Millis)
			p.StartTimestamp = &ts
		}
	}

	return p
}

func line(res presence.LineResult, custom string) string {
	switch res.Kind {
	case presence.ResultCustom:
		return custom
	case presence.ResultValue:
		return res.Value
	}
	return ""
}

func image(icon presence.IconResult, text presence.LineResult) *Image {
	if icon.Kind != presence.ResultValue {
		return nil
	}
	return &Image{Key: icon.Asset, Text: line(text, "")}
}

// customTimestamp parses the custom timestamp in local time.
// Timestamps in the future are moved to now.
func (r *Renderer) customTimestamp() *time.Time {
	v := strings.Replace(r.Settings.TimeCustom, "T", " ", 1)
	ts, err := time.ParseInLocation(settings.TimestampLayout, v, time.Local)
	if err != nil {
		r.log.Println("invalid custom timestamp :", err)
		return nil
	}
	if now := r.now(); ts.After(now) {
		ts = now
	}
	return &ts
}
