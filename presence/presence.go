// Package presence provides the values a rich presence is built from,
// and the context they are resolved against.
package presence

// An Application represents the running IDE.
type Application struct {
	Name    string
	Edition string
	Version string
	// Icon is the asset key of the application icon.
	Icon string
	// StartTime is in Unix milliseconds.
	StartTime int64
}

// A Project represents an open project.
type Project struct {
	Name        string
	Description string
	StartTime   int64
}

// A File represents the file that is focused in the editor.
type File struct {
	Name     string
	Path     string
	Language string
	Icon     string
	ReadOnly bool

	StartTime int64
}

// Context holds the data that presence values are resolved against.
// Project and File may be nil.
type Context struct {
	Application *Application
	Project     *Project
	File        *File

	ApplicationType ApplicationType
	// FilePrefix prefixes file names with Reading or Editing.
	FilePrefix bool
}

// ResultKind is the kind of a resolved presence value.
type ResultKind int

// Enum ResultKind
const (
	ResultEmpty ResultKind = iota
	ResultCustom
	ResultValue
)

// A Choice is the default value of a selection and the values it allows.
type Choice[T comparable] struct {
	Default T
	Options []T
}

// Allows reports whether v is one of the options.
func (c Choice[T]) Allows(v T) bool {
	for _, o := range c.Options {
		if o == v {
			return true
		}
	}
	return false
}

// Sanitize returns v if it is allowed and the default otherwise.
func (c Choice[T]) Sanitize(v T) T {
	if c.Allows(v) {
		return v
	}
	return c.Default
}

func (ctx *Context) applicationName() (string, bool) {
	if ctx == nil || ctx.Application == nil {
		return "", false
	}
	return ctx.ApplicationType.Name(ctx.Application), true
}

func (ctx *Context) fileName() (string, bool) {
	if ctx == nil || ctx.File == nil {
		return "", false
	}
	if !ctx.FilePrefix {
		return ctx.File.Name, true
	}
	if ctx.File.ReadOnly {
		return "Reading " + ctx.File.Name, true
	}
	return "Editing " + ctx.File.Name, true
}
