package presence

// Line is the content of a text line of the presence.
type Line int

// Enum Line
const (
	LineNone Line = iota
	LineApplicationName
	LineApplicationVersion
	LineProjectName
	LineProjectDescription
	LineFileName
	LineCustom
)

var (
	lineNames = []string{
		"none",
		"application_name",
		"application_version",
		"project_name",
		"project_description",
		"file_name",
		"custom",
	}
	lineDescriptions = []string{
		"Empty",
		"Application name",
		"Application version",
		"Project name",
		"Project description",
		"File name",
		"Custom",
	}
)

// Choices of the lines for each layout.
var (
	LineApplication1 = Choice[Line]{LineApplicationName, []Line{LineNone, LineApplicationName, LineApplicationVersion, LineCustom}}
	LineApplication2 = Choice[Line]{LineNone, []Line{LineNone, LineApplicationName, LineApplicationVersion, LineCustom}}
	LineProject1     = Choice[Line]{LineProjectName, []Line{LineNone, LineApplicationName, LineApplicationVersion, LineProjectName, LineProjectDescription, LineCustom}}
	LineProject2     = Choice[Line]{LineProjectDescription, []Line{LineNone, LineApplicationName, LineApplicationVersion, LineProjectName, LineProjectDescription, LineCustom}}
	LineFile1        = Choice[Line]{LineProjectName, []Line{LineNone, LineApplicationName, LineApplicationVersion, LineProjectName, LineProjectDescription, LineFileName, LineCustom}}
	LineFile2        = Choice[Line]{LineFileName, []Line{LineNone, LineApplicationName, LineApplicationVersion, LineProjectName, LineProjectDescription, LineFileName, LineCustom}}
)

func (l Line) String() string {
	return describe("Line", lineDescriptions, int(l))
}

// MarshalYAML is a function for implementing yaml.Marshaler.
func (l Line) MarshalYAML() (interface{}, error) {
	return nameOf("line", lineNames, int(l))
}

// UnmarshalYAML is a function for implementing yaml.Unmarshaler.
func (l *Line) UnmarshalYAML(unmarshal func(interface{}) error) error {
	v, err := unmarshalName("line", lineNames, unmarshal)
	if err != nil {
		return err
	}
	*l = Line(v)
	return nil
}

// LineResult is a Line resolved against a Context.
type LineResult struct {
	Kind  ResultKind
	Value string
}

// Get resolves the line against ctx.
func (l Line) Get(ctx *Context) LineResult {
	var (
		s  string
		ok bool
	)
	switch l {
	case LineCustom:
		return LineResult{Kind: ResultCustom}
	case LineApplicationName:
		s, ok = ctx.applicationName()
	case LineApplicationVersion:
		if ctx != nil && ctx.Application != nil {
			s, ok = ctx.Application.Version, true
		}
	case LineProjectName:
		if ctx != nil && ctx.Project != nil {
			s, ok = ctx.Project.Name, true
		}
	case LineProjectDescription:
		if ctx != nil && ctx.Project != nil {
			s, ok = ctx.Project.Description, true
		}
	case LineFileName:
		s, ok = ctx.fileName()
	}
	return stringResult(s, ok)
}

func stringResult(s string, ok bool) LineResult {
	if !ok || s == "" {
		return LineResult{Kind: ResultEmpty}
	}
	return LineResult{Kind: ResultValue, Value: s}
}
