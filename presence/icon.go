package presence

// Icon is the image shown in the presence.
type Icon int

// Enum Icon
const (
	IconNone Icon = iota
	IconApplication
	IconFile
)

var (
	iconNames        = []string{"none", "application", "file"}
	iconDescriptions = []string{"Hidden", "Application", "File"}
)

// Choices of the icons for each layout.
var (
	IconLargeApplication = Choice[Icon]{IconApplication, []Icon{IconApplication, IconNone}}
	IconSmallApplication = Choice[Icon]{IconNone, []Icon{IconApplication, IconNone}}
	IconLargeProject     = Choice[Icon]{IconApplication, []Icon{IconApplication, IconNone}}
	IconSmallProject     = Choice[Icon]{IconNone, []Icon{IconApplication, IconNone}}
	IconLargeFile        = Choice[Icon]{IconFile, []Icon{IconApplication, IconFile, IconNone}}
	IconSmallFile        = Choice[Icon]{IconApplication, []Icon{IconApplication, IconFile, IconNone}}
)

func (i Icon) String() string {
	return describe("Icon", iconDescriptions, int(i))
}

// MarshalYAML is a function for implementing yaml.Marshaler.
func (i Icon) MarshalYAML() (interface{}, error) {
	return nameOf("icon", iconNames, int(i))
}

// UnmarshalYAML is a function for implementing yaml.Unmarshaler.
func (i *Icon) UnmarshalYAML(unmarshal func(interface{}) error) error {
	v, err := unmarshalName("icon", iconNames, unmarshal)
	if err != nil {
		return err
	}
	*i = Icon(v)
	return nil
}

// IconResult is an Icon resolved against a Context.
// Asset is the asset key when Kind is ResultValue.
type IconResult struct {
	Kind  ResultKind
	Asset string
}

// Get resolves the icon against ctx.
func (i Icon) Get(ctx *Context) IconResult {
	var asset string
	switch i {
	case IconApplication:
		if ctx != nil && ctx.Application != nil {
			asset = ctx.Application.Icon
		}
	case IconFile:
		if ctx != nil && ctx.File != nil {
			asset = ctx.File.Icon
		}
	}
	if asset == "" {
		return IconResult{Kind: ResultEmpty}
	}
	return IconResult{Kind: ResultValue, Asset: asset}
}

// IconText is the caption of an Icon.
type IconText int

// Enum IconText
const (
	IconTextNone IconText = iota
	IconTextApplicationName
	IconTextApplicationVersion
	IconTextProjectName
	IconTextFileName
	IconTextFileLanguage
)

var (
	iconTextNames = []string{
		"none",
		"application_name",
		"application_version",
		"project_name",
		"file_name",
		"file_language",
	}
	iconTextDescriptions = []string{
		"Hidden",
		"Application name",
		"Application version",
		"Project name",
		"File name",
		"File language",
	}
)

// Choices of the icon texts for each layout.
var (
	IconTextLargeApplication = Choice[IconText]{IconTextApplicationVersion, []IconText{IconTextApplicationName, IconTextApplicationVersion, IconTextNone}}
	IconTextSmallApplication = Choice[IconText]{IconTextNone, []IconText{IconTextApplicationName, IconTextApplicationVersion, IconTextNone}}
	IconTextLargeProject     = Choice[IconText]{IconTextApplicationVersion, []IconText{IconTextApplicationName, IconTextApplicationVersion, IconTextProjectName, IconTextNone}}
	IconTextSmallProject     = Choice[IconText]{IconTextNone, []IconText{IconTextApplicationName, IconTextApplicationVersion, IconTextProjectName, IconTextNone}}
	IconTextLargeFile        = Choice[IconText]{IconTextFileLanguage, []IconText{IconTextApplicationName, IconTextApplicationVersion, IconTextProjectName, IconTextFileName, IconTextFileLanguage, IconTextNone}}
	IconTextSmallFile        = Choice[IconText]{IconTextApplicationVersion, []IconText{IconTextApplicationName, IconTextApplicationVersion, IconTextProjectName, IconTextFileName, IconTextFileLanguage, IconTextNone}}
)

func (t IconText) String() string {
	return describe("IconText", iconTextDescriptions, int(t))
}

// MarshalYAML is a function for implementing yaml.Marshaler.
func (t IconText) MarshalYAML() (interface{}, error) {
	return nameOf("icon text", iconTextNames, int(t))
}

// UnmarshalYAML is a function for implementing yaml.Unmarshaler.
func (t *IconText) UnmarshalYAML(unmarshal func(interface{}) error) error {
	v, err := unmarshalName("icon text", iconTextNames, unmarshal)
	if err != nil {
		return err
	}
	*t = IconText(v)
	return nil
}

// Get resolves the icon text against ctx.
func (t IconText) Get(ctx *Context) LineResult {
	var (
		s  string
		ok bool
	)
	switch t {
	case IconTextApplicationName:
		s, ok = ctx.applicationName()
	case IconTextApplicationVersion:
		if ctx != nil && ctx.Application != nil {
			s, ok = ctx.Application.Version, true
		}
	case IconTextProjectName:
		if ctx != nil && ctx.Project != nil {
			s, ok = ctx.Project.Name, true
		}
	case IconTextFileName:
		if ctx != nil && ctx.File != nil {
			s, ok = ctx.File.Name, true
		}
	case IconTextFileLanguage:
		if ctx != nil && ctx.File != nil {
			s, ok = ctx.File.Language, true
		}
	}
	return stringResult(s, ok)
}
