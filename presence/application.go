package presence

// ApplicationType selects how the application is named.
type ApplicationType int

// Enum ApplicationType
const (
	ApplicationTypeIDE ApplicationType = iota
	ApplicationTypeIDEEdition
)

var (
	applicationTypeNames        = []string{"ide", "ide_edition"}
	applicationTypeDescriptions = []string{"IDE name", "IDE name and edition"}
)

func (a ApplicationType) String() string {
	return describe("ApplicationType", applicationTypeDescriptions, int(a))
}

// Name returns the display name of app.
func (a ApplicationType) Name(app *Application) string {
	if app == nil {
		return ""
	}
	if a == ApplicationTypeIDEEdition && app.Edition != "" {
		return app.Name + " " + app.Edition
	}
	return app.Name
}

// MarshalYAML is a function for implementing yaml.Marshaler.
func (a ApplicationType) MarshalYAML() (interface{}, error) {
	return nameOf("application type", applicationTypeNames, int(a))
}

// UnmarshalYAML is a function for implementing yaml.Unmarshaler.
func (a *ApplicationType) UnmarshalYAML(unmarshal func(interface{}) error) error {
	v, err := unmarshalName("application type", applicationTypeNames, unmarshal)
	if err != nil {
		return err
	}
	*a = ApplicationType(v)
	return nil
}

// NewProjectShow tells whether a newly opened project shows up in the presence.
type NewProjectShow int

// Enum NewProjectShow
const (
	NewProjectShowAsk NewProjectShow = iota
	NewProjectShowEnable
	NewProjectShowDisable
)

var (
	newProjectShowNames        = []string{"ask", "enable", "disable"}
	newProjectShowDescriptions = []string{"Ask", "Show", "Hide"}
)

func (n NewProjectShow) String() string {
	return describe("NewProjectShow", newProjectShowDescriptions, int(n))
}

// MarshalYAML is a function for implementing yaml.Marshaler.
func (n NewProjectShow) MarshalYAML() (interface{}, error) {
	return nameOf("new project show", newProjectShowNames, int(n))
}

// UnmarshalYAML is a function for implementing yaml.Unmarshaler.
func (n *NewProjectShow) UnmarshalYAML(unmarshal func(interface{}) error) error {
	v, err := unmarshalName("new project show", newProjectShowNames, unmarshal)
	if err != nil {
		return err
	}
	*n = NewProjectShow(v)
	return nil
}
