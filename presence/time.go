package presence

// Time selects which start time the presence shows the elapsed time from.
type Time int

// Enum Time
const (
	TimeApplication Time = iota
	TimeProject
	TimeFile
	TimeCustom
	TimeHide
)

var (
	timeNames        = []string{"application", "project", "file", "custom", "hide"}
	timeDescriptions = []string{"Application", "Project", "File", "Custom", "Hide"}
)

// Choices of the times for each layout.
var (
	TimeChoiceApplication = Choice[Time]{TimeApplication, []Time{TimeApplication, TimeCustom, TimeHide}}
	TimeChoiceProject     = Choice[Time]{TimeApplication, []Time{TimeApplication, TimeProject, TimeCustom, TimeHide}}
	TimeChoiceFile        = Choice[Time]{TimeApplication, []Time{TimeApplication, TimeProject, TimeFile, TimeCustom, TimeHide}}
)

func (t Time) String() string {
	return describe("Time", timeDescriptions, int(t))
}

// MarshalYAML is a function for implementing yaml.Marshaler.
func (t Time) MarshalYAML() (interface{}, error) {
	return nameOf("time", timeNames, int(t))
}

// UnmarshalYAML is a function for implementing yaml.Unmarshaler.
func (t *Time) UnmarshalYAML(unmarshal func(interface{}) error) error {
	v, err := unmarshalName("time", timeNames, unmarshal)
	if err != nil {
		return err
	}
	*t = Time(v)
	return nil
}

// TimeResult is a Time resolved against a Context.
// Millis is a Unix time in milliseconds when Kind is ResultValue.
type TimeResult struct {
	Kind   ResultKind
	Millis int64
}

// Get resolves the time against ctx.
func (t Time) Get(ctx *Context) TimeResult {
	switch t {
	case TimeCustom:
		return TimeResult{Kind: ResultCustom}
	case TimeApplication:
		if ctx != nil && ctx.Application != nil {
			return timeResult(ctx.Application.StartTime)
		}
	case TimeProject:
		if ctx != nil && ctx.Project != nil {
			return timeResult(ctx.Project.StartTime)
		}
	case TimeFile:
		if ctx != nil && ctx.File != nil {
			return timeResult(ctx.File.StartTime)
		}
	}
	return TimeResult{Kind: ResultEmpty}
}

func timeResult(ms int64) TimeResult {
	if ms == 0 {
		return TimeResult{Kind: ResultEmpty}
	}
	return TimeResult{Kind: ResultValue, Millis: ms}
}
