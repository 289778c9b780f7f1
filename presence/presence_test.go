package presence

import (
	"errors"
	"reflect"
	"testing"

	"gopkg.in/yaml.v2"
)

func testContext() *Context {
	return &Context{
		Application: &Application{
			Name:      "IntelliJ IDEA",
			Edition:   "Ultimate",
			Version:   "2020.1",
			Icon:      "application_idea",
			StartTime: 1000,
		},
		Project: &Project{
			Name:        "nagome",
			Description: "comment viewer",
			StartTime:   2000,
		},
		File: &File{
			Name:      "main.go",
			Language:  "Go",
			Icon:      "file_go",
			StartTime: 3000,
		},
	}
}

func TestLineGet(t *testing.T) {
	ctx := testContext()
	tests := []struct {
		line Line
		want LineResult
	}{
		{LineNone, LineResult{Kind: ResultEmpty}},
		{LineCustom, LineResult{Kind: ResultCustom}},
		{LineApplicationName, LineResult{ResultValue, "IntelliJ IDEA"}},
		{LineApplicationVersion, LineResult{ResultValue, "2020.1"}},
		{LineProjectName, LineResult{ResultValue, "nagome"}},
		{LineProjectDescription, LineResult{ResultValue, "comment viewer"}},
		{LineFileName, LineResult{ResultValue, "main.go"}},
	}
	for _, tt := range tests {
		if got := tt.line.Get(ctx); got != tt.want {
			t.Errorf("%v: Should be %v but %v", tt.line, tt.want, got)
		}
	}
}

func TestLineGetMissingData(t *testing.T) {
	ctx := &Context{Application: &Application{Name: "GoLand"}}

	for _, l := range []Line{LineProjectName, LineProjectDescription, LineFileName, LineApplicationVersion} {
		if got := l.Get(ctx); got.Kind != ResultEmpty {
			t.Errorf("%v: Should be empty but %v", l, got)
		}
	}
	if got := LineApplicationName.Get(nil); got.Kind != ResultEmpty {
		t.Fatalf("Should be empty but %v", got)
	}
}

func TestFilePrefix(t *testing.T) {
	ctx := testContext()
	ctx.FilePrefix = true

	if got := LineFileName.Get(ctx).Value; got != "Editing main.go" {
		t.Fatalf("Should be %q but %q", "Editing main.go", got)
	}
	ctx.File.ReadOnly = true
	if got := LineFileName.Get(ctx).Value; got != "Reading main.go" {
		t.Fatalf("Should be %q but %q", "Reading main.go", got)
	}
	if got := IconTextFileName.Get(ctx).Value; got != "main.go" {
		t.Fatalf("Icon text should not be prefixed but %q", got)
	}
}

func TestApplicationTypeName(t *testing.T) {
	ctx := testContext()
	ctx.ApplicationType = ApplicationTypeIDEEdition
	if got := LineApplicationName.Get(ctx).Value; got != "IntelliJ IDEA Ultimate" {
		t.Fatalf("Should be %q but %q", "IntelliJ IDEA Ultimate", got)
	}

	ctx.Application.Edition = ""
	if got := ApplicationTypeIDEEdition.Name(ctx.Application); got != "IntelliJ IDEA" {
		t.Fatalf("Should be %q but %q", "IntelliJ IDEA", got)
	}
}

func TestIconGet(t *testing.T) {
	ctx := testContext()
	if got := IconApplication.Get(ctx); got != (IconResult{ResultValue, "application_idea"}) {
		t.Fatalf("Should be application asset but %v", got)
	}
	if got := IconFile.Get(ctx); got != (IconResult{ResultValue, "file_go"}) {
		t.Fatalf("Should be file asset but %v", got)
	}
	if got := IconNone.Get(ctx); got.Kind != ResultEmpty {
		t.Fatalf("Should be empty but %v", got)
	}
	ctx.File = nil
	if got := IconFile.Get(ctx); got.Kind != ResultEmpty {
		t.Fatalf("Should be empty without a file but %v", got)
	}
	if got := IconTextFileLanguage.Get(ctx); got.Kind != ResultEmpty {
		t.Fatalf("Should be empty without a file but %v", got)
	}
}

func TestTimeGet(t *testing.T) {
	ctx := testContext()
	tests := []struct {
		time Time
		want TimeResult
	}{
		{TimeApplication, TimeResult{ResultValue, 1000}},
		{TimeProject, TimeResult{ResultValue, 2000}},
		{TimeFile, TimeResult{ResultValue, 3000}},
		{TimeCustom, TimeResult{Kind: ResultCustom}},
		{TimeHide, TimeResult{Kind: ResultEmpty}},
	}
	for _, tt := range tests {
		if got := tt.time.Get(ctx); got != tt.want {
			t.Errorf("%v: Should be %v but %v", tt.time, tt.want, got)
		}
	}

	if got := TimeFile.Get(&Context{}); got.Kind != ResultEmpty {
		t.Fatalf("Should be empty but %v", got)
	}
}

func TestChoice(t *testing.T) {
	if !TimeChoiceFile.Allows(TimeFile) {
		t.Fatalf("Should allow %v", TimeFile)
	}
	if got := TimeChoiceApplication.Sanitize(TimeFile); got != TimeApplication {
		t.Fatalf("Should be %v but %v", TimeApplication, got)
	}
	if got := LineFile2.Sanitize(LineCustom); got != LineCustom {
		t.Fatalf("Should be %v but %v", LineCustom, got)
	}
}

type testValues struct {
	Line     Line            `yaml:"line"`
	Icon     Icon            `yaml:"icon"`
	IconText IconText        `yaml:"icon_text"`
	Time     Time            `yaml:"time"`
	Type     ApplicationType `yaml:"type"`
	Show     NewProjectShow  `yaml:"show"`
}

func TestValuesYAML(t *testing.T) {
	v := testValues{
		Line:     LineProjectDescription,
		Icon:     IconFile,
		IconText: IconTextFileLanguage,
		Time:     TimeCustom,
		Type:     ApplicationTypeIDEEdition,
		Show:     NewProjectShowDisable,
	}
	b, err := yaml.Marshal(&v)
	if err != nil {
		t.Fatal(err)
	}
	want := "line: project_description\nicon: file\nicon_text: file_language\ntime: custom\ntype: ide_edition\nshow: disable\n"
	if string(b) != want {
		t.Fatalf("Should be\n%s\nbut\n%s", want, b)
	}

	var nv testValues
	if err := yaml.Unmarshal(b, &nv); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(nv, v) {
		t.Fatalf("Should be %v but %v", v, nv)
	}
}

func TestValuesYAMLUnknownName(t *testing.T) {
	var v testValues
	err := yaml.Unmarshal([]byte("time: forever\n"), &v)

	var ue *UnknownNameError
	if !errors.As(err, &ue) {
		t.Fatalf("Should be UnknownNameError but %v", err)
	}
	if ue.Kind != "time" || ue.Name != "forever" {
		t.Fatalf("Unexpected error content %#v", ue)
	}
}

func TestValuesMarshalInvalid(t *testing.T) {
	if _, err := yaml.Marshal(testValues{Line: Line(42)}); err == nil {
		t.Fatal("Should fail with an invalid value")
	}
	if got := Line(42).String(); got != "Line(42)" {
		t.Fatalf("Should be %q but %q", "Line(42)", got)
	}
}
