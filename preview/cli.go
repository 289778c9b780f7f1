// Package preview provides a command line program that renders rich
// presences from a settings file.
package preview

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/diginatu/nagome-presence/presence"
	"github.com/diginatu/nagome-presence/render"
	"github.com/diginatu/nagome-presence/settings"
)

const (
	logFileName      = "info.log"
	logFlags         = log.Lshortfile | log.Ltime
	settingsFileName = "presence.yml"
)

// CLI has valuables and settings for a CLI environment.
type CLI struct {
	OutStream, ErrStream io.Writer
	SavePath             string
	AppName, Version     string
	// Context ends watching the settings file.
	Context context.Context
	log     *log.Logger
}

// NewCLI creates new default values CLI struct.
func NewCLI(name, appname string) *CLI {
	return &CLI{
		OutStream: os.Stdout,
		ErrStream: os.Stderr,
		AppName:   appname,
		SavePath:  findUserConfigPath(appname),
		Context:   context.Background(),
		log:       log.New(os.Stderr, name, logFlags),
	}
}

// RunCli runs CLI functions as one command line program.
// This returns the CLI return value.
func (c *CLI) RunCli(args []string) int {
	var (
		printHelp    bool
		settingsPath string
	)

	flagst := flag.NewFlagSet(c.AppName, flag.ContinueOnError)
	flagst.SetOutput(c.ErrStream)

	flagst.StringVar(&c.SavePath, "savepath", c.SavePath, "Set <string> to save directory.")
	flagst.StringVar(&settingsPath, "settings", "", `Set <string> to the settings file.
	(in default, "`+settingsFileName+`" in the save directory)`)
	appName := flagst.String("app", "IntelliJ IDEA", "Application name.")
	appEdition := flagst.String("edition", "", "Application edition.")
	appVersion := flagst.String("appver", "", "Application version.")
	project := flagst.String("project", "", "Name of the focused project.")
	projectDesc := flagst.String("projdesc", "", "Description of the focused project.")
	filePath := flagst.String("file", "", "Path of the focused file.")
	lang := flagst.String("lang", "", "Language of the focused file.")
	readOnly := flagst.Bool("readonly", false, "The focused file is only read.")
	watch := flagst.Bool("watch", false, "Render again whenever the settings file changes.")
	debugToStderr := flagst.Bool("dbgtostd", false, `Output debug information to stderr.
	(in default, output to the log file in the save directory)`)
	flagst.BoolVar(&printHelp, "help", false, "Print this help.")
	flagst.BoolVar(&printHelp, "h", false, "Print this help. (shorthand)")
	printVersion := flagst.Bool("v", false, "Print version information.")

	err := flagst.Parse(args[1:])
	if err != nil {
		return 1
	}

	if printHelp {
		flagst.Usage()
		return 0
	}
	if *printVersion {
		fmt.Fprintln(c.OutStream, c.AppName, " ", c.Version)
		return 0
	}

	// set log
	var logw io.Writer
	if *debugToStderr {
		logw = c.ErrStream
	} else {
		if err := os.MkdirAll(c.SavePath, 0777); err != nil {
			c.log.Println("could not make save directory\n", err)
			return 1
		}
		file, err := os.Create(filepath.Join(c.SavePath, logFileName))
		if err != nil {
			c.log.Println("could not open log file\n", err)
			return 1
		}
		defer func() {
			err := file.Close()
			if err != nil {
				c.log.Println(err)
			}
		}()
		logw = file
	}
	c.log.SetOutput(logw)

	if settingsPath == "" {
		settingsPath = filepath.Join(c.SavePath, settingsFileName)
	}

	now := time.Now().UnixMilli()
	pctx := &presence.Context{
		Application: &presence.Application{
			Name:      *appName,
			Edition:   *appEdition,
			Version:   *appVersion,
			Icon:      "application",
			StartTime: now,
		},
	}
	if *project != "" {
		pctx.Project = &presence.Project{
			Name:        *project,
			Description: *projectDesc,
			StartTime:   now,
		}
	}
	if *filePath != "" {
		pctx.File = &presence.File{
			Name:      filepath.Base(*filePath),
			Path:      *filePath,
			Language:  *lang,
			Icon:      fileIcon(*lang),
			ReadOnly:  *readOnly,
			StartTime: now,
		}
	}

	if *watch {
		err = c.watch(settingsPath, pctx)
	} else {
		err = c.preview(settingsPath, pctx)
	}
	if err != nil {
		c.log.Println(err)
		return 1
	}

	return 0
}

type previewOutput struct {
	Type     string               `json:"type"`
	Presence *render.RichPresence `json:"presence"`
}

// preview renders a presence with the settings in path and writes it to OutStream.
func (c *CLI) preview(path string, pctx *presence.Context) error {
	s, err := c.loadSettings(path)
	if err != nil {
		return err
	}

	r := render.New(s, render.ModePreview, c.log)
	r.PluginVersion = c.Version

	out, err := json.MarshalIndent(previewOutput{
		Type:     render.TypeOf(pctx).String(),
		Presence: r.Render(pctx),
	}, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(c.OutStream, "%s\n", out)
	return err
}

// loadSettings loads settings from path.
// The default settings are used when the file does not exist.
func (c *CLI) loadSettings(path string) (*settings.ApplicationSettings, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		c.log.Printf("%s does not exist, using the default settings", path)
		return settings.NewApplicationSettings(), nil
	}
	if err != nil {
		return nil, err
	}

	s, err := settings.Unmarshal(b)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s : %w", path, err)
	}
	return s, nil
}

// watch renders a presence every time the settings file is written,
// until the context of the CLI is done.
func (c *CLI) watch(path string, pctx *presence.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() {
		err := w.Close()
		if err != nil {
			c.log.Println(err)
		}
	}()

	// Watch the directory since editors often replace the file.
	path = filepath.Clean(path)
	if err := w.Add(filepath.Dir(path)); err != nil {
		return err
	}

	if err := c.preview(path, pctx); err != nil {
		c.log.Println(err)
	}

	for {
		select {
		case <-c.Context.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			c.log.Println("settings changed :", ev)
			if err := c.preview(path, pctx); err != nil {
				c.log.Println(err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			c.log.Println(err)
		}
	}
}

func fileIcon(lang string) string {
	if lang == "" {
		return "file"
	}
	return "file_" + strings.ToLower(lang)
}
