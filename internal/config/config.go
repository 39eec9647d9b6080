package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"photocopy/internal/domain"
)

const (
	EnvPrefix = "PHOTOCOPY"

	DefaultTemplate    = "PhotoCopy/%Y/%M"
	DefaultFileTimeout = 2 * time.Minute

	ReaderGoexif   = "goexif"
	ReaderExiftool = "exiftool"
)

var defaultExtensions = []string{"jpg", "jpeg"}

// Keys shared by flags, environment variables and the settings file.
const (
	KeySource       = "source"
	KeyTarget       = "target"
	KeyExtensions   = "extensions"
	KeyTemplate     = "template"
	KeyRecursive    = "recursive"
	KeyDeleteSource = "delete-source"
	KeyVerbose      = "verbose"
	KeyTUI          = "tui"
	KeyNoColor      = "no-color"
	KeyReader       = "reader"
	KeyFileTimeout  = "file-timeout"
	KeySettings     = "settings"
	KeySaveSettings = "save-settings"
	KeyLogFile      = "log-file"
)

type Config struct {
	SourceDir    string
	TargetDir    string
	Extensions   domain.ExtensionSet
	Template     string
	Recursive    bool
	DeleteSource bool
	Verbose      bool
	TUI          bool
	NoColor      bool
	Reader       string
	FileTimeout  time.Duration
	SettingsFile string
	SaveSettings bool
	LogFile      string
}

// RunConfig returns the part of the configuration the pipeline consumes.
func (c Config) RunConfig() domain.RunConfig {
	return domain.RunConfig{
		SourceDir:    c.SourceDir,
		TargetDir:    c.TargetDir,
		Extensions:   c.Extensions,
		Template:     c.Template,
		Recursive:    c.Recursive,
		DeleteSource: c.DeleteSource,
		FileTimeout:  c.FileTimeout,
	}
}

func BindFlags(flags *pflag.FlagSet) {
	flags.StringP(KeySource, "s", "", "Source directory to scan")
	flags.StringP(KeyTarget, "t", "", "Library root to move or copy into")
	flags.StringSliceP(KeyExtensions, "e", defaultExtensions, "Accepted file extensions (comma or space separated)")
	flags.String(KeyTemplate, DefaultTemplate, "Directory template below the target, %Y %M %D are replaced")
	flags.BoolP(KeyRecursive, "r", false, "Scan subdirectories")
	flags.Bool(KeyDeleteSource, false, "Move files instead of copying and remove emptied source directories")
	flags.BoolP(KeyVerbose, "v", false, "Verbose output")
	flags.Bool(KeyTUI, false, "Show interactive progress")
	flags.Bool(KeyNoColor, false, "Disable colored output")
	flags.String(KeyReader, ReaderGoexif, "Metadata reader: goexif or exiftool")
	flags.Duration(KeyFileTimeout, DefaultFileTimeout, "Time limit per file, 0 disables")
	flags.String(KeySettings, "", "Settings file (default <user config dir>/photocopy/settings.yaml)")
	flags.Bool(KeySaveSettings, false, "Save source, target, extensions, template and recursion to the settings file")
	flags.String(KeyLogFile, "", "Write logs to this file instead of stderr")
}

// NewViper layers flags over PHOTOCOPY_* environment variables. The settings
// file is read from fsys by Load.
func NewViper(flags *pflag.FlagSet, fsys afero.Fs) (*viper.Viper, error) {
	v := viper.New()
	v.SetFs(fsys)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return nil, err
	}
	return v, nil
}

// Parse reads a configuration from command line arguments.
func Parse(fsys afero.Fs, args []string) (Config, error) {
	flags := pflag.NewFlagSet("photocopy", pflag.ContinueOnError)
	BindFlags(flags)
	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}
	v, err := NewViper(flags, fsys)
	if err != nil {
		return Config{}, err
	}
	return Load(v)
}

// Load resolves the configuration with precedence flag, environment,
// settings file, default.
func Load(v *viper.Viper) (Config, error) {
	settingsFile := v.GetString(KeySettings)
	if settingsFile == "" {
		settingsFile = DefaultSettingsPath()
	}
	if settingsFile != "" {
		if err := readSettings(v, settingsFile); err != nil {
			return Config{}, err
		}
	}

	cfg := Config{
		SourceDir:    strings.TrimSpace(v.GetString(KeySource)),
		TargetDir:    strings.TrimSpace(v.GetString(KeyTarget)),
		Extensions:   domain.ParseExtensions(strings.Join(v.GetStringSlice(KeyExtensions), ",")),
		Template:     v.GetString(KeyTemplate),
		Recursive:    v.GetBool(KeyRecursive),
		DeleteSource: v.GetBool(KeyDeleteSource),
		Verbose:      v.GetBool(KeyVerbose),
		TUI:          v.GetBool(KeyTUI),
		NoColor:      v.GetBool(KeyNoColor),
		Reader:       strings.ToLower(strings.TrimSpace(v.GetString(KeyReader))),
		FileTimeout:  v.GetDuration(KeyFileTimeout),
		SettingsFile: settingsFile,
		SaveSettings: v.GetBool(KeySaveSettings),
		LogFile:      v.GetString(KeyLogFile),
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.SourceDir == "" || c.TargetDir == "" {
		return errors.New("source and target are required")
	}
	if len(c.Extensions) == 0 {
		return errors.New("at least one extension is required")
	}
	switch c.Reader {
	case ReaderGoexif, ReaderExiftool:
	default:
		return fmt.Errorf("unknown reader %q, use %s or %s", c.Reader, ReaderGoexif, ReaderExiftool)
	}
	if c.FileTimeout < 0 {
		return errors.New("file timeout must not be negative")
	}

	var err error
	if c.SourceDir, err = filepath.Abs(c.SourceDir); err != nil {
		return err
	}
	if c.TargetDir, err = filepath.Abs(c.TargetDir); err != nil {
		return err
	}
	return nil
}

func readSettings(v *viper.Viper, path string) error {
	v.SetConfigFile(path)
	if filepath.Ext(path) == "" {
		v.SetConfigType("yaml")
	}
	err := v.ReadInConfig()
	if err == nil {
		return nil
	}
	var notFound viper.ConfigFileNotFoundError
	if errors.Is(err, fs.ErrNotExist) || errors.As(err, &notFound) {
		return nil
	}
	return fmt.Errorf("read settings %s: %w", path, err)
}

// DefaultSettingsPath returns the settings file location, or "" when the
// user config directory is unknown.
func DefaultSettingsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "photocopy", "settings.yaml")
}

// SaveSettings writes the values remembered between runs.
func SaveSettings(fsys afero.Fs, path string, cfg Config) error {
	if path == "" {
		return errors.New("no settings file location")
	}
	if err := fsys.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	v := viper.New()
	v.SetFs(fsys)
	v.Set(KeySource, cfg.SourceDir)
	v.Set(KeyTarget, cfg.TargetDir)
	v.Set(KeyExtensions, cfg.Extensions.List())
	v.Set(KeyTemplate, cfg.Template)
	v.Set(KeyRecursive, cfg.Recursive)
	if filepath.Ext(path) == "" {
		v.SetConfigType("yaml")
	}
	return v.WriteConfigAs(path)
}
