package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"photocopy/internal/app"
	"photocopy/internal/config"
	appErrors "photocopy/internal/errors"
	"photocopy/internal/infra/exif"
	"photocopy/internal/infra/fs"
	"photocopy/internal/infra/hash"
	"photocopy/internal/logging"
	"photocopy/internal/presentation"
	"photocopy/internal/tui"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		stop()
		exitWithError(err)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "photocopy",
		Short:         "Sort photos into a date based library using their EXIF capture time",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := config.NewViper(cmd.Flags(), afero.NewOsFs())
			if err != nil {
				return appErrors.Wrap(appErrors.InvalidConfig, "config", "", err)
			}
			cfg, err := config.Load(v)
			if err != nil {
				return appErrors.Wrap(appErrors.InvalidConfig, "config", "", err)
			}
			return run(cmd.Context(), cfg)
		},
	}
	config.BindFlags(cmd.Flags())

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	})
	return cmd
}

func run(ctx context.Context, cfg config.Config) error {
	filesystem := fs.NewOS()
	if info, err := filesystem.Stat(cfg.SourceDir); err != nil {
		return appErrors.Wrap(appErrors.NotFound, "stat", cfg.SourceDir, err)
	} else if !info.IsDir() {
		return appErrors.Wrap(appErrors.InvalidConfig, "stat", cfg.SourceDir, fmt.Errorf("%s is not a directory", cfg.SourceDir))
	}

	logOutput := io.Writer(os.Stderr)
	if cfg.TUI {
		logOutput = io.Discard
	}
	if cfg.LogFile != "" {
		file, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return appErrors.Wrap(appErrors.IOFailure, "open log", cfg.LogFile, err)
		}
		defer file.Close()
		logOutput = file
	}
	logger := logging.New(logOutput, cfg.Verbose).WithFields(map[string]any{
		"source": cfg.SourceDir,
		"target": cfg.TargetDir,
	})

	var metadata app.MetadataReader = exif.NewReader(filesystem.Fs)
	if cfg.Reader == config.ReaderExiftool {
		exiftoolReader := &exif.ExiftoolReader{}
		defer exiftoolReader.Close()
		metadata = exiftoolReader
	}
	hasher := hash.New(filesystem.Fs)

	var err error
	if cfg.TUI {
		err = runTUI(ctx, cfg, filesystem, metadata, hasher, logger)
	} else {
		err = runPlain(ctx, cfg, filesystem, metadata, hasher, logger)
	}
	if err != nil {
		return err
	}

	if cfg.SaveSettings {
		if err := config.SaveSettings(afero.NewOsFs(), cfg.SettingsFile, cfg); err != nil {
			return appErrors.Wrap(appErrors.IOFailure, "save settings", cfg.SettingsFile, err)
		}
		logger.Infof("Saved settings to %s", cfg.SettingsFile)
	}
	return nil
}

func runPlain(ctx context.Context, cfg config.Config, filesystem app.FileSystem, metadata app.MetadataReader, hasher app.ContentHasher, logger logging.Logger) error {
	printer := presentation.Printer{
		Writer:  os.Stdout,
		Verbose: cfg.Verbose,
		Color:   !cfg.NoColor,
	}
	organizer := app.NewOrganizer(filesystem, metadata, hasher, printer, logger)
	if _, err := organizer.Run(ctx, cfg.RunConfig()); err != nil {
		return appErrors.Wrap(appErrors.Internal, "run", cfg.SourceDir, err)
	}
	return nil
}

func runTUI(ctx context.Context, cfg config.Config, filesystem app.FileSystem, metadata app.MetadataReader, hasher app.ContentHasher, logger logging.Logger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	program := tea.NewProgram(tui.NewModel(tui.Config{
		SourceDir:    cfg.SourceDir,
		TargetDir:    cfg.TargetDir,
		DeleteSource: cfg.DeleteSource,
		Cancel:       cancel,
	}))

	organizer := app.NewOrganizer(filesystem, metadata, hasher, tui.Reporter{Program: program}, logger)
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		if _, err := organizer.Run(ctx, cfg.RunConfig()); err != nil {
			program.Send(tui.ErrorMsg{Err: err})
		}
	}()

	_, err := program.Run()
	// The program may exit before the run does, wait for the file in flight.
	cancel()
	<-finished
	if err != nil {
		return appErrors.Wrap(appErrors.Internal, "tui", "", err)
	}
	return nil
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, appErrors.UserMessage(err))
	os.Exit(1)
}
