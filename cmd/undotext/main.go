package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/undotext"
	"github.com/iw2rmb/undotext/console"
	"github.com/iw2rmb/undotext/internal/config"
)

type model struct {
	console console.Model
}

func (m model) Init() tea.Cmd { return m.console.Init() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.console, cmd = m.console.Update(msg)
	return m, cmd
}

func (m model) View() string { return m.console.View() }

func main() {
	if err := run(os.Args[1:]); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("undotext", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to a TOML config file")
	text := fs.String("text", "", "initial line content (overrides config)")
	showVersion := fs.Bool("version", false, "print the version and exit")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Println(undotext.VersionTag())
		return nil
	}

	cfg, err := config.LoadFile(*configPath)
	if err != nil {
		return err
	}
	cfg = config.ApplyEnv(cfg, os.LookupEnv)
	if *text != "" {
		cfg.Text = *text
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	if cfg.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	c := console.New(console.Config{
		Text:   cfg.Text,
		Prompt: cfg.Prompt,
		Style:  styleFromConfig(cfg.Colors),
		Logger: logger,
		OnSubmit: func(line string) {
			logger.Info("submitted", "line", line)
		},
	})

	logger.Info("starting", "version", undotext.Version())
	if _, err := tea.NewProgram(model{console: c}).Run(); err != nil {
		return err
	}
	return nil
}

func newLogger(cfg config.Config) (*slog.Logger, func(), error) {
	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	if cfg.LogFile == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file %s: %w", cfg.LogFile, err)
	}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})
	return slog.New(h), func() { _ = f.Close() }, nil
}

func styleFromConfig(c config.Colors) console.Style {
	st := console.DefaultStyle()
	if c.Prompt != "" {
		st.Prompt = st.Prompt.Foreground(lipgloss.Color(c.Prompt))
	}
	if c.Text != "" {
		st.Text = st.Text.Foreground(lipgloss.Color(c.Text))
	}
	if c.Cursor != "" {
		st.Cursor = st.Cursor.Foreground(lipgloss.Color(c.Cursor))
	}
	if c.Status != "" {
		st.Status = st.Status.Foreground(lipgloss.Color(c.Status))
		st.Scrollback = st.Scrollback.Foreground(lipgloss.Color(c.Status))
	}
	return st
}
