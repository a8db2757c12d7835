package session

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/chzyer/readline"
	"github.com/czz/ansiconsole/core/ansi"
	"github.com/czz/ansiconsole/core/config"
	"github.com/czz/ansiconsole/core/sender"
	"github.com/czz/ansiconsole/core/tui"
	"github.com/czz/ansiconsole/utils/help"
	"github.com/czz/ansiconsole/utils/option"
)

// commandFunc defines the function signature for a CLI command handler.
type commandFunc func(args []string)

// Session represents a CLI session with state, options, and user interaction.
type Session struct {
	StartedAt     time.Time              // Timestamp when the session started
	Active        bool                   // Indicates if the session is active
	Tui           *tui.Tui               // Text-based UI utilities
	ReadLine      *readline.Instance     // Readline instance for CLI interaction
	Options       *option.OptionManager  // Runtime console settings
	Help          *help.HelpManager      // Command help
	cfg           *config.Config         // Loaded configuration
	logger        *slog.Logger           // Session log
	console       *sender.Console        // The interactive terminal
	outputs       []sender.Sender        // Every destination a reply goes to
	closers       []io.Closer            // Files opened by Start
	terminalWidth int                    // Terminal width in characters
	commands      map[string]commandFunc // Registered CLI commands
}

// NewSession initializes and returns a new Session writing replies to out.
// Replies are mirrored to logger as plain text.
func NewSession(cfg *config.Config, out io.Writer, logger *slog.Logger) (*Session, error) {
	mode, err := tui.ParseColorMode(cfg.Console.Color)
	if err != nil {
		return nil, err
	}

	s := &Session{
		Tui:           tui.NewTui(mode),
		Options:       option.NewOptionManager(),
		Help:          help.NewHelpManager(),
		cfg:           cfg,
		logger:        logger,
		terminalWidth: 80,
		commands:      make(map[string]commandFunc),
	}
	if cfg.Console.Prompt != "" {
		s.Tui.SetPrompt(cfg.Console.Prompt)
	}
	s.console = sender.NewConsole(out, s.Tui.HasEffectsEnable)
	s.outputs = []sender.Sender{s.console, sender.NewLogger(logger)}

	s.registerOptions()
	s.registerCommands()
	return s, nil
}

// registerOptions exposes the settings that can be changed with "set".
func (s *Session) registerOptions() {
	color := option.NewOption("color", option.Bool, s.Tui.HasEffectsEnable(), "Emit ANSI colors on the console")
	color.OnChange = func(v any) { s.Tui.SetEffects(v.(bool)) }

	prompt := option.NewOption("prompt", option.String, s.Tui.GetPrompt(), "Console prompt")
	prompt.OnChange = func(v any) {
		s.Tui.SetPrompt(v.(string))
	}

	s.Options.Register(color)
	s.Options.Register(prompt)
}

// Start begins the interactive session, setting up readline and the transcript.
func (s *Session) Start() error {
	if s.cfg.Console.Transcript != "" {
		f, err := os.OpenFile(s.cfg.Console.Transcript, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("open transcript: %w", err)
		}
		s.closers = append(s.closers, f)
		s.outputs = append(s.outputs, sender.NewWriter("transcript", f))
	}

	// Configure prompt and readline with history and autocomplete
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          s.prompt(),
		HistoryFile:     s.cfg.Console.HistoryFile,
		HistoryLimit:    s.cfg.Console.HistoryLimit,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    s.commandCompleter(),
	})
	if err != nil {
		return fmt.Errorf("start readline: %w", err)
	}

	s.ReadLine = rl
	s.console.SetOutput(rl.Stdout())
	s.Active = true

	// Determine terminal width
	if width, _, err := readline.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		s.terminalWidth = width
	}

	s.logger.Info("session started", "ansi", sender.AnsiSupported(s.console))
	s.StartedAt = time.Now()
	return nil
}

// prompt renders the current prompt for the console.
func (s *Session) prompt() string {
	return s.Tui.Builder(32).Color(ansi.EmeraldGreen).Append(s.Tui.GetPrompt()).Reset().Append(" ").String()
}

// reply builds a message per destination and delivers it to all of them.
func (s *Session) reply(build func(b *ansi.Builder)) {
	if err := sender.Broadcast(s.outputs, 64, build); err != nil {
		s.logError(err, "delivering reply")
	}
}

// replyText delivers an already rendered message, stripped where needed.
func (s *Session) replyText(msg string) {
	for _, out := range s.outputs {
		if err := sender.SendAnsiText(out, msg); err != nil {
			s.logError(err, "delivering reply")
		}
	}
}

func (s *Session) replyColor(c ansi.Color, msg string) {
	s.reply(func(b *ansi.Builder) { b.Color(c).Append(msg).Reset() })
}

// commandCompleter builds a dynamic autocomplete tree based on current session state.
func (s *Session) commandCompleter() *readline.PrefixCompleter {
	colorChildren := []readline.PrefixCompleterInterface{}
	for _, c := range ansi.Colors() {
		colorChildren = append(colorChildren, readline.PcItem(c.String()))
	}

	setChildren := []readline.PrefixCompleterInterface{}
	for _, opt := range s.Options.List() {
		setChildren = append(setChildren, readline.PcItem(opt.Name))
	}

	return readline.NewPrefixCompleter(
		readline.PcItem("help"),
		readline.PcItem("colors"),
		readline.PcItem("say", colorChildren...),
		readline.PcItem("ansi"),
		readline.PcItem("strip"),
		readline.PcItem("options"),
		readline.PcItem("set", setChildren...),
		readline.PcItem("exit"),
	)
}
