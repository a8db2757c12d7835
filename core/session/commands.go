package session

import (
	"strconv"
	"strings"

	"github.com/czz/ansiconsole/core/ansi"
	"github.com/czz/ansiconsole/core/tui"
)

const (
	colorError = ansi.Red
	colorOK    = ansi.EmeraldGreen
	colorWarn  = ansi.Gold
)

// ctrl maps the ways ESC can be typed at the prompt to the real byte.
var ctrl = strings.NewReplacer(`\033`, "\033", `\e`, "\033", `\x1b`, "\033", `\u001b`, "\033")

// registerCommands initializes the command map with available command handlers.
func (s *Session) registerCommands() {
	register := func(name, syntax, description string, fn commandFunc) {
		s.commands[name] = fn
		s.Help.Register(name, syntax, description)
	}

	register("help", "", "Help Menu", s.handleHelp)
	register("colors", "", "Lists the color table with samples and escape codes", s.handleColors)
	register("say", "<color> <text...>", "Prints text in one of the table colors", s.handleSay)
	register("ansi", "<params> <text...>", "Prints text after a raw SGR sequence, e.g. ansi 1;4 hello", s.handleAnsi)
	register("strip", "<text...>", `Removes CSI sequences from text (type ESC as \e, \033 or \x1b)`, s.handleStrip)
	register("options", "", "Displays console options", s.handleOptions)
	register("set", "<option> <value>", "Sets a console option", s.handleSet)
	register("exit", "", "Leaves the console", s.handleExit)
}

// handleHelp displays help for console commands.
func (s *Session) handleHelp(args []string) {
	s.replyText(s.Tui.Table(&tui.Table{Padding: 1}, s.Help.Table("Core Commands")))
}

// handleColors prints every entry of the escape code table.
func (s *Session) handleColors(args []string) {
	rows := [][]string{{"Name", "Sample", "Code"}}
	for _, c := range ansi.Colors() {
		rows = append(rows, []string{c.String(), s.Tui.Pack(c, "sample"), strconv.Quote(c.Code())})
	}
	s.replyText(s.Tui.Table(&tui.Table{LineSeparator: true, Padding: 1, Header: true}, rows))
}

// handleSay prints text in a named color.
func (s *Session) handleSay(args []string) {
	if len(args) < 2 {
		s.replyColor(colorError, "Usage: "+s.Help.Usage("say"))
		return
	}

	c, err := ansi.ParseColor(args[0])
	if err != nil {
		s.replyColor(colorError, "Unknown color: "+args[0])
		return
	}

	text := strings.Join(args[1:], " ")
	s.reply(func(b *ansi.Builder) {
		b.Color(c).Append(text).Reset()
	})
}

// handleAnsi prints text after an arbitrary SGR sequence.
func (s *Session) handleAnsi(args []string) {
	if len(args) < 2 {
		s.replyColor(colorError, "Usage: "+s.Help.Usage("ansi"))
		return
	}

	params := args[0]
	if ansi.StripCSI("\033["+params+"m") != "" {
		s.replyColor(colorError, "Invalid SGR parameters: "+params)
		return
	}

	text := strings.Join(args[1:], " ")
	s.reply(func(b *ansi.Builder) {
		b.SGR(strings.Split(params, ";")...).Append(text).Reset()
	})
}

// handleStrip shows text with its CSI sequences removed.
func (s *Session) handleStrip(args []string) {
	if len(args) == 0 {
		s.replyColor(colorError, "Usage: "+s.Help.Usage("strip"))
		return
	}

	input := ctrl.Replace(strings.Join(args, " "))
	stripped := ansi.StripCSI(input)
	s.reply(func(b *ansi.Builder) {
		b.Append(strconv.Quote(stripped))
		if removed := len(input) - len(stripped); removed > 0 {
			b.Gray().Appendf(" (%d bytes removed)", removed).Reset()
		}
	})
}

// handleOptions displays the console options.
func (s *Session) handleOptions(args []string) {
	rows := [][]string{
		{"Console options", "", "", ""},
		{"  Name", "Current Setting", "Type", "Description"},
		{"  ----", "---------------", "----", "-----------"},
	}
	for _, opt := range s.Options.List() {
		row := opt.Format()
		row[0] = "  " + row[0]
		rows = append(rows, row)
	}

	s.replyText(s.Tui.Table(&tui.Table{
		Padding:  1,
		MaxWidth: s.terminalWidth / 3,
	}, rows))
}

// handleSet updates a console option.
func (s *Session) handleSet(args []string) {
	if len(args) < 2 {
		s.replyColor(colorError, "Usage: "+s.Help.Usage("set"))
		return
	}

	opt, err := s.Options.Set(args[0], strings.Join(args[1:], " "))
	if err != nil {
		s.replyColor(colorError, err.Error())
		return
	}
	s.replyColor(colorWarn, opt.Name+" => "+opt.String())
}

// handleExit terminates the session.
func (s *Session) handleExit(args []string) {
	s.replyColor(colorOK, "Bye.")
	s.Stop()
}
