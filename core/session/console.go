package session

import (
	"errors"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// ReadlineLoop is the main loop for reading user input from the terminal.
// It handles input parsing, command dispatch, and interface refresh.
func (s *Session) ReadlineLoop() {
	for s.Active {
		line, err := s.ReadLine.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				s.logError(err, "reading command line")
			}
			s.Stop()
			return
		}

		s.Execute(line)

		if s.Active {
			// Refresh autocompletion and prompt after executing the command
			s.ReadLine.Config.AutoComplete = s.commandCompleter()
			s.Refresh()
		}
	}
}

// Execute runs a single command line.
func (s *Session) Execute(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}

	s.logCommand(line)

	parts := strings.Fields(line)
	cmdName := strings.ToLower(parts[0])
	args := parts[1:]

	if handler, found := s.commands[cmdName]; found {
		handler(args)
	} else {
		s.replyColor(colorError, "Unknown command: "+cmdName)
	}
}

// Refresh updates the CLI prompt and forces a redraw of the readline interface.
func (s *Session) Refresh() {
	if s.ReadLine == nil {
		return
	}
	s.ReadLine.SetPrompt(s.prompt())
	s.ReadLine.Refresh()
}

// Stop ends the session, closes readline and the transcript.
func (s *Session) Stop() {
	if !s.Active && s.ReadLine == nil {
		return
	}
	s.Active = false
	if s.ReadLine != nil {
		s.ReadLine.Close()
		s.ReadLine = nil
	}
	for _, c := range s.closers {
		s.logError(c.Close(), "closing output")
	}
	s.closers = nil
	s.logger.Info("session stopped")
}
