package tui

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/aalvaropc/ryujin/internal/domain"
)

var reLine = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)

// UserMessage turns err into a one-line message for the terminal.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var us *domain.UnknownServiceError
	var nm *domain.NoMatchError
	var tm *domain.TemplateMissingError
	var re *domain.RenderError

	switch {
	case errors.As(err, &tm):
		return tm.Error()
	case errors.As(err, &us):
		return us.Error()
	case errors.As(err, &nm):
		return nm.Error()
	case errors.Is(err, domain.ErrEmptySelection):
		return "Selection is empty (add services with `ryujin select --add -s NAME`)"
	case errors.Is(err, domain.ErrAborted):
		return "Aborted"
	case errors.As(err, &re):
		var oe *domain.OpError
		if errors.As(re.Err, &oe) && oe.Kind == domain.KindNotFound {
			return "Template not found: " + oe.Path
		}
		return "Template error in " + re.Template + ": " + re.Err.Error()
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {
		case domain.KindNotFound:
			switch {
			case strings.HasPrefix(oe.Op, "catalogfile"):
				return "Catalog not found: " + oe.Path
			case strings.HasPrefix(oe.Op, "answersfile"):
				return "Answers file not found: " + oe.Path
			case strings.HasPrefix(oe.Op, "workspacefinder"):
				return "ryujin home not found (run `ryujin init`)"
			case strings.HasPrefix(oe.Op, "fsoutput"):
				return "Output directory not found: " + oe.Path
			}
			return "Not found"

		case domain.KindInvalidConfig:
			base := "config"
			if strings.TrimSpace(oe.Path) != "" {
				base = filepath.Base(oe.Path)
			}
			if line := extractLine(err.Error()); line != "" {
				return "Invalid " + base + " at line " + line
			}
			if oe.Err != nil {
				return "Invalid " + base + ": " + oe.Err.Error()
			}
			return "Invalid " + base

		case domain.KindIO:
			if oe.Path != "" {
				return "I/O error on " + oe.Path + ": " + rootCause(oe.Err)
			}
			return "I/O error: " + rootCause(oe.Err)
		}
	}

	return unexpectedMsg
}

func rootCause(err error) string {
	if err == nil {
		return ""
	}
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err.Error()
		}
		err = next
	}
}

func extractLine(s string) string {
	m := reLine.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}
