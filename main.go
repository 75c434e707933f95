// Copyright
// SPDX-License-Identifier: MIT
// diffpad: terminal diff pad. Paste two snippets, tweak display options,
// see the diff; options and buffers persist locally.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"diffpad/internal/bufsync"
	"diffpad/internal/clip"
	"diffpad/internal/notify"
	"diffpad/internal/options"
	"diffpad/internal/store"
	"diffpad/internal/tui"
)

const Version = "0.1.0"

const (
	stateDirName  = ".diffpad"
	stateFileName = "state.json"
)

func defaultStatePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// No home dir: persist next to the binary's working dir.
		return filepath.Join(stateDirName, stateFileName)
	}
	return filepath.Join(home, stateDirName, stateFileName)
}

func main() {
	statePath := flag.String("state", defaultStatePath(), "path to the state file")
	fontSize := flag.String("font", "", "font size override (10-24)")
	debugLog := flag.String("debug", "", "write a debug log to this file")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("diffpad", Version)
		return
	}

	// A TUI owns the terminal; logs go to a file or nowhere.
	if *debugLog != "" {
		f, err := os.OpenFile(*debugLog, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintln(os.Stderr, "diffpad: cannot open debug log:", err)
			os.Exit(1)
		}
		defer f.Close()
		logrus.SetOutput(f)
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetOutput(io.Discard)
	}

	st := store.Open(*statePath)
	notices := notify.New(notify.DefaultTTL)
	reg := options.New(st, notices)
	if *fontSize != "" {
		// Free-form flag input; non-numeric values coerce to the default.
		reg.SetFontSizeInput(*fontSize)
	}
	sync := bufsync.New(reg.Original, reg.Modified, notices, clip.New())
	m := tui.New(st, reg, sync, notices)

	p := tea.NewProgram(m, tea.WithAltScreen())
	notices.OnExpire(func() { p.Send(tui.NoticeExpiredMsg{}) })

	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "diffpad:", err)
		os.Exit(1)
	}
	// Quit path already detached and flushed; a second flush is harmless
	// and covers abnormal program exits.
	st.Flush()
}
