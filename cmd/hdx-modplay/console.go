/*
 * Copyright (c) 2025 Hardiyanto Y -Ebiet.
 * This software is part of the HDX (Hardix Audio) project.
 * This code is provided "as is", without warranty of any kind.
 */

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"hardixmod/pkg/spec"
)

var optionValues = map[string][]string{
	spec.OptionInterpolation:   {"off", "linear", "sinc"},
	spec.OptionModPlaybackMode: {"normal", "ft2", "pt1"},
	spec.OptionRamping:         {"off", "normal", "sensitive"},
	spec.OptionSurround:        {"off", "mode1", "mode2"},
}

const helpText = `Commands:
  pause | resume | play | stop | next
  seek <seconds>
  vol + | vol - | vol <db>
  set <option> <value>
  options
  quit`

func completer() *readline.PrefixCompleter {
	var setItems []readline.PrefixCompleterInterface
	for _, key := range spec.Options {
		var values []readline.PrefixCompleterInterface
		for _, v := range optionValues[key] {
			values = append(values, readline.PcItem(v))
		}
		setItems = append(setItems, readline.PcItem(key, values...))
	}

	return readline.NewPrefixCompleter(
		readline.PcItem("pause"),
		readline.PcItem("resume"),
		readline.PcItem("play"),
		readline.PcItem("stop"),
		readline.PcItem("next"),
		readline.PcItem("seek"),
		readline.PcItem("vol", readline.PcItem("+"), readline.PcItem("-")),
		readline.PcItem("set", setItems...),
		readline.PcItem("options"),
		readline.PcItem("help"),
		readline.PcItem("quit"),
	)
}

func runConsole() {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:       "hdx> ",
		AutoComplete: completer(),
	})
	if err != nil {
		fmt.Printf("[Error] console: %v\n", err)
		return
	}
	defer rl.Close()

	stateMu.Lock()
	state.EventSink = func(line string) {
		fmt.Fprintln(rl.Stdout(), line)
	}
	stateMu.Unlock()

	fmt.Printf("%s version %d.%d (type help)\n", app_name, version_major, version_minor)
	for {
		line, err := rl.Readline()
		if err != nil {
			// Ctrl-C or Ctrl-D
			cmdQuit()
			return
		}
		if !dispatch(strings.Fields(line)) {
			return
		}
	}
}

// dispatch runs one console command and reports whether to keep reading.
func dispatch(args []string) bool {
	if len(args) == 0 {
		return true
	}

	switch strings.ToLower(args[0]) {
	case "pause":
		cmdPause()
	case "resume":
		cmdResume()
	case "play":
		cmdPlay()
	case "stop":
		cmdStop()
	case "next":
		cmdNext()
	case "seek":
		sec, ok := argFloat(args, 1)
		if !ok || sec < 0 {
			emitLine("usage: seek <seconds>")
			break
		}
		cmdSeek(sec)
	case "vol":
		switch {
		case len(args) < 2:
			emitStatus()
		case args[1] == "+":
			cmdVolume(volumeStep)
		case args[1] == "-":
			cmdVolume(-volumeStep)
		default:
			db, ok := argFloat(args, 1)
			if !ok {
				emitLine("usage: vol + | vol - | vol <db>")
				break
			}
			stateMu.Lock()
			current := state.VolumeDB
			stateMu.Unlock()
			cmdVolume(db - current)
		}
	case "set":
		if len(args) != 3 {
			emitLine("usage: set <option> <value>")
			break
		}
		cmdSet(args[1], args[2])
	case "options":
		cmdOptions()
	case "help":
		emitLine(helpText)
	case "quit", "exit":
		cmdQuit()
		return false
	default:
		emitLine(fmt.Sprintf("unknown command %q (type help)", args[0]))
	}
	return true
}

func argFloat(parts []string, idx int) (float64, bool) {
	if len(parts) <= idx {
		return 0, false
	}
	v, err := strconv.ParseFloat(parts[idx], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
