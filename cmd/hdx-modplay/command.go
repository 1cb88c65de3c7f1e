/*
 * Copyright (c) 2025 Hardiyanto Y -Ebiet.
 * This software is part of the HDX (Hardix Audio) project.
 * This code is provided "as is", without warranty of any kind.
 */

package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"hardixmod/pkg/spec"
)

const volumeStep = 0.5

func emitLine(line string) {
	stateMu.Lock()
	sink := state.EventSink
	stateMu.Unlock()
	if sink != nil {
		sink(line)
	}
}

func emitStatus() {
	stateMu.Lock()
	status := "PLAYING"
	if !state.Playing {
		status = "STOPPED"
	} else if state.Paused {
		status = "PAUSED"
	}
	name := ""
	if state.TrackIndex >= 0 && state.TrackIndex < len(playlist) {
		name = filepath.Base(playlist[state.TrackIndex])
	}
	line := fmt.Sprintf("[%s] %d/%d %s vol %+.1f", status, state.TrackIndex+1, len(playlist), name, state.VolumeDB)
	stateMu.Unlock()

	emitLine(line)
}

func cmdPause() {
	stateMu.Lock()
	state.Paused = true
	stateMu.Unlock()
	emitStatus()
}

func cmdResume() {
	stateMu.Lock()
	state.Paused = false
	stateMu.Unlock()
	emitStatus()
}

func cmdNext() {
	stateMu.Lock()
	state.Skip = true
	stateMu.Unlock()
}

func cmdStop() {
	stateMu.Lock()
	state.Playing = false
	state.Paused = false
	stateMu.Unlock()
	emitStatus()
}

func cmdPlay() {
	stateMu.Lock()
	state.Playing = true
	state.Paused = false
	stateMu.Unlock()
	emitStatus()
}

func cmdQuit() {
	stateMu.Lock()
	state.Quit = true
	state.Playing = false
	stateMu.Unlock()
}

func cmdVolume(delta float64) {
	stateMu.Lock()
	state.VolumeDB += delta
	stateMu.Unlock()
	emitStatus()
}

func cmdSeek(seconds float64) {
	stateMu.Lock()
	state.SeekTo = seconds
	stateMu.Unlock()
}

func cmdSet(key, value string) {
	if err := hdx.Plugin.SetOption(key, value); err != nil {
		emitLine(fmt.Sprintf("[Error] set %s: %v", key, err))
		return
	}
	emitLine(fmt.Sprintf("%s = %s", key, value))
}

func cmdOptions() {
	var b strings.Builder
	for _, key := range spec.Options {
		v, err := hdx.Plugin.Option(key)
		if err != nil {
			v = err.Error()
		}
		fmt.Fprintf(&b, " %-18s : %s\n", key, v)
	}
	emitLine(strings.TrimRight(b.String(), "\n"))
}
