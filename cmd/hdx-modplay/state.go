/*
 * Copyright (c) 2025 Hardiyanto Y -Ebiet.
 * This software is part of the HDX (Hardix Audio) project.
 * This code is provided "as is", without warranty of any kind.
 */

package main

import "sync"

type PlayerState struct {
	TrackIndex int
	Playing    bool
	Paused     bool
	Loop       bool
	Skip       bool
	Quit       bool
	VolumeDB   float64
	SeekTo     float64 // pending seek in seconds, negative when none
	EventSink  func(string)
}

var (
	state    = PlayerState{SeekTo: -1}
	stateMu  sync.Mutex
	playlist []string
)
