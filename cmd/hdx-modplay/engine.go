/*
 * Copyright (c) 2025 Hardiyanto Y -Ebiet.
 * This software is part of the HDX (Hardix Audio) project.
 * This code is provided "as is", without warranty of any kind.
 */

package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"

	"hardixmod/pkg/audioengine"
	"hardixmod/pkg/ip"
	"hardixmod/pkg/spec"
)

// engineLoop owns the speaker. Everything else talks to it through state.
func engineLoop() {
	sr := beep.SampleRate(spec.SampleRate)
	if err := speaker.Init(sr, sr.N(100*time.Millisecond)); err != nil {
		emitLine(fmt.Sprintf("[Error] speaker: %v", err))
		cmdQuit()
		return
	}

	for {
		stateMu.Lock()
		if state.Quit {
			stateMu.Unlock()
			speaker.Clear()
			return
		}
		if !state.Playing {
			stateMu.Unlock()
			time.Sleep(40 * time.Millisecond)
			continue
		}

		idx := state.TrackIndex
		if idx < 0 || idx >= len(playlist) {
			state.TrackIndex = 0
			if !state.Loop {
				state.Playing = false
			}
			stateMu.Unlock()
			emitStatus()
			continue
		}
		stateMu.Unlock()

		path := playlist[idx]
		stream, err := hdx.OpenFile(path)
		if err != nil {
			emitLine(fmt.Sprintf("[Error] %s: %v", filepath.Base(path), err))
			advance(idx)
			continue
		}

		finished := playTrack(path, stream)
		stream.Close()
		if finished {
			advance(idx)
		}
	}
}

// advance moves past idx unless a command already moved the index.
func advance(idx int) {
	stateMu.Lock()
	if state.TrackIndex == idx {
		state.TrackIndex++
	}
	stateMu.Unlock()
}

// playTrack plays stream until it ends, is skipped or playback stops. It
// reports whether the track should advance.
func playTrack(path string, stream ip.Stream) bool {
	src, err := audioengine.NewStreamer(stream)
	if err != nil {
		emitLine(fmt.Sprintf("[Error] %s: %v", filepath.Base(path), err))
		return true
	}
	announce(path, stream)

	stateMu.Lock()
	vol := &effects.Volume{
		Streamer: src,
		Base:     2,
		Volume:   state.VolumeDB,
	}
	ctrl := &beep.Ctrl{
		Streamer: vol,
		Paused:   state.Paused,
	}
	stateMu.Unlock()

	done := make(chan struct{})
	speaker.Clear()
	speaker.Play(beep.Seq(ctrl, beep.Callback(func() {
		close(done)
	})))

	for {
		select {
		case <-done:
			if err := src.Err(); err != nil {
				emitLine(fmt.Sprintf("[Error] %s: %v", filepath.Base(path), err))
			}
			return true
		case <-time.After(25 * time.Millisecond):
		}

		stateMu.Lock()
		if !state.Playing || state.Quit {
			stateMu.Unlock()
			speaker.Clear()
			return false
		}
		if state.Skip {
			state.Skip = false
			stateMu.Unlock()
			speaker.Clear()
			return true
		}
		seek := state.SeekTo
		state.SeekTo = -1
		paused, volDB := state.Paused, state.VolumeDB
		stateMu.Unlock()

		speaker.Lock()
		ctrl.Paused = paused
		vol.Volume = volDB
		if seek >= 0 {
			err = stream.Seek(seek)
		}
		speaker.Unlock()

		if seek >= 0 && err != nil {
			emitLine(fmt.Sprintf("[Error] seek %.1fs: %v", seek, err))
		}
	}
}

func announce(path string, stream ip.Stream) {
	title := filepath.Base(path)
	if comments, _ := stream.Comments(); len(comments) > 0 && comments[0].Key == spec.CommentTitle {
		title = comments[0].Value
	}
	length := "--:--"
	if d, err := stream.Duration(); err == nil {
		length = fmt.Sprintf("%02d:%02d", d/60, d%60)
	}
	emitLine(fmt.Sprintf("▶ %s [%s] %s", title, stream.Codec(), length))
}
