/*
 * Copyright (c) 2025 Hardiyanto Y -Ebiet.
 * This software is part of the HDX (Hardix Audio) project.
 * This code is provided "as is", without warranty of any kind.
 */

package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"

	"hardixmod/pkg/spec"
)

const default_socket = "/tmp/hdx-modplay.sock"

// startIPC accepts control connections on a unix socket. Each line is a
// console command; queries answer with one JSON line, controls with OK.
func startIPC(path string) (net.Listener, error) {
	_ = os.Remove(path)
	ln, err := net.Listen("unix", path)
	if err != nil {
		return nil, err
	}

	go func() {
		for {
			c, err := ln.Accept()
			if err != nil {
				return
			}
			go handleConn(c)
		}
	}()
	return ln, nil
}

func handleConn(c net.Conn) {
	defer c.Close()

	sc := bufio.NewScanner(c)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if _, err := c.Write([]byte(answer(strings.Fields(line)) + "\n")); err != nil {
			return
		}
	}
}

func answer(args []string) string {
	switch strings.ToUpper(args[0]) {
	case "ABOUT":
		return fmt.Sprintf("%s V.%d.%d (%s plugin %s)", app_name, version_major, version_minor, spec.PluginName, spec.VersionV1)
	case "PING":
		return "Pong"
	case "STATUS":
		return statusJSON()
	case "LIST":
		var out []map[string]interface{}
		for i, p := range playlist {
			out = append(out, map[string]interface{}{
				"index": i,
				"file":  filepath.Base(p),
			})
		}
		j, _ := json.Marshal(out)
		return string(j)
	case "GET":
		if len(args) != 2 {
			return "ERR ARG"
		}
		v, err := hdx.Plugin.Option(args[1])
		if err != nil {
			return "ERR " + err.Error()
		}
		return v
	case "SET":
		if len(args) != 3 {
			return "ERR ARG"
		}
		if err := hdx.Plugin.SetOption(args[1], args[2]); err != nil {
			return "ERR " + err.Error()
		}
		return "OK"
	case "QUIT", "EXIT", "HELP", "OPTIONS":
		// console only
		return "ERR UNKNOWN_COMMAND"
	}

	switch strings.ToLower(args[0]) {
	case "pause", "resume", "play", "stop", "next", "seek", "vol":
		dispatch(args)
		return "OK"
	}
	return "ERR UNKNOWN_COMMAND"
}

func statusJSON() string {
	stateMu.Lock()
	resp := map[string]interface{}{
		"playing":     state.Playing,
		"paused":      state.Paused,
		"loop":        state.Loop,
		"track_index": state.TrackIndex,
		"volume_db":   state.VolumeDB,
	}
	stateMu.Unlock()

	opts := map[string]string{}
	for _, key := range spec.Options {
		if v, err := hdx.Plugin.Option(key); err == nil {
			opts[key] = v
		}
	}
	resp["options"] = opts

	j, _ := json.Marshal(resp)
	return string(j)
}
