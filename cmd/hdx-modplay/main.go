/*
 * Copyright (c) 2025 Hardiyanto Y -Ebiet.
 * This software is part of the HDX (Hardix Audio) project.
 * This code is provided "as is", without warranty of any kind.
 */

package main

import (
	"flag"
	"fmt"
	"os"

	"hardixmod/internal/config"
	"hardixmod/internal/host"
)

const (
	version_major      = 1
	version_minor      = 0
	developer_title    = "Developer Hardiyanto"
	developer_subtitle = "Build 27/12/2025 -Ebiet Version"
	usage_text         = "Usage: hdx-modplay [-config file.yaml] [-loop] [-socket path] <module> [module...]"
	app_name           = "HDX-ModPlay"
)

var hdx *host.Host

func main() {
	configPath := flag.String("config", host.DefaultConfigPath(), "YAML config file (options, BASS library path)")
	loop := flag.Bool("loop", false, "restart the playlist when it ends")
	socketPath := flag.String("socket", "", "also accept control commands on this unix socket (e.g. "+default_socket+")")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Printf("%s version %d.%d\n", app_name, version_major, version_minor)
		fmt.Printf("%s - %s\n", developer_title, developer_subtitle)
		fmt.Printf("%s\n", usage_text)
		return
	}

	var err error
	hdx, err = host.Open(*configPath)
	if err != nil {
		fmt.Printf("[Error] %v\n", err)
		os.Exit(1)
	}

	if *configPath != "" {
		w, err := config.Watch(*configPath)
		if err != nil {
			fmt.Printf("[Error] watch %s: %v\n", *configPath, err)
		} else {
			defer w.Close()
			go watchConfig(w)
		}
	}

	playlist = flag.Args()
	if *socketPath != "" {
		ln, err := startIPC(*socketPath)
		if err != nil {
			fmt.Printf("[Error] socket %s: %v\n", *socketPath, err)
		} else {
			defer ln.Close()
		}
	}

	stateMu.Lock()
	state.Playing = true
	state.Loop = *loop
	stateMu.Unlock()

	go engineLoop()
	runConsole()
}

func watchConfig(w *config.Watcher) {
	for {
		select {
		case cfg, ok := <-w.Configs:
			if !ok {
				return
			}
			if err := hdx.Reload(cfg); err != nil {
				emitLine(fmt.Sprintf("[Config] %v", err))
				continue
			}
			emitLine("[Config] reloaded")
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			emitLine(fmt.Sprintf("[Config] %v", err))
		}
	}
}
