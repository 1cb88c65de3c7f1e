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
	"path/filepath"
	"strings"

	"hardixmod/internal/codec"
	"hardixmod/internal/host"
)

const (
	version_major      = 1
	version_minor      = 0
	developer_title    = "Developer Hardiyanto"
	developer_subtitle = "Build 27/12/2025 -Ebiet Version"
	usage_text         = "Usage: hdx-mod2opus -mod <module file> [-out file.hdxf] [-verify] [-config file.yaml]"
	app_name           = "HDX-Mod2opus"
)

func main() {
	modPath := flag.String("mod", "", "module file to export")
	outPath := flag.String("out", "", "output frame file (default: next to the module, .hdxf)")
	verify := flag.Bool("verify", false, "decode the written file back and report its frames and duration")
	configPath := flag.String("config", host.DefaultConfigPath(), "YAML config file (options, BASS library path)")
	flag.Parse()

	if *modPath == "" {
		fmt.Printf("%s version %d.%d\n", app_name, version_major, version_minor)
		fmt.Printf("%s - %s\n", developer_title, developer_subtitle)
		fmt.Printf("%s\n", usage_text)
		return
	}
	if *outPath == "" {
		*outPath = strings.TrimSuffix(*modPath, filepath.Ext(*modPath)) + ".hdxf"
	}

	h, err := host.Open(*configPath)
	if err != nil {
		fmt.Printf("[Error] %v\n", err)
		os.Exit(1)
	}

	stream, err := h.OpenFile(*modPath)
	if err != nil {
		fmt.Printf("[Error] cannot open %s: %v\n", *modPath, err)
		os.Exit(1)
	}
	defer stream.Close()

	out, err := os.Create(*outPath)
	if err != nil {
		fmt.Printf("[Error] %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("[Process] Encoding : %s\n", filepath.Base(*modPath))
	duration, err := codec.WriteOpusFile(out, stream)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(*outPath)
		fmt.Printf("[Error] encode: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("[Success] %s (%02d:%02d)\n", *outPath, int(duration)/60, int(duration)%60)

	if *verify {
		if err := verifyFile(*outPath); err != nil {
			fmt.Printf("[Error] verify: %v\n", err)
			os.Exit(1)
		}
	}
}

func verifyFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	frames, seconds, err := codec.VerifyOpusFile(f)
	if err != nil {
		return err
	}
	fmt.Printf("[Verify] %d frames, %.2f s decoded\n", frames, seconds)
	return nil
}
