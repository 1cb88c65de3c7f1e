/*
 * Copyright (c) 2025 Hardiyanto Y -Ebiet.
 * This software is part of the HDX (Hardix Audio) project.
 * This code is provided "as is", without warranty of any kind.
 */

package main

import (
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"hardixmod/internal/codec"
	"hardixmod/internal/host"
	"hardixmod/pkg/ip"
	"hardixmod/pkg/spec"
)

const (
	version_minor      = 0
	version_major      = 1
	developer_title    = "Developer Hardiyanto"
	developer_subtitle = "Build 27/12/2025 Ebiet Version"
	app_name           = "HDX-ModMeta"
	general_usage      = "Usage: ./hdx-modmeta -mod <module file>"
	json_dump_usage    = "Usage: ./hdx-modmeta -mod <module file> -jsondump"
	analysis_usage     = "Usage: ./hdx-modmeta -mod <module file> -fingerprint [-spectrogram out.png] [-waveform out.png]"
)

type ModuleInfo struct {
	File        string            `json:"file"`
	Plugin      string            `json:"plugin"`
	Codec       string            `json:"codec,omitempty"`
	Duration    int               `json:"duration,omitempty"`
	Comments    map[string]string `json:"comments"`
	Options     map[string]string `json:"options"`
	Fingerprint string            `json:"fingerprint,omitempty"`
	Segments    []string          `json:"segments,omitempty"`
	Waveform    []byte            `json:"waveform,omitempty"`
}

func main() {
	pathFlag := flag.String("mod", "", "module file to inspect")
	jsonDump := flag.Bool("jsondump", false, "print the result as JSON")
	fingerprint := flag.Bool("fingerprint", false, "decode the whole module and fingerprint it")
	specPath := flag.String("spectrogram", "", "write a spectrogram PNG to this path")
	wavePath := flag.String("waveform", "", "write a waveform PNG to this path")
	configPath := flag.String("config", host.DefaultConfigPath(), "YAML config file (options, BASS library path)")
	flag.Parse()

	if *pathFlag == "" {
		fmt.Printf("\n%s %d.%d\n", app_name, version_major, version_minor)
		fmt.Printf("%s %s\n", developer_title, developer_subtitle)
		fmt.Printf("%s\n", general_usage)
		fmt.Printf("%s\n", json_dump_usage)
		fmt.Printf("%s\n", analysis_usage)
		return
	}

	h, err := host.Open(*configPath)
	if err != nil {
		fmt.Printf("[Error] %v\n", err)
		os.Exit(1)
	}

	stream, plugin, err := h.Registry.Open(*pathFlag)
	if err != nil {
		fmt.Printf("[Error] cannot open %s: %v\n", *pathFlag, err)
		os.Exit(1)
	}
	defer stream.Close()

	info := describe(*pathFlag, stream, plugin)

	analyze := *fingerprint || *specPath != "" || *wavePath != ""
	if analyze {
		pcm, err := codec.ReadPCM(stream)
		if err != nil {
			fmt.Printf("[Error] decode: %v\n", err)
			os.Exit(1)
		}
		if *fingerprint {
			fingerprintInto(&info, pcm)
		}
		info.Waveform = codec.GenerateWaveformData(pcm)
		if *specPath != "" {
			writePNG(*specPath, func() ([]byte, error) { return codec.GenerateSpectrogram(pcm) })
		}
		if *wavePath != "" {
			writePNG(*wavePath, func() ([]byte, error) { return codec.RenderWaveform(info.Waveform, 200) })
		}
	}

	if *jsonDump {
		out, _ := json.MarshalIndent(info, "", "  ")
		fmt.Println(string(out))
		return
	}
	printInfo(info)
}

func describe(path string, s ip.Stream, p ip.Plugin) ModuleInfo {
	info := ModuleInfo{
		File:     filepath.Base(path),
		Plugin:   p.Info().Name,
		Codec:    s.Codec(),
		Comments: map[string]string{},
		Options:  map[string]string{},
	}
	if d, err := s.Duration(); err == nil {
		info.Duration = d
	}
	if comments, err := s.Comments(); err == nil {
		for _, c := range comments {
			info.Comments[c.Key] = c.Value
		}
	}
	for _, key := range p.Info().Options {
		if v, err := p.Option(key); err == nil {
			info.Options[key] = v
		}
	}
	return info
}

// fingerprintInto stores the global fingerprint and one hex hash per
// 5 second segment.
func fingerprintInto(info *ModuleInfo, pcm []int16) {
	fp, segments := codec.GenerateFingerprint(pcm)
	info.Fingerprint = fp
	info.Segments = info.Segments[:0]
	for i := 0; i+4 <= len(segments); i += 4 {
		info.Segments = append(info.Segments, hex.EncodeToString(segments[i:i+4]))
	}
}

func writePNG(path string, render func() ([]byte, error)) {
	data, err := render()
	if err == nil {
		err = os.WriteFile(path, data, 0644)
	}
	if err != nil {
		fmt.Printf("[Error] %s: %v\n", path, err)
		return
	}
	fmt.Printf("[Process] Wrote %s\n", path)
}

func printInfo(info ModuleInfo) {
	fmt.Println(strings.Repeat("=", 75))
	fmt.Printf(" FILE          : %s\n", info.File)
	fmt.Printf(" PLUGIN        : %s\n", info.Plugin)
	fmt.Printf(" TITLE         : %s\n", info.Comments[spec.CommentTitle])
	fmt.Printf(" FORMAT        : %s\n", orDash(strings.ToUpper(info.Codec)))
	fmt.Printf(" DURATION      : %02d:%02d\n", info.Duration/60, info.Duration%60)
	if info.Fingerprint != "" {
		fmt.Printf(" FINGERPRINT   : %s\n", info.Fingerprint)
		fmt.Printf(" SEGMENTS      : %d x 5s\n", len(info.Segments))
	}
	fmt.Println(strings.Repeat("-", 75))
	for _, key := range spec.Options {
		fmt.Printf(" %-18s : %s\n", key, info.Options[key])
	}
	if msg := info.Comments[spec.CommentMessage]; msg != "" {
		fmt.Println(strings.Repeat("-", 75))
		fmt.Println(msg)
	}
	fmt.Println(strings.Repeat("=", 75))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
