/*
 * Copyright (c) 2025 Hardiyanto Y -Ebiet.
 * This software is part of the HDX (Hardix Audio) project.
 * This code is provided "as is", without warranty of any kind.
 */

package main

import (
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"hardixmod/internal/codec"
	"hardixmod/internal/host"
)

const (
	version_major      = 1
	version_minor      = 0
	developer_title    = "Developer Hardiyanto"
	developer_subtitle = "Build 27/12/2025 -Ebiet Version"
	usage_text         = "Usage: hdx-mod2wav -sourcepath (module[s] Path) -destpath (WAV[s] Path) [-workers 4] [-gain 1.0] [-config file.yaml]"
	app_name           = "HDX-Mod2wav"
)

func main() {
	sourcePath := flag.String("sourcepath", "", "source directory of module files")
	destPath := flag.String("destpath", "", "destination directory for WAV files")
	workers := flag.Int("workers", 2, "number of simultaneous conversions")
	gain := flag.Float64("gain", 1.0, "linear gain applied to every sample")
	configPath := flag.String("config", host.DefaultConfigPath(), "YAML config file (options, BASS library path)")
	flag.Parse()

	if *sourcePath == "" || *destPath == "" {
		fmt.Printf("%s version %d.%d\n", app_name, version_major, version_minor)
		fmt.Printf("%s - %s\n", developer_title, developer_subtitle)
		fmt.Printf("%s\n", usage_text)
		return
	}

	if err := checkWorkers(*workers); err != nil {
		fmt.Printf("[Error] %v\n", err)
		os.Exit(2)
	}

	h, err := host.Open(*configPath)
	if err != nil {
		fmt.Printf("[Error] %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(*destPath, os.ModePerm); err != nil {
		fmt.Printf("[Error] %v\n", err)
		os.Exit(1)
	}

	files := collect(h, *sourcePath)
	fmt.Printf("[Batch] Found %d module files. Converting with %d workers...\n", len(files), *workers)

	jobs := make(chan string, len(files))
	var wg sync.WaitGroup
	progress := NewProgress(os.Stdout, len(files))

	for w := 1; w <= *workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				progress.Done(filepath.Base(path), convert(h, path, *destPath, *gain))
			}
		}()
	}

	for _, path := range files {
		jobs <- path
	}
	close(jobs)
	wg.Wait()

	if n := progress.Failed(); n > 0 {
		fmt.Printf("\n[Done] %d of %d conversions failed.\n", n, len(files))
		os.Exit(1)
	}
	fmt.Println("\n[Success] All conversions finished.")
}

// collect walks root for files some registered plugin claims.
// checkWorkers rejects pool sizes that would leave every job unconsumed.
func checkWorkers(n int) error {
	if n < 1 {
		return fmt.Errorf("-workers must be at least 1, got %d", n)
	}
	return nil
}

func collect(h *host.Host, root string) []string {
	var files []string
	filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if len(h.Registry.ForFile(path)) > 0 {
			files = append(files, path)
		}
		return nil
	})
	return files
}

func convert(h *host.Host, srcFile, destDir string, gain float64) error {
	fileName := filepath.Base(srcFile)
	destFile := filepath.Join(destDir, strings.TrimSuffix(fileName, filepath.Ext(fileName))+".wav")

	stream, err := h.OpenFile(srcFile)
	if err != nil {
		return err
	}
	defer stream.Close()

	out, err := os.Create(destFile)
	if err != nil {
		return err
	}

	_, err = codec.WriteWAV(stream, out, gain)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(destFile)
		return err
	}
	return nil
}
