package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alexflint/go-arg"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/subkit/vttcheck/internal/config"
	"github.com/subkit/vttcheck/internal/report"
	"github.com/subkit/vttcheck/internal/ui"
	"github.com/subkit/vttcheck/webvtt"
)

func main() {
	var args struct {
		Input   []string `arg:"positional"`
		Lenient bool     `arg:"-l,--lenient" help:"collect cue errors instead of failing on the first"`
		Meta    bool     `arg:"-m,--meta" help:"accept key: value header lines after the signature"`
		Write   bool     `arg:"-w,--write" help:"write a normalized copy next to the input"`
	}
	arg.MustParse(&args)

	conf := config.LoadDefaultOrEmpty()
	if args.Lenient {
		conf.Lenient = true
	}
	if args.Meta {
		conf.Meta = true
	}

	for _, inputPath := range args.Input {

		if inputPath == "" {
			exitWithErr(errors.New("missing input path"))
		}

		if err := validateInputPath(inputPath); err != nil {
			exitWithErr(err)
		}

		data, err := os.ReadFile(inputPath)
		if err != nil {
			exitWithErr(fmt.Errorf("read file: %w", err))
		}

		doc, err := webvtt.Parse(string(data), webvtt.ParseOptions{
			Strict: !conf.Lenient,
			Meta:   conf.Meta,
		})
		if err != nil {
			exitWithErr(fmt.Errorf("parse %s: %w", inputPath, err))
		}

		vpModel, err := ui.NewModel(report.Build(filepath.Base(inputPath), doc))
		if err != nil {
			exitWithErr(fmt.Errorf("new model: %w", err))
		}

		retModel, err := tea.NewProgram(vpModel, tea.WithMouseAllMotion()).Run()
		if err != nil {
			exitWithErr(fmt.Errorf("run tea program: %w", err))
		}
		retModelCheck, ok := retModel.(ui.Model)
		if !ok {
			exitWithErr(errors.New("retModel is not of type ui.Model"))
		}
		if retModelCheck.Quit {
			return
		}
		if retModelCheck.Skip || !retModelCheck.Apply {
			continue
		}
		if !args.Write {
			continue
		}

		out, err := webvtt.Compile(doc, webvtt.CompileOptions{Strict: !conf.Lenient})
		if err != nil {
			exitWithErr(fmt.Errorf("compile %s: %w", inputPath, err))
		}

		outPath := deriveOutputPath(inputPath, retModelCheck.Overwrite || conf.OverwriteExisting)
		if err := os.WriteFile(outPath, []byte(out), 0644); err != nil {
			exitWithErr(fmt.Errorf("write output: %w", err))
		}
	}
}

func validateInputPath(p string) error {
	stat, err := os.Stat(p)
	if err != nil {
		return fmt.Errorf("stat input: %w", err)
	}
	if stat.IsDir() {
		return errors.New("input is a directory; expected a file")
	}
	ext := strings.ToLower(filepath.Ext(p))
	if ext != ".vtt" {
		return fmt.Errorf("unsupported extension: %s (only .vtt)", ext)
	}
	return nil
}

func deriveOutputPath(inputPath string, overwrite bool) string {
	dir := filepath.Dir(inputPath)
	base := filepath.Base(inputPath)
	name := strings.TrimSuffix(base, filepath.Ext(base))

	newName := filepath.Join(dir, name+"-clean.vtt")
	if !fileExists(newName) || overwrite {
		return newName
	}

	for i := 0; i < 5; i++ {
		newName = filepath.Join(dir, name+"-clean_"+strconv.FormatInt(int64(rand.Intn(1000)), 16)+".vtt")
		if !fileExists(newName) {
			return newName
		}
	}
	exitWithErr(errors.New("failed to derive output path"))
	return ""
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

func exitWithErr(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}
