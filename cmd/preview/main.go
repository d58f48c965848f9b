// Command preview is a standalone terminal host that exercises the
// instrument package end to end without a CLAP host in the loop: it
// opens a live audio sink, drives a bubbletea piano/parameter UI, and
// optionally replays a Lua script, all against the pkg/instrument and
// pkg/param packages.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/bbxsynth/chipvoice/pkg/instrument"
	"github.com/bbxsynth/chipvoice/pkg/state"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (sample rate, starting preset)")
	scriptPath := flag.String("script", "", "Lua script to replay instead of (or alongside) the TUI")
	statePath := flag.String("state", "", "state file to load at startup")
	saveStatePath := flag.String("save-state", "", "state file to write when the TUI quits")
	sessionOut := flag.String("record", "", "path to write a session metadata sidecar on exit")
	headless := flag.Bool("headless", false, "run the script without starting the TUI")
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("preview: %v", err)
	}

	runner := NewRunner(cfg.SampleRate)

	if *statePath != "" {
		if err := loadRunnerState(runner, *statePath); err != nil {
			log.Fatalf("preview: loading state: %v", err)
		}
	}

	sink, err := NewAudioSink(runner, cfg.SampleRate)
	if err != nil {
		log.Fatalf("preview: opening audio: %v", err)
	}
	defer sink.Close()

	group := new(errgroup.Group)

	if *scriptPath != "" {
		group.Go(func() error { return RunScript(*scriptPath, runner) })
	}

	if !*headless {
		program := tea.NewProgram(NewModel(runner))
		group.Go(func() error {
			_, err := program.Run()
			return err
		})
	}

	if err := group.Wait(); err != nil {
		log.Fatalf("preview: %v", err)
	}

	if *saveStatePath != "" {
		if err := saveRunnerState(runner, *saveStatePath); err != nil {
			fmt.Fprintf(os.Stderr, "preview: saving state: %v\n", err)
		}
	}

	if *sessionOut != "" {
		meta := NewSessionMetadata(*scriptPath, *configPath)
		if err := meta.WriteSidecar(*sessionOut); err != nil {
			fmt.Fprintf(os.Stderr, "preview: writing session metadata: %v\n", err)
		}
	}
}

func loadRunnerState(runner *Runner, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	codec := state.NewCodec(state.SynthVersion{Major: 1, Minor: 0, Revision: 0}, instrument.TypeFM)
	return runner.LoadState(codec, f)
}

func saveRunnerState(runner *Runner, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	codec := state.NewCodec(state.SynthVersion{Major: 1, Minor: 0, Revision: 0}, instrument.TypeFM)
	return runner.SaveState(codec, f)
}
