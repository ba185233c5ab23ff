// healwavectl generates healing-tone WAV files offline and inspects existing
// ones without going through the HTTP service.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"

	"healwave/internal/analyze"
	"healwave/internal/audio"
	"healwave/internal/config"
	"healwave/internal/preset"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "generate":
		err = runGenerate(os.Args[2:])
	case "inspect":
		err = runInspect(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		color.Red("error: %v", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: healwavectl <generate|inspect> [flags]")
	fmt.Fprintln(os.Stderr, "  generate -preset <name> | -kind <kind> -base <hz> [-secondary <hz>]")
	fmt.Fprintln(os.Stderr, "  inspect  -in <file.wav>")
}

func runGenerate(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	presetName := fs.String("preset", "", "preset name (use -list to see them)")
	list := fs.Bool("list", false, "list preset names and exit")
	kind := fs.String("kind", "", "custom kind: binaural, isochronic or choir")
	base := fs.Float64("base", 0, "custom base frequency in Hz")
	secondary := fs.Float64("secondary", 0, "custom delta/beat frequency in Hz")
	minutes := fs.Float64("minutes", 15, "duration in minutes")
	out := fs.String("out", "", "output path (default healing_<preset>.wav)")
	fs.Parse(args)

	if *list {
		for _, name := range preset.Names() {
			fmt.Println(name)
		}
		return nil
	}

	cfg := config.Load()
	preset.Reset()

	duration := *minutes * 60
	if max := cfg.MaxDurationSeconds(); duration > max {
		duration = max
	}

	var (
		params audio.Params
		name   string
		err    error
	)
	if *kind != "" {
		name = preset.CustomName
		params, err = preset.ResolveCustom(preset.Custom{
			Kind:      audio.Kind(*kind),
			Base:      *base,
			Secondary: *secondary,
		}, duration, cfg.SampleRate)
	} else {
		name = *presetName
		params, err = preset.Resolve(name, duration, cfg.SampleRate)
	}
	if err != nil {
		return err
	}

	buf, err := audio.Generate(params)
	if err != nil {
		return err
	}
	data, err := audio.Encode(buf, params.SampleRate)
	if err != nil {
		return err
	}

	path := *out
	if path == "" {
		path = preset.Filename(name)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}

	color.Green("wrote %s", path)
	fmt.Printf("  kind %s, %.1fs, %d frames, %d bytes\n",
		params.Kind, params.Duration, buf.Frames(), len(data))
	return nil
}

func runInspect(args []string) error {
	fs := flag.NewFlagSet("inspect", flag.ExitOnError)
	in := fs.String("in", "", "WAV file to inspect")
	fs.Parse(args)
	if *in == "" {
		return fmt.Errorf("inspect: -in is required")
	}

	f, err := os.Open(*in)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := analyze.Inspect(f)
	if err != nil {
		return err
	}

	color.New(color.Bold).Println(*in)
	fmt.Printf("  sample rate : %d Hz\n", info.SampleRate)
	fmt.Printf("  channels    : %d\n", info.Channels)
	fmt.Printf("  bit depth   : %d\n", info.BitDepth)
	fmt.Printf("  frames      : %d (%.2fs)\n", info.Frames,
		float64(info.Frames)/float64(info.SampleRate))
	fmt.Printf("  peak        : %d\n", info.Peak)
	fmt.Printf("  dominant    : %.1f Hz\n", info.DominantHz)
	return nil
}
