package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/batatacode/internal/catalogen"
)

// main generates the catalog identifier types.
func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(outW io.Writer, args []string) error {
	flagSet := flag.NewFlagSet("catalogen", flag.ContinueOnError)
	flagSet.SetOutput(outW)

	assetsFlag := flagSet.String("assets", "assets", "Directory holding events.json, game_values.json and actions.json.")
	outFlag := flagSet.String("out", "", "Output file. Empty writes to stdout.")
	pkgFlag := flagSet.String("package", "catalog", "Package name of the generated file.")
	actionWidthFlag := flagSet.Uint("action-width", 11, "Tag width of ActionID in bits.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}
	if *actionWidthFlag == 0 || *actionWidthFlag > 32 {
		return fmt.Errorf("invalid action-width %d: must be between 1 and 32", *actionWidthFlag)
	}

	docs, err := catalogen.Load(*assetsFlag)
	if err != nil {
		return err
	}
	enums := catalogen.Enums(docs, catalogen.Options{ActionWidth: uint32(*actionWidthFlag)})

	var buf bytes.Buffer
	if err := catalogen.Generate(&buf, *pkgFlag, enums); err != nil {
		return err
	}

	if *outFlag == "" {
		_, err = outW.Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(*outFlag, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", *outFlag, err)
	}
	slog.Info("Catalog generated.", "out", *outFlag, "sets", len(enums))
	return nil
}
