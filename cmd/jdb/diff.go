package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/jawadb/go-jawadb/encode"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
	"github.com/scott-cotton/cli"
)

func jdbDiff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two files", cli.ErrUsage)
	}
	a, err := canonical(args[0])
	if err != nil {
		return err
	}
	b, err := canonical(args[1])
	if err != nil {
		return err
	}
	if a == b {
		return nil
	}
	if err := writeDiff(cc.Out, a, b, cfg.Color); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

// canonical re-encodes a store file so the diff ignores formatting.
func canonical(arg string) (string, error) {
	node, err := readStore(arg)
	if err != nil {
		return "", err
	}
	return encode.MustString(node) + "\n", nil
}

func writeDiff(w io.Writer, a, b string, colorize bool) error {
	diffCfg := diffpatch.New()
	ca, cb, lines := diffCfg.DiffLinesToChars(a, b)
	diffs := diffCfg.DiffCharsToLines(diffCfg.DiffMain(ca, cb, false), lines)
	ins := color.New(color.FgGreen)
	del := color.New(color.FgRed)
	for _, diff := range diffs {
		for _, line := range splitLines(diff.Text) {
			var err error
			switch diff.Type {
			case diffpatch.DiffInsert:
				if colorize {
					_, err = ins.Fprintf(w, "+ %s\n", line)
				} else {
					_, err = fmt.Fprintf(w, "+ %s\n", line)
				}
			case diffpatch.DiffDelete:
				if colorize {
					_, err = del.Fprintf(w, "- %s\n", line)
				} else {
					_, err = fmt.Fprintf(w, "- %s\n", line)
				}
			case diffpatch.DiffEqual:
				_, err = fmt.Fprintf(w, "  %s\n", line)
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func splitLines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
