package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jawadb/go-jawadb/encode"
	"github.com/jawadb/go-jawadb/ir"
	"github.com/jawadb/go-jawadb/parse"

	"github.com/scott-cotton/cli"
)

func jdbView(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		cfg.View.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		if err := viewArg(cfg.MainConfig, cc.Out, arg); err != nil {
			return fmt.Errorf("error viewing %s: %w", arg, err)
		}
	}
	return nil
}

func viewArg(cfg *MainConfig, w io.Writer, arg string) error {
	node, err := readStore(arg)
	if err != nil {
		return err
	}
	return render(cfg, w, node)
}

func render(cfg *MainConfig, w io.Writer, node *ir.Node) error {
	if cfg.Y {
		return encode.EncodeYAML(node, w)
	}
	return encode.Encode(node, w, cfg.encOpts(w)...)
}

// readStore parses a store file, or stdin when arg is "-".
func readStore(arg string) (*ir.Node, error) {
	var rd io.Reader
	if arg == "-" {
		rd = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", arg, err)
		}
		defer f.Close()
		rd = f
	}
	d, err := io.ReadAll(rd)
	if err != nil {
		return nil, err
	}
	node, err := parse.Parse(d)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return node, nil
}
