package main

import (
	"fmt"

	"github.com/jawadb/go-jawadb"
	"github.com/jawadb/go-jawadb/ir"
	"github.com/jawadb/go-jawadb/parse"

	"github.com/scott-cotton/cli"
)

func jdbGet(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: get requires a file and a key", cli.ErrUsage)
	}
	doc, err := jawadb.Open(args[0])
	if err != nil {
		return err
	}
	defer doc.Close()
	v, ok, err := doc.Get(args[1])
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no key %q in %s", args[1], args[0])
	}
	node, err := valueNode(v)
	if err != nil {
		return err
	}
	return render(cfg.MainConfig, cc.Out, node)
}

func jdbSet(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 3 {
		return fmt.Errorf("%w: set requires a file, a key, and a value", cli.ErrUsage)
	}
	v, err := argValue(args[2], cfg.String)
	if err != nil {
		return err
	}
	doc, err := jawadb.Open(args[0])
	if err != nil {
		return err
	}
	if err := doc.Set(args[1], v); err != nil {
		doc.Close()
		return err
	}
	return doc.Close()
}

func jdbDel(cfg *DelConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Del.Parse(cc, args)
	if err != nil {
		cfg.Del.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: del requires a file and a key", cli.ErrUsage)
	}
	doc, err := jawadb.Open(args[0])
	if err != nil {
		return err
	}
	if err := doc.Delete(args[1]); err != nil {
		doc.Close()
		return err
	}
	return doc.Close()
}

func jdbAppend(cfg *AppendConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Append.Parse(cc, args)
	if err != nil {
		cfg.Append.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: append requires a file and at least one value", cli.ErrUsage)
	}
	vs := make([]any, 0, len(args)-1)
	for _, arg := range args[1:] {
		v, err := argValue(arg, cfg.String)
		if err != nil {
			return err
		}
		vs = append(vs, v)
	}
	doc, err := jawadb.Open(args[0])
	if err != nil {
		return err
	}
	if err := doc.Extend(vs...); err != nil {
		doc.Close()
		return err
	}
	return doc.Close()
}

// argValue decodes a command line value argument. JSON by default, with
// a fallback to treating undecodable input as a plain string so that
// `jdb set f k hello` works without quoting.
func argValue(arg string, asString bool) (any, error) {
	if asString {
		return arg, nil
	}
	node, err := parse.Parse([]byte(arg))
	if err != nil {
		return arg, nil
	}
	return node, nil
}

// valueNode converts the result of a document read into a tree for
// rendering.
func valueNode(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case jawadb.Map:
		return x.Node(), nil
	case jawadb.List:
		return x.Node(), nil
	default:
		return ir.FromGo(v)
	}
}
