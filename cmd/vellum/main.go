// Command vellum is the evaluation core's CLI front end: normalize and
// compare expressions already serialized to vellum's wire JSON, manage the
// on-disk normalization cache, serve the evaluator over gRPC, and describe a
// record type as a protobuf message. Argument parsing is hand-rolled against
// os.Args, in funvibe-funxy's cmd/funxy/main.go style, rather than the
// stdlib flag package's subcommand FlagSets — funxy's own CLI never uses
// flag either.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/vellum-lang/vellum/internal/ast"
	"github.com/vellum-lang/vellum/internal/cache"
	"github.com/vellum-lang/vellum/internal/config"
	"github.com/vellum-lang/vellum/internal/evaluator"
	"github.com/vellum-lang/vellum/internal/rpcserver"
	"github.com/vellum-lang/vellum/internal/schema"
	"github.com/vellum-lang/vellum/internal/vellum"
	"github.com/vellum-lang/vellum/internal/wire"
)

func usage() {
	fmt.Fprintf(os.Stderr, `vellum %s — normalization-by-evaluation core for a total config language

Usage:
  vellum normalize <file.json>              normalize a wire-encoded expression
  vellum equivalent <a.json> <b.json>       decide judgmental equality of two expressions
  vellum yaml <file.json>                   normalize and export as YAML
  vellum cache stats [-cache path]          report normalization cache size
  vellum cache clean [-cache path]          empty the normalization cache
  vellum serve [-addr host:port]            serve Normalize/Equivalent over gRPC
  vellum describe-proto <file.json> <name>  derive a proto message descriptor from a record type

Flags read anywhere in the remaining arguments:
  -cache <path>   cache database path (default %s; serve: no cache)
  -addr <addr>    gRPC listen address (default %s)
`, config.Version, config.DefaultCachePath, config.DefaultRPCAddr)
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			if os.Getenv("DEBUG") == "1" {
				panic(r)
			}
			fmt.Fprintf(os.Stderr, "internal error: %v\n", r)
			fmt.Fprintln(os.Stderr, "this is a vellum bug, please report it")
			os.Exit(1)
		}
	}()

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "-help", "--help", "help":
		usage()
	case "normalize":
		runNormalize(os.Args[2:])
	case "equivalent":
		runEquivalent(os.Args[2:])
	case "yaml":
		runYAML(os.Args[2:])
	case "cache":
		runCache(os.Args[2:])
	case "serve":
		runServe(os.Args[2:])
	case "describe-proto":
		runDescribeProto(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "vellum: unrecognized command %q\n", os.Args[1])
		usage()
		os.Exit(1)
	}
}

// stringFlag pulls "-name value" out of args anywhere in the slice and
// returns the remaining positional arguments alongside it, the same
// scan-and-splice approach handleBuild in funxy's main.go uses for -o/-host.
func stringFlag(args []string, name, def string) (value string, rest []string) {
	value = def
	for i := 0; i < len(args); i++ {
		if args[i] == name && i+1 < len(args) {
			value = args[i+1]
			i++
			continue
		}
		rest = append(rest, args[i])
	}
	return value, rest
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, "vellum: "+format+"\n", a...)
	os.Exit(1)
}

func runNormalize(args []string) {
	if len(args) < 1 {
		fatalf("normalize requires a file argument")
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		fatalf("reading %s: %v", args[0], err)
	}
	expr, err := wire.DecodeJSON(data)
	if err != nil {
		fatalf("decoding %s: %v", args[0], err)
	}
	out, err := vellum.Normalize(expr)
	if err != nil {
		fatalf("%v", err)
	}
	outData, err := wire.EncodeJSON(out)
	if err != nil {
		fatalf("encoding result: %v", err)
	}
	os.Stdout.Write(outData)
	fmt.Println()
}

func runEquivalent(args []string) {
	if len(args) < 2 {
		fatalf("equivalent requires two file arguments")
	}
	a, err := os.ReadFile(args[0])
	if err != nil {
		fatalf("reading %s: %v", args[0], err)
	}
	b, err := os.ReadFile(args[1])
	if err != nil {
		fatalf("reading %s: %v", args[1], err)
	}
	ae, err := wire.DecodeJSON(a)
	if err != nil {
		fatalf("decoding %s: %v", args[0], err)
	}
	be, err := wire.DecodeJSON(b)
	if err != nil {
		fatalf("decoding %s: %v", args[1], err)
	}
	equal, err := vellum.JudgmentallyEqual(ae, be)
	if err != nil {
		fatalf("%v", err)
	}
	printVerdict(equal)
}

func printVerdict(equal bool) {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		fmt.Println(equal)
		return
	}
	if equal {
		fmt.Println("\x1b[32mequivalent\x1b[0m")
	} else {
		fmt.Println("\x1b[31mnot equivalent\x1b[0m")
	}
}

func runYAML(args []string) {
	if len(args) < 1 {
		fatalf("yaml requires a file argument")
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		fatalf("reading %s: %v", args[0], err)
	}
	expr, err := wire.DecodeJSON(data)
	if err != nil {
		fatalf("decoding %s: %v", args[0], err)
	}
	normalized, err := vellum.Normalize(expr)
	if err != nil {
		fatalf("%v", err)
	}
	denoted := evaluator.Eval(nil, ast.Denote(normalized))
	out, err := wire.ExportYAML(denoted)
	if err != nil {
		fatalf("exporting YAML: %v", err)
	}
	os.Stdout.Write(out)
}

func runCache(args []string) {
	if len(args) < 1 {
		fatalf("cache requires a subcommand: stats or clean")
	}
	path, _ := stringFlag(args[1:], "-cache", config.DefaultCachePath)
	c, err := cache.Open(path)
	if err != nil {
		fatalf("%v", err)
	}
	defer c.Close()

	switch args[0] {
	case "stats":
		stats, err := c.Stats(context.Background())
		if err != nil {
			fatalf("%v", err)
		}
		fmt.Println(stats.String())
	case "clean":
		if err := c.Clean(context.Background()); err != nil {
			fatalf("%v", err)
		}
		fmt.Println("cache cleaned")
	default:
		fatalf("unrecognized cache subcommand %q", args[0])
	}
}

func runServe(args []string) {
	addr, _ := stringFlag(args, "-addr", config.DefaultRPCAddr)
	cachePath, _ := stringFlag(args, "-cache", "")

	impl := &rpcserver.Server{}
	if cachePath != "" {
		c, err := cache.Open(cachePath)
		if err != nil {
			fatalf("%v", err)
		}
		defer c.Close()
		impl.Cache = c
	}

	fmt.Fprintf(os.Stderr, "vellum: serving %s on %s\n", rpcserver.ServiceName, addr)
	if err := rpcserver.Serve(addr, impl); err != nil {
		fatalf("%v", err)
	}
}

func runDescribeProto(args []string) {
	if len(args) < 2 {
		fatalf("describe-proto requires a file argument and a message name")
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		fatalf("reading %s: %v", args[0], err)
	}
	expr, err := wire.DecodeJSON(data)
	if err != nil {
		fatalf("decoding %s: %v", args[0], err)
	}
	normalized, err := vellum.Normalize(expr)
	if err != nil {
		fatalf("%v", err)
	}
	val := evaluator.Eval(nil, ast.Denote(normalized))
	recordType, ok := val.(*evaluator.VRecordType)
	if !ok {
		fatalf("%s does not normalize to a record type", args[0])
	}
	md, err := schema.BuildMessageDescriptor(args[1], recordType)
	if err != nil {
		fatalf("%v", err)
	}
	fmt.Println(md.AsDescriptorProto().String())
}
