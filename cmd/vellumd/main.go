// Command vellumd is the always-on counterpart to `vellum serve`: a daemon
// that does nothing but host the Evaluator gRPC service against a durable
// cache, for deployments that want a long-lived normalization service
// rather than a one-shot CLI invocation (spec.md's own scope stops at the
// evaluation core; this is the thinnest possible remote-evaluation host
// around it, one step up from the plain `vellum serve` subcommand).
package main

import (
	"fmt"
	"os"

	"github.com/vellum-lang/vellum/internal/cache"
	"github.com/vellum-lang/vellum/internal/config"
	"github.com/vellum-lang/vellum/internal/rpcserver"
)

func main() {
	addr := config.DefaultRPCAddr
	cachePath := config.DefaultCachePath
	for i := 1; i < len(os.Args)-1; i++ {
		switch os.Args[i] {
		case "-addr":
			addr = os.Args[i+1]
		case "-cache":
			cachePath = os.Args[i+1]
		}
	}

	c, err := cache.Open(cachePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vellumd: opening cache %s: %v\n", cachePath, err)
		os.Exit(1)
	}
	defer c.Close()

	impl := &rpcserver.Server{Cache: c}
	fmt.Fprintf(os.Stderr, "vellumd: serving %s on %s (cache: %s)\n", rpcserver.ServiceName, addr, cachePath)
	if err := rpcserver.Serve(addr, impl); err != nil {
		fmt.Fprintf(os.Stderr, "vellumd: %v\n", err)
		os.Exit(1)
	}
}
