package main

import (
	"fmt"
	"os"
	"strings"
)

const version = "0.0.1-dev"

func main() {
	os.Exit(run())
}

func run() int {
	if len(os.Args) < 2 {
		return runBuild(os.Args[1:])
	}

	switch os.Args[1] {
	case "build":
		return runBuild(os.Args[2:])
	case "dump":
		return runDump(os.Args[2:])
	case "--version", "-v":
		fmt.Println("routemark", version)
		return 0
	case "--help", "-h":
		printUsage()
		return 0
	default:
		if strings.HasPrefix(os.Args[1], "-") {
			return runBuild(os.Args[1:])
		}
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", os.Args[1])
		printUsage()
		return 1
	}
}

func printUsage() {
	fmt.Println("routemark - extracts an OpenAPI document from Path()/Response() calls in TypeScript source")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  routemark [flags]              Build the OpenAPI document (default)")
	fmt.Println("  routemark build [flags]        Build the OpenAPI document")
	fmt.Println("  routemark dump [flags]         Dump discovered endpoints as JSON (debug)")
	fmt.Println()
	fmt.Println("Global Flags:")
	fmt.Println("  --version, -v          Print version and exit")
	fmt.Println("  --help, -h             Print this help message")
	fmt.Println()
	fmt.Println("Build Flags:")
	fmt.Println("  --config <path>        Path to routemark.config.json (default: auto-discovered)")
	fmt.Println("  --entry <path>         TypeScript entry file (overrides config)")
	fmt.Println("  --out <path>           Output file for the OpenAPI document (overrides config)")
	fmt.Println("  --strict               Treat warnings as errors")
	fmt.Println("  --quiet                Suppress warning diagnostics")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  routemark")
	fmt.Println("  routemark build --config routemark.config.json")
	fmt.Println("  routemark build --entry src/main.ts --out dist/openapi.yaml")
	fmt.Println()
}
