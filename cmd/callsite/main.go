package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/wippyai/bytegen/invoke"
	"github.com/wippyai/bytegen/member"
	"github.com/wippyai/bytegen/stack"
)

func main() {
	var (
		catalogFile = flag.String("catalog", "", "Path to YAML member catalog")
		methodRef   = flag.String("method", "", "Method to invoke (owner.name or owner.name(desc)ret)")
		special     = flag.String("special", "", "Bind a special invocation to this type")
		virtual     = flag.String("virtual", "", "Dispatch a virtual invocation through this type")
		format      = flag.String("format", "text", "Output format: text, hex or json")
		maxStack    = flag.Int("max-stack", -1, "Verify against this max stack (receiver and arguments preloaded)")
		verbose     = flag.Bool("v", false, "Debug logging")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *catalogFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: callsite -catalog <file.yaml> -method owner.name [-special T | -virtual T] [-format text|hex|json]")
		fmt.Fprintln(os.Stderr, "       callsite -catalog <file.yaml> -i  (interactive mode)")
		os.Exit(1)
	}

	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer l.Sync()
		invoke.SetLogger(l.Named("invoke"))
		stack.SetLogger(l.Named("stack"))
	}

	catalog, err := loadCatalog(*catalogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *interactive {
		if err := runInteractive(catalog, *catalogFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	req := request{
		method:   *methodRef,
		special:  *special,
		virtual:  *virtual,
		maxStack: *maxStack,
	}
	out, err := run(catalog, req, *format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(out)
}

func loadCatalog(path string) (*member.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	c, err := member.LoadCatalog(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return c, nil
}

// splitMethodRef splits owner.name; owners use '/' so the first '.'
// separates them from the method.
func splitMethodRef(ref string) (owner, name string, err error) {
	owner, name, ok := strings.Cut(ref, ".")
	if !ok || owner == "" || name == "" {
		return "", "", fmt.Errorf("method %q: want owner.name", ref)
	}
	return owner, name, nil
}
