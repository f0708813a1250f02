// Package main provides the CLI entrypoint for arrowgen.
//
// arrowgen is a one-shot build-time codegen tool that:
//   - Loads the versioned frame schema embedded in the binary
//   - Generates, per struct, the columnar layout descriptor plus the
//     serializer and deserializer against the struct-array representation
//   - Writes the generated source text to standard output
//
// The output is intended for redirection into a source file compiled by a
// downstream toolchain. Any failure aborts the run with a non-zero exit
// code and no partial-output guarantee.
package main

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"

	"arrowgen/internal/gen"
	"arrowgen/internal/rust"
	"arrowgen/internal/schema"
)

//go:embed frames.yaml
var framesYAML []byte

func main() {
	err := run(os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, "arrowgen:", err)
		os.Exit(1)
	}
}

func run(w io.Writer) error {
	s, err := schema.Parse(framesYAML)
	if err != nil {
		return err
	}

	groups, err := gen.NewGenerator(s, gen.DefaultConfig()).Generate()
	if err != nil {
		return err
	}

	out := bufio.NewWriter(w)
	emitter := rust.NewEmitter()

	for i, group := range groups {
		if i > 0 {
			out.WriteString("\n")
		}

		use, err := emitter.EmitDecl(group.Use)
		if err != nil {
			return err
		}

		impl, err := emitter.EmitDecl(group.Impl)
		if err != nil {
			return err
		}

		out.WriteString(use)
		out.WriteString("\n")
		out.WriteString(impl)
	}

	return out.Flush()
}
