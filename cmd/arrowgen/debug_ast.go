//go:build ignore

package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"

	"arrowgen/internal/gen"
	"arrowgen/internal/schema"
)

func main() {
	s, err := schema.LoadFile("./cmd/arrowgen/frames.yaml")
	if err != nil {
		fmt.Println("load schema:", err)
		os.Exit(1)
	}

	groups, err := gen.NewGenerator(s, gen.DefaultConfig()).Generate()
	if err != nil {
		fmt.Println("generate error:", err)
		os.Exit(1)
	}

	for _, g := range groups {
		fmt.Println("===", g.Name, "===")
		spew.Dump(g.Use)
		spew.Dump(g.Impl)
	}
}
