// Command lc3vm runs LC-3 object images: lc3vm <image-file-1> [<image-file-2> ...]
package main

import (
	"fmt"
	"os"

	"lc3vm/internal/hostterm"
	"lc3vm/internal/lc3"
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	if len(args) < 2 {
		fmt.Printf("%s [image-file1] ...\n", args[0])
		return 2
	}

	term, err := hostterm.Acquire()
	if err != nil {
		fmt.Fprintf(os.Stderr, "lc3vm: acquiring terminal: %v\n", err)
		return 1
	}
	defer term.Release()

	m := lc3.NewMachine(term)

	for _, path := range args[1:] {
		if err := m.LoadImage(path); err != nil {
			fmt.Printf("failed to load image: %s\n", path)
			return 1
		}
	}

	m.Reset()

	if err := m.Run(); err != nil {
		fmt.Println(err)
		return 1
	}

	return 0
}
