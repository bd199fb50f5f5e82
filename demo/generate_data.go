//go:build ignore

// Generates a small directory tree with duplicate files for trying the
// scanner: go run demo/generate_data.go /tmp/filexsorter-demo
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type file struct {
	path    string
	content string
}

func main() {
	root := "demo-data"
	if len(os.Args) > 1 {
		root = os.Args[1]
	}

	report := strings.Repeat("quarterly revenue figures\n", 400)
	photo := strings.Repeat("\xff\xd8\xff\xe0 not really a jpeg ", 2048)

	files := []file{
		{path: "documents/report_2024.txt", content: report},
		{path: "documents/archive/report_2024_copy.txt", content: report},
		{path: "backup/report_final.txt", content: report},
		{path: "pictures/holiday.jpg", content: photo},
		{path: "pictures/export/holiday (1).jpg", content: photo},
		{path: "documents/notes.txt", content: "unique notes\n"},
		{path: "misc/empty_lookalike_a.dat", content: "AAAAAAAA"},
		{path: "misc/empty_lookalike_b.dat", content: "BBBBBBBB"},
	}

	for _, f := range files {
		full := filepath.Join(root, f.path)
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			fmt.Fprintf(os.Stderr, "mkdir: %v\n", err)
			os.Exit(1)
		}
		if err := os.WriteFile(full, []byte(f.content), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "write: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Printf("Demo tree written to %s (3-way and 2-way duplicate groups inside)\n", root)
}
