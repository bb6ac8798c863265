// Demo exercises the history model end to end against an in-memory
// store: inserts, search highlighting, batch moves and promotion.
package main

import (
	"fmt"
	"log"
	"regexp"

	"github.com/yiblet/clipstack/internal/browser"
	"github.com/yiblet/clipstack/internal/clipboard/mockboard"
	"github.com/yiblet/clipstack/internal/model"
	"github.com/yiblet/clipstack/internal/store/memstore"
)

func main() {
	fmt.Println("clipstack History Model Demo")

	clip := mockboard.New()
	b, err := browser.New(memstore.NewMemoryStore(), clip)
	if err != nil {
		log.Fatalf("Failed to create browser: %v", err)
	}
	defer b.Close()

	testContent := []string{
		"Hello, World! This is the newest clipboard entry.",
		"package main\n\nimport \"fmt\"\n\nfunc main() {\n    fmt.Println(\"Hello, Go!\")\n}",
		"#!/bin/bash\necho \"Starting script...\"\nfor i in {1..5}; do\n    echo \"Processing $i\"\ndone",
		"SELECT * FROM users WHERE created_at > '2023-01-01' ORDER BY created_at DESC LIMIT 10;",
		"Lorem ipsum dolor sit amet, consectetur adipiscing elit.",
	}

	fmt.Println("\nAdding entries (newest first):")
	for i := len(testContent) - 1; i >= 0; i-- {
		if err := b.Add(testContent[i]); err != nil {
			log.Fatalf("Failed to add entry: %v", err)
		}
	}
	printHistory(b)

	fmt.Println("\nSearching for 'main':")
	m := b.Model()
	m.SetSearch(regexp.MustCompile("main"))
	for row := 0; row < m.RowCount(); row++ {
		if m.IsFiltered(row) {
			continue
		}
		fmt.Printf("%d. %s\n", row, m.Data(row, model.RoleDisplay).Text)
	}
	m.SetSearch(nil)

	fmt.Println("\nMoving rows 2 and 3 to the front:")
	if _, err := b.MoveSelected([]int{2, 3}, model.MoveToHome); err != nil {
		log.Fatalf("Failed to move entries: %v", err)
	}
	printHistory(b)

	fmt.Printf("\nPromotion recopied the clipboard: %q\n", clip.Data())
}

func printHistory(b *browser.Browser) {
	m := b.Model()
	for row := 0; row < m.RowCount(); row++ {
		fmt.Printf("%d. %s\n", row, b.Preview(row))
	}
}
