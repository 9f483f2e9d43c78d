// catalog-schema writes the JSON schema for projectile catalog files
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/lixenwraith/ordnance/catalog"
)

func main() {
	var outPath string
	flag.StringVar(&outPath, "out", "", "output path for the JSON schema (stdout if empty)")
	flag.Parse()

	data, err := json.MarshalIndent(catalog.Schema(), "", "  ")
	if err != nil {
		log.Fatalf("catalog-schema: marshal schema: %v", err)
	}
	data = append(data, '\n')

	if outPath == "" {
		if _, err := os.Stdout.Write(data); err != nil {
			log.Fatalf("catalog-schema: write: %v", err)
		}
		return
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		log.Fatalf("catalog-schema: create output dir: %v", err)
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		log.Fatalf("catalog-schema: write schema: %v", err)
	}
}
