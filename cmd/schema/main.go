package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"

	"go-astar-grid/internal/config"
	"go-astar-grid/internal/net/proto"
)

func main() {
	var outDir string
	flag.StringVar(&outDir, "out", "", "directory to write the JSON schemas into")
	flag.Parse()

	if outDir == "" {
		fmt.Fprintln(os.Stderr, "--out is required")
		os.Exit(1)
	}

	for name, schema := range buildSchemas() {
		if err := writeSchema(filepath.Join(outDir, name), schema); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write schema %s: %v\n", name, err)
			os.Exit(1)
		}
	}
}

func buildSchemas() map[string]*jsonschema.Schema {
	reflector := jsonschema.Reflector{}

	request := reflector.Reflect(new(proto.SearchRequest))
	request.Title = "Search request"
	request.Description = "One grid query sent to the pathserver websocket"

	response := reflector.Reflect(new(proto.SearchResponse))
	response.Title = "Search response"
	response.Description = "The answer to exactly one search request"

	settings := reflector.Reflect(new(config.Settings))
	settings.Title = "Pathfinder settings"
	settings.Description = "Validates the JSON file passed with -config"

	return map[string]*jsonschema.Schema{
		"search_request.schema.json":  request,
		"search_response.schema.json": response,
		"settings.schema.json":        settings,
	}
}

func writeSchema(outPath string, schema *jsonschema.Schema) error {
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create schema directory: %w", err)
	}

	tmpPath := outPath + ".tmp"
	if err := os.WriteFile(tmpPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write temp schema: %w", err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		return fmt.Errorf("replace schema: %w", err)
	}

	return nil
}
