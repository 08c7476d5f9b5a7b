package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sudokubig/bigsolver/board"
)

// loadConfig reads a JSON puzzle file into a generic map and decodes it
// through board.DecodeConfig, the same path a long-running host would
// use when the puzzle arrives over a wire protocol rather than a file.
func loadConfig(path string) (board.Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return board.Config{}, fmt.Errorf("read puzzle file: %w", err)
	}
	var generic map[string]interface{}
	if err := json.Unmarshal(raw, &generic); err != nil {
		return board.Config{}, fmt.Errorf("parse puzzle file: %w", err)
	}
	return board.DecodeConfig(generic)
}
