package levels

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/milk9111/npcnav/nav"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed *.json
var LevelsFS embed.FS

const (
	DefaultProject = "dungeon.json"
	schemaFile     = "project.schema.json"
)

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func projectSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		raw, err := LevelsFS.ReadFile(schemaFile)
		if err != nil {
			schemaErr = fmt.Errorf("levels: read schema: %w", err)
			return
		}
		compiledSchema, schemaErr = jsonschema.CompileString(schemaFile, string(raw))
		if schemaErr != nil {
			schemaErr = fmt.Errorf("levels: compile schema: %w", schemaErr)
		}
	})
	return compiledSchema, schemaErr
}

// Load reads a project by path, falling back to the embedded copy when the
// file does not exist on disk.
func Load(name string) (*Project, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		data, err = LevelsFS.ReadFile(cleanLevelPath(name))
		if err != nil {
			return nil, fmt.Errorf("levels: read %s: %w", name, err)
		}
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("levels: %s: %w", name, err)
	}
	return p, nil
}

// Parse validates data against the project schema and decodes it.
func Parse(data []byte) (*Project, error) {
	schema, err := projectSchema()
	if err != nil {
		return nil, err
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}

	var p Project
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	for i := range p.Levels {
		if p.Levels[i].GridSize <= 0 {
			p.Levels[i].GridSize = nav.DefaultTileSize
		}
	}
	return &p, nil
}

func cleanLevelPath(path string) string {
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "levels/"); ok {
		return after
	}
	return filepath.Base(s)
}
