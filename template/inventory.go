package template

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Placeholder roles that mark a template shape as a title receiver.
const (
	RoleTitle       = "TITLE"
	RoleCenterTitle = "CENTER_TITLE"
)

// ShapeInfo is the inventory tool's metadata for one template shape.
type ShapeInfo struct {
	Name            string `json:"name,omitempty"`
	ShapeType       string `json:"shape_type,omitempty"`
	PlaceholderType string `json:"placeholder_type,omitempty"`
}

// IsTitleRole reports whether the shape's placeholder kind marks it as a
// title. Shapes without placeholder metadata are not titles by role.
func (s ShapeInfo) IsTitleRole() bool {
	return s.PlaceholderType == RoleTitle || s.PlaceholderType == RoleCenterTitle
}

// Inventory is the shape inventory of a rearranged template document,
// keyed "slide-N" then "shape-M". It is produced by the external
// inventory tool and read-only here.
type Inventory map[string]map[string]ShapeInfo

// SlideKey returns the inventory key for a 0-based page index.
func SlideKey(index int) string {
	return fmt.Sprintf("slide-%d", index)
}

// ParseInventory decodes the inventory tool's JSON output.
func ParseInventory(data []byte) (Inventory, error) {
	var inv Inventory
	if err := json.Unmarshal(data, &inv); err != nil {
		return nil, fmt.Errorf("parsing inventory JSON: %w", err)
	}
	return inv, nil
}

// LoadInventory reads and decodes an inventory file.
func LoadInventory(path string) (Inventory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading inventory: %w", err)
	}
	return ParseInventory(data)
}

// ShapeKeys returns the shape keys for a slide sorted by their numeric
// suffix ascending ("shape-2" before "shape-10"). Keys without a numeric
// suffix sort after the numbered ones, lexically.
func (inv Inventory) ShapeKeys(slideKey string) []string {
	shapes, ok := inv[slideKey]
	if !ok {
		return nil
	}

	keys := make([]string, 0, len(shapes))
	for k := range shapes {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		ni, iok := shapeKeyNumber(keys[i])
		nj, jok := shapeKeyNumber(keys[j])
		switch {
		case iok && jok:
			return ni < nj
		case iok:
			return true
		case jok:
			return false
		default:
			return keys[i] < keys[j]
		}
	})
	return keys
}

func shapeKeyNumber(key string) (int, bool) {
	idx := strings.LastIndexByte(key, '-')
	if idx < 0 {
		return 0, false
	}
	n, err := strconv.Atoi(key[idx+1:])
	if err != nil {
		return 0, false
	}
	return n, true
}
