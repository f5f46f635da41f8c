package data

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"github.com/vmihailenco/msgpack/v5"

	"perksolver/internal/perk"
)

//go:embed assets/definitions.json
var embedded embed.FS

const (
	msgpackAssetPath = "assets/definitions.msgpack"
	jsonAssetPath    = "assets/definitions.json"
)

// Load reads the built-in definition table: definitions.msgpack if present
// (the authoritative, compact form - SPEC_FULL.md §6), falling back to the
// definitions.json sibling otherwise. Both decode to the identical schema.
func Load() (*perk.Data, error) {
	if b, err := fs.ReadFile(embedded, msgpackAssetPath); err == nil {
		return decodeMsgpack(b)
	}

	b, err := fs.ReadFile(embedded, jsonAssetPath)
	if err != nil {
		return nil, fmt.Errorf("data: read embedded %s: %w", jsonAssetPath, err)
	}
	return decodeJSON(b)
}

// LoadFile reads a definition table from an external path, dispatching on
// extension, for tables that don't ship with the binary. No CLI flag calls
// it.
func LoadFile(path string) (*perk.Data, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("data: read %s: %w", path, err)
	}
	if isMsgpackPath(path) {
		return decodeMsgpack(b)
	}
	return decodeJSON(b)
}

func isMsgpackPath(path string) bool {
	return len(path) > 8 && path[len(path)-8:] == ".msgpack"
}

func decodeJSON(b []byte) (*perk.Data, error) {
	var d definitions
	if err := json.Unmarshal(b, &d); err != nil {
		return nil, fmt.Errorf("data: decode json: %w", err)
	}
	return d.toData()
}

func decodeMsgpack(b []byte) (*perk.Data, error) {
	var d definitions
	if err := msgpack.Unmarshal(b, &d); err != nil {
		return nil, fmt.Errorf("data: decode msgpack: %w", err)
	}
	return d.toData()
}

// EncodeMsgpack serialises the embedded JSON asset to msgpack bytes, used
// by the regeneration path that keeps assets/definitions.msgpack in sync
// with its human-edited assets/definitions.json sibling.
func EncodeMsgpack() ([]byte, error) {
	b, err := fs.ReadFile(embedded, jsonAssetPath)
	if err != nil {
		return nil, fmt.Errorf("data: read embedded %s: %w", jsonAssetPath, err)
	}
	var d definitions
	if err := json.Unmarshal(b, &d); err != nil {
		return nil, fmt.Errorf("data: decode json: %w", err)
	}
	return msgpack.Marshal(&d)
}
