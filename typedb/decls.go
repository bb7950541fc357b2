package typedb

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/reglacier/gmskit/prp"
)

// Declaration is one type record from a type database file.
//
// Example (YAML):
//
//	types:
//	  - name: ZVector3
//	    short_name: Vector3
//	    kind: array
//	    element: ZFloat32
//	    length: 3
//	  - name: ZSTDOBJ
//	    short_name: STDOBJ
//	    kind: complex
//	    fields:
//	      - { name: Visible, type: ZBool }
//	      - { name: Position, type: ZVector3 }
//	hashes:
//	  ZSTDOBJ: "0x00211FE0"
type Declaration struct {
	Name      string `yaml:"name"`
	ShortName string `yaml:"short_name,omitempty"`
	Kind      string `yaml:"kind"`

	// trivial
	Op string `yaml:"op,omitempty"`

	// array
	Element string `yaml:"element,omitempty"`
	Length  int    `yaml:"length,omitempty"`

	// complex
	Parent         string  `yaml:"parent,omitempty"`
	AllowUnexposed bool    `yaml:"allow_unexposed,omitempty"`
	Fields         []Field `yaml:"fields,omitempty"`
}

// Database is a parsed type database file: declarations plus the
// name-to-hash table binding file-side type ids to declarations.
type Database struct {
	Types  []Declaration     `yaml:"types"`
	Hashes map[string]string `yaml:"hashes,omitempty"`
}

// LoadDatabase parses a YAML type database.
func LoadDatabase(r io.Reader) (*Database, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("typedb: read database: %w", err)
	}
	var db Database
	if err := yaml.Unmarshal(data, &db); err != nil {
		return nil, fmt.Errorf("typedb: parse database: %w", err)
	}
	return &db, nil
}

// HashTable parses the database's hex hash strings into the uint32 table
// RegisterTypes consumes.
func (db *Database) HashTable() (map[string]uint32, error) {
	out := make(map[string]uint32, len(db.Hashes))
	for name, s := range db.Hashes {
		h, err := ParseHash(s)
		if err != nil {
			return nil, fmt.Errorf("typedb: hash for %q: %w", name, err)
		}
		out[name] = h
	}
	return out, nil
}

// Register inserts every declaration and hash association into reg. The
// caller runs LinkTypes once all databases are registered.
func (db *Database) Register(reg *Registry) error {
	hashes, err := db.HashTable()
	if err != nil {
		return err
	}
	return reg.RegisterTypes(db.Types, hashes)
}

// ParseHash parses a 32-bit type hash written as decimal or 0x-prefixed
// hex.
func ParseHash(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	base := 10
	if rest, ok := strings.CutPrefix(s, "0x"); ok {
		s, base = rest, 16
	}
	v, err := strconv.ParseUint(s, base, 32)
	if err != nil {
		return 0, fmt.Errorf("bad hash %q: %w", s, err)
	}
	return uint32(v), nil
}

func declToType(d *Declaration) (*Type, error) {
	switch d.Kind {
	case "trivial":
		op, err := parseOpName(d.Op)
		if err != nil {
			return nil, fmt.Errorf("type %q: %w", d.Name, err)
		}
		return NewTrivialType(d.Name, d.ShortName, op), nil

	case "array":
		if d.Element == "" {
			return nil, fmt.Errorf("type %q: array without element", d.Name)
		}
		if d.Length <= 0 {
			return nil, fmt.Errorf("type %q: array length %d", d.Name, d.Length)
		}
		return NewArrayType(d.Name, d.ShortName, d.Element, d.Length), nil

	case "complex":
		return NewComplexType(d.Name, d.ShortName, d.Parent, d.Fields, d.AllowUnexposed), nil

	default:
		return nil, fmt.Errorf("type %q: unknown kind %q", d.Name, d.Kind)
	}
}

func parseOpName(name string) (prp.OpCode, error) {
	switch name {
	case "bool":
		return prp.OpBool, nil
	case "char":
		return prp.OpChar, nil
	case "int8":
		return prp.OpInt8, nil
	case "int16":
		return prp.OpInt16, nil
	case "int32":
		return prp.OpInt32, nil
	case "float32":
		return prp.OpFloat32, nil
	case "float64":
		return prp.OpFloat64, nil
	case "string":
		return prp.OpString, nil
	default:
		return prp.OpInvalid, fmt.Errorf("unknown trivial op %q", name)
	}
}
