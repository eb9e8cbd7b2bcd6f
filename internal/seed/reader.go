package seed

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// File is one source file as seen by a single run. It is never persisted.
type File struct {
	Path        string
	Kind        Kind
	Raw         []byte
	Fingerprint string
	Records     []Record
}

var recordValidator = newRecordValidator()

func newRecordValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ReadFile loads, fingerprints and parses path from fsys.
func ReadFile(fsys fs.FS, path string, kind Kind) (*File, error) {
	raw, err := readSource(fsys, path)
	if err != nil {
		return nil, err
	}
	records, err := Read(kind, raw)
	if err != nil {
		return nil, atSource(err, path, -1)
	}
	return &File{
		Path:        path,
		Kind:        kind,
		Raw:         raw,
		Fingerprint: Fingerprint(raw),
		Records:     records,
	}, nil
}

func readSource(fsys fs.FS, path string) ([]byte, error) {
	raw, err := fs.ReadFile(fsys, path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, parseError("seed.read", fmt.Sprintf("%s: source missing", path), err)
	}
	if err != nil {
		return nil, parseError("seed.read", fmt.Sprintf("%s: %v", path, err), err)
	}
	return raw, nil
}

// Read parses raw as a document of the given kind. The document must be a
// mapping; the kind's collection key holds a sequence of records. A missing
// or null collection yields no records. Anchors and merge keys resolve across
// the whole document. Unknown record fields, failed field validation and
// repeated names within the document are ParseErrors.
func Read(kind Kind, raw []byte) ([]Record, error) {
	if !kind.Valid() {
		return nil, parseError("seed.read", fmt.Sprintf("unknown kind %q", kind), nil)
	}

	seq, err := collectionNode(kind, raw)
	if err != nil {
		return nil, err
	}
	if seq == nil {
		return []Record{}, nil
	}
	for i, el := range seq.Content {
		if resolveAlias(el).Kind != yaml.MappingNode {
			return nil, parseError("seed.read", fmt.Sprintf("record %d: must be a mapping", i), nil)
		}
	}

	records, err := decodeRecords(kind, raw)
	if err != nil {
		return nil, parseError("seed.read", describeDecode(seq, err), err)
	}

	out := make([]Record, 0, len(records))
	seen := make(map[string]int, len(records))
	for i, rec := range records {
		if err := recordValidator.Struct(rec); err != nil {
			return nil, parseError("seed.read", fmt.Sprintf("record %d: %s", i, describeValidation(err)), err)
		}
		if prev, dup := seen[rec.Key()]; dup {
			return nil, parseError("seed.read", fmt.Sprintf("record %d: duplicate name %q (first at record %d)", i, rec.Key(), prev), nil)
		}
		seen[rec.Key()] = i
		out = append(out, rec)
	}
	return out, nil
}

// collectionNode returns the kind's record sequence, or nil when the document
// is empty or the collection is missing or null.
func collectionNode(kind Kind, raw []byte) (*yaml.Node, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(bytes.NewReader(raw)).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, parseError("seed.read", fmt.Sprintf("malformed document: %v", err), err)
	}
	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil, nil
		}
		root = root.Content[0]
	}
	root = resolveAlias(root)
	if isNull(root) {
		return nil, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, parseError("seed.read", "document root must be a mapping", nil)
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value != kind.Collection() {
			continue
		}
		val := resolveAlias(root.Content[i+1])
		if isNull(val) {
			return nil, nil
		}
		if val.Kind != yaml.SequenceNode {
			return nil, parseError("seed.read", fmt.Sprintf("%q must be a sequence", kind.Collection()), nil)
		}
		return val, nil
	}
	return nil, nil
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func isNull(n *yaml.Node) bool {
	return n == nil || n.Kind == 0 || (n.Kind == yaml.ScalarNode && n.Tag == "!!null")
}

// Each document wrapper holds one kind's collection; other top-level keys
// land in Rest so only record fields are checked strictly.
type (
	itemDocument struct {
		Items []ItemRecord           `yaml:"items"`
		Rest  map[string]interface{} `yaml:",inline"`
	}
	structureDocument struct {
		Structures []StructureRecord      `yaml:"structures"`
		Rest       map[string]interface{} `yaml:",inline"`
	}
	botDocument struct {
		Bots []BotRecord            `yaml:"bots"`
		Rest map[string]interface{} `yaml:",inline"`
	}
	buildingDocument struct {
		Buildings []BuildingRecord       `yaml:"buildings"`
		Rest      map[string]interface{} `yaml:",inline"`
	}
	recipeDocument struct {
		Recipes []RecipeRecord         `yaml:"recipes"`
		Rest    map[string]interface{} `yaml:",inline"`
	}
)

func decodeRecords(kind Kind, raw []byte) ([]Record, error) {
	switch kind {
	case KindItem:
		var doc itemDocument
		if err := strictDecode(raw, &doc); err != nil {
			return nil, err
		}
		return asRecords(doc.Items), nil
	case KindStructure:
		var doc structureDocument
		if err := strictDecode(raw, &doc); err != nil {
			return nil, err
		}
		return asRecords(doc.Structures), nil
	case KindBot:
		var doc botDocument
		if err := strictDecode(raw, &doc); err != nil {
			return nil, err
		}
		return asRecords(doc.Bots), nil
	case KindBuilding:
		var doc buildingDocument
		if err := strictDecode(raw, &doc); err != nil {
			return nil, err
		}
		return asRecords(doc.Buildings), nil
	case KindRecipe:
		var doc recipeDocument
		if err := strictDecode(raw, &doc); err != nil {
			return nil, err
		}
		return asRecords(doc.Recipes), nil
	default:
		return nil, fmt.Errorf("unknown kind %q", kind)
	}
}

func asRecords[T Record](in []T) []Record {
	out := make([]Record, len(in))
	for i, r := range in {
		out[i] = r
	}
	return out
}

// strictDecode decodes the whole document rejecting record fields the
// record type lacks.
func strictDecode(raw []byte, out interface{}) error {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	return dec.Decode(out)
}

var decodeLine = regexp.MustCompile(`^line (\d+):`)

// describeDecode prefixes a decode failure with the index of the record whose
// lines contain it.
func describeDecode(seq *yaml.Node, err error) string {
	var te *yaml.TypeError
	if !errors.As(err, &te) || len(te.Errors) == 0 {
		return err.Error()
	}
	msg := te.Errors[0]
	m := decodeLine.FindStringSubmatch(msg)
	if m == nil {
		return msg
	}
	line, _ := strconv.Atoi(m[1])
	idx := -1
	for i, el := range seq.Content {
		if el.Line <= line {
			idx = i
		}
	}
	if idx < 0 {
		return msg
	}
	return fmt.Sprintf("record %d: %s", idx, msg)
}

func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Namespace()
		if i := strings.Index(field, "."); i >= 0 {
			field = field[i+1:]
		}
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s failed %s=%s", field, fe.Tag(), fe.Param()))
		} else {
			parts = append(parts, fmt.Sprintf("%s failed %s", field, fe.Tag()))
		}
	}
	return strings.Join(parts, "; ")
}
