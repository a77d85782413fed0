package lesson

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

//go:embed bank
var bankFS embed.FS

//go:embed bank/schema.json
var bankSchema []byte

const FundamentalsTopic = "fundamentals"

// BankFile is one question file of the static bank.
type BankFile struct {
	Version   int        `yaml:"version"`
	Language  Language   `yaml:"language"`
	Topic     string     `yaml:"topic"`
	Questions []Question `yaml:"questions"`
}

// Bank is the whole static question set.
type Bank struct {
	Questions    []Question
	Fundamentals []Question
}

func (b *Bank) Catalog() (*Catalog, error) {
	return NewCatalog(b.Questions, b.Fundamentals)
}

func compileBankSchema() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(bankSchema))
	if err != nil {
		return nil, fmt.Errorf("parse bank schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema://question-bank.json", doc); err != nil {
		return nil, fmt.Errorf("add bank schema: %w", err)
	}
	return c.Compile("schema://question-bank.json")
}

// ParseBankFile validates raw YAML against the bank schema and decodes it.
func ParseBankFile(schema *jsonschema.Schema, name string, data []byte) (*BankFile, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	// Round trip through JSON so the validator sees plain JSON values.
	js, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(js))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if err := schema.Validate(inst); err != nil {
		return nil, fmt.Errorf("%s: schema validation failed: %w", name, err)
	}

	var file BankFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	for i := range file.Questions {
		file.Questions[i].ImportLanguage = file.Language
	}
	return &file, nil
}

// LoadBank reads every YAML file of fsys in lexical order.
func LoadBank(fsys fs.FS) (*Bank, error) {
	schema, err := compileBankSchema()
	if err != nil {
		return nil, err
	}

	var names []string
	err = fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(p, ".yaml") {
			names = append(names, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(names)

	bank := &Bank{}
	seen := make(map[string]string)
	for _, name := range names {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, err
		}
		file, err := ParseBankFile(schema, path.Base(name), data)
		if err != nil {
			return nil, err
		}
		for _, q := range file.Questions {
			key := string(file.Language) + "/" + q.ID
			if prev, ok := seen[key]; ok {
				return nil, fmt.Errorf("%s: duplicate question id %q (first seen in %s)", name, q.ID, prev)
			}
			seen[key] = name
		}
		if file.Topic == FundamentalsTopic {
			bank.Fundamentals = append(bank.Fundamentals, file.Questions...)
			continue
		}
		bank.Questions = append(bank.Questions, file.Questions...)
	}
	return bank, nil
}

// DefaultBank loads the question bank embedded in the binary.
func DefaultBank() (*Bank, error) {
	sub, err := fs.Sub(bankFS, "bank")
	if err != nil {
		return nil, err
	}
	return LoadBank(sub)
}
