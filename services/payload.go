package services

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"ocr-translator/models"
)

//go:embed schema/*.schema.json
var schemaFS embed.FS

const (
	resultSchemaName  = "translation_result.schema.json"
	catalogSchemaName = "language_catalog.schema.json"
)

var (
	compileOnce sync.Once
	compiled    map[string]*jsonschema.Schema
	compiledErr error
)

func loadSchemas() (map[string]*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020

		names := []string{resultSchemaName, catalogSchemaName}
		for _, name := range names {
			data, err := schemaFS.ReadFile("schema/" + name)
			if err != nil {
				compiledErr = fmt.Errorf("read schema %s: %w", name, err)
				return
			}
			if err := compiler.AddResource(name, bytes.NewReader(data)); err != nil {
				compiledErr = fmt.Errorf("add schema resource %s: %w", name, err)
				return
			}
		}

		schemas := make(map[string]*jsonschema.Schema, len(names))
		for _, name := range names {
			schema, err := compiler.Compile(name)
			if err != nil {
				compiledErr = fmt.Errorf("compile schema %s: %w", name, err)
				return
			}
			schemas[name] = schema
		}
		compiled = schemas
	})

	if compiledErr != nil {
		return nil, compiledErr
	}
	return compiled, nil
}

// decodeChecked strictly decodes raw, validates it against the named schema
// and unmarshals it into out.
func decodeChecked(raw []byte, schemaName string, out any) error {
	value, err := decodeStrictJSON(raw)
	if err != nil {
		return fmt.Errorf("decode JSON: %w", err)
	}

	schemas, err := loadSchemas()
	if err != nil {
		return err
	}
	if err := schemas[schemaName].Validate(value); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}
	return nil
}

func decodeStrictJSON(raw []byte) (any, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("body is empty")
	}

	decoder := json.NewDecoder(bytes.NewReader(trimmed))
	decoder.UseNumber()

	var value any
	if err := decoder.Decode(&value); err != nil {
		return nil, err
	}

	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return nil, fmt.Errorf("body contains trailing content")
	}

	return value, nil
}

// DecodeTranslationResult parses a translate success body.
func DecodeTranslationResult(raw []byte) (*models.TranslationResult, error) {
	var result models.TranslationResult
	if err := decodeChecked(raw, resultSchemaName, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DecodeLanguageCatalog parses a catalog success body, keeping remote order.
func DecodeLanguageCatalog(raw []byte) ([]models.LanguageOption, error) {
	languages := []models.LanguageOption{}
	if err := decodeChecked(raw, catalogSchemaName, &languages); err != nil {
		return nil, err
	}
	return languages, nil
}

// errorDetail extracts a non-empty string "detail" field from an error body.
func errorDetail(raw []byte) string {
	var body struct {
		Detail *string `json:"detail"`
	}
	if json.Unmarshal(raw, &body) != nil || body.Detail == nil {
		return ""
	}
	return *body.Detail
}
