// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// ParseResult holds a decoded document and the unified CUE value it came from.
type ParseResult[T any] struct {
	Value   *T
	Unified cue.Value
}

// ParseAndDecode unifies data with the schema definition at defPath (for
// example "#Build"), validates the result and decodes it into a T.
func ParseAndDecode[T any](schema, data []byte, defPath string, opts ...Option) (*ParseResult[T], error) {
	options := applyOptions(opts)

	if err := CheckFileSize(data, options.maxFileSize, options.filename); err != nil {
		return nil, err
	}

	ctx := cuecontext.New()
	def, err := lookupDefinition(ctx, schema, defPath)
	if err != nil {
		return nil, err
	}

	userValue := ctx.CompileBytes(data, cue.Filename(options.filename))
	if userValue.Err() != nil {
		return nil, FormatError(userValue.Err(), options.filename)
	}

	return unifyAndDecode[T](def, userValue, options)
}

// ParseAndDecodeString is ParseAndDecode for a schema held as a string.
func ParseAndDecodeString[T any](schema string, data []byte, defPath string, opts ...Option) (*ParseResult[T], error) {
	return ParseAndDecode[T]([]byte(schema), data, defPath, opts...)
}

// DecodeValue checks a document that was already decoded from another
// format (maps, slices and scalars, as produced by a TOML or JSON decoder)
// against the schema definition at defPath and decodes it into a T. The
// size limit does not apply since there are no raw bytes.
func DecodeValue[T any](schema string, doc any, defPath string, opts ...Option) (*ParseResult[T], error) {
	options := applyOptions(opts)

	ctx := cuecontext.New()
	def, err := lookupDefinition(ctx, []byte(schema), defPath)
	if err != nil {
		return nil, err
	}

	userValue := ctx.Encode(doc)
	if userValue.Err() != nil {
		return nil, FormatError(userValue.Err(), options.filename)
	}

	return unifyAndDecode[T](def, userValue, options)
}

func applyOptions(opts []Option) parseOptions {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return options
}

func lookupDefinition(ctx *cue.Context, schema []byte, defPath string) (cue.Value, error) {
	schemaValue := ctx.CompileBytes(schema)
	if schemaValue.Err() != nil {
		return cue.Value{}, fmt.Errorf("internal error: failed to compile schema: %w", schemaValue.Err())
	}

	def := schemaValue.LookupPath(cue.ParsePath(defPath))
	if def.Err() != nil {
		return cue.Value{}, fmt.Errorf("internal error: schema definition %s not found: %w", defPath, def.Err())
	}
	return def, nil
}

func unifyAndDecode[T any](def, userValue cue.Value, options parseOptions) (*ParseResult[T], error) {
	unified := def.Unify(userValue)
	if err := unified.Validate(cue.Concrete(options.concrete)); err != nil {
		return nil, FormatError(err, options.filename)
	}

	var result T
	if err := unified.Decode(&result); err != nil {
		return nil, FormatError(err, options.filename)
	}

	return &ParseResult[T]{Value: &result, Unified: unified}, nil
}
