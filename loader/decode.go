// SPDX-License-Identifier: MIT
//
// File: decode.go
// Role: JSON, YAML and HCL decoding into a Document.

package loader

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"gopkg.in/yaml.v3"
)

// hclDocument mirrors Document with HCL block syntax: one labelled
// "node" block per node.
type hclDocument struct {
	Oriented *bool     `hcl:"oriented,optional"`
	Nodes    []hclNode `hcl:"node,block"`
}

type hclNode struct {
	ID        string   `hcl:"id,label"`
	Data      int      `hcl:"data,optional"`
	X         float64  `hcl:"x,optional"`
	Y         float64  `hcl:"y,optional"`
	Adjacents []string `hcl:"adjacents,optional"`
	Weights   []int    `hcl:"weights,optional"`
}

// Decode parses src in format f. name is used in HCL diagnostics and
// error messages only. FormatAuto is resolved from name's extension.
func Decode(src []byte, name string, f Format) (*Document, error) {
	if f == FormatAuto {
		detected, err := DetectFormat(name)
		if err != nil {
			return nil, fmt.Errorf("%w: cannot detect format of %q", err, name)
		}
		f = detected
	}

	var doc Document
	switch f {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(src))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: json %s: %v", ErrMalformed, name, err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(src))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: yaml %s: %v", ErrMalformed, name, err)
		}
	case FormatHCL:
		parsed, err := decodeHCL(src, name)
		if err != nil {
			return nil, err
		}
		doc = *parsed
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}

	return &doc, nil
}

func decodeHCL(src []byte, name string) (*Document, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, name)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: hcl %s: %s", ErrMalformed, name, diags.Error())
	}

	var raw hclDocument
	if diags = gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("%w: hcl %s: %s", ErrMalformed, name, diags.Error())
	}

	doc := &Document{Oriented: raw.Oriented, Nodes: make([]NodeSpec, 0, len(raw.Nodes))}
	for _, n := range raw.Nodes {
		doc.Nodes = append(doc.Nodes, NodeSpec(n))
	}

	return doc, nil
}
