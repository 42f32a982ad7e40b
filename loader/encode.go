// SPDX-License-Identifier: MIT
//
// File: encode.go
// Role: Graph → Document conversion, encoding and Save.

package loader

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathview/core"
)

// FromGraph describes g as a Document that Build turns back into an
// equivalent graph.
//
// Nodes keep their index order. In a non-oriented graph each edge is
// listed once, from its lower-indexed endpoint; Build mirrors it again.
// Dangling arcs are listed as they are, so the result only builds with
// WithLenient.
func FromGraph(g *core.Graph) *Document {
	oriented := g.Oriented()
	index := g.IndexMap()
	nodes := g.Nodes()

	doc := &Document{Oriented: &oriented, Nodes: make([]NodeSpec, len(nodes))}
	for i, n := range nodes {
		spec := NodeSpec{
			ID:        n.ID,
			Data:      n.Data,
			X:         n.X,
			Y:         n.Y,
			Adjacents: make([]string, 0, len(n.Arcs)),
			Weights:   make([]int, 0, len(n.Arcs)),
		}
		for _, a := range n.Arcs {
			if !oriented {
				if j, ok := index[a.To]; ok && j < i {
					continue
				}
			}
			spec.Adjacents = append(spec.Adjacents, a.To)
			spec.Weights = append(spec.Weights, a.Weight)
		}
		doc.Nodes[i] = spec
	}

	return doc
}

// Encode serializes g in format f. FormatAuto is rejected with
// ErrUnknownFormat since there is no file name to detect it from.
func Encode(g *core.Graph, f Format) ([]byte, error) {
	doc := FromGraph(g)
	switch f {
	case FormatJSON:
		out, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("loader: encode json: %w", err)
		}
		return append(out, '\n'), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, fmt.Errorf("loader: encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("loader: encode yaml: %w", err)
		}
		return buf.Bytes(), nil
	case FormatHCL:
		return encodeHCL(doc), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// encodeHCL writes the block layout decodeHCL reads: a top-level
// oriented attribute and one labelled node block per node.
func encodeHCL(doc *Document) []byte {
	f := hclwrite.NewEmptyFile()
	body := f.Body()
	if doc.Oriented != nil {
		body.SetAttributeValue("oriented", cty.BoolVal(*doc.Oriented))
	}
	for _, n := range doc.Nodes {
		body.AppendNewline()
		nb := body.AppendNewBlock("node", []string{n.ID}).Body()
		nb.SetAttributeValue("data", cty.NumberIntVal(int64(n.Data)))
		nb.SetAttributeValue("x", cty.NumberFloatVal(n.X))
		nb.SetAttributeValue("y", cty.NumberFloatVal(n.Y))
		if len(n.Adjacents) == 0 {
			continue
		}
		adj := make([]cty.Value, len(n.Adjacents))
		w := make([]cty.Value, len(n.Weights))
		for i := range n.Adjacents {
			adj[i] = cty.StringVal(n.Adjacents[i])
			w[i] = cty.NumberIntVal(int64(n.Weights[i]))
		}
		nb.SetAttributeValue("adjacents", cty.ListVal(adj))
		nb.SetAttributeValue("weights", cty.ListVal(w))
	}

	return f.Bytes()
}

// Save encodes g and writes it to path. The format comes from WithFormat
// or else from the extension of path. The file is written to a temporary
// sibling and renamed into place, so a Watcher on path never sees a
// partial file.
func Save(path string, g *core.Graph, opts ...Option) error {
	cfg := resolve(opts)

	f := cfg.Format
	if f == FormatAuto {
		var err error
		if f, err = DetectFormat(path); err != nil {
			return fmt.Errorf("%w: %s", err, path)
		}
	}
	out, err := Encode(g, f)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("loader: save %s: %w", path, err)
	}
	// 1) Write and flush the temporary file.
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("loader: save %s: %w", path, err)
	}
	if _, err := tmp.Write(out); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("loader: save %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("loader: save %s: %w", path, err)
	}
	// 2) Swap it in.
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("loader: save %s: %w", path, err)
	}

	cfg.Logger.Debug("graph saved",
		slog.String("path", path),
		slog.String("format", string(f)),
		slog.Int("nodes", g.Size()))

	return nil
}
