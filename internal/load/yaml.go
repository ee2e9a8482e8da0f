package load

import (
	"fmt"
	"math/big"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/roach88/cyclejson/internal/ir"
)

// parseYAML decodes the first YAML document. Anchored mappings and
// sequences become single containers, so every alias to them yields the
// same node and an alias inside its own anchor yields a cycle.
func parseYAML(data []byte) (ir.Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return ir.Null{}, nil
	}

	c := &yamlConverter{seen: make(map[*yaml.Node]ir.Container)}
	return c.convert(doc.Content[0])
}

type yamlConverter struct {
	seen map[*yaml.Node]ir.Container
}

func (c *yamlConverter) convert(n *yaml.Node) (ir.Value, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return ir.Null{}, nil
		}
		return c.convert(n.Content[0])
	case yaml.AliasNode:
		return c.convert(n.Alias)
	case yaml.MappingNode:
		return c.mapping(n)
	case yaml.SequenceNode:
		return c.sequence(n)
	case yaml.ScalarNode:
		return scalar(n)
	}
	return nil, fmt.Errorf("line %d: unexpected node kind %d", n.Line, n.Kind)
}

func (c *yamlConverter) mapping(n *yaml.Node) (ir.Value, error) {
	if obj, ok := c.seen[n]; ok {
		return obj, nil
	}
	obj := ir.NewObject()
	c.seen[n] = obj

	for i := 0; i+1 < len(n.Content); i += 2 {
		keyNode := n.Content[i]
		if keyNode.Kind == yaml.AliasNode {
			keyNode = keyNode.Alias
		}
		if keyNode.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: mapping keys must be scalars", keyNode.Line)
		}
		val, err := c.convert(n.Content[i+1])
		if err != nil {
			return nil, fmt.Errorf("object[%q]: %w", keyNode.Value, err)
		}
		obj.Set(keyNode.Value, val)
	}
	return obj, nil
}

func (c *yamlConverter) sequence(n *yaml.Node) (ir.Value, error) {
	if arr, ok := c.seen[n]; ok {
		return arr, nil
	}
	arr := ir.NewArray()
	c.seen[n] = arr

	for i, child := range n.Content {
		val, err := c.convert(child)
		if err != nil {
			return nil, fmt.Errorf("array[%d]: %w", i, err)
		}
		arr.Append(val)
	}
	return arr, nil
}

func scalar(n *yaml.Node) (ir.Value, error) {
	switch n.ShortTag() {
	case "!!null":
		return ir.Null{}, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, err
		}
		return ir.Bool(b), nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err == nil {
			return ir.Int(i), nil
		}
		var b big.Int
		if _, ok := b.SetString(strings.ReplaceAll(n.Value, "_", ""), 0); ok {
			return ir.NewBigInt(&b), nil
		}
		return nil, fmt.Errorf("line %d: invalid integer %q", n.Line, n.Value)
	case "!!float":
		// Untagged integers beyond 64 bits resolve as floats
		if n.Style&yaml.TaggedStyle == 0 {
			if b, ok := ir.ParseBigInt(n.Value); ok {
				return b, nil
			}
		}
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, err
		}
		return ir.Float(f), nil
	}
	// !!str, !!timestamp, !!binary and custom tags keep their literal text
	return ir.String(n.Value), nil
}
