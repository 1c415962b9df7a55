package encoding

import (
	"fmt"
	"strconv"

	"github.com/mongoryhq/mongory-go/value"
	"gopkg.in/yaml.v3"
)

// DecodeYAML reads one YAML document from data into a value.Value. It
// walks the raw *yaml.Node tree rather than calling yaml.Unmarshal into a
// map[string]interface{}, the same idiom docker-compose-formatter's
// dockercompose.go uses to keep mapping keys in their original document
// order instead of losing it to Go's unordered map.
func DecodeYAML(data []byte) (*value.Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("encoding: decode yaml: %w", err)
	}
	if len(doc.Content) == 0 {
		return value.Null(), nil
	}
	return decodeYAMLNode(doc.Content[0])
}

func decodeYAMLNode(n *yaml.Node) (*value.Value, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return value.Null(), nil
		}
		return decodeYAMLNode(n.Content[0])
	case yaml.MappingNode:
		return decodeYAMLMapping(n)
	case yaml.SequenceNode:
		return decodeYAMLSequence(n)
	case yaml.ScalarNode:
		return decodeYAMLScalar(n), nil
	case yaml.AliasNode:
		return decodeYAMLNode(n.Alias)
	default:
		return value.Null(), nil
	}
}

func decodeYAMLMapping(n *yaml.Node) (*value.Value, error) {
	m := value.NewMap()
	for i := 0; i+1 < len(n.Content); i += 2 {
		keyNode := n.Content[i]
		valNode := n.Content[i+1]
		val, err := decodeYAMLNode(valNode)
		if err != nil {
			return nil, err
		}
		m.Set(keyNode.Value, val)
	}
	return value.FromMap(m), nil
}

func decodeYAMLSequence(n *yaml.Node) (*value.Value, error) {
	arr := value.NewArray()
	for _, item := range n.Content {
		val, err := decodeYAMLNode(item)
		if err != nil {
			return nil, err
		}
		arr.Push(val)
	}
	return value.FromArray(arr), nil
}

func decodeYAMLScalar(n *yaml.Node) *value.Value {
	switch n.Tag {
	case "!!null":
		return value.Null()
	case "!!bool":
		b, err := strconv.ParseBool(n.Value)
		if err != nil {
			return value.String(n.Value)
		}
		return value.Bool(b)
	case "!!int":
		i, err := strconv.ParseInt(n.Value, 10, 64)
		if err != nil {
			return value.String(n.Value)
		}
		return value.Int(i)
	case "!!float":
		f, err := strconv.ParseFloat(n.Value, 64)
		if err != nil {
			return value.String(n.Value)
		}
		return value.Double(f)
	default:
		return value.String(n.Value)
	}
}
