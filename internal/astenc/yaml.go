package astenc

import (
	"gopkg.in/yaml.v3"
)

// MarshalYAML builds an ordered mapping with the same keys and order as
// MarshalJSON.
func (d *Doc) MarshalYAML() (any, error) {
	return mappingNode(d.eachField)
}

func (b *BlockDoc) MarshalYAML() (any, error) {
	return mappingNode(b.eachField)
}

func mappingNode(each func(emit func(name string, v any))) (*yaml.Node, error) {
	out := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	var err error
	each(func(name string, v any) {
		if err != nil {
			return
		}
		val := &yaml.Node{}
		if err = val.Encode(v); err != nil {
			return
		}
		out.Content = append(out.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name},
			val,
		)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
