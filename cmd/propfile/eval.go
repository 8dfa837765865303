package main

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/scott-cotton/cli"
	"gopkg.in/yaml.v3"

	"property-extender/property"
)

type evalConfig struct {
	*cli.Command
	JSON bool `cli:"name=json aliases=j desc='write the result as json'"`
}

// EvalCommand returns the eval subcommand.
func EvalCommand() *cli.Command {
	cfg := &evalConfig{}
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Command, "eval").
		WithSynopsis("eval [--json] <file> - Resolve a file against a JSON object on stdin").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *evalConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}

	if len(args) != 1 {
		return fmt.Errorf("%w: eval requires one file", cli.ErrUsage)
	}

	set, err := loadSet(args[0])
	if err != nil {
		return err
	}

	var source map[string]any
	if err := json.NewDecoder(cc.In).Decode(&source); err != nil {
		return fmt.Errorf("could not decode source object: %w", err)
	}

	res, err := evalSet(set, source)
	if err != nil {
		return err
	}

	if cfg.JSON {
		enc := json.NewEncoder(cc.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	enc := yaml.NewEncoder(cc.Out)
	enc.SetIndent(2)

	if err := enc.Encode(res); err != nil {
		return err
	}

	return enc.Close()
}

type entry struct {
	name  string
	value any
}

// result keeps resolved properties in set order.
type result []entry

// evalSet resolves every property of set against source.
func evalSet(set *property.Set, source any) (result, error) {
	res := make(result, 0, set.Len())

	for _, p := range set.Properties() {
		value, err := p.Resolve(source)
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", p.Name(), err)
		}

		res = append(res, entry{name: p.Name(), value: value})
	}

	return res, nil
}

func (r result) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, e := range r {
		k, err := json.Marshal(e.name)
		if err != nil {
			return nil, err
		}

		v, err := json.Marshal(e.value)
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", e.name, err)
		}

		if i > 0 {
			buf.WriteByte(',')
		}

		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

func (r result) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	for _, e := range r {
		var val yaml.Node
		if err := val.Encode(e.value); err != nil {
			return nil, fmt.Errorf("property %q: %w", e.name, err)
		}

		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.name},
			&val,
		)
	}

	return node, nil
}
