package almanac

import (
	"fmt"
	"io"

	domain "github.com/ankarhem/advent-of-code/domain/almanac"
	"github.com/ankarhem/advent-of-code/domain/mapping"
	"gopkg.in/yaml.v3"
)

// yamlDocument is the YAML form of an almanac.
type yamlDocument struct {
	Seeds  []uint64    `yaml:"seeds"`
	Stages []yamlStage `yaml:"stages"`
}

type yamlStage struct {
	Name  string     `yaml:"name"`
	Rules [][]uint64 `yaml:"rules"`
}

// ParseYAML reads an almanac from YAML.
func ParseYAML(r io.Reader, opts ...mapping.PipelineOption) (domain.Almanac, error) {
	var doc yamlDocument
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return domain.Almanac{}, fmt.Errorf("%w: decode yaml: %v", ErrSyntax, err)
	}

	blocks := make([]stageBlock, 0, len(doc.Stages))
	for i, s := range doc.Stages {
		name := s.Name
		if name == "" {
			name = fmt.Sprintf("stage-%d", i+1)
		}
		block := stageBlock{name: name, line: i + 1}
		for j, r := range s.Rules {
			if len(r) != 3 {
				return domain.Almanac{}, fmt.Errorf("%w: stage %s rule %d: expected 3 numbers, got %d", ErrSyntax, name, j, len(r))
			}
			block.rules = append(block.rules, mapping.RuleSpec{DestStart: r[0], SourceStart: r[1], Length: r[2]})
		}
		blocks = append(blocks, block)
	}

	stages := make([]mapping.Table, 0, len(blocks))
	for _, b := range blocks {
		table, err := mapping.NewTable(b.name, b.rules)
		if err != nil {
			return domain.Almanac{}, fmt.Errorf("build stage %d: %w", b.line, err)
		}
		stages = append(stages, table)
	}

	return domain.New(doc.Seeds, mapping.NewPipeline(stages, opts...)), nil
}
