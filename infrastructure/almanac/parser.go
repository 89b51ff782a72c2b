// Package almanac reads almanac documents into domain almanacs.
package almanac

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	domain "github.com/ankarhem/advent-of-code/domain/almanac"
	"github.com/ankarhem/advent-of-code/domain/mapping"
)

// ErrSyntax matches every ParseError.
var ErrSyntax = errors.New("almanac syntax error")

// ParseError reports malformed input at a 1-based line.
type ParseError struct {
	Line int
	Msg  string
}

// Error implements error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// Is reports whether target is ErrSyntax.
func (e *ParseError) Is(target error) bool { return target == ErrSyntax }

const (
	seedsPrefix = "seeds:"
	mapSuffix   = "map:"
)

// stageBlock is a stage header with its rule lines, before validation.
type stageBlock struct {
	name  string
	line  int
	rules []mapping.RuleSpec
}

// Parse reads the text almanac format: a "seeds:" line followed by
// blank-line separated "<name> map:" blocks of "dest source length" lines.
func Parse(r io.Reader, opts ...mapping.PipelineOption) (domain.Almanac, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		seeds     []uint64
		seenSeeds bool
		blocks    []stageBlock
		current   *stageBlock
		lineNo    int
	)

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "":
			current = nil
		case !seenSeeds:
			if !strings.HasPrefix(line, seedsPrefix) {
				return domain.Almanac{}, &ParseError{Line: lineNo, Msg: "expected seeds line"}
			}
			values, err := parseNumbers(strings.TrimPrefix(line, seedsPrefix))
			if err != nil {
				return domain.Almanac{}, &ParseError{Line: lineNo, Msg: err.Error()}
			}
			seeds = values
			seenSeeds = true
		case strings.HasSuffix(line, mapSuffix):
			name := strings.TrimSpace(strings.TrimSuffix(line, mapSuffix))
			if name == "" {
				return domain.Almanac{}, &ParseError{Line: lineNo, Msg: "stage header without a name"}
			}
			blocks = append(blocks, stageBlock{name: name, line: lineNo})
			current = &blocks[len(blocks)-1]
		case current == nil:
			return domain.Almanac{}, &ParseError{Line: lineNo, Msg: fmt.Sprintf("rule outside a stage block: %q", line)}
		default:
			values, err := parseNumbers(line)
			if err != nil {
				return domain.Almanac{}, &ParseError{Line: lineNo, Msg: err.Error()}
			}
			if len(values) != 3 {
				return domain.Almanac{}, &ParseError{Line: lineNo, Msg: fmt.Sprintf("expected 3 numbers, got %d", len(values))}
			}
			current.rules = append(current.rules, mapping.RuleSpec{
				DestStart:   values[0],
				SourceStart: values[1],
				Length:      values[2],
			})
		}
	}
	if err := scanner.Err(); err != nil {
		return domain.Almanac{}, fmt.Errorf("read almanac: %w", err)
	}
	if !seenSeeds {
		return domain.Almanac{}, &ParseError{Line: lineNo, Msg: "missing seeds line"}
	}

	pipeline, err := buildPipeline(blocks, opts...)
	if err != nil {
		return domain.Almanac{}, err
	}
	return domain.New(seeds, pipeline), nil
}

// ParseString parses an almanac held in memory.
func ParseString(s string, opts ...mapping.PipelineOption) (domain.Almanac, error) {
	return Parse(strings.NewReader(s), opts...)
}

func buildPipeline(blocks []stageBlock, opts ...mapping.PipelineOption) (mapping.Pipeline, error) {
	stages := make([]mapping.Table, 0, len(blocks))
	for _, b := range blocks {
		table, err := mapping.NewTable(b.name, b.rules)
		if err != nil {
			return mapping.Pipeline{}, fmt.Errorf("build stage at line %d: %w", b.line, err)
		}
		stages = append(stages, table)
	}
	return mapping.NewPipeline(stages, opts...), nil
}

func parseNumbers(s string) ([]uint64, error) {
	fields := strings.Fields(s)
	values := make([]uint64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", f)
		}
		values = append(values, v)
	}
	return values, nil
}
