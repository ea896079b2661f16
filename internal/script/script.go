// Package script parses line-oriented document build scripts and
// replays them through a dom.TreeBuilder.
//
// Script format, one instruction per line:
//
//	# comment
//	element <label> <parent> <name> [namespace]
//	text    <parent> <content...>
//	comment <parent> <content...>
//	attr    <target> <key> [value...]
//
// <parent> and <target> are either "root" or the label of a previously
// declared element. Content and attribute values run to the end of the
// line, spaces included; an attr line with no value sets "".
//
// Scripts are UTF-8 by default. Files exported by legacy Windows
// tooling arrive in Windows-1252; Options.Latin1 decodes them to UTF-8
// on the way in.
package script

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/bigfatbird/gosub-browser/dom"
)

const commentPrefix = "#"

// Kind discriminates instruction types.
type Kind int

const (
	KindElement Kind = iota
	KindText
	KindComment
	KindAttr
)

// Instruction is one parsed script line.
type Instruction struct {
	Kind      Kind
	Label     string // element only: label the new node is known by
	Target    string // parent label, or attribute target label
	Name      string // element tag name, or attribute key
	Value     string // text/comment content, or attribute value
	Namespace string // element only
	Line      int
}

// Options controls parsing.
type Options struct {
	// Latin1 decodes the input from Windows-1252 before parsing.
	Latin1 bool
}

// Parse reads instructions from r. Labels are checked for duplicates;
// label references are resolved later, at Build time.
func Parse(r io.Reader, opts Options) ([]Instruction, error) {
	if opts.Latin1 {
		r = transform.NewReader(r, charmap.Windows1252.NewDecoder())
	}

	var (
		ins    []Instruction
		labels = map[string]bool{"root": true}
	)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}

		in, err := parseLine(line, lineNo)
		if err != nil {
			return nil, err
		}
		if in.Kind == KindElement {
			if labels[in.Label] {
				return nil, fmt.Errorf("line %d: %w: %q", lineNo, ErrDuplicateLabel, in.Label)
			}
			labels[in.Label] = true
		}
		ins = append(ins, in)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning script: %w", err)
	}

	return ins, nil
}

func parseLine(line string, lineNo int) (Instruction, error) {
	verb, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch verb {
	case "element":
		fields := strings.Fields(rest)
		if len(fields) < 3 || len(fields) > 4 {
			return Instruction{}, fmt.Errorf("line %d: %w: element wants <label> <parent> <name> [namespace]", lineNo, ErrBadArity)
		}
		namespace := dom.HTMLNamespace
		if len(fields) == 4 {
			namespace = fields[3]
		}
		return Instruction{
			Kind:      KindElement,
			Label:     fields[0],
			Target:    fields[1],
			Name:      fields[2],
			Namespace: namespace,
			Line:      lineNo,
		}, nil

	case "text", "comment":
		target, content, ok := strings.Cut(rest, " ")
		if !ok || target == "" {
			return Instruction{}, fmt.Errorf("line %d: %w: %s wants <parent> <content>", lineNo, ErrBadArity, verb)
		}
		kind := KindText
		if verb == "comment" {
			kind = KindComment
		}
		return Instruction{Kind: kind, Target: target, Value: content, Line: lineNo}, nil

	case "attr":
		fields := strings.SplitN(rest, " ", 3)
		if len(fields) < 2 || fields[0] == "" || fields[1] == "" {
			return Instruction{}, fmt.Errorf("line %d: %w: attr wants <target> <key> [value]", lineNo, ErrBadArity)
		}
		value := ""
		if len(fields) == 3 {
			value = fields[2]
		}
		return Instruction{Kind: KindAttr, Target: fields[0], Name: fields[1], Value: value, Line: lineNo}, nil

	default:
		return Instruction{}, fmt.Errorf("line %d: %w: %q", lineNo, ErrUnknownInstruction, verb)
	}
}

// Build replays instructions against b, resolving labels to node
// identities as elements are created. Recoverable attribute errors
// reported by b are collected and returned as messages; an unresolvable
// label aborts the build.
//
// With a tasks.Queue as b, attribute errors surface at flush time
// instead, and the returned message slice stays empty.
func Build(b dom.TreeBuilder, ins []Instruction) ([]string, error) {
	ids := map[string]dom.NodeID{"root": dom.RootID}

	resolve := func(in Instruction) (dom.NodeID, error) {
		id, ok := ids[in.Target]
		if !ok {
			return 0, fmt.Errorf("line %d: %w: %q", in.Line, ErrUnknownLabel, in.Target)
		}
		return id, nil
	}

	var taskErrs []string
	for _, in := range ins {
		target, err := resolve(in)
		if err != nil {
			return taskErrs, err
		}

		switch in.Kind {
		case KindElement:
			ids[in.Label] = b.CreateElement(in.Name, target, dom.AtEnd, in.Namespace)
		case KindText:
			b.CreateText(in.Value, target)
		case KindComment:
			b.CreateComment(in.Value, target)
		case KindAttr:
			if err := b.InsertAttribute(in.Name, in.Value, target); err != nil {
				taskErrs = append(taskErrs, err.Error())
			}
		}
	}
	return taskErrs, nil
}
