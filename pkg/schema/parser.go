package schema

import "strings"

// parseChunk dispatches on the chunk's leading keyword and parses it
// into the matching item variant.
func parseChunk(chunk string) (Item, error) {
	fields := strings.Fields(chunk)
	if len(fields) == 0 {
		return Item{}, &ParseError{Chunk: chunk}
	}

	switch fields[0] {
	case "type":
		return parseObject(chunk, KindType)
	case "interface":
		return parseObject(chunk, KindInterface)
	case "enum":
		return parseEnum(chunk)
	case "union":
		return parseUnion(chunk)
	default:
		return Item{}, &ParseError{Chunk: chunk}
	}
}

// parseObject parses a type or interface block. The two are structurally
// identical; only the kind tag differs.
func parseObject(chunk string, kind ItemKind) (Item, error) {
	var lines []string
	for _, line := range strings.Split(chunk, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}

	// The header is `type Name {`. Taking the first token after the
	// keyword discards any implements clause on the same line.
	header := strings.TrimPrefix(lines[0], string(kind)+" ")
	header = strings.TrimSuffix(header, "{")
	headerFields := strings.Fields(header)
	if len(headerFields) == 0 {
		return Item{}, &ParseError{Chunk: chunk}
	}

	item := Item{Kind: kind, Name: headerFields[0]}
	for _, line := range lines[1:] {
		if line == "{" || line == "}" {
			continue
		}
		attr, err := parseAttribute(line)
		if err != nil {
			return Item{}, err
		}
		item.Attributes = append(item.Attributes, attr)
	}
	return item, nil
}

// parseAttribute parses a single field declaration line of the form
//
//	name: Type! @directive(args) # comment
//
// where the nullability marker, directive and comment are all optional.
func parseAttribute(line string) (Attribute, error) {
	name, rest, ok := strings.Cut(line, ":")
	if !ok {
		return Attribute{}, &FormatError{Line: line}
	}
	name = strings.TrimSuffix(strings.TrimSpace(name), ",")

	// A `!` inside directive arguments does not make the field
	// required; only one before the `@` does.
	bang := strings.Index(rest, "!")
	at := strings.Index(rest, "@")
	nullable := bang < 0 || (at >= 0 && at < bang)

	base, directive, hasDirective := strings.Cut(rest, "@")
	typeName := strings.ReplaceAll(strings.ReplaceAll(base, "!", ""), ",", "")

	attr := Attribute{
		Name:     name,
		Type:     strings.TrimSpace(typeName),
		Nullable: nullable,
	}
	if hasDirective {
		directive, _, _ = strings.Cut(directive, "#")
		attr.Directive = strings.TrimSpace(directive)
	}
	if idx := strings.LastIndex(line, "#"); idx >= 0 {
		attr.Comment = strings.TrimSpace(line[idx+1:])
	}
	return attr, nil
}

func parseEnum(chunk string) (Item, error) {
	header, body, _ := strings.Cut(chunk, "{")
	name := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(header), "enum "))

	item := Item{Kind: KindEnum, Name: name}
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line == "}" {
			continue
		}
		item.Options = append(item.Options, line)
	}
	return item, nil
}

func parseUnion(chunk string) (Item, error) {
	header, body, _ := strings.Cut(chunk, "=")
	name := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(header), "union"))

	item := Item{Kind: KindUnion, Name: name}
	for _, member := range strings.Split(body, "|") {
		if member = strings.TrimSpace(member); member != "" {
			item.Members = append(item.Members, member)
		}
	}
	return item, nil
}
