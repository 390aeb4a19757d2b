package schema

// Document is a fully parsed schema document. It is immutable once
// Parse returns: the raw text, segments, item sequence and every derived
// index are computed in the constructor and never touched again, so a
// Document is safe to share across goroutines without synchronization.
type Document struct {
	raw      string
	segments Segments
	items    []Item

	byName      map[string]Item
	byKind      map[ItemKind][]Item
	namesByKind map[ItemKind][]string
	names       []string
}

// Parse parses a raw schema document into a Document. The text may be a
// plain schema response or a combined generatedSchema response; segment
// splitting applies either way, and items are parsed from the input
// schema segment. Any chunk that fails to parse aborts the whole
// document.
func Parse(text string) (*Document, error) {
	segs := SplitSegments(text)

	doc := &Document{
		raw:         text,
		segments:    segs,
		byName:      make(map[string]Item),
		byKind:      make(map[ItemKind][]Item),
		namesByKind: make(map[ItemKind][]string),
	}

	for _, chunk := range chunkDocument(segs.InputSchema) {
		item, err := parseChunk(chunk)
		if err != nil {
			return nil, err
		}
		doc.items = append(doc.items, item)
		doc.names = append(doc.names, item.Name)
		doc.byName[item.Name] = item
		doc.byKind[item.Kind] = append(doc.byKind[item.Kind], item)
		doc.namesByKind[item.Kind] = append(doc.namesByKind[item.Kind], item.Name)
	}
	return doc, nil
}

// Raw returns the document text exactly as received.
func (d *Document) Raw() string { return d.raw }

// Segments returns the named decomposition of the raw text.
func (d *Document) Segments() Segments { return d.segments }

// Items returns every parsed item in chunk order. Because of the
// chunker's union handling, union items always come after every
// brace-delimited item regardless of source position.
func (d *Document) Items() []Item { return d.items }

func (d *Document) Types() []Item      { return d.byKind[KindType] }
func (d *Document) Interfaces() []Item { return d.byKind[KindInterface] }
func (d *Document) Enums() []Item      { return d.byKind[KindEnum] }
func (d *Document) Unions() []Item     { return d.byKind[KindUnion] }

// Names returns every item name in parse order.
func (d *Document) Names() []string { return d.names }

// NamesByKind returns the item names of one kind, in parse order.
func (d *Document) NamesByKind(kind ItemKind) []string { return d.namesByKind[kind] }

// Lookup returns the item with the given name. Name uniqueness within a
// document is assumed, not enforced; with duplicates the last one wins.
func (d *Document) Lookup(name string) (Item, bool) {
	item, ok := d.byName[name]
	return item, ok
}
