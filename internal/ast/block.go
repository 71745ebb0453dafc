package ast

// BlockKind distinguishes the two Block variants.
type BlockKind uint8

// BlockKind values.
const (
	KindContainer BlockKind = iota
	KindLeaf
)

// ContainerType identifies which Container payload a Block holds.
type ContainerType uint8

// ContainerType values.
const (
	ContainerDocument ContainerType = iota
	ContainerQuote
	ContainerList
	ContainerListItem
	ContainerTable
)

// LeafType identifies which Leaf payload a Block holds.
type LeafType uint8

// LeafType values.
const (
	LeafParagraph LeafType = iota
	LeafHeading
	LeafCode
	LeafAlert
	LeafBreak
)

// ListKind distinguishes the three List flavors.
type ListKind uint8

// ListKind values.
const (
	ListUnordered ListKind = iota
	ListOrdered
	ListTask
)

// Block is a node in the document tree: exactly one of Container or Leaf.
// The zero value is not a valid Block; use the New* constructors.
type Block struct {
	Kind BlockKind

	// StartCol is the column where the block's first line began.
	StartCol int
	// Open is true while the parser still considers this block extendable.
	// Renderers never observe Open == true; it is cleared before the tree
	// is handed to a renderer.
	Open bool

	// Container fields (Kind == KindContainer)
	ContainerType ContainerType
	Children      []*Block

	Document DocumentPayload
	Quote    QuotePayload
	List     ListPayload
	ListItem ListItemPayload
	Table    TablePayload

	// Leaf fields (Kind == KindLeaf)
	LeafType LeafType
	Inlines  []Inline

	Paragraph ParagraphPayload
	Heading   HeadingPayload
	Code      CodePayload
	Alert     AlertPayload
	Break     BreakPayload
}

// DocumentPayload is the root container; it has no fields of its own.
type DocumentPayload struct{}

// QuotePayload is a blockquote container; it has no fields of its own.
type QuotePayload struct{}

// ListPayload describes a List container.
type ListPayload struct {
	ListKind ListKind
	Start    int // first ordinal for ordered lists; default 1
	Spacing  int // 0 = tight, >=1 = loose
}

// ListItemPayload describes a ListItem container.
type ListItemPayload struct {
	Checked bool // meaningful only when the parent list is ListTask
}

// TablePayload describes a Table container.
type TablePayload struct {
	NCol int
}

// ParagraphPayload is a plain paragraph leaf; it has no fields of its own.
type ParagraphPayload struct{}

// HeadingPayload describes a Heading leaf.
type HeadingPayload struct {
	Level int    // 1..6
	Text  string // plain string copy, used for anchor ids and ToC
}

// CodePayload describes a fenced Code leaf.
type CodePayload struct {
	Opener    string // fence string, e.g. "```"
	Tag       string // info string, e.g. "c++"
	Directive string // non-empty label in braces, e.g. "warning", "toc"
	Text      string // raw body, verbatim including internal newlines
}

// HasDirective reports whether this code block is a directive box rather
// than ordinary fenced code.
func (c CodePayload) HasDirective() bool { return c.Directive != "" }

// AlertPayload describes an Alert leaf.
type AlertPayload struct {
	Alert string // label inside [!LABEL], case-preserved
}

// BreakPayload marks a blank-line boundary; it emits nothing visible.
type BreakPayload struct{}

// NewDocument builds an empty Document container.
func NewDocument() *Block {
	return &Block{Kind: KindContainer, ContainerType: ContainerDocument}
}

// NewQuote builds an empty Quote container at the given start column.
func NewQuote(startCol int) *Block {
	return &Block{Kind: KindContainer, ContainerType: ContainerQuote, StartCol: startCol}
}

// NewList builds an empty List container.
func NewList(kind ListKind, start, startCol int) *Block {
	return &Block{
		Kind: KindContainer, ContainerType: ContainerList, StartCol: startCol,
		List: ListPayload{ListKind: kind, Start: start},
	}
}

// NewListItem builds an empty ListItem container.
func NewListItem(startCol int) *Block {
	return &Block{Kind: KindContainer, ContainerType: ContainerListItem, StartCol: startCol}
}

// NewTable builds an empty Table container with a fixed column count.
func NewTable(ncol, startCol int) *Block {
	return &Block{
		Kind: KindContainer, ContainerType: ContainerTable, StartCol: startCol,
		Table: TablePayload{NCol: ncol},
	}
}

// NewParagraph builds an empty Paragraph leaf.
func NewParagraph(startCol int) *Block {
	return &Block{Kind: KindLeaf, LeafType: LeafParagraph, StartCol: startCol}
}

// NewHeading builds a Heading leaf.
func NewHeading(level int, startCol int) *Block {
	return &Block{Kind: KindLeaf, LeafType: LeafHeading, StartCol: startCol, Heading: HeadingPayload{Level: level}}
}

// NewCode builds a Code leaf.
func NewCode(opener, tag, directive string, startCol int) *Block {
	return &Block{
		Kind: KindLeaf, LeafType: LeafCode, StartCol: startCol,
		Code: CodePayload{Opener: opener, Tag: tag, Directive: directive},
	}
}

// NewAlert builds an Alert leaf.
func NewAlert(label string, startCol int) *Block {
	return &Block{Kind: KindLeaf, LeafType: LeafAlert, StartCol: startCol, Alert: AlertPayload{Alert: label}}
}

// NewBreak builds a Break leaf.
func NewBreak(startCol int) *Block {
	return &Block{Kind: KindLeaf, LeafType: LeafBreak, StartCol: startCol}
}

// IsContainer reports whether b is a Container.
func (b *Block) IsContainer() bool { return b.Kind == KindContainer }

// IsLeaf reports whether b is a Leaf.
func (b *Block) IsLeaf() bool { return b.Kind == KindLeaf }

// AppendChild appends a child to a Container block. It panics if b is a
// Leaf; callers are expected to already know b's kind from the parser's
// own bookkeeping, so this is a programming-error guard, not user input
// validation.
func (b *Block) AppendChild(child *Block) {
	if b.Kind != KindContainer {
		panic("ast: AppendChild on a Leaf block")
	}
	b.Children = append(b.Children, child)
}

// AcceptsInlines reports whether a Leaf of this LeafType carries phrasing
// content. Code and Break never do.
func (lt LeafType) AcceptsInlines() bool {
	return lt != LeafCode && lt != LeafBreak
}

// LastOpenChild returns the last child of a Container if it is itself
// Open, else nil. Used by the parser to find the currently-open
// descendant without walking the whole slice.
func (b *Block) LastOpenChild() *Block {
	if len(b.Children) == 0 {
		return nil
	}
	last := b.Children[len(b.Children)-1]
	if last.Open {
		return last
	}
	return nil
}

// CloseAll marks b and every open descendant as closed. Mirrors the
// parser invariant that closing a parent closes all still-open
// descendants (spec §3).
func (b *Block) CloseAll() {
	b.Open = false
	if b.Kind == KindContainer {
		if child := b.LastOpenChild(); child != nil {
			child.CloseAll()
		}
	}
}
