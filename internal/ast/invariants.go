package ast

import "fmt"

// CheckInvariants walks the tree and returns the first violation of the
// structural invariants in spec §3/§8, or nil if the tree is well-formed.
// Renderers do not call this on every render (it would defeat the "no
// suspension points" single-pass guarantee of §5); it exists for tests
// and for embedders that want to assert parser output before trusting it.
func CheckInvariants(root *Block) error {
	return checkNode(root)
}

func checkNode(b *Block) error {
	if b == nil {
		return fmt.Errorf("ast: nil block")
	}
	switch b.Kind {
	case KindContainer:
		if len(b.Inlines) != 0 {
			return fmt.Errorf("ast: container %v carries inlines", b.ContainerType)
		}
		switch b.ContainerType {
		case ContainerList:
			for _, c := range b.Children {
				if c.Kind != KindContainer || c.ContainerType != ContainerListItem {
					return fmt.Errorf("ast: list child is not a ListItem")
				}
			}
		case ContainerTable:
			nrow := 0
			if b.Table.NCol > 0 {
				nrow = len(b.Children) / b.Table.NCol
			}
			if b.Table.NCol == 0 || len(b.Children) != b.Table.NCol*nrow {
				return fmt.Errorf("ast: table children.len != ncol*nrow")
			}
			for _, c := range b.Children {
				if c.Kind != KindLeaf || c.LeafType != LeafParagraph {
					return fmt.Errorf("ast: table cell is not a paragraph leaf")
				}
			}
		}
		for _, c := range b.Children {
			if err := checkNode(c); err != nil {
				return err
			}
		}
	case KindLeaf:
		if len(b.Children) != 0 {
			return fmt.Errorf("ast: leaf %v carries children", b.LeafType)
		}
		if !b.LeafType.AcceptsInlines() && len(b.Inlines) != 0 {
			return fmt.Errorf("ast: leaf %v carries inlines but must not", b.LeafType)
		}
		for _, in := range b.Inlines {
			if err := checkInline(in); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("ast: unknown block kind %v", b.Kind)
	}
	return nil
}

func checkInline(in Inline) error {
	switch in.Type {
	case InlineText, InlineAutolink, InlineCodeSpan, InlineLineBreak:
		return nil
	case InlineLink, InlineImage:
		for _, r := range in.Runs {
			if err := checkInline(r); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("ast: unknown inline type %v", in.Type)
	}
}
