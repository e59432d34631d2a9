package annotate

import "vyper-hq/vast/pkg/vyast/ast"

// IDAllocator hands out node ids for one annotation pass.
type IDAllocator struct {
	next int
}

// Next returns the next id and advances the counter.
func (a *IDAllocator) Next() int {
	id := a.next
	a.next++
	return id
}

// Count returns the number of ids handed out so far.
func (a *IDAllocator) Count() int {
	return a.next
}

// Annotator stamps node ids, the shared source and definition categories
// onto a raw tree.
type Annotator struct {
	source     *ast.Source
	categories map[string]ast.Category
	ids        IDAllocator
}

// New creates an annotator for one compilation unit. A nil categories map
// leaves every definition unresolved.
func New(source *ast.Source, categories map[string]ast.Category) *Annotator {
	if source == nil {
		source = ast.NewSource("", 0)
	}
	if categories == nil {
		categories = map[string]ast.Category{}
	}
	return &Annotator{
		source:     source,
		categories: categories,
	}
}

// Visit annotates root and all its descendants in pre-order.
func (a *Annotator) Visit(root ast.Node) {
	if root == nil {
		return
	}
	a.visit(root)
}

// Count returns the number of nodes annotated so far.
func (a *Annotator) Count() int {
	return a.ids.Count()
}

func (a *Annotator) visit(n ast.Node) {
	m := n.Metadata()
	m.NodeID = a.ids.Next()
	m.Source = a.source
	m.Src = a.source.Summary(m.Span)

	if def, ok := n.(ast.Definition); ok {
		m.Category = nil
		if cat, found := a.categories[def.DefinitionName()]; found {
			m.Category = &cat
		}
	}

	for _, f := range n.Fields() {
		switch f.Kind {
		case ast.ChildField:
			if *f.Child != nil {
				a.visit(*f.Child)
			}
		case ast.ListField:
			for _, child := range *f.List {
				a.visit(child)
			}
		}
	}
}

// Annotate runs a fresh annotator over root and returns the number of nodes
// stamped. Numbering always starts at 0.
func Annotate(root ast.Node, source *ast.Source, categories map[string]ast.Category) int {
	a := New(source, categories)
	a.Visit(root)
	return a.Count()
}
