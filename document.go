package looseJSON

import "sync"

// AllocStats counts outstanding builder allocations by category. Every
// allocation the builder performs bumps exactly one counter and Release
// drives every counter back to zero, which makes leaks and double releases
// visible to tests.
//
// Array elements live inline in their block, so a block costs one Blocks
// unit no matter how many elements it holds; only element text payloads
// are counted on top.
type AllocStats struct {
	Nodes  int
	Values int
	Texts  int
	Blocks int
}

func (s AllocStats) Zero() bool {
	return s == AllocStats{}
}

// Document owns the parsed tree, rooted at a synthetic node named "root"
// that wraps the outermost braces. Release invalidates the handle.
type Document struct {
	root *Node
	par  *parser
	live AllocStats
}

func (d *Document) Root() *Node {
	if d == nil {
		return nil
	}
	return d.root
}

func (d *Document) Dig(path ...string) *Value {
	if d == nil {
		return nil
	}
	return d.root.Dig(path...)
}

// Outstanding reports the allocations currently held by the tree.
func (d *Document) Outstanding() AllocStats {
	if d == nil {
		return AllocStats{}
	}
	return d.live
}

// allocation helpers, every builder allocation goes through one of these

func (d *Document) newNode(name string) *Node {
	d.live.Nodes++
	return &Node{name: name}
}

func (d *Document) newValue(name string) *Value {
	d.live.Values++
	return &Value{name: name}
}

func (d *Document) ownText(v *Value, kind Kind, text string) {
	d.live.Texts++
	v.kind = kind
	v.text = text
}

func (d *Document) ownBlock(v *Value, block []Value) {
	v.kind = Array
	v.arr = block
}

func (d *Document) sealBlock(block []Value) []Value {
	d.live.Blocks++
	return append(block, Value{kind: kindArrayEnd})
}

// ******************** //
//     PARSER POOL      //
// ******************** //

var (
	parserPool      = make([]*parser, 0, 16)
	parserPoolIndex = -1
	parserPoolMu    = &sync.Mutex{}
)

func getFromPool() *parser {
	parserPoolMu.Lock()
	defer parserPoolMu.Unlock()

	parserPoolIndex++

	if parserPoolIndex > len(parserPool)-1 {
		p := &parser{id: parserPoolIndex}
		p.stack = make([]*Node, 0, maxDepth)
		parserPool = append(parserPool, p)
	}

	return parserPool[parserPoolIndex]
}

func backToPool(p *parser) {
	parserPoolMu.Lock()
	defer parserPoolMu.Unlock()

	cur := p.id
	top := parserPool[parserPoolIndex]

	parserPool[cur] = top
	top.id = cur
	parserPool[parserPoolIndex] = p
	p.id = parserPoolIndex

	parserPoolIndex--
}

// DecodeString parses one document held in json. The string bounds are
// the buffer bounds, the lexer never scans past them.
func DecodeString(json string) (*Document, error) {
	p := getFromPool()

	doc, err := p.parse(json)
	if err != nil {
		backToPool(p)
		return nil, err
	}

	doc.par = p
	return doc, nil
}

// DecodeBytes parses one document held in b. The buffer is copied, the
// resulting tree owns all of its text.
func DecodeBytes(b []byte) (*Document, error) {
	return DecodeString(string(b))
}
