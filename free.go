package looseJSON

// Release takes ownership of doc, releases every owned resource of the
// tree exactly once and returns the pooled parser. The handle and every
// node and value reached through it are invalid afterwards. Releasing nil
// or an already released document is a no-op.
func Release(doc *Document) {
	if doc == nil || doc.root == nil {
		return
	}

	doc.releaseNode(doc.root)
	doc.root = nil

	if doc.par != nil {
		backToPool(doc.par)
		doc.par = nil
	}
}

// releaseNode walks the member sequence and branches on each value's kind,
// mirroring exactly what the builder allocated: objects recurse, owned
// texts and blocks are dropped, inline scalars need nothing. Values are
// stamped freed so a second visit is caught instead of corrupting the
// accounting.
func (d *Document) releaseNode(n *Node) {
	for _, v := range n.values {
		switch v.kind {
		case Object:
			d.releaseNode(v.obj)
			v.obj = nil
		case String, Null, Boolean:
			d.live.Texts--
			v.text = ""
		case Array:
			d.releaseBlock(v.arr)
			v.arr = nil
		case kindFreed:
			panic("loose json value released twice")
		}

		v.kind = kindFreed
		d.live.Values--
	}

	n.values = nil
	d.live.Nodes--
}

// releaseBlock scans a contiguous array block up to its sentinel, dropping
// the text payloads found along the way. Number elements are stored inline
// and need no release. The block itself is one allocation.
func (d *Document) releaseBlock(block []Value) {
	for i := range block {
		e := &block[i]
		if e.kind == kindArrayEnd {
			d.live.Blocks--
			return
		}

		switch e.kind {
		case String, Null, Boolean:
			d.live.Texts--
			e.text = ""
		case kindFreed:
			panic("loose json value released twice")
		}
		e.kind = kindFreed
	}

	panic("loose json block lost its sentinel")
}
