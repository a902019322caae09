package osc

import "go.uber.org/zap"

// typeTagBlock tracks the type tag string of a message in place. The block
// lives in the message buffer at offset and is rendered as ',' + one character
// per tag + a null terminator, padded to 4 bytes.
type typeTagBlock struct {
	offset int
	count  int
}

// sizeFor returns the rendered size of a block holding n tags.
func sizeFor(n int) int {
	l := n + 2 // ',' and the terminator
	return l + padBytesNeeded(l)
}

// size returns the number of bytes the block currently occupies.
func (b *typeTagBlock) size() int {
	return sizeFor(b.count)
}

// growth returns how many bytes appending n more tags adds to the block.
func (b *typeTagBlock) growth(n int) int {
	return sizeFor(b.count+n) - b.size()
}

// init writes an empty block at the end of buf.
func (b *typeTagBlock) init(buf []byte) []byte {
	b.offset = len(buf)
	b.count = 0
	return pad(append(buf, ',', 0))
}

// appendTag writes tag into buf. When the terminator no longer fits in the
// block, 4 zero bytes are spliced in right after it, moving every argument
// payload back by 4. The bool result reports whether that happened.
//
// The splice costs a copy of everything behind the block, so appending many
// arguments one by one is quadratic in the worst case. It happens once every
// 4 tags.
func (b *typeTagBlock) appendTag(buf []byte, tag TypeTag) ([]byte, bool) {
	oldSize := b.size()
	b.count++
	grown := b.size() > oldSize
	if grown {
		at := b.offset + oldSize
		if ce := Logger().Check(zap.DebugLevel, "osc: growing type tag block"); ce != nil {
			ce.Write(zap.Int("offset", at), zap.Int("shifted", len(buf)-at), zap.Int("tags", b.count))
		}
		buf = insertZeros(buf, at, bit32Size)
	}
	buf[b.offset+b.count] = byte(tag)
	return buf, grown
}

// tags returns the tag characters, without the leading ','.
func (b *typeTagBlock) tags(buf []byte) []byte {
	return buf[b.offset+1 : b.offset+1+b.count]
}
