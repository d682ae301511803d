package internal

// maxLongIndex is the largest constant index a 3-byte operand can encode.
const maxLongIndex = 1<<24 - 1

// lineRun says that the next count bytes of code came from line.
type lineRun struct {
	line  int
	count int
}

// Chunk is a compiled unit of bytecode: code, its constant pool, a
// run-length encoded line table and the arena that owns every object the
// constants and the running program point to.
type Chunk struct {
	code      []byte
	constants []Value
	lines     []lineRun
	heap      heap
}

func newChunk() *Chunk {
	return &Chunk{
		code:      make([]byte, 0, 64),
		constants: make([]Value, 0, 8),
	}
}

func (c *Chunk) write(b byte, line int) {
	c.code = append(c.code, b)
	if n := len(c.lines); n > 0 && c.lines[n-1].line == line {
		c.lines[n-1].count++
		return
	}
	c.lines = append(c.lines, lineRun{line: line, count: 1})
}

func (c *Chunk) writeOp(op opcode, line int) {
	c.write(byte(op), line)
}

// writeIndexed emits op with a 1-byte operand, or op's long form with a
// 3-byte little-endian operand when index doesn't fit in a byte.
func (c *Chunk) writeIndexed(op opcode, index int, line int) {
	if index < 256 {
		c.writeOp(op, line)
		c.write(byte(index), line)
		return
	}
	c.writeOp(op.longForm(), line)
	c.write(byte(index), line)
	c.write(byte(index>>8), line)
	c.write(byte(index>>16), line)
}

func (c *Chunk) addConstant(v Value) int {
	c.constants = append(c.constants, v)
	return len(c.constants) - 1
}

// lineAt walks the line table. It is only used for diagnostics.
func (c *Chunk) lineAt(offset int) int {
	total := 0
	for _, run := range c.lines {
		total += run.count
		if total > offset {
			return run.line
		}
	}
	if len(c.lines) > 0 {
		return c.lines[len(c.lines)-1].line
	}
	return 0
}

func (c *Chunk) byteAt(offset int) byte {
	return c.code[offset]
}

func (c *Chunk) constantAt(index int) Value {
	return c.constants[index]
}

func (c *Chunk) codeLen() int {
	return len(c.code)
}

func (c *Chunk) constantCount() int {
	return len(c.constants)
}

// readIndex decodes the operand of a pool-indexed instruction at offset.
// It returns the index and the total instruction length.
func (c *Chunk) readIndex(offset int) (int, int) {
	if opcode(c.code[offset]).operandWidth() == 3 {
		index := int(c.code[offset+1]) | int(c.code[offset+2])<<8 | int(c.code[offset+3])<<16
		return index, 4
	}
	return int(c.code[offset+1]), 2
}

func (c *Chunk) newString(s string) Value {
	return objectValue(c.heap.newString(s))
}

// free releases every object allocated for this chunk.
func (c *Chunk) free() {
	c.heap.free()
	c.code = nil
	c.constants = nil
	c.lines = nil
}
