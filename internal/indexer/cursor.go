package indexer

import "sync"

// Cursor is the transaction watermark of an engine. Signatures are fetched
// strictly older than LastSignature. It lives in memory only: a restarted
// process starts again from the head of the chain.
type Cursor struct {
	LastSignature string
	LastSlot      uint64
}

// cursorState guards the cursor shared by every address of a pass.
type cursorState struct {
	mu     sync.Mutex
	cursor Cursor
}

func (c *cursorState) Load() Cursor {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cursor
}

func (c *cursorState) Store(cursor Cursor) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cursor = cursor
}
