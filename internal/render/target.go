package render

// Target is a display slot. Each Render replaces what the slot showed before.
type Target interface {
    Render(Block)
}

// Slot is an in-memory Target that keeps the latest block and its history.
type Slot struct {
    ID     string
    blocks []Block
}

func NewSlot(id string) *Slot { return &Slot{ID: id} }

func (s *Slot) Render(b Block) { s.blocks = append(s.blocks, b) }

// Current returns the block the slot shows now, or the zero Block.
func (s *Slot) Current() Block {
    if len(s.blocks) == 0 { return Block{} }
    return s.blocks[len(s.blocks)-1]
}

func (s *Slot) History() []Block { return s.blocks }

// TargetFunc adapts a function to Target.
type TargetFunc func(Block)

func (f TargetFunc) Render(b Block) { f(b) }
