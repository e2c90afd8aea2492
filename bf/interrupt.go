package bf

// Interrupt is yielded by Engine.Run between instructions, with a nil error.
type Interrupt struct {
	Yield bool
}

var InterruptYield = &Interrupt{
	Yield: true,
}
