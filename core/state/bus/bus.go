package bus

type Bus struct {
	checker Checker
}

func NewBus() *Bus {
	return &Bus{}
}

func (b *Bus) SetChecker(checker Checker) {
	b.checker = checker
}

func (b *Bus) Checker() Checker {
	return b.checker
}
