package person

//go:generate fieldmeta
//go:fieldmeta -type Pair members -export

// Pair is a generic key-value holder, its members are generated as functions.
type Pair[K comparable, V any] struct {
	Key   K
	value V
}

func (p *Pair[K, V]) Value() V         { return p.value }
func (p *Pair[K, V]) SetValue(value V) { p.value = value }
