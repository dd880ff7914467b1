package cart

// Item 购物车中的一条记录。
type Item struct {
	Name      string
	UnitPrice float64
	Quantity  int
}

// Ledger 按插入顺序维护条目，非并发安全，调用方需自行串行化。
// 同名条目不合并；Remove 删除全部同名条目。
type Ledger struct {
	items []Item
}

// Add 追加一条数量为 1 的条目。
func (l *Ledger) Add(name string, unitPrice float64) {
	l.AddN(name, unitPrice, 1)
}

// AddN 追加一条指定数量的条目，不做校验。
func (l *Ledger) AddN(name string, unitPrice float64, qty int) {
	l.items = append(l.items, Item{Name: name, UnitPrice: unitPrice, Quantity: qty})
}

// Remove 删除所有 Name 精确匹配的条目；无匹配则为空操作。
func (l *Ledger) Remove(name string) {
	kept := l.items[:0]
	for _, it := range l.items {
		if it.Name != name {
			kept = append(kept, it)
		}
	}
	l.items = kept
}

// Clear 清空全部条目。
func (l *Ledger) Clear() {
	l.items = nil
}

// Total 按插入顺序累加 UnitPrice*Quantity，空车返回 0。
func (l *Ledger) Total() float64 {
	var sum float64
	for _, it := range l.items {
		sum += it.UnitPrice * float64(it.Quantity)
	}
	return sum
}

// ItemCount 返回全部条目的数量之和。
func (l *Ledger) ItemCount() int {
	var n int
	for _, it := range l.items {
		n += it.Quantity
	}
	return n
}

// Items 返回当前条目的副本，外部修改不影响内部状态。
func (l *Ledger) Items() []Item {
	out := make([]Item, len(l.items))
	copy(out, l.items)
	return out
}
