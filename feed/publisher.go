package feed

import "shopcart-go/cart"

// Snapshot 推送给订阅者的购物车快照。
type Snapshot struct {
	Items     []cart.Item `json:"items"`
	Total     float64     `json:"total"`
	ItemCount int         `json:"itemCount"`
}

// Capture 从账本构建一份快照。
func Capture(l *cart.Ledger) Snapshot {
	return Snapshot{
		Items:     l.Items(),
		Total:     l.Total(),
		ItemCount: l.ItemCount(),
	}
}

// Publisher 一个轻量事件分发器。
type Publisher struct {
	subs []chan Snapshot
}

func NewPublisher() *Publisher {
	return &Publisher{
		subs: make([]chan Snapshot, 0),
	}
}

func (p *Publisher) Subscribe() <-chan Snapshot {
	ch := make(chan Snapshot, 1)
	p.subs = append(p.subs, ch)
	return ch
}

// Publish 非阻塞分发，慢订阅者丢弃本次快照。
func (p *Publisher) Publish(s Snapshot) {
	for _, ch := range p.subs {
		select {
		case ch <- s:
		default:
		}
	}
}
