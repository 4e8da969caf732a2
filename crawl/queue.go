package crawl

// queue is a BFS queue that never yields the same page twice. URLs are
// deduplicated on their normalized form but kept as found, so relative
// links still resolve against the page's real location.
type queue struct {
	items []string
	seen  map[string]bool
	idx   int
}

func newQueue() *queue {
	return &queue{seen: make(map[string]bool)}
}

// add enqueues u unless it was seen before.
func (q *queue) add(u string) {
	key := Normalize(u)
	if q.seen[key] {
		return
	}
	q.seen[key] = true
	q.items = append(q.items, u)
}

func (q *queue) hasNext() bool {
	return q.idx < len(q.items)
}

func (q *queue) next() string {
	u := q.items[q.idx]
	q.idx++
	return u
}

// all returns every queued URL in discovery order.
func (q *queue) all() []string {
	return q.items
}
