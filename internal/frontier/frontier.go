package frontier

import "errors"

var (
	ErrAlreadySeeded = errors.New("frontier already seeded")
)

// Frontier is the FIFO queue of pending URLs paired with the set of every
// URL ever enqueued. All URLs are stored in normalized form.
type Frontier struct {
	queue   []string
	head    int
	visited map[string]struct{}
}

func New() *Frontier {
	return &Frontier{
		visited: make(map[string]struct{}),
	}
}

// Seed enqueues the crawl root. It must be the first insertion.
func (f *Frontier) Seed(url string) error {
	if len(f.visited) > 0 {
		return ErrAlreadySeeded
	}
	f.TryEnqueue(url)
	return nil
}

// TryEnqueue appends url unless its normalized form was seen before.
func (f *Frontier) TryEnqueue(url string) bool {
	n := Normalize(url)
	if _, ok := f.visited[n]; ok {
		return false
	}
	f.visited[n] = struct{}{}
	f.queue = append(f.queue, n)
	return true
}

// Dequeue pops the oldest pending URL. ok is false when nothing is pending.
func (f *Frontier) Dequeue() (url string, ok bool) {
	if f.head >= len(f.queue) {
		return "", false
	}
	url = f.queue[f.head]
	f.queue[f.head] = ""
	f.head++
	if f.head == len(f.queue) {
		f.queue = f.queue[:0]
		f.head = 0
	}
	return url, true
}

func (f *Frontier) Contains(url string) bool {
	_, ok := f.visited[Normalize(url)]
	return ok
}

// Len returns the number of pending URLs.
func (f *Frontier) Len() int {
	return len(f.queue) - f.head
}

// Visited returns how many distinct URLs were ever enqueued.
func (f *Frontier) Visited() int {
	return len(f.visited)
}
