package telemetry

// TickRow is one line of the statistics table.
type TickRow struct {
	Tick   int `csv:"tick"`
	Fish   int `csv:"fish"`
	Sharks int `csv:"sharks"`
}

// History keeps the most recent rows in a ring buffer.
type History struct {
	rows []TickRow
	size int
	next int
	full bool
}

// NewHistory creates a history holding up to size rows.
func NewHistory(size int) *History {
	if size < 1 {
		size = 200
	}
	return &History{
		rows: make([]TickRow, size),
		size: size,
	}
}

// Add appends a row, evicting the oldest when full.
func (h *History) Add(row TickRow) {
	h.rows[h.next] = row
	h.next = (h.next + 1) % h.size
	if h.next == 0 {
		h.full = true
	}
}

// Len returns the number of stored rows.
func (h *History) Len() int {
	if h.full {
		return h.size
	}
	return h.next
}

// Latest returns the most recent row.
func (h *History) Latest() (TickRow, bool) {
	if h.Len() == 0 {
		return TickRow{}, false
	}
	return h.rows[(h.next-1+h.size)%h.size], true
}

// Rows returns the stored rows newest first, the order the table shows them.
func (h *History) Rows() []TickRow {
	n := h.Len()
	out := make([]TickRow, n)
	for i := 0; i < n; i++ {
		out[i] = h.rows[(h.next-1-i+2*h.size)%h.size]
	}
	return out
}

// Series returns the fish and shark counts oldest first.
func (h *History) Series() (fish, sharks []float64) {
	n := h.Len()
	fish = make([]float64, n)
	sharks = make([]float64, n)
	start := 0
	if h.full {
		start = h.next
	}
	for i := 0; i < n; i++ {
		r := h.rows[(start+i)%h.size]
		fish[i] = float64(r.Fish)
		sharks[i] = float64(r.Sharks)
	}
	return fish, sharks
}

// Reset drops every row.
func (h *History) Reset() {
	h.next = 0
	h.full = false
}
