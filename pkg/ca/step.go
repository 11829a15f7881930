package ca

// Step computes the successor of a ring state. Each cell reads its left and
// right neighbors with wraparound; the input is never modified.
func (r StandardRule) Step(s []uint8) []uint8 {
	n := len(s)
	next := make([]uint8, n)
	for i := 0; i < n; i++ {
		left := s[(i-1+n)%n]
		center := s[i]
		right := s[(i+1)%n]
		next[i] = r.table[left<<2|center<<1|right]
	}
	return next
}

// Step computes the successor of a ring state using prevDeriv as the
// per-cell change history. A nil prevDeriv means no history yet, which reads
// as changed=0 everywhere; otherwise it must have the same length as s.
func (r AwareRule) Step(s, prevDeriv []uint8) []uint8 {
	n := len(s)
	next := make([]uint8, n)
	for i := 0; i < n; i++ {
		left := s[(i-1+n)%n]
		center := s[i]
		right := s[(i+1)%n]
		var changed uint8
		if prevDeriv != nil {
			changed = prevDeriv[i]
		}
		next[i] = r.table[left<<3|center<<2|right<<1|changed]
	}
	return next
}

// Step advances a toroidal grid by one generation. A live cell keeps living
// when its Moore-neighbor count is in the survival set; a dead cell comes
// alive when the count is in the birth set.
func (r LifeRule) Step(g Grid) Grid {
	w, h := g.W, g.H
	next := Grid{W: w, H: h, cells: make([]uint8, len(g.cells))}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx := (x + dx + w) % w
					ny := (y + dy + h) % h
					neighbors += int(g.cells[ny*w+nx])
				}
			}
			idx := y*w + x
			alive := g.cells[idx] == 1
			if (alive && r.survive[neighbors]) || (!alive && r.birth[neighbors]) {
				next.cells[idx] = 1
			}
		}
	}
	return next
}
