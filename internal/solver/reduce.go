package solver

import (
	"sudoku-solver/internal/digits"
	"sudoku-solver/internal/grid"
	"sudoku-solver/internal/indexed"
	"sudoku-solver/internal/trace"
)

// A reducer drains a priority queue of reduction steps against a tracker
// until no rule fires or the board is proven unsolveable.  Steps consult
// the tracker, eliminate candidates, and enqueue the follow-on steps that
// their eliminations make applicable.
type reducer struct {
	rem   *tracker
	queue stepQueue
	rec   trace.Recorder
}

// reduce runs the tracker to a deductive fixed point.  It returns false if
// the board was proven unsolveable; the contradiction never escapes as an
// error.
func reduce(rem *tracker, rec trace.Recorder) bool {
	r := &reducer{rem: rem, rec: rec}
	r.seed()
	r.record(trace.InitialState{})
	for {
		s, ok := r.queue.pop()
		if !ok {
			return true
		}
		if !r.apply(s) {
			return false
		}
	}
}

func (r *reducer) record(reason trace.Reason) {
	r.rec.Record(reason, r.rem.snapshot())
}

// seed enqueues every step that is already applicable to the fresh tracker.
func (r *reducer) seed() {
	indexed.Enumerate(&r.rem.cells, grid.CellAt, func(c grid.Cell, set digits.Set) {
		if set.IsSingle() {
			r.queue.push(cellSingularStep(c))
		}
	})
	for _, row := range grid.AllRows() {
		if !singularDigits(r.rem.rows.Get(row)).IsEmpty() {
			r.queue.push(rowSingularStep(row))
		}
	}
	for _, col := range grid.AllCols() {
		if !singularDigits(r.rem.cols.Get(col)).IsEmpty() {
			r.queue.push(colSingularStep(col))
		}
	}
	for _, box := range grid.AllBoxes() {
		if !singularDigits(r.rem.boxes.Get(box)).IsEmpty() {
			r.queue.push(boxSingularStep(box))
		}
	}
	for _, l := range grid.AllBoxRows() {
		cnt := r.rem.boxRows.Get(l)
		if cnt.Avail().Len() == grid.BoxSize {
			r.queue.push(lineMatchStep(l))
		}
		rowCnt := r.rem.rows.Get(l.Row())
		boxCnt := r.rem.boxes.Get(l.Box())
		for _, d := range digits.All() {
			n := cnt.Get(d)
			if n == 0 {
				continue
			}
			if n == rowCnt.Get(d) {
				r.queue.push(onlyInLineStep(l))
			}
			if n == boxCnt.Get(d) {
				r.queue.push(onlyInBoxStep(l))
			}
		}
	}
	for _, l := range grid.AllBoxCols() {
		cnt := r.rem.boxCols.Get(l)
		if cnt.Avail().Len() == grid.BoxSize {
			r.queue.push(lineMatchColStep(l))
		}
		colCnt := r.rem.cols.Get(l.Col())
		boxCnt := r.rem.boxes.Get(l.Box())
		for _, d := range digits.All() {
			n := cnt.Get(d)
			if n == 0 {
				continue
			}
			if n == colCnt.Get(d) {
				r.queue.push(onlyInLineColStep(l))
			}
			if n == boxCnt.Get(d) {
				r.queue.push(onlyInBoxColStep(l))
			}
		}
	}
}

// apply decodes a step ordinal and runs it.  It returns false once a
// contradiction has been proved.
func (r *reducer) apply(s step) bool {
	switch {
	case s < baseRowSingular:
		return r.cellSingular(grid.CellAt(int(s - baseCellSingular)))
	case s < baseColSingular:
		return r.rowSingular(grid.NewRow(int(s - baseRowSingular)))
	case s < baseBoxSingular:
		return r.colSingular(grid.NewCol(int(s - baseColSingular)))
	case s < baseLineMatchRow:
		return r.boxSingular(grid.BoxAt(int(s - baseBoxSingular)))
	case s < baseLineMatchCol:
		return r.lineMatchRow(grid.BoxRowAt(int(s - baseLineMatchRow)))
	case s < baseOnlyInLineRow:
		return r.lineMatchCol(grid.BoxColAt(int(s - baseLineMatchCol)))
	case s < baseOnlyInLineCol:
		return r.onlyInLineRow(grid.BoxRowAt(int(s - baseOnlyInLineRow)))
	case s < baseOnlyInBoxRow:
		return r.onlyInLineCol(grid.BoxColAt(int(s - baseOnlyInLineCol)))
	case s < baseOnlyInBoxCol:
		return r.onlyInBoxRow(grid.BoxRowAt(int(s - baseOnlyInBoxRow)))
	default:
		return r.onlyInBoxCol(grid.BoxColAt(int(s - baseOnlyInBoxCol)))
	}
}

// cellSingular eliminates the sole remaining digit of a cell from all of
// the cell's neighbours.
func (r *reducer) cellSingular(c grid.Cell) bool {
	// If another step emptied this cell, reduction already stopped before
	// this step could run again.
	d, ok := r.rem.cells.Get(c).Single()
	if !ok {
		return true
	}
	any := false
	for _, n := range c.Neighbors() {
		changed, ok := r.eliminate(n, d)
		if !ok {
			return false
		}
		any = any || changed
	}
	if any {
		r.record(trace.CellNeighbors{Cell: c, Digit: d})
	}
	return true
}

// singularDigits returns the digits whose remaining count in the zone is
// exactly one.
func singularDigits(c *digits.Count) digits.Set {
	s := digits.EmptySet()
	for _, d := range digits.All() {
		if c.Get(d) == 1 {
			s.Add(d)
		}
	}
	return s
}

func (r *reducer) rowSingular(row grid.Row) bool {
	vals := singularDigits(r.rem.rows.Get(row))
	changed, ok := r.assignSingles(row.Cells(), vals, row.String())
	if !ok {
		return false
	}
	if changed {
		r.record(trace.UniqueInRow{Row: row, Vals: vals})
	}
	return true
}

func (r *reducer) colSingular(col grid.Col) bool {
	vals := singularDigits(r.rem.cols.Get(col))
	changed, ok := r.assignSingles(col.Cells(), vals, col.String())
	if !ok {
		return false
	}
	if changed {
		r.record(trace.UniqueInCol{Col: col, Vals: vals})
	}
	return true
}

func (r *reducer) boxSingular(box grid.Box) bool {
	vals := singularDigits(r.rem.boxes.Get(box))
	changed, ok := r.assignSingles(box.Cells(), vals, box.String())
	if !ok {
		return false
	}
	if changed {
		r.record(trace.UniqueInBox{Box: box, Vals: vals})
	}
	return true
}

// assignSingles pins each digit of vals to its unique home among the zone's
// cells by eliminating everything else from that cell.  Two of the digits
// claiming the same home is a contradiction: both would need the cell.
func (r *reducer) assignSingles(cells []grid.Cell, vals digits.Set, zone string) (bool, bool) {
	if vals.IsEmpty() {
		return false, true
	}
	any := false
	for _, c := range cells {
		m := r.rem.cells.Get(c).Intersect(vals)
		if m.IsEmpty() {
			continue
		}
		if m.Len() >= 2 {
			r.record(trace.Unsolveable{Why: "values_must_share", Zone: zone, Vals: m})
			return any, false
		}
		d, _ := m.Single()
		others := r.rem.cells.Get(c).Without(d)
		for it := others.Iter(); ; {
			o, ok := it.Next()
			if !ok {
				break
			}
			changed, ok := r.eliminate(c, o)
			if !ok {
				return any, false
			}
			any = any || changed
		}
	}
	return any, true
}

// lineMatchRow handles a box-row that is down to exactly three digits.
// Those digits fill the box-row, so they cannot appear in the rest of the
// row or the rest of the box.
func (r *reducer) lineMatchRow(l grid.BoxRow) bool {
	vals := r.rem.boxRows.Get(l).Avail()
	if vals.Len() != grid.BoxSize {
		return true
	}
	eliminated := digits.EmptySet()
	for _, n := range l.LineNeighbors() {
		e, ok := r.eliminateAll(n.Cells(), vals)
		eliminated = eliminated.Union(e)
		if !ok {
			return false
		}
	}
	for _, n := range l.BoxNeighbors() {
		e, ok := r.eliminateAll(n.Cells(), vals)
		eliminated = eliminated.Union(e)
		if !ok {
			return false
		}
	}
	if !eliminated.IsEmpty() {
		r.record(trace.LineSizeMatch{Line: l.String(), Vals: eliminated})
	}
	return true
}

func (r *reducer) lineMatchCol(l grid.BoxCol) bool {
	vals := r.rem.boxCols.Get(l).Avail()
	if vals.Len() != grid.BoxSize {
		return true
	}
	eliminated := digits.EmptySet()
	for _, n := range l.LineNeighbors() {
		e, ok := r.eliminateAll(n.Cells(), vals)
		eliminated = eliminated.Union(e)
		if !ok {
			return false
		}
	}
	for _, n := range l.BoxNeighbors() {
		e, ok := r.eliminateAll(n.Cells(), vals)
		eliminated = eliminated.Union(e)
		if !ok {
			return false
		}
	}
	if !eliminated.IsEmpty() {
		r.record(trace.LineSizeMatch{Line: l.String(), Vals: eliminated})
	}
	return true
}

// onlyInLineRow handles a box-row that holds every remaining copy of some
// digits in its row.  Those digits must land in this box-row, so they are
// eliminated from the rest of the box.
func (r *reducer) onlyInLineRow(l grid.BoxRow) bool {
	cnt := r.rem.boxRows.Get(l)
	rowCnt := r.rem.rows.Get(l.Row())
	vals := digits.EmptySet()
	for _, d := range digits.All() {
		if n := cnt.Get(d); n > 0 && n == rowCnt.Get(d) {
			vals.Add(d)
		}
	}
	if vals.IsEmpty() {
		return true
	}
	eliminated := digits.EmptySet()
	for _, n := range l.BoxNeighbors() {
		e, ok := r.eliminateAll(n.Cells(), vals)
		eliminated = eliminated.Union(e)
		if !ok {
			return false
		}
	}
	if !eliminated.IsEmpty() {
		r.record(trace.LineOnlyInLine{Line: l.String(), Vals: eliminated})
	}
	return true
}

func (r *reducer) onlyInLineCol(l grid.BoxCol) bool {
	cnt := r.rem.boxCols.Get(l)
	colCnt := r.rem.cols.Get(l.Col())
	vals := digits.EmptySet()
	for _, d := range digits.All() {
		if n := cnt.Get(d); n > 0 && n == colCnt.Get(d) {
			vals.Add(d)
		}
	}
	if vals.IsEmpty() {
		return true
	}
	eliminated := digits.EmptySet()
	for _, n := range l.BoxNeighbors() {
		e, ok := r.eliminateAll(n.Cells(), vals)
		eliminated = eliminated.Union(e)
		if !ok {
			return false
		}
	}
	if !eliminated.IsEmpty() {
		r.record(trace.LineOnlyInLine{Line: l.String(), Vals: eliminated})
	}
	return true
}

// onlyInBoxRow handles a box-row that holds every remaining copy of some
// digits in its box.  Those digits are eliminated from the rest of the row.
func (r *reducer) onlyInBoxRow(l grid.BoxRow) bool {
	cnt := r.rem.boxRows.Get(l)
	boxCnt := r.rem.boxes.Get(l.Box())
	vals := digits.EmptySet()
	for _, d := range digits.All() {
		if n := cnt.Get(d); n > 0 && n == boxCnt.Get(d) {
			vals.Add(d)
		}
	}
	if vals.IsEmpty() {
		return true
	}
	eliminated := digits.EmptySet()
	for _, n := range l.LineNeighbors() {
		e, ok := r.eliminateAll(n.Cells(), vals)
		eliminated = eliminated.Union(e)
		if !ok {
			return false
		}
	}
	if !eliminated.IsEmpty() {
		r.record(trace.LineOnlyInBox{Line: l.String(), Vals: eliminated})
	}
	return true
}

func (r *reducer) onlyInBoxCol(l grid.BoxCol) bool {
	cnt := r.rem.boxCols.Get(l)
	boxCnt := r.rem.boxes.Get(l.Box())
	vals := digits.EmptySet()
	for _, d := range digits.All() {
		if n := cnt.Get(d); n > 0 && n == boxCnt.Get(d) {
			vals.Add(d)
		}
	}
	if vals.IsEmpty() {
		return true
	}
	eliminated := digits.EmptySet()
	for _, n := range l.LineNeighbors() {
		e, ok := r.eliminateAll(n.Cells(), vals)
		eliminated = eliminated.Union(e)
		if !ok {
			return false
		}
	}
	if !eliminated.IsEmpty() {
		r.record(trace.LineOnlyInBox{Line: l.String(), Vals: eliminated})
	}
	return true
}

// eliminateAll removes every digit of vals from every listed cell and
// returns the set of digits actually removed somewhere.
func (r *reducer) eliminateAll(cells []grid.Cell, vals digits.Set) (digits.Set, bool) {
	eliminated := digits.EmptySet()
	for _, c := range cells {
		for it := vals.Iter(); ; {
			d, ok := it.Next()
			if !ok {
				break
			}
			changed, ok := r.eliminate(c, d)
			if !ok {
				return eliminated, false
			}
			if changed {
				eliminated.Add(d)
			}
		}
	}
	return eliminated, true
}

// eliminate removes a single digit from a single cell and propagates the
// decrement to the five zone counters containing the cell.  The first
// result reports whether the cell changed; the second is false once a
// contradiction has been proved.
func (r *reducer) eliminate(c grid.Cell, d digits.Digit) (bool, bool) {
	cell := r.rem.cells.Get(c)
	if !cell.Remove(d) {
		return false, true
	}
	if cell.IsEmpty() {
		cc := c
		r.record(trace.Unsolveable{Why: "empty_cell", Cell: &cc})
		return true, false
	}
	if cell.IsSingle() {
		r.queue.push(cellSingularStep(c))
	}
	if !r.removeFromRow(c.Row(), d) {
		return true, false
	}
	if !r.removeFromCol(c.Col(), d) {
		return true, false
	}
	if !r.removeFromBox(c.Box(), d) {
		return true, false
	}
	if !r.removeFromBoxRow(c.BoxRow(), d) {
		return true, false
	}
	if !r.removeFromBoxCol(c.BoxCol(), d) {
		return true, false
	}
	return true, true
}

func (r *reducer) removeFromRow(row grid.Row, d digits.Digit) bool {
	n, had := r.rem.rows.Get(row).Remove(d)
	if !had {
		panic("digit already eliminated from row but reduction did not stop")
	}
	switch n {
	case 0:
		r.record(trace.Unsolveable{Why: "zone_missing", Zone: row.String(), Digit: d})
		return false
	case 1:
		r.queue.push(rowSingularStep(row))
	}
	return true
}

func (r *reducer) removeFromCol(col grid.Col, d digits.Digit) bool {
	n, had := r.rem.cols.Get(col).Remove(d)
	if !had {
		panic("digit already eliminated from col but reduction did not stop")
	}
	switch n {
	case 0:
		r.record(trace.Unsolveable{Why: "zone_missing", Zone: col.String(), Digit: d})
		return false
	case 1:
		r.queue.push(colSingularStep(col))
	}
	return true
}

func (r *reducer) removeFromBox(box grid.Box, d digits.Digit) bool {
	n, had := r.rem.boxes.Get(box).Remove(d)
	if !had {
		panic("digit already eliminated from box but reduction did not stop")
	}
	switch n {
	case 0:
		r.record(trace.Unsolveable{Why: "zone_missing", Zone: box.String(), Digit: d})
		return false
	case 1:
		r.queue.push(boxSingularStep(box))
	}
	return true
}

// removeFromBoxRow decrements a box-row counter.  When the last copy of a
// digit leaves a box-line the line either collapses below three digits (a
// contradiction), matches its size exactly, or newly confines the digit to
// one of its neighbouring box-lines.
func (r *reducer) removeFromBoxRow(l grid.BoxRow, d digits.Digit) bool {
	cnt := r.rem.boxRows.Get(l)
	n, had := cnt.Remove(d)
	if !had || n != 0 {
		return true
	}
	avail := cnt.Avail()
	switch {
	case avail.Len() < grid.BoxSize:
		r.record(trace.Unsolveable{Why: "line_too_few", Zone: l.String()})
		return false
	case avail.Len() == grid.BoxSize:
		r.queue.push(lineMatchStep(l))
	}
	for _, nb := range l.LineNeighbors() {
		if m := r.rem.boxRows.Get(nb).Get(d); m > 0 && m == r.rem.rows.Get(nb.Row()).Get(d) {
			r.queue.push(onlyInLineStep(nb))
		}
	}
	for _, nb := range l.BoxNeighbors() {
		if m := r.rem.boxRows.Get(nb).Get(d); m > 0 && m == r.rem.boxes.Get(nb.Box()).Get(d) {
			r.queue.push(onlyInBoxStep(nb))
		}
	}
	return true
}

func (r *reducer) removeFromBoxCol(l grid.BoxCol, d digits.Digit) bool {
	cnt := r.rem.boxCols.Get(l)
	n, had := cnt.Remove(d)
	if !had || n != 0 {
		return true
	}
	avail := cnt.Avail()
	switch {
	case avail.Len() < grid.BoxSize:
		r.record(trace.Unsolveable{Why: "line_too_few", Zone: l.String()})
		return false
	case avail.Len() == grid.BoxSize:
		r.queue.push(lineMatchColStep(l))
	}
	for _, nb := range l.LineNeighbors() {
		if m := r.rem.boxCols.Get(nb).Get(d); m > 0 && m == r.rem.cols.Get(nb.Col()).Get(d) {
			r.queue.push(onlyInLineColStep(nb))
		}
	}
	for _, nb := range l.BoxNeighbors() {
		if m := r.rem.boxCols.Get(nb).Get(d); m > 0 && m == r.rem.boxes.Get(nb.Box()).Get(d) {
			r.queue.push(onlyInBoxColStep(nb))
		}
	}
	return true
}
