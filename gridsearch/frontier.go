package gridsearch

import "github.com/zyedidia/generic/mapset"

// frontier is the set of discovered but unsettled cells. It remembers
// insertion order so that score ties go to the earliest discovered cell.
type frontier struct {
	order   []int
	members mapset.Set[int]
}

func newFrontier() *frontier {
	return &frontier{members: mapset.New[int]()}
}

// add inserts i unless it is already present; re-adding keeps the original position.
func (f *frontier) add(i int) {
	if f.members.Has(i) {
		return
	}
	f.members.Put(i)
	f.order = append(f.order, i)
}

// remove drops i while preserving the order of the remaining cells.
func (f *frontier) remove(i int) {
	if !f.members.Has(i) {
		return
	}
	f.members.Remove(i)
	for k, v := range f.order {
		if v == i {
			f.order = append(f.order[:k], f.order[k+1:]...)
			return
		}
	}
}

// best returns the member with the strictly lowest score, earliest insertion
// winning ties. ok is false when the frontier is empty.
func (f *frontier) best(score func(i int) int) (idx int, ok bool) {
	minScore := Unreached
	for _, i := range f.order {
		if s := score(i); !ok || s < minScore {
			idx, minScore, ok = i, s, true
		}
	}
	return idx, ok
}
