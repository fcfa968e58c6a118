package mids

import "strings"

// Index provides case-insensitive lookups by full name.
//
// An Index holds pointers into the database it was built from and must be
// rebuilt after records are added or removed.
type Index struct {
	powers     map[string]*Power
	powersets  map[string]*Powerset
	archetypes map[string]*Archetype
	bySet      map[string][]*Power
}

// NewIndex indexes db. When names collide the first record wins.
func NewIndex(db *Database) *Index {
	idx := &Index{
		powers:     make(map[string]*Power, len(db.Powers)),
		powersets:  make(map[string]*Powerset, len(db.Powersets)),
		archetypes: make(map[string]*Archetype, len(db.Archetypes)),
		bySet:      make(map[string][]*Power),
	}

	for i := range db.Powers {
		p := &db.Powers[i]
		key := strings.ToLower(p.FullName)
		if _, ok := idx.powers[key]; !ok {
			idx.powers[key] = p
		}
		set := strings.ToLower(p.PowersetFullName())
		idx.bySet[set] = append(idx.bySet[set], p)
	}
	for i := range db.Powersets {
		ps := &db.Powersets[i]
		key := strings.ToLower(ps.FullName)
		if _, ok := idx.powersets[key]; !ok {
			idx.powersets[key] = ps
		}
	}
	for i := range db.Archetypes {
		at := &db.Archetypes[i]
		key := strings.ToLower(at.ClassName)
		if _, ok := idx.archetypes[key]; !ok {
			idx.archetypes[key] = at
		}
	}

	return idx
}

// Power returns the power with the given full name, such as
// "Blaster_Ranged.Fire_Blast.Flares".
func (idx *Index) Power(fullName string) (*Power, bool) {
	p, ok := idx.powers[strings.ToLower(fullName)]
	return p, ok
}

// Powerset returns the powerset with the given full name.
func (idx *Index) Powerset(fullName string) (*Powerset, bool) {
	ps, ok := idx.powersets[strings.ToLower(fullName)]
	return ps, ok
}

// Archetype returns the archetype with the given class name.
func (idx *Index) Archetype(className string) (*Archetype, bool) {
	at, ok := idx.archetypes[strings.ToLower(className)]
	return at, ok
}

// PowersOf returns the powers of a powerset in database order.
func (idx *Index) PowersOf(powersetFullName string) []*Power {
	return idx.bySet[strings.ToLower(powersetFullName)]
}
