/*
 * identifiers.go, part of bondangles.
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package angles

//IdentifierIndex translates between user-facing identifiers (arbitrary integers)
//and 0-based indexes. If an identifier is repeated, the first element carrying it wins.
type IdentifierIndex struct {
	ids   []int
	index map[int]int
	kind  error
	what  string
}

//NewIdentifierIndex returns an IdentifierIndex for particle identifiers.
//The ids slice is not copied.
func NewIdentifierIndex(ids []int) *IdentifierIndex {
	return newIdentifierIndex(ids, ErrInvalidParticle, "particle")
}

//NewBondIdentifierIndex is like NewIdentifierIndex, but for bond identifiers.
func NewBondIdentifierIndex(ids []int) *IdentifierIndex {
	return newIdentifierIndex(ids, ErrInvalidBond, "bond")
}

func newIdentifierIndex(ids []int, kind error, what string) *IdentifierIndex {
	I := &IdentifierIndex{ids: ids, index: make(map[int]int, len(ids)), kind: kind, what: what}
	for i, id := range ids {
		if _, ok := I.index[id]; !ok {
			I.index[id] = i
		}
	}
	return I
}

//Index returns the index of the element with identifier id.
func (I *IdentifierIndex) Index(id int) (int, error) {
	i, ok := I.index[id]
	if !ok {
		return -1, newCError(I.kind, -1, -1, "no %s with identifier %d", I.what, id)
	}
	return i, nil
}

//Identifier returns the identifier of the element with index i.
func (I *IdentifierIndex) Identifier(i int) (int, error) {
	if i < 0 || i >= len(I.ids) {
		return 0, newCError(I.kind, -1, -1, "%s index %d out of range [0,%d)", I.what, i, len(I.ids))
	}
	return I.ids[i], nil
}

func (I *IdentifierIndex) Len() int {
	return len(I.ids)
}

//indexIdentity implements Identifier for plain index addressing,
//where the identifier of an element is its index.
type indexIdentity struct {
	n    int
	kind error
	what string
}

func (I indexIdentity) Index(id int) (int, error) {
	if id < 0 || id >= I.n {
		return -1, newCError(I.kind, -1, -1, "%s index %d out of range, choose index between 0 and %d", I.what, id, I.n-1)
	}
	return id, nil
}

func (I indexIdentity) Identifier(i int) (int, error) {
	return I.Index(i)
}

func (I indexIdentity) Len() int {
	return I.n
}
