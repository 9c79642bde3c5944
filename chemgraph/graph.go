package chemgraph

import (
	"sort"

	angles "github.com/rmera/bondangles"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/multi"
	"gonum.org/v1/gonum/graph/topo"
)

//Particle is a node in the bond graph. Its ID is its index.
type Particle struct {
	Index  int
	Symbol string
	Bonds  []*Bond
}

func (P *Particle) ID() int64 {
	return int64(P.Index)
}

//Bond is a line in the bond graph. As there can be more than one
//bond between two particles, each bond is its own line, with the bond index as ID.
type Bond struct {
	*angles.Bond
	At1, At2 *Particle
}

func (B *Bond) From() graph.Node {
	return B.At1
}

func (B *Bond) To() graph.Node {
	return B.At2
}

func (B *Bond) ID() int64 {
	return int64(B.Index)
}

//Bonds are not directional, so the reversed line is a new line
//with the ends switched, and the same ID.
func (B *Bond) ReversedLine() graph.Line {
	return &Bond{Bond: B.Bond, At1: B.At2, At2: B.At1}
}

//Topology is the bond multigraph of a system.
//It implements the gonum graph.Undirected and graph.Multigraph interfaces.
type Topology struct {
	*multi.UndirectedGraph
	Particles []*Particle
	Bonds     []*Bond
}

//New returns the bond graph for n particles and the given bonds.
//Panics if a bond references a particle out of [0,n).
func New(n int, bonds angles.Bonds) *Topology {
	T := &Topology{
		UndirectedGraph: multi.NewUndirectedGraph(),
		Particles:       make([]*Particle, n),
		Bonds:           make([]*Bond, 0, len(bonds)),
	}
	for i := range T.Particles {
		T.Particles[i] = &Particle{Index: i}
		T.AddNode(T.Particles[i])
	}
	for _, b := range bonds {
		nb := &Bond{Bond: b, At1: T.Particles[b.Tail], At2: T.Particles[b.Head]}
		nb.At1.Bonds = append(nb.At1.Bonds, nb)
		nb.At2.Bonds = append(nb.At2.Bonds, nb)
		T.SetLine(nb)
		T.Bonds = append(T.Bonds, nb)
	}
	return T
}

//FromSystem returns the bond graph of S, with the element symbols, if S has them.
func FromSystem(S *angles.System) *Topology {
	T := New(S.Len(), S.Bonds)
	for i, s := range S.Symbols {
		T.Particles[i].Symbol = s
	}
	return T
}

//Degree returns the number of bonds of the particle p, counting
//each bond between the same pair of particles.
func (T *Topology) Degree(p int) int {
	return len(T.Particles[p].Bonds)
}

//Neighbors returns, in ascending order, the particles bonded to p.
func (T *Topology) Neighbors(p int) []int {
	nodes := graph.NodesOf(T.From(int64(p)))
	ret := make([]int, len(nodes))
	for i, n := range nodes {
		ret[i] = int(n.ID())
	}
	sort.Ints(ret)
	return ret
}

//Centers returns, in ascending order, the particles with at least minb bonds.
func (T *Topology) Centers(minb int) []int {
	ret := make([]int, 0, len(T.Particles))
	for _, p := range T.Particles {
		if len(p.Bonds) >= minb {
			ret = append(ret, p.Index)
		}
	}
	return ret
}

//Fragments returns the connected components of the graph, each one
//sorted, and sorted by their first particle.
func (T *Topology) Fragments() [][]int {
	comps := topo.ConnectedComponents(T.UndirectedGraph)
	ret := make([][]int, len(comps))
	for i, c := range comps {
		ret[i] = make([]int, len(c))
		for j, n := range c {
			ret[i][j] = int(n.ID())
		}
		sort.Ints(ret[i])
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i][0] < ret[j][0] })
	return ret
}

//Connected returns true if there is a path of bonds between particles a and b.
func (T *Topology) Connected(a, b int) bool {
	return topo.PathExistsIn(T.UndirectedGraph, T.Particles[a], T.Particles[b])
}
