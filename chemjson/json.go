/*
 * json.go, part of bondangles.
 *
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
 *
 */

package chemjson

import (
	"bufio"
	"encoding/json"
	"errors"
	"io"
	"strings"

	angles "github.com/rmera/bondangles"
	v3 "github.com/rmera/bondangles/v3"
	"gonum.org/v1/gonum/mat"
)

//An easily JSON-serializable error type,
type Error struct {
	deco      []string
	IsError   bool //If this is false (no error) all the other fields will be at their zero-values.
	InInput   bool //Was it in reading the system or options?
	InProcess bool
	InOutput  bool   //was it in preparing the output?
	Kind      string //The kind of angles error, if any.
	Particle  int    //The offending particle, or -1
	Bond      int    //The offending bond, or -1
	Function  string //which go function gave the error
	Message   string //the error itself
}

//Error implements the error interface
func (J *Error) Error() string {
	return J.Message
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (J *Error) Decorate(dec string) []string {
	if dec == "" {
		return J.deco
	}
	J.deco = append(J.deco, dec)
	return J.deco
}

//Serializes the error. Panics on failure.
func (J *Error) Marshal() []byte {
	ret, err2 := json.Marshal(J)
	if err2 != nil {
		panic(strings.Join([]string{J.Error(), err2.Error()}, " - "))
	}
	return ret
}

var kinds = []error{
	angles.ErrInsufficientBonds,
	angles.ErrDegenerateBond,
	angles.ErrInvalidParticle,
	angles.ErrInvalidBond,
	angles.ErrNoBonds,
	angles.ErrNoIdentifiers,
	angles.ErrFileFormat,
}

//Takes an error and some additional info to create a json-marshal-ble error.
//where can be "input", "output" or anything else, for errors in the processing.
func NewError(where, function string, err error) *Error {
	jerr := &Error{IsError: true, Particle: -1, Bond: -1, Function: function, Message: err.Error()}
	switch where {
	case "input":
		jerr.InInput = true
	case "output":
		jerr.InOutput = true
	default:
		jerr.InProcess = true
	}
	for _, k := range kinds {
		if errors.Is(err, k) {
			jerr.Kind = k.Error()
			break
		}
	}
	var cerr *angles.CError
	if errors.As(err, &cerr) {
		jerr.Particle = cerr.Particle
		jerr.Bond = cerr.Bond
	}
	return jerr
}

//Options passed from the calling external program
type Options struct {
	Particles    []int
	ByIdentifier bool //Particles are given by identifier
	BondIDs      bool //list bonds by identifier
}

//DecodeOptions Decodes or unmarshals one line of json options into an Options structure
func DecodeOptions(stdin *bufio.Reader) (*Options, *Error) {
	line, err := stdin.ReadBytes('\n')
	if err != nil && len(line) == 0 {
		return nil, NewError("input", "DecodeOptions", err)
	}
	ret := new(Options)
	err = json.Unmarshal(line, ret)
	if err != nil {
		return nil, NewError("input", "DecodeOptions", err)
	}
	return ret, nil
}

//System is the JSON form of an angles.System.
type System struct {
	Positions   [][3]float64 `json:"positions"`
	Symbols     []string     `json:"symbols,omitempty"`
	Bonds       [][2]int     `json:"bonds"`
	Shifts      [][3]int     `json:"shifts,omitempty"`
	Cell        [][3]float64 `json:"cell,omitempty"` //rows of the cell matrix, whose columns are the cell vectors.
	ParticleIDs []int        `json:"particle_ids,omitempty"`
	BondIDs     []int        `json:"bond_ids,omitempty"`
}

//DecodeSystem reads one JSON system from in. The returned system is validated.
func DecodeSystem(in io.Reader) (*angles.System, *Error) {
	const funcname = "DecodeSystem"
	js := new(System)
	if err := json.NewDecoder(in).Decode(js); err != nil {
		return nil, NewError("input", funcname, err)
	}
	S := &angles.System{ParticleIDs: js.ParticleIDs, BondIDs: js.BondIDs, Symbols: js.Symbols}
	raw := make([]float64, 0, 3*len(js.Positions))
	for _, p := range js.Positions {
		raw = append(raw, p[:]...)
	}
	var err error
	if S.Positions, err = v3.NewMatrix(raw); err != nil {
		return nil, NewError("input", funcname, err)
	}
	if S.Bonds, err = angles.NewBonds(js.Bonds, js.Shifts); err != nil {
		return nil, NewError("input", funcname, err)
	}
	if js.Cell != nil {
		if len(js.Cell) != 3 {
			return nil, NewError("input", funcname, errors.New("the cell needs 3 rows"))
		}
		S.Cell = mat.NewDense(3, 3, nil)
		for i, r := range js.Cell {
			S.Cell.SetRow(i, r[:])
		}
	}
	if err = S.Validate(); err != nil {
		return nil, NewError("input", funcname, err)
	}
	return S, nil
}

//EncodeSystem writes S as one JSON object to out.
func EncodeSystem(S *angles.System, out io.Writer) *Error {
	js := &System{
		Positions:   make([][3]float64, S.Len()),
		Symbols:     S.Symbols,
		Bonds:       S.Bonds.Pairs(),
		ParticleIDs: S.ParticleIDs,
		BondIDs:     S.BondIDs,
	}
	t := make([]float64, 3)
	for i := range js.Positions {
		S.Positions.Vec(t, i)
		copy(js.Positions[i][:], t)
	}
	periodic := false
	shifts := make([][3]int, len(S.Bonds))
	for i, b := range S.Bonds {
		shifts[i] = b.Shift
		periodic = periodic || b.Periodic()
	}
	if periodic {
		js.Shifts = shifts
	}
	if S.Cell != nil {
		js.Cell = make([][3]float64, 3)
		for i := range js.Cell {
			copy(js.Cell[i][:], S.Cell.RawRowView(i))
		}
	}
	if err := json.NewEncoder(out).Encode(js); err != nil {
		return NewError("output", "EncodeSystem", err)
	}
	return nil
}

//Table is the JSON form of an angles.AngleTable, organized by columns.
//If the angles couldn't be computed, only Particle and Error are set.
type Table struct {
	Identifier      string    `json:"identifier,omitempty"`
	Title           string    `json:"title,omitempty"`
	Particle        int       `json:"particle"`
	Angle           []float64 `json:"angle,omitempty"`
	ParticleTriplet [][3]int  `json:"particle_triplet,omitempty"`
	BondPair        [][2]int  `json:"bond_pair,omitempty"`
	Error           *Error    `json:"error,omitempty"`
}

//NewTable returns the JSON form of T.
func NewTable(T *angles.AngleTable) *Table {
	ret := &Table{
		Identifier:      T.Identifier,
		Title:           T.Title,
		Particle:        T.Selection,
		Angle:           T.Angles(),
		ParticleTriplet: make([][3]int, len(T.Rows)),
		BondPair:        make([][2]int, len(T.Rows)),
	}
	for i, r := range T.Rows {
		ret.ParticleTriplet[i] = r.Triplet
		ret.BondPair[i] = r.Bonds
	}
	return ret
}

//EncodeTable encodes T, and writes it to out, as one JSON object.
func EncodeTable(T *angles.AngleTable, out io.Writer) *Error {
	if err := json.NewEncoder(out).Encode(NewTable(T)); err != nil {
		return NewError("output", "EncodeTable", err)
	}
	return nil
}

//EncodeFailure writes a Table with only the particle and the error err.
func EncodeFailure(particle int, err error, out io.Writer) *Error {
	t := &Table{Particle: particle, Error: NewError("process", "EncodeFailure", err)}
	if err2 := json.NewEncoder(out).Encode(t); err2 != nil {
		return NewError("output", "EncodeFailure", err2)
	}
	return nil
}
