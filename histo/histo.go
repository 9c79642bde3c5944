package histo

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

//AngleDividers returns the dividers for a histogram of bins equal bins spanning
//[0,180] degrees. The last divider is the smallest float above 180,
//so linear angles are counted in the last bin.
func AngleDividers(bins int) []float64 {
	if bins < 1 {
		panic("bondangles/histo.AngleDividers: at least one bin is needed")
	}
	d := floats.Span(make([]float64, bins+1), 0, 180)
	d[bins] = math.Nextafter(180, math.Inf(1))
	return d
}

//Data is a histogram. Bin i counts the values v with dividers[i] <= v < dividers[i+1].
type Data struct {
	id         int
	normalized bool
	total      int
	dividers   []float64
	counts     []float64
}

//MarshalJSON gives the histogram as a JSON object with the keys id,
//normalized, total, dividers and histo.
func (D *Data) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID         int       `json:"id"`
		Normalized bool      `json:"normalized"`
		Total      int       `json:"total"`
		Dividers   []float64 `json:"dividers"`
		Histo      []float64 `json:"histo"`
	}{D.id, D.normalized, D.total, D.dividers, D.counts})
}

//ID returns the ID of the histogram
func (D *Data) ID() int {
	return D.id
}

//String returns 3 lines of text: the ID and state of the histogram,
//the bins and their values.
func (D *Data) String() string {
	bins := make([]string, len(D.counts))
	vals := make([]string, len(D.counts))
	for i, v := range D.counts {
		bins[i] = fmt.Sprintf("%4.2f-%4.2f", D.dividers[i], D.dividers[i+1])
		vals[i] = fmt.Sprintf("%9.3f", v)
	}
	return fmt.Sprintf("ID: %d, Normalized: %v, TotalData: %d\n%s\n%s", D.id, D.normalized, D.total, strings.Join(bins, " "), strings.Join(vals, " "))
}

//NewData returns a histogram of rawdata with the given dividers. rawdata
//can be nil, which gives an empty histogram, and is not modified. Values outside the
//dividers are left out. The ID is set to the first element of ID, if given, or -1.
func NewData(dividers []float64, rawdata []float64, ID ...int) *Data {
	if len(dividers) < 2 {
		panic("bondangles/histo.NewData: at least 2 dividers are needed")
	}
	D := &Data{id: -1, dividers: append([]float64(nil), dividers...)}
	if len(ID) > 0 {
		D.id = ID[0]
	}
	D.fill(rawdata)
	return D
}

//fill bins data, which stat.Histogram wants sorted and within the dividers.
func (D *Data) fill(rawdata []float64) {
	data := append([]float64(nil), rawdata...)
	sort.Float64s(data)
	lo := sort.SearchFloat64s(data, D.dividers[0])
	hi := sort.SearchFloat64s(data, D.dividers[len(D.dividers)-1])
	data = data[lo:hi]
	D.total = len(data)
	D.counts = stat.Histogram(nil, D.dividers, data, nil)
}

//Total returns the number of values in the histogram.
func (D *Data) Total() int {
	return D.total
}

//Normalized Returns true if the histogram is normalized
func (D *Data) Normalized() bool {
	return D.normalized
}

//Normalize turns the counts into fractions of the total. Does nothing
//if the histogram is already normalized, or empty.
func (D *Data) Normalize() {
	if D.normalized || D.total == 0 {
		return
	}
	floats.Scale(1/float64(D.total), D.counts)
	D.normalized = true
}

//CopyDividers returns a copy of the dividers of the histogram.
func (D *Data) CopyDividers() []float64 {
	return append([]float64(nil), D.dividers...)
}

//View returns the histogram values themselves, not a copy.
func (D *Data) View() []float64 {
	return D.counts
}

//Add puts the sum of the histograms a and b in the receiver, which can be
//one of them. a and b must have the same dividers and not be normalized.
func (D *Data) Add(a, b *Data) {
	if !floats.Equal(a.dividers, b.dividers) {
		panic("bondangles/histo.Data.Add: Dividers must match in added histograms")
	}
	if a.normalized || b.normalized {
		panic("bondangles/histo.Data.Add: Can't add normalized histograms")
	}
	counts := make([]float64, len(a.counts))
	floats.AddTo(counts, a.counts, b.counts)
	D.dividers = a.CopyDividers()
	D.total = a.total + b.total
	D.counts = counts
	D.normalized = false
}

//Sum returns the sum of the histogram values: the total, or 1
//for a normalized non-empty histogram.
func (D *Data) Sum() float64 {
	return floats.Sum(D.counts)
}
