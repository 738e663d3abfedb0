package euclid

// Vector is one reference case: E(K, N) must equal Want.
type Vector struct {
	K    int
	N    int
	Want []int
	Note string
}

var referenceVectors = []Vector{
	{K: 4, N: 16, Want: []int{1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0}, Note: "four on the floor"},
	{K: 3, N: 8, Want: []int{1, 0, 0, 1, 0, 0, 1, 0}, Note: "tresillo"},
	{K: 5, N: 8, Want: []int{1, 0, 1, 1, 0, 1, 1, 0}, Note: "cinquillo"},
	{K: 5, N: 13, Want: []int{1, 0, 0, 1, 0, 1, 0, 0, 1, 0, 1, 0, 0}},
	{K: 2, N: 3, Want: []int{1, 0, 1}},
	{K: 13, N: 24, Want: []int{1, 0, 1, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0}},
	// The paper lists other rotations for these two; both are maximally even.
	{K: 2, N: 5, Want: []int{1, 0, 0, 1, 0}, Note: "rotation of the published listing"},
	{K: 3, N: 7, Want: []int{1, 0, 0, 1, 0, 1, 0}, Note: "rotation of the published listing"},
}

// ReferenceVectors returns a copy of the published test vectors, expressed
// in the rotation that [Generate] produces.
func ReferenceVectors() []Vector {
	out := make([]Vector, len(referenceVectors))
	for i, v := range referenceVectors {
		v.Want = append([]int(nil), v.Want...)
		out[i] = v
	}
	return out
}
