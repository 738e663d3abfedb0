package euclid_test

import (
	"fmt"

	"github.com/cwbudde/algo-rhythm/rhythm/euclid"
)

func ExampleGenerate() {
	tresillo, err := euclid.Generate(3, 8)
	if err != nil {
		panic(err)
	}
	fmt.Println(tresillo)
	fmt.Println(euclid.Format(euclid.MustGenerate(5, 8)))

	// Output:
	// [1 0 0 1 0 0 1 0]
	// x.xx.xx.
}

func ExampleVerify() {
	mismatches := euclid.Verify(nil, euclid.ReferenceVectors())
	fmt.Println("mismatches:", len(mismatches))

	// Output:
	// mismatches: 0
}
