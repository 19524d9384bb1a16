package special_test

import (
	"fmt"
	"math/big"

	"github.com/GriffinCanCode/primecore/internal/numtheory/special"
)

func ExampleGenerateTwinPrimeList() {
	twins, _ := special.GenerateTwinPrimeList(20)
	fmt.Println(twins)
	// Output: [3 5 7 11 13 17 19]
}

func ExampleGreatestCommonPrimeDivisor() {
	p, _ := special.GreatestCommonPrimeDivisor(big.NewInt(12), big.NewInt(18))
	fmt.Println(p)
	// Output: 3
}
