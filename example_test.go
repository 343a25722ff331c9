package hycol_test

import (
	"fmt"
	"log"

	"github.com/gogpu/hycol"
	"github.com/gogpu/hycol/cie"
)

func ExampleHlerp2() {
	orange := hycol.FromSRGB(cie.SRGB{R: 0.95, G: 0.5, B: 0.1})
	blue := hycol.FromSRGB(cie.SRGB{R: 0.1, G: 0.3, B: 0.9})

	for i := 0; i <= 4; i++ {
		c, err := hycol.Hlerp2(orange, blue, float64(i)/4)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(c.SRGB().Hex())
	}
	// Output:
	// #f27f19
	// #d29a83
	// #ba9ca7
	// #a18bc3
	// #1a4ce6
}

func ExampleMeshedTriangle() {
	rose := hycol.FromLab(cie.Lab{L: 65, A: 35, B: 10})
	sage := hycol.FromLab(cie.Lab{L: 70, A: -25, B: 20})
	slate := hycol.FromLab(cie.Lab{L: 55, A: 0, B: -30})

	samples, err := hycol.MeshedTriangle(rose, sage, slate, 3)
	if err != nil {
		log.Fatal(err)
	}
	for _, s := range samples {
		fmt.Printf("(%.3f, %.3f) %s\n", s.X, s.Y, s.Color.SRGB().Hex())
	}
	// Output:
	// (-0.646, -0.527) #5f86b7
	// (-0.337, 0.188) #90a5a6
	// (-0.172, 0.950) #89b786
	// (0.080, -0.402) #a894a6
	// (0.259, 0.217) #b8ac9f
	// (0.818, -0.423) #dd858d
}
