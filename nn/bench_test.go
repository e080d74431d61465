package nn_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvnet/matrix"
	"github.com/katalvlaran/lvnet/nn"
)

var sinkOut *matrix.Dense

func BenchmarkFeedForwardBackPropagate(b *testing.B) {
	shapes := [][]int{{8, 16, 4}, {64, 128, 10}, {256, 128, 64, 10}}
	for _, layers := range shapes {
		b.Run(fmt.Sprint(layers), func(b *testing.B) {
			net, err := nn.New(layers, nn.Sigmoid, 0.01, nn.WithSeed(1))
			if err != nil {
				b.Fatal(err)
			}
			in := matrix.NewColumn(make([]float64, layers[0]))
			target := matrix.NewColumn(make([]float64, layers[len(layers)-1]))
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				out, err := net.FeedForward(in)
				if err != nil {
					b.Fatal(err)
				}
				if err = net.BackPropagate(target); err != nil {
					b.Fatal(err)
				}
				sinkOut = out
			}
		})
	}
}
