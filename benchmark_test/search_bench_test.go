package benchmark_test

import (
	"strconv"
	"testing"

	"github.com/hupe1980/vptree"
	"github.com/hupe1980/vptree/testutil"
)

// ============================================================================
// Search Benchmarks
// ============================================================================

// BenchmarkSearchDim measures k-nearest latency across dimensions. Recall is
// reported as a sanity check and must always be 1.
func BenchmarkSearchDim(b *testing.B) {
	dims := []int{dimSmall, dimMedium, dimLarge}
	const n = sizeSmall
	const k = 10

	for _, dim := range dims {
		b.Run("dim="+strconv.Itoa(dim), func(b *testing.B) {
			data := MakeVectors(n, dim)
			tree := BuildTree(b, data, 4)
			queries := MakeQueries(100, dim)

			var totalRecall float64

			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				q := queries[i%len(queries)]
				results, err := tree.KNearest(q, k)
				if err != nil {
					b.Fatal(err)
				}

				if i < 50 {
					totalRecall += testutil.ComputeRecall(exactTopK(data, q, k), toResults(results))
				}
			}

			b.StopTimer()
			b.ReportMetric(totalRecall/float64(min(50, b.N)), "recall@10")
			b.ReportMetric(float64(b.N)/b.Elapsed().Seconds(), "qps")
		})
	}
}

// BenchmarkNearest measures the single nearest neighbour path.
func BenchmarkNearest(b *testing.B) {
	data := MakeVectors(sizeMedium, dimSmall)
	tree := BuildTree(b, data, 4)
	queries := MakeQueries(100, dimSmall)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, ok := tree.Nearest(queries[i%len(queries)]); !ok {
			b.Fatal("no result")
		}
	}
}

// BenchmarkRadius measures radius queries with a bounded result count.
func BenchmarkRadius(b *testing.B) {
	data := MakeVectors(sizeMedium, dimSmall)
	tree := BuildTree(b, data, 4)
	queries := MakeQueries(100, dimSmall)
	q := vptree.KNearestWithinRadius(100, 0.05)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := tree.Query(queries[i%len(queries)], q); err != nil {
			b.Fatal(err)
		}
	}
}
