package reconcile

import (
	"math/rand"
	"os"
	"path/filepath"
	"runtime/pprof"
	"strconv"
	"testing"

	"github.com/arloliu/prunecluster/types"
)

// generateClusters lays n single-point clusters on a jittered grid in sweep order.
// spacing is in degrees; cell bounds are +/-1 degree as in the other tests, so small
// spacings produce heavy merging.
func generateClusters(n int, spacing float64, seed int64) []types.Cluster {
	rng := rand.New(rand.NewSource(seed))
	side := 1
	for side*side < n {
		side++
	}

	clusters := make([]types.Cluster, 0, n)
	for i := range n {
		col, row := i/side, i%side
		lat := float64(row)*spacing + rng.Float64()*spacing/4
		lng := float64(col)*spacing + rng.Float64()*spacing/4
		id := "p" + strconv.Itoa(i)
		clusters = append(clusters, single(id, id, lat, lng))
	}

	return clusters
}

func cloneClusters(in []types.Cluster) []types.Cluster {
	out := make([]types.Cluster, len(in))
	copy(out, in)

	return out
}

// BenchmarkPass measures a full pass against a warm displayed set.
func BenchmarkPass(b *testing.B) {
	profileDir := os.Getenv("PRUNECLUSTER_PROFILE_DIR")
	if profileDir != "" {
		if err := os.MkdirAll(profileDir, 0o755); err != nil {
			b.Fatalf("mkdir profile dir: %v", err)
		}
	}

	testCases := []struct {
		name     string
		clusters int
		spacing  float64
	}{
		{"N100_sparse", 100, 10},
		{"N1K_sparse", 1000, 10},
		{"N1K_dense", 1000, 0.5},
		{"N5K_dense", 5000, 0.5},
	}

	for _, tc := range testCases {
		b.Run(tc.name, func(b *testing.B) {
			base := generateClusters(tc.clusters, tc.spacing, 1)
			shifted := generateClusters(tc.clusters, tc.spacing, 2)

			b.Run("stable", func(b *testing.B) {
				records := NewRecords()
				_, displayed := run(records, 5, nil, cloneClusters(base)...)

				var cpuFile *os.File
				if profileDir != "" {
					f, err := os.Create(filepath.Join(profileDir, tc.name+"_stable_cpu.pprof"))
					if err != nil {
						b.Fatalf("create cpu profile: %v", err)
					}
					cpuFile = f
					if err := pprof.StartCPUProfile(cpuFile); err != nil {
						b.Fatalf("start cpu profile: %v", err)
					}
				}
				b.ResetTimer()
				for b.Loop() {
					_, displayed = run(records, 5, displayed, cloneClusters(base)...)
				}
				if cpuFile != nil {
					pprof.StopCPUProfile()
					_ = cpuFile.Close()
				}
			})

			b.Run("churn", func(b *testing.B) {
				records := NewRecords()
				_, displayed := run(records, 5, nil, cloneClusters(base)...)
				frames := [][]types.Cluster{shifted, base}

				b.ResetTimer()
				i := 0
				for b.Loop() {
					_, displayed = run(records, 5, displayed, cloneClusters(frames[i%2])...)
					i++
				}
			})
		})
	}
}
