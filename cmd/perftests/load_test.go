package perftests

import (
	"fmt"
	"math/rand"
	"runtime"
	"sort"
	"sync/atomic"
	"testing"
	"time"

	catalog "shelfshare/internal/catalogService"
	lending "shelfshare/internal/lendingService"
)

// LoadScenario defines configurable benchmark parameters
type LoadScenario struct {
	Name      string
	NumBooks  int
	ReadRatio int
	Burst     bool // if true, no delay between ops
}

// OperationMetrics collects latencies safely
type OperationMetrics struct {
	latencies atomic.Value // stores []time.Duration
}

func (om *OperationMetrics) Record(d time.Duration) {
	v := om.latencies.Load()
	var l []time.Duration
	if v != nil {
		l = v.([]time.Duration)
	}
	l = append(l, d)
	om.latencies.Store(l)
}

func (om *OperationMetrics) Stats() (min, max, avg, p95, p99 time.Duration) {
	v := om.latencies.Load()
	if v == nil {
		return
	}
	latencies := v.([]time.Duration)
	sort.Slice(latencies, func(i, j int) bool { return latencies[i] < latencies[j] })

	min = latencies[0]
	max = latencies[len(latencies)-1]

	var total time.Duration
	for _, d := range latencies {
		total += d
	}
	avg = total / time.Duration(len(latencies))
	p95 = latencies[int(0.95*float64(len(latencies)))]
	p99 = latencies[int(0.99*float64(len(latencies)))]
	return
}

// Benchmark_Load_LendingSystem runs multiple scenarios
func Benchmark_Load_LendingSystem(b *testing.B) {
	scenarios := []LoadScenario{
		{"Low-Contention-WriteHeavy", 200, 0, false},
		{"High-Contention-WriteHeavy", 10, 0, false},
		{"Mixed-Workload", 50, 7, false},
		{"ReadHeavy", 50, 9, false},
		{"Edge-Case-SingleBook", 1, 5, false},
		{"Peak-Burst", 50, 0, true},
	}

	for _, s := range scenarios {
		b.Run(s.Name, func(b *testing.B) {
			runParallelScenario(b, s)
		})
	}
}

func runParallelScenario(b *testing.B, s LoadScenario) {
	b.ReportAllocs()

	store := benchStore(s.NumBooks)
	catalogSvc := catalog.NewCatalogService(store)
	lendingSvc := lending.NewLendingService(store)

	var totalOps, successfulBorrows, failedBorrows, totalReads int64
	bookSuccess := make([]int64, s.NumBooks)
	metrics := &OperationMetrics{}

	start := time.Now()

	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano() + int64(time.Now().Nanosecond())))

		for pb.Next() {
			bookIndex := rnd.Intn(s.NumBooks)
			bookID := fmt.Sprintf("book_%d", bookIndex)
			opType := rnd.Intn(10)

			opStart := time.Now()
			if opType < s.ReadRatio {
				_, err := catalogSvc.GetBook(bookID)
				if err != nil {
					b.Logf("ignored read error: %v", err)
				}
				atomic.AddInt64(&totalReads, 1)
			} else {
				input := lending.BorrowInput{
					BookID:    bookID,
					StartDate: "2026-09-01",
					EndDate:   "2026-09-08",
					TotalCost: float64(100 + rnd.Intn(200)),
				}
				if _, err := lendingSvc.Borrow(input); err != nil {
					atomic.AddInt64(&failedBorrows, 1)
				} else {
					atomic.AddInt64(&successfulBorrows, 1)
					atomic.AddInt64(&bookSuccess[bookIndex], 1)
				}
			}

			metrics.Record(time.Since(opStart))
			atomic.AddInt64(&totalOps, 1)

			if !s.Burst {
				time.Sleep(time.Millisecond)
			}
		}
	})

	elapsed := time.Since(start)
	throughput := float64(totalOps) / elapsed.Seconds()
	min, max, avg, p95, p99 := metrics.Stats()

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	b.Logf(
		"Scenario: %s | Books: %d | Total Ops: %d | Success Borrows: %d | Failed Borrows: %d | Reads: %d | Elapsed: %s | Throughput: %.2f ops/sec | Latency(us) min: %.2f avg: %.2f max: %.2f p95: %.2f p99: %.2f | Memory Alloc: %.2f MB",
		s.Name, s.NumBooks, totalOps, successfulBorrows, failedBorrows, totalReads, elapsed,
		throughput,
		float64(min.Microseconds()), float64(avg.Microseconds()), float64(max.Microseconds()),
		float64(p95.Microseconds()), float64(p99.Microseconds()),
		float64(mem.Alloc)/1024/1024,
	)

	for i, v := range bookSuccess {
		if v > 0 {
			b.Logf("Book %d successful borrows: %d", i, v)
		}
	}
}
