package perftests

import (
	"fmt"
	"math/rand"
	"sync/atomic"
	"testing"
	"time"

	bidding "auction-registry/internal/biddingService"
	repository "auction-registry/internal/repository"
)

// newOpenItem lists and starts an item owned by "seller"
func newOpenItem(b *testing.B, svc *bidding.AuctionService, name string) {
	b.Helper()
	if _, err := svc.AddItem("seller", name, 50); err != nil {
		b.Fatalf("failed to add item: %v", err)
	}
	if _, err := svc.StartAuction("seller", name); err != nil {
		b.Fatalf("failed to start auction: %v", err)
	}
}

// Benchmark 1: BidOnItem - Isolated Items (Low Contention - Micro Benchmark)
func Benchmark_BidOnItem_Isolated(b *testing.B) {
	svc := bidding.NewAuctionService(repository.NewMemoryRepo())

	for i := 0; i < b.N; i++ {
		newOpenItem(b, svc, fmt.Sprintf("item_%d", i))
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		userID := fmt.Sprintf("user_%d", i)
		itemName := fmt.Sprintf("item_%d", i)
		bidAmount := float64(50 + rand.Intn(100))
		if _, err := svc.BidOnItem(userID, itemName, bidAmount); err != nil {
			b.Fatalf("failed to place bid: %v", err)
		}
	}
}

// Benchmark 2: BidOnItem - Shared Item (High Contention - Concurrency Benchmark)
func Benchmark_BidOnItem_ConcurrentSharedItem(b *testing.B) {
	svc := bidding.NewAuctionService(repository.NewMemoryRepo())
	newOpenItem(b, svc, "shared_item_1")

	b.ReportAllocs()
	b.ResetTimer()

	var lastBid int64 = 50

	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for pb.Next() {
			userID := fmt.Sprintf("user_parallel_%d", rnd.Int())

			nextBid := atomic.AddInt64(&lastBid, int64(rnd.Intn(5)+1))
			_, _ = svc.BidOnItem(userID, "shared_item_1", float64(nextBid))
		}
	})
}

// Benchmark 3: LatestAction - Concurrent readers on a busy item
func Benchmark_LatestAction_ConcurrentSharedItem(b *testing.B) {
	svc := bidding.NewAuctionService(repository.NewMemoryRepo())
	newOpenItem(b, svc, "shared_item_1")

	for j := 0; j < 100; j++ {
		_, _ = svc.BidOnItem(fmt.Sprintf("user_%d", j), "shared_item_1", float64(51+j))
	}

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := svc.LatestAction("shared_item_1"); err != nil {
				b.Fatalf("failed to report: %v", err)
			}
		}
	})
}

// Benchmark 4: Mixed Workload (Readers + Writers concurrently)
func Benchmark_MixedWorkload_SharedItem(b *testing.B) {
	svc := bidding.NewAuctionService(repository.NewMemoryRepo())
	newOpenItem(b, svc, "shared_item_1")

	b.ReportAllocs()
	b.ResetTimer()

	var lastBid int64 = 50

	// Ratio: 70% readers, 30% writers
	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for pb.Next() {
			switch op := rnd.Intn(10); {
			case op < 3:
				nextBid := atomic.AddInt64(&lastBid, int64(rnd.Intn(5)+1))
				_, _ = svc.BidOnItem(fmt.Sprintf("user_writer_%d", rnd.Int()), "shared_item_1", float64(nextBid))
			case op < 5:
				_ = svc.ActiveItems()
			default:
				_ = svc.IsActive("shared_item_1")
			}
		}
	})
}

// Concurrent writers racing with increasing amounts must leave a strictly increasing history
func TestConcurrentBidHistoryIsMonotonic(t *testing.T) {
	svc := bidding.NewAuctionService(repository.NewMemoryRepo())
	if _, err := svc.AddItem("seller", "contested", 0); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.StartAuction("seller", "contested"); err != nil {
		t.Fatal(err)
	}

	var accepted int64
	done := make(chan struct{})
	workers := 8
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer func() { done <- struct{}{} }()
			rnd := rand.New(rand.NewSource(int64(w)))
			for i := 0; i < 500; i++ {
				if _, err := svc.BidOnItem(fmt.Sprintf("user_%d", w), "contested", float64(rnd.Intn(10000)+1)); err == nil {
					atomic.AddInt64(&accepted, 1)
				}
			}
		}(w)
	}
	for w := 0; w < workers; w++ {
		<-done
	}

	history, err := svc.GetBidHistory("contested")
	if err != nil {
		t.Fatal(err)
	}
	if int64(len(history)) != atomic.LoadInt64(&accepted) {
		t.Fatalf("history has %d bids, %d were accepted", len(history), accepted)
	}
	for i := 1; i < len(history); i++ {
		if history[i].Amount <= history[i-1].Amount {
			t.Fatalf("bid %d (%v) not above bid %d (%v)", i, history[i].Amount, i-1, history[i-1].Amount)
		}
	}
}
