package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"net"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"go.uber.org/atomic"
)

const (
	numWorkers   = 50
	testDuration = 10 * time.Second
)

var views = []string{"mean_time_weekday", "presence_weekday", "presence_start_end"}

var httpClient = &http.Client{
	Timeout: 5 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        200,
		MaxIdleConnsPerHost: 200,
		IdleConnTimeout:     30 * time.Second,
		DialContext: (&net.Dialer{
			Timeout:   2 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
	},
}

type result struct {
	endpoint string
	status   int
	latency  time.Duration
	err      bool
}

type stats struct {
	count     int64
	errors    int64
	latencies []time.Duration
}

type user struct {
	UserID int `json:"user_id"`
}

func main() {
	baseURL := flag.String("url", "http://127.0.0.1:5000", "presence analyzer base url")
	flag.Parse()

	fmt.Println("=== Presence Analyzer Load Test ===")
	fmt.Printf("Workers: %d | Duration: %s\n\n", numWorkers, testDuration)

	fmt.Print("Waiting for server... ")
	var ids []int
	for i := 0; i < 30; i++ {
		var err error
		ids, err = fetchUserIDs(*baseURL)
		if err == nil {
			break
		}
		if i == 29 {
			fmt.Printf("FAILED: %s\n", err)
			return
		}
		time.Sleep(200 * time.Millisecond)
	}
	fmt.Printf("OK (%d users)\n", len(ids))
	if len(ids) == 0 {
		fmt.Println("no users to query")
		return
	}

	fmt.Println("\n--- Phase 1: Per-user views ---")
	runPhase(testDuration, func(rng *rand.Rand) result {
		return doGetView(rng, *baseURL, ids)
	})

	fmt.Println("\n--- Phase 2: Mixed load (80% views, 10% users, 10% unknown ids) ---")
	runPhase(testDuration, func(rng *rand.Rand) result {
		r := rng.Float64()
		switch {
		case r < 0.80:
			return doGetView(rng, *baseURL, ids)
		case r < 0.90:
			return doGet(*baseURL+"/api/v1/users", "GET /api/v1/users")
		default:
			return doGet(fmt.Sprintf("%s/api/v1/presence_weekday/%d", *baseURL, -1-rng.Intn(1000)), "GET unknown user")
		}
	})
}

func fetchUserIDs(baseURL string) ([]int, error) {
	resp, err := httpClient.Get(baseURL + "/api/v1/users")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("users: status %d", resp.StatusCode)
	}

	var users []user
	if err := json.NewDecoder(resp.Body).Decode(&users); err != nil {
		return nil, err
	}
	ids := make([]int, len(users))
	for i, u := range users {
		ids[i] = u.UserID
	}
	return ids, nil
}

func runPhase(duration time.Duration, workFn func(rng *rand.Rand) result) {
	results := make(chan result, 10000)
	var wg sync.WaitGroup
	totalOps := atomic.NewInt64(0)
	stop := make(chan struct{})

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			for {
				select {
				case <-stop:
					return
				default:
					r := workFn(rng)
					totalOps.Inc()
					results <- r
				}
			}
		}(rand.Int63() + int64(i))
	}

	allResults := make(map[string]*stats)
	done := make(chan struct{})
	go func() {
		for r := range results {
			s, ok := allResults[r.endpoint]
			if !ok {
				s = &stats{}
				allResults[r.endpoint] = s
			}
			s.count++
			if r.err {
				s.errors++
			}
			s.latencies = append(s.latencies, r.latency)
		}
		close(done)
	}()

	time.Sleep(duration)
	close(stop)
	wg.Wait()
	close(results)
	<-done

	printResults(allResults, duration)
}

func printResults(allResults map[string]*stats, duration time.Duration) {
	var totalOps int64
	var totalErrors int64

	endpoints := make([]string, 0, len(allResults))
	for ep := range allResults {
		endpoints = append(endpoints, ep)
	}
	sort.Strings(endpoints)

	fmt.Printf("\n  %-34s %8s %6s %10s %10s %10s %10s\n",
		"Endpoint", "Reqs", "Errs", "Avg", "P50", "P95", "P99")
	fmt.Println("  " + strings.Repeat("-", 100))

	for _, ep := range endpoints {
		s := allResults[ep]
		totalOps += s.count
		totalErrors += s.errors

		sort.Slice(s.latencies, func(i, j int) bool {
			return s.latencies[i] < s.latencies[j]
		})

		fmt.Printf("  %-34s %8d %6d %10s %10s %10s %10s\n",
			ep, s.count, s.errors,
			fmtDur(avgDuration(s.latencies)),
			fmtDur(percentile(s.latencies, 0.50)),
			fmtDur(percentile(s.latencies, 0.95)),
			fmtDur(percentile(s.latencies, 0.99)))
	}

	if totalOps == 0 {
		return
	}
	rps := float64(totalOps) / duration.Seconds()
	fmt.Println("  " + strings.Repeat("-", 100))
	fmt.Printf("  Total: %d reqs | Errors: %d (%.1f%%) | RPS: %.0f\n",
		totalOps, totalErrors, float64(totalErrors)/float64(totalOps)*100, rps)
}

func doGetView(rng *rand.Rand, baseURL string, ids []int) result {
	view := views[rng.Intn(len(views))]
	id := ids[rng.Intn(len(ids))]
	return doGet(fmt.Sprintf("%s/api/v1/%s/%d", baseURL, view, id), "GET /api/v1/"+view)
}

func doGet(url, endpoint string) result {
	start := time.Now()
	resp, err := httpClient.Get(url)
	lat := time.Since(start)
	if err != nil {
		return result{endpoint, 0, lat, true}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
	return result{endpoint, resp.StatusCode, lat, resp.StatusCode != http.StatusOK}
}

func avgDuration(d []time.Duration) time.Duration {
	if len(d) == 0 {
		return 0
	}
	var sum time.Duration
	for _, v := range d {
		sum += v
	}
	return sum / time.Duration(len(d))
}

func percentile(d []time.Duration, p float64) time.Duration {
	if len(d) == 0 {
		return 0
	}
	idx := int(float64(len(d)) * p)
	if idx >= len(d) {
		idx = len(d) - 1
	}
	return d[idx]
}

func fmtDur(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dus", d.Microseconds())
	}
	return fmt.Sprintf("%.1fms", float64(d.Microseconds())/1000.0)
}
