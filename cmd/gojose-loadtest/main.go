package main

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	goJOSE "github.com/MrEthical07/goJOSE"
	"github.com/MrEthical07/goJOSE/jwt"
)

func main() {
	var (
		ops         = flag.Int("ops", 50000, "operations per phase (sign + validate)")
		concurrency = flag.Int("concurrency", 16, "number of concurrent workers")
		algList     = flag.String("algs", "HS256,RS256,PS256,ES256,ES256K,EdDSA", "comma-separated algorithms to benchmark")
		claimBytes  = flag.Int("claim-bytes", 256, "approximate claim payload size")
	)
	flag.Parse()

	if *ops <= 0 || *concurrency <= 0 || *claimBytes <= 0 {
		fmt.Fprintln(os.Stderr, "ops, concurrency, and claim-bytes must be > 0")
		os.Exit(2)
	}

	algs := make([]goJOSE.Algorithm, 0, 8)
	for _, name := range strings.Split(*algList, ",") {
		alg, err := goJOSE.ParseAlgorithm(strings.TrimSpace(name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "unknown algorithm %q\n", name)
			os.Exit(2)
		}
		algs = append(algs, alg)
	}

	payload := buildPayload(*claimBytes)

	fmt.Printf("ops=%d concurrency=%d claim-bytes=%d\n", *ops, *concurrency, *claimBytes)
	fmt.Println("---- results ----")
	for _, alg := range algs {
		key, err := generateKey(alg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "generate %s key: %v\n", alg, err)
			os.Exit(1)
		}

		signStats, token := runSignPhase(alg, key, payload, *ops, *concurrency)
		validateStats := runValidatePhase(key, token, *ops, *concurrency)

		printStats(fmt.Sprintf("%-6s sign", alg), signStats)
		printStats(fmt.Sprintf("%-6s validate", alg), validateStats)
	}
}

func runSignPhase(alg goJOSE.Algorithm, key goJOSE.KeyMaterial, payload jwt.Payload, ops, concurrency int) (phaseStats, string) {
	var (
		wg        sync.WaitGroup
		cursor    int64
		failures  int64
		latencies = make([]time.Duration, 0, ops)
		mu        sync.Mutex
		token     atomic.Value
	)

	start := time.Now()
	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				i := int(atomic.AddInt64(&cursor, 1)) - 1
				if i >= ops {
					return
				}
				tok := jwt.New(jwt.Header{Alg: alg, Typ: "JWT"}, payload)
				t0 := time.Now()
				err := tok.Sign(key)
				d := time.Since(t0)
				if err != nil {
					atomic.AddInt64(&failures, 1)
				} else if compact, err := tok.Token(); err == nil {
					token.Store(compact)
				}
				mu.Lock()
				latencies = append(latencies, d)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	total := time.Since(start)

	compact, _ := token.Load().(string)
	return computeStats(total, latencies, failures), compact
}

func runValidatePhase(key goJOSE.KeyMaterial, token string, ops, concurrency int) phaseStats {
	var (
		wg        sync.WaitGroup
		cursor    int64
		failures  int64
		latencies = make([]time.Duration, 0, ops)
		mu        sync.Mutex
	)

	start := time.Now()
	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				i := int(atomic.AddInt64(&cursor, 1)) - 1
				if i >= ops {
					return
				}
				t0 := time.Now()
				_, err := jwt.ValidateToken(token, key)
				d := time.Since(t0)
				if err != nil {
					atomic.AddInt64(&failures, 1)
				}
				mu.Lock()
				latencies = append(latencies, d)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	total := time.Since(start)
	return computeStats(total, latencies, failures)
}

type phaseStats struct {
	total    time.Duration
	ops      int
	failures int64
	p50      time.Duration
	p95      time.Duration
	p99      time.Duration
	opsPerS  float64
}

func computeStats(total time.Duration, samples []time.Duration, failures int64) phaseStats {
	if len(samples) == 0 {
		return phaseStats{total: total}
	}
	sort.Slice(samples, func(i, j int) bool { return samples[i] < samples[j] })
	return phaseStats{
		total:    total,
		ops:      len(samples),
		failures: failures,
		p50:      percentile(samples, 50),
		p95:      percentile(samples, 95),
		p99:      percentile(samples, 99),
		opsPerS:  float64(len(samples)) / total.Seconds(),
	}
}

func percentile(samples []time.Duration, p int) time.Duration {
	if len(samples) == 0 {
		return 0
	}
	if p <= 0 {
		return samples[0]
	}
	if p >= 100 {
		return samples[len(samples)-1]
	}
	idx := (len(samples) - 1) * p / 100
	return samples[idx]
}

func printStats(name string, s phaseStats) {
	fmt.Printf("%s: ops=%d failures=%d total=%s ops/sec=%.0f p50=%s p95=%s p99=%s\n",
		name,
		s.ops,
		s.failures,
		s.total.Round(time.Millisecond),
		s.opsPerS,
		s.p50.Round(time.Microsecond),
		s.p95.Round(time.Microsecond),
		s.p99.Round(time.Microsecond),
	)
}

func buildPayload(size int) jwt.Payload {
	filler := strings.Repeat("x", size)
	return jwt.Payload{
		"sub":  "loadtest-user",
		"data": filler,
	}
}

func generateKey(alg goJOSE.Algorithm) (goJOSE.KeyMaterial, error) {
	switch family := alg.Family(); family {
	case goJOSE.FamilySymmetric:
		secret := make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			return nil, err
		}
		return goJOSE.NewSymmetricKey(secret)
	case goJOSE.FamilyRSA:
		key, err := rsa.GenerateKey(rand.Reader, 2048)
		if err != nil {
			return nil, err
		}
		return wrapRSA(key)
	case goJOSE.FamilyECP256, goJOSE.FamilyECP384, goJOSE.FamilyECP521, goJOSE.FamilyECSecp256k1:
		return generateECKey(family)
	case goJOSE.FamilyEd25519:
		_, key, err := ed25519.GenerateKey(rand.Reader)
		if err != nil {
			return nil, err
		}
		return goJOSE.EdPrivateKeyFromBytes(key)
	default:
		return nil, fmt.Errorf("no key generator for %s", alg)
	}
}

func wrapRSA(key *rsa.PrivateKey) (goJOSE.KeyMaterial, error) {
	return goJOSE.RSAPrivateKeyFromComponents(goJOSE.RSAComponents{
		N:    key.N.Bytes(),
		E:    bigIntBytes(int64(key.E)),
		D:    key.D.Bytes(),
		P:    key.Primes[0].Bytes(),
		Q:    key.Primes[1].Bytes(),
		DP:   key.Precomputed.Dp.Bytes(),
		DQ:   key.Precomputed.Dq.Bytes(),
		QInv: key.Precomputed.Qinv.Bytes(),
	})
}

func bigIntBytes(v int64) []byte {
	out := make([]byte, 0, 8)
	for v > 0 {
		out = append([]byte{byte(v & 0xFF)}, out...)
		v >>= 8
	}
	return out
}

func generateECKey(family goJOSE.KeyFamily) (goJOSE.KeyMaterial, error) {
	if family == goJOSE.FamilyECSecp256k1 {
		// rejection-sample a scalar; almost every 32-byte draw is in range
		for {
			scalar := make([]byte, 32)
			if _, err := rand.Read(scalar); err != nil {
				return nil, err
			}
			key, err := goJOSE.ECPrivateKeyFromBytes(family, scalar)
			if err == nil {
				return key, nil
			}
		}
	}

	curves := map[goJOSE.KeyFamily]elliptic.Curve{
		goJOSE.FamilyECP256: elliptic.P256(),
		goJOSE.FamilyECP384: elliptic.P384(),
		goJOSE.FamilyECP521: elliptic.P521(),
	}
	sizes := map[goJOSE.KeyFamily]int{
		goJOSE.FamilyECP256: 32,
		goJOSE.FamilyECP384: 48,
		goJOSE.FamilyECP521: 66,
	}
	native, err := ecdsa.GenerateKey(curves[family], rand.Reader)
	if err != nil {
		return nil, err
	}
	scalar := native.D.FillBytes(make([]byte, sizes[family]))
	return goJOSE.ECPrivateKeyFromBytes(family, scalar)
}
