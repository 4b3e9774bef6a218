// Command cuckoobench fills cuckoo filters with decimal string keys and
// reports insert throughput and the measured false-positive rate.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/FastFilter/cuckoofilter"
	"github.com/bits-and-blooms/bloom/v3"
	"github.com/sirupsen/logrus"
)

type options struct {
	sizes    []int
	buckets  uint
	kicks    uint
	hash     cuckoofilter.HashAlgorithm
	seed     uint64
	probes   int
	bloom    bool
	useSeed  bool
	logLevel logrus.Level
}

func parseFlags(args []string) (*options, error) {
	fs := flag.NewFlagSet("cuckoobench", flag.ContinueOnError)
	sizes := fs.String("n", "1000000,100000", "comma-separated number of keys per run")
	buckets := fs.Uint("buckets", cuckoofilter.DefaultBucketCount, "number of buckets, rounded up to a power of two")
	kicks := fs.Uint("kicks", cuckoofilter.DefaultMaxKicks, "maximum relocations per insert")
	hash := fs.String("hash", cuckoofilter.HashSipHash.String(), "hash algorithm: siphash, xxhash, xxh3 or blake3")
	seed := fs.Uint64("seed", 0, "seed for a deterministic run; 0 picks a random one")
	probes := fs.Int("probes", 100000, "number of absent keys looked up to measure false positives")
	withBloom := fs.Bool("bloom", false, "also fill a Bloom filter sized for the same keys")
	level := fs.String("log-level", "info", "log level")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	o := &options{
		buckets: *buckets,
		kicks:   *kicks,
		seed:    *seed,
		useSeed: *seed != 0,
		probes:  *probes,
		bloom:   *withBloom,
	}
	for _, s := range strings.Split(*sizes, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid size %q", s)
		}
		o.sizes = append(o.sizes, n)
	}
	var err error
	if o.hash, err = cuckoofilter.ParseHashAlgorithm(*hash); err != nil {
		return nil, err
	}
	if o.logLevel, err = logrus.ParseLevel(*level); err != nil {
		return nil, err
	}
	return o, nil
}

func (o *options) filterOptions() []cuckoofilter.Option {
	opts := []cuckoofilter.Option{
		cuckoofilter.WithBucketCount(o.buckets),
		cuckoofilter.WithMaxKicks(o.kicks),
		cuckoofilter.WithHash(o.hash),
	}
	if o.useSeed {
		opts = append(opts, cuckoofilter.WithSeed(o.seed))
	}
	return opts
}

type result struct {
	inserted int
	full     int
	elapsed  time.Duration
	fpRate   float64
}

func runCuckoo(o *options, n int) result {
	f := cuckoofilter.NewFilter8(o.filterOptions()...)
	var r result
	start := time.Now()
	for i := 0; i < n; i++ {
		ok, err := f.InsertString(strconv.Itoa(i))
		if errors.Is(err, cuckoofilter.ErrFilterFull) {
			r.full++
			continue
		}
		if ok {
			r.inserted++
		}
	}
	r.elapsed = time.Since(start)
	logrus.WithFields(logrus.Fields{
		"size":        f.Size(),
		"capacity":    f.Capacity(),
		"load_factor": f.LoadFactor(),
	}).Debug("cuckoo filter filled")

	r.fpRate = falsePositives(o.probes, n, f.LookupString)
	return r
}

func runBloom(o *options, n int) result {
	f := bloom.NewWithEstimates(uint(n), cuckoofilter.FalsePositiveRate[uint8]())
	var r result
	start := time.Now()
	for i := 0; i < n; i++ {
		f.AddString(strconv.Itoa(i))
		r.inserted++
	}
	r.elapsed = time.Since(start)
	logrus.WithFields(logrus.Fields{
		"bits":   f.Cap(),
		"hashes": f.K(),
	}).Debug("bloom filter filled")

	r.fpRate = falsePositives(o.probes, n, f.TestString)
	return r
}

// falsePositives looks up keys n, n+1, ... which were never inserted.
func falsePositives(probes, n int, lookup func(string) bool) float64 {
	if probes <= 0 {
		return 0
	}
	matches := 0
	for i := 0; i < probes; i++ {
		if lookup(strconv.Itoa(n + i)) {
			matches++
		}
	}
	return float64(matches) / float64(probes)
}

func logResult(kind string, n int, r result) {
	logrus.WithFields(logrus.Fields{
		"filter":     kind,
		"keys":       n,
		"inserted":   r.inserted,
		"full":       r.full,
		"elapsed":    r.elapsed,
		"ns_per_key": r.elapsed.Nanoseconds() / int64(n),
		"fp_rate":    r.fpRate,
	}).Info("run complete")
}

func run(args []string) error {
	o, err := parseFlags(args)
	if err != nil {
		return fmt.Errorf("parsing flags: %w", err)
	}
	logrus.SetLevel(o.logLevel)
	for _, n := range o.sizes {
		logrus.WithFields(logrus.Fields{"keys": n, "hash": o.hash}).Info("starting cuckoo filter run")
		logResult("cuckoo", n, runCuckoo(o, n))
		if o.bloom {
			logResult("bloom", n, runBloom(o, n))
		}
	}
	return nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		logrus.WithError(err).Fatal("cuckoobench failed")
	}
}
