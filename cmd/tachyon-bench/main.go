// Command tachyon-bench drives a producer/consumer benchmark over the
// tachyoncore SPMC ring, pool, builder and ledgers, optionally emitting
// structured logs and Prometheus metrics. It is the only place in this
// module that wires tachyoncore together with I/O: the core packages
// remain free of logging, metrics, and configuration concerns.
package main

import (
	"crypto/rand"
	"fmt"
	"net/http"
	"os"
	"sync"

	flag "github.com/spf13/pflag"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/joeycumines/go-tachyoncore"
	"github.com/joeycumines/go-tachyoncore/telemetry"
	"github.com/joeycumines/go-tachyoncore/telemetry/metrics"
)

func main() {
	var (
		configPath   = flag.StringP("config", "c", "", "Path to a YAML config file")
		ringCapacity = flag.Int("ring-capacity", 0, "Ring capacity (0 = use config/default)")
		poolCapacity = flag.Int("pool-capacity", 0, "Pool capacity (0 = use config/default)")
		envelopes    = flag.Int("envelopes", 0, "Number of envelopes to push through the ring (0 = use config/default)")
		senderID     = flag.String("sender-id", "", "Sender identifier hashed into Provenance (\"\" = use config/default)")
		metricsAddr  = flag.String("metrics-addr", "", "If set, serve Prometheus metrics on this address (e.g. :9090)")
		quiet        = flag.BoolP("quiet", "q", false, "Suppress per-decision structured logging")
	)
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tachyon-bench: loading config: %v\n", err)
		os.Exit(1)
	}
	if *ringCapacity > 0 {
		cfg.RingCapacity = *ringCapacity
	}
	if *poolCapacity > 0 {
		cfg.PoolCapacity = *poolCapacity
	}
	if *envelopes > 0 {
		cfg.Envelopes = *envelopes
	}
	if *senderID != "" {
		cfg.SenderID = *senderID
	}
	if *metricsAddr != "" {
		cfg.MetricsAddr = *metricsAddr
	}
	if *quiet {
		cfg.DisableTelemetry = true
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "tachyon-bench: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg Config) error {
	registry := prometheus.NewRegistry()
	collectors, err := metrics.New(registry)
	if err != nil {
		return fmt.Errorf("registering metrics: %w", err)
	}

	var obs telemetry.Observer
	if !cfg.DisableTelemetry {
		obs = telemetry.NewLogger()
	}

	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
		server := &http.Server{Addr: cfg.MetricsAddr, Handler: mux}
		go func() {
			_ = server.ListenAndServe()
		}()
		defer server.Close()
	}

	template, rej := newSampleBuilder(cfg.SenderID).Build()
	if rej != nil {
		return fmt.Errorf("building template envelope: %w", rej)
	}

	pool := tachyoncore.NewPool(cfg.PoolCapacity, template)
	ring := tachyoncore.NewRing[*tachyoncore.Envelope](cfg.RingCapacity)
	replay := tachyoncore.NewReplayLog()
	shadow := tachyoncore.NewShadowLedger()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		consume(ring, replay, shadow, collectors, obs, cfg.Envelopes)
	}()

	for i := 0; i < cfg.Envelopes; i++ {
		slot := pool.Checkout()
		collectors.PoolCheckouts.Inc()
		if rebuildRej := tachyoncore.Rebuild(slot, newSampleBuilder(cfg.SenderID)); rebuildRej != nil {
			return fmt.Errorf("rebuilding pool slot: %w", rebuildRej)
		}
		decision := tachyoncore.GovernanceDecision(slot)
		collectors.ObserveDecision(decision)
		if obs != nil {
			obs.ObserveDecision(slot.SyncID(), decision, slot.Provenance().SenderHash)
		}

		shadow.PushSpeculative(slot.SyncID(), slot.Provenance().SenderHash)

		for {
			if _, ok := ring.Push(slot); ok {
				break
			}
		}
		collectors.RingOccupancy.Inc()
	}
	wg.Wait()

	fmt.Printf("processed %d envelopes: %d replay records, %d shadow commits\n",
		cfg.Envelopes, len(replay.Records()), shadow.CommittedCount())
	return nil
}

func consume(
	ring *tachyoncore.Ring[*tachyoncore.Envelope],
	replay *tachyoncore.ReplayLog,
	shadow *tachyoncore.ShadowLedger,
	collectors *metrics.Collectors,
	obs telemetry.Observer,
	count int,
) {
	for i := 0; i < count; i++ {
		var env *tachyoncore.Envelope
		for {
			v, ok := ring.Pop()
			if ok {
				env = v
				break
			}
		}
		collectors.RingOccupancy.Dec()

		decision := tachyoncore.GovernanceDecision(env)
		replay.Push(env, decision)
		collectors.ReplayRecordsTotal.Inc()

		if shadow.ConfirmCommit(env.SyncID()) {
			collectors.ShadowCommits.Inc()
			if obs != nil {
				obs.ObserveCommit(env.SyncID(), env.Provenance().SenderHash)
			}
		}
	}
}

// newSampleBuilder constructs a Builder with a random entropy seed and
// a deterministic sender hash derived from senderID, set up to pass
// every governance gate. Each call draws a fresh entropy seed, so
// calling Build (for the pool's seed template) or handing the result to
// Rebuild (to re-initialize a checked-out slot) always assigns a new
// sync id and a distinct entropy seed.
func newSampleBuilder(senderID string) *tachyoncore.Builder {
	var vector [tachyoncore.IntentDimensions]float32
	for i := range vector {
		vector[i] = 0
	}

	var seed [tachyoncore.EntropySeedBytes]byte
	_, _ = rand.Read(seed[:])

	return tachyoncore.NewBuilder(vector).
		WithCognitiveState(tachyoncore.CognitiveState{
			ExploreResolve:      0.1,
			AbstractConcrete:    0.1,
			SubjectiveObjective: 0.1,
			DivergentConvergent: 0.1,
			PassiveActive:       0.1,
			EmotionalValence:    0.1,
			EnergyLevel:         0.1,
			Turbulence:          0.1,
		}).
		WithMetadata(tachyoncore.Metadata{
			EntropySeed: seed,
			PayloadPtr:  0,
			RKey:        1,
			GhostFlag:   false,
		}).
		WithProvenance(tachyoncore.Provenance{
			SenderHash:     tachyoncore.IdentityHash(senderID),
			IntegrityHash:  tachyoncore.IdentityHash(senderID + ":integrity"),
			AuditClearance: true,
		})
}
