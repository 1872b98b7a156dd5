package session

import (
	"math/rand"
	"testing"
	"time"

	"letterfall/internal/dict"
	"letterfall/internal/geom"
	"letterfall/internal/letters"
	"letterfall/internal/physics"
	"letterfall/internal/score"
	"letterfall/internal/spawn"
)

// fakeBody integrates with plain Euler steps, enough to tell falling
// from resting.
type fakeBody struct {
	pos     geom.Vec2
	vel     geom.Vec2
	inWorld bool
}

type fakeEngine struct {
	gravity float64
	next    physics.Handle
	bodies  map[physics.Handle]*fakeBody
}

func newFakeEngine(gravity float64) *fakeEngine {
	return &fakeEngine{gravity: gravity, bodies: make(map[physics.Handle]*fakeBody)}
}

func (e *fakeEngine) CreateBody(pos geom.Vec2, radius float64) physics.Handle {
	e.next++
	e.bodies[e.next] = &fakeBody{pos: pos}
	return e.next
}

func (e *fakeEngine) AddToWorld(h physics.Handle) {
	if b, ok := e.bodies[h]; ok {
		b.inWorld = true
	}
}

func (e *fakeEngine) RemoveFromWorld(h physics.Handle) {
	if b, ok := e.bodies[h]; ok {
		b.inWorld = false
	}
}

func (e *fakeEngine) SetVelocity(h physics.Handle, v geom.Vec2) {
	if b, ok := e.bodies[h]; ok {
		b.vel = v
	}
}

func (e *fakeEngine) Step(dt float64) {
	for _, b := range e.bodies {
		if !b.inWorld {
			continue
		}
		b.vel.Y += e.gravity * dt
		b.pos = b.pos.Add(b.vel.Scale(dt))
	}
}

func (e *fakeEngine) Position(h physics.Handle) geom.Vec2 {
	if b, ok := e.bodies[h]; ok {
		return b.pos
	}
	return geom.Vec2{}
}

func (e *fakeEngine) Velocity(h physics.Handle) geom.Vec2 {
	if b, ok := e.bodies[h]; ok {
		return b.vel
	}
	return geom.Vec2{}
}

// stubDict answers from a fixed word set, or Unknown while "loading".
type stubDict struct {
	ready      bool
	valid      map[string]bool
	suggestion string
}

func (d stubDict) Lookup(word string) dict.Result {
	if !d.ready {
		return dict.Unknown
	}
	if d.valid[word] {
		return dict.Valid
	}
	return dict.Invalid
}

func (d stubDict) Suggest(word string, maxDist int) (string, bool) {
	if d.suggestion == "" {
		return "", false
	}
	return d.suggestion, true
}

func readyDict(words ...string) stubDict {
	valid := make(map[string]bool, len(words))
	for _, w := range words {
		valid[w] = true
	}
	return stubDict{ready: true, valid: valid}
}

func newTestController(t *testing.T, cfg Config, gravity float64, d Dict) (*Controller, *fakeEngine) {
	t.Helper()
	eng := newFakeEngine(gravity)
	sel, err := spawn.NewSelector(letters.Bigrams(), spawn.DefaultTuning(), rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("NewSelector: %v", err)
	}
	placer := spawn.NewPlacer(spawn.DefaultLayout(cfg.ArenaWidth), rand.New(rand.NewSource(11)))
	return New(cfg, eng, d, sel, placer), eng
}

func TestStartSchedulesBurst(t *testing.T) {
	cfg := DefaultConfig()
	c, _ := newTestController(t, cfg, 900, readyDict())

	t0 := time.Unix(100, 0)
	c.Start(t0)
	if c.State() != StateRunning {
		t.Fatalf("state after Start = %v, want running", c.State())
	}
	if got := c.Snapshot().PendingJobs; got != cfg.BurstPairs {
		t.Fatalf("pending jobs after Start = %d, want %d", got, cfg.BurstPairs)
	}

	// Run through the whole burst window a frame at a time.
	for i := 0; i <= 70; i++ {
		c.Advance(t0.Add(time.Duration(i) * 16 * time.Millisecond))
	}
	if got := c.Snapshot().PendingJobs; got != 0 {
		t.Fatalf("pending jobs after burst window = %d, want 0", got)
	}
	n := len(c.Discs())
	if n < 2 || n > 2*cfg.BurstPairs {
		t.Fatalf("discs after burst = %d, want between 2 and %d", n, 2*cfg.BurstPairs)
	}
	total := 0
	for _, count := range c.spawned {
		total += count
	}
	if total != n {
		t.Fatalf("spawned tally = %d, want %d", total, n)
	}
}

func TestCommitRemovesDiscsAndReplenishes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinWordLength = 2
	c, eng := newTestController(t, cfg, 0, readyDict("GO"))

	t0 := time.Unix(100, 0)
	c.Start(t0)
	c.jobs = nil

	g := c.materialize('G', geom.Vec2{X: 100, Y: 300})
	c.materialize('O', geom.Vec2{X: 170, Y: 300})

	if !c.PointerDown(geom.Vec2{X: 100, Y: 300}) {
		t.Fatal("PointerDown missed the first disc")
	}
	if !c.PointerMove(geom.Vec2{X: 170, Y: 300}) {
		t.Fatal("PointerMove failed to link the second disc")
	}
	res := c.PointerUp(t0.Add(time.Second))
	if res.Outcome != OutcomeCommitted {
		t.Fatalf("outcome = %v, want committed", res.Outcome)
	}
	if res.Word != "GO" {
		t.Fatalf("word = %q, want GO", res.Word)
	}
	if want := score.WordPoints("GO"); res.Points != want {
		t.Fatalf("points = %d, want %d", res.Points, want)
	}
	if c.Score() != res.Points || c.Words() != 1 {
		t.Fatalf("score/words = %d/%d, want %d/1", c.Score(), c.Words(), res.Points)
	}
	if len(c.Discs()) != 0 {
		t.Fatalf("discs after commit = %d, want 0", len(c.Discs()))
	}
	if eng.bodies[physics.Handle(1)].inWorld {
		t.Error("committed disc body still in world")
	}
	if c.used[g.Letter-'A'] != 1 {
		t.Errorf("used count for %c = %d, want 1", g.Letter, c.used[g.Letter-'A'])
	}

	// Exactly one replacement pair is queued.
	if got := c.Snapshot().PendingJobs; got != 1 {
		t.Fatalf("pending jobs after commit = %d, want 1", got)
	}
	c.Advance(t0.Add(time.Second).Add(cfg.ReplenishDelay))
	// Wall clamping can cost the pair one letter, never the whole spawn.
	if n := len(c.Discs()); n < 1 || n > 2 {
		t.Fatalf("discs after replenish = %d, want 1 or 2", n)
	}
}

func TestShortChainIsRejected(t *testing.T) {
	cfg := DefaultConfig()
	c, _ := newTestController(t, cfg, 0, readyDict("CAT"))

	t0 := time.Unix(100, 0)
	c.Start(t0)
	c.jobs = nil
	c.materialize('C', geom.Vec2{X: 100, Y: 300})

	c.PointerDown(geom.Vec2{X: 100, Y: 300})
	res := c.PointerUp(t0)
	if res.Outcome != OutcomeTooShort {
		t.Fatalf("outcome = %v, want too short", res.Outcome)
	}
	if len(c.Discs()) != 1 {
		t.Fatalf("discs after rejection = %d, want 1", len(c.Discs()))
	}
	if got := c.Snapshot().PendingJobs; got != 0 {
		t.Fatalf("pending jobs after rejection = %d, want 0", got)
	}
}

func TestUnknownWhileDictionaryLoads(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinWordLength = 2
	c, _ := newTestController(t, cfg, 0, stubDict{ready: false})

	t0 := time.Unix(100, 0)
	c.Start(t0)
	c.jobs = nil
	c.materialize('G', geom.Vec2{X: 100, Y: 300})
	c.materialize('O', geom.Vec2{X: 170, Y: 300})

	c.PointerDown(geom.Vec2{X: 100, Y: 300})
	c.PointerMove(geom.Vec2{X: 170, Y: 300})
	res := c.PointerUp(t0)
	if res.Outcome != OutcomeUnknown {
		t.Fatalf("outcome = %v, want unknown", res.Outcome)
	}
	if len(c.Discs()) != 2 || c.Score() != 0 {
		t.Fatalf("board changed on unknown word: discs=%d score=%d", len(c.Discs()), c.Score())
	}
}

func TestInvalidWordSuggests(t *testing.T) {
	cfg := DefaultConfig()
	d := readyDict("CAT")
	d.suggestion = "CAT"
	c, _ := newTestController(t, cfg, 0, d)

	t0 := time.Unix(100, 0)
	c.Start(t0)
	c.jobs = nil
	c.materialize('C', geom.Vec2{X: 100, Y: 300})
	c.materialize('A', geom.Vec2{X: 170, Y: 300})
	c.materialize('R', geom.Vec2{X: 240, Y: 300})

	c.PointerDown(geom.Vec2{X: 100, Y: 300})
	c.PointerMove(geom.Vec2{X: 170, Y: 300})
	c.PointerMove(geom.Vec2{X: 240, Y: 300})
	res := c.PointerUp(t0)
	if res.Outcome != OutcomeInvalid {
		t.Fatalf("outcome = %v, want invalid", res.Outcome)
	}
	if res.Word != "CAR" || res.Suggestion != "CAT" {
		t.Fatalf("word/suggestion = %q/%q, want CAR/CAT", res.Word, res.Suggestion)
	}
	if len(c.Discs()) != 3 {
		t.Fatalf("discs after invalid word = %d, want 3", len(c.Discs()))
	}
}

func TestRestingDiscAboveLineEndsGame(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DangerGrace = 100 * time.Millisecond
	c, _ := newTestController(t, cfg, 0, readyDict())

	t0 := time.Unix(100, 0)
	c.Start(t0)
	c.jobs = nil
	c.materialize('E', geom.Vec2{X: 240, Y: 50})

	c.Advance(t0.Add(16 * time.Millisecond))
	if c.State() != StateRunning {
		t.Fatal("game ended before the grace period")
	}
	if !c.Snapshot().DangerActive {
		t.Fatal("danger timer not armed by a resting disc above the line")
	}
	c.Advance(t0.Add(200 * time.Millisecond))
	if c.State() != StateOver {
		t.Fatalf("state = %v, want over", c.State())
	}
	if got := c.Snapshot().PendingJobs; got != 0 {
		t.Fatalf("pending jobs after game over = %d, want 0", got)
	}

	// The finished session is inert.
	before := len(c.Discs())
	c.Advance(t0.Add(10 * time.Second))
	if len(c.Discs()) != before {
		t.Error("board changed after game over")
	}
	if c.PointerDown(geom.Vec2{X: 240, Y: 50}) {
		t.Error("PointerDown succeeded after game over")
	}
}

func TestFallingDiscIsNotDanger(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DangerGrace = 100 * time.Millisecond
	c, _ := newTestController(t, cfg, 900, readyDict())

	t0 := time.Unix(100, 0)
	c.Start(t0)
	c.jobs = nil
	c.materialize('E', geom.Vec2{X: 240, Y: 50})

	for i := 1; i <= 30; i++ {
		c.Advance(t0.Add(time.Duration(i) * 16 * time.Millisecond))
		if c.State() != StateRunning {
			t.Fatalf("falling disc ended the game at frame %d", i)
		}
	}
	if c.Snapshot().DangerActive {
		t.Error("danger timer armed by a disc in free fall")
	}
}

func TestResetClearsEverything(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinWordLength = 2
	c, _ := newTestController(t, cfg, 0, readyDict("GO"))

	t0 := time.Unix(100, 0)
	c.Start(t0)
	c.jobs = nil
	c.materialize('G', geom.Vec2{X: 100, Y: 300})
	c.materialize('O', geom.Vec2{X: 170, Y: 300})
	c.PointerDown(geom.Vec2{X: 100, Y: 300})
	c.PointerMove(geom.Vec2{X: 170, Y: 300})
	if res := c.PointerUp(t0); res.Outcome != OutcomeCommitted {
		t.Fatalf("setup commit failed: %v", res.Outcome)
	}
	c.Advance(t0.Add(cfg.ReplenishDelay))
	if len(c.Snapshot().Recent) != 1 {
		t.Fatal("replenish spawn did not prime the selector memory")
	}
	c.gameOver(t0.Add(time.Second))

	t1 := t0.Add(time.Minute)
	c.Reset(t1)
	if c.State() != StateRunning {
		t.Fatalf("state after Reset = %v, want running", c.State())
	}
	if c.Score() != 0 || c.Words() != 0 || len(c.Discs()) != 0 {
		t.Fatalf("session carried state through Reset: score=%d words=%d discs=%d",
			c.Score(), c.Words(), len(c.Discs()))
	}
	snap := c.Snapshot()
	if snap.PendingJobs != cfg.BurstPairs {
		t.Fatalf("pending jobs after Reset = %d, want %d", snap.PendingJobs, cfg.BurstPairs)
	}
	if len(snap.Recent) != 0 {
		t.Errorf("selector memory survived Reset: %v", snap.Recent)
	}
	for i, n := range c.spawned {
		if n != 0 {
			t.Fatalf("spawned[%c] = %d after Reset, want 0", 'A'+i, n)
		}
	}
}

func TestResultPackagesTheGame(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinWordLength = 2
	c, _ := newTestController(t, cfg, 0, readyDict("GO"))

	t0 := time.Unix(100, 0)
	c.Start(t0)
	c.jobs = nil
	c.materialize('G', geom.Vec2{X: 100, Y: 300})
	c.materialize('O', geom.Vec2{X: 170, Y: 300})
	c.PointerDown(geom.Vec2{X: 100, Y: 300})
	c.PointerMove(geom.Vec2{X: 170, Y: 300})
	c.PointerUp(t0.Add(30 * time.Second))
	c.gameOver(t0.Add(time.Minute))

	rec, counts := c.Result(t0.Add(time.Minute))
	if rec.Score != score.WordPoints("GO") || rec.Words != 1 {
		t.Fatalf("record score/words = %d/%d", rec.Score, rec.Words)
	}
	if rec.BestWord != "GO" {
		t.Fatalf("best word = %q, want GO", rec.BestWord)
	}
	if rec.Strategy != score.StrategyBigram {
		t.Fatalf("strategy = %q, want %q", rec.Strategy, score.StrategyBigram)
	}
	if rec.DurationMs != time.Minute.Milliseconds() {
		t.Fatalf("duration = %dms, want %dms", rec.DurationMs, time.Minute.Milliseconds())
	}
	if len(counts) != 2 {
		t.Fatalf("letter counts = %d entries, want 2", len(counts))
	}
	for _, lc := range counts {
		if lc.Spawned != 1 || lc.Used != 1 {
			t.Errorf("letter %s spawned/used = %d/%d, want 1/1", lc.Letter, lc.Spawned, lc.Used)
		}
	}
}

func TestRecurringBatchKeepsFeeding(t *testing.T) {
	cfg := DefaultConfig()
	c, _ := newTestController(t, cfg, 900, readyDict())

	t0 := time.Unix(100, 0)
	c.Start(t0)
	c.jobs = nil

	// Cross the interval boundary: a batch gets queued.
	c.Advance(t0.Add(cfg.Interval))
	if got := c.Snapshot().PendingJobs; got != cfg.BatchPairs-1 {
		t.Fatalf("pending jobs at interval = %d, want %d", got, cfg.BatchPairs-1)
	}
	if n := len(c.Discs()); n < 1 || n > 2 {
		t.Fatalf("discs at interval = %d, want the first batch pair", n)
	}
}
