// Package session runs one game: it owns the discs, drives the physics
// engine, schedules spawns, commits words and calls the end. Everything
// here is single-threaded; the UI loop calls in once per frame.
package session

import (
	"time"

	"letterfall/internal/board"
	"letterfall/internal/dict"
	"letterfall/internal/geom"
	"letterfall/internal/letters"
	"letterfall/internal/physics"
	"letterfall/internal/score"
	"letterfall/internal/selection"
	"letterfall/internal/spawn"
)

// State is the session lifecycle.
type State int

const (
	// StateIdle is before the first Start.
	StateIdle State = iota
	// StateRunning is normal play.
	StateRunning
	// StateOver is after game over; the board stays frozen on screen.
	StateOver
)

// Outcome classifies a pointer-up.
type Outcome int

const (
	// OutcomeNone means no path was active.
	OutcomeNone Outcome = iota
	// OutcomeTooShort means the chain was under the minimum length.
	OutcomeTooShort
	// OutcomeUnknown means the dictionary is still loading; retry.
	OutcomeUnknown
	// OutcomeInvalid means the word is not in the dictionary.
	OutcomeInvalid
	// OutcomeCommitted means the word scored and its discs are gone.
	OutcomeCommitted
)

// CommitResult reports what a pointer-up did.
type CommitResult struct {
	Outcome    Outcome
	Word       string
	Points     int
	Suggestion string
}

// Dict is the dictionary surface the session needs.
type Dict interface {
	Lookup(word string) dict.Result
	Suggest(word string, maxDist int) (string, bool)
}

// Config holds the session knobs. Spawner selection knobs live in
// spawn.Tuning; these cover geometry, timing and rules.
type Config struct {
	ArenaWidth  float64
	ArenaHeight float64

	// MaxLink bounds the center distance of a selection link.
	MaxLink float64

	// MinWordLength is the shortest committable word.
	MinWordLength int

	// StrategyLabel names the spawn strategy in stored games.
	StrategyLabel string

	// BurstPairs pair spawns run at start, BurstStagger apart, so the
	// arena fills without discs landing inside each other.
	BurstPairs   int
	BurstStagger time.Duration

	// Every Interval, BatchPairs pair spawns are queued BatchStagger
	// apart.
	Interval     time.Duration
	BatchPairs   int
	BatchStagger time.Duration

	// ReplenishDelay spaces the single replacement pair after a
	// committed word.
	ReplenishDelay time.Duration

	// Danger: a disc resting (speed below DangerRest) with its center
	// above DangerY for DangerGrace continuously ends the game.
	DangerY     float64
	DangerRest  float64
	DangerGrace time.Duration

	// FrameStep is the fixed physics step per Advance call.
	FrameStep float64
}

// DefaultConfig returns the shipped game rules for an arena size.
func DefaultConfig() Config {
	return Config{
		ArenaWidth:     480,
		ArenaHeight:    640,
		MaxLink:        selection.DefaultMaxLink,
		MinWordLength:  3,
		StrategyLabel:  score.StrategyBigram,
		BurstPairs:     4,
		BurstStagger:   300 * time.Millisecond,
		Interval:       5 * time.Second,
		BatchPairs:     2,
		BatchStagger:   400 * time.Millisecond,
		ReplenishDelay: 350 * time.Millisecond,
		DangerY:        90,
		DangerRest:     10,
		DangerGrace:    2 * time.Second,
		FrameStep:      1.0 / 60,
	}
}

// job is one pending pair spawn.
type job struct {
	due time.Time
}

// Controller is the session. Not safe for concurrent use.
type Controller struct {
	cfg      Config
	eng      physics.Engine
	dict     Dict
	strategy spawn.Strategy
	placer   *spawn.Placer
	path     *selection.Path

	discs   []*board.Disc
	handles map[board.DiscID]physics.Handle
	nextID  board.DiscID

	jobs        []job
	nextBatchAt time.Time

	state       State
	startedAt   time.Time
	endedAt     time.Time
	dangerSince time.Time

	score       int
	words       int
	bestWord    string
	bestPoints  int
	recentWords []string

	spawned [letters.Count]int
	used    [letters.Count]int
}

// New wires a controller. Start must be called before play.
func New(cfg Config, eng physics.Engine, d Dict, strategy spawn.Strategy, placer *spawn.Placer) *Controller {
	return &Controller{
		cfg:      cfg,
		eng:      eng,
		dict:     d,
		strategy: strategy,
		placer:   placer,
		path:     selection.NewPath(cfg.MaxLink),
		handles:  make(map[board.DiscID]physics.Handle),
		nextID:   1,
	}
}

// Start begins a fresh game at now, scheduling the opening burst.
func (c *Controller) Start(now time.Time) {
	c.clearBoard()
	c.strategy.Reset()
	c.path.Clear()
	c.jobs = c.jobs[:0]
	c.state = StateRunning
	c.startedAt = now
	c.endedAt = time.Time{}
	c.dangerSince = time.Time{}
	c.score = 0
	c.words = 0
	c.bestWord = ""
	c.bestPoints = 0
	c.recentWords = nil
	c.spawned = [letters.Count]int{}
	c.used = [letters.Count]int{}

	for i := 0; i < c.cfg.BurstPairs; i++ {
		c.schedule(now.Add(time.Duration(i) * c.cfg.BurstStagger))
	}
	c.nextBatchAt = now.Add(c.cfg.Interval)
}

// Reset is Start under its game-over-capable name: it cancels pending
// spawns, clears the board and recency memory and begins again.
func (c *Controller) Reset(now time.Time) {
	c.Start(now)
}

// Advance runs one frame at now: physics step, position mirror, due
// spawn jobs, recurring batch scheduling and the danger check. After
// game over it is inert.
func (c *Controller) Advance(now time.Time) {
	if c.state != StateRunning {
		return
	}
	c.eng.Step(c.cfg.FrameStep)
	for _, d := range c.discs {
		h := c.handles[d.ID]
		d.Pos = c.eng.Position(h)
		d.Vel = c.eng.Velocity(h)
	}
	if !now.Before(c.nextBatchAt) {
		for i := 0; i < c.cfg.BatchPairs; i++ {
			c.schedule(now.Add(time.Duration(i) * c.cfg.BatchStagger))
		}
		c.nextBatchAt = now.Add(c.cfg.Interval)
	}
	c.runDueJobs(now)
	c.checkDanger(now)
}

// PointerDown starts a selection path under p.
func (c *Controller) PointerDown(p geom.Vec2) bool {
	if c.state != StateRunning {
		return false
	}
	return c.path.Begin(p, c.discs)
}

// PointerMove extends or backtracks the path.
func (c *Controller) PointerMove(p geom.Vec2) bool {
	if c.state != StateRunning {
		return false
	}
	return c.path.Extend(p, c.discs)
}

// PointerUp ends the path and tries to commit the word. Rejected
// chains leave their discs in place; a committed word removes them and
// queues one replacement pair.
func (c *Controller) PointerUp(now time.Time) CommitResult {
	if c.state != StateRunning {
		return CommitResult{Outcome: OutcomeNone}
	}
	word, picked := c.path.End()
	if word == "" {
		return CommitResult{Outcome: OutcomeNone}
	}
	if len(word) < c.cfg.MinWordLength {
		return CommitResult{Outcome: OutcomeTooShort, Word: word}
	}
	switch c.dict.Lookup(word) {
	case dict.Unknown:
		return CommitResult{Outcome: OutcomeUnknown, Word: word}
	case dict.Invalid:
		res := CommitResult{Outcome: OutcomeInvalid, Word: word}
		if sug, ok := c.dict.Suggest(word, 2); ok {
			res.Suggestion = sug
		}
		return res
	}

	points := score.WordPoints(word)
	c.score += points
	c.words++
	if points > c.bestPoints {
		c.bestWord = word
		c.bestPoints = points
	}
	c.recentWords = append(c.recentWords, word)
	if len(c.recentWords) > 8 {
		c.recentWords = c.recentWords[1:]
	}
	for _, d := range picked {
		if i := letters.Index(d.Letter); i >= 0 {
			c.used[i]++
		}
		c.removeDisc(d.ID)
	}
	c.schedule(now.Add(c.cfg.ReplenishDelay))
	return CommitResult{Outcome: OutcomeCommitted, Word: word, Points: points}
}

// State returns the lifecycle state.
func (c *Controller) State() State {
	return c.state
}

// ArenaSize returns the arena dimensions in world units.
func (c *Controller) ArenaSize() (width, height float64) {
	return c.cfg.ArenaWidth, c.cfg.ArenaHeight
}

// DangerLineY returns the height of the danger line in world units.
func (c *Controller) DangerLineY() float64 {
	return c.cfg.DangerY
}

// Score returns the current score.
func (c *Controller) Score() int {
	return c.score
}

// Words returns how many words have been committed.
func (c *Controller) Words() int {
	return c.words
}

// BestWord returns the highest-scoring word so far.
func (c *Controller) BestWord() (string, int) {
	return c.bestWord, c.bestPoints
}

// RecentWords returns the last few committed words, oldest first.
func (c *Controller) RecentWords() []string {
	return c.recentWords
}

// Discs returns the live disc list. The slice is owned by the
// controller; callers must not mutate it.
func (c *Controller) Discs() []*board.Disc {
	return c.discs
}

// Path returns the selection path for rendering.
func (c *Controller) Path() *selection.Path {
	return c.path
}

// Duration reports elapsed play time.
func (c *Controller) Duration(now time.Time) time.Duration {
	if c.startedAt.IsZero() {
		return 0
	}
	end := c.endedAt
	if end.IsZero() {
		end = now
	}
	return end.Sub(c.startedAt)
}

// Result packages the finished game for the score store.
func (c *Controller) Result(now time.Time) (score.GameRecord, []score.LetterCount) {
	rec := score.GameRecord{
		StartedAt:      c.startedAt,
		EndedAt:        c.endedAt,
		Strategy:       c.cfg.StrategyLabel,
		Score:          c.score,
		Words:          c.words,
		BestWord:       c.bestWord,
		BestWordPoints: c.bestPoints,
		DurationMs:     c.Duration(now).Milliseconds(),
	}
	if rec.EndedAt.IsZero() {
		rec.EndedAt = now
	}
	var counts []score.LetterCount
	for i := 0; i < letters.Count; i++ {
		if c.spawned[i] == 0 && c.used[i] == 0 {
			continue
		}
		counts = append(counts, score.LetterCount{
			Letter:  string(rune('A' + i)),
			Spawned: c.spawned[i],
			Used:    c.used[i],
		})
	}
	return rec, counts
}

// Diag is a read-only diagnostics snapshot for overlays and the
// simulator.
type Diag struct {
	State          State
	Discs          int
	Score          int
	Words          int
	Histogram      board.Histogram
	Distance       float64
	VowelRatio     float64
	PendingJobs    int
	DangerActive   bool
	Recent         []letters.Pair
	LastCandidates []spawn.Candidate
}

// Snapshot captures the current session internals. Selector details
// appear only when the strategy is the bigram selector.
func (c *Controller) Snapshot() Diag {
	h := board.Census(c.discs)
	d := Diag{
		State:        c.state,
		Discs:        len(c.discs),
		Score:        c.score,
		Words:        c.words,
		Histogram:    h,
		Distance:     h.Distance(),
		VowelRatio:   h.VowelRatio(),
		PendingJobs:  len(c.jobs),
		DangerActive: !c.dangerSince.IsZero(),
	}
	if sel, ok := c.strategy.(*spawn.Selector); ok {
		d.Recent = sel.Recent()
		d.LastCandidates = sel.LastCandidates()
	}
	return d
}

// schedule queues one pair spawn.
func (c *Controller) schedule(due time.Time) {
	c.jobs = append(c.jobs, job{due: due})
}

// runDueJobs executes every job whose time has come.
func (c *Controller) runDueJobs(now time.Time) {
	remaining := c.jobs[:0]
	due := 0
	for _, j := range c.jobs {
		if j.due.After(now) {
			remaining = append(remaining, j)
			continue
		}
		due++
	}
	c.jobs = remaining
	for i := 0; i < due; i++ {
		c.spawnPair()
	}
}

// spawnPair asks the strategy for letters and the placer for room.
// Partial or empty placement is fine; the board self-heals as words
// drain it.
func (c *Controller) spawnPair() {
	pair := c.strategy.SelectPair(board.Census(c.discs))
	for _, pl := range c.placer.Place(pair, c.discs) {
		c.materialize(pl.Letter, pl.Pos)
	}
}

// materialize creates a disc and its physics body.
func (c *Controller) materialize(l letters.Letter, pos geom.Vec2) *board.Disc {
	d := board.New(c.nextID, l, pos)
	c.nextID++
	h := c.eng.CreateBody(pos, d.Radius)
	c.eng.AddToWorld(h)
	c.discs = append(c.discs, d)
	c.handles[d.ID] = h
	if i := letters.Index(l); i >= 0 {
		c.spawned[i]++
	}
	return d
}

// removeDisc drops a disc from the board and the engine.
func (c *Controller) removeDisc(id board.DiscID) {
	for i, d := range c.discs {
		if d.ID != id {
			continue
		}
		c.discs = append(c.discs[:i], c.discs[i+1:]...)
		break
	}
	if h, ok := c.handles[id]; ok {
		c.eng.RemoveFromWorld(h)
		delete(c.handles, id)
	}
}

// clearBoard removes every disc.
func (c *Controller) clearBoard() {
	for id, h := range c.handles {
		c.eng.RemoveFromWorld(h)
		delete(c.handles, id)
	}
	c.discs = c.discs[:0]
}

// checkDanger ends the game when a resting disc has crowded the top of
// the arena past the grace period.
func (c *Controller) checkDanger(now time.Time) {
	inDanger := false
	for _, d := range c.discs {
		if d.Pos.Y < c.cfg.DangerY && d.Vel.Len() < c.cfg.DangerRest {
			inDanger = true
			break
		}
	}
	if !inDanger {
		c.dangerSince = time.Time{}
		return
	}
	if c.dangerSince.IsZero() {
		c.dangerSince = now
		return
	}
	if now.Sub(c.dangerSince) >= c.cfg.DangerGrace {
		c.gameOver(now)
	}
}

// gameOver freezes the session: pending spawns are dropped so nothing
// mutates the board after the end.
func (c *Controller) gameOver(now time.Time) {
	c.state = StateOver
	c.endedAt = now
	c.jobs = nil
	c.path.Clear()
}
