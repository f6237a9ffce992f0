package cookie

import (
	"errors"
	"sync"
	"time"

	"github.com/zhouzirui/santa-exe/internal/random"
)

const (
	PowerUpCost          = 50
	HelperCost           = 200
	AchievementThreshold = 1000
)

var (
	// ErrNotEnoughCookies is returned when an upgrade is unaffordable.
	ErrNotEnoughCookies = errors.New("not enough cookies")
	// ErrGameClosed is returned after Close.
	ErrGameClosed = errors.New("game closed")
)

var santaComments = []string{
	"THAT'S MY CHILD!",
	"SLOW DOWN.",
	"...are you okay?",
	"THIS IS YOUR COPING MECHANISM?",
	"I'M WATCHING YOU.",
	"THOSE ARE FOR SANTA.",
	"OKAY THAT'S ENOUGH.",
	"WHY ARE YOU LIKE THIS?",
	"IMPRESSIVE SPEED.",
}

// State is a snapshot of the game.
type State struct {
	Cookies     float64 `json:"cookies"`
	Power       float64 `json:"power"`
	Helpers     int     `json:"helpers"`
	Comment     string  `json:"comment"`
	Achievement bool    `json:"achievement"`
}

// Game is the cookie clicker side game. Elf helpers bake on a ticker owned by the game;
// Close stops it, so a discarded game never keeps running.
type Game struct {
	rnd      random.Source
	interval time.Duration
	onTick   func(State)

	mu      sync.Mutex
	cookies float64
	power   float64
	helpers int
	comment string
	closed  bool

	stop     chan struct{}
	wg       sync.WaitGroup
	loopOnce sync.Once
}

// NewGame starts a game. onTick, if set, is called after every helper tick.
func NewGame(rnd random.Source, interval time.Duration, onTick func(State)) *Game {
	if interval <= 0 {
		interval = time.Second
	}
	return &Game{
		rnd:      rnd,
		interval: interval,
		onTick:   onTick,
		power:    1,
		comment:  "CLICK THE COOKIE!",
		stop:     make(chan struct{}),
	}
}

// Click bakes one click worth of cookies and draws a Santa comment.
func (g *Game) Click() (State, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return State{}, ErrGameClosed
	}
	g.cookies += g.power
	g.comment = santaComments[random.Index(g.rnd, len(santaComments))]
	return g.stateLocked(), nil
}

// BuyPowerUp doubles click power.
func (g *Game) BuyPowerUp() (State, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return State{}, ErrGameClosed
	}
	if g.cookies < PowerUpCost {
		return g.stateLocked(), ErrNotEnoughCookies
	}
	g.cookies -= PowerUpCost
	g.power *= 2
	g.comment = "NOW THAT'S THE SPIRIT!"
	return g.stateLocked(), nil
}

// BuyHelper hires an elf that adds half the current click power every interval.
func (g *Game) BuyHelper() (State, error) {
	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		return State{}, ErrGameClosed
	}
	if g.cookies < HelperCost {
		st := g.stateLocked()
		g.mu.Unlock()
		return st, ErrNotEnoughCookies
	}
	g.cookies -= HelperCost
	g.helpers++
	g.comment = "ELVES ARE HELPING NOW!"
	st := g.stateLocked()
	g.mu.Unlock()

	g.loopOnce.Do(func() {
		g.wg.Add(1)
		go g.run()
	})
	return st, nil
}

// Tick applies one round of helper baking.
func (g *Game) Tick() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.closed {
		g.cookies += float64(g.helpers) * g.power / 2
	}
	return g.stateLocked()
}

// State returns the current snapshot.
func (g *Game) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.stateLocked()
}

// Close stops the helper ticker and waits for it to exit.
func (g *Game) Close() {
	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		return
	}
	g.closed = true
	close(g.stop)
	g.mu.Unlock()
	g.wg.Wait()
}

func (g *Game) run() {
	defer g.wg.Done()
	ticker := time.NewTicker(g.interval)
	defer ticker.Stop()

	for {
		select {
		case <-g.stop:
			return
		case <-ticker.C:
			st := g.Tick()
			if g.onTick != nil {
				g.onTick(st)
			}
		}
	}
}

func (g *Game) stateLocked() State {
	return State{
		Cookies:     g.cookies,
		Power:       g.power,
		Helpers:     g.helpers,
		Comment:     g.comment,
		Achievement: g.cookies > AchievementThreshold,
	}
}
