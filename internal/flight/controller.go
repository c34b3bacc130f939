package flight

import (
	"sync"
	"time"

	"github.com/bwmarrin/snowflake"
)

// Duration is the fixed lifetime of every animation.
const Duration = 800 * time.Millisecond

// Phase of a single animation.
type Phase string

const (
	PhaseSpawned   Phase = "spawned"
	PhaseAnimating Phase = "animating"
	PhaseComplete  Phase = "complete"
)

// Animation is one in-flight transition from an origin anchor to the cart icon.
type Animation struct {
	ID        int64     `json:"id"`
	Source    string    `json:"src"`
	Origin    Rect      `json:"origin"`
	Target    Rect      `json:"target"`
	StartedAt time.Time `json:"startedAt"`
	Phase     Phase     `json:"phase"`
}

// RectAt returns where the entry should be rendered elapsed time after spawn:
// pinned to the origin anchor at 0, collapsed into the cart icon at Duration.
func (a Animation) RectAt(elapsed time.Duration) Rect {
	return interpolate(a.Origin, a.Target, float64(elapsed)/float64(Duration))
}

// Controller owns the active set. Only Spawn and the expiry timer mutate it;
// external code can read snapshots and request spawns.
type Controller struct {
	mu         sync.Mutex
	active     map[int64]*Animation
	node       *snowflake.Node
	duration   time.Duration
	onComplete func(id int64)
}

// NewController creates a controller. onComplete may be nil; when set it runs
// after an animation is removed from the active set.
func NewController(onComplete func(id int64)) *Controller {
	node, err := snowflake.NewNode(1)
	if err != nil {
		// node id 1 is always in range; keep the signature clean
		panic(err)
	}
	return &Controller{
		active:     make(map[int64]*Animation),
		node:       node,
		duration:   Duration,
		onComplete: onComplete,
	}
}

// Spawn registers a new animation between the two anchors and schedules its
// unconditional removal. Animations are independent: spawning never touches
// other entries.
func (c *Controller) Spawn(sourceImage string, origin, target Rect) int64 {
	a := &Animation{
		ID:        c.node.Generate().Int64(),
		Source:    sourceImage,
		Origin:    origin,
		Target:    target,
		StartedAt: time.Now(),
		Phase:     PhaseSpawned,
	}

	c.mu.Lock()
	c.active[a.ID] = a
	a.Phase = PhaseAnimating
	c.mu.Unlock()

	time.AfterFunc(c.duration, func() {
		c.remove(a.ID)
	})
	return a.ID
}

func (c *Controller) remove(id int64) {
	c.mu.Lock()
	a, ok := c.active[id]
	if ok {
		a.Phase = PhaseComplete
		delete(c.active, id)
	}
	c.mu.Unlock()

	if ok && c.onComplete != nil {
		c.onComplete(id)
	}
}

// Active returns a snapshot of the in-flight animations.
func (c *Controller) Active() []Animation {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Animation, 0, len(c.active))
	for _, a := range c.active {
		out = append(out, *a)
	}
	return out
}

// Get returns the animation with the given id while it is still active.
func (c *Controller) Get(id int64) (Animation, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	a, ok := c.active[id]
	if !ok {
		return Animation{}, false
	}
	return *a, true
}
