package orrery

import (
	"errors"
	"math"
	"sync"
	"time"

	"github.com/go-kit/kit/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// State is the driver's lifecycle state.
type State uint8

const (
	// Stopped means no physics goroutine is active.
	Stopped State = iota
	// Running means the driver goroutine is actively stepping.
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

const minStepsUntilUpdate = 10

// Parameters is a read-only view of the driver's mutable control
// surface plus its reported measurements.
type Parameters struct {
	TargetSpeed    float64
	TimeStep       float64
	UseTargetSpeed bool
	Method         Method
	NumThreads     int
	IsRunning      bool
	IterationSpeed float64
	TimeElapsed    float64
	JulianDate     float64
}

// Driver owns the authoritative body list and advances it on its own
// goroutine, publishing snapshots and reconciling commanded
// parameters at each cadence epoch. The consumer never touches
// the working list directly: it reads Snapshot() and writes commands
// through the Multiply*/Set*/Toggle*/Start/Stop methods.
type Driver struct {
	logger log.Logger
	cfg    Config

	bodiesMu sync.Mutex
	bodies   []Body

	paramMu        sync.RWMutex
	method         Method
	threads        int
	g              float64
	timeStep       float64
	userTimeStep   float64
	targetSpeed    float64
	useTargetSpeed bool
	isRunning      bool
	stepsUntilUpd  int
	timeElapsed    float64
	iterationSpeed float64

	snapMu   sync.Mutex
	snapshot Snapshot

	stateMu sync.Mutex
	state   State
	wg      sync.WaitGroup

	commands chan command
}

// NewDriver builds a driver over initial (which it takes ownership
// of), seeded from cfg. The driver starts Stopped; call Start to
// launch the physics goroutine.
func NewDriver(initial []Body, cfg Config, logger log.Logger) *Driver {
	d := &Driver{
		logger:         logger,
		cfg:            cfg,
		bodies:         initial,
		method:         cfg.DefaultMethod,
		threads:        cfg.DefaultThreads,
		g:              cfg.GravitationalConstant,
		timeStep:       1,
		userTimeStep:   1,
		targetSpeed:    SecondsPerDay,
		useTargetSpeed: true,
		stepsUntilUpd:  minStepsUntilUpdate,
		commands:       make(chan command, commandQueueSize),
	}
	if d.threads < 1 {
		d.threads = 1
	}
	return d
}

// State returns the driver's current lifecycle state.
func (d *Driver) State() State {
	d.stateMu.Lock()
	defer d.stateMu.Unlock()
	return d.state
}

// Snapshot returns a clone of the most recently published body list.
// Safe for concurrent use with a running driver.
func (d *Driver) Snapshot() Snapshot {
	d.snapMu.Lock()
	defer d.snapMu.Unlock()
	return d.snapshot.Clone()
}

// Parameters returns a consistent view of the control surface.
func (d *Driver) Parameters() Parameters {
	d.paramMu.RLock()
	defer d.paramMu.RUnlock()
	return Parameters{
		TargetSpeed:    d.targetSpeed,
		TimeStep:       d.timeStep,
		UseTargetSpeed: d.useTargetSpeed,
		Method:         d.method,
		NumThreads:     d.threads,
		IsRunning:      d.isRunning,
		IterationSpeed: d.iterationSpeed,
		TimeElapsed:    d.timeElapsed,
		JulianDate:     julianDate(d.cfg.EpochStart, d.timeElapsed),
	}
}

// Start transitions Stopped -> Running. It is a no-op if already
// running, and fails without changing state if fewer than two bodies
// are present.
func (d *Driver) Start() error {
	d.stateMu.Lock()
	defer d.stateMu.Unlock()
	if d.state == Running {
		return nil
	}

	d.bodiesMu.Lock()
	n := len(d.bodies)
	d.bodiesMu.Unlock()
	if n < 2 {
		return ErrTooFewBodies
	}

	d.paramMu.Lock()
	d.isRunning = true
	d.paramMu.Unlock()

	d.state = Running
	d.wg.Add(1)
	go d.run()
	return nil
}

// Stop requests a transition to Stopped, applied at the next epoch
// boundary. It returns immediately; poll State() to observe the
// transition complete, or call Join to block until the physics
// goroutine has fully exited.
func (d *Driver) Stop() {
	d.enqueue(command{kind: cmdSetRunning, running: false})
}

// Join blocks until the physics goroutine started by Start has
// returned. It is a no-op if the driver was never started, or has
// already fully stopped. Callers that want a clean shutdown call Stop
// followed by Join.
func (d *Driver) Join() {
	d.wg.Wait()
}

// AddBody appends a body to the working list. This is only
// meaningful while Stopped; it returns an error if the driver is
// Running, since the working list has a single writer while stepping.
func (d *Driver) AddBody(b Body) error {
	if d.State() == Running {
		return errors.New("cannot add a body while running")
	}
	d.bodiesMu.Lock()
	defer d.bodiesMu.Unlock()
	d.bodies = append(d.bodies, b)
	return nil
}

// MultiplyTargetSpeed scales target_speed by factor.
func (d *Driver) MultiplyTargetSpeed(factor float64) {
	d.enqueue(command{kind: cmdScaleTargetSpeed, factor: factor})
}

// MultiplyTimeStep scales the user-commanded time_step by factor;
// only observed while use_target_speed is false.
func (d *Driver) MultiplyTimeStep(factor float64) {
	d.enqueue(command{kind: cmdScaleTimeStep, factor: factor})
}

// SetMethod sets the integration method.
func (d *Driver) SetMethod(m Method) {
	d.enqueue(command{kind: cmdSetMethod, method: m})
}

// SetThreads sets num_threads; values below 1 are clamped to 1.
func (d *Driver) SetThreads(n int) {
	d.enqueue(command{kind: cmdSetThreads, threads: n})
}

// ToggleUseTargetSpeed flips use_target_speed.
func (d *Driver) ToggleUseTargetSpeed() {
	d.enqueue(command{kind: cmdToggleUseTargetSpeed})
}

// Parent reports the likely gravitational primary of the body
// identified by id, using the most recently published snapshot. It
// returns false if id is unknown or has no plausible parent.
func (d *Driver) Parent(id uuid.UUID) (Body, bool) {
	snap := d.Snapshot()
	var child Body
	found := false
	for _, b := range snap {
		if b.ID == id {
			child = b
			found = true
			break
		}
	}
	if !found {
		return Body{}, false
	}
	return classifyParent(snap, child)
}

// enqueue applies a command immediately if the driver is Stopped (no
// goroutine is around to reconcile it), or queues it for the next
// epoch boundary otherwise.
func (d *Driver) enqueue(c command) {
	if d.State() != Running {
		d.applyCommand(c)
		return
	}
	d.commands <- c
}

func (d *Driver) applyCommand(c command) (methodChanged bool) {
	d.paramMu.Lock()
	defer d.paramMu.Unlock()
	switch c.kind {
	case cmdSetRunning:
		d.isRunning = c.running
	case cmdScaleTargetSpeed:
		d.targetSpeed *= c.factor
	case cmdScaleTimeStep:
		d.userTimeStep *= c.factor
	case cmdSetMethod:
		if c.method != d.method {
			d.method = c.method
			methodChanged = true
		}
	case cmdSetThreads:
		n := c.threads
		if n < 1 {
			n = 1
		}
		if n != d.threads {
			d.threads = n
			methodChanged = true
		}
	case cmdToggleUseTargetSpeed:
		d.useTargetSpeed = !d.useTargetSpeed
	}
	return methodChanged
}

// run is the driver's physics goroutine: one cadence epoch per
// iteration of the outer loop, until told to stop or the body count
// drops below two.
func (d *Driver) run() {
	defer d.wg.Done()
	defer func() {
		d.stateMu.Lock()
		d.state = Stopped
		d.stateMu.Unlock()
		d.paramMu.Lock()
		d.isRunning = false
		d.paramMu.Unlock()
	}()

	coeffs := d.currentCoefficients()

	for {
		d.bodiesMu.Lock()
		n := len(d.bodies)
		d.bodiesMu.Unlock()
		if n < 2 {
			return
		}

		steps := d.stepsUntilUpdate()
		start := time.Now()
		degenerate := false
		for i := 0; i < steps; i++ {
			if err := d.stepOnce(coeffs); err != nil {
				if errors.Is(err, ErrTooFewBodies) {
					degenerate = true
				}
				break
			}
		}
		elapsed := time.Since(start).Seconds()

		d.publishSnapshot()
		d.retuneCadence(elapsed, steps)

		methodChanged := d.reconcileCommands()
		if methodChanged {
			coeffs = d.currentCoefficients()
		}

		if degenerate || !d.isRunningNow() {
			return
		}
	}
}

func (d *Driver) currentCoefficients() []coefficient {
	d.paramMu.RLock()
	m := d.method
	d.paramMu.RUnlock()
	if m.IsRK4() {
		return nil
	}
	return symplecticCoefficients(m.symplecticOrder)
}

func (d *Driver) stepsUntilUpdate() int {
	d.paramMu.RLock()
	defer d.paramMu.RUnlock()
	return d.stepsUntilUpd
}

func (d *Driver) isRunningNow() bool {
	d.paramMu.RLock()
	defer d.paramMu.RUnlock()
	return d.isRunning
}

// stepOnce advances the working list by one dt using the driver's
// current method, merging and retrying on collision. It returns
// ErrTooFewBodies if a merge leaves fewer than two bodies.
func (d *Driver) stepOnce(coeffs []coefficient) error {
	d.bodiesMu.Lock()
	defer d.bodiesMu.Unlock()

	d.paramMu.RLock()
	dt := d.timeStep
	g := d.g
	isRK4 := coeffs == nil
	d.paramMu.RUnlock()

	if isRK4 {
		for {
			next, err := rk4Step(d.bodies, dt, g)
			if err == nil {
				d.bodies = next
				return nil
			}
			var ce *CollisionError
			if !errors.As(err, &ce) {
				return err
			}
			if err := d.mergeAt(ce.I, ce.J); err != nil {
				return err
			}
		}
	}

	for _, stage := range coeffs {
		if stage.C != 0 {
			for i := range d.bodies {
				d.bodies[i].Position = d.bodies[i].Position.Add(d.bodies[i].Velocity.Scale(stage.C * dt))
			}
		}
		if stage.D == 0 {
			continue
		}
		for {
			accel, err := d.kick(g)
			if err == nil {
				for i := range d.bodies {
					d.bodies[i].Velocity = d.bodies[i].Velocity.Add(accel[i].Scale(stage.D * dt))
					d.bodies[i].Acceleration = accel[i]
				}
				break
			}
			var ce *CollisionError
			if !errors.As(err, &ce) {
				return err
			}
			if err := d.mergeAt(ce.I, ce.J); err != nil {
				return err
			}
		}
	}
	return nil
}

// mergeAt resolves a collision in place on d.bodies and logs it. The
// caller must hold bodiesMu.
func (d *Driver) mergeAt(i, j int) error {
	merged, sv := resolveCollision(d.bodies, i, j)
	d.bodies = merged
	notice(d.logger,
		"subsys", "collision",
		"absorbed", sv.AbsorbedName, "absorbed_id", sv.AbsorbedID,
		"survivor", sv.SurvivorName, "survivor_id", sv.SurvivorID,
	)
	if len(d.bodies) < 2 {
		return ErrTooFewBodies
	}
	return nil
}

// kick dispatches the pairwise force kernel over the current working
// list, either serially or sharded across goroutines via errgroup,
// per the driver's current thread count. The caller must hold
// bodiesMu.
func (d *Driver) kick(g float64) ([]Vector3, error) {
	d.paramMu.RLock()
	threads := d.threads
	d.paramMu.RUnlock()

	n := len(d.bodies)
	if threads <= 1 {
		return accelerations(d.bodies, fullFence(n), g)
	}

	fences := partitionPairs(n, threads)
	if len(fences) <= 1 {
		return accelerations(d.bodies, fullFence(n), g)
	}

	partials := make([][]Vector3, len(fences))
	collisions := make([]*CollisionError, len(fences))

	var eg errgroup.Group
	for idx, fence := range fences {
		idx, fence := idx, fence
		eg.Go(func() error {
			accel, err := accelerations(d.bodies, fence, g)
			if err != nil {
				var ce *CollisionError
				if errors.As(err, &ce) {
					collisions[idx] = ce
					return nil
				}
				return err
			}
			partials[idx] = accel
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	// First worker index wins when more than one shard collides.
	for _, ce := range collisions {
		if ce != nil {
			return nil, ce
		}
	}

	out := make([]Vector3, n)
	for _, partial := range partials {
		for i, v := range partial {
			out[i] = out[i].Add(v)
		}
	}
	return out, nil
}

func fullFence(n int) PairFence {
	if n < 2 {
		return PairFence{}
	}
	return PairFence{Start: PairIndex{I: 0, J: 1}, End: PairIndex{I: n - 2, J: n - 1}}
}

// publishSnapshot clones the working list into the shared snapshot
// buffer.
func (d *Driver) publishSnapshot() {
	d.bodiesMu.Lock()
	clone := make(Snapshot, len(d.bodies))
	copy(clone, d.bodies)
	d.bodiesMu.Unlock()

	d.snapMu.Lock()
	d.snapshot = clone
	d.snapMu.Unlock()
}

// retuneCadence measures throughput, recomputes steps_until_update,
// and adapts dt/target_speed.
func (d *Driver) retuneCadence(wallElapsed float64, stepsTaken int) {
	d.paramMu.Lock()
	defer d.paramMu.Unlock()

	var speed float64
	if wallElapsed <= 0 {
		d.stepsUntilUpd *= 2
		speed = float64(stepsTaken)
	} else {
		speed = float64(stepsTaken) / wallElapsed
		next := int(math.Round(speed / d.cfg.Framerate))
		if next < minStepsUntilUpdate {
			next = minStepsUntilUpdate
		}
		d.stepsUntilUpd = next
	}
	d.iterationSpeed = speed

	// Simulated time accrued during the steps just taken, at the dt
	// that was actually in effect for them.
	d.timeElapsed += float64(stepsTaken) * d.timeStep

	if d.useTargetSpeed {
		if speed > 0 {
			d.timeStep = d.targetSpeed / speed
		}
	} else {
		d.timeStep = d.userTimeStep
		d.targetSpeed = d.timeStep * speed
	}
}

// reconcileCommands drains pending commands and applies them. It
// reports whether the method or thread count changed, which
// invalidates the cached symplectic coefficient table.
func (d *Driver) reconcileCommands() (methodChanged bool) {
	for {
		select {
		case c := <-d.commands:
			if d.applyCommand(c) {
				methodChanged = true
			}
		default:
			return methodChanged
		}
	}
}
