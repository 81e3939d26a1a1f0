// Package backdrop mounts the animated particle scene onto a host element and tears it down
package backdrop

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/lixenwraith/backdrop/audio"
	"github.com/lixenwraith/backdrop/constant"
	"github.com/lixenwraith/backdrop/engine"
	"github.com/lixenwraith/backdrop/host"
	"github.com/lixenwraith/backdrop/input"
	"github.com/lixenwraith/backdrop/scene"
	"github.com/lixenwraith/backdrop/surface"
)

var (
	// ErrNoRenderer is returned when Options carries no renderer factory or the factory yields none
	ErrNoRenderer = errors.New("no renderer factory")

	// ErrNoHost is returned when mounting without a host or container
	ErrNoHost = errors.New("no host or container")
)

// State is the lifecycle position of a Backdrop
type State uint8

const (
	Unmounted State = iota
	Mounted
)

func (s State) String() string {
	if s == Mounted {
		return "mounted"
	}
	return "unmounted"
}

// Options configures a mount
type Options struct {
	// Seed drives particle and ornament placement, zero seeds from the clock
	Seed int64

	// NewRenderer acquires the drawing surface
	NewRenderer surface.Factory

	// Ambience is started on mount and stopped on dispose when set; the caller owns it
	Ambience *audio.Ambience
}

// Backdrop is one mounted instance; all scene state is owned here
// Not safe for concurrent use, drive it from the host goroutine
type Backdrop struct {
	host      *host.Host
	container *host.Element
	renderer  surface.Renderer
	graph     *scene.Graph
	pointer   *input.Controller
	loop      *engine.Loop
	ambience  *audio.Ambience
	resources engine.ResourceSet
	listeners []host.ListenerID
	state     State
}

// Mount builds the scene, attaches the renderer under container, subscribes to host events
// and starts the frame loop; the first frame renders before Mount returns
// On error nothing is attached and no listener is registered
func Mount(h *host.Host, container *host.Element, opts Options) (*Backdrop, error) {
	if h == nil || container == nil {
		return nil, fmt.Errorf("mount backdrop: %w", ErrNoHost)
	}
	if opts.NewRenderer == nil {
		return nil, fmt.Errorf("mount backdrop: %w", ErrNoRenderer)
	}

	vp := h.Viewport()
	renderer, err := opts.NewRenderer(vp)
	if err != nil {
		return nil, fmt.Errorf("mount backdrop: create renderer: %w", err)
	}
	if renderer == nil {
		return nil, fmt.Errorf("mount backdrop: create renderer: %w", ErrNoRenderer)
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	b := &Backdrop{
		host:      h,
		container: container,
		pointer:   input.NewController(),
		ambience:  opts.Ambience,
	}

	// Released in reverse: ornament meshes, particle fields, renderer
	b.renderer = engine.Track(&b.resources, renderer)
	b.renderer.SetSize(vp.Width, vp.Height)
	b.renderer.SetPixelRatio(min(vp.DevicePixelRatio, constant.MaxPixelRatio))

	b.graph = scene.NewGraph(rand.New(rand.NewSource(seed)), vp.Aspect())
	for _, f := range b.graph.Fields {
		engine.Track(&b.resources, f)
	}
	for _, o := range b.graph.Ornaments {
		engine.Track(&b.resources, o.Mesh)
	}

	container.AppendChild(b.renderer)
	b.listeners = append(b.listeners,
		h.AddEventListener(host.EventPointerMove, b.onPointerMove),
		h.AddEventListener(host.EventResize, b.onResize),
	)

	if b.ambience != nil {
		if err := b.ambience.Start(); err != nil {
			log.Printf("backdrop: ambience unavailable: %v", err)
		}
	}

	b.state = Mounted
	log.Printf("backdrop: mounted %s seed=%d viewport=%dx%d@%.2f particles=%d",
		renderer.NodeName(), seed, vp.Width, vp.Height, vp.DevicePixelRatio, b.graph.ParticleCount())

	b.loop = engine.NewLoop(h.Frames(), b.step)
	b.loop.Start(h.Now())
	return b, nil
}

// step advances the simulation by one frame and draws it
func (b *Backdrop) step(now time.Time) {
	for _, f := range b.graph.Fields {
		f.Advance()
	}
	for i, o := range b.graph.Ornaments {
		o.Advance(i, now)
	}

	cam := b.graph.Camera
	cam.Follow(b.pointer.Target())
	cam.LookAt(scene.Origin)

	b.renderer.Render(b.graph)

	if b.ambience != nil {
		b.ambience.SetPan(cam.Position.X)
	}
}

func (b *Backdrop) onPointerMove(ev host.Event) {
	b.pointer.OnPointerMove(ev.ClientX, ev.ClientY, float64(ev.Viewport.Width), float64(ev.Viewport.Height))
}

func (b *Backdrop) onResize(ev host.Event) {
	vp := ev.Viewport
	b.graph.Camera.SetAspect(vp.Aspect())
	b.renderer.SetSize(vp.Width, vp.Height)
	b.renderer.SetPixelRatio(min(vp.DevicePixelRatio, constant.MaxPixelRatio))
}

// Dispose stops the loop, unsubscribes, detaches the renderer and releases every buffer
// Safe to call more than once
func (b *Backdrop) Dispose() {
	if b.state != Mounted {
		return
	}
	b.loop.Stop()

	for _, id := range b.listeners {
		b.host.RemoveEventListener(id)
	}
	b.listeners = nil

	if err := b.container.RemoveChild(b.renderer); err != nil {
		log.Printf("backdrop: detach: %v", err)
	}
	if b.ambience != nil {
		b.ambience.Stop()
	}

	released := b.resources.Release()
	events := b.pointer.Events()
	b.pointer.Reset()
	b.state = Unmounted
	log.Printf("backdrop: disposed after %d frames and %d pointer moves, released %d resources",
		b.loop.Ticks(), events, released)
}

// State returns the lifecycle state
func (b *Backdrop) State() State {
	return b.state
}

// Graph exposes the scene for inspection
func (b *Backdrop) Graph() *scene.Graph {
	return b.graph
}

// Renderer returns the attached surface
func (b *Backdrop) Renderer() surface.Renderer {
	return b.renderer
}

// Pointer returns the interaction controller
func (b *Backdrop) Pointer() *input.Controller {
	return b.pointer
}

// Frames returns the number of rendered frames
func (b *Backdrop) Frames() uint64 {
	return b.loop.Ticks()
}
