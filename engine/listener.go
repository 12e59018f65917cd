package engine

import "github.com/go-gl/mathgl/mgl64"

// Listener receives scene events synchronously from Update and Dispatch
// Handlers run on the frame loop goroutine and must not block
type Listener interface {
	// OnLaunch fires after the projectile leaves the rod
	OnLaunch(distance, angle float64)

	// OnSplash fires on the step the projectile reaches the water
	OnSplash(position mgl64.Vec3)

	// OnCatch fires once per hooked fish, position is where the lure lay
	OnCatch(actorID int, position mgl64.Vec3)
}

// Listeners fans events out in registration order
type Listeners []Listener

func (ls Listeners) OnLaunch(distance, angle float64) {
	for _, l := range ls {
		l.OnLaunch(distance, angle)
	}
}

func (ls Listeners) OnSplash(position mgl64.Vec3) {
	for _, l := range ls {
		l.OnSplash(position)
	}
}

func (ls Listeners) OnCatch(actorID int, position mgl64.Vec3) {
	for _, l := range ls {
		l.OnCatch(actorID, position)
	}
}

// ListenerFuncs adapts optional callbacks to Listener, nil fields are skipped
type ListenerFuncs struct {
	Launch func(distance, angle float64)
	Splash func(position mgl64.Vec3)
	Catch  func(actorID int, position mgl64.Vec3)
}

func (f ListenerFuncs) OnLaunch(distance, angle float64) {
	if f.Launch != nil {
		f.Launch(distance, angle)
	}
}

func (f ListenerFuncs) OnSplash(position mgl64.Vec3) {
	if f.Splash != nil {
		f.Splash(position)
	}
}

func (f ListenerFuncs) OnCatch(actorID int, position mgl64.Vec3) {
	if f.Catch != nil {
		f.Catch(actorID, position)
	}
}
