package components

import "github.com/yohamta/donburi"

// Animator is the animation collaborator. Implementations drive clips.
type Animator interface {
	SetTrigger(name string)
	SetBool(name string, value bool)
	Play(clip string)
}

// ImpactReporter is implemented by animators that call systems.AttackHit
// on their own impact frames.
type ImpactReporter interface {
	ReportsImpacts() bool
}

// ReportsImpacts reports whether a confirms hits itself.
func ReportsImpacts(a Animator) bool {
	r, ok := a.(ImpactReporter)
	return ok && r.ReportsImpacts()
}

// AnimationData wraps an optional Animator. Every method is a no-op when no
// animator is attached.
type AnimationData struct {
	Animator    Animator
	CurrentClip string
}

func (a *AnimationData) Trigger(name string) {
	if a == nil || a.Animator == nil || name == "" {
		return
	}
	a.Animator.SetTrigger(name)
}

func (a *AnimationData) SetBool(name string, value bool) {
	if a == nil || a.Animator == nil {
		return
	}
	a.Animator.SetBool(name, value)
}

// Play starts clip unless it is already the current clip.
func (a *AnimationData) Play(clip string) {
	if a == nil || a.Animator == nil || clip == "" || a.CurrentClip == clip {
		return
	}
	a.CurrentClip = clip
	a.Animator.Play(clip)
}

var Animation = donburi.NewComponentType[AnimationData]()
