package debugview

import "log"

// TriggerLog is an animator with no clips. It logs what it is asked to play
// when verbose, and reports no impact frames, so the controllers confirm
// their own hits.
type TriggerLog struct {
	Name    string
	Verbose bool
}

func (a *TriggerLog) SetTrigger(name string) {
	if a.Verbose {
		log.Printf("[anim] %s trigger %s", a.Name, name)
	}
}

func (a *TriggerLog) SetBool(name string, value bool) {}

func (a *TriggerLog) Play(clip string) {
	if a.Verbose {
		log.Printf("[anim] %s play %s", a.Name, clip)
	}
}
