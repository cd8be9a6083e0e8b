package splash

import "log"

// Player plays a short sound.
type Player interface {
	Play()
}

// Layer is the splash as an overlay on the application content. It plays the
// collapse cue when the reveal starts and removes itself once it completes.
type Layer struct {
	seq  *Sequencer
	cue  Player
	done bool
}

// NewLayer takes over seq's OnEnter and OnFinished hooks. cue may be nil.
func NewLayer(seq *Sequencer, cue Player) *Layer {
	l := &Layer{seq: seq, cue: cue}
	seq.OnEnter = l.entered
	seq.OnFinished = l.finished
	return l
}

// Sequencer returns the layer's state machine.
func (l *Layer) Sequencer() *Sequencer { return l.seq }

// Done reports whether the splash has been removed and the content is
// fully uncovered.
func (l *Layer) Done() bool { return l.done }

// Draw renders the splash unless it has been removed.
func (l *Layer) Draw(c Canvas) {
	if l.done {
		return
	}
	l.seq.Draw(c)
}

func (l *Layer) entered(p Phase) {
	if p == Expanding && l.cue != nil {
		l.cue.Play()
	}
}

func (l *Layer) finished() {
	l.done = true
	l.seq.Detach()
	log.Printf("splash: layer removed")
}
