package trace

// Player walks a Session one step at a time. Position 0 is "before the
// first step"; position len(Steps) is "after the last step".
type Player struct {
	session Session
	pos     int
}

// NewPlayer returns a Player positioned before the first step.
func NewPlayer(s Session) *Player {
	return &Player{session: s}
}

// Forward executes the next step. Returns false at the end.
func (p *Player) Forward() bool {
	if p.pos >= len(p.session.Steps) {
		return false
	}
	p.pos++
	return true
}

// Back undoes the last executed step. Returns false at the start.
func (p *Player) Back() bool {
	if p.pos <= 0 {
		return false
	}
	p.pos--
	return true
}

// ToEnd executes all remaining steps.
func (p *Player) ToEnd() {
	for p.Forward() {
	}
}

// ToStart undoes every executed step.
func (p *Player) ToStart() {
	for p.Back() {
	}
}

// Position returns the number of executed steps.
func (p *Player) Position() int { return p.pos }

// Current returns the most recently executed step, or false before the first.
func (p *Player) Current() (Step, bool) {
	if p.pos == 0 {
		return Step{}, false
	}
	return p.session.Steps[p.pos-1], true
}

// Vars returns the latest value of every variable as of the cursor,
// the way a variables pane shows program state.
func (p *Player) Vars() Vars {
	out := make(Vars)
	for _, st := range p.session.Steps[:p.pos] {
		for k, v := range st.Vars {
			out[k] = v
		}
	}
	return out
}

// Outputs returns the lines printed by executed steps, oldest first.
func (p *Player) Outputs() []string {
	var out []string
	for _, st := range p.session.Steps[:p.pos] {
		if st.Printed() {
			out = append(out, st.Output)
		}
	}
	return out
}
