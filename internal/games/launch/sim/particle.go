package sim

// Particle is a decorative fragment with a countdown lifetime.
type Particle struct {
	Body
	Color    string
	Size     float64
	Lifetime float64
	TimeLeft float64
}

// Update advances the particle and reports whether it is still alive.
func (p *Particle) Update(dt float64) bool {
	p.Body.Update(dt)
	p.TimeLeft -= dt
	return p.TimeLeft > 0
}

// Fade returns the remaining life fraction in [0, 1].
func (p *Particle) Fade() float64 {
	if p.Lifetime <= 0 {
		return 0
	}
	return max(p.TimeLeft/p.Lifetime, 0)
}
