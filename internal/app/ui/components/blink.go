package components

import (
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
)

const (
	pulseEmpty = "◯"
	pulseFull  = "◉"

	pulseFPS = UITicksPerSecond

	// Spring physics parameters
	pulseAngularFrequency = 8.0
	pulseDampingRatio     = 0.7

	// Pulse pattern in UI ticks: ◉ on, then off while the spring settles
	pulseOnTicks  = 3
	pulseOffTicks = 7

	// Position threshold for switching the rendered frame
	pulseFrameThreshold = 0.3

	pulseTargetFull  = 1.0
	pulseTargetEmpty = 0.0
)

// Pulse animates the live-follow indicator with spring-smoothed blinking
type Pulse struct {
	spring    harmonica.Spring
	position  float64
	velocity  float64
	target    float64
	active    bool
	tickCount int
}

// NewPulse creates a new pulse animator
func NewPulse() *Pulse {
	return &Pulse{
		spring: harmonica.NewSpring(harmonica.FPS(pulseFPS), pulseAngularFrequency, pulseDampingRatio),
	}
}

// Start begins the pulsing animation
func (p *Pulse) Start() {
	p.active = true
}

// Stop ends the animation and resets to the empty frame
func (p *Pulse) Stop() {
	p.active = false
	p.target = pulseTargetEmpty
	p.position = pulseTargetEmpty
	p.velocity = 0
	p.tickCount = 0
}

// Update advances the animation by one UI tick
func (p *Pulse) Update() {
	if !p.active {
		return
	}

	p.tickCount++

	switch {
	case p.tickCount <= pulseOnTicks:
		p.target = pulseTargetFull
	case p.tickCount <= pulseOnTicks+pulseOffTicks:
		p.target = pulseTargetEmpty
	default:
		p.tickCount = 0
	}

	p.position, p.velocity = p.spring.Update(p.position, p.velocity, p.target)
}

// Frame returns the current frame based on the spring position
func (p *Pulse) Frame() string {
	if !p.active || p.position < pulseFrameThreshold {
		return pulseEmpty
	}

	return pulseFull
}

// Render returns the styled frame
func (p *Pulse) Render(style lipgloss.Style) string {
	return style.Render(p.Frame())
}

// IsActive returns whether the animation is currently running
func (p *Pulse) IsActive() bool {
	return p.active
}
