// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package view

// Responsive breakpoints, in CSS pixels.
const (
	MobileBreakpoint = 768
	TabletBreakpoint = 1024
)

// Scroll step per click, in CSS pixels.
const (
	FeaturedStepMobile  = 280
	FeaturedStepTablet  = 400
	FeaturedStepDesktop = 520
	OtherStep           = 350
)

// FeaturedStep returns the featured carousel step for a viewport width.
func FeaturedStep(viewport int) int {
	switch {
	case viewport < MobileBreakpoint:
		return FeaturedStepMobile
	case viewport < TabletBreakpoint:
		return FeaturedStepTablet
	}
	return FeaturedStepDesktop
}

// Carousel describes one product carousel for the page script.
type Carousel struct {
	ID string

	// Fixed step for every viewport; zero when Responsive is set.
	Step int

	// Responsive carousels use FeaturedStep.
	Responsive bool

	// AlwaysShowButtons shows both buttons regardless of scroll position.
	// Otherwise the page script shows a button only while the track can
	// still scroll that way.
	AlwaysShowButtons bool
}

// Breakpoints are the viewport widths where the step band changes. The
// page script picks band i for the first breakpoint the viewport is under.
func (c Carousel) Breakpoints() [2]int {
	return [2]int{MobileBreakpoint, TabletBreakpoint}
}

// Steps lists the step per breakpoint band: mobile, tablet, desktop.
func (c Carousel) Steps() [3]int {
	if !c.Responsive {
		return [3]int{c.Step, c.Step, c.Step}
	}
	bp := c.Breakpoints()
	return [3]int{FeaturedStep(0), FeaturedStep(bp[0]), FeaturedStep(bp[1])}
}
