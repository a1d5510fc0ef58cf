package domain

import (
	"math"
	"unicode/utf8"
)

// Default badge colours.
const (
	DefaultLeftColor  = "#555"
	DefaultRightColor = "#4c1"
)

// Badge geometry, shields.io "flat" style.
const (
	BadgeHeight        = 20
	badgeCharWidth     = 6.5
	badgeSegmentPad    = 10
	badgeMinSegmentLen = 20
)

// Badge is a two-segment label/value badge.
type Badge struct {
	LeftText   string
	RightText  string
	LeftColor  string
	RightColor string
}

// Validate checks that both colours are set.
func (b Badge) Validate() error {
	if b.LeftColor == "" {
		return NewFormatError("left color", b.LeftColor, "must not be empty")
	}
	if b.RightColor == "" {
		return NewFormatError("right color", b.RightColor, "must not be empty")
	}
	return nil
}

// LeftWidth is the pixel width of the label segment.
func (b Badge) LeftWidth() int { return segmentWidth(b.LeftText) }

// RightWidth is the pixel width of the value segment.
func (b Badge) RightWidth() int { return segmentWidth(b.RightText) }

// Width is the total badge width.
func (b Badge) Width() int { return b.LeftWidth() + b.RightWidth() }

// LeftCenter is the x coordinate the label text is anchored on.
func (b Badge) LeftCenter() float64 { return float64(b.LeftWidth()) / 2 }

// RightCenter is the x coordinate the value text is anchored on.
func (b Badge) RightCenter() float64 {
	return float64(b.LeftWidth()) + float64(b.RightWidth())/2
}

// segmentWidth approximates Verdana 11px glyph widths.
func segmentWidth(text string) int {
	w := int(math.Round(float64(utf8.RuneCountInString(text))*badgeCharWidth)) + badgeSegmentPad
	if w < badgeMinSegmentLen {
		return badgeMinSegmentLen
	}
	return w
}
