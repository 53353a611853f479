package features

import "strconv"

// Pair mirrors one quantity between a numeric text field and a range slider.
type Pair struct {
    Field  Field
    Text   string
    Slider float64
}

func NewPair(f Field) *Pair {
    return &Pair{Field: f, Text: FormatNumber(f.Default), Slider: f.Default}
}

// Slide moves the slider and copies its value into the text field. A range
// control cannot leave its bounds, so v is clamped first.
func (p *Pair) Slide(v float64) {
    if v < p.Field.Min { v = p.Field.Min }
    if v > p.Field.Max { v = p.Field.Max }
    p.Slider = v
    p.Text = FormatNumber(v)
}

// Type stores text in the field and moves the slider only when text is a
// number inside the slider's range. It reports whether the slider moved.
func (p *Pair) Type(text string) bool {
    p.Text = text
    v, ok := ParseNumber(text)
    if !ok || !p.Field.Contains(v) {
        return false
    }
    p.Slider = v
    return true
}

// Panel holds the synchronized pairs of the manual form.
type Panel struct {
    pairs []*Pair
    byID  map[string]*Pair
}

// NewPanel wires one independent pair per field.
func NewPanel(fields []Field) *Panel {
    p := &Panel{byID: make(map[string]*Pair, len(fields))}
    for _, f := range fields {
        pair := NewPair(f)
        p.pairs = append(p.pairs, pair)
        p.byID[f.ID] = pair
    }
    return p
}

func (p *Panel) Pairs() []*Pair { return p.pairs }

func (p *Panel) Pair(id string) (*Pair, bool) {
    pair, ok := p.byID[id]
    return pair, ok
}

// Text returns the current text of field id, or "" for unknown ids.
func (p *Panel) Text(id string) string {
    if pair, ok := p.byID[id]; ok { return pair.Text }
    return ""
}

func FormatNumber(v float64) string {
    return strconv.FormatFloat(v, 'f', -1, 64)
}
