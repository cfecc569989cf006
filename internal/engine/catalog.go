package engine

import (
	"github.com/andyxwarren/factory-architect-sub002/internal/curriculum"
	"github.com/andyxwarren/factory-architect-sub002/internal/difficulty"
	"github.com/andyxwarren/factory-architect-sub002/internal/format"
	"github.com/andyxwarren/factory-architect-sub002/internal/mathmodel"
)

// ModelInfo describes one model for catalog listings.
type ModelInfo struct {
	ID            string   `json:"id"`
	DefaultFormat string   `json:"default_format"`
	Formats       []string `json:"formats"`
}

// FormatInfo describes one question format for catalog listings.
type FormatInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// LevelInfo is one row of a model's difficulty progression.
type LevelInfo struct {
	Level         string           `json:"level"`
	Params        mathmodel.Params `json:"params"`
	CognitiveLoad difficulty.Load  `json:"cognitive_load"`
}

// Models lists every registered model with the formats it supports.
func (o *Orchestrator) Models() []ModelInfo {
	ids := o.deps.Models.IDs()
	out := make([]ModelInfo, 0, len(ids))
	for _, id := range ids {
		info := ModelInfo{
			ID:            string(id),
			DefaultFormat: string(format.DefaultFormatFor(id)),
		}
		for _, f := range o.formats.Formats() {
			s, err := o.formats.Get(f)
			if err != nil || !s.Supports(id) {
				continue
			}
			info.Formats = append(info.Formats, string(f))
		}
		out = append(out, info)
	}
	return out
}

// Formats lists every registered question format with its display name.
func (o *Orchestrator) Formats() []FormatInfo {
	fs := o.formats.Formats()
	out := make([]FormatInfo, 0, len(fs))
	for _, f := range fs {
		out = append(out, FormatInfo{ID: string(f), Name: f.DisplayName()})
	}
	return out
}

// Levels returns the full 24-level progression for one model,
// including the derived cognitive load per level.
func (o *Orchestrator) Levels(modelID string) ([]LevelInfo, error) {
	op := mathmodel.Operation(modelID)
	if _, err := o.deps.Models.Get(op); err != nil {
		return nil, &format.ValidationError{Field: "model", Message: err.Error()}
	}
	levels := curriculum.AllLevels()
	out := make([]LevelInfo, 0, len(levels))
	for _, l := range levels {
		params, err := o.deps.Resolver.Resolve(op, l)
		if err != nil {
			return nil, err
		}
		out = append(out, LevelInfo{
			Level:         l.String(),
			Params:        params,
			CognitiveLoad: o.deps.Resolver.CognitiveLoad(op, params),
		})
	}
	return out, nil
}
