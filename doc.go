package gos

// Package gos provides:
//
// - A declarative builder API for Gosling visualization specifications (Track/PartialTrack/Root)
// - A schema table loaded from an embedded, versioned YAML document
// - Copy-on-write nodes: every builder operation returns a new value
// - Positional encoding-channel inference with explicit failure on ambiguity
// - A stable error model via Issues (JSON Pointer, code, message)
//
// Design policy:
// - Keep the core (schema, nodes, inference, serialization) in the root package.
// - Place data-source constructors under data/ and embedding under display/.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//  track := gos.NewTrack(data.BigWig(url, nil)).
//      MarkBar().
//      Encode(
//          gos.X(gos.Fields{"field": "position", "type": "genomic"}),
//          gos.Y(gos.Fields{"field": "peak", "type": "quantitative"}),
//      )
//  doc, err := track.Chart(gos.Fields{"title": "Example"}).Doc()
//
