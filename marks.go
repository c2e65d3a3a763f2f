package gos

// Mark setters. Each returns a copy of the receiver with the mark field set
// to the corresponding literal from the schema's mark enum.

func (t Track) MarkBar() Track { return t.mark("bar") }

func (t Track) MarkPoint() Track { return t.mark("point") }

func (t Track) MarkLine() Track { return t.mark("line") }

func (t Track) MarkArea() Track { return t.mark("area") }

func (t Track) MarkRect() Track { return t.mark("rect") }

func (t Track) MarkText() Track { return t.mark("text") }

func (t Track) MarkRule() Track { return t.mark("rule") }

func (t Track) MarkLink() Track { return t.mark("link") }

func (t Track) MarkTriangleLeft() Track { return t.mark("triangleLeft") }

func (t Track) MarkTriangleRight() Track { return t.mark("triangleRight") }

func (t Track) MarkBrush() Track { return t.mark("brush") }

func (t PartialTrack) MarkBar() PartialTrack { return t.mark("bar") }

func (t PartialTrack) MarkPoint() PartialTrack { return t.mark("point") }

func (t PartialTrack) MarkLine() PartialTrack { return t.mark("line") }

func (t PartialTrack) MarkArea() PartialTrack { return t.mark("area") }

func (t PartialTrack) MarkRect() PartialTrack { return t.mark("rect") }

func (t PartialTrack) MarkText() PartialTrack { return t.mark("text") }

func (t PartialTrack) MarkRule() PartialTrack { return t.mark("rule") }

func (t PartialTrack) MarkLink() PartialTrack { return t.mark("link") }

func (t PartialTrack) MarkBrush() PartialTrack { return t.mark("brush") }
