package gos

// SchemaVersion is the gosling.js schema release the embedded table tracks.
const SchemaVersion = "v0.17.0"

// SchemaURL points at the upstream JSON Schema document the table is
// derived from.
const SchemaURL = "https://raw.githubusercontent.com/gosling-lang/gosling.js/" + SchemaVersion + "/src/gosling-schema/gosling.schema.json"
