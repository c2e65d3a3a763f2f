// Package data provides constructors for Gosling data-source descriptors:
// plain tagged maps naming the source kind and location. No validation
// happens here beyond the type tag; the renderer resolves the source.
package data

// Source is a tagged data-source descriptor, e.g.
// {"type": "csv", "url": "...", ...options}.
type Source = map[string]any

func source(typ, url string, opts map[string]any) Source {
	s := Source{"type": typ, "url": url}
	for k, v := range opts {
		s[k] = v
	}
	return s
}

// CSV describes a delimited text source.
func CSV(url string, opts map[string]any) Source { return source("csv", url, opts) }

// BigWig describes a bigWig signal source.
func BigWig(url string, opts map[string]any) Source { return source("bigwig", url, opts) }

// JSON describes an inline or remote JSON source.
func JSON(url string, opts map[string]any) Source { return source("json", url, opts) }

// BedDB describes a beddb annotation source.
func BedDB(url string, opts map[string]any) Source { return source("beddb", url, opts) }

// Vector describes a 1D vector tileset source.
func Vector(url string, opts map[string]any) Source { return source("vector", url, opts) }

// MultiVec describes a multi-sample vector tileset source.
func MultiVec(url string, opts map[string]any) Source { return source("multivec", url, opts) }

// BAM describes an alignment source.
func BAM(url string, opts map[string]any) Source { return source("bam", url, opts) }

// Matrix describes a contact-matrix source.
func Matrix(url string, opts map[string]any) Source { return source("matrix", url, opts) }
