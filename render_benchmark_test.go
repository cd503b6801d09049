// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/formatdoc

package formatdoc

import (
	"os"
	"path/filepath"
	"testing"
)

// BenchmarkDecodeJSON measures ordered JSON decoding cost.
func BenchmarkDecodeJSON(b *testing.B) {
	benchmarkDecode(b, filepath.Join("testdata", "schema.fixture.json"))
}

// BenchmarkDecodeYAML measures ordered YAML decoding cost.
func BenchmarkDecodeYAML(b *testing.B) {
	benchmarkDecode(b, filepath.Join("testdata", "schema.fixture.yaml"))
}

// BenchmarkParseSchema measures node tree construction with reference resolution.
func BenchmarkParseSchema(b *testing.B) {
	decoded, err := Decode(readBenchmarkFile(b, filepath.Join("testdata", "schema.fixture.json")))
	if err != nil {
		b.Fatalf("Decode: %v", err)
	}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := ParseSchema(decoded); err != nil {
			b.Fatalf("ParseSchema: %v", err)
		}
	}
}

// BenchmarkRenderJSONExamples measures full in-memory render flow with json example blocks.
func BenchmarkRenderJSONExamples(b *testing.B) {
	benchmarkRender(b, Options{})
}

// BenchmarkRenderYAMLExamples measures full in-memory render flow with yaml example blocks.
func BenchmarkRenderYAMLExamples(b *testing.B) {
	benchmarkRender(b, Options{ExampleFormat: ExampleFormatYAML, ExampleMode: ExampleModeAll})
}

// BenchmarkRenderFile measures read + render flow from file path.
func BenchmarkRenderFile(b *testing.B) {
	schemaPath := filepath.Join("testdata", "schema.fixture.json")

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := RenderFile(schemaPath, Options{}); err != nil {
			b.Fatalf("RenderFile: %v", err)
		}
	}
}

// benchmarkDecode runs decode benchmark for one fixture.
func benchmarkDecode(b *testing.B, path string) {
	schemaBytes := readBenchmarkFile(b, path)

	b.ReportAllocs()
	b.SetBytes(int64(len(schemaBytes)))

	for i := 0; i < b.N; i++ {
		if _, err := Decode(schemaBytes); err != nil {
			b.Fatalf("Decode: %v", err)
		}
	}
}

// benchmarkRender runs common in-memory render benchmark.
func benchmarkRender(b *testing.B, options Options) {
	schemaBytes := readBenchmarkFile(b, filepath.Join("testdata", "schema.fixture.json"))

	b.ReportAllocs()
	b.SetBytes(int64(len(schemaBytes)))

	for i := 0; i < b.N; i++ {
		if _, err := Render(schemaBytes, options); err != nil {
			b.Fatalf("Render: %v", err)
		}
	}
}

// readBenchmarkFile loads benchmark fixture file and fails benchmark on read errors.
func readBenchmarkFile(b *testing.B, path string) []byte {
	b.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		b.Fatalf("read benchmark file %q: %v", path, err)
	}

	if len(data) == 0 {
		b.Fatalf("empty benchmark file: %s", path)
	}

	return data
}
