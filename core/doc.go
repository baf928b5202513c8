// Package core contains the business logic for the VidExtract API.
// It is framework-agnostic and can be used independently of any web
// framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
//   - domain: pure domain models (Platform, Metadata, RGBColor)
//   - resolver: turns raw user input into typed platform identifiers
//   - fetch: platform-aware page retrieval with request profiles and retry
//   - extract: per-platform metadata extraction from page bodies
//   - tags: tag validation and synthesis
//   - thumbnail: YouTube thumbnail quality ladder
//   - alternate: external metadata services (fxtwitter, oEmbed)
//   - services: orchestration tying the pipeline together
//   - errors: custom error types with user-facing guidance
//   - interfaces: contracts for external dependencies (cache, HTTP, logger)
//
// All external dependencies are injected via interfaces, so the pipeline
// is testable without network or storage backends.
package core
