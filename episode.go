// Package episode generates JAXB episode files for separate compilation.
//
// A run takes the host compiler's outline of generated classes and enums,
// groups the global schema declarations they were mapped from by owning
// schema, and writes one binding customization per generated type. The
// resulting document tells a later compilation that the types already
// exist, so dependent schemas can reuse them instead of regenerating them.
// Runs optionally also emit a package-to-namespace properties file and an
// XML catalog of the compiled schemas.
package episode
