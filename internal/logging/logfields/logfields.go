// Package logfields defines common logging fields which are used across packages
package logfields

const (
	// LogSubsys is the field denoting the subsystem when logging
	LogSubsys = "subsys"

	// File is a resource or input file name
	File = "file"

	// Package is a generated package name
	Package = "package"

	// Packages is a list of generated package names
	Packages = "packages"

	// Namespace is a schema target namespace
	Namespace = "namespace"

	// SCD is a schema component designator
	SCD = "scd"

	// Type is a fully qualified generated type name
	Type = "type"

	// Kind is a generated type or schema component kind
	Kind = "kind"

	// Groups is the number of binding groups
	Groups = "groups"

	// Bindings is the number of type bindings
	Bindings = "bindings"

	// Skipped is the number of excluded generated types
	Skipped = "skipped"
)
