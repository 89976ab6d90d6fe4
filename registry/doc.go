/*
Package registry holds component definitions by name.

The registry is the shared state of configuration loading: parsers check
for existing names, register auxiliary definitions, and look up definitions
referenced from configuration.

	reg := registry.New()
	if !reg.Contains("indexCreationHelper") {
	    _ = reg.Register("indexCreationHelper", def)
	}

Names are unique. Registering a taken name fails with an
AlreadyRegisteredError; looking up an unknown name fails with a
NoSuchDefinitionError. Aliases resolve to their target on lookup.

A registry is passed explicitly to whoever populates it; there is no
package-level instance. The in-memory implementation is thread-safe.
*/
package registry
