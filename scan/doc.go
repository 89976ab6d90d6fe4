/*
Package scan finds persistent entity types for a mapping context.

Go has no annotations, so entity types are flagged with a directive in the
type's doc comment:

	//mongo:document
	type Person struct {
	    ID   string
	    Name string
	}

	//mapping:persistent
	type Address struct {
	    Street string
	}

PackageScanner loads a base package and its subpackages with
golang.org/x/tools/go/packages and reads the directives from source.
StaticScanner serves the same query from registrations made at init time,
for binaries that ship without source.

Both return fully-qualified names of the form "importpath.TypeName".
*/
package scan
