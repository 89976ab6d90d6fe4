/*
Package mapperconfig loads XML component configuration for a document-store
mapping layer into a registry of component definitions.

The library follows a configure → load → inspect workflow:
  - Configure: declare beans and <mongo:mapping-converter> elements in XML
  - Load: read the documents into a registry, collecting problems
  - Inspect: render the registry as a snapshot or store it for later

Key Features:
  - Namespace handlers for custom configuration elements
  - Mapping converter setup with shared auxiliary definitions
  - Entity discovery from Go type directives (//mongo:document)
  - Problem collection with collect or fail-fast policies
  - Semantic error types for better error handling
  - Snapshot stores for DynamoDB and in-memory testing

Basic Usage:

	scanner := scan.NewPackageScanner(".")
	res, err := mapperconfig.LoadFile(ctx, "beans.xml", xmlconfig.WithScanner(scanner))
	if err != nil {
	    return err
	}
	if res.Problems.HasErrors() {
	    return res.Problems.Err()
	}
	conv, _ := res.Registry.Get("mappingConverter")

The beandump command in cmd/beandump wraps this for the shell.
*/
package mapperconfig
