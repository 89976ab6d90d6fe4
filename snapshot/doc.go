/*
Package snapshot captures a registry as plain data.

A Snapshot lists every definition in registration order with its aliases,
type, role and rendered values, so it can be printed as YAML or JSON or
kept in a Store:

	snap, err := snapshot.FromRegistry(reg, "beans.xml")
	if err != nil {
	    return err
	}
	out, _ := snap.YAML()

Store implementations live in the ddb and mock subpackages.
*/
package snapshot
