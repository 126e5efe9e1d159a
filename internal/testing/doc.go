// Package testing contains the scenario harness shared by container tests.
//
// Scenarios are YAML operation scripts: a starting capacity and a list of
// steps, each optionally asserting the resulting capacity, load and exact
// slot layout. Keeping them as data lets layout fixtures be reviewed next to
// the home-bucket table they were derived from.
package testing

const (
	// emptySlot is how an empty table slot is written in a layout.
	emptySlot = ""
)

// testFilePermissions is the permission mode for fixture files written by tests.
const testFilePermissions = 0o600
