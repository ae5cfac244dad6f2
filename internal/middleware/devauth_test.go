//go:build !devauth

package middleware

import "testing"

// Release builds must never fabricate a viewer identity, credentials or
// not.
func TestDevViewerIDIsNoOpByDefault(t *testing.T) {
	if id := devViewerID(nil); id != "" {
		t.Fatalf("default build returned a dev identity: %q", id)
	}
}
