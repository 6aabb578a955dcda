//go:build !debug

package tessellate

// auditAlternation is a no-op outside debug builds; see audit.go.
func (t *Tessellation) auditAlternation() {}
