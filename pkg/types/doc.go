// Package types defines the shared public surface of gmskit: the typed
// error taxonomy used by every package, and the small identifier types
// that cross package boundaries.
//
// Error handling follows a two-layer model. This package defines stable
// categories (ErrKind) and sentinel values; packages that fail wrap the
// sentinels with site-specific context, so callers can branch with
// errors.Is on intent rather than on message text:
//
//	if errors.Is(err, types.ErrTypeNotFound) {
//	    // the type database is missing a declaration
//	}
package types
