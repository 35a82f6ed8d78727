// Package error provides structured error handling for pier.
//
// Package: error
// Title: pier Error Handling
// Description: Structured errors carrying a machine readable Code, the operation
//              that failed and free-form details. The registry, the config store
//              and the runner report every failure through this type so callers
//              can branch on the Code instead of matching message text.
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2025-03-02 v0.2.0: Reduced to the pier taxonomy, chain aware HasCode
//
// Usage:
//
//	import mdwerror "github.com/msto63/pier/foundation/core/error"
//
//	err := mdwerror.New("alias not found").
//		WithCode(mdwerror.CodeAliasNotFound).
//		WithOperation("registry.Fetch").
//		WithDetail("alias", "deploy")
//
//	if mdwerror.HasCode(err, mdwerror.CodeAliasNotFound) {
//		// handle the missing alias
//	}
package error
