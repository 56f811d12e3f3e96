// Package types provides the core types shared across the eda-app modules.
// This package has ZERO dependencies on other eda-app packages to avoid
// circular imports. All other packages should import types from here.
package types
