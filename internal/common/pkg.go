package common

import (
	"path"
	"strings"
	"unicode"
)

// UnknownStr is what String methods return for values outside their enum.
const UnknownStr = "unknown"

// PkgAlias derives an import alias from a package path: the last path element
// without a major version suffix, reduced to identifier characters.
// Returns empty string if pkgPath is empty.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	base := path.Base(pkgPath)
	if isMajorVersion(base) {
		if dir := path.Dir(pkgPath); dir != "." {
			base = path.Base(dir)
		}
	}

	base = strings.TrimPrefix(base, "go-")
	if i := strings.Index(base, ".v"); i > 0 {
		base = base[:i]
	}

	var b strings.Builder
	for _, r := range base {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			b.WriteRune(unicode.ToLower(r))
		}
	}

	alias := b.String()
	if alias == "" || unicode.IsDigit(rune(alias[0])) {
		alias = "pkg" + alias
	}

	return alias
}

func isMajorVersion(s string) bool {
	if len(s) < 2 || s[0] != 'v' {
		return false
	}

	for _, r := range s[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
