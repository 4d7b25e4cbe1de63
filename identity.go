package logs

import (
	"os/user"
	"strings"
	"unicode/utf8"
)

// IdentityFunc returns the name used as the owner when a call supplies none.
type IdentityFunc func() (string, error)

// CurrentUser returns the name of the OS user running the process.
func CurrentUser() (string, error) {
	u, err := user.Current()
	if err != nil {
		return emptyString, err
	}
	return u.Username, nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == emptyString
}

// defaultOwner applies the fallback rules to the identity provider's answer.
func defaultOwner(identity IdentityFunc) string {
	if identity == nil {
		identity = CurrentUser
	}
	name, err := identity()
	if err != nil || name == emptyString || utf8.RuneCountInString(name) > OwnerMaxLen {
		return UnknownOwner
	}
	return name
}
