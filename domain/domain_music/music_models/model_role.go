package music_models

import (
	"fmt"
	"strconv"
	"strings"
)

// Role 账号类型，对应 account_type
type Role int

const (
	RoleAdmin Role = iota
	RoleUser
	RoleArtist
)

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleUser:
		return "user"
	case RoleArtist:
		return "artist"
	default:
		return "unknown"
	}
}

func (r Role) Valid() bool {
	return r >= RoleAdmin && r <= RoleArtist
}

// ParseRole 支持数字 ("2") 与名称 ("artist") 两种写法
func ParseRole(s string) (Role, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if n, err := strconv.Atoi(s); err == nil {
		if r := Role(n); r.Valid() {
			return r, nil
		}
		return 0, fmt.Errorf("invalid account type: %s", s)
	}
	for _, r := range []Role{RoleAdmin, RoleUser, RoleArtist} {
		if r.String() == s {
			return r, nil
		}
	}
	return 0, fmt.Errorf("invalid account type: %s", s)
}
