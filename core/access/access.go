package access

import (
	"github.com/StakeportTeam/stakeport-go-node/core/types"
)

// Keeper answers whether an address may run privileged operations.
type Keeper interface {
	IsAdmin(address types.Address) bool
}

// ConfigKeeper recognizes the single admin principal from node config.
type ConfigKeeper struct {
	admin types.Address
}

func NewConfigKeeper(admin types.Address) *ConfigKeeper {
	return &ConfigKeeper{admin: admin}
}

// IsAdmin reports whether address is the configured admin. With no admin
// configured every privileged call is refused.
func (k *ConfigKeeper) IsAdmin(address types.Address) bool {
	if k.admin == (types.Address{}) {
		return false
	}
	return k.admin == address
}
