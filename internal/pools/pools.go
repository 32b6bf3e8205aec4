// Package pools embeds the list of known stake pool authorities and
// provides lookups over it.
package pools

import (
	"slices"
)

// PoolInfo describes a known stake pool.
type PoolInfo struct {
	// Human-readable name of the pool
	Name string
	// Base58-encoded authority public key
	Authority string
}

var registry = []PoolInfo{
	{"foundation", "mpa4abUkjQoAvPzREkh5Mo75hZhPFQ2FSH6w7dWKuQ5"},
	{"firedancer_delegation", "FiRep26iRQbMaKbqhhs5CqXqy7YrHn462LbnQhXzB2ps"},
	{"double_zero", "4cpnpiwgBfUgELVwNYiecwGti45YHSH3R72CPkFTiwJt"},
	{"jpool", "HbJTxftxnXgpePCshA8FubsRj9MW4kfPscfuUfn44fnt"},
	{"jito", "6iQKfEyhr3bZMotVkW6beNZz5CPAkiwvgV2CTje9pVSS"},
	{"marinade", "4bZ6o3eUUNXhKuqjdCnCoPAoLgWiuLYixKaxoa8PpiKk"},
	{"marinade_native", "ex9CfkBZZd6Nv9XdnoDmmB45ymbu4arXVk7g5pWnt3N"},
	{"marinade_native_2", "stWirqFCf2Uts1JBL1Jsd3r6VBWhgnpdPxCTe1MFjrq"},
	{"socean", "AzZRvyyMHBm8EHEksWxq4ozFL7JxLMydCDMGhqM6BVck"},
	{"lido", "W1ZQRwUfSkDKy2oefRBUWph82Vr2zg9txWMA8RQazN5"},
	{"eversol", "C4NeuptywfXuyWB9A7H7g5jHVDE8L6Nj2hS53tA71KPn"},
	{"edgevana", "FZEaZMmrRC3PDPFMzqooKLS2JjoyVkKNd2MkHjr7Xvyq"},
	{"blazestake", "6WecYymEARvjG5ZyqkrVQ6YkhPfujNzWpSPwNKXHCbV2"},
	{"daopool", "BbyX1GwUNsfbcoWwnkZDo8sqGmwNDzs2765RpjyQ1pQb"},
	{"bonk", "9LcmMfufi8YUcx83RALwF9Y9BPWZ7SqGy4D9VLe2nhhA"},
	{"sanctum", "EjYFnQcNDmfYQqT5B2R2239i781D5wNXrqA2qx2gYJo1"},
	{"sanctum_2", "3rBnnH9TTgd3xwu48rnzGsaQkSr1hR64nY71DrDt6VrQ"},
	{"binance", "9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM"},
	{"jupiter", "EMjuABxELpYWYEwjkKmQKBNCwdaFAy4QYAs6W9bDQDNw"},
	{"binance_2", "75NPzpxoh8sXGuSENFMREidq6FMzEx4g2AfcBEB6qjCV"},
	{"solayer", "H5rmot8ejBUWzMPt6E44h27xj5obbSz3jVuK4AsJpHmv"},
	{"bybit", "3pFTQjRVwcJHSpUNH5n1hx6Jwx7V3EzJDDHaKuwExyGJ"},
	{"shinobi", "EpH4ZKSeViL5qAHA9QANYVHxdmuzbUH2T79f32DmSCaM"},
	{"helius", "2rMuGTyXCqCHZBSu6NZR9Aq8MhZX9gLkCHoQsPhSj2YF"},
	{"marginfi", "3b7XQeZ8nSMyjcQGTFJS5kBw4pXS2SqtB9ooHCnF2xV9"},
	{"vault", "GdNXJobf8fbTR5JSE7adxa6niaygjx4EEbnnRaDCHMMW"},
	{"drift", "6727ZvQ2YEz8jky1Z9fqDFG5mYuAvC9G34o2MxwzmrUK"},
	{"aerosol", "AKJt3m2xJ6ANda9adBGqb5BMrheKJSwxyCfYkLuZNmjn"},
	{"ftx", "H4yiPhdSsmSMJTznXzmZvdqWuhxDRzzkoQMEWXZ6agFZ"},
	{"juicy", "FKDyJz5tPUy1ArAUba7ziQLbMKzaivRnHiW4FHzCSE9t"},
	{"picosol", "4At8nQXanWgRvjbrVXmxMBBdfz39txWVm4SiXEoP1kGh"},
}

var (
	byName      = make(map[string]PoolInfo, len(registry))
	byAuthority = make(map[string]PoolInfo, len(registry))
)

func init() {
	for _, pool := range registry {
		byName[pool.Name] = pool
		byAuthority[pool.Authority] = pool
	}
}

// All returns every known pool in registry order.
func All() []PoolInfo {
	return slices.Clone(registry)
}

// ByName looks up a pool by its name.
func ByName(name string) (PoolInfo, bool) {
	pool, ok := byName[name]
	return pool, ok
}

// ByAuthority looks up a pool by its authority public key.
func ByAuthority(authority string) (PoolInfo, bool) {
	pool, ok := byAuthority[authority]
	return pool, ok
}

// ByNames returns the pools matching the given names. Unknown names are
// silently dropped.
func ByNames(names ...string) []PoolInfo {
	selected := make([]PoolInfo, 0, len(names))
	for _, name := range names {
		if pool, ok := byName[name]; ok {
			selected = append(selected, pool)
		}
	}
	return selected
}

// Exists reports whether a pool with the given name is known.
func Exists(name string) bool {
	_, ok := byName[name]
	return ok
}

// Names returns all pool names in registry order.
func Names() []string {
	names := make([]string, len(registry))
	for i, pool := range registry {
		names[i] = pool.Name
	}
	return names
}

// Authorities returns all pool authority keys in registry order.
func Authorities() []string {
	authorities := make([]string, len(registry))
	for i, pool := range registry {
		authorities[i] = pool.Authority
	}
	return authorities
}
