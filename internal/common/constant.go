package common

// Fixed slot names in the local key/value store.
const (
	UsersKey     = "stackguard_users"
	SessionKey   = "stackguard_user"
	ConfigKeyKey = "stackguard_config_key"
)
